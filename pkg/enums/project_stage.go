package enums

import "fmt"

// ProjectStage maps to the project_stage_enum enum in Postgres.
type ProjectStage string

const (
	ProjectStageConsulting   ProjectStage = "consulting"
	ProjectStageSurvey       ProjectStage = "survey"
	ProjectStageDesign       ProjectStage = "design"
	ProjectStageQuotation    ProjectStage = "quotation"
	ProjectStageProduction   ProjectStage = "production"
	ProjectStageInstallation ProjectStage = "installation"
	ProjectStageHandover     ProjectStage = "handover"
	ProjectStageWarranty     ProjectStage = "warranty"
)

// PipelineStages is the fixed kanban pipeline, in board order.
var PipelineStages = []ProjectStage{
	ProjectStageConsulting,
	ProjectStageSurvey,
	ProjectStageDesign,
	ProjectStageQuotation,
	ProjectStageProduction,
	ProjectStageInstallation,
	ProjectStageHandover,
	ProjectStageWarranty,
}

// IsValid reports whether the value is a member of the pipeline.
func (s ProjectStage) IsValid() bool {
	for _, candidate := range PipelineStages {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseProjectStage converts raw input into ProjectStage.
func ParseProjectStage(value string) (ProjectStage, error) {
	for _, candidate := range PipelineStages {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid project stage %q", value)
}
