package enums

import "fmt"

// WorkshopJobStatus maps to the workshop_job_status_enum enum in Postgres.
type WorkshopJobStatus string

const (
	WorkshopJobStatusDraft      WorkshopJobStatus = "draft"
	WorkshopJobStatusInProgress WorkshopJobStatus = "in_progress"
	WorkshopJobStatusDelivered  WorkshopJobStatus = "delivered"
	WorkshopJobStatusSettled    WorkshopJobStatus = "settled"
	WorkshopJobStatusCanceled   WorkshopJobStatus = "canceled"
)

var validWorkshopJobStatuses = []WorkshopJobStatus{
	WorkshopJobStatusDraft,
	WorkshopJobStatusInProgress,
	WorkshopJobStatusDelivered,
	WorkshopJobStatusSettled,
	WorkshopJobStatusCanceled,
}

// IsValid reports whether the value matches the canonical job status enum.
func (s WorkshopJobStatus) IsValid() bool {
	for _, candidate := range validWorkshopJobStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseWorkshopJobStatus converts raw input into WorkshopJobStatus.
func ParseWorkshopJobStatus(value string) (WorkshopJobStatus, error) {
	for _, candidate := range validWorkshopJobStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid workshop job status %q", value)
}
