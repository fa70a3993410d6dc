package reports

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hoangminh/atelier-backend/internal/classify"
	"github.com/hoangminh/atelier-backend/internal/netting"
	"github.com/hoangminh/atelier-backend/pkg/db/models"
	"github.com/hoangminh/atelier-backend/pkg/enums"
)

// buildKanban groups projects into the ordered stage pipeline. A project
// whose stored stage is not a pipeline member lands in the first stage so it
// stays visible on the board. EstimatedTotal deliberately skips the project
// discount, unlike the summary's OrderTotal.
func buildKanban(snapshot KanbanSnapshot, stages []enums.ProjectStage, filters KanbanFilters, classifier classify.Classifier) []KanbanColumn {
	if len(stages) == 0 {
		stages = enums.PipelineStages
	}

	columnIndex := make(map[enums.ProjectStage]int, len(stages))
	columns := make([]KanbanColumn, len(stages))
	for i, stage := range stages {
		columns[i] = KanbanColumn{Stage: stage}
		columnIndex[stage] = i
	}

	recordsByProject := make(map[uuid.UUID][]models.LedgerRecord)
	for _, rec := range snapshot.Records {
		if rec.ProjectID == nil {
			continue
		}
		recordsByProject[*rec.ProjectID] = append(recordsByProject[*rec.ProjectID], rec)
	}

	for _, project := range snapshot.Projects {
		if filters.CustomerID != nil && project.CustomerID != *filters.CustomerID {
			continue
		}

		card := buildKanbanCard(project, recordsByProject[project.ID], classifier)

		idx, ok := columnIndex[project.Stage]
		if !ok {
			idx = 0
		}
		columns[idx].Projects = append(columns[idx].Projects, card)
	}

	return columns
}

func buildKanbanCard(project models.Project, records []models.LedgerRecord, classifier classify.Classifier) KanbanCard {
	card := KanbanCard{
		ProjectID:      project.ID,
		Code:           project.Code,
		Name:           project.Name,
		IncomeTotal:    decimal.Zero,
		WorkshopTotal:  decimal.Zero,
		ExpenseTotal:   decimal.Zero,
		EstimatedTotal: netting.EstimatedTotal(project.OrderItems),
	}

	directExpense := decimal.Zero
	for _, rec := range records {
		switch rec.Kind {
		case enums.RecordKindIncome:
			card.IncomeTotal = card.IncomeTotal.Add(rec.Amount)
		case enums.RecordKindExpense:
			if classifier.Expense(rec) == enums.ExpenseClassDirect {
				directExpense = directExpense.Add(rec.Amount)
			}
		}
	}

	for _, job := range project.WorkshopJobs {
		card.WorkshopTotal = card.WorkshopTotal.Add(netting.JobNet(job))
	}
	card.ExpenseTotal = card.WorkshopTotal.Add(directExpense)

	return card
}
