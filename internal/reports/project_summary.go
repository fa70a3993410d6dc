package reports

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hoangminh/atelier-backend/internal/classify"
	"github.com/hoangminh/atelier-backend/internal/netting"
	"github.com/hoangminh/atelier-backend/pkg/db/models"
	"github.com/hoangminh/atelier-backend/pkg/enums"
)

// buildProjectSummary derives the full financial summary from a snapshot.
// It is a pure function: identical snapshots produce identical summaries.
func buildProjectSummary(projectID uuid.UUID, snapshot ProjectSnapshot, classifier classify.Classifier) ProjectFinancialSummary {
	summary := ProjectFinancialSummary{
		ProjectID:          projectID,
		DepositTotal:       decimal.Zero,
		PaymentTotal:       decimal.Zero,
		FinalTotal:         decimal.Zero,
		IncomeTotal:        decimal.Zero,
		WorkshopTotal:      decimal.Zero,
		DirectExpenseTotal: decimal.Zero,
		ExpenseTotal:       decimal.Zero,
		OrderTotal:         decimal.Zero,
		Profit:             decimal.Zero,
		PaidTotal:          decimal.Zero,
		CustomerDebt:       decimal.Zero,
	}
	if snapshot.Project == nil {
		// unknown project: all-zero summary, existence checks are the
		// caller's job
		return summary
	}

	for _, rec := range snapshot.Records {
		switch rec.Kind {
		case enums.RecordKindIncome:
			category := categoryFor(rec, snapshot.Categories)
			switch classifier.Income(rec, category) {
			case enums.IncomeClassDeposit:
				summary.DepositTotal = summary.DepositTotal.Add(rec.Amount)
			case enums.IncomeClassFinal:
				summary.FinalTotal = summary.FinalTotal.Add(rec.Amount)
			default:
				summary.PaymentTotal = summary.PaymentTotal.Add(rec.Amount)
			}
		case enums.RecordKindExpense:
			// Workshop payments are excluded here: the job's netted amount
			// already carries that spend, counting the payment again would
			// double count. Common and ads spend never attributes to a single
			// project.
			if classifier.Expense(rec) == enums.ExpenseClassDirect {
				summary.DirectExpenseTotal = summary.DirectExpenseTotal.Add(rec.Amount)
			}
		}
	}

	summary.IncomeTotal = summary.DepositTotal.Add(summary.PaymentTotal).Add(summary.FinalTotal)

	for _, job := range snapshot.Project.WorkshopJobs {
		summary.WorkshopTotal = summary.WorkshopTotal.Add(netting.JobNet(job))
	}

	summary.ExpenseTotal = summary.WorkshopTotal.Add(summary.DirectExpenseTotal)
	summary.OrderTotal = netting.OrderTotal(snapshot.Project.OrderItems, snapshot.Project.DiscountAmount)
	summary.Profit = summary.OrderTotal.Sub(summary.ExpenseTotal)
	summary.PaidTotal = summary.IncomeTotal
	summary.CustomerDebt = netting.Amount(summary.OrderTotal, summary.PaidTotal)

	return summary
}

func categoryFor(rec models.LedgerRecord, categories map[uuid.UUID]models.Category) *models.Category {
	if rec.CategoryID == nil {
		return nil
	}
	if category, ok := categories[*rec.CategoryID]; ok {
		return &category
	}
	return nil
}
