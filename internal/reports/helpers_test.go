package reports

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hoangminh/atelier-backend/internal/classify"
	"github.com/hoangminh/atelier-backend/pkg/db/models"
	"github.com/hoangminh/atelier-backend/pkg/enums"
)

func money(value string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil {
		panic(err)
	}
	return d
}

func ptr[T any](v T) *T {
	return &v
}

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func defaultClassifier() classify.Classifier {
	return classify.NewClassifier(classify.DefaultLookup())
}

func plannedItem(projectID uuid.UUID, qty, unitPrice string) models.OrderItem {
	return models.OrderItem{
		ID:               uuid.New(),
		ProjectID:        projectID,
		Name:             "line",
		PlannedQty:       money(qty),
		PlannedUnitPrice: money(unitPrice),
	}
}

func incomeRecord(projectID uuid.UUID, amount string, note *string) models.LedgerRecord {
	return models.LedgerRecord{
		ID:        uuid.New(),
		Kind:      enums.RecordKindIncome,
		Amount:    money(amount),
		Date:      day("2026-03-01"),
		WalletID:  uuid.New(),
		ProjectID: &projectID,
		Note:      note,
	}
}

func expenseRecord(projectID uuid.UUID, amount string) models.LedgerRecord {
	return models.LedgerRecord{
		ID:        uuid.New(),
		Kind:      enums.RecordKindExpense,
		Amount:    money(amount),
		Date:      day("2026-03-02"),
		WalletID:  uuid.New(),
		ProjectID: &projectID,
	}
}
