package classify

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/hoangminh/atelier-backend/pkg/db/models"
	"github.com/hoangminh/atelier-backend/pkg/enums"
)

func strPtr(s string) *string { return &s }

func uuidPtr() *uuid.UUID {
	id := uuid.New()
	return &id
}

func TestIncomePriorityOrder(t *testing.T) {
	c := NewClassifier(DefaultLookup())

	tests := []struct {
		name     string
		record   models.LedgerRecord
		category *models.Category
		want     enums.IncomeClass
	}{
		{
			name: "stable code wins over contradicting name and note",
			record: models.LedgerRecord{
				Note: strPtr("final settlement for villa project"),
			},
			category: &models.Category{
				StableCode: strPtr("INCOME_DEPOSIT"),
				Name:       "Final payment",
			},
			want: enums.IncomeClassDeposit,
		},
		{
			name:   "category name keyword beats note keyword",
			record: models.LedgerRecord{Note: strPtr("deposit received")},
			category: &models.Category{
				Name: "Final settlement",
			},
			want: enums.IncomeClassFinal,
		},
		{
			name:   "category keywords list matches",
			record: models.LedgerRecord{},
			category: &models.Category{
				Name:     "Misc revenue",
				Keywords: pq.StringArray{"down payment"},
			},
			want: enums.IncomeClassDeposit,
		},
		{
			name:   "note keyword used when category silent",
			record: models.LedgerRecord{Note: strPtr("customer deposit for kitchen")},
			category: &models.Category{
				Name: "Revenue",
			},
			want: enums.IncomeClassDeposit,
		},
		{
			name:   "defaults to payment",
			record: models.LedgerRecord{Note: strPtr("misc money in")},
			want:   enums.IncomeClassPayment,
		},
		{
			name:   "nil category nil note defaults to payment",
			record: models.LedgerRecord{},
			want:   enums.IncomeClassPayment,
		},
		{
			name:   "final payment lands on final not payment",
			record: models.LedgerRecord{},
			category: &models.Category{
				Name: "Final payment",
			},
			want: enums.IncomeClassFinal,
		},
		{
			name:   "unknown stable code falls through to name",
			record: models.LedgerRecord{},
			category: &models.Category{
				StableCode: strPtr("SOMETHING_ELSE"),
				Name:       "Advance from customer",
			},
			want: enums.IncomeClassDeposit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Income(tt.record, tt.category)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIncomeIsTotal(t *testing.T) {
	c := NewClassifier(NewLookup(nil, nil, nil))
	got := c.Income(models.LedgerRecord{}, nil)
	assert.Equal(t, enums.IncomeClassPayment, got)
}

func TestExpenseClassification(t *testing.T) {
	c := NewClassifier(DefaultLookup())

	tests := []struct {
		name   string
		record models.LedgerRecord
		want   enums.ExpenseClass
	}{
		{
			name:   "workshop job reference wins over all flags",
			record: models.LedgerRecord{WorkshopJobID: uuidPtr(), IsAds: true, IsCommonCost: true},
			want:   enums.ExpenseClassWorkshopPayment,
		},
		{
			name:   "ads flag",
			record: models.LedgerRecord{IsAds: true, IsCommonCost: true},
			want:   enums.ExpenseClassAds,
		},
		{
			name:   "common cost flag",
			record: models.LedgerRecord{IsCommonCost: true},
			want:   enums.ExpenseClassCommon,
		},
		{
			name:   "plain record is direct",
			record: models.LedgerRecord{},
			want:   enums.ExpenseClassDirect,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Expense(tt.record))
		})
	}
}
