// Package classify assigns reporting sub-types to ledger records. Income
// classification is a total function over an injected keyword lookup; expense
// classification is structural and needs no configuration.
package classify

import (
	"github.com/hoangminh/atelier-backend/pkg/db/models"
	"github.com/hoangminh/atelier-backend/pkg/enums"
)

// Classifier labels income and expense records.
type Classifier struct {
	lookup Lookup
}

// NewClassifier builds a classifier over the provided lookup.
func NewClassifier(lookup Lookup) Classifier {
	return Classifier{lookup: lookup}
}

// Income resolves the income class of a record, in priority order: the
// category's stable code, a category name/keyword match, a note keyword
// match, then the payment default. category may be nil.
func (c Classifier) Income(rec models.LedgerRecord, category *models.Category) enums.IncomeClass {
	if category != nil {
		if category.StableCode != nil {
			if class, ok := c.lookup.byStableCode(*category.StableCode); ok {
				return class
			}
		}
		if class, ok := matchRules(c.lookup.nameKeywords, category.Name); ok {
			return class
		}
		for _, keyword := range category.Keywords {
			if class, ok := matchRules(c.lookup.nameKeywords, keyword); ok {
				return class
			}
		}
	}
	if rec.Note != nil {
		if class, ok := matchRules(c.lookup.noteKeywords, *rec.Note); ok {
			return class
		}
	}
	return enums.IncomeClassPayment
}

// Expense resolves the expense class of a record. The checks are ordered so
// the outcome is mutually exclusive and exhaustive: a workshop payment stays a
// workshop payment even when the ads or common-cost flags are also set.
func (c Classifier) Expense(rec models.LedgerRecord) enums.ExpenseClass {
	switch {
	case rec.WorkshopJobID != nil:
		return enums.ExpenseClassWorkshopPayment
	case rec.IsAds:
		return enums.ExpenseClassAds
	case rec.IsCommonCost:
		return enums.ExpenseClassCommon
	default:
		return enums.ExpenseClassDirect
	}
}
