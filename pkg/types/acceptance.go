package types

import "github.com/shopspring/decimal"

// Acceptance is the post-hoc correction state of an order item. It is either
// Planned (no correction) or Accepted with a corrected quantity and unit
// price. Modeling it as a closed variant keeps half-set overrides
// unrepresentable.
type Acceptance struct {
	overridden bool
	qty        decimal.Decimal
	unitPrice  decimal.Decimal
}

// Planned returns the no-override variant.
func Planned() Acceptance {
	return Acceptance{}
}

// Accepted returns an override carrying the corrected quantity and unit price.
func Accepted(qty, unitPrice decimal.Decimal) Acceptance {
	return Acceptance{overridden: true, qty: qty, unitPrice: unitPrice}
}

// Overridden reports whether a correction exists.
func (a Acceptance) Overridden() bool {
	return a.overridden
}

// Override returns the corrected quantity and unit price. ok is false for the
// Planned variant, in which case both values are zero.
func (a Acceptance) Override() (qty, unitPrice decimal.Decimal, ok bool) {
	if !a.overridden {
		return decimal.Decimal{}, decimal.Decimal{}, false
	}
	return a.qty, a.unitPrice, true
}
