// Package netting subtracts discounts from raw amounts, clamped at zero.
// Upstream validation rejects discounts larger than the raw amount, but every
// function here clamps regardless so totals can never go negative.
package netting

import (
	"github.com/shopspring/decimal"

	"github.com/hoangminh/atelier-backend/pkg/db/models"
)

// Amount returns max(0, raw - discount).
func Amount(raw, discount decimal.Decimal) decimal.Decimal {
	net := raw.Sub(discount)
	if net.IsNegative() {
		return decimal.Zero
	}
	return net
}

// EffectiveLineTotal is the item's quantity times unit price, preferring the
// acceptance override when one exists.
func EffectiveLineTotal(item models.OrderItem) decimal.Decimal {
	if qty, unitPrice, ok := item.Acceptance().Override(); ok {
		return qty.Mul(unitPrice)
	}
	return item.PlannedQty.Mul(item.PlannedUnitPrice)
}

// OrderTotal sums the effective line totals and nets the project-level
// discount.
func OrderTotal(items []models.OrderItem, discount decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(EffectiveLineTotal(item))
	}
	return Amount(sum, discount)
}

// EstimatedTotal sums the effective line totals without netting the project
// discount. The kanban board reads this figure; the asymmetry with OrderTotal
// is intentional product behavior.
func EstimatedTotal(items []models.OrderItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(EffectiveLineTotal(item))
	}
	return sum
}

// JobNet is the workshop job's raw amount netted by its discount.
func JobNet(job models.WorkshopJob) decimal.Decimal {
	return Amount(job.RawAmount, job.DiscountAmount)
}
