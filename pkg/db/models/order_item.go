package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hoangminh/atelier-backend/pkg/types"
)

// OrderItem is a planned line on a project order. Acceptance overrides are
// persisted as nullable columns and surfaced to callers as a tagged variant.
type OrderItem struct {
	ID                uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProjectID         uuid.UUID        `gorm:"column:project_id;type:uuid;not null"`
	Name              string           `gorm:"column:name;not null"`
	Unit              *string          `gorm:"column:unit"`
	PlannedQty        decimal.Decimal  `gorm:"column:planned_qty;type:numeric(14,3);not null"`
	PlannedUnitPrice  decimal.Decimal  `gorm:"column:planned_unit_price;type:numeric(14,2);not null"`
	AcceptedQty       *decimal.Decimal `gorm:"column:accepted_qty;type:numeric(14,3)"`
	AcceptedUnitPrice *decimal.Decimal `gorm:"column:accepted_unit_price;type:numeric(14,2)"`
	CreatedAt         time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

// Acceptance folds the nullable override columns into the tagged variant used
// by the netting and aggregation code. An override only exists when both
// columns are present.
func (i OrderItem) Acceptance() types.Acceptance {
	if i.AcceptedQty != nil && i.AcceptedUnitPrice != nil {
		return types.Accepted(*i.AcceptedQty, *i.AcceptedUnitPrice)
	}
	return types.Planned()
}
