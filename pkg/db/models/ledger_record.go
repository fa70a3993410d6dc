package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hoangminh/atelier-backend/pkg/enums"
)

// LedgerRecord is a single money movement: income, expense, transfer, or
// adjustment. Records are only ever soft-deleted; aggregation reads live rows
// exclusively.
type LedgerRecord struct {
	ID                   uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Code                 string           `gorm:"column:code;not null;uniqueIndex"`
	Kind                 enums.RecordKind `gorm:"column:kind;type:record_kind_enum;not null"`
	Amount               decimal.Decimal  `gorm:"column:amount;type:numeric(14,2);not null"`
	Date                 time.Time        `gorm:"column:date;not null"`
	WalletID             uuid.UUID        `gorm:"column:wallet_id;type:uuid;not null"`
	CounterpartyWalletID *uuid.UUID       `gorm:"column:counterparty_wallet_id;type:uuid"`
	ProjectID            *uuid.UUID       `gorm:"column:project_id;type:uuid"`
	WorkshopJobID        *uuid.UUID       `gorm:"column:workshop_job_id;type:uuid"`
	CategoryID           *uuid.UUID       `gorm:"column:category_id;type:uuid"`
	Note                 *string          `gorm:"column:note"`
	IsCommonCost         bool             `gorm:"column:is_common_cost;not null;default:false"`
	IsAds                bool             `gorm:"column:is_ads;not null;default:false"`
	CreatedAt            time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt            time.Time        `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt            gorm.DeletedAt   `gorm:"column:deleted_at;index"`
}
