package records

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hoangminh/atelier-backend/pkg/enums"
	"github.com/hoangminh/atelier-backend/pkg/pagination"
)

// CreateRecordInput captures a new ledger record before a voucher code is
// assigned.
type CreateRecordInput struct {
	Kind                 string          `json:"kind" validate:"required"`
	Amount               decimal.Decimal `json:"amount"`
	Date                 time.Time       `json:"date" validate:"required"`
	WalletID             uuid.UUID       `json:"wallet_id" validate:"required"`
	CounterpartyWalletID *uuid.UUID      `json:"counterparty_wallet_id"`
	ProjectID            *uuid.UUID      `json:"project_id"`
	WorkshopJobID        *uuid.UUID      `json:"workshop_job_id"`
	CategoryID           *uuid.UUID      `json:"category_id"`
	Note                 *string         `json:"note"`
	IsCommonCost         bool            `json:"is_common_cost"`
	IsAds                bool            `json:"is_ads"`
}

// LineItemInput is one planned line on a project or workshop job order.
type LineItemInput struct {
	Name      string          `json:"name" validate:"required"`
	Unit      *string         `json:"unit"`
	Qty       decimal.Decimal `json:"qty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateProjectInput captures a new project and its planned order lines.
type CreateProjectInput struct {
	Name           string          `json:"name" validate:"required"`
	CustomerID     uuid.UUID       `json:"customer_id" validate:"required"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Items          []LineItemInput `json:"items" validate:"dive"`
}

// CreateWorkshopJobInput captures a subcontracted job. The job's raw amount
// is always computed from the lines, never taken from the caller.
type CreateWorkshopJobInput struct {
	ProjectID      uuid.UUID       `json:"project_id" validate:"required"`
	WorkshopID     uuid.UUID       `json:"workshop_id" validate:"required"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Note           *string         `json:"note"`
	Items          []LineItemInput `json:"items" validate:"required,min=1,dive"`
}

// CreateCategoryInput captures a new reporting category.
type CreateCategoryInput struct {
	Name       string   `json:"name" validate:"required"`
	Kind       string   `json:"kind" validate:"required"`
	StableCode *string  `json:"stable_code"`
	Keywords   []string `json:"keywords"`
}

// ListRecordsInput narrows and pages the record listing.
type ListRecordsInput struct {
	Kind      *enums.RecordKind
	WalletID  *uuid.UUID
	ProjectID *uuid.UUID
	Start     *time.Time
	End       *time.Time
	Page      pagination.Params
}

// RecordPage is one page of records plus the cursor for the next one.
type RecordPage struct {
	Records    []RecordOutput `json:"records"`
	NextCursor *string        `json:"next_cursor,omitempty"`
}

// RecordOutput is the API shape of a ledger record.
type RecordOutput struct {
	ID                   uuid.UUID        `json:"id"`
	Code                 string           `json:"code"`
	Kind                 enums.RecordKind `json:"kind"`
	Amount               decimal.Decimal  `json:"amount"`
	Date                 time.Time        `json:"date"`
	WalletID             uuid.UUID        `json:"wallet_id"`
	CounterpartyWalletID *uuid.UUID       `json:"counterparty_wallet_id,omitempty"`
	ProjectID            *uuid.UUID       `json:"project_id,omitempty"`
	WorkshopJobID        *uuid.UUID       `json:"workshop_job_id,omitempty"`
	CategoryID           *uuid.UUID       `json:"category_id,omitempty"`
	Note                 *string          `json:"note,omitempty"`
	IsCommonCost         bool             `json:"is_common_cost"`
	IsAds                bool             `json:"is_ads"`
	CreatedAt            time.Time        `json:"created_at"`
}
