package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hoangminh/atelier-backend/pkg/enums"
)

// Project is a customer order moving through the kanban pipeline. Its code is
// issued by the sequence allocator at creation time.
type Project struct {
	ID             uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Code           string             `gorm:"column:code;not null;uniqueIndex"`
	Name           string             `gorm:"column:name;not null"`
	CustomerID     uuid.UUID          `gorm:"column:customer_id;type:uuid;not null"`
	Stage          enums.ProjectStage `gorm:"column:stage;type:project_stage_enum;not null;default:'consulting'"`
	DiscountAmount decimal.Decimal    `gorm:"column:discount_amount;type:numeric(14,2);not null;default:0"`
	OrderItems     []OrderItem        `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	WorkshopJobs   []WorkshopJob      `gorm:"foreignKey:ProjectID"`
	LedgerRecords  []LedgerRecord     `gorm:"foreignKey:ProjectID"`
	CreatedAt      time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time          `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt      gorm.DeletedAt     `gorm:"column:deleted_at;index"`
}
