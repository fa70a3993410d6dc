package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hoangminh/atelier-backend/pkg/enums"
)

// WorkshopJob is a subcontracted production order. Its net amount is always
// recomputed from RawAmount and DiscountAmount, never stored.
type WorkshopJob struct {
	ID             uuid.UUID               `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Code           string                  `gorm:"column:code;not null;uniqueIndex"`
	ProjectID      uuid.UUID               `gorm:"column:project_id;type:uuid;not null"`
	WorkshopID     uuid.UUID               `gorm:"column:workshop_id;type:uuid;not null"`
	RawAmount      decimal.Decimal         `gorm:"column:raw_amount;type:numeric(14,2);not null"`
	DiscountAmount decimal.Decimal         `gorm:"column:discount_amount;type:numeric(14,2);not null;default:0"`
	Status         enums.WorkshopJobStatus `gorm:"column:status;type:workshop_job_status_enum;not null;default:'draft'"`
	Note           *string                 `gorm:"column:note"`
	CreatedAt      time.Time               `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time               `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt      gorm.DeletedAt          `gorm:"column:deleted_at;index"`
}
