package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/hoangminh/atelier-backend/pkg/enums"
)

// Category labels income and expense records for reporting. StableCode is the
// classification anchor; Keywords feed the display-name keyword match.
type Category struct {
	ID         uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Code       string             `gorm:"column:code;not null;uniqueIndex"`
	StableCode *string            `gorm:"column:stable_code;uniqueIndex"`
	Name       string             `gorm:"column:name;not null"`
	Kind       enums.CategoryKind `gorm:"column:kind;type:category_kind_enum;not null"`
	Keywords   pq.StringArray     `gorm:"column:keywords;type:text[];default:ARRAY[]::text[]"`
	CreatedAt  time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time          `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt  gorm.DeletedAt     `gorm:"column:deleted_at;index"`
}
