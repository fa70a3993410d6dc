package models

import "time"

// SequenceCounter holds the last issued value for one document-type key.
// A row is created lazily on first allocation and mutated only by an atomic
// increment inside a single transaction.
type SequenceCounter struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     int64     `gorm:"column:value;not null;default:0"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
