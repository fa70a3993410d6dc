package sequence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/hoangminh/atelier-backend/internal/repo"
	"github.com/hoangminh/atelier-backend/pkg/db/models"
)

// Repository mutates sequence counter rows. Increment is the only write path
// production code takes; Seed exists for bootstrapping counters from legacy
// codes.
type Repository interface {
	// Increment atomically bumps the counter for key and returns the new
	// value. A missing row is created at floor+1. The statement runs on the
	// supplied connection so callers control transaction scope.
	Increment(ctx context.Context, tx *gorm.DB, key string, floor int64) (int64, error)
	// Seed raises the counter for key to at least value, creating the row if
	// needed. It never lowers an existing counter.
	Seed(ctx context.Context, key string, value int64) error
	// Current reads the counter value for key; a missing row reads as 0.
	Current(ctx context.Context, key string) (int64, error)
}

type repository struct {
	repo.Base
}

// NewRepository constructs a gorm-backed counter repository.
func NewRepository(base repo.Base) Repository {
	return &repository{Base: base}
}

// The single-statement upsert is the serialization point: concurrent
// allocations for one key queue on the row and each sees a distinct value.
// RETURNING is supported by both Postgres and SQLite.
const incrementSQL = `
INSERT INTO sequence_counters (key, value, updated_at)
VALUES (?, ?, ?)
ON CONFLICT (key) DO UPDATE SET
  value = sequence_counters.value + 1,
  updated_at = excluded.updated_at
RETURNING value`

func (r *repository) Increment(ctx context.Context, tx *gorm.DB, key string, floor int64) (int64, error) {
	if tx == nil {
		tx = r.DB(ctx)
	}
	var value int64
	err := tx.WithContext(ctx).Raw(incrementSQL, key, floor+1, time.Now().UTC()).Scan(&value).Error
	if err != nil {
		return 0, err
	}
	return value, nil
}

const seedSQL = `
INSERT INTO sequence_counters (key, value, updated_at)
VALUES (?, ?, ?)
ON CONFLICT (key) DO UPDATE SET
  value = CASE WHEN sequence_counters.value >= excluded.value
               THEN sequence_counters.value ELSE excluded.value END,
  updated_at = excluded.updated_at`

func (r *repository) Seed(ctx context.Context, key string, value int64) error {
	return r.DB(ctx).Exec(seedSQL, key, value, time.Now().UTC()).Error
}

func (r *repository) Current(ctx context.Context, key string) (int64, error) {
	var counter models.SequenceCounter
	err := r.DB(ctx).Where("key = ?", key).First(&counter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return counter.Value, nil
}
