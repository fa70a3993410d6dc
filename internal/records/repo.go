package records

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hoangminh/atelier-backend/pkg/db/models"
	"github.com/hoangminh/atelier-backend/pkg/pagination"
)

// Repository manages persistence for ledger documents.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateRecord(ctx context.Context, record *models.LedgerRecord) error
	GetRecord(ctx context.Context, id uuid.UUID) (*models.LedgerRecord, error)
	SoftDeleteRecord(ctx context.Context, id uuid.UUID) (bool, error)
	ListRecords(ctx context.Context, input ListRecordsInput, limit int, cursor *pagination.Cursor) ([]models.LedgerRecord, error)
	CreateProject(ctx context.Context, project *models.Project) error
	GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error)
	CreateWorkshopJob(ctx context.Context, job *models.WorkshopJob) error
	CreateCategory(ctx context.Context, category *models.Category) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns a records repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) CreateRecord(ctx context.Context, record *models.LedgerRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repository) GetRecord(ctx context.Context, id uuid.UUID) (*models.LedgerRecord, error) {
	var record models.LedgerRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *repository) SoftDeleteRecord(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.LedgerRecord{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *repository) ListRecords(ctx context.Context, input ListRecordsInput, limit int, cursor *pagination.Cursor) ([]models.LedgerRecord, error) {
	query := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit)
	if input.Kind != nil {
		query = query.Where("kind = ?", *input.Kind)
	}
	if input.WalletID != nil {
		query = query.Where("wallet_id = ?", *input.WalletID)
	}
	if input.ProjectID != nil {
		query = query.Where("project_id = ?", *input.ProjectID)
	}
	if input.Start != nil {
		query = query.Where("date >= ?", *input.Start)
	}
	if input.End != nil {
		query = query.Where("date <= ?", *input.End)
	}
	if cursor != nil {
		query = query.Where(
			"created_at < ? OR (created_at = ? AND id < ?)",
			cursor.CreatedAt, cursor.CreatedAt, cursor.ID)
	}

	var records []models.LedgerRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repository) CreateProject(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *repository) GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *repository) CreateWorkshopJob(ctx context.Context, job *models.WorkshopJob) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *repository) CreateCategory(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}
