package reports

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hoangminh/atelier-backend/pkg/db/models"
	"github.com/hoangminh/atelier-backend/pkg/enums"
)

// Source loads immutable snapshots for the report builders. Implementations
// must return only live rows; soft-deleted records never reach a builder.
type Source interface {
	ProjectSnapshot(ctx context.Context, projectID uuid.UUID, rng Range) (ProjectSnapshot, error)
	CashflowSnapshot(ctx context.Context, walletID *uuid.UUID, rng Range) (CashflowSnapshot, error)
	WorkshopSnapshot(ctx context.Context, workshopID *uuid.UUID, rng Range) (WorkshopSnapshot, error)
	KanbanSnapshot(ctx context.Context, filters KanbanFilters) (KanbanSnapshot, error)
}

type gormSource struct {
	db *gorm.DB
}

// NewSource returns a snapshot loader bound to the provided database.
func NewSource(db *gorm.DB) Source {
	return &gormSource{db: db}
}

func (s *gormSource) ProjectSnapshot(ctx context.Context, projectID uuid.UUID, rng Range) (ProjectSnapshot, error) {
	var project models.Project
	err := s.db.WithContext(ctx).
		Preload("OrderItems").
		Preload("WorkshopJobs").
		First(&project, "id = ?", projectID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// unknown project yields an empty snapshot, not an error
		return ProjectSnapshot{}, nil
	}
	if err != nil {
		return ProjectSnapshot{}, err
	}

	var records []models.LedgerRecord
	query := s.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Where("kind IN ?", []enums.RecordKind{enums.RecordKindIncome, enums.RecordKindExpense}).
		Order("date ASC")
	if err := applyRange(query, rng).Find(&records).Error; err != nil {
		return ProjectSnapshot{}, err
	}

	categories, err := s.loadCategories(ctx, records)
	if err != nil {
		return ProjectSnapshot{}, err
	}

	return ProjectSnapshot{
		Project:    &project,
		Records:    records,
		Categories: categories,
	}, nil
}

func (s *gormSource) CashflowSnapshot(ctx context.Context, walletID *uuid.UUID, rng Range) (CashflowSnapshot, error) {
	walletQuery := s.db.WithContext(ctx).Order("name ASC")
	if walletID != nil {
		walletQuery = walletQuery.Where("id = ?", *walletID)
	}
	var wallets []models.Wallet
	if err := walletQuery.Find(&wallets).Error; err != nil {
		return CashflowSnapshot{}, err
	}

	recordQuery := s.db.WithContext(ctx).Order("date ASC")
	if walletID != nil {
		recordQuery = recordQuery.Where(
			"wallet_id = ? OR counterparty_wallet_id = ?", *walletID, *walletID)
	}
	var records []models.LedgerRecord
	if err := applyRange(recordQuery, rng).Find(&records).Error; err != nil {
		return CashflowSnapshot{}, err
	}

	return CashflowSnapshot{Wallets: wallets, Records: records}, nil
}

func (s *gormSource) WorkshopSnapshot(ctx context.Context, workshopID *uuid.UUID, rng Range) (WorkshopSnapshot, error) {
	workshopQuery := s.db.WithContext(ctx).Order("name ASC")
	if workshopID != nil {
		workshopQuery = workshopQuery.Where("id = ?", *workshopID)
	}
	var workshops []models.Workshop
	if err := workshopQuery.Find(&workshops).Error; err != nil {
		return WorkshopSnapshot{}, err
	}

	jobQuery := s.db.WithContext(ctx)
	if workshopID != nil {
		jobQuery = jobQuery.Where("workshop_id = ?", *workshopID)
	}
	var jobs []models.WorkshopJob
	if err := jobQuery.Find(&jobs).Error; err != nil {
		return WorkshopSnapshot{}, err
	}

	paymentQuery := s.db.WithContext(ctx).
		Where("kind = ?", enums.RecordKindExpense).
		Where("workshop_job_id IS NOT NULL")
	if workshopID != nil {
		jobIDs := make([]uuid.UUID, 0, len(jobs))
		for _, job := range jobs {
			jobIDs = append(jobIDs, job.ID)
		}
		paymentQuery = paymentQuery.Where("workshop_job_id IN ?", jobIDs)
	}
	var payments []models.LedgerRecord
	if err := applyRange(paymentQuery, rng).Find(&payments).Error; err != nil {
		return WorkshopSnapshot{}, err
	}

	return WorkshopSnapshot{Workshops: workshops, Jobs: jobs, Payments: payments}, nil
}

func (s *gormSource) KanbanSnapshot(ctx context.Context, filters KanbanFilters) (KanbanSnapshot, error) {
	projectQuery := s.db.WithContext(ctx).
		Preload("OrderItems").
		Preload("WorkshopJobs").
		Order("created_at ASC")
	if filters.CustomerID != nil {
		projectQuery = projectQuery.Where("customer_id = ?", *filters.CustomerID)
	}
	var projects []models.Project
	if err := projectQuery.Find(&projects).Error; err != nil {
		return KanbanSnapshot{}, err
	}

	var records []models.LedgerRecord
	err := s.db.WithContext(ctx).
		Where("project_id IS NOT NULL").
		Where("kind IN ?", []enums.RecordKind{enums.RecordKindIncome, enums.RecordKindExpense}).
		Find(&records).Error
	if err != nil {
		return KanbanSnapshot{}, err
	}

	categories, err := s.loadCategories(ctx, records)
	if err != nil {
		return KanbanSnapshot{}, err
	}

	return KanbanSnapshot{Projects: projects, Records: records, Categories: categories}, nil
}

func (s *gormSource) loadCategories(ctx context.Context, records []models.LedgerRecord) (map[uuid.UUID]models.Category, error) {
	seen := make(map[uuid.UUID]struct{})
	ids := make([]uuid.UUID, 0)
	for _, rec := range records {
		if rec.CategoryID == nil {
			continue
		}
		if _, ok := seen[*rec.CategoryID]; ok {
			continue
		}
		seen[*rec.CategoryID] = struct{}{}
		ids = append(ids, *rec.CategoryID)
	}
	if len(ids) == 0 {
		return map[uuid.UUID]models.Category{}, nil
	}

	var categories []models.Category
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]models.Category, len(categories))
	for _, category := range categories {
		byID[category.ID] = category
	}
	return byID, nil
}

func applyRange(query *gorm.DB, rng Range) *gorm.DB {
	if rng.Start != nil {
		query = query.Where("date >= ?", *rng.Start)
	}
	if rng.End != nil {
		query = query.Where("date <= ?", *rng.End)
	}
	return query
}
