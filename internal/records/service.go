// Package records is the authoring side of the ledger: it validates input,
// hands every new document a code from the sequence allocator inside the
// creating transaction, and soft-deletes records so the aggregation engine
// only ever reads live rows.
package records

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hoangminh/atelier-backend/internal/sequence"
	"github.com/hoangminh/atelier-backend/pkg/db/models"
	"github.com/hoangminh/atelier-backend/pkg/enums"
	pkgerrors "github.com/hoangminh/atelier-backend/pkg/errors"
	"github.com/hoangminh/atelier-backend/pkg/logger"
	"github.com/hoangminh/atelier-backend/pkg/pagination"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service defines ledger document authoring operations.
type Service interface {
	CreateRecord(ctx context.Context, input CreateRecordInput) (*models.LedgerRecord, error)
	GetRecord(ctx context.Context, id uuid.UUID) (*models.LedgerRecord, error)
	DeleteRecord(ctx context.Context, id uuid.UUID) error
	ListRecords(ctx context.Context, input ListRecordsInput) (RecordPage, error)
	CreateProject(ctx context.Context, input CreateProjectInput) (*models.Project, error)
	CreateWorkshopJob(ctx context.Context, input CreateWorkshopJobInput) (*models.WorkshopJob, error)
	CreateCategory(ctx context.Context, input CreateCategoryInput) (*models.Category, error)
}

type service struct {
	repo      Repository
	tx        txRunner
	allocator sequence.Service
	logg      *logger.Logger
	validate  *validator.Validate
}

// NewService wires a records service with the required dependencies.
func NewService(repo Repository, tx txRunner, allocator sequence.Service, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("records repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if allocator == nil {
		return nil, fmt.Errorf("sequence allocator required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		repo:      repo,
		tx:        tx,
		allocator: allocator,
		logg:      logg,
		validate:  newValidator(),
	}, nil
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

func (s *service) CreateRecord(ctx context.Context, input CreateRecordInput) (*models.LedgerRecord, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid record input")
	}
	kind, err := enums.ParseRecordKind(input.Kind)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid record kind")
	}
	if err := validateRecordShape(kind, input); err != nil {
		return nil, err
	}

	record := &models.LedgerRecord{
		ID:                   uuid.New(),
		Kind:                 kind,
		Amount:               input.Amount,
		Date:                 input.Date,
		WalletID:             input.WalletID,
		CounterpartyWalletID: input.CounterpartyWalletID,
		ProjectID:            input.ProjectID,
		WorkshopJobID:        input.WorkshopJobID,
		CategoryID:           input.CategoryID,
		Note:                 input.Note,
		IsCommonCost:         input.IsCommonCost,
		IsAds:                input.IsAds,
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		allocation, err := s.allocator.AllocateTx(ctx, tx, voucherType(kind, input.Amount))
		if err != nil {
			return fmt.Errorf("allocating voucher code: %w", err)
		}
		record.Code = allocation.Code
		return s.repo.WithTx(tx).CreateRecord(ctx, record)
	})
	if err != nil {
		s.logg.Error(ctx, "creating ledger record", err)
		return nil, err
	}
	return record, nil
}

// validateRecordShape enforces the cross-field rules the struct tags cannot
// express.
func validateRecordShape(kind enums.RecordKind, input CreateRecordInput) error {
	switch kind {
	case enums.RecordKindAdjustment:
		if input.Amount.IsZero() {
			return pkgerrors.New(pkgerrors.CodeValidation, "adjustment amount must be non-zero")
		}
	default:
		if !input.Amount.IsPositive() {
			return pkgerrors.New(pkgerrors.CodeValidation, "amount must be positive")
		}
	}

	if kind == enums.RecordKindTransfer {
		if input.CounterpartyWalletID == nil {
			return pkgerrors.New(pkgerrors.CodeValidation, "transfer requires a destination wallet")
		}
		if *input.CounterpartyWalletID == input.WalletID {
			return pkgerrors.New(pkgerrors.CodeValidation, "transfer wallets must differ")
		}
	} else if input.CounterpartyWalletID != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "only transfers carry a destination wallet")
	}

	if kind != enums.RecordKindExpense {
		if input.IsCommonCost || input.IsAds {
			return pkgerrors.New(pkgerrors.CodeValidation, "cost flags only apply to expenses")
		}
		if input.WorkshopJobID != nil {
			return pkgerrors.New(pkgerrors.CodeValidation, "only expenses reference a workshop job")
		}
	}
	return nil
}

// voucherType picks the code series for a record. Adjustments borrow the
// voucher series matching their sign.
func voucherType(kind enums.RecordKind, amount decimal.Decimal) enums.DocumentType {
	switch kind {
	case enums.RecordKindIncome:
		return enums.DocumentTypeIncomeVoucher
	case enums.RecordKindExpense:
		return enums.DocumentTypeExpenseVoucher
	case enums.RecordKindTransfer:
		return enums.DocumentTypeTransfer
	default:
		if amount.IsNegative() {
			return enums.DocumentTypeExpenseVoucher
		}
		return enums.DocumentTypeIncomeVoucher
	}
}

func (s *service) GetRecord(ctx context.Context, id uuid.UUID) (*models.LedgerRecord, error) {
	record, err := s.repo.GetRecord(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading record")
	}
	if record == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "record not found")
	}
	return record, nil
}

func (s *service) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.SoftDeleteRecord(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting record")
	}
	if !deleted {
		return pkgerrors.New(pkgerrors.CodeNotFound, "record not found")
	}
	return nil
}

func (s *service) ListRecords(ctx context.Context, input ListRecordsInput) (RecordPage, error) {
	cursor, err := pagination.ParseCursor(input.Page.Cursor)
	if err != nil {
		return RecordPage{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}
	limit := pagination.NormalizeLimit(input.Page.Limit)

	rows, err := s.repo.ListRecords(ctx, input, pagination.LimitWithBuffer(input.Page.Limit), cursor)
	if err != nil {
		return RecordPage{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing records")
	}

	page := RecordPage{Records: make([]RecordOutput, 0, len(rows))}
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		next := pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
		page.NextCursor = &next
	}
	for _, row := range rows {
		page.Records = append(page.Records, toRecordOutput(row))
	}
	return page, nil
}

func toRecordOutput(record models.LedgerRecord) RecordOutput {
	return RecordOutput{
		ID:                   record.ID,
		Code:                 record.Code,
		Kind:                 record.Kind,
		Amount:               record.Amount,
		Date:                 record.Date,
		WalletID:             record.WalletID,
		CounterpartyWalletID: record.CounterpartyWalletID,
		ProjectID:            record.ProjectID,
		WorkshopJobID:        record.WorkshopJobID,
		CategoryID:           record.CategoryID,
		Note:                 record.Note,
		IsCommonCost:         record.IsCommonCost,
		IsAds:                record.IsAds,
		CreatedAt:            record.CreatedAt,
	}
}

func (s *service) CreateProject(ctx context.Context, input CreateProjectInput) (*models.Project, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid project input")
	}
	rawTotal, err := lineItemsTotal(input.Items)
	if err != nil {
		return nil, err
	}
	if err := validateDiscount(input.DiscountAmount, rawTotal); err != nil {
		return nil, err
	}

	project := &models.Project{
		ID:             uuid.New(),
		Name:           input.Name,
		CustomerID:     input.CustomerID,
		Stage:          enums.ProjectStageConsulting,
		DiscountAmount: input.DiscountAmount,
		OrderItems:     make([]models.OrderItem, 0, len(input.Items)),
	}
	for _, item := range input.Items {
		project.OrderItems = append(project.OrderItems, models.OrderItem{
			ID:               uuid.New(),
			ProjectID:        project.ID,
			Name:             item.Name,
			Unit:             item.Unit,
			PlannedQty:       item.Qty,
			PlannedUnitPrice: item.UnitPrice,
		})
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		allocation, err := s.allocator.AllocateTx(ctx, tx, enums.DocumentTypeProject)
		if err != nil {
			return fmt.Errorf("allocating project code: %w", err)
		}
		project.Code = allocation.Code
		return s.repo.WithTx(tx).CreateProject(ctx, project)
	})
	if err != nil {
		s.logg.Error(ctx, "creating project", err)
		return nil, err
	}
	return project, nil
}

func (s *service) CreateWorkshopJob(ctx context.Context, input CreateWorkshopJobInput) (*models.WorkshopJob, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid workshop job input")
	}
	// the raw amount is always derived from the lines
	rawAmount, err := lineItemsTotal(input.Items)
	if err != nil {
		return nil, err
	}
	if err := validateDiscount(input.DiscountAmount, rawAmount); err != nil {
		return nil, err
	}

	project, err := s.repo.GetProject(ctx, input.ProjectID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading project")
	}
	if project == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "project not found")
	}

	job := &models.WorkshopJob{
		ID:             uuid.New(),
		ProjectID:      input.ProjectID,
		WorkshopID:     input.WorkshopID,
		RawAmount:      rawAmount,
		DiscountAmount: input.DiscountAmount,
		Status:         enums.WorkshopJobStatusDraft,
		Note:           input.Note,
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		allocation, err := s.allocator.AllocateTx(ctx, tx, enums.DocumentTypeWorkshopJob)
		if err != nil {
			return fmt.Errorf("allocating job code: %w", err)
		}
		job.Code = allocation.Code
		return s.repo.WithTx(tx).CreateWorkshopJob(ctx, job)
	})
	if err != nil {
		s.logg.Error(ctx, "creating workshop job", err)
		return nil, err
	}
	return job, nil
}

func (s *service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*models.Category, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category input")
	}
	kind, err := enums.ParseCategoryKind(input.Kind)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category kind")
	}

	category := &models.Category{
		ID:         uuid.New(),
		Name:       input.Name,
		Kind:       kind,
		StableCode: input.StableCode,
		Keywords:   pq.StringArray(input.Keywords),
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		allocation, err := s.allocator.AllocateTx(ctx, tx, enums.DocumentTypeExpenseCategory)
		if err != nil {
			return fmt.Errorf("allocating category code: %w", err)
		}
		category.Code = allocation.Code
		return s.repo.WithTx(tx).CreateCategory(ctx, category)
	})
	if err != nil {
		s.logg.Error(ctx, "creating category", err)
		return nil, err
	}
	return category, nil
}

func lineItemsTotal(items []LineItemInput) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range items {
		if item.Qty.IsNegative() || item.UnitPrice.IsNegative() {
			return decimal.Zero, pkgerrors.New(pkgerrors.CodeValidation, "line quantity and price must not be negative")
		}
		total = total.Add(item.Qty.Mul(item.UnitPrice))
	}
	return total, nil
}

func validateDiscount(discount, rawTotal decimal.Decimal) error {
	if discount.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "discount must not be negative")
	}
	if discount.GreaterThan(rawTotal) {
		return pkgerrors.New(pkgerrors.CodeValidation, "discount exceeds the order total")
	}
	return nil
}
