// Package sequence issues unique, strictly increasing, human-readable
// document codes per document type. Each allocation is one atomic
// read-increment-write on the type's counter row; the storage layer's
// row-level guarantee serializes concurrent allocators, so no retries and no
// application-level locks are involved.
package sequence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/hoangminh/atelier-backend/pkg/db"
	"github.com/hoangminh/atelier-backend/pkg/enums"
	"github.com/hoangminh/atelier-backend/pkg/metrics"
)

// Allocation is one issued code: the raw counter value and its rendering.
type Allocation struct {
	Value int64
	Code  string
}

// Service defines code allocation operations.
type Service interface {
	// Allocate issues the next code for the document type in its own
	// transaction.
	Allocate(ctx context.Context, docType enums.DocumentType) (Allocation, error)
	// AllocateTx issues the next code on the caller's transaction so the code
	// and the document it names commit or roll back together.
	AllocateTx(ctx context.Context, tx *gorm.DB, docType enums.DocumentType) (Allocation, error)
	// Bootstrap raises the counter to the highest numeric suffix found in
	// legacy codes. Malformed suffixes are skipped, never an error.
	Bootstrap(ctx context.Context, docType enums.DocumentType, legacyCodes []string) error
	// FormatFor exposes the formatting rule for a document type.
	FormatFor(docType enums.DocumentType) (Format, bool)
}

type service struct {
	client  *db.Client
	repo    Repository
	formats map[enums.DocumentType]Format
	metrics *metrics.SequenceMetrics
}

// NewService wires an allocator service.
func NewService(client *db.Client, repository Repository, formats map[enums.DocumentType]Format, m *metrics.SequenceMetrics) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("db client required")
	}
	if repository == nil {
		return nil, fmt.Errorf("sequence repository required")
	}
	if formats == nil {
		formats = DefaultFormats()
	}
	return &service{
		client:  client,
		repo:    repository,
		formats: formats,
		metrics: m,
	}, nil
}

func (s *service) Allocate(ctx context.Context, docType enums.DocumentType) (Allocation, error) {
	var allocation Allocation
	err := s.client.WithTx(ctx, func(tx *gorm.DB) error {
		var txErr error
		allocation, txErr = s.AllocateTx(ctx, tx, docType)
		return txErr
	})
	if err != nil {
		return Allocation{}, err
	}
	return allocation, nil
}

func (s *service) AllocateTx(ctx context.Context, tx *gorm.DB, docType enums.DocumentType) (Allocation, error) {
	format, ok := s.formats[docType]
	if !ok {
		return Allocation{}, fmt.Errorf("no sequence format for document type %q", docType)
	}

	value, err := s.repo.Increment(ctx, tx, string(docType), format.Floor)
	if err != nil {
		return Allocation{}, fmt.Errorf("incrementing sequence %q: %w", docType, err)
	}

	s.metrics.IncAllocation(string(docType))
	return Allocation{Value: value, Code: format.Code(value)}, nil
}

func (s *service) Bootstrap(ctx context.Context, docType enums.DocumentType, legacyCodes []string) error {
	format, ok := s.formats[docType]
	if !ok {
		return fmt.Errorf("no sequence format for document type %q", docType)
	}

	max := format.Floor
	for _, code := range legacyCodes {
		if value, ok := format.NumericSuffix(code); ok && value > max {
			max = value
		}
	}
	if max == 0 {
		return nil
	}
	if err := s.repo.Seed(ctx, string(docType), max); err != nil {
		return fmt.Errorf("seeding sequence %q: %w", docType, err)
	}
	return nil
}

func (s *service) FormatFor(docType enums.DocumentType) (Format, bool) {
	format, ok := s.formats[docType]
	return format, ok
}
