package sequence

import (
	"context"
	"fmt"

	"github.com/hoangminh/atelier-backend/pkg/db"
	"github.com/hoangminh/atelier-backend/pkg/enums"
	pkgerrors "github.com/hoangminh/atelier-backend/pkg/errors"
	"github.com/hoangminh/atelier-backend/pkg/metrics"
)

// DefaultLegacyAttempts bounds the scan/insert retry loop.
const DefaultLegacyAttempts = 3

// ScanFunc lists the codes already issued for one document family.
type ScanFunc func(ctx context.Context) ([]string, error)

// PersistFunc writes the candidate code; it must surface the storage layer's
// unique-violation error unchanged so the allocator can detect the race.
type PersistFunc func(ctx context.Context, allocation Allocation) error

// LegacyAllocator is the scan-and-retry variant kept for migrating data sets
// that predate counter rows: read the max numeric suffix among existing
// codes, add one, and retry on a unique violation. Two concurrent scans can
// observe the same maximum, which is why the retry loop exists and why the
// counter-backed Service replaces this path for new documents.
type LegacyAllocator struct {
	docType     enums.DocumentType
	format      Format
	scan        ScanFunc
	maxAttempts int
	metrics     *metrics.SequenceMetrics
}

// NewLegacyAllocator builds the scan/retry allocator. maxAttempts values
// below 1 fall back to DefaultLegacyAttempts.
func NewLegacyAllocator(docType enums.DocumentType, format Format, scan ScanFunc, maxAttempts int, m *metrics.SequenceMetrics) (*LegacyAllocator, error) {
	if scan == nil {
		return nil, fmt.Errorf("scan func required")
	}
	if maxAttempts < 1 {
		maxAttempts = DefaultLegacyAttempts
	}
	return &LegacyAllocator{
		docType:     docType,
		format:      format,
		scan:        scan,
		maxAttempts: maxAttempts,
		metrics:     m,
	}, nil
}

// Allocate issues the next code and hands it to persist. Unique violations
// trigger a rescan; past the attempt ceiling the allocation fails permanently
// with a CONFLICT error rather than risking a duplicate code.
func (a *LegacyAllocator) Allocate(ctx context.Context, persist PersistFunc) (Allocation, error) {
	if persist == nil {
		return Allocation{}, fmt.Errorf("persist func required")
	}

	for attempt := 0; attempt < a.maxAttempts; attempt++ {
		codes, err := a.scan(ctx)
		if err != nil {
			return Allocation{}, fmt.Errorf("scanning existing codes for %q: %w", a.docType, err)
		}

		next := a.format.Floor
		for _, code := range codes {
			if value, ok := a.format.NumericSuffix(code); ok && value > next {
				next = value
			}
		}
		next++

		allocation := Allocation{Value: next, Code: a.format.Code(next)}
		err = persist(ctx, allocation)
		if err == nil {
			a.metrics.IncAllocation(string(a.docType))
			return allocation, nil
		}
		if !db.IsUniqueViolation(err, "") {
			return Allocation{}, err
		}
		a.metrics.IncConflict(string(a.docType))
	}

	return Allocation{}, pkgerrors.New(pkgerrors.CodeConflict,
		fmt.Sprintf("allocating %s code: retry ceiling of %d reached", a.docType, a.maxAttempts))
}
