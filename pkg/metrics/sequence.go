package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// SequenceMetrics records code allocation activity per document type.
type SequenceMetrics struct {
	allocations *prometheus.CounterVec
	conflicts   *prometheus.CounterVec
}

// NewSequenceMetrics registers the allocator metrics on the provided
// registerer. A nil registerer yields a no-op recorder.
func NewSequenceMetrics(reg prometheus.Registerer) *SequenceMetrics {
	if reg == nil {
		return &SequenceMetrics{}
	}
	allocations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sequence_allocations_total",
		Help: "Issued document codes.",
	}, []string{"document_type"})
	conflicts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sequence_conflicts_total",
		Help: "Unique-violation retries in the legacy scan allocator.",
	}, []string{"document_type"})
	reg.MustRegister(allocations, conflicts)
	return &SequenceMetrics{
		allocations: allocations,
		conflicts:   conflicts,
	}
}

// IncAllocation increments the issued-code counter for the document type.
func (s *SequenceMetrics) IncAllocation(documentType string) {
	if s == nil || s.allocations == nil {
		return
	}
	s.allocations.WithLabelValues(normalizeLabel(documentType)).Inc()
}

// IncConflict increments the conflict counter for the document type.
func (s *SequenceMetrics) IncConflict(documentType string) {
	if s == nil || s.conflicts == nil {
		return
	}
	s.conflicts.WithLabelValues(normalizeLabel(documentType)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
