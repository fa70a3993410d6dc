package enums

import "fmt"

// RecordKind maps to the record_kind_enum enum in Postgres.
type RecordKind string

const (
	RecordKindIncome     RecordKind = "income"
	RecordKindExpense    RecordKind = "expense"
	RecordKindTransfer   RecordKind = "transfer"
	RecordKindAdjustment RecordKind = "adjustment"
)

var validRecordKinds = []RecordKind{
	RecordKindIncome,
	RecordKindExpense,
	RecordKindTransfer,
	RecordKindAdjustment,
}

// IsValid reports whether the value matches the canonical record kind enum.
func (k RecordKind) IsValid() bool {
	for _, candidate := range validRecordKinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseRecordKind converts raw input into RecordKind.
func ParseRecordKind(value string) (RecordKind, error) {
	for _, candidate := range validRecordKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid record kind %q", value)
}
