package enums

import "fmt"

// IncomeClass is the reporting sub-type assigned to income records.
type IncomeClass string

const (
	IncomeClassDeposit IncomeClass = "deposit"
	IncomeClassPayment IncomeClass = "payment"
	IncomeClassFinal   IncomeClass = "final"
)

var validIncomeClasses = []IncomeClass{
	IncomeClassDeposit,
	IncomeClassPayment,
	IncomeClassFinal,
}

// IsValid reports whether the value matches the canonical income class enum.
func (c IncomeClass) IsValid() bool {
	for _, candidate := range validIncomeClasses {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseIncomeClass converts raw input into IncomeClass.
func ParseIncomeClass(value string) (IncomeClass, error) {
	for _, candidate := range validIncomeClasses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid income class %q", value)
}
