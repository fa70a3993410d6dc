package enums

import "fmt"

// CategoryKind maps to the category_kind_enum enum in Postgres.
type CategoryKind string

const (
	CategoryKindIncome  CategoryKind = "income"
	CategoryKindExpense CategoryKind = "expense"
)

var validCategoryKinds = []CategoryKind{
	CategoryKindIncome,
	CategoryKindExpense,
}

// IsValid reports whether the value matches the canonical category kind enum.
func (k CategoryKind) IsValid() bool {
	for _, candidate := range validCategoryKinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseCategoryKind converts raw input into CategoryKind.
func ParseCategoryKind(value string) (CategoryKind, error) {
	for _, candidate := range validCategoryKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid category kind %q", value)
}
