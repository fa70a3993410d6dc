package enums

import "fmt"

// ExpenseClass is the reporting sub-type assigned to expense records.
type ExpenseClass string

const (
	ExpenseClassDirect          ExpenseClass = "direct"
	ExpenseClassCommon          ExpenseClass = "common"
	ExpenseClassWorkshopPayment ExpenseClass = "workshop_payment"
	ExpenseClassAds             ExpenseClass = "ads"
)

var validExpenseClasses = []ExpenseClass{
	ExpenseClassDirect,
	ExpenseClassCommon,
	ExpenseClassWorkshopPayment,
	ExpenseClassAds,
}

// IsValid reports whether the value matches the canonical expense class enum.
func (c ExpenseClass) IsValid() bool {
	for _, candidate := range validExpenseClasses {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseExpenseClass converts raw input into ExpenseClass.
func ParseExpenseClass(value string) (ExpenseClass, error) {
	for _, candidate := range validExpenseClasses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid expense class %q", value)
}
