package enums

import "fmt"

// DocumentType identifies a document family that owns its own code sequence.
type DocumentType string

const (
	DocumentTypeProject         DocumentType = "PROJECT"
	DocumentTypeWorkshopJob     DocumentType = "WORKSHOP_JOB"
	DocumentTypeExpenseCategory DocumentType = "EXPENSE_CATEGORY"
	DocumentTypeTransfer        DocumentType = "TRANSFER"
	DocumentTypeIncomeVoucher   DocumentType = "INCOME_VOUCHER"
	DocumentTypeExpenseVoucher  DocumentType = "EXPENSE_VOUCHER"
)

var validDocumentTypes = []DocumentType{
	DocumentTypeProject,
	DocumentTypeWorkshopJob,
	DocumentTypeExpenseCategory,
	DocumentTypeTransfer,
	DocumentTypeIncomeVoucher,
	DocumentTypeExpenseVoucher,
}

// IsValid reports whether the value matches a known document type.
func (t DocumentType) IsValid() bool {
	for _, candidate := range validDocumentTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseDocumentType converts raw input into DocumentType.
func ParseDocumentType(value string) (DocumentType, error) {
	for _, candidate := range validDocumentTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid document type %q", value)
}
