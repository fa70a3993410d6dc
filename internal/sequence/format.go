package sequence

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hoangminh/atelier-backend/pkg/enums"
)

// Format is the code formatting rule for one document type: a caller-owned
// prefix, a zero-pad width, and the floor the counter starts above.
type Format struct {
	Prefix string
	Width  int
	Floor  int64
}

// Code renders an allocated value, e.g. prefix "CC", width 4, value 7 gives
// "CC0007". Values wider than Width keep all their digits.
func (f Format) Code(value int64) string {
	return fmt.Sprintf("%s%0*d", f.Prefix, f.Width, value)
}

// DefaultFormats are the stock rules per document type.
func DefaultFormats() map[enums.DocumentType]Format {
	return map[enums.DocumentType]Format{
		enums.DocumentTypeProject:         {Prefix: "CC", Width: 4},
		enums.DocumentTypeWorkshopJob:     {Prefix: "JG", Width: 4},
		enums.DocumentTypeExpenseCategory: {Prefix: "DM", Width: 3},
		enums.DocumentTypeTransfer:        {Prefix: "CK", Width: 4},
		enums.DocumentTypeIncomeVoucher:   {Prefix: "PT", Width: 5},
		enums.DocumentTypeExpenseVoucher:  {Prefix: "PC", Width: 5},
	}
}

// ParseRules merges "KEY=PREFIX:WIDTH[:FLOOR]" override entries over the
// default formats. Unknown keys and malformed entries are rejected so a typo
// in configuration fails loudly at startup.
func ParseRules(rules string) (map[enums.DocumentType]Format, error) {
	formats := DefaultFormats()
	if strings.TrimSpace(rules) == "" {
		return formats, nil
	}

	for _, entry := range strings.Split(rules, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		key, spec, found := strings.Cut(entry, "=")
		if !found {
			return nil, fmt.Errorf("sequence rule %q: missing '='", entry)
		}
		docType, err := enums.ParseDocumentType(strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("sequence rule %q: %w", entry, err)
		}

		parts := strings.Split(spec, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("sequence rule %q: expected PREFIX:WIDTH[:FLOOR]", entry)
		}
		width, err := strconv.Atoi(parts[1])
		if err != nil || width <= 0 {
			return nil, fmt.Errorf("sequence rule %q: invalid width %q", entry, parts[1])
		}
		format := Format{Prefix: strings.TrimSpace(parts[0]), Width: width}
		if len(parts) == 3 {
			floor, err := strconv.ParseInt(parts[2], 10, 64)
			if err != nil || floor < 0 {
				return nil, fmt.Errorf("sequence rule %q: invalid floor %q", entry, parts[2])
			}
			format.Floor = floor
		}
		formats[docType] = format
	}
	return formats, nil
}

// NumericSuffix extracts the numeric tail of a legacy code for the given
// format. ok is false for codes that do not carry the prefix or whose tail is
// not numeric; bootstrap ignores those instead of failing.
func (f Format) NumericSuffix(code string) (int64, bool) {
	tail, found := strings.CutPrefix(strings.TrimSpace(code), f.Prefix)
	if !found || tail == "" {
		return 0, false
	}
	value, err := strconv.ParseInt(tail, 10, 64)
	if err != nil || value < 0 {
		return 0, false
	}
	return value, true
}
