package classify

import (
	"strings"

	"github.com/hoangminh/atelier-backend/pkg/enums"
)

// Rule associates a keyword with the income class it signals. Rules are
// evaluated in order, so narrower keywords ("final payment") must come before
// broader ones ("payment").
type Rule struct {
	Keyword string
	Class   enums.IncomeClass
}

// Lookup is the immutable configuration the income classifier matches
// against. Build one with NewLookup (or take DefaultLookup) and share it
// freely; it is never mutated after construction.
type Lookup struct {
	stableCodes  map[string]enums.IncomeClass
	nameKeywords []Rule
	noteKeywords []Rule
}

// NewLookup copies the provided tables into an immutable Lookup.
func NewLookup(stableCodes map[string]enums.IncomeClass, nameKeywords, noteKeywords []Rule) Lookup {
	codes := make(map[string]enums.IncomeClass, len(stableCodes))
	for code, class := range stableCodes {
		codes[strings.ToUpper(strings.TrimSpace(code))] = class
	}
	return Lookup{
		stableCodes:  codes,
		nameKeywords: normalizeRules(nameKeywords),
		noteKeywords: normalizeRules(noteKeywords),
	}
}

func normalizeRules(rules []Rule) []Rule {
	out := make([]Rule, 0, len(rules))
	for _, rule := range rules {
		keyword := strings.ToLower(strings.TrimSpace(rule.Keyword))
		if keyword == "" {
			continue
		}
		out = append(out, Rule{Keyword: keyword, Class: rule.Class})
	}
	return out
}

// DefaultLookup is the stock classification table. Stable category codes win
// outright; keyword lists order final-settlement terms ahead of the generic
// payment terms so "final payment" lands on final.
func DefaultLookup() Lookup {
	return NewLookup(
		map[string]enums.IncomeClass{
			"INCOME_DEPOSIT": enums.IncomeClassDeposit,
			"INCOME_PAYMENT": enums.IncomeClassPayment,
			"INCOME_FINAL":   enums.IncomeClassFinal,
		},
		[]Rule{
			{Keyword: "deposit", Class: enums.IncomeClassDeposit},
			{Keyword: "down payment", Class: enums.IncomeClassDeposit},
			{Keyword: "advance", Class: enums.IncomeClassDeposit},
			{Keyword: "final", Class: enums.IncomeClassFinal},
			{Keyword: "settlement", Class: enums.IncomeClassFinal},
			{Keyword: "payment", Class: enums.IncomeClassPayment},
			{Keyword: "installment", Class: enums.IncomeClassPayment},
		},
		[]Rule{
			{Keyword: "deposit", Class: enums.IncomeClassDeposit},
			{Keyword: "final", Class: enums.IncomeClassFinal},
			{Keyword: "settle", Class: enums.IncomeClassFinal},
			{Keyword: "payment", Class: enums.IncomeClassPayment},
		},
	)
}

func (l Lookup) byStableCode(code string) (enums.IncomeClass, bool) {
	class, ok := l.stableCodes[strings.ToUpper(strings.TrimSpace(code))]
	return class, ok
}

func matchRules(rules []Rule, text string) (enums.IncomeClass, bool) {
	lowered := strings.ToLower(text)
	for _, rule := range rules {
		if strings.Contains(lowered, rule.Keyword) {
			return rule.Class, true
		}
	}
	return "", false
}
