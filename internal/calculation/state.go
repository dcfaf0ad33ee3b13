package calculation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rothplan/roth-planner/internal/domain"
)

// StateTaxCalculator applies the flat-rate state income tax rules.
type StateTaxCalculator struct {
	tables *domain.TaxTables
}

// NewStateTaxCalculator creates a calculator over the given tables.
func NewStateTaxCalculator(tables *domain.TaxTables) *StateTaxCalculator {
	return &StateTaxCalculator{tables: tables}
}

// Calculate computes state income tax on the year's MAGI. known is
// false when the state code has no rule; the tax is then zero and the
// caller records the degraded year.
func (stc *StateTaxCalculator) Calculate(state string, magi decimal.Decimal, retired bool) (tax decimal.Decimal, known bool) {
	rule, ok := stc.tables.StateRules[strings.ToUpper(strings.TrimSpace(state))]
	if !ok {
		return decimal.Zero, false
	}
	if retired && rule.RetirementIncomeExempt {
		return decimal.Zero, true
	}
	if magi.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, true
	}
	return magi.Mul(rule.IncomeTaxRate), true
}
