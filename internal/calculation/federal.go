package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rothplan/roth-planner/internal/domain"
)

// FederalTaxResult is the outcome of one federal tax computation.
type FederalTaxResult struct {
	Tax           decimal.Decimal
	TaxableIncome decimal.Decimal
	BracketLabel  string
	MarginalRate  decimal.Decimal
	EffectiveRate decimal.Decimal
}

// FederalTaxCalculator computes progressive federal income tax from the
// bracket tables of a single tax year.
type FederalTaxCalculator struct {
	tables *domain.TaxTables
}

// NewFederalTaxCalculator creates a calculator over the given tables.
func NewFederalTaxCalculator(tables *domain.TaxTables) *FederalTaxCalculator {
	return &FederalTaxCalculator{tables: tables}
}

// StandardDeduction returns the standard deduction for a filing status.
func (ftc *FederalTaxCalculator) StandardDeduction(fs domain.FilingStatus) decimal.Decimal {
	return ftc.tables.StandardDeductionFor(fs)
}

// Calculate computes federal tax on MAGI for the filing status. The
// standard deduction is applied first; the bracket label and marginal
// rate come from the highest bracket that received any income.
func (ftc *FederalTaxCalculator) Calculate(magi decimal.Decimal, fs domain.FilingStatus) FederalTaxResult {
	brackets := ftc.tables.BracketsFor(fs)
	if len(brackets) == 0 {
		return FederalTaxResult{}
	}

	taxable := magi.Sub(ftc.StandardDeduction(fs))
	if taxable.LessThan(decimal.Zero) {
		taxable = decimal.Zero
	}

	result := FederalTaxResult{
		TaxableIncome: taxable,
		BracketLabel:  rateLabel(brackets[0].Rate),
		MarginalRate:  brackets[0].Rate,
	}

	tax := decimal.Zero
	for _, b := range brackets {
		if taxable.LessThanOrEqual(b.Min) {
			break
		}
		upper := taxable
		if !b.Max.IsZero() && b.Max.LessThan(taxable) {
			upper = b.Max
		}
		inBracket := upper.Sub(b.Min)
		if inBracket.GreaterThan(decimal.Zero) {
			tax = tax.Add(inBracket.Mul(b.Rate))
			result.BracketLabel = rateLabel(b.Rate)
			result.MarginalRate = b.Rate
		}
	}

	result.Tax = tax
	if magi.GreaterThan(decimal.Zero) {
		result.EffectiveRate = tax.Div(magi)
	}
	return result
}

// rateLabel renders a bracket rate such as 0.22 as "22%".
func rateLabel(rate decimal.Decimal) string {
	return fmt.Sprintf("%s%%", rate.Mul(decimal.NewFromInt(100)).Round(0).String())
}
