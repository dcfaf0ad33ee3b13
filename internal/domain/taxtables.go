package domain

import (
	"github.com/shopspring/decimal"
)

// TaxBracket is one federal income tax bracket. A zero Max on the last
// bracket of a table means the bracket is unbounded.
type TaxBracket struct {
	Min  decimal.Decimal
	Max  decimal.Decimal
	Rate decimal.Decimal
}

// IRMAATier is one IRMAA surcharge tier. The tier applies when MAGI
// strictly exceeds Threshold; surcharges are monthly per-person amounts.
type IRMAATier struct {
	Threshold      decimal.Decimal
	PartBSurcharge decimal.Decimal
	PartDSurcharge decimal.Decimal
}

// MedicareRates are base monthly per-person premiums.
type MedicareRates struct {
	PartB decimal.Decimal
	PartD decimal.Decimal
}

// StateTaxRule is the flat-rate state income tax model.
type StateTaxRule struct {
	Name                   string
	IncomeTaxRate          decimal.Decimal
	RetirementIncomeExempt bool
	SocialSecurityTaxed    bool
}

// EstateTaxBracket is one progressive estate tax bracket:
// tax = BaseTax + Rate * (amount - Min) within [Min, Max].
type EstateTaxBracket struct {
	Min     decimal.Decimal
	Max     decimal.Decimal
	Rate    decimal.Decimal
	BaseTax decimal.Decimal
}

// InflationRates are the per-category annual inflation assumptions used
// to project reference amounts past the table's base year.
type InflationRates struct {
	Medical         decimal.Decimal
	IRMAAThresholds decimal.Decimal
}

// TaxTables is the full reference dataset for one tax year. Loaded once,
// read-only afterwards, safe to share across concurrent runs.
type TaxTables struct {
	Year int

	// Brackets are sorted ascending by Min per filing status.
	Brackets           map[FilingStatus][]TaxBracket
	StandardDeductions map[FilingStatus]decimal.Decimal

	// IRMAATiers are sorted ascending by Threshold per filing status.
	IRMAATiers    map[FilingStatus][]IRMAATier
	MedicareRates MedicareRates

	// StateRules are keyed by two-letter state code.
	StateRules map[string]StateTaxRule

	// LifeExpectancy maps owner age to the IRS Uniform Lifetime factor,
	// ages 72 through 120.
	LifeExpectancy map[int]decimal.Decimal

	EstateBrackets []EstateTaxBracket
	Inflation      InflationRates
}

// BracketsFor returns the bracket table for a filing status, falling
// back to single when the status has no table.
func (t *TaxTables) BracketsFor(fs FilingStatus) []TaxBracket {
	if brackets, ok := t.Brackets[fs]; ok && len(brackets) > 0 {
		return brackets
	}
	return t.Brackets[FilingSingle]
}

// StandardDeductionFor returns the standard deduction for a filing
// status, falling back to single.
func (t *TaxTables) StandardDeductionFor(fs FilingStatus) decimal.Decimal {
	if d, ok := t.StandardDeductions[fs]; ok {
		return d
	}
	return t.StandardDeductions[FilingSingle]
}

// IRMAATiersFor returns the IRMAA tier table for a filing status,
// falling back to single.
func (t *TaxTables) IRMAATiersFor(fs FilingStatus) []IRMAATier {
	if tiers, ok := t.IRMAATiers[fs]; ok && len(tiers) > 0 {
		return tiers
	}
	return t.IRMAATiers[FilingSingle]
}
