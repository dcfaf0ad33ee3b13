package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/rothplan/roth-planner/internal/domain"
	"github.com/rothplan/roth-planner/pkg/dateutil"
)

// RMDCalculator computes required minimum distributions from the IRS
// Uniform Lifetime table.
type RMDCalculator struct {
	tables *domain.TaxTables
}

// NewRMDCalculator creates a calculator over the given tables.
func NewRMDCalculator(tables *domain.TaxTables) *RMDCalculator {
	return &RMDCalculator{tables: tables}
}

// StartAge returns the first RMD age for an owner born in birthYear.
// The SECURE 2.0 phase-in bands live in pkg/dateutil.
func (rc *RMDCalculator) StartAge(birthYear int) int {
	return dateutil.GetRMDAge(birthYear)
}

// RequiredDistribution computes the RMD for an owner of the given age
// holding priorYearEndBalance at the end of the prior year. The result
// is zero before the owner's start age or when no factor exists for
// the age.
func (rc *RMDCalculator) RequiredDistribution(priorYearEndBalance decimal.Decimal, age, birthYear int) decimal.Decimal {
	if age < rc.StartAge(birthYear) {
		return decimal.Zero
	}
	if priorYearEndBalance.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	factor, ok := rc.tables.LifeExpectancy[age]
	if !ok || factor.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return priorYearEndBalance.Div(factor)
}
