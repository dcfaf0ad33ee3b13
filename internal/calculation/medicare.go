package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/rothplan/roth-planner/internal/domain"
)

// MedicareCost is one year's annual household Medicare cost. All
// amounts are annual totals across covered persons.
type MedicareCost struct {
	PartB     decimal.Decimal
	PartD     decimal.Decimal
	Base      decimal.Decimal
	Surcharge decimal.Decimal
	Total     decimal.Decimal
}

// MedicareIRMAACalculator computes Medicare premiums with IRMAA
// surcharges. MAGI determination uses a two year lookback: the
// surcharge for year N is driven by the MAGI reported for year N-2,
// falling back to the current year's MAGI when no history exists yet.
type MedicareIRMAACalculator struct {
	tables             *domain.TaxTables
	medicalInflation   decimal.Decimal
	thresholdInflation decimal.Decimal
}

// NewMedicareIRMAACalculator creates a calculator over the given
// tables. Overrides replace the table-supplied inflation rates when
// non-nil.
func NewMedicareIRMAACalculator(tables *domain.TaxTables, medicalOverride, thresholdOverride *decimal.Decimal) *MedicareIRMAACalculator {
	c := &MedicareIRMAACalculator{
		tables:             tables,
		medicalInflation:   tables.Inflation.Medical,
		thresholdInflation: tables.Inflation.IRMAAThresholds,
	}
	if medicalOverride != nil {
		c.medicalInflation = *medicalOverride
	}
	if thresholdOverride != nil {
		c.thresholdInflation = *thresholdOverride
	}
	return c
}

// LookbackMAGI selects the MAGI that governs year's surcharge from the
// per-year history, defaulting to currentMAGI.
func (mc *MedicareIRMAACalculator) LookbackMAGI(history map[int]decimal.Decimal, year int, currentMAGI decimal.Decimal) decimal.Decimal {
	if magi, ok := history[year-2]; ok {
		return magi
	}
	return currentMAGI
}

// YearCost computes the annual Medicare cost for one year. It returns
// nil before Medicare age. Joint filers cover two persons, doubling
// base premiums and surcharges.
func (mc *MedicareIRMAACalculator) YearCost(year, age, medicareAge int, fs domain.FilingStatus, lookbackMAGI decimal.Decimal) *MedicareCost {
	if age < medicareAge {
		return nil
	}

	yearsOut := year - mc.tables.Year
	if yearsOut < 0 {
		yearsOut = 0
	}
	premiumFactor := compound(mc.medicalInflation, yearsOut)
	thresholdFactor := compound(mc.thresholdInflation, yearsOut)

	persons := decimal.NewFromInt(1)
	if fs.IsJoint() {
		persons = decimal.NewFromInt(2)
	}
	months := decimal.NewFromInt(12)

	baseB := mc.tables.MedicareRates.PartB.Mul(premiumFactor)
	baseD := mc.tables.MedicareRates.PartD.Mul(premiumFactor)

	// Tiers are ascending; scan from the top so the highest strictly
	// exceeded threshold wins.
	var surchB, surchD decimal.Decimal
	tiers := mc.tables.IRMAATiersFor(fs)
	for i := len(tiers) - 1; i >= 0; i-- {
		threshold := tiers[i].Threshold.Mul(thresholdFactor)
		if lookbackMAGI.GreaterThan(threshold) {
			surchB = tiers[i].PartBSurcharge.Mul(premiumFactor)
			surchD = tiers[i].PartDSurcharge.Mul(premiumFactor)
			break
		}
	}

	annual := func(monthly decimal.Decimal) decimal.Decimal {
		return monthly.Mul(persons).Mul(months)
	}

	cost := &MedicareCost{
		PartB:     annual(baseB.Add(surchB)),
		PartD:     annual(baseD.Add(surchD)),
		Base:      annual(baseB.Add(baseD)),
		Surcharge: annual(surchB.Add(surchD)),
	}
	cost.Total = cost.PartB.Add(cost.PartD)
	return cost
}

// compound returns (1+rate)^n.
func compound(rate decimal.Decimal, n int) decimal.Decimal {
	factor := decimal.NewFromInt(1)
	step := decimal.NewFromInt(1).Add(rate)
	for i := 0; i < n; i++ {
		factor = factor.Mul(step)
	}
	return factor
}
