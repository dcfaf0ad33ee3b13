package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/rothplan/roth-planner/internal/domain"
)

// Metric names used as Comparison map keys.
const (
	MetricLifetimeTax         = "lifetime_tax"
	MetricLifetimeMedicare    = "lifetime_medicare"
	MetricLifetimeIRMAA       = "lifetime_irmaa"
	MetricTotalRMDs           = "total_rmds"
	MetricCumulativeNetIncome = "cumulative_net_income"
	MetricFinalRoth           = "final_roth"
	MetricInheritanceTax      = "inheritance_tax"
	MetricTotalExpenses       = "total_expenses"
)

// MetricsAggregator folds year records into lifetime metrics and
// compares the two timelines.
type MetricsAggregator struct{}

// Aggregate sums one timeline's year records into lifetime metrics.
func (MetricsAggregator) Aggregate(years []domain.YearRecord, estate domain.EstateReport) domain.Metrics {
	m := domain.Metrics{Estate: estate, InheritanceTax: estate.EstateTax}
	for _, yr := range years {
		m.LifetimeTax = m.LifetimeTax.Add(yr.FederalTax).Add(yr.StateTax)
		m.LifetimeMedicare = m.LifetimeMedicare.Add(yr.TotalMedicare)
		m.LifetimeIRMAA = m.LifetimeIRMAA.Add(yr.IRMAA)
		m.TotalRMDs = m.TotalRMDs.Add(yr.RMDTotal)
		m.CumulativeNetIncome = m.CumulativeNetIncome.Add(yr.NetIncome)
	}
	if n := len(years); n > 0 {
		m.FinalRoth = years[n-1].RothBalance
	}
	m.TotalExpenses = m.LifetimeTax.
		Add(m.LifetimeMedicare).
		Add(m.LifetimeIRMAA).
		Add(m.InheritanceTax)
	return m
}

// Compare builds per-metric deltas between the baseline and conversion
// timelines. Estate breakdowns pass through without arithmetic.
func (MetricsAggregator) Compare(baseline, conversion domain.Metrics) domain.Comparison {
	cmp := domain.Comparison{
		Metrics:          make(map[string]domain.MetricDelta, 8),
		EstateBaseline:   baseline.Estate,
		EstateConversion: conversion.Estate,
	}
	pairs := []struct {
		name string
		base decimal.Decimal
		conv decimal.Decimal
	}{
		{MetricLifetimeTax, baseline.LifetimeTax, conversion.LifetimeTax},
		{MetricLifetimeMedicare, baseline.LifetimeMedicare, conversion.LifetimeMedicare},
		{MetricLifetimeIRMAA, baseline.LifetimeIRMAA, conversion.LifetimeIRMAA},
		{MetricTotalRMDs, baseline.TotalRMDs, conversion.TotalRMDs},
		{MetricCumulativeNetIncome, baseline.CumulativeNetIncome, conversion.CumulativeNetIncome},
		{MetricFinalRoth, baseline.FinalRoth, conversion.FinalRoth},
		{MetricInheritanceTax, baseline.InheritanceTax, conversion.InheritanceTax},
		{MetricTotalExpenses, baseline.TotalExpenses, conversion.TotalExpenses},
	}
	for _, p := range pairs {
		delta := domain.MetricDelta{
			Baseline:   p.base,
			Conversion: p.conv,
			Difference: p.conv.Sub(p.base),
		}
		if !p.base.IsZero() {
			delta.PercentChange = delta.Difference.Div(p.base).Mul(decimal.NewFromInt(100))
		}
		cmp.Metrics[p.name] = delta
	}
	return cmp
}

// ConversionCost summarizes the executed schedule from the conversion
// timeline's records.
func (MetricsAggregator) ConversionCost(years []domain.YearRecord) domain.ConversionCostMetrics {
	var cost domain.ConversionCostMetrics
	for _, yr := range years {
		if yr.ConversionAmount.LessThanOrEqual(decimal.Zero) {
			continue
		}
		cost.TotalConverted = cost.TotalConverted.Add(yr.ConversionAmount)
		cost.TotalConversionTax = cost.TotalConversionTax.Add(yr.ConversionTax)
		cost.ConversionYears = append(cost.ConversionYears, domain.ConversionYearDetail{
			Year:             yr.Year,
			Age:              yr.PrimaryAge,
			ConversionAmount: yr.ConversionAmount,
			RegularIncome:    yr.GrossIncome,
			RegularIncomeTax: yr.RegularIncomeTax,
			TotalTax:         yr.FederalTax,
			ConversionTax:    yr.ConversionTax,
		})
	}
	if cost.TotalConverted.GreaterThan(decimal.Zero) {
		cost.EffectiveTaxRate = cost.TotalConversionTax.Div(cost.TotalConverted)
	}
	return cost
}
