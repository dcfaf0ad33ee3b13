package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/rothplan/roth-planner/internal/domain"
)

// BuildSchedule derives the effective conversion schedule from the plan
// and the per-asset conversion limits. When the annual cap forces a
// smaller yearly amount, the duration stretches so the full configured
// total still converts.
func BuildSchedule(assets []domain.Asset, plan *domain.ConversionPlan) domain.Schedule {
	if plan == nil || plan.Duration <= 0 {
		return domain.Schedule{}
	}

	total := decimal.Zero
	for _, a := range assets {
		if a.Category.Convertible() && a.MaxConversion.GreaterThan(decimal.Zero) {
			total = total.Add(a.MaxConversion)
		}
	}
	if total.LessThanOrEqual(decimal.Zero) {
		return domain.Schedule{}
	}

	duration := plan.Duration
	annual := total.Div(decimal.NewFromInt(int64(duration)))
	if plan.AnnualCap.GreaterThan(decimal.Zero) && annual.GreaterThan(plan.AnnualCap) {
		duration = int(total.Div(plan.AnnualCap).Ceil().IntPart())
		annual = total.Div(decimal.NewFromInt(int64(duration)))
	}

	return domain.Schedule{
		StartYear:    plan.StartYear,
		Duration:     duration,
		AnnualAmount: annual,
		TotalAmount:  total,
	}
}

// EffectiveRothWithdrawalStart shifts a withdrawal start that falls
// inside the conversion window to the year after the window closes.
func EffectiveRothWithdrawalStart(plan *domain.ConversionPlan, schedule domain.Schedule) int {
	if plan == nil || plan.RothWithdrawalStartYear == 0 {
		return 0
	}
	windowEnd := schedule.StartYear + schedule.Duration - 1
	if schedule.Duration > 0 && plan.RothWithdrawalStartYear <= windowEnd {
		return windowEnd + 1
	}
	return plan.RothWithdrawalStartYear
}
