package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/rothplan/roth-planner/internal/domain"
)

// YearOutcome is the result of advancing the asset ledger one year.
type YearOutcome struct {
	ConversionAmount decimal.Decimal
	RMDTotal         decimal.Decimal
	Income           decimal.Decimal
	Assets           map[string]domain.AssetYearState
	RothBalance      decimal.Decimal
	RothWithdrawal   decimal.Decimal
	BirthdateUnknown bool
}

// Projector advances a per-run asset ledger through simulation years.
// Balances exposes the end-of-run balances for estate classification.
type Projector interface {
	AdvanceYear(year int) YearOutcome
	Balances() map[string]decimal.Decimal
}

// RothLedger is the synthetic account that receives conversions. It is
// tax-free: growth and withdrawals never touch MAGI.
type RothLedger struct {
	Balance             decimal.Decimal
	GrowthRate          decimal.Decimal
	WithdrawalAmount    decimal.Decimal
	WithdrawalStartYear int

	lastContribution int
}

// NewRothLedger creates an empty ledger from the plan's Roth settings.
func NewRothLedger(plan *domain.ConversionPlan, withdrawalStartYear int) *RothLedger {
	if plan == nil {
		return &RothLedger{}
	}
	return &RothLedger{
		GrowthRate:          plan.RothGrowthRate,
		WithdrawalAmount:    plan.RothWithdrawalAmount,
		WithdrawalStartYear: withdrawalStartYear,
	}
}

// Contribute credits a conversion amount in the given year. Funds
// contributed this year see no growth until the following year.
func (rl *RothLedger) Contribute(year int, amount decimal.Decimal) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return
	}
	rl.Balance = rl.Balance.Add(amount)
	rl.lastContribution = year
}

// AdvanceYear applies growth and then any scheduled withdrawal, capped
// at the available balance. Call after all contributions for the year.
func (rl *RothLedger) AdvanceYear(year int) (withdrawal decimal.Decimal) {
	if year != rl.lastContribution {
		rl.Balance = rl.Balance.Add(rl.Balance.Mul(rl.GrowthRate))
	}
	if rl.WithdrawalStartYear > 0 && year >= rl.WithdrawalStartYear && rl.WithdrawalAmount.GreaterThan(decimal.Zero) {
		withdrawal = decimal.Min(rl.WithdrawalAmount, rl.Balance)
		rl.Balance = rl.Balance.Sub(withdrawal)
	}
	return withdrawal
}

// AssetProjectionEngine owns one timeline's balances. Every run gets a
// fresh engine; nothing is shared across runs or timelines.
type AssetProjectionEngine struct {
	primary *domain.Person
	spouse  *domain.Person
	assets  []domain.Asset

	balances  map[string]decimal.Decimal
	remaining map[string]decimal.Decimal
	perAsset  map[string]decimal.Decimal

	schedule domain.Schedule
	roth     *RothLedger
	rmd      *RMDCalculator
	logger   Logger
}

// NewAssetProjectionEngine builds an engine over a deep copy of the
// scenario's balances. schedule carries a zero TotalAmount for the
// baseline timeline, in which case no conversions occur.
func NewAssetProjectionEngine(primary, spouse *domain.Person, assets []domain.Asset, schedule domain.Schedule, roth *RothLedger, rmd *RMDCalculator, logger Logger) *AssetProjectionEngine {
	if logger == nil {
		logger = NopLogger{}
	}
	e := &AssetProjectionEngine{
		primary:   primary,
		spouse:    spouse,
		assets:    assets,
		balances:  make(map[string]decimal.Decimal, len(assets)),
		remaining: make(map[string]decimal.Decimal, len(assets)),
		perAsset:  make(map[string]decimal.Decimal, len(assets)),
		schedule:  schedule,
		roth:      roth,
		rmd:       rmd,
		logger:    logger,
	}
	duration := decimal.NewFromInt(int64(schedule.Duration))
	for _, a := range assets {
		if a.Category.HasBalance() {
			e.balances[a.ID] = a.Balance
		}
		if schedule.TotalAmount.GreaterThan(decimal.Zero) && a.Category.Convertible() && a.MaxConversion.GreaterThan(decimal.Zero) {
			e.remaining[a.ID] = a.MaxConversion
			e.perAsset[a.ID] = a.MaxConversion.Div(duration)
		}
	}
	return e
}

// Warmup grows balances from fromYear up to (not including) toYear.
// Used to carry today's balances forward to the simulation start
// without emitting records.
func (e *AssetProjectionEngine) Warmup(fromYear, toYear int) {
	for year := fromYear; year < toYear; year++ {
		for _, a := range e.assets {
			if !a.Category.HasBalance() {
				continue
			}
			bal := e.balances[a.ID]
			e.balances[a.ID] = bal.Add(bal.Mul(a.GrowthRate))
		}
	}
}

func (e *AssetProjectionEngine) owner(a *domain.Asset) *domain.Person {
	if a.Owner == domain.OwnerSpouse && e.spouse != nil {
		return e.spouse
	}
	return e.primary
}

func (e *AssetProjectionEngine) inConversionWindow(year int) bool {
	return e.schedule.TotalAmount.GreaterThan(decimal.Zero) &&
		year >= e.schedule.StartYear &&
		year < e.schedule.StartYear+e.schedule.Duration
}

// AdvanceYear runs one simulation year over every asset. Per balance
// asset the order is fixed: conversion out of the pre-growth balance,
// then growth, then the RMD computed from the balance the year opened
// with and deducted from the post-growth balance.
func (e *AssetProjectionEngine) AdvanceYear(year int) YearOutcome {
	outcome := YearOutcome{Assets: make(map[string]domain.AssetYearState, len(e.assets))}

	for i := range e.assets {
		a := &e.assets[i]
		owner := e.owner(a)
		age, ageKnown := owner.AgeInYear(year)
		if !ageKnown {
			outcome.BirthdateUnknown = true
		}

		state := domain.AssetYearState{Category: a.Category}

		if !a.Category.HasBalance() {
			if e.paysIncome(a, age, ageKnown) {
				state.Income = a.MonthlyIncome.Mul(decimal.NewFromInt(12)).Add(a.AnnualWithdrawal)
				outcome.Income = outcome.Income.Add(state.Income)
			}
			outcome.Assets[a.ID] = state
			continue
		}

		opening := e.balances[a.ID]
		balance := opening

		if e.inConversionWindow(year) {
			if annual, ok := e.perAsset[a.ID]; ok {
				converted := decimal.Min(decimal.Min(annual, e.remaining[a.ID]), balance)
				if converted.GreaterThan(decimal.Zero) {
					balance = balance.Sub(converted)
					e.remaining[a.ID] = e.remaining[a.ID].Sub(converted)
					e.roth.Contribute(year, converted)
					outcome.ConversionAmount = outcome.ConversionAmount.Add(converted)
					e.logger.Debugf("year %d: converted %s from %s", year, converted.StringFixed(2), a.ID)
				}
			}
		}

		balance = balance.Add(balance.Mul(a.GrowthRate))

		if a.Category.RequiresRMD() && ageKnown {
			if birthYear, ok := owner.BirthYear(); ok {
				rmd := e.rmd.RequiredDistribution(opening, age, birthYear)
				rmd = decimal.Min(rmd, balance)
				if rmd.GreaterThan(decimal.Zero) {
					balance = balance.Sub(rmd)
					state.RMD = rmd
					outcome.RMDTotal = outcome.RMDTotal.Add(rmd)
				}
			}
		}

		if e.paysIncome(a, age, ageKnown) {
			income := a.MonthlyIncome.Mul(decimal.NewFromInt(12)).Add(a.AnnualWithdrawal)
			income = decimal.Min(income, balance)
			if income.GreaterThan(decimal.Zero) {
				balance = balance.Sub(income)
				state.Income = income
				outcome.Income = outcome.Income.Add(income)
			}
		}

		e.balances[a.ID] = balance
		state.Balance = balance
		outcome.Assets[a.ID] = state
	}

	outcome.RothWithdrawal = e.roth.AdvanceYear(year)
	outcome.RothBalance = e.roth.Balance
	return outcome
}

// paysIncome reports whether the asset contributes income this year.
// With an unknown owner age only always-on streams (no age bounds) pay.
func (e *AssetProjectionEngine) paysIncome(a *domain.Asset, age int, ageKnown bool) bool {
	if a.MonthlyIncome.LessThanOrEqual(decimal.Zero) && a.AnnualWithdrawal.LessThanOrEqual(decimal.Zero) {
		return false
	}
	if !ageKnown {
		return a.WithdrawalStartAge == 0 && a.WithdrawalEndAge == 0
	}
	return a.InWithdrawalWindow(age)
}

// Balances returns a copy of the current end-of-year balances.
func (e *AssetProjectionEngine) Balances() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(e.balances))
	for id, b := range e.balances {
		out[id] = b
	}
	return out
}
