package calculation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rothplan/roth-planner/internal/domain"
)

// TablesProvider supplies the reference tax dataset for a tax year.
type TablesProvider interface {
	TablesFor(year int) (*domain.TaxTables, error)
}

// RunInput is the complete, validated-on-entry input of one scenario run.
type RunInput struct {
	Config  domain.ScenarioConfig
	Primary domain.Person
	Spouse  *domain.Person
	Assets  []domain.Asset
	Plan    *domain.ConversionPlan
}

// ProjectorFactory builds the per-timeline ledger. Tests substitute
// fakes here; production uses the asset projection engine.
type ProjectorFactory func(input RunInput, schedule domain.Schedule, roth *RothLedger, rmd *RMDCalculator, logger Logger) Projector

// Orchestrator runs the baseline and conversion timelines for one
// scenario and compares them. It holds no per-run state; one instance
// may serve concurrent runs.
type Orchestrator struct {
	provider   TablesProvider
	logger     Logger
	newLedgers ProjectorFactory
}

// NewOrchestrator creates an orchestrator over the given provider.
func NewOrchestrator(provider TablesProvider, logger Logger) *Orchestrator {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Orchestrator{
		provider: provider,
		logger:   logger,
		newLedgers: func(input RunInput, schedule domain.Schedule, roth *RothLedger, rmd *RMDCalculator, logger Logger) Projector {
			return NewAssetProjectionEngine(&input.Primary, input.Spouse, input.Assets, schedule, roth, rmd, logger)
		},
	}
}

// SetProjectorFactory replaces the ledger construction hook.
func (o *Orchestrator) SetProjectorFactory(f ProjectorFactory) {
	if f != nil {
		o.newLedgers = f
	}
}

// SetLogger replaces the orchestrator's logger.
func (o *Orchestrator) SetLogger(l Logger) {
	if l != nil {
		o.logger = l
	}
}

// Run simulates both timelines and builds the full comparison result.
// All failures surfaced here are pre-run ConfigurationErrors; once the
// first year is simulated the run always completes.
func (o *Orchestrator) Run(input RunInput) (*domain.ProjectionResult, error) {
	if err := o.validate(&input); err != nil {
		return nil, err
	}
	cfg := input.Config

	tbl, err := o.provider.TablesFor(cfg.TaxYear)
	if err != nil {
		return nil, configErrorf("tax_year", "%v", err)
	}

	schedule := BuildSchedule(input.Assets, input.Plan)
	rothStart := EffectiveRothWithdrawalStart(input.Plan, schedule)

	horizon := o.horizon(&input, schedule)
	o.logger.Infof("scenario %q: simulating %d-%d, conversion window %d+%d",
		cfg.Name, horizon.start, horizon.end, schedule.StartYear, schedule.Duration)

	baselineYears, baselineEstate := o.runTimeline(input, tbl, domain.Schedule{}, 0, horizon)
	conversionYears, conversionEstate := o.runTimeline(input, tbl, schedule, rothStart, horizon)

	var agg MetricsAggregator
	baseMetrics := agg.Aggregate(baselineYears, baselineEstate)
	convMetrics := agg.Aggregate(conversionYears, conversionEstate)

	result := &domain.ProjectionResult{
		ScenarioName:    cfg.Name,
		BaselineYears:   baselineYears,
		ConversionYears: conversionYears,
		Baseline:        baseMetrics,
		Conversion:      convMetrics,
		Comparison:      agg.Compare(baseMetrics, convMetrics),
		ConversionCost:  agg.ConversionCost(conversionYears),
		Schedule:        schedule,
		AssetNames:      aliasTable(input.Assets),
	}
	return result, nil
}

type timelineHorizon struct {
	start          int
	end            int
	retirementYear int
}

// horizon derives the simulation window. The window opens at the
// earlier of retirement and the conversion start, never before the
// current year, and closes at the mortality age.
func (o *Orchestrator) horizon(input *RunInput, schedule domain.Schedule) timelineHorizon {
	cfg := input.Config
	birthYear, ok := input.Primary.BirthYear()
	if !ok {
		// Unknown primary birthdate: anchor retirement at the current
		// year and size the window from the configured age span.
		retirement := cfg.CurrentYear
		return timelineHorizon{
			start:          retirement,
			end:            retirement + (cfg.MortalityAge - cfg.RetirementAge),
			retirementYear: retirement,
		}
	}
	h := timelineHorizon{
		retirementYear: birthYear + cfg.RetirementAge,
		end:            birthYear + cfg.MortalityAge,
	}
	h.start = h.retirementYear
	if schedule.Duration > 0 && schedule.StartYear < h.start {
		h.start = schedule.StartYear
	}
	if h.start < cfg.CurrentYear {
		h.start = cfg.CurrentYear
	}
	return h
}

// runTimeline simulates one variant. A zero-total schedule produces the
// baseline: no conversions, no Roth ledger activity.
func (o *Orchestrator) runTimeline(input RunInput, tbl *domain.TaxTables, schedule domain.Schedule, rothStart int, horizon timelineHorizon) ([]domain.YearRecord, domain.EstateReport) {
	cfg := input.Config
	fs := cfg.FilingStatus
	medicareAge := cfg.MedicareAge
	if medicareAge <= 0 {
		medicareAge = 65
	}

	fedCalc := NewFederalTaxCalculator(tbl)
	stateCalc := NewStateTaxCalculator(tbl)
	rmdCalc := NewRMDCalculator(tbl)
	medicareCalc := NewMedicareIRMAACalculator(tbl, cfg.MedicalInflationOverride, cfg.IRMAAThresholdInflationOverride)
	estateCalc := NewEstateTaxCalculator(tbl)

	var plan *domain.ConversionPlan
	if schedule.TotalAmount.GreaterThan(decimal.Zero) {
		plan = input.Plan
	}
	roth := NewRothLedger(plan, rothStart)
	projector := o.newLedgers(input, schedule, roth, rmdCalc, o.logger)
	if warmable, ok := projector.(*AssetProjectionEngine); ok && cfg.CurrentYear < horizon.start {
		warmable.Warmup(cfg.CurrentYear, horizon.start)
	}

	magiHistory := make(map[int]decimal.Decimal)
	years := make([]domain.YearRecord, 0, horizon.end-horizon.start+1)
	var lastOutcome YearOutcome

	for year := horizon.start; year <= horizon.end; year++ {
		outcome := projector.AdvanceYear(year)
		lastOutcome = outcome

		primaryAge, primaryKnown := input.Primary.AgeInYear(year)
		spouseAge := 0
		if input.Spouse != nil {
			spouseAge, _ = input.Spouse.AgeInYear(year)
		}
		retired := year >= horizon.retirementYear
		if primaryKnown {
			retired = primaryAge >= cfg.RetirementAge
		}

		gross := outcome.Income.Add(outcome.RMDTotal)
		if !retired {
			gross = gross.Add(cfg.PreRetirementIncome)
		}
		magi := gross.Add(outcome.ConversionAmount)

		withConv := fedCalc.Calculate(magi, fs)
		withoutConv := fedCalc.Calculate(gross, fs)
		conversionTax := withConv.Tax.Sub(withoutConv.Tax)

		stateTax, stateKnown := stateCalc.Calculate(cfg.State, magi, retired)
		if !stateKnown {
			o.logger.Warnf("year %d: no tax rule for state %q, state tax recorded as zero", year, cfg.State)
		}

		rec := domain.YearRecord{
			Year:             year,
			PrimaryAge:       primaryAge,
			SpouseAge:        spouseAge,
			Retired:          retired,
			GrossIncome:      gross,
			MAGI:             magi,
			TaxableIncome:    withConv.TaxableIncome,
			FederalTax:       withConv.Tax,
			RegularIncomeTax: withoutConv.Tax,
			ConversionTax:    conversionTax,
			StateTax:         stateTax,
			BracketLabel:     withConv.BracketLabel,
			MarginalRate:     withConv.MarginalRate,
			EffectiveRate:    withConv.EffectiveRate,
			ConversionAmount: outcome.ConversionAmount,
			RMDTotal:         outcome.RMDTotal,
			RothBalance:      outcome.RothBalance,
			RothWithdrawal:   outcome.RothWithdrawal,
			Assets:           outcome.Assets,
			BirthdateUnknown: outcome.BirthdateUnknown || !primaryKnown,
			StateUnknown:     !stateKnown,
		}

		if primaryKnown && primaryAge >= medicareAge {
			lookback := medicareCalc.LookbackMAGI(magiHistory, year, magi)
			if cost := medicareCalc.YearCost(year, primaryAge, medicareAge, fs, lookback); cost != nil {
				rec.MedicareBase = cost.Base
				rec.MedicarePartB = cost.PartB
				rec.MedicarePartD = cost.PartD
				rec.IRMAA = cost.Surcharge
				rec.TotalMedicare = cost.Total
			}
		}

		rec.NetIncome = gross.
			Add(outcome.RothWithdrawal).
			Sub(rec.FederalTax).
			Sub(rec.StateTax).
			Sub(rec.TotalMedicare)

		magiHistory[year] = magi
		years = append(years, rec)
	}

	estate := estateCalc.Report(input.Assets, projector.Balances(), lastOutcome.RothBalance)
	return years, estate
}

func (o *Orchestrator) validate(input *RunInput) error {
	cfg := &input.Config
	if cfg.TaxYear <= 0 {
		return configErrorf("tax_year", "must be set")
	}
	if cfg.CurrentYear <= 0 {
		return configErrorf("current_year", "must be set")
	}
	if cfg.RetirementAge <= 0 {
		return configErrorf("retirement_age", "must be positive")
	}
	if cfg.MortalityAge <= cfg.RetirementAge {
		return configErrorf("mortality_age", "must exceed retirement age %d", cfg.RetirementAge)
	}
	if cfg.FilingStatus == "" {
		cfg.FilingStatus = domain.FilingSingle
	}
	if len(input.Assets) == 0 {
		return configErrorf("assets", "at least one asset is required")
	}
	seen := make(map[string]string, len(input.Assets))
	for _, a := range input.Assets {
		if a.ID == "" {
			return configErrorf("assets", "asset %q has no id", a.Name)
		}
		key := strings.ToLower(strings.TrimSpace(a.ID))
		if prev, dup := seen[key]; dup {
			return configErrorf("assets", "duplicate asset id %q (conflicts with %q)", a.ID, prev)
		}
		seen[key] = a.ID
		if a.GrowthRate.LessThan(decimal.NewFromInt(-1)) {
			return configErrorf("assets", "asset %q growth rate below -100%%", a.ID)
		}
		if a.Balance.LessThan(decimal.Zero) {
			return configErrorf("assets", "asset %q has a negative balance", a.ID)
		}
		if a.MaxConversion.GreaterThan(a.Balance) {
			return configErrorf("assets", "asset %q max_to_convert %s exceeds its balance %s",
				a.ID, a.MaxConversion.StringFixed(2), a.Balance.StringFixed(2))
		}
	}
	if input.Plan != nil {
		if input.Plan.Duration < 0 {
			return configErrorf("conversion_plan.duration", "must not be negative")
		}
		if input.Plan.Duration > 0 && input.Plan.StartYear == 0 {
			return configErrorf("conversion_plan.start_year", "must be set")
		}
		if input.Plan.Duration > 0 && input.Plan.StartYear < cfg.CurrentYear {
			return configErrorf("conversion_plan.start_year", "%d is before the current year %d", input.Plan.StartYear, cfg.CurrentYear)
		}
		if input.Plan.AnnualCap.LessThan(decimal.Zero) {
			return configErrorf("conversion_plan.annual_cap", "must not be negative")
		}
	}
	return nil
}

// aliasTable maps asset ids to display names for presentation layers.
func aliasTable(assets []domain.Asset) map[string]string {
	names := make(map[string]string, len(assets)+1)
	for _, a := range assets {
		names[a.ID] = a.DisplayName()
	}
	names[RothLedgerEstateID] = "Roth Conversion Ledger"
	return names
}
