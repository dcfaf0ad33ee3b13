package domain

import (
	"github.com/shopspring/decimal"
)

// AssetYearState is the end-of-year state of a single asset.
type AssetYearState struct {
	Category AssetCategory   `json:"category"`
	Balance  decimal.Decimal `json:"balance"`
	RMD      decimal.Decimal `json:"rmd"`
	Income   decimal.Decimal `json:"income"`
}

// YearRecord is one simulated year of one timeline variant.
type YearRecord struct {
	Year       int  `json:"year"`
	PrimaryAge int  `json:"primary_age"`
	SpouseAge  int  `json:"spouse_age,omitempty"`
	Retired    bool `json:"retired"`

	GrossIncome   decimal.Decimal `json:"gross_income"`
	MAGI          decimal.Decimal `json:"magi"`
	TaxableIncome decimal.Decimal `json:"taxable_income"`

	FederalTax       decimal.Decimal `json:"federal_tax"`
	RegularIncomeTax decimal.Decimal `json:"regular_income_tax"`
	ConversionTax    decimal.Decimal `json:"conversion_tax"`
	StateTax         decimal.Decimal `json:"state_tax"`
	BracketLabel     string          `json:"tax_bracket"`
	MarginalRate     decimal.Decimal `json:"marginal_rate"`
	EffectiveRate    decimal.Decimal `json:"effective_rate"`

	MedicareBase  decimal.Decimal `json:"medicare_base"`
	MedicarePartB decimal.Decimal `json:"part_b"`
	MedicarePartD decimal.Decimal `json:"part_d"`
	IRMAA         decimal.Decimal `json:"irmaa_surcharge"`
	TotalMedicare decimal.Decimal `json:"total_medicare"`

	ConversionAmount decimal.Decimal `json:"conversion_amount"`
	RMDTotal         decimal.Decimal `json:"rmd_total"`
	RothBalance      decimal.Decimal `json:"roth_balance"`
	RothWithdrawal   decimal.Decimal `json:"roth_withdrawal"`
	NetIncome        decimal.Decimal `json:"net_income"`

	// Structured per-asset states keyed by asset id.
	Assets map[string]AssetYearState `json:"assets"`

	// Soft-failure markers: the year was computed with a documented
	// default instead of failing the run.
	BirthdateUnknown bool `json:"birthdate_unknown,omitempty"`
	StateUnknown     bool `json:"state_unknown,omitempty"`
}

// EstateReport is the final-year estate tax classification result.
type EstateReport struct {
	EstateTax        decimal.Decimal            `json:"estate_tax"`
	TotalTaxable     decimal.Decimal            `json:"total_taxable_estate"`
	TotalNonTaxable  decimal.Decimal            `json:"total_non_taxable_estate"`
	TotalEstate      decimal.Decimal            `json:"total_estate_value"`
	NetToHeirs       decimal.Decimal            `json:"net_to_heirs"`
	TaxableAssets    map[string]decimal.Decimal `json:"taxable_assets"`
	NonTaxableAssets map[string]decimal.Decimal `json:"non_taxable_assets"`
}

// Metrics are lifetime summaries of one timeline.
type Metrics struct {
	LifetimeTax         decimal.Decimal `json:"lifetime_tax"`
	LifetimeMedicare    decimal.Decimal `json:"lifetime_medicare"`
	LifetimeIRMAA       decimal.Decimal `json:"lifetime_irmaa"`
	TotalRMDs           decimal.Decimal `json:"total_rmds"`
	CumulativeNetIncome decimal.Decimal `json:"cumulative_net_income"`
	FinalRoth           decimal.Decimal `json:"final_roth"`
	InheritanceTax      decimal.Decimal `json:"inheritance_tax"`
	TotalExpenses       decimal.Decimal `json:"total_expenses"`
	Estate              EstateReport    `json:"estate"`
}

// MetricDelta compares one numeric metric across the two timelines.
// PercentChange is zero when the baseline value is zero.
type MetricDelta struct {
	Baseline      decimal.Decimal `json:"baseline"`
	Conversion    decimal.Decimal `json:"conversion"`
	Difference    decimal.Decimal `json:"difference"`
	PercentChange decimal.Decimal `json:"percent_change"`
}

// Comparison holds the per-metric deltas plus structured fields that are
// passed through without arithmetic.
type Comparison struct {
	Metrics          map[string]MetricDelta `json:"metrics"`
	EstateBaseline   EstateReport           `json:"estate_baseline"`
	EstateConversion EstateReport           `json:"estate_conversion"`
}

// ConversionYearDetail records one year in which a conversion occurred.
type ConversionYearDetail struct {
	Year             int             `json:"year"`
	Age              int             `json:"age"`
	ConversionAmount decimal.Decimal `json:"conversion_amount"`
	RegularIncome    decimal.Decimal `json:"regular_income"`
	RegularIncomeTax decimal.Decimal `json:"regular_income_tax"`
	TotalTax         decimal.Decimal `json:"total_tax"`
	ConversionTax    decimal.Decimal `json:"conversion_tax"`
}

// ConversionCostMetrics summarizes the cost of the executed schedule.
type ConversionCostMetrics struct {
	TotalConverted     decimal.Decimal        `json:"total_converted"`
	TotalConversionTax decimal.Decimal        `json:"total_conversion_tax"`
	EffectiveTaxRate   decimal.Decimal        `json:"effective_conversion_tax_rate"`
	ConversionYears    []ConversionYearDetail `json:"conversion_years"`
}

// Schedule is the effective conversion schedule after cap adjustment.
type Schedule struct {
	StartYear    int             `json:"start_year"`
	Duration     int             `json:"duration"`
	AnnualAmount decimal.Decimal `json:"annual_amount"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

// ProjectionResult is the complete output of one scenario run.
type ProjectionResult struct {
	ScenarioName    string                `json:"scenario_name"`
	BaselineYears   []YearRecord          `json:"baseline_years"`
	ConversionYears []YearRecord          `json:"conversion_years"`
	Baseline        Metrics               `json:"baseline_metrics"`
	Conversion      Metrics               `json:"conversion_metrics"`
	Comparison      Comparison            `json:"comparison"`
	ConversionCost  ConversionCostMetrics `json:"conversion_cost_metrics"`
	Schedule        Schedule              `json:"schedule"`

	// AssetNames maps asset ids to display names, for presentation only.
	AssetNames map[string]string `json:"asset_names"`
}
