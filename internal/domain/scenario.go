package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rothplan/roth-planner/pkg/dateutil"
)

// FilingStatus is the federal tax filing status for a scenario.
type FilingStatus string

const (
	FilingSingle            FilingStatus = "single"
	FilingMarriedJointly    FilingStatus = "married_filing_jointly"
	FilingMarriedSeparately FilingStatus = "married_filing_separately"
	FilingHeadOfHousehold   FilingStatus = "head_of_household"
	FilingQualifyingWidow   FilingStatus = "qualifying_widow"
)

// ParseFilingStatus normalizes free-text filing status input.
// Unknown or empty values default to single.
func ParseFilingStatus(s string) FilingStatus {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "(er)", "")
	switch FilingStatus(normalized) {
	case FilingMarriedJointly, FilingMarriedSeparately, FilingHeadOfHousehold, FilingQualifyingWidow, FilingSingle:
		return FilingStatus(normalized)
	}
	return FilingSingle
}

// IsJoint reports whether base Medicare premiums and IRMAA surcharges
// are doubled for this status.
func (fs FilingStatus) IsJoint() bool {
	return fs == FilingMarriedJointly
}

// AssetCategory is a closed enum of supported asset and income types.
// Capabilities (RMD requirement, convertibility, estate treatment) are
// fixed per category at ingestion and never re-derived from labels.
type AssetCategory string

const (
	CategoryQualified                     AssetCategory = "qualified"
	CategoryNonQualified                  AssetCategory = "non_qualified"
	CategoryInheritedTraditionalSpouse    AssetCategory = "inherited_traditional_spouse"
	CategoryInheritedTraditionalNonSpouse AssetCategory = "inherited_traditional_non_spouse"
	CategoryRoth                          AssetCategory = "roth"
	CategoryInheritedRothSpouse           AssetCategory = "inherited_roth_spouse"
	CategoryInheritedRothNonSpouse        AssetCategory = "inherited_roth_non_spouse"

	// Income-only categories. These carry no projected balance; they
	// contribute income streams inside their withdrawal age window.
	CategorySocialSecurity AssetCategory = "social_security"
	CategoryPension        AssetCategory = "pension"
	CategoryWages          AssetCategory = "wages"
	CategoryRentalIncome   AssetCategory = "rental_income"
	CategoryOtherIncome    AssetCategory = "other_income"
)

var assetCategories = map[AssetCategory]struct{}{
	CategoryQualified:                     {},
	CategoryNonQualified:                  {},
	CategoryInheritedTraditionalSpouse:    {},
	CategoryInheritedTraditionalNonSpouse: {},
	CategoryRoth:                          {},
	CategoryInheritedRothSpouse:           {},
	CategoryInheritedRothNonSpouse:        {},
	CategorySocialSecurity:                {},
	CategoryPension:                       {},
	CategoryWages:                         {},
	CategoryRentalIncome:                  {},
	CategoryOtherIncome:                   {},
}

// ParseAssetCategory validates a category string against the closed enum.
func ParseAssetCategory(s string) (AssetCategory, error) {
	normalized := AssetCategory(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_"))
	if _, ok := assetCategories[normalized]; !ok {
		return "", fmt.Errorf("unknown asset category %q", s)
	}
	return normalized, nil
}

// RequiresRMD reports whether the category is subject to required
// minimum distributions (tax-deferred categories only).
func (c AssetCategory) RequiresRMD() bool {
	switch c {
	case CategoryQualified, CategoryInheritedTraditionalSpouse, CategoryInheritedTraditionalNonSpouse:
		return true
	}
	return false
}

// Convertible reports whether balances in this category may be moved to
// the synthetic Roth ledger by a conversion plan.
func (c AssetCategory) Convertible() bool {
	return c.RequiresRMD()
}

// HasBalance reports whether the category carries a projected balance.
func (c AssetCategory) HasBalance() bool {
	switch c {
	case CategorySocialSecurity, CategoryPension, CategoryWages, CategoryRentalIncome, CategoryOtherIncome:
		return false
	}
	return true
}

// EstateTaxable classifies a category for final-year estate tax.
// counted is false for income-only categories, which are income streams
// rather than estate assets.
func (c AssetCategory) EstateTaxable() (taxable, counted bool) {
	switch c {
	case CategoryQualified, CategoryNonQualified, CategoryInheritedTraditionalSpouse, CategoryInheritedTraditionalNonSpouse:
		return true, true
	case CategoryRoth, CategoryInheritedRothSpouse, CategoryInheritedRothNonSpouse:
		return false, true
	}
	return false, false
}

// DisplayName is the presentation label for the category, used only in
// the alias table emitted alongside structured records.
func (c AssetCategory) DisplayName() string {
	switch c {
	case CategoryQualified:
		return "Qualified"
	case CategoryNonQualified:
		return "Non-Qualified"
	case CategoryInheritedTraditionalSpouse:
		return "Inherited Traditional Spouse"
	case CategoryInheritedTraditionalNonSpouse:
		return "Inherited Traditional Non-Spouse"
	case CategoryRoth:
		return "Roth"
	case CategoryInheritedRothSpouse:
		return "Inherited Roth Spouse"
	case CategoryInheritedRothNonSpouse:
		return "Inherited Roth Non-Spouse"
	case CategorySocialSecurity:
		return "Social Security"
	case CategoryPension:
		return "Pension"
	case CategoryWages:
		return "Wages"
	case CategoryRentalIncome:
		return "Rental Income"
	}
	return "Other Income"
}

// Owner identifies whose age governs an asset's withdrawal window and RMDs.
type Owner string

const (
	OwnerPrimary Owner = "primary"
	OwnerSpouse  Owner = "spouse"
)

// Person is a client or spouse. Birthdate stays in its raw form so an
// unparseable value can degrade softly (age unknown, RMD skipped)
// instead of failing the run.
type Person struct {
	Name      string `yaml:"name" json:"name"`
	Birthdate string `yaml:"birthdate" json:"birthdate"`
	Gender    string `yaml:"gender" json:"gender"`
}

// birthTime parses the full birthdate when one is present.
func (p *Person) birthTime() (time.Time, bool) {
	if p == nil || p.Birthdate == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", p.Birthdate)
	return t, err == nil
}

// BirthYear returns the person's birth year, or ok=false when the
// birthdate is missing or unparseable.
func (p *Person) BirthYear() (int, bool) {
	if t, ok := p.birthTime(); ok {
		return t.Year(), true
	}
	if p == nil || p.Birthdate == "" {
		return 0, false
	}
	// Tolerate a bare year prefix such as "1958".
	if len(p.Birthdate) >= 4 {
		var year int
		if _, err := fmt.Sscanf(p.Birthdate[:4], "%d", &year); err == nil && year > 1000 {
			return year, true
		}
	}
	return 0, false
}

// AgeInYear returns the person's age in the given calendar year using
// year arithmetic, or ok=false when the birth year is unknown.
func (p *Person) AgeInYear(year int) (int, bool) {
	if t, ok := p.birthTime(); ok {
		return dateutil.AgeInYear(t, year), true
	}
	birthYear, ok := p.BirthYear()
	if !ok {
		return 0, false
	}
	return year - birthYear, true
}

// Asset is a single account or income source owned by the client or spouse.
type Asset struct {
	ID                 string          `yaml:"id" json:"id"`
	Name               string          `yaml:"name" json:"name"`
	Category           AssetCategory   `yaml:"category" json:"category"`
	Owner              Owner           `yaml:"owner" json:"owner"`
	Balance            decimal.Decimal `yaml:"balance" json:"balance"`
	GrowthRate         decimal.Decimal `yaml:"growth_rate" json:"growth_rate"`
	MonthlyIncome      decimal.Decimal `yaml:"monthly_income" json:"monthly_income"`
	AnnualWithdrawal   decimal.Decimal `yaml:"annual_withdrawal" json:"annual_withdrawal"`
	WithdrawalStartAge int             `yaml:"withdrawal_start_age" json:"withdrawal_start_age"`
	WithdrawalEndAge   int             `yaml:"withdrawal_end_age" json:"withdrawal_end_age"`
	MaxConversion      decimal.Decimal `yaml:"max_to_convert" json:"max_to_convert"`
}

// DisplayName returns the asset's presentation name, falling back to the
// category label.
func (a *Asset) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.Category.DisplayName()
}

// InWithdrawalWindow reports whether the asset pays income at the given
// owner age. An end age of zero means no upper bound.
func (a *Asset) InWithdrawalWindow(ownerAge int) bool {
	if ownerAge < a.WithdrawalStartAge {
		return false
	}
	if a.WithdrawalEndAge > 0 && ownerAge > a.WithdrawalEndAge {
		return false
	}
	return true
}

// ConversionPlan schedules the movement of tax-deferred balances into
// the synthetic Roth ledger.
type ConversionPlan struct {
	StartYear               int             `yaml:"start_year" json:"start_year"`
	Duration                int             `yaml:"duration" json:"duration"`
	AnnualCap               decimal.Decimal `yaml:"annual_cap" json:"annual_cap"`
	RothGrowthRate          decimal.Decimal `yaml:"roth_growth_rate" json:"roth_growth_rate"`
	RothWithdrawalAmount    decimal.Decimal `yaml:"roth_withdrawal_amount" json:"roth_withdrawal_amount"`
	RothWithdrawalStartYear int             `yaml:"roth_withdrawal_start_year" json:"roth_withdrawal_start_year"`
}

// ScenarioConfig is the immutable per-run configuration.
type ScenarioConfig struct {
	Name                string          `yaml:"name" json:"name"`
	FilingStatus        FilingStatus    `yaml:"filing_status" json:"filing_status"`
	State               string          `yaml:"state" json:"state"`
	RetirementAge       int             `yaml:"retirement_age" json:"retirement_age"`
	MortalityAge        int             `yaml:"mortality_age" json:"mortality_age"`
	MedicareAge         int             `yaml:"medicare_age" json:"medicare_age"`
	TaxYear             int             `yaml:"tax_year" json:"tax_year"`
	CurrentYear         int             `yaml:"current_year" json:"current_year"`
	PreRetirementIncome decimal.Decimal `yaml:"pre_retirement_income" json:"pre_retirement_income"`

	// Optional overrides for the table-supplied inflation rates.
	MedicalInflationOverride        *decimal.Decimal `yaml:"medical_inflation" json:"medical_inflation,omitempty"`
	IRMAAThresholdInflationOverride *decimal.Decimal `yaml:"irmaa_threshold_inflation" json:"irmaa_threshold_inflation,omitempty"`
}
