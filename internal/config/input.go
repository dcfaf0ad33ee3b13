// Package config parses and validates scenario input files.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rothplan/roth-planner/internal/calculation"
	"github.com/rothplan/roth-planner/internal/domain"
)

// ScenarioFile is the YAML layout of a scenario input file. Free-text
// fields (filing status, categories) are normalized during conversion.
type ScenarioFile struct {
	Scenario struct {
		Name                string           `yaml:"name"`
		FilingStatus        string           `yaml:"filing_status"`
		State               string           `yaml:"state"`
		RetirementAge       int              `yaml:"retirement_age"`
		MortalityAge        int              `yaml:"mortality_age"`
		MedicareAge         int              `yaml:"medicare_age"`
		TaxYear             int              `yaml:"tax_year"`
		CurrentYear         int              `yaml:"current_year"`
		PreRetirementIncome decimal.Decimal  `yaml:"pre_retirement_income"`
		MedicalInflation    *decimal.Decimal `yaml:"medical_inflation"`
		ThresholdInflation  *decimal.Decimal `yaml:"irmaa_threshold_inflation"`
	} `yaml:"scenario"`

	Primary domain.Person  `yaml:"primary"`
	Spouse  *domain.Person `yaml:"spouse"`

	Assets []AssetEntry `yaml:"assets"`

	ConversionPlan *domain.ConversionPlan `yaml:"conversion_plan"`
}

// AssetEntry is one asset row of the input file.
type AssetEntry struct {
	ID                 string          `yaml:"id"`
	Name               string          `yaml:"name"`
	Category           string          `yaml:"category"`
	Owner              string          `yaml:"owner"`
	Balance            decimal.Decimal `yaml:"balance"`
	GrowthRate         decimal.Decimal `yaml:"growth_rate"`
	MonthlyIncome      decimal.Decimal `yaml:"monthly_income"`
	AnnualWithdrawal   decimal.Decimal `yaml:"annual_withdrawal"`
	WithdrawalStartAge int             `yaml:"withdrawal_start_age"`
	WithdrawalEndAge   int             `yaml:"withdrawal_end_age"`
	MaxConversion      decimal.Decimal `yaml:"max_to_convert"`
}

// InputParser loads scenario input files into run inputs.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates a YAML scenario file.
func (ip *InputParser) LoadFromFile(filename string) (*calculation.RunInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse builds a run input from raw YAML.
func (ip *InputParser) Parse(data []byte) (*calculation.RunInput, error) {
	var file ScenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	input, err := ip.toRunInput(&file)
	if err != nil {
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}
	return input, nil
}

func (ip *InputParser) toRunInput(file *ScenarioFile) (*calculation.RunInput, error) {
	sc := file.Scenario

	cfg := domain.ScenarioConfig{
		Name:                            sc.Name,
		FilingStatus:                    domain.ParseFilingStatus(sc.FilingStatus),
		State:                           sc.State,
		RetirementAge:                   sc.RetirementAge,
		MortalityAge:                    sc.MortalityAge,
		MedicareAge:                     sc.MedicareAge,
		TaxYear:                         sc.TaxYear,
		CurrentYear:                     sc.CurrentYear,
		PreRetirementIncome:             sc.PreRetirementIncome,
		MedicalInflationOverride:        sc.MedicalInflation,
		IRMAAThresholdInflationOverride: sc.ThresholdInflation,
	}
	if cfg.Name == "" {
		cfg.Name = "scenario"
	}
	if cfg.TaxYear == 0 {
		cfg.TaxYear = 2025
	}
	if cfg.CurrentYear == 0 {
		cfg.CurrentYear = cfg.TaxYear
	}
	if cfg.MedicareAge == 0 {
		cfg.MedicareAge = 65
	}

	if cfg.RetirementAge <= 0 {
		return nil, fmt.Errorf("scenario: retirement_age must be positive")
	}
	if cfg.MortalityAge <= cfg.RetirementAge {
		return nil, fmt.Errorf("scenario: mortality_age must exceed retirement_age")
	}
	if file.Primary.Name == "" && file.Primary.Birthdate == "" {
		return nil, fmt.Errorf("primary person is required")
	}
	if len(file.Assets) == 0 {
		return nil, fmt.Errorf("at least one asset is required")
	}

	assets := make([]domain.Asset, 0, len(file.Assets))
	for i, entry := range file.Assets {
		asset, err := ip.toAsset(&entry)
		if err != nil {
			return nil, fmt.Errorf("asset %d (%s): %w", i, entry.ID, err)
		}
		assets = append(assets, asset)
	}

	if file.ConversionPlan != nil && file.ConversionPlan.Duration < 0 {
		return nil, fmt.Errorf("conversion_plan: duration must not be negative")
	}

	return &calculation.RunInput{
		Config:  cfg,
		Primary: file.Primary,
		Spouse:  file.Spouse,
		Assets:  assets,
		Plan:    file.ConversionPlan,
	}, nil
}

func (ip *InputParser) toAsset(entry *AssetEntry) (domain.Asset, error) {
	if entry.ID == "" {
		return domain.Asset{}, fmt.Errorf("id is required")
	}
	category, err := domain.ParseAssetCategory(entry.Category)
	if err != nil {
		return domain.Asset{}, err
	}
	owner := domain.OwnerPrimary
	switch entry.Owner {
	case "", string(domain.OwnerPrimary):
	case string(domain.OwnerSpouse):
		owner = domain.OwnerSpouse
	default:
		return domain.Asset{}, fmt.Errorf("unknown owner %q", entry.Owner)
	}
	if entry.Balance.LessThan(decimal.Zero) {
		return domain.Asset{}, fmt.Errorf("balance cannot be negative")
	}
	if entry.MaxConversion.LessThan(decimal.Zero) {
		return domain.Asset{}, fmt.Errorf("max_to_convert cannot be negative")
	}
	if entry.MaxConversion.GreaterThan(decimal.Zero) && !category.Convertible() {
		return domain.Asset{}, fmt.Errorf("category %s cannot be converted", category)
	}
	if entry.WithdrawalEndAge > 0 && entry.WithdrawalEndAge < entry.WithdrawalStartAge {
		return domain.Asset{}, fmt.Errorf("withdrawal_end_age precedes withdrawal_start_age")
	}
	return domain.Asset{
		ID:                 entry.ID,
		Name:               entry.Name,
		Category:           category,
		Owner:              owner,
		Balance:            entry.Balance,
		GrowthRate:         entry.GrowthRate,
		MonthlyIncome:      entry.MonthlyIncome,
		AnnualWithdrawal:   entry.AnnualWithdrawal,
		WithdrawalStartAge: entry.WithdrawalStartAge,
		WithdrawalEndAge:   entry.WithdrawalEndAge,
		MaxConversion:      entry.MaxConversion,
	}, nil
}
