package output

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rothplan/roth-planner/internal/domain"
)

func sampleResult() *domain.ProjectionResult {
	return &domain.ProjectionResult{
		ScenarioName: "sample",
		Schedule: domain.Schedule{
			StartYear:    2026,
			Duration:     4,
			AnnualAmount: decimal.NewFromInt(50000),
			TotalAmount:  decimal.NewFromInt(200000),
		},
		Comparison: domain.Comparison{
			Metrics: map[string]domain.MetricDelta{
				"lifetime_tax": {
					Baseline:      decimal.NewFromInt(300000),
					Conversion:    decimal.NewFromInt(280000),
					Difference:    decimal.NewFromInt(-20000),
					PercentChange: decimal.NewFromFloat(-6.67),
				},
			},
			EstateConversion: domain.EstateReport{
				TotalNonTaxable: decimal.NewFromInt(200000),
				NonTaxableAssets: map[string]decimal.Decimal{
					"roth_conversion_ledger": decimal.NewFromInt(200000),
				},
			},
		},
		ConversionCost: domain.ConversionCostMetrics{
			TotalConverted:     decimal.NewFromInt(200000),
			TotalConversionTax: decimal.NewFromInt(44000),
			EffectiveTaxRate:   decimal.NewFromFloat(0.22),
			ConversionYears: []domain.ConversionYearDetail{
				{Year: 2026, Age: 62, ConversionAmount: decimal.NewFromInt(50000), ConversionTax: decimal.NewFromInt(11000)},
			},
		},
		AssetNames: map[string]string{"roth_conversion_ledger": "Roth Conversion Ledger"},
	}
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "$1234.50", FormatCurrency(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "-6.67%", FormatPercentage(decimal.NewFromFloat(-6.67)))
	assert.Equal(t, "22.00%", FormatRate(decimal.NewFromFloat(0.22)))
}

func TestConsoleFormatter(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(sampleResult())
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "ROTH CONVERSION ANALYSIS: sample")
	assert.Contains(t, text, "Lifetime Tax")
	assert.Contains(t, text, "$-20000.00")
	assert.Contains(t, text, "effective rate 22.00%")
	assert.Contains(t, text, "Roth Conversion Ledger")
}

func TestJSONFormatterRoundTrips(t *testing.T) {
	data, err := JSONFormatter{}.Format(sampleResult())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "sample", decoded["scenario_name"])
}

func TestGetFormatterByName(t *testing.T) {
	assert.NotNil(t, GetFormatterByName("console"))
	assert.NotNil(t, GetFormatterByName(" JSON "))
	assert.Nil(t, GetFormatterByName("html"))
	assert.ElementsMatch(t, []string{"console", "json"}, AvailableFormatterNames())
}
