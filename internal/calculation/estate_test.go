package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rothplan/roth-planner/internal/domain"
	"github.com/rothplan/roth-planner/internal/tables"
)

func TestEstateReportClassification(t *testing.T) {
	ec := NewEstateTaxCalculator(tables.Tables2025())

	assets := []domain.Asset{
		{ID: "ira", Category: domain.CategoryQualified},
		{ID: "brokerage", Category: domain.CategoryNonQualified},
		{ID: "roth-ira", Category: domain.CategoryRoth},
		{ID: "inherited", Category: domain.CategoryInheritedTraditionalNonSpouse},
		{ID: "ss", Category: domain.CategorySocialSecurity},
	}
	balances := map[string]decimal.Decimal{
		"ira":       decimal.NewFromInt(500000),
		"brokerage": decimal.NewFromInt(300000),
		"roth-ira":  decimal.NewFromInt(200000),
		"inherited": decimal.NewFromInt(100000),
		"ss":        decimal.NewFromInt(999999),
	}
	rothLedger := decimal.NewFromInt(150000)

	report := ec.Report(assets, balances, rothLedger)

	assert.True(t, report.TotalTaxable.Equal(decimal.NewFromInt(900000)))
	assert.True(t, report.TotalNonTaxable.Equal(decimal.NewFromInt(350000)))
	assert.True(t, report.TotalEstate.Equal(decimal.NewFromInt(1250000)))

	// Under the exemption the estate owes nothing.
	assert.True(t, report.EstateTax.IsZero())
	assert.True(t, report.NetToHeirs.Equal(report.TotalEstate))

	// Income streams never appear in the breakdown.
	_, inTaxable := report.TaxableAssets["ss"]
	_, inNonTaxable := report.NonTaxableAssets["ss"]
	assert.False(t, inTaxable)
	assert.False(t, inNonTaxable)

	got, ok := report.NonTaxableAssets[RothLedgerEstateID]
	require.True(t, ok)
	assert.True(t, got.Equal(rothLedger))
}

func TestEstateReportCaseInsensitiveDedup(t *testing.T) {
	ec := NewEstateTaxCalculator(tables.Tables2025())

	assets := []domain.Asset{
		{ID: "IRA", Category: domain.CategoryQualified},
		{ID: "ira", Category: domain.CategoryQualified},
	}
	balances := map[string]decimal.Decimal{
		"IRA": decimal.NewFromInt(400000),
		"ira": decimal.NewFromInt(400000),
	}

	report := ec.Report(assets, balances, decimal.Zero)
	assert.True(t, report.TotalTaxable.Equal(decimal.NewFromInt(400000)),
		"duplicate id counted once, got %s", report.TotalTaxable)
}

func TestEstateTaxAboveExemption(t *testing.T) {
	ec := NewEstateTaxCalculator(tables.Tables2025())

	assets := []domain.Asset{{ID: "ira", Category: domain.CategoryQualified}}
	balances := map[string]decimal.Decimal{
		"ira": decimal.NewFromInt(15000000),
	}

	report := ec.Report(assets, balances, decimal.Zero)
	want := decimal.NewFromInt(15000000 - 13990000).Mul(decimal.NewFromFloat(0.40))
	assert.True(t, report.EstateTax.Equal(want), "tax = %s, want %s", report.EstateTax, want)
	assert.True(t, report.NetToHeirs.Equal(report.TotalEstate.Sub(want)))
}
