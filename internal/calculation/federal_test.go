package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rothplan/roth-planner/internal/domain"
	"github.com/rothplan/roth-planner/internal/tables"
)

func TestFederalTaxCalculate(t *testing.T) {
	ftc := NewFederalTaxCalculator(tables.Tables2025())

	tests := []struct {
		name        string
		magi        decimal.Decimal
		fs          domain.FilingStatus
		wantTax     decimal.Decimal
		wantBracket string
	}{
		{
			name:        "zero income",
			magi:        decimal.Zero,
			fs:          domain.FilingMarriedJointly,
			wantTax:     decimal.Zero,
			wantBracket: "10%",
		},
		{
			name:        "income below standard deduction",
			magi:        decimal.NewFromInt(25000),
			fs:          domain.FilingMarriedJointly,
			wantTax:     decimal.Zero,
			wantBracket: "10%",
		},
		{
			name: "mfj into the 12 percent bracket",
			magi: decimal.NewFromInt(100000),
			fs:   domain.FilingMarriedJointly,
			// taxable 70000: 23850*0.10 + 46150*0.12
			wantTax:     decimal.NewFromFloat(7923),
			wantBracket: "12%",
		},
		{
			name: "single into the 22 percent bracket",
			magi: decimal.NewFromInt(80000),
			fs:   domain.FilingSingle,
			// taxable 65000: 11925*0.10 + 36550*0.12 + 16525*0.22
			wantTax:     decimal.NewFromFloat(9214.0),
			wantBracket: "22%",
		},
		{
			name: "top unbounded bracket",
			magi: decimal.NewFromInt(2000000),
			fs:   domain.FilingSingle,
			// taxable 1985000
			wantTax: decimal.NewFromFloat(11925*0.10 + 36550*0.12 + 54875*0.22 +
				93950*0.24 + 53225*0.32 + 375825*0.35 + 1358650*0.37),
			wantBracket: "37%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ftc.Calculate(tt.magi, tt.fs)
			assert.True(t, got.Tax.Equal(tt.wantTax),
				"tax = %s, want %s", got.Tax, tt.wantTax)
			assert.Equal(t, tt.wantBracket, got.BracketLabel)
		})
	}
}

func TestFederalTaxRates(t *testing.T) {
	ftc := NewFederalTaxCalculator(tables.Tables2025())

	got := ftc.Calculate(decimal.NewFromInt(100000), domain.FilingMarriedJointly)
	assert.True(t, got.MarginalRate.Equal(decimal.NewFromFloat(0.12)))
	assert.True(t, got.EffectiveRate.Equal(got.Tax.Div(decimal.NewFromInt(100000))))

	zero := ftc.Calculate(decimal.Zero, domain.FilingSingle)
	assert.True(t, zero.EffectiveRate.IsZero())
	assert.True(t, zero.MarginalRate.Equal(decimal.NewFromFloat(0.10)))
}

func TestFederalTaxConversionDelta(t *testing.T) {
	ftc := NewFederalTaxCalculator(tables.Tables2025())
	fs := domain.FilingMarriedJointly

	base := decimal.NewFromInt(90000)
	conversion := decimal.NewFromInt(50000)

	with := ftc.Calculate(base.Add(conversion), fs)
	without := ftc.Calculate(base, fs)
	delta := with.Tax.Sub(without.Tax)

	assert.True(t, delta.GreaterThan(decimal.Zero))
	// The conversion never costs more than the top rate applied to it.
	assert.True(t, delta.LessThan(conversion.Mul(decimal.NewFromFloat(0.37))))
}
