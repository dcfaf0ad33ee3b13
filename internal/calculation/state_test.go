package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rothplan/roth-planner/internal/tables"
)

func TestStateTaxCalculate(t *testing.T) {
	stc := NewStateTaxCalculator(tables.Tables2025())
	magi := decimal.NewFromInt(100000)

	tests := []struct {
		name      string
		state     string
		retired   bool
		wantTax   decimal.Decimal
		wantKnown bool
	}{
		{
			name:      "pennsylvania working",
			state:     "PA",
			retired:   false,
			wantTax:   magi.Mul(decimal.NewFromFloat(0.0307)),
			wantKnown: true,
		},
		{
			name:      "pennsylvania retired exempt",
			state:     "PA",
			retired:   true,
			wantTax:   decimal.Zero,
			wantKnown: true,
		},
		{
			name:      "florida no income tax",
			state:     "FL",
			retired:   false,
			wantTax:   decimal.Zero,
			wantKnown: true,
		},
		{
			name:      "north carolina retired still taxed",
			state:     "NC",
			retired:   true,
			wantTax:   magi.Mul(decimal.NewFromFloat(0.0450)),
			wantKnown: true,
		},
		{
			name:      "lowercase code accepted",
			state:     " pa ",
			retired:   false,
			wantTax:   magi.Mul(decimal.NewFromFloat(0.0307)),
			wantKnown: true,
		},
		{
			name:      "unknown state degrades to zero",
			state:     "ZZ",
			retired:   false,
			wantTax:   decimal.Zero,
			wantKnown: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tax, known := stc.Calculate(tt.state, magi, tt.retired)
			assert.Equal(t, tt.wantKnown, known)
			assert.True(t, tax.Equal(tt.wantTax), "tax = %s, want %s", tax, tt.wantTax)
		})
	}
}
