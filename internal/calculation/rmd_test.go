package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rothplan/roth-planner/internal/tables"
	"github.com/rothplan/roth-planner/pkg/dateutil"
)

func TestRMDStartAge(t *testing.T) {
	rc := NewRMDCalculator(tables.Tables2025())

	tests := []struct {
		birthYear int
		want      int
	}{
		{1945, 72},
		{1950, 72},
		{1951, 73},
		{1955, 73},
		{1959, 73},
		{1960, 75},
		{1975, 75},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, rc.StartAge(tt.birthYear), "birth year %d", tt.birthYear)
		assert.Equal(t, dateutil.GetRMDAge(tt.birthYear), rc.StartAge(tt.birthYear),
			"calculator must agree with dateutil for birth year %d", tt.birthYear)
	}
}

func TestRequiredDistribution(t *testing.T) {
	rc := NewRMDCalculator(tables.Tables2025())
	balance := decimal.NewFromInt(500000)

	t.Run("before start age", func(t *testing.T) {
		got := rc.RequiredDistribution(balance, 70, 1955)
		assert.True(t, got.IsZero())
	})

	t.Run("at age 73", func(t *testing.T) {
		got := rc.RequiredDistribution(balance, 73, 1952)
		want := balance.Div(decimal.NewFromFloat(26.5))
		assert.True(t, got.Equal(want), "rmd = %s, want %s", got, want)
	})

	t.Run("zero balance", func(t *testing.T) {
		got := rc.RequiredDistribution(decimal.Zero, 75, 1950)
		assert.True(t, got.IsZero())
	})

	t.Run("age past table uses no factor", func(t *testing.T) {
		got := rc.RequiredDistribution(balance, 121, 1900)
		assert.True(t, got.IsZero())
	})
}
