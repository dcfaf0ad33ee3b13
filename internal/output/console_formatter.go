package output

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/rothplan/roth-planner/internal/domain"
)

// ConsoleFormatter renders a concise comparison summary for terminals.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

// metricOrder fixes the display order of comparison metrics.
var metricOrder = []struct {
	key   string
	label string
}{
	{"lifetime_tax", "Lifetime Tax"},
	{"lifetime_medicare", "Lifetime Medicare"},
	{"lifetime_irmaa", "Lifetime IRMAA"},
	{"total_rmds", "Total RMDs"},
	{"cumulative_net_income", "Cumulative Net Income"},
	{"final_roth", "Final Roth Balance"},
	{"inheritance_tax", "Inheritance Tax"},
	{"total_expenses", "Total Expenses"},
}

func (c ConsoleFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "ROTH CONVERSION ANALYSIS: %s\n", result.ScenarioName)
	fmt.Fprintln(&buf, "============================================================")

	if result.Schedule.Duration > 0 {
		fmt.Fprintf(&buf, "Conversion schedule: %s/yr for %d years starting %d (total %s)\n",
			FormatCurrency(result.Schedule.AnnualAmount),
			result.Schedule.Duration,
			result.Schedule.StartYear,
			FormatCurrency(result.Schedule.TotalAmount))
	} else {
		fmt.Fprintln(&buf, "Conversion schedule: none")
	}
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "%-24s %16s %16s %16s %10s\n", "Metric", "Baseline", "Conversion", "Difference", "Change")
	for _, m := range metricOrder {
		delta, ok := result.Comparison.Metrics[m.key]
		if !ok {
			continue
		}
		fmt.Fprintf(&buf, "%-24s %16s %16s %16s %10s\n",
			m.label,
			FormatCurrency(delta.Baseline),
			FormatCurrency(delta.Conversion),
			FormatCurrency(delta.Difference),
			FormatPercentage(delta.PercentChange))
	}

	cost := result.ConversionCost
	if cost.TotalConverted.IsPositive() {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Converted %s at a cost of %s (effective rate %s)\n",
			FormatCurrency(cost.TotalConverted),
			FormatCurrency(cost.TotalConversionTax),
			FormatRate(cost.EffectiveTaxRate))
		for _, yr := range cost.ConversionYears {
			fmt.Fprintf(&buf, "  %d (age %d): converted %s, conversion tax %s\n",
				yr.Year, yr.Age, FormatCurrency(yr.ConversionAmount), FormatCurrency(yr.ConversionTax))
		}
	}

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "Estate at end of plan (conversion timeline):")
	estate := result.Comparison.EstateConversion
	fmt.Fprintf(&buf, "  Taxable %s, tax-free %s, estate tax %s, net to heirs %s\n",
		FormatCurrency(estate.TotalTaxable),
		FormatCurrency(estate.TotalNonTaxable),
		FormatCurrency(estate.EstateTax),
		FormatCurrency(estate.NetToHeirs))
	ids := make([]string, 0, len(estate.NonTaxableAssets))
	for id := range estate.NonTaxableAssets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		name := id
		if alias, ok := result.AssetNames[id]; ok {
			name = alias
		}
		fmt.Fprintf(&buf, "  tax-free to heirs: %-32s %s\n", name, FormatCurrency(estate.NonTaxableAssets[id]))
	}

	return buf.Bytes(), nil
}
