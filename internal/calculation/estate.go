package calculation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rothplan/roth-planner/internal/domain"
)

// RothLedgerEstateID keys the synthetic conversion ledger in estate
// breakdowns and the display alias table.
const RothLedgerEstateID = "roth_conversion_ledger"

// EstateTaxCalculator classifies final-year balances for estate tax.
// Tax-deferred and taxable brokerage categories are taxable to heirs;
// Roth categories pass tax-free. Income streams are not estate assets.
type EstateTaxCalculator struct {
	tables *domain.TaxTables
}

// NewEstateTaxCalculator creates a calculator over the given tables.
func NewEstateTaxCalculator(tables *domain.TaxTables) *EstateTaxCalculator {
	return &EstateTaxCalculator{tables: tables}
}

// Report builds the estate breakdown from final-year balances plus the
// synthetic Roth ledger. Duplicate asset ids differing only by case
// count once; the first occurrence wins.
func (ec *EstateTaxCalculator) Report(assets []domain.Asset, finalBalances map[string]decimal.Decimal, rothBalance decimal.Decimal) domain.EstateReport {
	report := domain.EstateReport{
		TaxableAssets:    make(map[string]decimal.Decimal),
		NonTaxableAssets: make(map[string]decimal.Decimal),
	}

	seen := make(map[string]struct{}, len(assets))
	for _, a := range assets {
		key := strings.ToLower(strings.TrimSpace(a.ID))
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		taxable, counted := a.Category.EstateTaxable()
		if !counted {
			continue
		}
		balance, ok := finalBalances[a.ID]
		if !ok || balance.LessThanOrEqual(decimal.Zero) {
			continue
		}
		if taxable {
			report.TaxableAssets[a.ID] = balance
			report.TotalTaxable = report.TotalTaxable.Add(balance)
		} else {
			report.NonTaxableAssets[a.ID] = balance
			report.TotalNonTaxable = report.TotalNonTaxable.Add(balance)
		}
	}

	if rothBalance.GreaterThan(decimal.Zero) {
		report.NonTaxableAssets[RothLedgerEstateID] = rothBalance
		report.TotalNonTaxable = report.TotalNonTaxable.Add(rothBalance)
	}

	report.TotalEstate = report.TotalTaxable.Add(report.TotalNonTaxable)
	report.EstateTax = ec.taxOn(report.TotalTaxable)
	report.NetToHeirs = report.TotalEstate.Sub(report.EstateTax)
	return report
}

// taxOn applies the progressive estate brackets to the taxable amount:
// tax = BaseTax + Rate * (amount - Min) of the containing bracket.
func (ec *EstateTaxCalculator) taxOn(amount decimal.Decimal) decimal.Decimal {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	for _, b := range ec.tables.EstateBrackets {
		if amount.LessThan(b.Min) {
			continue
		}
		if !b.Max.IsZero() && amount.GreaterThan(b.Max) {
			continue
		}
		return b.BaseTax.Add(b.Rate.Mul(amount.Sub(b.Min)))
	}
	return decimal.Zero
}
