package tables

import (
	"github.com/shopspring/decimal"

	"github.com/rothplan/roth-planner/internal/domain"
)

func bracket(min, max int64, rate float64) domain.TaxBracket {
	return domain.TaxBracket{
		Min:  decimal.NewFromInt(min),
		Max:  decimal.NewFromInt(max),
		Rate: decimal.NewFromFloat(rate),
	}
}

func tier(threshold int64, partB, partD float64) domain.IRMAATier {
	return domain.IRMAATier{
		Threshold:      decimal.NewFromInt(threshold),
		PartBSurcharge: decimal.NewFromFloat(partB),
		PartDSurcharge: decimal.NewFromFloat(partD),
	}
}

// Tables2025 returns the built-in 2025 reference dataset. The last
// bracket of every table has Max zero, meaning unbounded.
func Tables2025() *domain.TaxTables {
	singleBrackets := []domain.TaxBracket{
		bracket(0, 11925, 0.10),
		bracket(11925, 48475, 0.12),
		bracket(48475, 103350, 0.22),
		bracket(103350, 197300, 0.24),
		bracket(197300, 250525, 0.32),
		bracket(250525, 626350, 0.35),
		bracket(626350, 0, 0.37),
	}
	mfjBrackets := []domain.TaxBracket{
		bracket(0, 23850, 0.10),
		bracket(23850, 96950, 0.12),
		bracket(96950, 206700, 0.22),
		bracket(206700, 394600, 0.24),
		bracket(394600, 501050, 0.32),
		bracket(501050, 751600, 0.35),
		bracket(751600, 0, 0.37),
	}
	mfsBrackets := []domain.TaxBracket{
		bracket(0, 11925, 0.10),
		bracket(11925, 48475, 0.12),
		bracket(48475, 103350, 0.22),
		bracket(103350, 197300, 0.24),
		bracket(197300, 250525, 0.32),
		bracket(250525, 375800, 0.35),
		bracket(375800, 0, 0.37),
	}
	hohBrackets := []domain.TaxBracket{
		bracket(0, 17000, 0.10),
		bracket(17000, 64850, 0.12),
		bracket(64850, 103350, 0.22),
		bracket(103350, 197300, 0.24),
		bracket(197300, 250500, 0.32),
		bracket(250500, 626350, 0.35),
		bracket(626350, 0, 0.37),
	}

	singleTiers := []domain.IRMAATier{
		tier(106000, 74.00, 13.70),
		tier(133000, 185.00, 35.30),
		tier(167000, 295.90, 57.00),
		tier(200000, 406.90, 78.60),
		tier(500000, 443.90, 85.80),
	}
	mfjTiers := []domain.IRMAATier{
		tier(212000, 74.00, 13.70),
		tier(266000, 185.00, 35.30),
		tier(334000, 295.90, 57.00),
		tier(400000, 406.90, 78.60),
		tier(750000, 443.90, 85.80),
	}
	// MFS collapses to two tiers above the single base threshold.
	mfsTiers := []domain.IRMAATier{
		tier(106000, 406.90, 78.60),
		tier(394000, 443.90, 85.80),
	}

	return &domain.TaxTables{
		Year: 2025,
		Brackets: map[domain.FilingStatus][]domain.TaxBracket{
			domain.FilingSingle:            singleBrackets,
			domain.FilingMarriedJointly:    mfjBrackets,
			domain.FilingMarriedSeparately: mfsBrackets,
			domain.FilingHeadOfHousehold:   hohBrackets,
			domain.FilingQualifyingWidow:   mfjBrackets,
		},
		StandardDeductions: map[domain.FilingStatus]decimal.Decimal{
			domain.FilingSingle:            decimal.NewFromInt(15000),
			domain.FilingMarriedJointly:    decimal.NewFromInt(30000),
			domain.FilingMarriedSeparately: decimal.NewFromInt(15000),
			domain.FilingHeadOfHousehold:   decimal.NewFromInt(22500),
			domain.FilingQualifyingWidow:   decimal.NewFromInt(30000),
		},
		IRMAATiers: map[domain.FilingStatus][]domain.IRMAATier{
			domain.FilingSingle:            singleTiers,
			domain.FilingMarriedJointly:    mfjTiers,
			domain.FilingMarriedSeparately: mfsTiers,
			domain.FilingHeadOfHousehold:   singleTiers,
			domain.FilingQualifyingWidow:   mfjTiers,
		},
		MedicareRates: domain.MedicareRates{
			PartB: decimal.NewFromFloat(185.00),
			PartD: decimal.NewFromFloat(71.00),
		},
		StateRules:     stateRules2025(),
		LifeExpectancy: uniformLifetime2025(),
		EstateBrackets: []domain.EstateTaxBracket{
			{
				Min:     decimal.Zero,
				Max:     decimal.NewFromInt(13990000),
				Rate:    decimal.Zero,
				BaseTax: decimal.Zero,
			},
			{
				Min:     decimal.NewFromInt(13990000),
				Max:     decimal.Zero,
				Rate:    decimal.NewFromFloat(0.40),
				BaseTax: decimal.Zero,
			},
		},
		Inflation: domain.InflationRates{
			Medical:         decimal.NewFromFloat(0.05),
			IRMAAThresholds: decimal.NewFromFloat(0.01),
		},
	}
}

func stateRules2025() map[string]domain.StateTaxRule {
	flat := func(name string, rate float64, retirementExempt bool) domain.StateTaxRule {
		return domain.StateTaxRule{
			Name:                   name,
			IncomeTaxRate:          decimal.NewFromFloat(rate),
			RetirementIncomeExempt: retirementExempt,
		}
	}
	noTax := func(name string) domain.StateTaxRule {
		return domain.StateTaxRule{Name: name, IncomeTaxRate: decimal.Zero, RetirementIncomeExempt: true}
	}
	return map[string]domain.StateTaxRule{
		"AK": noTax("Alaska"),
		"FL": noTax("Florida"),
		"NV": noTax("Nevada"),
		"SD": noTax("South Dakota"),
		"TN": noTax("Tennessee"),
		"TX": noTax("Texas"),
		"WA": noTax("Washington"),
		"WY": noTax("Wyoming"),
		"NH": noTax("New Hampshire"),

		"PA": flat("Pennsylvania", 0.0307, true),
		"IL": flat("Illinois", 0.0495, true),
		"MS": flat("Mississippi", 0.0470, true),
		"IN": flat("Indiana", 0.0305, false),
		"MI": flat("Michigan", 0.0425, false),
		"NC": flat("North Carolina", 0.0450, false),
		"CO": flat("Colorado", 0.0440, false),
		"UT": flat("Utah", 0.0455, false),
		"KY": flat("Kentucky", 0.0400, false),
		"MA": flat("Massachusetts", 0.0500, false),
		"GA": flat("Georgia", 0.0539, false),
		"AZ": flat("Arizona", 0.0250, false),

		// Progressive states approximated with an effective flat rate.
		"CA": flat("California", 0.0800, false),
		"NY": flat("New York", 0.0625, false),
		"NJ": flat("New Jersey", 0.0575, false),
		"OH": flat("Ohio", 0.0350, false),
		"VA": flat("Virginia", 0.0550, false),
		"MD": flat("Maryland", 0.0500, false),
		"MN": flat("Minnesota", 0.0700, false),
		"OR": flat("Oregon", 0.0875, false),
		"WI": flat("Wisconsin", 0.0550, false),
		"CT": flat("Connecticut", 0.0600, false),
		"SC": flat("South Carolina", 0.0640, false),
		"MO": flat("Missouri", 0.0480, false),
		"AL": flat("Alabama", 0.0500, true),
		"IA": flat("Iowa", 0.0380, true),
	}
}

// uniformLifetime2025 is the IRS Uniform Lifetime table, ages 72-120.
func uniformLifetime2025() map[int]decimal.Decimal {
	factors := map[int]float64{
		72: 27.4, 73: 26.5, 74: 25.5, 75: 24.6, 76: 23.7,
		77: 22.9, 78: 22.0, 79: 21.1, 80: 20.2, 81: 19.4,
		82: 18.5, 83: 17.7, 84: 16.8, 85: 16.0, 86: 15.2,
		87: 14.4, 88: 13.7, 89: 12.9, 90: 12.2, 91: 11.5,
		92: 10.8, 93: 10.1, 94: 9.5, 95: 8.9, 96: 8.4,
		97: 7.8, 98: 7.3, 99: 6.8, 100: 6.4, 101: 6.0,
		102: 5.6, 103: 5.2, 104: 4.9, 105: 4.6, 106: 4.3,
		107: 4.1, 108: 3.9, 109: 3.7, 110: 3.5, 111: 3.4,
		112: 3.3, 113: 3.1, 114: 3.0, 115: 2.9, 116: 2.8,
		117: 2.7, 118: 2.5, 119: 2.3, 120: 2.0,
	}
	table := make(map[int]decimal.Decimal, len(factors))
	for age, f := range factors {
		table[age] = decimal.NewFromFloat(f)
	}
	return table
}
