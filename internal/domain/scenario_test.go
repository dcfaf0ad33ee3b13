package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilingStatus(t *testing.T) {
	tests := []struct {
		in   string
		want FilingStatus
	}{
		{"single", FilingSingle},
		{"Married Filing Jointly", FilingMarriedJointly},
		{"married_filing_separately", FilingMarriedSeparately},
		{"Head of Household", FilingHeadOfHousehold},
		{"Qualifying Widow(er)", FilingQualifyingWidow},
		{"", FilingSingle},
		{"unrecognized", FilingSingle},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseFilingStatus(tt.in), "input %q", tt.in)
	}

	assert.True(t, FilingMarriedJointly.IsJoint())
	assert.False(t, FilingMarriedSeparately.IsJoint())
	assert.False(t, FilingSingle.IsJoint())
}

func TestParseAssetCategory(t *testing.T) {
	got, err := ParseAssetCategory("Inherited Traditional Spouse")
	require.NoError(t, err)
	assert.Equal(t, CategoryInheritedTraditionalSpouse, got)

	_, err = ParseAssetCategory("bitcoin")
	assert.Error(t, err)
}

func TestAssetCategoryCapabilities(t *testing.T) {
	tests := []struct {
		category    AssetCategory
		requiresRMD bool
		hasBalance  bool
		taxable     bool
		counted     bool
	}{
		{CategoryQualified, true, true, true, true},
		{CategoryInheritedTraditionalSpouse, true, true, true, true},
		{CategoryInheritedTraditionalNonSpouse, true, true, true, true},
		{CategoryNonQualified, false, true, true, true},
		{CategoryRoth, false, true, false, true},
		{CategoryInheritedRothSpouse, false, true, false, true},
		{CategoryInheritedRothNonSpouse, false, true, false, true},
		{CategorySocialSecurity, false, false, false, false},
		{CategoryPension, false, false, false, false},
		{CategoryWages, false, false, false, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.requiresRMD, tt.category.RequiresRMD())
			assert.Equal(t, tt.requiresRMD, tt.category.Convertible(), "only RMD categories convert")
			assert.Equal(t, tt.hasBalance, tt.category.HasBalance())
			taxable, counted := tt.category.EstateTaxable()
			assert.Equal(t, tt.taxable, taxable)
			assert.Equal(t, tt.counted, counted)
			assert.NotEmpty(t, tt.category.DisplayName())
		})
	}
}

func TestPersonBirthYear(t *testing.T) {
	tests := []struct {
		birthdate string
		wantYear  int
		wantOK    bool
	}{
		{"1960-03-15", 1960, true},
		{"1958", 1958, true},
		{"1958-xx", 1958, true}, // year prefix tolerated
		{"", 0, false},
		{"soon", 0, false},
	}
	for _, tt := range tests {
		p := &Person{Birthdate: tt.birthdate}
		year, ok := p.BirthYear()
		assert.Equal(t, tt.wantOK, ok, "birthdate %q", tt.birthdate)
		if tt.wantOK {
			assert.Equal(t, tt.wantYear, year, "birthdate %q", tt.birthdate)
		}
	}

	var nobody *Person
	_, ok := nobody.BirthYear()
	assert.False(t, ok)
}

func TestPersonAgeInYear(t *testing.T) {
	p := &Person{Birthdate: "1960-03-15"}
	age, ok := p.AgeInYear(2025)
	require.True(t, ok)
	assert.Equal(t, 65, age)

	_, ok = (&Person{Birthdate: "unknown"}).AgeInYear(2025)
	assert.False(t, ok)
}

func TestAssetWithdrawalWindow(t *testing.T) {
	bounded := &Asset{WithdrawalStartAge: 67, WithdrawalEndAge: 70}
	assert.False(t, bounded.InWithdrawalWindow(66))
	assert.True(t, bounded.InWithdrawalWindow(67))
	assert.True(t, bounded.InWithdrawalWindow(70))
	assert.False(t, bounded.InWithdrawalWindow(71))

	openEnded := &Asset{WithdrawalStartAge: 67}
	assert.True(t, openEnded.InWithdrawalWindow(99))
}

func TestAssetDisplayName(t *testing.T) {
	named := &Asset{Name: "Rollover IRA", Category: CategoryQualified}
	assert.Equal(t, "Rollover IRA", named.DisplayName())

	unnamed := &Asset{Category: CategoryQualified}
	assert.Equal(t, "Qualified", unnamed.DisplayName())
}

func TestTaxTablesFallbacks(t *testing.T) {
	tbl := &TaxTables{
		Brackets: map[FilingStatus][]TaxBracket{
			FilingSingle: {{Min: decimal.Zero, Max: decimal.NewFromInt(100), Rate: decimal.NewFromFloat(0.1)}},
		},
		StandardDeductions: map[FilingStatus]decimal.Decimal{
			FilingSingle: decimal.NewFromInt(15000),
		},
		IRMAATiers: map[FilingStatus][]IRMAATier{
			FilingSingle: {{Threshold: decimal.NewFromInt(106000)}},
		},
	}

	assert.Len(t, tbl.BracketsFor(FilingHeadOfHousehold), 1)
	assert.True(t, tbl.StandardDeductionFor(FilingHeadOfHousehold).Equal(decimal.NewFromInt(15000)))
	assert.Len(t, tbl.IRMAATiersFor(FilingHeadOfHousehold), 1)
}
