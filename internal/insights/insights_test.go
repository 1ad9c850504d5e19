package insights

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anushreedahiya/pension-benefit/internal/domain"
)

func estimated(id string, monthly int64) domain.EstimatedScheme {
	m := decimal.NewFromInt(monthly)
	return domain.EstimatedScheme{
		ScoredScheme: domain.ScoredScheme{
			EligibilityResult: domain.EligibilityResult{Scheme: domain.SchemeRecord{ID: id}},
		},
		Estimate: domain.BenefitEstimate{MonthlyPension: m, AnnualPension: m.Mul(decimal.NewFromInt(12))},
	}
}

func TestSummarize_Totals(t *testing.T) {
	schemes := []domain.EstimatedScheme{
		estimated("CEN_APY", 3000),
		estimated("CEN_EPF", 0),
		estimated("CEN_PMKMY", 3000),
	}
	p := domain.UserProfile{Age: 35, Country: domain.CountryIndia, AnnualSalary: decimal.NewFromInt(240000)}

	got := NewAggregator().Summarize(schemes, p)

	assert.True(t, got.TotalMonthlyPension.Equal(decimal.NewFromInt(6000)))
	assert.True(t, got.TotalAnnualPension.Equal(decimal.NewFromInt(72000)))
	require.NotNil(t, got.ReplacementRatio)
	assert.True(t, got.ReplacementRatio.Equal(decimal.NewFromFloat(0.3)))
	assert.Empty(t, got.Warnings)
}

func TestSummarize_Warnings(t *testing.T) {
	p := domain.UserProfile{Age: 45, Country: domain.CountryIndia, AnnualSalary: decimal.NewFromInt(1200000)}

	got := NewAggregator().Summarize([]domain.EstimatedScheme{estimated("CEN_NPS_T1", 4000)}, p)

	assert.Equal(t, []string{
		"Your pension replacement ratio is low. Consider additional savings.",
		"Total monthly pension is below ₹5,000. Consider multiple schemes.",
	}, got.Warnings)
}

func TestSummarize_NoSalaryHasNoRatio(t *testing.T) {
	p := domain.UserProfile{Age: 65, Country: domain.CountryIndia}

	got := NewAggregator().Summarize([]domain.EstimatedScheme{estimated("CEN_NSAP_IGNOAPS", 200)}, p)

	assert.Nil(t, got.ReplacementRatio)
	assert.Equal(t, []string{"Total monthly pension is below ₹5,000. Consider multiple schemes."}, got.Warnings)
}

func TestSummarize_IndiaTips(t *testing.T) {
	tests := []struct {
		name    string
		profile domain.UserProfile
		tips    int
		ids     []string
	}{
		{
			name:    "young low income",
			profile: domain.UserProfile{Age: 25, AnnualSalary: decimal.NewFromInt(200000)},
			tips:    3,
			ids:     []string{"CEN_NPS_T1", "CEN_APY", "CEN_PM_SYM", "CEN_PMKMY", "CEN_PM_LVM"},
		},
		{
			name:    "mid career",
			profile: domain.UserProfile{Age: 45, AnnualSalary: decimal.NewFromInt(900000)},
			tips:    0,
			ids:     []string{},
		},
		{
			name: "senior widow",
			profile: domain.UserProfile{Age: 65, AnnualSalary: decimal.NewFromInt(600000),
				Categories: domain.SpecialCategories{Widow: "Yes"}},
			tips: 2,
			ids:  []string{"CEN_SCSS", "CEN_PMVVY", "CEN_NSAP_IGNWPS"},
		},
		{
			name: "disabled",
			profile: domain.UserProfile{Age: 50, AnnualSalary: decimal.NewFromInt(600000),
				Categories: domain.SpecialCategories{Disability: "Yes", DisabilityPercent: 60}},
			tips: 1,
			ids:  []string{"CEN_NSAP_DISABILITY"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.profile.Country = domain.CountryIndia
			got := NewAggregator().Summarize(nil, tt.profile)
			assert.Len(t, got.Tips, tt.tips)
			assert.Equal(t, tt.ids, got.RecommendedSchemeIDs)
		})
	}
}

func TestSummarize_OtherCountries(t *testing.T) {
	usa := NewAggregator().Summarize(nil, domain.UserProfile{Age: 63, Country: domain.CountryUSA, AnnualSalary: decimal.NewFromInt(60000)})
	assert.Equal(t, []string{"USA_FED_SS_RETIRE"}, usa.RecommendedSchemeIDs)
	assert.Contains(t, usa.Warnings, "Total monthly pension is below $5,000. Consider multiple schemes.")

	uk := NewAggregator().Summarize(nil, domain.UserProfile{Age: 67, Country: domain.CountryUK, AnnualSalary: decimal.NewFromInt(9000)})
	assert.Equal(t, []string{"UK_STATE_NEW", "UK_PENSION_CREDIT"}, uk.RecommendedSchemeIDs)

	japan := NewAggregator().Summarize(nil, domain.UserProfile{Age: 30, Country: domain.CountryJapan})
	assert.Equal(t, []string{"JPN_IND_IDECO", "JPN_NAT_NP_BASIC"}, japan.RecommendedSchemeIDs)
	assert.Contains(t, japan.Warnings, "Total monthly pension is below ¥5,000. Consider multiple schemes.")
}

func TestSummarize_LowTotalFloorIsSharedAcrossCountries(t *testing.T) {
	lowTotal := func(c domain.Country) string {
		return "Total monthly pension is below " + c.CurrencySymbol() + "5,000. Consider multiple schemes."
	}

	tests := []struct {
		name    string
		country domain.Country
		monthly int64
		warn    bool
	}{
		{name: "usa below floor", country: domain.CountryUSA, monthly: 2000, warn: true},
		{name: "japan above floor", country: domain.CountryJapan, monthly: 60000, warn: false},
		{name: "uk at floor", country: domain.CountryUK, monthly: 5000, warn: false},
		{name: "india just below floor", country: domain.CountryIndia, monthly: 4999, warn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.UserProfile{Age: 40, Country: tt.country}
			got := NewAggregator().Summarize([]domain.EstimatedScheme{estimated("ANY", tt.monthly)}, p)
			if tt.warn {
				assert.Equal(t, []string{lowTotal(tt.country)}, got.Warnings)
			} else {
				assert.Empty(t, got.Warnings)
			}
		})
	}
}

func TestSummarize_ReplacementRatioComparedBeforeRounding(t *testing.T) {
	p := domain.UserProfile{Age: 45, Country: domain.CountryIndia, AnnualSalary: decimal.NewFromInt(1000000)}

	got := NewAggregator().Summarize([]domain.EstimatedScheme{estimated("CEN_NPS_T1", 24997)}, p)

	require.NotNil(t, got.ReplacementRatio)
	assert.True(t, got.ReplacementRatio.Equal(decimal.NewFromFloat(0.3)), got.ReplacementRatio.String())
	assert.Equal(t, []string{"Your pension replacement ratio is low. Consider additional savings."}, got.Warnings)
}

func TestFormatFloor(t *testing.T) {
	assert.Equal(t, "₹5,000", formatFloor(domain.CountryIndia, decimal.NewFromInt(5000)))
	assert.Equal(t, "¥5,000", formatFloor(domain.CountryJapan, LowMonthlyTotal))
	assert.Equal(t, "£999", formatFloor(domain.CountryUK, decimal.NewFromInt(999)))
}
