package compare

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anushreedahiya/pension-benefit/internal/domain"
)

func scheme(id, name string, score int, monthly int64) domain.EstimatedScheme {
	m := decimal.NewFromInt(monthly)
	return domain.EstimatedScheme{
		ScoredScheme: domain.ScoredScheme{
			EligibilityResult: domain.EligibilityResult{
				Scheme:         domain.SchemeRecord{ID: id, Name: name},
				CountryMatch:   true,
				AgeEligible:    true,
				IncomeEligible: true,
				SectorEligible: true,
			},
			RelevanceScore: score,
			Recommendation: "Good for long-term planning",
			Advantages:     []string{"Government backed"},
			Disadvantages:  []string{},
		},
		Estimate: domain.BenefitEstimate{
			MonthlyPension: m,
			AnnualPension:  m.Mul(decimal.NewFromInt(12)),
			Calculation:    "trace " + id,
		},
	}
}

func sample() []domain.EstimatedScheme {
	return []domain.EstimatedScheme{
		scheme("CEN_APY", "Atal Pension Yojana", 7, 3000),
		scheme("CEN_PM_SYM", "Pradhan Mantri Shram Yogi Maan-dhan", 7, 3000),
		scheme("CEN_NPS_T1", "National Pension System Tier I", 3, 12000),
		scheme("CEN_EPF", "Employees' Provident Fund", 1, 0),
	}
}

func TestTopRecommendations(t *testing.T) {
	top := TopRecommendations(sample(), DefaultTopN)

	require.Len(t, top, 3)
	for i, r := range top {
		assert.Equal(t, i+1, r.Rank)
	}
	assert.Equal(t, "CEN_APY", top[0].SchemeID)
	assert.Equal(t, "Atal Pension Yojana", top[0].Scheme)
	assert.Equal(t, "trace CEN_APY", top[0].Calculation)
	assert.True(t, top[2].AnnualPension.Equal(decimal.NewFromInt(144000)))
	assert.True(t, top[0].Eligibility.SectorEligible)
}

func TestTopRecommendations_ShortList(t *testing.T) {
	assert.Len(t, TopRecommendations(sample()[:2], DefaultTopN), 2)
	assert.Empty(t, TopRecommendations(nil, DefaultTopN))
	assert.Empty(t, TopRecommendations(sample(), -1))
}

func TestFindScheme(t *testing.T) {
	tests := []struct {
		ref    string
		wantID string
		found  bool
	}{
		{"CEN_NPS_T1", "CEN_NPS_T1", true},
		{"national pension", "CEN_NPS_T1", true},
		{"ATAL", "CEN_APY", true},
		{"cen_apy", "", false},
		{"Unknown Scheme", "", false},
		{"  ", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, ok := FindScheme(sample(), tt.ref)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.wantID, got.Scheme.ID)
		})
	}
}

func TestCompareCurrent_Better(t *testing.T) {
	cmp := CompareCurrent(sample(), &domain.CurrentScheme{
		Scheme:         "CEN_NPS_T1",
		MonthlyPension: decimal.NewFromInt(8000),
	})

	require.NotNil(t, cmp)
	assert.Equal(t, "National Pension System Tier I", cmp.CurrentScheme)
	assert.True(t, cmp.RecommendedMonthlyPension.Equal(decimal.NewFromInt(12000)))
	assert.True(t, cmp.Difference.Equal(decimal.NewFromInt(4000)))
	assert.True(t, cmp.PercentageImprovement.Equal(decimal.NewFromInt(50)))
	assert.True(t, cmp.IsBetter)
	assert.Equal(t, "Consider switching to this scheme for better benefits", cmp.Recommendation)
}

func TestCompareCurrent_Optimal(t *testing.T) {
	cmp := CompareCurrent(sample(), &domain.CurrentScheme{
		Scheme:         "atal pension",
		MonthlyPension: decimal.NewFromInt(4500),
	})

	require.NotNil(t, cmp)
	assert.True(t, cmp.Difference.Equal(decimal.NewFromInt(-1500)))
	assert.True(t, cmp.PercentageImprovement.Equal(decimal.NewFromFloat(-33.33)))
	assert.False(t, cmp.IsBetter)
	assert.Equal(t, "Your current scheme appears to be optimal", cmp.Recommendation)
}

func TestCompareCurrent_NothingToCompare(t *testing.T) {
	assert.Nil(t, CompareCurrent(sample(), nil))
	assert.Nil(t, CompareCurrent(sample(), &domain.CurrentScheme{Scheme: "CEN_APY"}))
	assert.Nil(t, CompareCurrent(sample(), &domain.CurrentScheme{Scheme: "", MonthlyPension: decimal.NewFromInt(100)}))
	assert.Nil(t, CompareCurrent(sample(), &domain.CurrentScheme{Scheme: "Missing", MonthlyPension: decimal.NewFromInt(100)}))
}
