package compare

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/anushreedahiya/pension-benefit/internal/domain"
)

// DefaultTopN is the size of the shortlist returned for full profiles
const DefaultTopN = 3

const (
	recommendSwitch = "Consider switching to this scheme for better benefits"
	recommendStay   = "Your current scheme appears to be optimal"
)

var hundred = decimal.NewFromInt(100)

// TopRecommendations ranks the first n schemes of an already sorted list
func TopRecommendations(schemes []domain.EstimatedScheme, n int) []domain.TopRecommendation {
	if n > len(schemes) {
		n = len(schemes)
	}
	if n < 0 {
		n = 0
	}

	top := make([]domain.TopRecommendation, 0, n)
	for i, s := range schemes[:n] {
		top = append(top, domain.TopRecommendation{
			Rank:           i + 1,
			Scheme:         s.Scheme.Name,
			SchemeID:       s.Scheme.ID,
			MonthlyPension: s.Estimate.MonthlyPension,
			AnnualPension:  s.Estimate.AnnualPension,
			Calculation:    s.Estimate.Calculation,
			RelevanceScore: s.RelevanceScore,
			Recommendation: s.Recommendation,
			Advantages:     s.Advantages,
			Disadvantages:  s.Disadvantages,
			Eligibility:    s.Flags(),
		})
	}
	return top
}

// FindScheme returns the first scheme whose id equals ref or whose name
// contains ref, ignoring case
func FindScheme(schemes []domain.EstimatedScheme, ref string) (domain.EstimatedScheme, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return domain.EstimatedScheme{}, false
	}
	needle := strings.ToLower(ref)
	for _, s := range schemes {
		if s.Scheme.ID == ref || strings.Contains(strings.ToLower(s.Scheme.Name), needle) {
			return s, true
		}
	}
	return domain.EstimatedScheme{}, false
}

// CompareCurrent contrasts the pension the applicant already receives with
// our estimate for the same scheme. It returns nil when there is nothing to
// compare: no current scheme, no current pension, or no eligible match.
func CompareCurrent(schemes []domain.EstimatedScheme, current *domain.CurrentScheme) *domain.Comparison {
	if current == nil || current.Scheme == "" || current.MonthlyPension.IsZero() {
		return nil
	}
	match, ok := FindScheme(schemes, current.Scheme)
	if !ok {
		return nil
	}

	recommended := match.Estimate.MonthlyPension
	diff := recommended.Sub(current.MonthlyPension)
	pct := decimal.Zero
	if current.MonthlyPension.IsPositive() {
		pct = diff.Div(current.MonthlyPension).Mul(hundred).Round(2)
	}

	better := recommended.GreaterThan(current.MonthlyPension)
	advice := recommendStay
	if better {
		advice = recommendSwitch
	}

	return &domain.Comparison{
		CurrentScheme:             match.Scheme.Name,
		CurrentMonthlyPension:     current.MonthlyPension,
		RecommendedMonthlyPension: recommended,
		Difference:                diff,
		PercentageImprovement:     pct,
		IsBetter:                  better,
		Recommendation:            advice,
	}
}
