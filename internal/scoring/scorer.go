package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/anushreedahiya/pension-benefit/internal/domain"
)

// Scorer ranks eligible schemes by how well they fit a profile
type Scorer struct{}

// NewScorer creates a scorer over the built-in weight tables
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score assesses every eligible scheme and returns them highest score first.
// Ties keep their input order.
func (s *Scorer) Score(eligible []domain.EligibilityResult, profile domain.UserProfile) []domain.ScoredScheme {
	scored := make([]domain.ScoredScheme, len(eligible))
	for i, r := range eligible {
		scored[i] = s.ScoreOne(r, profile)
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].RelevanceScore > scored[j].RelevanceScore
	})
	return scored
}

// ScoreOne applies the weight tables to a single scheme
func (s *Scorer) ScoreOne(r domain.EligibilityResult, profile domain.UserProfile) domain.ScoredScheme {
	out := domain.ScoredScheme{
		EligibilityResult: r,
		Advantages:        []string{},
		Disadvantages:     []string{},
	}
	id := r.Scheme.ID

	for _, band := range ageBands[profile.Country] {
		if !band.contains(profile.Age) {
			continue
		}
		if contains(band.ids, id) {
			out.RelevanceScore += ageBandPoints
			out.Recommendation = band.recommendation
			out.Advantages = append(out.Advantages, band.advantages...)
		}
		break
	}

	if profile.Country == domain.CountryIndia {
		scoreIndia(&out, profile)
	}

	if strings.EqualFold(r.Scheme.Sector, domain.SectorAll) {
		out.RelevanceScore += allSectorPoints
	}

	out.Disadvantages = disadvantages(r.Scheme, profile)

	if out.Recommendation == "" {
		out.Recommendation = RecommendDefault
	}
	return out
}

func scoreIndia(out *domain.ScoredScheme, profile domain.UserProfile) {
	scheme := out.Scheme
	id := scheme.ID

	for _, band := range indiaIncomeBands {
		if !band.contains(profile.AnnualSalary) {
			continue
		}
		if contains(band.ids, id) {
			out.RelevanceScore += incomeBandPoints
			out.Advantages = append(out.Advantages, band.advantages...)
		}
		break
	}

	for _, bonus := range indiaSectorBonuses {
		if profile.InSector(bonus.sector) && contains(bonus.ids, id) {
			out.RelevanceScore += bonus.points
			out.Advantages = append(out.Advantages, bonus.advantages...)
		}
	}

	if profile.IsWidow() && id == "CEN_NSAP_IGNOAPS" {
		out.RelevanceScore += widowPoints
		out.Advantages = append(out.Advantages, "Widow-specific benefits", "Higher pension amount")
	}
	if profile.HasQualifyingDisability() {
		out.RelevanceScore += disabilityPoints
		out.Advantages = append(out.Advantages, "Disability benefits", "Additional support")
	}
	if profile.IsSCST() {
		out.RelevanceScore += reservedPoints
		out.Advantages = append(out.Advantages, "Reserved category benefits")
	}

	prefs := profile.Preferences
	if prefs.PayoutType == domain.PayoutMonthly && mentions(scheme.PayoutType, "monthly") {
		out.RelevanceScore += monthlyPayoutPoints
	}
	if prefs.InvestmentPreference == domain.InvestmentGovtOnly && mentions(scheme.GuaranteeType, "government") {
		out.RelevanceScore += govtGuaranteePoints
	}
	if prefs.ContributionWilling.IsYes() && mentions(scheme.ContributionType, "monthly") {
		out.RelevanceScore += monthlyContribPoints
	}
	if prefs.FamilyPension.IsYes() && scheme.FamilyPension.IsYes() {
		out.RelevanceScore += familyPensionPoints
		out.Advantages = append(out.Advantages, "Family pension coverage")
	}
}

func disadvantages(scheme domain.SchemeRecord, profile domain.UserProfile) []string {
	out := []string{}
	if scheme.ContributionRequired.IsYes() && strings.EqualFold(string(profile.Preferences.ContributionWilling), string(domain.No)) {
		out = append(out, "Requires monthly contribution")
	}
	if minAge, ok := scheme.MinimumAge.Get(); ok && minAge > 0 && profile.Age < minAge {
		out = append(out, fmt.Sprintf("Minimum age requirement: %d years", minAge))
	}
	if maxAge, ok := scheme.MaximumAge.Get(); ok && maxAge > 0 && profile.Age > maxAge {
		out = append(out, fmt.Sprintf("Maximum age limit: %d years", maxAge))
	}
	return out
}

func mentions(field, word string) bool {
	return strings.Contains(strings.ToLower(field), word)
}
