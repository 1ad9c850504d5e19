package eligibility

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/anushreedahiya/pension-benefit/internal/domain"
	"github.com/anushreedahiya/pension-benefit/internal/rules"
)

// Income limits applied when a scheme's income criteria mention them
var (
	PovertyLineAnnual      = decimal.NewFromInt(300000)
	GeneralThresholdAnnual = decimal.NewFromInt(500000)
)

// RuleChecker evaluates a scheme's optional eligibility expression
type RuleChecker interface {
	Allows(schemeID string, facts rules.Facts) (bool, error)
}

// Filter decides which catalog schemes a profile qualifies for. The zero
// value applies the built-in checks only.
type Filter struct {
	Rules RuleChecker

	// OnRuleError is called when a scheme's expression fails to evaluate.
	// The scheme is treated as not eligible.
	OnRuleError func(schemeID string, err error)
}

// NewFilter creates a filter that also consults r for per-scheme expressions
func NewFilter(r RuleChecker) *Filter {
	return &Filter{Rules: r}
}

// FilterEligible returns the schemes the profile qualifies for, in catalog order
func (f *Filter) FilterEligible(schemes []domain.SchemeRecord, profile domain.UserProfile) []domain.EligibilityResult {
	facts := rules.FactsFor(profile)
	results := make([]domain.EligibilityResult, 0, len(schemes))
	for _, s := range schemes {
		r := f.evaluate(s, profile, facts)
		if r.Eligible() {
			results = append(results, r)
		}
	}
	return results
}

// Evaluate runs every check for one scheme. Checks stop at the first
// failure, leaving later flags false.
func (f *Filter) Evaluate(scheme domain.SchemeRecord, profile domain.UserProfile) domain.EligibilityResult {
	return f.evaluate(scheme, profile, rules.FactsFor(profile))
}

func (f *Filter) evaluate(scheme domain.SchemeRecord, profile domain.UserProfile, facts rules.Facts) domain.EligibilityResult {
	r := domain.EligibilityResult{Scheme: scheme}

	if r.CountryMatch = scheme.Country == profile.Country; !r.CountryMatch {
		return r
	}
	if r.AgeEligible = AgeWithinBounds(scheme, profile.Age); !r.AgeEligible {
		return r
	}
	if r.IncomeEligible = IncomeWithinCriteria(scheme.IncomeCriteria, profile.AnnualSalary); !r.IncomeEligible {
		return r
	}
	r.SectorEligible = SchemeSpecific(scheme, profile) && f.ruleAllows(scheme, facts)
	return r
}

func (f *Filter) ruleAllows(scheme domain.SchemeRecord, facts rules.Facts) bool {
	if f.Rules == nil || scheme.EligibilityRule == "" {
		return true
	}
	ok, err := f.Rules.Allows(scheme.ID, facts)
	if err != nil {
		if f.OnRuleError != nil {
			f.OnRuleError(scheme.ID, err)
		}
		return false
	}
	return ok
}

// AgeWithinBounds applies the catalog's inclusive eligibility window
func AgeWithinBounds(scheme domain.SchemeRecord, age int) bool {
	if minAge, ok := scheme.EligibilityAgeMin.Get(); ok && age < minAge {
		return false
	}
	if maxAge, ok := scheme.EligibilityAgeMax.Get(); ok && age > maxAge {
		return false
	}
	return true
}

// IncomeWithinCriteria interprets the free-text income criteria. A mention of
// the poverty line caps income at 3 lakh; a mention of an income cap or
// threshold caps it at 5 lakh and takes precedence when both appear.
func IncomeWithinCriteria(criteria string, annualSalary decimal.Decimal) bool {
	text := strings.ToLower(criteria)
	eligible := true
	if strings.Contains(text, "bpl") || strings.Contains(text, "below poverty line") {
		eligible = annualSalary.LessThanOrEqual(PovertyLineAnnual)
	}
	if strings.Contains(text, "income cap") || strings.Contains(text, "threshold") {
		eligible = annualSalary.LessThanOrEqual(GeneralThresholdAnnual)
	}
	return eligible
}
