package calculation

import (
	"context"
	"errors"
	"fmt"

	"github.com/anushreedahiya/pension-benefit/internal/catalog"
	"github.com/anushreedahiya/pension-benefit/internal/compare"
	"github.com/anushreedahiya/pension-benefit/internal/domain"
	"github.com/anushreedahiya/pension-benefit/internal/eligibility"
	"github.com/anushreedahiya/pension-benefit/internal/insights"
	"github.com/anushreedahiya/pension-benefit/internal/rules"
	"github.com/anushreedahiya/pension-benefit/internal/scoring"
)

// CalculationEngine runs the eligibility, scoring, estimation and insights
// stages over one catalog. It holds no per-request state and may serve
// concurrent requests once constructed.
type CalculationEngine struct {
	Catalog   *catalog.Catalog
	Filter    *eligibility.Filter
	Scorer    *scoring.Scorer
	Estimator *Estimator
	Insights  *insights.Aggregator
	Logger    Logger
}

// NewCalculationEngine compiles the catalog's eligibility rules and wires the
// pipeline stages
func NewCalculationEngine(cat *catalog.Catalog) (*CalculationEngine, error) {
	if cat == nil {
		return nil, errors.New("catalog is required")
	}
	ruleEngine, err := rules.NewEngineForCatalog(cat.Schemes())
	if err != nil {
		return nil, fmt.Errorf("failed to compile eligibility rules: %w", err)
	}

	ce := &CalculationEngine{
		Catalog:   cat,
		Filter:    eligibility.NewFilter(ruleEngine),
		Scorer:    scoring.NewScorer(),
		Estimator: NewEstimator(),
		Insights:  insights.NewAggregator(),
		Logger:    NopLogger{},
	}
	ce.Filter.OnRuleError = func(schemeID string, err error) {
		ce.Logger.Warnf("eligibility rule for %s failed, scheme excluded: %v", schemeID, err)
	}
	return ce, nil
}

// SetLogger sets the logger for the engine. A nil logger discards output.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Evaluate runs the full pipeline for one profile. Detailed profiles also get
// the top recommendations and, when they hold a pension already, a comparison.
func (ce *CalculationEngine) Evaluate(ctx context.Context, profile domain.UserProfile) (*domain.Report, error) {
	if err := ValidateProfile(profile); err != nil {
		return nil, err
	}

	ce.Logger.Debugf("evaluating %d schemes for age %d in %s", ce.Catalog.Len(), profile.Age, profile.Country)
	eligible := ce.Filter.FilterEligible(ce.Catalog.Schemes(), profile)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scored := ce.Scorer.Score(eligible, profile)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	schemes := ce.EstimateAll(scored, profile)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &domain.Report{
		Profile:       SummarizeProfile(profile),
		TotalEligible: len(schemes),
		Schemes:       schemes,
		Insights:      ce.Insights.Summarize(schemes, profile),
	}
	if profile.Detailed {
		report.TopRecommendations = compare.TopRecommendations(schemes, compare.DefaultTopN)
		report.Comparison = compare.CompareCurrent(schemes, profile.Current)
	}

	ce.Logger.Infof("%d eligible schemes, total monthly pension %s", report.TotalEligible,
		FormatMoney(profile.Country.CurrencySymbol(), report.Insights.TotalMonthlyPension))
	return report, nil
}

// EstimateAll attaches an estimate to every scored scheme. A failed
// calculation is logged and replaced by the error estimate; the other
// schemes are unaffected.
func (ce *CalculationEngine) EstimateAll(scored []domain.ScoredScheme, profile domain.UserProfile) []domain.EstimatedScheme {
	out := make([]domain.EstimatedScheme, 0, len(scored))
	for _, s := range scored {
		est, err := ce.Estimator.Estimate(s.Scheme, profile)
		if err != nil {
			ce.Logger.Errorf("%v", err)
		}
		out = append(out, domain.EstimatedScheme{ScoredScheme: s, Estimate: est})
	}
	return out
}

// ValidateProfile checks the invariants every pipeline stage relies on
func ValidateProfile(p domain.UserProfile) error {
	if !p.Country.Valid() {
		return &domain.UnsupportedCountryError{Country: string(p.Country), Supported: domain.SupportedCountries}
	}
	ve := &domain.ValidationError{}
	if p.Age < 0 || p.Age > 120 {
		ve.Add("age", "Age must be between 0 and 120")
	}
	if p.MonthlySalary.IsNegative() {
		ve.Add("monthlyIncome", "must not be negative")
	}
	if p.AnnualSalary.IsNegative() {
		ve.Add("annualSalary", "Salary must be positive")
	}
	return ve.ErrOrNil()
}

// SummarizeProfile is the profile echo included in every report
func SummarizeProfile(p domain.UserProfile) domain.ProfileSummary {
	return domain.ProfileSummary{
		Name:              p.Name,
		Age:               p.Age,
		Gender:            p.Gender,
		MaritalStatus:     p.MaritalStatus,
		Dependents:        p.Dependents,
		State:             p.State,
		Country:           p.Country,
		EmploymentStatus:  p.EmploymentStatus,
		Sector:            p.Sector,
		MonthlySalary:     p.MonthlySalary,
		AnnualSalary:      p.AnnualSalary,
		BPL:               p.BPL,
		SpecialCategories: p.Categories,
		Preferences:       p.Preferences,
	}
}
