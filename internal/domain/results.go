package domain

import (
	"github.com/shopspring/decimal"
)

// EligibilityResult records which checks a scheme passed for a profile
type EligibilityResult struct {
	Scheme         SchemeRecord `json:"scheme" yaml:"scheme"`
	CountryMatch   bool         `json:"countryMatch" yaml:"country_match"`
	AgeEligible    bool         `json:"ageEligible" yaml:"age_eligible"`
	IncomeEligible bool         `json:"incomeEligible" yaml:"income_eligible"`
	SectorEligible bool         `json:"sectorEligible" yaml:"sector_eligible"`
}

// Eligible reports whether every check passed
func (r EligibilityResult) Eligible() bool {
	return r.CountryMatch && r.AgeEligible && r.IncomeEligible && r.SectorEligible
}

// EligibilityFlags is the compact per-scheme eligibility view used in rankings
type EligibilityFlags struct {
	AgeEligible    bool `json:"ageEligible" yaml:"age_eligible"`
	IncomeEligible bool `json:"incomeEligible" yaml:"income_eligible"`
	SectorEligible bool `json:"sectorEligible" yaml:"sector_eligible"`
}

// Flags returns the compact view of r
func (r EligibilityResult) Flags() EligibilityFlags {
	return EligibilityFlags{AgeEligible: r.AgeEligible, IncomeEligible: r.IncomeEligible, SectorEligible: r.SectorEligible}
}

// ScoredScheme is an eligible scheme with its relevance assessment
type ScoredScheme struct {
	EligibilityResult `yaml:",inline"`
	RelevanceScore    int      `json:"relevanceScore" yaml:"relevance_score"`
	Recommendation    string   `json:"recommendation" yaml:"recommendation"`
	Advantages        []string `json:"advantages" yaml:"advantages"`
	Disadvantages     []string `json:"disadvantages" yaml:"disadvantages"`
}

// EstimateType names the calculation that produced a BenefitEstimate
type EstimateType string

const (
	EstimateFixedMonthly      EstimateType = "fixed_monthly"
	EstimateRangeBased        EstimateType = "range_based"
	EstimateSalaryLinked      EstimateType = "eps_formula"
	EstimateAccumulation      EstimateType = "epf_accumulation"
	EstimateMarketLinked      EstimateType = "nps_market_linked"
	EstimateAPY               EstimateType = "apy_fixed"
	EstimatePMSYM             EstimateType = "pm_sym"
	EstimateJapanBasic        EstimateType = "japan_basic_pension"
	EstimateJapanIDeCo        EstimateType = "japan_ideco"
	EstimateUSASocialSecurity EstimateType = "usa_social_security"
	EstimateUSA401K           EstimateType = "usa_401k"
	EstimateUKStatePension    EstimateType = "uk_state_pension"
	EstimateUKWorkplaceDC     EstimateType = "uk_workplace_dc"
	EstimateDefault           EstimateType = "default"
	EstimateError             EstimateType = "error"
)

// PensionRange is the published band of a range-based scheme
type PensionRange struct {
	Min decimal.Decimal `json:"min" yaml:"min"`
	Max decimal.Decimal `json:"max" yaml:"max"`
}

// BenefitEstimate is the projected payout of one scheme, in whole currency units
type BenefitEstimate struct {
	Type           EstimateType     `json:"type" yaml:"type"`
	MonthlyPension decimal.Decimal  `json:"monthlyPension" yaml:"monthly_pension"`
	AnnualPension  decimal.Decimal  `json:"annualPension" yaml:"annual_pension"`
	LumpSumCorpus  *decimal.Decimal `json:"lumpSumCorpus,omitempty" yaml:"lump_sum_corpus,omitempty"`
	AnnuityCorpus  *decimal.Decimal `json:"annuityCorpus,omitempty" yaml:"annuity_corpus,omitempty"`
	Corpus         *decimal.Decimal `json:"corpus,omitempty" yaml:"corpus,omitempty"`
	Range          *PensionRange    `json:"range,omitempty" yaml:"range,omitempty"`
	Calculation    string           `json:"calculation" yaml:"calculation"`
}

// EstimatedScheme is a scored scheme with its benefit estimate
type EstimatedScheme struct {
	ScoredScheme `yaml:",inline"`
	Estimate     BenefitEstimate `json:"pensionCalculation" yaml:"pension_calculation"`
}

// InsightsSummary aggregates estimates into totals, tips and warnings
type InsightsSummary struct {
	TotalMonthlyPension  decimal.Decimal  `json:"totalMonthlyPension" yaml:"total_monthly_pension"`
	TotalAnnualPension   decimal.Decimal  `json:"totalAnnualPension" yaml:"total_annual_pension"`
	ReplacementRatio     *decimal.Decimal `json:"replacementRatio,omitempty" yaml:"replacement_ratio,omitempty"`
	RecommendedSchemeIDs []string         `json:"recommendedSchemes" yaml:"recommended_schemes"`
	Warnings             []string         `json:"warnings" yaml:"warnings"`
	Tips                 []string         `json:"tips" yaml:"tips"`
}

// Comparison contrasts the applicant's current pension with our estimate for the same scheme
type Comparison struct {
	CurrentScheme             string          `json:"currentScheme" yaml:"current_scheme"`
	CurrentMonthlyPension     decimal.Decimal `json:"currentMonthlyPension" yaml:"current_monthly_pension"`
	RecommendedMonthlyPension decimal.Decimal `json:"recommendedMonthlyPension" yaml:"recommended_monthly_pension"`
	Difference                decimal.Decimal `json:"difference" yaml:"difference"`
	PercentageImprovement     decimal.Decimal `json:"percentageImprovement" yaml:"percentage_improvement"`
	IsBetter                  bool            `json:"isBetter" yaml:"is_better"`
	Recommendation            string          `json:"recommendation" yaml:"recommendation"`
}

// TopRecommendation is one entry of the ranked shortlist
type TopRecommendation struct {
	Rank           int              `json:"rank" yaml:"rank"`
	Scheme         string           `json:"scheme" yaml:"scheme"`
	SchemeID       string           `json:"schemeId" yaml:"scheme_id"`
	MonthlyPension decimal.Decimal  `json:"monthlyPension" yaml:"monthly_pension"`
	AnnualPension  decimal.Decimal  `json:"annualPension" yaml:"annual_pension"`
	Calculation    string           `json:"calculation" yaml:"calculation"`
	RelevanceScore int              `json:"relevanceScore" yaml:"relevance_score"`
	Recommendation string           `json:"recommendation" yaml:"recommendation"`
	Advantages     []string         `json:"advantages" yaml:"advantages"`
	Disadvantages  []string         `json:"disadvantages" yaml:"disadvantages"`
	Eligibility    EligibilityFlags `json:"eligibility" yaml:"eligibility"`
}

// ProfileSummary echoes the normalized profile back to the caller
type ProfileSummary struct {
	Name              string            `json:"name,omitempty" yaml:"name,omitempty"`
	Age               int               `json:"age" yaml:"age"`
	Gender            string            `json:"gender,omitempty" yaml:"gender,omitempty"`
	MaritalStatus     string            `json:"maritalStatus,omitempty" yaml:"marital_status,omitempty"`
	Dependents        int               `json:"dependents,omitempty" yaml:"dependents,omitempty"`
	State             string            `json:"state,omitempty" yaml:"state,omitempty"`
	Country           Country           `json:"origin" yaml:"origin"`
	EmploymentStatus  string            `json:"employmentStatus,omitempty" yaml:"employment_status,omitempty"`
	Sector            string            `json:"sector,omitempty" yaml:"sector,omitempty"`
	MonthlySalary     decimal.Decimal   `json:"monthlySalary" yaml:"monthly_salary"`
	AnnualSalary      decimal.Decimal   `json:"annualSalary" yaml:"annual_salary"`
	BPL               YesNo             `json:"bplStatus,omitempty" yaml:"bpl_status,omitempty"`
	SpecialCategories SpecialCategories `json:"specialCategories" yaml:"special_categories"`
	Preferences       Preferences       `json:"preferences" yaml:"preferences"`
}

// Report is the full result of one pipeline run
type Report struct {
	Profile            ProfileSummary      `json:"userProfile" yaml:"user_profile"`
	TotalEligible      int                 `json:"totalEligibleSchemes" yaml:"total_eligible_schemes"`
	Schemes            []EstimatedScheme   `json:"schemes" yaml:"schemes"`
	Insights           InsightsSummary     `json:"insights" yaml:"insights"`
	TopRecommendations []TopRecommendation `json:"topRecommendations,omitempty" yaml:"top_recommendations,omitempty"`
	Comparison         *Comparison         `json:"currentSchemeComparison,omitempty" yaml:"current_scheme_comparison,omitempty"`
}

// ScenarioInputs are the knobs of a single retirement savings projection.
// Rates are percentages, e.g. 10 for 10%.
type ScenarioInputs struct {
	CurrentAge          int             `json:"currentAge" yaml:"current_age"`
	RetirementAge       int             `json:"retirementAge" yaml:"retirement_age"`
	MonthlyContribution decimal.Decimal `json:"monthlyContribution" yaml:"monthly_contribution"`
	ReturnRate          decimal.Decimal `json:"returnRate" yaml:"return_rate"`
	InflationRate       decimal.Decimal `json:"inflationRate" yaml:"inflation_rate"`
}

// ScenarioProjection is the outcome of projecting ScenarioInputs to retirement
type ScenarioProjection struct {
	Inputs            ScenarioInputs  `json:"inputs" yaml:"inputs"`
	YearsToRetirement int             `json:"yearsToRetirement" yaml:"years_to_retirement"`
	FutureValue       decimal.Decimal `json:"futureValue" yaml:"future_value"`
	RealValue         decimal.Decimal `json:"realValue" yaml:"real_value"`
	TotalContribution decimal.Decimal `json:"totalContribution" yaml:"total_contribution"`
	InterestEarned    decimal.Decimal `json:"interestEarned" yaml:"interest_earned"`
	InflationLoss     decimal.Decimal `json:"inflationLoss" yaml:"inflation_loss"`
}
