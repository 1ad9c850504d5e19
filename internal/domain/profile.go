package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Sector and employment values the eligibility and scoring tables test for
const (
	SectorAll          = "All"
	SectorUnorganised  = "Unorganised"
	SectorAgriculture  = "Agriculture"
	SectorTrade        = "Trade/Shopkeeping"
	EmploymentSelf     = "Self-Employed"
	EmploymentNone     = "Unemployed"
	PayoutMonthly      = "Monthly Pension"
	InvestmentGovtOnly = "Government-guaranteed pension"

	// QualifyingDisabilityPercent is the minimum certified disability for category benefits
	QualifyingDisabilityPercent = 40
)

// Documents records which supporting documents the applicant holds
type Documents struct {
	Aadhaar        YesNo `json:"aadhaar,omitempty" yaml:"aadhaar,omitempty"`
	BankAccount    YesNo `json:"bankAccount,omitempty" yaml:"bank_account,omitempty"`
	LandDocs       YesNo `json:"landDocs,omitempty" yaml:"land_docs,omitempty"`
	DisabilityCert YesNo `json:"disabilityCert,omitempty" yaml:"disability_cert,omitempty"`
	ResidenceProof YesNo `json:"residenceProof,omitempty" yaml:"residence_proof,omitempty"`
}

// SpecialCategories holds the social categories that unlock or boost schemes
type SpecialCategories struct {
	Disability        YesNo  `json:"disability,omitempty" yaml:"disability,omitempty"`
	DisabilityPercent int    `json:"disabilityPercent,omitempty" yaml:"disability_percent,omitempty"`
	Widow             YesNo  `json:"widow,omitempty" yaml:"widow,omitempty"`
	Destitute         YesNo  `json:"destitute,omitempty" yaml:"destitute,omitempty"`
	CasteCategory     string `json:"casteCategory,omitempty" yaml:"caste_category,omitempty"`
	TraditionalWorker YesNo  `json:"traditionalWorker,omitempty" yaml:"traditional_worker,omitempty"`
}

// Preferences captures how the applicant would like to be paid and contribute
type Preferences struct {
	PayoutType             string          `json:"payoutType,omitempty" yaml:"payout_type,omitempty"`
	InvestmentPreference   string          `json:"investmentPreference,omitempty" yaml:"investment_preference,omitempty"`
	ContributionWilling    YesNo           `json:"monthlyContributionWilling,omitempty" yaml:"monthly_contribution_willing,omitempty"`
	AffordableContribution decimal.Decimal `json:"affordableContribution" yaml:"affordable_contribution"`
	FamilyPension          YesNo           `json:"familyPension,omitempty" yaml:"family_pension,omitempty"`
}

// CurrentScheme describes a pension the applicant already holds
type CurrentScheme struct {
	Scheme         string          `json:"scheme" yaml:"scheme"`
	MonthlyPension decimal.Decimal `json:"monthlyPension" yaml:"monthly_pension"`
	Contribution   decimal.Decimal `json:"contribution" yaml:"contribution"`
}

// UserProfile is the normalized applicant record every pipeline stage reads
type UserProfile struct {
	Name               string
	BirthDate          *time.Time
	Age                int
	Country            Country
	Gender             string
	MaritalStatus      string
	Dependents         int
	State              string
	Citizenship        string
	ResidenceYears     int
	EmploymentStatus   string
	Sector             string
	GovtJoinBefore2004 YesNo
	LandHectares       decimal.Decimal
	MonthlySalary      decimal.Decimal
	AnnualSalary       decimal.Decimal
	TaxPayer           YesNo
	BPL                YesNo
	Documents          Documents
	Categories         SpecialCategories
	Preferences        Preferences
	Current            *CurrentScheme

	// Detailed is set for full-profile requests. Basic lookups carry no
	// employment data, so sector predicates are skipped for them.
	Detailed bool
}

// HasQualifyingDisability reports a certified disability of at least 40%
func (p UserProfile) HasQualifyingDisability() bool {
	return p.Categories.Disability.IsYes() && p.Categories.DisabilityPercent >= QualifyingDisabilityPercent
}

// IsWidow reports whether the widow category applies
func (p UserProfile) IsWidow() bool {
	return p.Categories.Widow.IsYes()
}

// IsSCST reports whether the applicant belongs to a scheduled caste or tribe
func (p UserProfile) IsSCST() bool {
	c := strings.ToUpper(strings.TrimSpace(p.Categories.CasteCategory))
	return c == "SC" || c == "ST"
}

// InSector compares the profile sector ignoring case
func (p UserProfile) InSector(sector string) bool {
	return strings.EqualFold(strings.TrimSpace(p.Sector), sector)
}

// EmployedAs compares the employment status ignoring case
func (p UserProfile) EmployedAs(status string) bool {
	return strings.EqualFold(strings.TrimSpace(p.EmploymentStatus), status)
}
