package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/anushreedahiya/pension-benefit/internal/domain"
)

// DateLayout is the accepted date-of-birth format
const DateLayout = "2006-01-02"

// QueryParams are the parameters of a basic scheme lookup
var QueryParams = []string{"age", "origin", "annualSalary"}

// RequiredProfileFields must be present in a full profile request
var RequiredProfileFields = []string{"fullName", "dob", "state", "citizenship"}

var twelve = decimal.NewFromInt(12)

// ProfileRequest is the full applicant form as submitted by a client or
// stored in a profile file
type ProfileRequest struct {
	FullName           string       `json:"fullName" yaml:"full_name"`
	DOB                string       `json:"dob" yaml:"dob"`
	Gender             string       `json:"gender,omitempty" yaml:"gender,omitempty"`
	MaritalStatus      string       `json:"maritalStatus,omitempty" yaml:"marital_status,omitempty"`
	Dependents         int          `json:"dependents,omitempty" yaml:"dependents,omitempty"`
	State              string       `json:"state" yaml:"state"`
	ResidenceYears     int          `json:"residenceYears,omitempty" yaml:"residence_years,omitempty"`
	Citizenship        string       `json:"citizenship" yaml:"citizenship"`
	Country            string       `json:"country,omitempty" yaml:"country,omitempty"`
	EmploymentStatus   string       `json:"employmentStatus,omitempty" yaml:"employment_status,omitempty"`
	Sector             string       `json:"sector,omitempty" yaml:"sector,omitempty"`
	GovtJoinBefore2004 domain.YesNo `json:"govtJoinBefore2004,omitempty" yaml:"govt_join_before_2004,omitempty"`

	LandHectares  decimal.Decimal `json:"landHectares" yaml:"land_hectares"`
	MonthlyIncome decimal.Decimal `json:"monthlyIncome" yaml:"monthly_income"`
	TaxPayer      domain.YesNo    `json:"taxPayer,omitempty" yaml:"tax_payer,omitempty"`
	BPLStatus     domain.YesNo    `json:"bplStatus,omitempty" yaml:"bpl_status,omitempty"`

	Aadhaar        domain.YesNo `json:"aadhaar,omitempty" yaml:"aadhaar,omitempty"`
	BankAccount    domain.YesNo `json:"bankAccount,omitempty" yaml:"bank_account,omitempty"`
	LandDocs       domain.YesNo `json:"landDocs,omitempty" yaml:"land_docs,omitempty"`
	DisabilityCert domain.YesNo `json:"disabilityCert,omitempty" yaml:"disability_cert,omitempty"`
	ResidenceProof domain.YesNo `json:"residenceProof,omitempty" yaml:"residence_proof,omitempty"`

	Disability        domain.YesNo `json:"disability,omitempty" yaml:"disability,omitempty"`
	DisabilityPercent int          `json:"disabilityPercent,omitempty" yaml:"disability_percent,omitempty"`
	Widow             domain.YesNo `json:"widow,omitempty" yaml:"widow,omitempty"`
	Destitute         domain.YesNo `json:"destitute,omitempty" yaml:"destitute,omitempty"`
	CasteCategory     string       `json:"casteCategory,omitempty" yaml:"caste_category,omitempty"`
	TraditionalWorker domain.YesNo `json:"traditionalWorker,omitempty" yaml:"traditional_worker,omitempty"`

	PayoutType                 string          `json:"payoutType,omitempty" yaml:"payout_type,omitempty"`
	InvestmentPreference       string          `json:"investmentPreference,omitempty" yaml:"investment_preference,omitempty"`
	MonthlyContributionWilling domain.YesNo    `json:"monthlyContributionWilling,omitempty" yaml:"monthly_contribution_willing,omitempty"`
	AffordableContribution     decimal.Decimal `json:"affordableContribution" yaml:"affordable_contribution"`
	FamilyPension              domain.YesNo    `json:"familyPension,omitempty" yaml:"family_pension,omitempty"`

	CurrentPensionScheme  string          `json:"currentPensionScheme,omitempty" yaml:"current_pension_scheme,omitempty"`
	CurrentMonthlyPension decimal.Decimal `json:"currentMonthlyPension" yaml:"current_monthly_pension"`
	CurrentContribution   decimal.Decimal `json:"currentContribution" yaml:"current_contribution"`
}

// ScenarioRequest carries optional projection inputs; missing values take
// the defaults
type ScenarioRequest struct {
	CurrentAge          *int             `json:"currentAge" yaml:"current_age"`
	RetirementAge       *int             `json:"retirementAge" yaml:"retirement_age"`
	MonthlyContribution *decimal.Decimal `json:"monthlyContribution" yaml:"monthly_contribution"`
	ReturnRate          *decimal.Decimal `json:"returnRate" yaml:"return_rate"`
	InflationRate       *decimal.Decimal `json:"inflationRate" yaml:"inflation_rate"`
}

// Inputs overlays the request on defaults
func (r ScenarioRequest) Inputs(defaults domain.ScenarioInputs) domain.ScenarioInputs {
	in := defaults
	if r.CurrentAge != nil {
		in.CurrentAge = *r.CurrentAge
	}
	if r.RetirementAge != nil {
		in.RetirementAge = *r.RetirementAge
	}
	if r.MonthlyContribution != nil {
		in.MonthlyContribution = *r.MonthlyContribution
	}
	if r.ReturnRate != nil {
		in.ReturnRate = *r.ReturnRate
	}
	if r.InflationRate != nil {
		in.InflationRate = *r.InflationRate
	}
	return in
}

// InputParser turns client input into validated profiles
type InputParser struct {
	// Now is the clock used to derive age from date of birth
	Now func() time.Time
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{Now: time.Now}
}

// LoadFromFile loads a profile request from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*ProfileRequest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var req ProfileRequest
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &req); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &req); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	}
	return &req, nil
}

// LoadProfile loads and validates a profile file
func (ip *InputParser) LoadProfile(filename string) (domain.UserProfile, error) {
	req, err := ip.LoadFromFile(filename)
	if err != nil {
		return domain.UserProfile{}, err
	}
	profile, err := ip.ToProfile(*req)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("profile validation failed: %w", err)
	}
	return profile, nil
}

// ParseProfileJSON decodes and validates a JSON profile request body
func (ip *InputParser) ParseProfileJSON(body []byte) (domain.UserProfile, error) {
	var req ProfileRequest
	if err := json.Unmarshal(body, &req); err != nil {
		ve := &domain.ValidationError{}
		ve.Add("body", "invalid JSON: %v", err)
		return domain.UserProfile{}, ve
	}
	return ip.ToProfile(req)
}

// ParseScenarioJSON decodes a scenario body, filling defaults. An empty body
// yields the defaults.
func (ip *InputParser) ParseScenarioJSON(body []byte, defaults domain.ScenarioInputs) (domain.ScenarioInputs, error) {
	var req ScenarioRequest
	if len(strings.TrimSpace(string(body))) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			ve := &domain.ValidationError{}
			ve.Add("body", "invalid JSON: %v", err)
			return domain.ScenarioInputs{}, ve
		}
	}
	return req.Inputs(defaults), nil
}

// ToProfile validates a full profile request and normalizes it. Every field
// problem is reported in one ValidationError; an unsupported country is
// reported on its own.
func (ip *InputParser) ToProfile(req ProfileRequest) (domain.UserProfile, error) {
	ve := &domain.ValidationError{}
	required := map[string]string{
		"fullName":    req.FullName,
		"dob":         req.DOB,
		"state":       req.State,
		"citizenship": req.Citizenship,
	}
	for _, field := range RequiredProfileFields {
		if strings.TrimSpace(required[field]) == "" {
			ve.Add(field, "is required")
		}
	}

	var birth *time.Time
	age := 0
	if dob := strings.TrimSpace(req.DOB); dob != "" {
		t, err := time.Parse(DateLayout, dob)
		if err != nil {
			ve.Add("dob", "must be a date in YYYY-MM-DD format")
		} else {
			birth = &t
			age = AgeOn(t, ip.now())
			if age < 0 || age > 120 {
				ve.Add("dob", "Age must be between 0 and 120")
			}
		}
	}
	if req.MonthlyIncome.IsNegative() {
		ve.Add("monthlyIncome", "must not be negative")
	}
	if req.DisabilityPercent < 0 || req.DisabilityPercent > 100 {
		ve.Add("disabilityPercent", "must be between 0 and 100")
	}
	if err := ve.ErrOrNil(); err != nil {
		return domain.UserProfile{}, err
	}

	country := domain.CountryIndia
	if strings.TrimSpace(req.Country) != "" {
		c, err := domain.ParseCountry(req.Country)
		if err != nil {
			return domain.UserProfile{}, err
		}
		country = c
	}

	profile := domain.UserProfile{
		Name:               strings.TrimSpace(req.FullName),
		BirthDate:          birth,
		Age:                age,
		Country:            country,
		Gender:             req.Gender,
		MaritalStatus:      req.MaritalStatus,
		Dependents:         req.Dependents,
		State:              req.State,
		Citizenship:        req.Citizenship,
		ResidenceYears:     req.ResidenceYears,
		EmploymentStatus:   req.EmploymentStatus,
		Sector:             req.Sector,
		GovtJoinBefore2004: req.GovtJoinBefore2004,
		LandHectares:       req.LandHectares,
		MonthlySalary:      req.MonthlyIncome,
		AnnualSalary:       req.MonthlyIncome.Mul(twelve),
		TaxPayer:           req.TaxPayer,
		BPL:                req.BPLStatus,
		Documents: domain.Documents{
			Aadhaar:        req.Aadhaar,
			BankAccount:    req.BankAccount,
			LandDocs:       req.LandDocs,
			DisabilityCert: req.DisabilityCert,
			ResidenceProof: req.ResidenceProof,
		},
		Categories: domain.SpecialCategories{
			Disability:        req.Disability,
			DisabilityPercent: req.DisabilityPercent,
			Widow:             req.Widow,
			Destitute:         req.Destitute,
			CasteCategory:     req.CasteCategory,
			TraditionalWorker: req.TraditionalWorker,
		},
		Preferences: domain.Preferences{
			PayoutType:             req.PayoutType,
			InvestmentPreference:   req.InvestmentPreference,
			ContributionWilling:    req.MonthlyContributionWilling,
			AffordableContribution: req.AffordableContribution,
			FamilyPension:          req.FamilyPension,
		},
		Detailed: true,
	}
	if scheme := strings.TrimSpace(req.CurrentPensionScheme); scheme != "" {
		profile.Current = &domain.CurrentScheme{
			Scheme:         scheme,
			MonthlyPension: req.CurrentMonthlyPension,
			Contribution:   req.CurrentContribution,
		}
	}
	return profile, nil
}

// ParseQuery validates the basic lookup parameters. Monthly salary is the
// annual figure divided by twelve, rounded to whole units.
func (ip *InputParser) ParseQuery(age, origin, annualSalary string) (domain.UserProfile, error) {
	ve := &domain.ValidationError{}
	values := map[string]string{"age": age, "origin": origin, "annualSalary": annualSalary}
	for _, p := range QueryParams {
		if strings.TrimSpace(values[p]) == "" {
			ve.Add(p, "is required")
		}
	}
	if err := ve.ErrOrNil(); err != nil {
		return domain.UserProfile{}, err
	}

	years, err := strconv.Atoi(strings.TrimSpace(age))
	if err != nil {
		ve.Add("age", "must be a whole number")
	} else if years < 0 || years > 120 {
		ve.Add("age", "Age must be between 0 and 120")
	}
	salary, err := decimal.NewFromString(strings.TrimSpace(annualSalary))
	if err != nil {
		ve.Add("annualSalary", "must be a number")
	} else if salary.IsNegative() {
		ve.Add("annualSalary", "Salary must be positive")
	}
	if err := ve.ErrOrNil(); err != nil {
		return domain.UserProfile{}, err
	}

	country, err := domain.ParseCountry(origin)
	if err != nil {
		return domain.UserProfile{}, err
	}

	return domain.UserProfile{
		Age:           years,
		Country:       country,
		AnnualSalary:  salary,
		MonthlySalary: salary.Div(twelve).Round(0),
	}, nil
}

// AgeOn returns the completed years between birth and now
func AgeOn(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

func (ip *InputParser) now() time.Time {
	if ip.Now == nil {
		return time.Now()
	}
	return ip.Now()
}
