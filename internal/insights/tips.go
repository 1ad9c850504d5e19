package insights

import (
	"github.com/shopspring/decimal"

	"github.com/anushreedahiya/pension-benefit/internal/domain"
)

// tip is a piece of advice plus the schemes it points at
type tip struct {
	applies   func(p domain.UserProfile) bool
	text      string
	schemeIDs []string
}

func ageBelow(n int) func(domain.UserProfile) bool {
	return func(p domain.UserProfile) bool { return p.Age < n }
}

func ageAtLeast(n int) func(domain.UserProfile) bool {
	return func(p domain.UserProfile) bool { return p.Age >= n }
}

func ageBetween(lo, hi int) func(domain.UserProfile) bool {
	return func(p domain.UserProfile) bool { return p.Age >= lo && p.Age <= hi }
}

func salaryAtMost(n int64) func(domain.UserProfile) bool {
	ceiling := decimal.NewFromInt(n)
	return func(p domain.UserProfile) bool { return p.AnnualSalary.LessThanOrEqual(ceiling) }
}

func always(domain.UserProfile) bool { return true }

// tipsByCountry is evaluated in order; every matching tip is emitted
var tipsByCountry = map[domain.Country][]tip{
	domain.CountryIndia: {
		{ageBelow(30), "Start early! Consider NPS for long-term wealth creation", []string{"CEN_NPS_T1"}},
		{ageBetween(18, 40), "APY and PM-SYM are excellent for unorganized sector workers", []string{"CEN_APY", "CEN_PM_SYM"}},
		{salaryAtMost(300000), "Consider government schemes like PMKMY and PM-LVM for low-income groups", []string{"CEN_PMKMY", "CEN_PM_LVM"}},
		{ageAtLeast(60), "Focus on immediate pension schemes like SCSS and PMVVY", []string{"CEN_SCSS", "CEN_PMVVY"}},
		{domain.UserProfile.IsWidow, "Widows may qualify for the National Widow Pension Scheme", []string{"CEN_NSAP_IGNWPS"}},
		{domain.UserProfile.HasQualifyingDisability, "A certified disability of 40% or more qualifies for the National Disability Pension Scheme", []string{"CEN_NSAP_DISABILITY"}},
	},
	domain.CountryJapan: {
		{ageBelow(40), "Open an iDeCo account early; contributions are tax-deductible", []string{"JPN_IND_IDECO"}},
		{ageBetween(20, 59), "Keep National Pension contributions current to secure the full basic pension", []string{"JPN_NAT_NP_BASIC"}},
		{ageAtLeast(60), "Employees' Pension Insurance adds an earnings-related layer to the basic pension", []string{"JPN_EMP_EPI"}},
	},
	domain.CountryUSA: {
		{ageBelow(50), "Contribute enough to your 401(k) to capture the full employer match", []string{"USA_EMP_401K"}},
		{ageAtLeast(62), "Delaying Social Security up to age 70 increases the monthly benefit", []string{"USA_FED_SS_RETIRE"}},
		{salaryAtMost(12000), "Supplemental Security Income supports retirees with limited income", []string{"USA_FED_SSI"}},
	},
	domain.CountryUK: {
		{ageBelow(55), "Workplace pensions add employer contributions on top of yours", []string{"UK_EMP_DC"}},
		{always, "Check your National Insurance record for gaps that reduce the State Pension", []string{"UK_STATE_NEW"}},
		{func(p domain.UserProfile) bool { return p.Age >= 66 && salaryAtMost(11500)(p) }, "Pension Credit can top up a low retirement income", []string{"UK_PENSION_CREDIT"}},
	},
}
