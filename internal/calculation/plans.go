package calculation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/anushreedahiya/pension-benefit/internal/domain"
)

var errNegativeSalary = errors.New("salary must not be negative")

// inputs are the per-profile quantities every calculator reads
type inputs struct {
	age           int
	years         int
	monthlySalary decimal.Decimal
	annualSalary  decimal.Decimal
	symbol        string
}

func (in inputs) money(d decimal.Decimal) string {
	return FormatMoney(in.symbol, d)
}

// calculator turns profile inputs into an estimate for one kind of plan
type calculator interface {
	calculate(in inputs) (domain.BenefitEstimate, error)
}

// fixedContributionAnnuity grows a flat monthly contribution (member plus
// sponsor) and converts the corpus to a monthly annuity
type fixedContributionAnnuity struct {
	kind        domain.EstimateType
	label       string
	member      decimal.Decimal
	sponsor     decimal.Decimal
	growth      decimal.Decimal
	annuityRate decimal.Decimal
}

func (p fixedContributionAnnuity) calculate(in inputs) (domain.BenefitEstimate, error) {
	annual := p.member.Add(p.sponsor).Mul(twelve)
	corpus := accumulate(annual, p.growth, in.years)
	monthly := monthlyAnnuity(corpus, p.annuityRate)

	est := monthlyEstimate(p.kind, monthly, fmt.Sprintf("%s: %s corpus → %s/month pension",
		p.label, in.money(whole(corpus)), in.money(whole(monthly))))
	est.Corpus = ptr(whole(corpus))
	return est, nil
}

// salaryContributionAnnuity grows salary-based contributions and draws a
// monthly income from the corpus. When matchOnEmployee is set the employer
// rate applies to the employee contribution rather than to salary.
type salaryContributionAnnuity struct {
	kind            domain.EstimateType
	label           string
	employeeRate    decimal.Decimal
	employerRate    decimal.Decimal
	matchOnEmployee bool
	growth          decimal.Decimal
	withdrawalRate  decimal.Decimal
}

func (p salaryContributionAnnuity) calculate(in inputs) (domain.BenefitEstimate, error) {
	if in.monthlySalary.IsNegative() {
		return domain.BenefitEstimate{}, errNegativeSalary
	}
	employee := in.monthlySalary.Mul(p.employeeRate)
	employer := in.monthlySalary.Mul(p.employerRate)
	if p.matchOnEmployee {
		employer = employee.Mul(p.employerRate)
	}
	corpus := accumulate(employee.Add(employer).Mul(twelve), p.growth, in.years)
	monthly := monthlyAnnuity(corpus, p.withdrawalRate)

	est := monthlyEstimate(p.kind, monthly, fmt.Sprintf("%s: %s corpus → %s/month",
		p.label, in.money(whole(corpus)), in.money(whole(monthly))))
	est.Corpus = ptr(whole(corpus))
	return est, nil
}

// marketLinkedAnnuity splits a market-linked corpus into a lump sum and an
// annuity purchase
type marketLinkedAnnuity struct {
	employeeRate decimal.Decimal
	employerRate decimal.Decimal
	growth       decimal.Decimal
	lumpSumShare decimal.Decimal
	annuityRate  decimal.Decimal
}

func (p marketLinkedAnnuity) calculate(in inputs) (domain.BenefitEstimate, error) {
	if in.monthlySalary.IsNegative() {
		return domain.BenefitEstimate{}, errNegativeSalary
	}
	contribution := in.monthlySalary.Mul(p.employeeRate.Add(p.employerRate))
	corpus := accumulate(contribution.Mul(twelve), p.growth, in.years)
	lumpSum := corpus.Mul(p.lumpSumShare)
	annuityCorpus := corpus.Sub(lumpSum)
	monthly := monthlyAnnuity(annuityCorpus, p.annuityRate)

	est := monthlyEstimate(domain.EstimateMarketLinked, monthly, fmt.Sprintf("NPS: %s corpus → %s lump sum + %s/month annuity",
		in.money(whole(corpus)), in.money(whole(lumpSum)), in.money(whole(monthly))))
	est.LumpSumCorpus = ptr(whole(lumpSum))
	est.AnnuityCorpus = ptr(whole(annuityCorpus))
	return est, nil
}

// providentFund accumulates a lump sum and pays no monthly pension
type providentFund struct {
	employeeRate decimal.Decimal
	employerRate decimal.Decimal
	interest     decimal.Decimal
}

func (p providentFund) calculate(in inputs) (domain.BenefitEstimate, error) {
	if in.monthlySalary.IsNegative() {
		return domain.BenefitEstimate{}, errNegativeSalary
	}
	contribution := in.monthlySalary.Mul(p.employeeRate.Add(p.employerRate))
	corpus := whole(accumulate(contribution.Mul(twelve), p.interest, in.years))

	est := monthlyEstimate(domain.EstimateAccumulation, decimal.Zero,
		fmt.Sprintf("EPF Corpus: %s (lump sum at retirement)", in.money(corpus)))
	est.LumpSumCorpus = ptr(corpus)
	return est, nil
}

// salaryLinked pays a fixed factor of capped salary per year of service
type salaryLinked struct {
	salaryCap decimal.Decimal
	factor    decimal.Decimal
}

func (p salaryLinked) calculate(in inputs) (domain.BenefitEstimate, error) {
	if in.monthlySalary.IsNegative() {
		return domain.BenefitEstimate{}, errNegativeSalary
	}
	pensionable := decimal.Min(in.monthlySalary, p.salaryCap)
	monthly := pensionable.Mul(decimal.NewFromInt(int64(in.years))).Mul(p.factor)

	return monthlyEstimate(domain.EstimateSalaryLinked, monthly, fmt.Sprintf("EPS: %s × %d years × %s = %s/month",
		in.money(pensionable), in.years, p.factor.String(), in.money(whole(monthly)))), nil
}

// flatAccrual prorates a full annual pension by qualifying periods
type flatAccrual struct {
	kind           domain.EstimateType
	label          string
	fullAnnual     decimal.Decimal
	periodsPerYear int
	fullPeriods    int
	periodName     string
}

func (p flatAccrual) calculate(in inputs) (domain.BenefitEstimate, error) {
	periods := in.years * p.periodsPerYear
	if periods > p.fullPeriods {
		periods = p.fullPeriods
	}
	annual := p.fullAnnual.Mul(decimal.NewFromInt(int64(periods))).Div(decimal.NewFromInt(int64(p.fullPeriods)))

	est := monthlyEstimate(p.kind, annual.Div(twelve), "")
	est.Calculation = fmt.Sprintf("%s: %s/year (%d %s)", p.label, in.money(est.AnnualPension), periods, p.periodName)
	return est, nil
}

// earningsReplacement replaces a share of capped monthly earnings
type earningsReplacement struct {
	earningsCap decimal.Decimal
	rate        decimal.Decimal
}

func (p earningsReplacement) calculate(in inputs) (domain.BenefitEstimate, error) {
	if in.monthlySalary.IsNegative() {
		return domain.BenefitEstimate{}, errNegativeSalary
	}
	monthly := decimal.Min(in.monthlySalary, p.earningsCap).Mul(p.rate)
	return monthlyEstimate(domain.EstimateUSASocialSecurity, monthly,
		fmt.Sprintf("Social Security: %s/month", in.money(whole(monthly)))), nil
}

// India statutory plans, shared by the formula resolvers and the plan table
var (
	epsPlan = salaryLinked{
		salaryCap: decimal.NewFromInt(15000),
		factor:    decimal.NewFromFloat(0.00833),
	}
	epfPlan = providentFund{
		employeeRate: decimal.NewFromFloat(0.12),
		employerRate: decimal.NewFromFloat(0.12),
		interest:     decimal.NewFromFloat(0.085),
	}
	npsPlan = marketLinkedAnnuity{
		employeeRate: decimal.NewFromFloat(0.10),
		employerRate: decimal.NewFromFloat(0.10),
		growth:       decimal.NewFromFloat(0.10),
		lumpSumShare: decimal.NewFromFloat(0.6),
		annuityRate:  decimal.NewFromFloat(0.06),
	}
)

type planKey struct {
	country domain.Country
	id      string
}

// plans holds the named constants of every scheme with its own calculation,
// keyed by (country, scheme id). Read-only after package init.
var plans = map[planKey]calculator{
	{domain.CountryIndia, "CEN_APY"}: fixedContributionAnnuity{
		kind:        domain.EstimateAPY,
		label:       "APY",
		member:      decimal.NewFromInt(100),
		sponsor:     decimal.NewFromInt(50),
		growth:      decimal.NewFromFloat(0.08),
		annuityRate: decimal.NewFromFloat(0.06),
	},
	{domain.CountryIndia, "CEN_PM_SYM"}: fixedContributionAnnuity{
		kind:        domain.EstimatePMSYM,
		label:       "PM-SYM",
		member:      decimal.NewFromInt(100),
		sponsor:     decimal.NewFromInt(100),
		growth:      decimal.NewFromFloat(0.08),
		annuityRate: decimal.NewFromFloat(0.06),
	},
	{domain.CountryIndia, "CEN_NPS_T1"}: npsPlan,
	{domain.CountryIndia, "CEN_EPF"}:    epfPlan,
	{domain.CountryIndia, "CEN_EPS"}:    epsPlan,

	{domain.CountryJapan, "JPN_NAT_NP_BASIC"}: flatAccrual{
		kind:           domain.EstimateJapanBasic,
		label:          "National Pension",
		fullAnnual:     decimal.NewFromInt(816000),
		periodsPerYear: 12,
		fullPeriods:    480,
		periodName:     "months",
	},
	{domain.CountryJapan, "JPN_IND_IDECO"}: fixedContributionAnnuity{
		kind:        domain.EstimateJapanIDeCo,
		label:       "iDeCo",
		member:      decimal.NewFromInt(23000),
		sponsor:     decimal.Zero,
		growth:      decimal.NewFromFloat(0.06),
		annuityRate: decimal.NewFromFloat(0.04),
	},

	{domain.CountryUSA, "USA_FED_SS_RETIRE"}: earningsReplacement{
		earningsCap: decimal.NewFromInt(14000),
		rate:        decimal.NewFromFloat(0.42),
	},
	{domain.CountryUSA, "USA_EMP_401K"}: salaryContributionAnnuity{
		kind:            domain.EstimateUSA401K,
		label:           "401(k)",
		employeeRate:    decimal.NewFromFloat(0.06),
		employerRate:    decimal.NewFromFloat(0.5),
		matchOnEmployee: true,
		growth:          decimal.NewFromFloat(0.07),
		withdrawalRate:  decimal.NewFromFloat(0.04),
	},

	{domain.CountryUK, "UK_STATE_NEW"}: flatAccrual{
		kind:           domain.EstimateUKStatePension,
		label:          "State Pension",
		fullAnnual:     decimal.NewFromFloat(221.20).Mul(decimal.NewFromInt(52)),
		periodsPerYear: 1,
		fullPeriods:    35,
		periodName:     "years",
	},
	{domain.CountryUK, "UK_EMP_DC"}: salaryContributionAnnuity{
		kind:           domain.EstimateUKWorkplaceDC,
		label:          "Workplace DC",
		employeeRate:   decimal.NewFromFloat(0.05),
		employerRate:   decimal.NewFromFloat(0.03),
		growth:         decimal.NewFromFloat(0.06),
		withdrawalRate: decimal.NewFromFloat(0.04),
	},
}

func planFor(scheme domain.SchemeRecord) (calculator, bool) {
	c, ok := plans[planKey{scheme.Country, scheme.ID}]
	return c, ok
}
