package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/anushreedahiya/pension-benefit/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// factorPrecision keeps repeated compounding from growing unbounded digits
const factorPrecision = 24

// maxScenarioAge bounds both ages so the compounding exponent stays small
const maxScenarioAge = 120

// DefaultScenarioInputs mirrors a typical 30-year-old saving 10,000 a month
func DefaultScenarioInputs() domain.ScenarioInputs {
	return domain.ScenarioInputs{
		CurrentAge:          30,
		RetirementAge:       60,
		MonthlyContribution: decimal.NewFromInt(10000),
		ReturnRate:          decimal.NewFromInt(10),
		InflationRate:       decimal.NewFromInt(6),
	}
}

// ValidateScenario reports every invalid input at once
func ValidateScenario(in domain.ScenarioInputs) error {
	ve := &domain.ValidationError{}
	if in.CurrentAge < 0 || in.CurrentAge > maxScenarioAge {
		ve.Add("currentAge", "must be between 0 and %d", maxScenarioAge)
	}
	switch {
	case in.RetirementAge <= in.CurrentAge:
		ve.Add("retirementAge", "retirement age must be greater than current age")
	case in.RetirementAge > maxScenarioAge:
		ve.Add("retirementAge", "must be at most %d", maxScenarioAge)
	}
	if !in.MonthlyContribution.IsPositive() {
		ve.Add("monthlyContribution", "must be positive")
	}
	if !in.ReturnRate.IsPositive() {
		ve.Add("returnRate", "must be positive")
	}
	if !in.InflationRate.IsPositive() {
		ve.Add("inflationRate", "must be positive")
	}
	return ve.ErrOrNil()
}

// ProjectScenario projects level monthly saving to retirement:
// FV = PMT * ((1+r)^n - 1) / r with monthly rate r over n months, deflated
// by annual inflation over the same years.
func ProjectScenario(in domain.ScenarioInputs) (domain.ScenarioProjection, error) {
	if err := ValidateScenario(in); err != nil {
		return domain.ScenarioProjection{}, err
	}

	years := in.RetirementAge - in.CurrentAge
	months := years * 12
	monthlyRate := in.ReturnRate.Div(hundred).Div(twelve)

	growth := powInt(one.Add(monthlyRate), months)
	futureValue := in.MonthlyContribution.Mul(growth.Sub(one)).Div(monthlyRate)

	deflator := powInt(one.Add(in.InflationRate.Div(hundred)), years)
	realValue := futureValue.Div(deflator)

	total := in.MonthlyContribution.Mul(decimal.NewFromInt(int64(months)))

	return domain.ScenarioProjection{
		Inputs:            in,
		YearsToRetirement: years,
		FutureValue:       whole(futureValue),
		RealValue:         whole(realValue),
		TotalContribution: whole(total),
		InterestEarned:    whole(futureValue.Sub(total)),
		InflationLoss:     whole(futureValue.Sub(realValue)),
	}, nil
}

// powInt raises base to a non-negative integer power by squaring
func powInt(base decimal.Decimal, exp int) decimal.Decimal {
	result := one
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base).Round(factorPrecision)
		}
		base = base.Mul(base).Round(factorPrecision)
		exp >>= 1
	}
	return result
}
