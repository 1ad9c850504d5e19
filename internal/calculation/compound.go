package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/anushreedahiya/pension-benefit/internal/domain"
)

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)
)

const (
	retirementAge   = 60
	maxServiceYears = 40
)

// serviceYears is the contribution horizon assumed for an applicant of age:
// years left until 60, capped at 40 and never negative.
func serviceYears(age int) int {
	years := retirementAge - age
	if years < 0 {
		years = 0
	}
	if years > maxServiceYears {
		years = maxServiceYears
	}
	return years
}

// accumulate grows a level annual contribution for the given number of years,
// crediting each year's contribution with growth through that year:
// sum over year=1..years of annual * (1+rate)^year.
func accumulate(annual, rate decimal.Decimal, years int) decimal.Decimal {
	total := decimal.Zero
	growth := one.Add(rate)
	factor := one
	for year := 1; year <= years; year++ {
		factor = factor.Mul(growth)
		total = total.Add(annual.Mul(factor))
	}
	return total
}

// monthlyAnnuity converts a corpus to a monthly payout at an annual rate
func monthlyAnnuity(corpus, rate decimal.Decimal) decimal.Decimal {
	return corpus.Mul(rate).Div(twelve)
}

// whole rounds to whole currency units, halves away from zero
func whole(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// monthlyEstimate builds an estimate whose annual figure is exactly twelve
// rounded monthly payments, so AnnualPension == 12 * MonthlyPension holds for
// every reported estimate
func monthlyEstimate(t domain.EstimateType, monthly decimal.Decimal, trace string) domain.BenefitEstimate {
	m := whole(monthly)
	return domain.BenefitEstimate{
		Type:           t,
		MonthlyPension: m,
		AnnualPension:  m.Mul(twelve),
		Calculation:    trace,
	}
}

func ptr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
