package calculation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/anushreedahiya/pension-benefit/internal/domain"
)

const errorTrace = "Unable to calculate pension for this scheme"

var (
	currencySymbols = "₹$£¥"
	amountPattern   = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)
	rangePattern    = regexp.MustCompile(`[₹$£¥]\s*([\d,]+)\s*[–-]\s*[₹$£¥]?\s*([\d,]+)`)

	rangeLowCeiling = decimal.NewFromInt(300000)
	rangeMidCeiling = decimal.NewFromInt(1000000)
	defaultShare    = decimal.NewFromFloat(0.4)
	two             = decimal.NewFromInt(2)
)

// resolver pairs a formula classification with its calculation. The first
// resolver whose predicate matches decides the estimate.
type resolver struct {
	name    string
	matches func(scheme domain.SchemeRecord, formula string) bool
	apply   func(scheme domain.SchemeRecord, formula string, in inputs) (domain.BenefitEstimate, error)
}

var resolvers = []resolver{
	{name: "fixed_monthly", matches: isFixedMonthly, apply: fixedMonthly},
	{name: "range_based", matches: isRangeBased, apply: rangeBased},
	{
		name: "salary_linked",
		matches: func(_ domain.SchemeRecord, f string) bool {
			return strings.Contains(f, "pensionable salary") && strings.Contains(f, "pensionable service")
		},
		apply: usePlan(epsPlan),
	},
	{
		name: "accumulation",
		matches: func(_ domain.SchemeRecord, f string) bool {
			return strings.Contains(f, "accumulates") && strings.Contains(f, "contributions")
		},
		apply: usePlan(epfPlan),
	},
	{
		name: "market_linked",
		matches: func(_ domain.SchemeRecord, f string) bool {
			return strings.Contains(f, "market") && strings.Contains(f, "corpus")
		},
		apply: usePlan(npsPlan),
	},
	{
		name: "plan_table",
		matches: func(s domain.SchemeRecord, _ string) bool {
			_, ok := planFor(s)
			return ok
		},
		apply: func(s domain.SchemeRecord, _ string, in inputs) (domain.BenefitEstimate, error) {
			c, _ := planFor(s)
			return c.calculate(in)
		},
	},
	{name: "default", matches: func(domain.SchemeRecord, string) bool { return true }, apply: defaultShareOfSalary},
}

func usePlan(c calculator) func(domain.SchemeRecord, string, inputs) (domain.BenefitEstimate, error) {
	return func(_ domain.SchemeRecord, _ string, in inputs) (domain.BenefitEstimate, error) {
		return c.calculate(in)
	}
}

// isFixedMonthly matches "<symbol><amount> per month" texts. Ranges are left
// to the range resolver.
func isFixedMonthly(_ domain.SchemeRecord, f string) bool {
	return strings.ContainsAny(f, currencySymbols) && strings.Contains(f, "per month") && !rangePattern.MatchString(f)
}

func fixedMonthly(_ domain.SchemeRecord, f string, in inputs) (domain.BenefitEstimate, error) {
	amount, err := firstAmount(f)
	if err != nil {
		return domain.BenefitEstimate{}, err
	}
	return monthlyEstimate(domain.EstimateFixedMonthly, amount,
		fmt.Sprintf("Fixed monthly pension of %s", in.money(whole(amount)))), nil
}

func isRangeBased(_ domain.SchemeRecord, f string) bool {
	return strings.Contains(f, "per month") && rangePattern.MatchString(f)
}

// rangeBased picks the low end for incomes up to 3 lakh, the midpoint up to
// 10 lakh and the high end above that
func rangeBased(_ domain.SchemeRecord, f string, in inputs) (domain.BenefitEstimate, error) {
	m := rangePattern.FindStringSubmatch(f)
	if m == nil {
		return domain.BenefitEstimate{}, errors.New("pension range not found")
	}
	lo, err := parseAmount(m[1])
	if err != nil {
		return domain.BenefitEstimate{}, err
	}
	hi, err := parseAmount(m[2])
	if err != nil {
		return domain.BenefitEstimate{}, err
	}
	if lo.GreaterThan(hi) {
		lo, hi = hi, lo
	}

	var monthly decimal.Decimal
	switch {
	case in.annualSalary.LessThanOrEqual(rangeLowCeiling):
		monthly = lo
	case in.annualSalary.LessThanOrEqual(rangeMidCeiling):
		monthly = lo.Add(hi).Div(two)
	default:
		monthly = hi
	}

	est := monthlyEstimate(domain.EstimateRangeBased, monthly,
		fmt.Sprintf("Estimated pension between %s - %s per month", in.money(lo), in.money(hi)))
	est.Range = &domain.PensionRange{Min: lo, Max: hi}
	return est, nil
}

func defaultShareOfSalary(_ domain.SchemeRecord, _ string, in inputs) (domain.BenefitEstimate, error) {
	if in.monthlySalary.IsNegative() {
		return domain.BenefitEstimate{}, errNegativeSalary
	}
	monthly := in.monthlySalary.Mul(defaultShare)
	return monthlyEstimate(domain.EstimateDefault, monthly,
		fmt.Sprintf("Estimated pension: 40%% of current salary = %s/month", in.money(whole(monthly)))), nil
}

func firstAmount(text string) (decimal.Decimal, error) {
	raw := amountPattern.FindString(text)
	if raw == "" {
		return decimal.Zero, errors.New("no amount in pension formula")
	}
	return parseAmount(raw)
}

func parseAmount(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", raw, err)
	}
	return d, nil
}

// Estimator projects the benefit each scheme would pay a profile
type Estimator struct{}

// NewEstimator creates an estimator over the built-in plan table
func NewEstimator() *Estimator {
	return &Estimator{}
}

// Classify names the resolver that would handle scheme
func (e *Estimator) Classify(scheme domain.SchemeRecord) string {
	formula := strings.ToLower(scheme.PensionFormula)
	for _, r := range resolvers {
		if r.matches(scheme, formula) {
			return r.name
		}
	}
	return ""
}

// Estimate computes one scheme's estimate. Errors are wrapped in a
// domain.CalculationError.
func (e *Estimator) Estimate(scheme domain.SchemeRecord, profile domain.UserProfile) (domain.BenefitEstimate, error) {
	in := inputsFor(scheme, profile)
	formula := strings.ToLower(scheme.PensionFormula)
	for _, r := range resolvers {
		if !r.matches(scheme, formula) {
			continue
		}
		est, err := r.apply(scheme, formula, in)
		if err != nil {
			return ErrorEstimate(), &domain.CalculationError{SchemeID: scheme.ID, Err: err}
		}
		return est, nil
	}
	return ErrorEstimate(), &domain.CalculationError{SchemeID: scheme.ID, Err: errors.New("no calculation applies")}
}

// ErrorEstimate is the zero estimate substituted for a failed calculation
func ErrorEstimate() domain.BenefitEstimate {
	return domain.BenefitEstimate{
		Type:           domain.EstimateError,
		MonthlyPension: decimal.Zero,
		AnnualPension:  decimal.Zero,
		Calculation:    errorTrace,
	}
}

func inputsFor(scheme domain.SchemeRecord, profile domain.UserProfile) inputs {
	monthly := profile.MonthlySalary
	if monthly.IsZero() {
		monthly = profile.AnnualSalary.Div(twelve)
	}
	return inputs{
		age:           profile.Age,
		years:         serviceYears(profile.Age),
		monthlySalary: monthly,
		annualSalary:  profile.AnnualSalary,
		symbol:        scheme.Country.CurrencySymbol(),
	}
}
