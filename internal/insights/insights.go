package insights

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/anushreedahiya/pension-benefit/internal/domain"
)

// LowReplacementRatio is the share of salary below which retirement income is flagged
var LowReplacementRatio = decimal.NewFromFloat(0.3)

// LowMonthlyTotal is the total monthly pension, in local currency units,
// below which we suggest combining schemes. It is the same for every country.
var LowMonthlyTotal = decimal.NewFromInt(5000)

const (
	warnLowRatio = "Your pension replacement ratio is low. Consider additional savings."
	warnLowTotal = "Total monthly pension is below %s. Consider multiple schemes."
)

// Aggregator turns per-scheme estimates into totals, tips and warnings
type Aggregator struct{}

// NewAggregator creates an aggregator over the built-in tip tables
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Summarize aggregates schemes for profile. Only schemes paying a monthly
// pension count toward the totals.
func (a *Aggregator) Summarize(schemes []domain.EstimatedScheme, profile domain.UserProfile) domain.InsightsSummary {
	out := domain.InsightsSummary{
		TotalMonthlyPension:  decimal.Zero,
		TotalAnnualPension:   decimal.Zero,
		RecommendedSchemeIDs: []string{},
		Warnings:             []string{},
		Tips:                 []string{},
	}

	for _, s := range schemes {
		if s.Estimate.MonthlyPension.IsPositive() {
			out.TotalMonthlyPension = out.TotalMonthlyPension.Add(s.Estimate.MonthlyPension)
			out.TotalAnnualPension = out.TotalAnnualPension.Add(s.Estimate.AnnualPension)
		}
	}

	seen := make(map[string]bool)
	for _, t := range tipsByCountry[profile.Country] {
		if !t.applies(profile) {
			continue
		}
		out.Tips = append(out.Tips, t.text)
		for _, id := range t.schemeIDs {
			if !seen[id] {
				seen[id] = true
				out.RecommendedSchemeIDs = append(out.RecommendedSchemeIDs, id)
			}
		}
	}

	if profile.AnnualSalary.IsPositive() {
		ratio := out.TotalAnnualPension.Div(profile.AnnualSalary)
		reported := ratio.Round(4)
		out.ReplacementRatio = &reported
		// compare before rounding so 0.29996 still warns
		if ratio.LessThan(LowReplacementRatio) {
			out.Warnings = append(out.Warnings, warnLowRatio)
		}
	}

	if out.TotalMonthlyPension.LessThan(LowMonthlyTotal) {
		out.Warnings = append(out.Warnings, fmt.Sprintf(warnLowTotal, formatFloor(profile.Country, LowMonthlyTotal)))
	}

	return out
}

func formatFloor(c domain.Country, floor decimal.Decimal) string {
	return c.CurrencySymbol() + message.NewPrinter(language.English).Sprintf("%d", floor.IntPart())
}
