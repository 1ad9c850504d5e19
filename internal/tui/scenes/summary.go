package scenes

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/anushreedahiya/pension-benefit/internal/calculation"
	"github.com/anushreedahiya/pension-benefit/internal/domain"
	"github.com/anushreedahiya/pension-benefit/internal/tui/components"
	"github.com/anushreedahiya/pension-benefit/internal/tui/tuistyles"
)

var hundred = decimal.NewFromInt(100)

// SummaryView renders insights, top picks and the current-scheme comparison
func SummaryView(report *domain.Report) string {
	if report == nil {
		return tuistyles.InfoStyle.Render("No report loaded")
	}
	symbol := report.Profile.Country.CurrencySymbol()
	in := report.Insights

	ratio := "n/a"
	if in.ReplacementRatio != nil {
		ratio = in.ReplacementRatio.Mul(hundred).StringFixed(1) + "%"
	}
	cards := []*components.MetricCard{
		components.NewMetricCard("Total monthly", calculation.FormatMoney(symbol, in.TotalMonthlyPension)).
			WithNote(fmt.Sprintf("%d eligible schemes", report.TotalEligible)),
		components.NewMetricCard("Total annual", calculation.FormatMoney(symbol, in.TotalAnnualPension)),
		components.NewMetricCard("Replacement ratio", ratio).
			WithNote("of annual income"),
	}

	var sb strings.Builder
	sb.WriteString(components.MetricGrid(cards, 3) + "\n")

	if len(in.Warnings) > 0 {
		sb.WriteString(tuistyles.SectionStyle.Render("Warnings") + "\n")
		for _, w := range in.Warnings {
			sb.WriteString("  " + tuistyles.WarningStyle.Render("! "+w) + "\n")
		}
	}
	if len(in.Tips) > 0 {
		sb.WriteString(tuistyles.SectionStyle.Render("Tips") + "\n")
		for _, t := range in.Tips {
			sb.WriteString("  * " + t + "\n")
		}
	}

	if len(report.TopRecommendations) > 0 {
		sb.WriteString(tuistyles.SectionStyle.Render("Top recommendations") + "\n")
		for _, r := range report.TopRecommendations {
			sb.WriteString(fmt.Sprintf("  %d. %s  %s/month\n", r.Rank,
				tuistyles.MetricValueStyle.Render(r.Scheme), calculation.FormatMoney(symbol, r.MonthlyPension)))
		}
	}

	if c := report.Comparison; c != nil {
		sb.WriteString(tuistyles.SectionStyle.Render("Current scheme") + "\n")
		card := components.NewMetricCard(c.CurrentScheme, calculation.FormatMoney(symbol, c.RecommendedMonthlyPension)).
			WithTrend(c.IsBetter, fmt.Sprintf("%s (%s%%)", calculation.FormatMoney(symbol, c.Difference), c.PercentageImprovement.StringFixed(2))).
			WithNote("you receive " + calculation.FormatMoney(symbol, c.CurrentMonthlyPension)).
			WithWidth(48)
		sb.WriteString(card.Render() + "\n")
		sb.WriteString("  " + c.Recommendation + "\n")
	}
	return sb.String()
}
