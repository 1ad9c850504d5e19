package output

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/anushreedahiya/pension-benefit/internal/calculation"
	"github.com/anushreedahiya/pension-benefit/internal/domain"
	"github.com/anushreedahiya/pension-benefit/internal/tui/tuistyles"
)

var hundred = decimal.NewFromInt(100)

// ConsoleFormatter renders a report for a terminal
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("no report to format")
	}
	symbol := report.Profile.Country.CurrencySymbol()
	money := func(d decimal.Decimal) string { return calculation.FormatMoney(symbol, d) }

	var sb strings.Builder
	sb.WriteString(tuistyles.TitleStyle.Render("PENSION SCHEME ASSESSMENT") + "\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(profileLine(report.Profile) + "\n")
	sb.WriteString(fmt.Sprintf("Eligible schemes: %d\n", report.TotalEligible))

	for i, s := range report.Schemes {
		sb.WriteString("\n")
		sb.WriteString(tuistyles.SelectedItemStyle.Render(fmt.Sprintf("%2d. %s (%s)", i+1, s.Scheme.Name, s.Scheme.ID)))
		sb.WriteString(fmt.Sprintf("  score %d\n", s.RelevanceScore))
		sb.WriteString(fmt.Sprintf("    Monthly pension: %s   Annual: %s\n", money(s.Estimate.MonthlyPension), money(s.Estimate.AnnualPension)))
		if s.Estimate.LumpSumCorpus != nil {
			sb.WriteString(fmt.Sprintf("    Lump sum: %s\n", money(*s.Estimate.LumpSumCorpus)))
		}
		sb.WriteString("    " + tuistyles.SubtitleStyle.Render(s.Estimate.Calculation) + "\n")
		sb.WriteString("    " + s.Recommendation + "\n")
		for _, a := range s.Advantages {
			sb.WriteString("    " + tuistyles.AdvantageStyle.Render("+ "+a) + "\n")
		}
		for _, d := range s.Disadvantages {
			sb.WriteString("    " + tuistyles.DisadvantageStyle.Render("- "+d) + "\n")
		}
	}

	sb.WriteString("\n" + tuistyles.TitleStyle.Render("SUMMARY") + "\n")
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	in := report.Insights
	sb.WriteString(fmt.Sprintf("Total monthly pension: %s\n", money(in.TotalMonthlyPension)))
	sb.WriteString(fmt.Sprintf("Total annual pension:  %s\n", money(in.TotalAnnualPension)))
	if in.ReplacementRatio != nil {
		sb.WriteString(fmt.Sprintf("Replacement ratio:     %s%%\n", in.ReplacementRatio.Mul(hundred).StringFixed(2)))
	}
	for _, w := range in.Warnings {
		sb.WriteString(tuistyles.WarningStyle.Render("! "+w) + "\n")
	}
	for _, t := range in.Tips {
		sb.WriteString("* " + t + "\n")
	}

	if len(report.TopRecommendations) > 0 {
		sb.WriteString("\n" + tuistyles.TitleStyle.Render("TOP RECOMMENDATIONS") + "\n")
		sb.WriteString(strings.Repeat("-", 60) + "\n")
		for _, r := range report.TopRecommendations {
			sb.WriteString(fmt.Sprintf("%d. %s: %s/month\n", r.Rank, r.Scheme, money(r.MonthlyPension)))
		}
	}

	if c := report.Comparison; c != nil {
		sb.WriteString("\n" + tuistyles.TitleStyle.Render("CURRENT SCHEME") + "\n")
		sb.WriteString(strings.Repeat("-", 60) + "\n")
		sb.WriteString(fmt.Sprintf("%s: current %s, estimated %s\n", c.CurrentScheme, money(c.CurrentMonthlyPension), money(c.RecommendedMonthlyPension)))
		trend := tuistyles.MetricTrendStyle(c.IsBetter).Render(
			fmt.Sprintf("%s %s (%s%%)", tuistyles.TrendIndicator(c.IsBetter), money(c.Difference), c.PercentageImprovement.StringFixed(2)))
		sb.WriteString(trend + "\n")
		sb.WriteString(c.Recommendation + "\n")
	}

	return []byte(sb.String()), nil
}

func profileLine(p domain.ProfileSummary) string {
	parts := []string{}
	if p.Name != "" {
		parts = append(parts, p.Name)
	}
	parts = append(parts, fmt.Sprintf("age %d", p.Age), string(p.Country))
	if p.Sector != "" {
		parts = append(parts, p.Sector)
	}
	parts = append(parts, "annual income "+calculation.FormatMoney(p.Country.CurrencySymbol(), p.AnnualSalary))
	return "Profile: " + strings.Join(parts, ", ")
}
