package scenes

import (
	"fmt"
	"strings"

	"github.com/anushreedahiya/pension-benefit/internal/calculation"
	"github.com/anushreedahiya/pension-benefit/internal/domain"
	"github.com/anushreedahiya/pension-benefit/internal/tui/components"
	"github.com/anushreedahiya/pension-benefit/internal/tui/tuistyles"
)

// DetailView renders everything known about one estimated scheme
func DetailView(s domain.EstimatedScheme, symbol string) string {
	var sb strings.Builder
	rec := s.Scheme
	sb.WriteString(tuistyles.TitleStyle.Render(rec.Name) + "\n")
	sb.WriteString(tuistyles.SubtitleStyle.Render(strings.Join(nonEmpty(rec.ID, rec.Category, rec.Agency), " · ")) + "\n\n")
	sb.WriteString(components.ScoreBar(s.RelevanceScore, 10) + "  " + s.Recommendation + "\n")

	est := s.Estimate
	cards := []*components.MetricCard{
		components.NewMetricCard("Monthly pension", calculation.FormatMoney(symbol, est.MonthlyPension)),
		components.NewMetricCard("Annual pension", calculation.FormatMoney(symbol, est.AnnualPension)),
	}
	if est.LumpSumCorpus != nil {
		cards = append(cards, components.NewMetricCard("Lump sum", calculation.FormatMoney(symbol, *est.LumpSumCorpus)))
	}
	if est.Corpus != nil {
		cards = append(cards, components.NewMetricCard("Corpus", calculation.FormatMoney(symbol, *est.Corpus)))
	}
	if est.Range != nil {
		cards = append(cards, components.NewMetricCard("Range",
			calculation.FormatMoney(symbol, est.Range.Min)+" - "+calculation.FormatMoney(symbol, est.Range.Max)))
	}
	sb.WriteString("\n" + components.MetricGrid(cards, 3) + "\n")
	sb.WriteString(tuistyles.InfoStyle.Render(est.Calculation) + "\n")

	sb.WriteString(tuistyles.SectionStyle.Render("Eligibility") + "\n")
	for _, f := range []struct {
		label string
		ok    bool
	}{
		{"Country", s.CountryMatch},
		{"Age", s.AgeEligible},
		{"Income", s.IncomeEligible},
		{"Sector", s.SectorEligible},
	} {
		sb.WriteString(fmt.Sprintf("  %s %s\n", tuistyles.MetricTrendStyle(f.ok).Render(check(f.ok)), f.label))
	}
	sb.WriteString(fmt.Sprintf("  Ages %s-%s", rec.EligibilityAgeMin, rec.EligibilityAgeMax))
	if rec.IncomeCriteria != "" {
		sb.WriteString(" · " + rec.IncomeCriteria)
	}
	sb.WriteString("\n")

	if len(s.Advantages)+len(s.Disadvantages) > 0 {
		sb.WriteString(tuistyles.SectionStyle.Render("Trade-offs") + "\n")
		for _, a := range s.Advantages {
			sb.WriteString("  " + tuistyles.AdvantageStyle.Render("+ "+a) + "\n")
		}
		for _, d := range s.Disadvantages {
			sb.WriteString("  " + tuistyles.DisadvantageStyle.Render("- "+d) + "\n")
		}
	}
	if rec.OfficialLink != "" {
		sb.WriteString("\n" + tuistyles.SubtitleStyle.Render(rec.OfficialLink) + "\n")
	}
	return sb.String()
}

func check(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

func nonEmpty(values ...string) []string {
	out := values[:0:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
