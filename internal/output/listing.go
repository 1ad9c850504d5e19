package output

import (
	"fmt"
	"strings"

	"github.com/anushreedahiya/pension-benefit/internal/calculation"
	"github.com/anushreedahiya/pension-benefit/internal/domain"
	"github.com/anushreedahiya/pension-benefit/internal/tui/tuistyles"
)

// SchemeTable lists catalog schemes one per line with their age window
func SchemeTable(schemes []domain.SchemeRecord) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-22s %-7s %-9s %-18s %s\n", "SCHEME ID", "COUNTRY", "AGES", "SECTOR", "NAME"))
	sb.WriteString(strings.Repeat("-", 90) + "\n")
	for _, s := range schemes {
		ages := fmt.Sprintf("%s-%s", s.EligibilityAgeMin, s.EligibilityAgeMax)
		sb.WriteString(fmt.Sprintf("%-22s %-7s %-9s %-18s %s\n", s.ID, s.Country, ages, s.Sector, s.Name))
	}
	sb.WriteString(fmt.Sprintf("\n%d schemes\n", len(schemes)))
	return sb.String()
}

// ScenarioText renders a savings projection for a terminal
func ScenarioText(p domain.ScenarioProjection, symbol string) string {
	var sb strings.Builder
	sb.WriteString(tuistyles.TitleStyle.Render("RETIREMENT SAVINGS PROJECTION") + "\n")
	sb.WriteString(strings.Repeat("=", 50) + "\n")
	sb.WriteString(fmt.Sprintf("Saving %s/month from age %d to %d (%d years)\n",
		calculation.FormatMoney(symbol, p.Inputs.MonthlyContribution), p.Inputs.CurrentAge, p.Inputs.RetirementAge, p.YearsToRetirement))
	sb.WriteString(fmt.Sprintf("Return %s%%, inflation %s%%\n\n", p.Inputs.ReturnRate.String(), p.Inputs.InflationRate.String()))

	rows := []struct {
		label string
		value string
	}{
		{"Future value", calculation.FormatMoney(symbol, p.FutureValue)},
		{"Value in today's money", calculation.FormatMoney(symbol, p.RealValue)},
		{"Total contributed", calculation.FormatMoney(symbol, p.TotalContribution)},
		{"Interest earned", calculation.FormatMoney(symbol, p.InterestEarned)},
		{"Lost to inflation", calculation.FormatMoney(symbol, p.InflationLoss)},
	}
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-24s %s\n", r.label+":", tuistyles.MetricValueStyle.Render(r.value)))
	}
	return sb.String()
}
