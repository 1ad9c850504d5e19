package scenes

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/anushreedahiya/pension-benefit/internal/calculation"
	"github.com/anushreedahiya/pension-benefit/internal/domain"
	"github.com/anushreedahiya/pension-benefit/internal/tui/components"
	"github.com/anushreedahiya/pension-benefit/internal/tui/tuimsg"
	"github.com/anushreedahiya/pension-benefit/internal/tui/tuistyles"
)

const maxRetirementAge = 75

const (
	sliderRetirement = iota
	sliderContribution
	sliderReturn
	sliderInflation
)

// contributionStep is one slider notch of monthly saving in each currency
var contributionStep = map[domain.Country]float64{
	domain.CountryIndia: 500,
	domain.CountryJapan: 5000,
	domain.CountryUSA:   50,
	domain.CountryUK:    50,
}

// ScenarioModel edits and projects a monthly savings plan
type ScenarioModel struct {
	currentAge int
	symbol     string
	sliders    []*components.ParameterSlider
	focused    int

	projection domain.ScenarioProjection
	err        error
}

// NewScenarioModel starts from the default plan adjusted to the profile's
// age and currency
func NewScenarioModel(age int, country domain.Country) *ScenarioModel {
	defaults := calculation.DefaultScenarioInputs()
	step, ok := contributionStep[country]
	if !ok {
		step = contributionStep[domain.CountryIndia]
	}
	contribution, _ := defaults.MonthlyContribution.Float64()
	if country != domain.CountryIndia {
		contribution = step * 20
	}
	retirement := defaults.RetirementAge
	if retirement <= age {
		retirement = min(age+1, maxRetirementAge)
	}
	ret, _ := defaults.ReturnRate.Float64()
	infl, _ := defaults.InflationRate.Float64()

	symbol := country.CurrencySymbol()
	m := &ScenarioModel{
		currentAge: age,
		symbol:     symbol,
		sliders: []*components.ParameterSlider{
			components.NewParameterSlider("Retirement age", float64(retirement), float64(age+1), maxRetirementAge, 1),
			components.NewParameterSlider("Monthly contribution", contribution, step, step*200, step).WithPrefix(symbol),
			components.NewParameterSlider("Expected return", ret, 0.5, 15, 0.5).WithFormat("%.1f").WithUnit("%"),
			components.NewParameterSlider("Inflation", infl, 0.5, 12, 0.5).WithFormat("%.1f").WithUnit("%"),
		},
	}
	m.sliders[0].IsFocused = true
	m.recalculate()
	return m
}

// Inputs converts the slider positions to projection inputs
func (m *ScenarioModel) Inputs() domain.ScenarioInputs {
	return domain.ScenarioInputs{
		CurrentAge:          m.currentAge,
		RetirementAge:       int(m.sliders[sliderRetirement].Value),
		MonthlyContribution: decimal.NewFromFloat(m.sliders[sliderContribution].Value),
		ReturnRate:          decimal.NewFromFloat(m.sliders[sliderReturn].Value),
		InflationRate:       decimal.NewFromFloat(m.sliders[sliderInflation].Value),
	}
}

// Projection returns the latest result and any validation error
func (m *ScenarioModel) Projection() (domain.ScenarioProjection, error) {
	return m.projection, m.err
}

func (m *ScenarioModel) recalculate() {
	m.projection, m.err = calculation.ProjectScenario(m.Inputs())
}

// Update moves focus with up/down and adjusts the focused slider with left/right
func (m *ScenarioModel) Update(msg tea.Msg) (*ScenarioModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		m.focus(m.focused - 1)
		return m, nil
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j", "tab"))):
		m.focus(m.focused + 1)
		return m, nil
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("right", "l", "+"))):
		m.sliders[m.focused].Increment()
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("left", "h", "-"))):
		m.sliders[m.focused].Decrement()
	default:
		return m, nil
	}

	m.recalculate()
	inputs := m.Inputs()
	return m, func() tea.Msg { return tuimsg.ScenarioChangedMsg{Inputs: inputs} }
}

func (m *ScenarioModel) focus(i int) {
	if i < 0 || i >= len(m.sliders) {
		return
	}
	m.sliders[m.focused].IsFocused = false
	m.focused = i
	m.sliders[i].IsFocused = true
}

// View renders the sliders and the projected outcome
func (m *ScenarioModel) View() string {
	var sb strings.Builder
	sb.WriteString(tuistyles.SectionStyle.Render("Savings projection") + "\n\n")
	for _, s := range m.sliders {
		sb.WriteString(s.Render() + "\n")
	}
	sb.WriteString("\n")

	if m.err != nil {
		sb.WriteString(tuistyles.ErrorStyle.Render(m.err.Error()) + "\n")
		return sb.String()
	}

	p := m.projection
	money := func(d decimal.Decimal) string { return calculation.FormatMoney(m.symbol, d) }
	cards := []*components.MetricCard{
		components.NewMetricCard("Future value", money(p.FutureValue)).
			WithNote("after " + pluralYears(p.YearsToRetirement)),
		components.NewMetricCard("In today's money", money(p.RealValue)),
		components.NewMetricCard("Total contributed", money(p.TotalContribution)),
		components.NewMetricCard("Interest earned", money(p.InterestEarned)).
			WithTrend(true, money(p.InterestEarned)),
		components.NewMetricCard("Lost to inflation", money(p.InflationLoss)).
			WithTrend(false, money(p.InflationLoss)),
	}
	sb.WriteString(components.MetricGrid(cards, 3) + "\n")
	sb.WriteString(tuistyles.InfoStyle.Render("↑/↓ choose • ←/→ adjust"))
	return sb.String()
}

func pluralYears(n int) string {
	if n == 1 {
		return "1 year"
	}
	return strconv.Itoa(n) + " years"
}
