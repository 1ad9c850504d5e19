package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParameterSlider_Clamps(t *testing.T) {
	s := NewParameterSlider("Retirement age", 80, 31, 75, 1)
	assert.Equal(t, 75.0, s.Value)

	s.Increment()
	assert.Equal(t, 75.0, s.Value)

	s.SetValue(10)
	assert.Equal(t, 31.0, s.Value)
	s.Decrement()
	assert.Equal(t, 31.0, s.Value)
	assert.Equal(t, 0.0, s.Percentage())

	s.Increment()
	assert.Equal(t, 32.0, s.Value)
}

func TestParameterSlider_Render(t *testing.T) {
	s := NewParameterSlider("Expected return", 10, 1, 15, 0.5).WithFormat("%.1f").WithUnit("%")
	assert.Equal(t, "10.0%", s.FormattedValue())

	c := NewParameterSlider("Monthly contribution", 10000, 500, 100000, 500).WithPrefix("₹")
	assert.Equal(t, "₹10000", c.FormattedValue())

	c.IsFocused = true
	out := c.Render()
	assert.Contains(t, out, "▸ ")
	assert.Contains(t, out, "Monthly contribution")
	assert.Contains(t, out, "₹10000")
}

func TestParameterSlider_ZeroRange(t *testing.T) {
	s := NewParameterSlider("Fixed", 5, 5, 5, 1)
	assert.Equal(t, 0.0, s.Percentage())
	assert.NotEmpty(t, s.Render())
}

func TestScoreBar(t *testing.T) {
	assert.Contains(t, ScoreBar(7, 10), "7/10")
	assert.Equal(t, 7, strings.Count(ScoreBar(7, 10), "█"))
	assert.Equal(t, 10, strings.Count(ScoreBar(12, 10), "█"))
	assert.Equal(t, 0, strings.Count(ScoreBar(-1, 10), "█"))
	assert.Empty(t, ScoreBar(3, 0))
}

func TestSchemeListCompact(t *testing.T) {
	assert.Contains(t, SchemeListCompact(nil, 0), "No eligible schemes")

	cards := []*SchemeCard{
		NewSchemeCard("CEN_APY", "Atal Pension Yojana").WithScore(7).WithMonthly("₹1,675"),
		NewSchemeCard("CEN_PMKMY", "Pradhan Mantri Kisan Maan-dhan Yojana").WithScore(4),
	}
	out := SchemeListCompact(cards, 1)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Atal Pension Yojana")
	assert.Contains(t, lines[0], "₹1,675/month")
	assert.True(t, strings.Contains(lines[1], "▸ "))
	assert.False(t, strings.Contains(lines[0], "▸ "))
}

func TestSchemeCard_Render(t *testing.T) {
	card := NewSchemeCard("UK_STATE_NEW", "New State Pension").
		WithScore(5).
		WithMonthly("£548").
		AddHighlight("State Pension: £6,576/year (20 years)").
		SetSelected(true)
	out := card.Render()
	assert.Contains(t, out, "New State Pension")
	assert.Contains(t, out, "UK_STATE_NEW")
	assert.Contains(t, out, "£548/month")
	assert.Contains(t, out, "20 years")
}

func TestMetricCard(t *testing.T) {
	card := NewMetricCard("Total monthly", "₹4,305").WithTrend(true, "₹305").WithNote("2 schemes")
	assert.Contains(t, card.Render(), "₹4,305")
	assert.Contains(t, card.Render(), "2 schemes")
	compact := card.RenderCompact()
	assert.Contains(t, compact, "Total monthly:")
	assert.Contains(t, compact, "▲ ₹305")

	assert.Empty(t, MetricGrid(nil, 3))
	grid := MetricGrid([]*MetricCard{
		NewMetricCard("A", "1").WithWidth(10),
		NewMetricCard("B", "2").WithWidth(10),
		NewMetricCard("C", "3").WithWidth(10),
	}, 2)
	assert.Contains(t, grid, "A")
	assert.Contains(t, grid, "C")
}
