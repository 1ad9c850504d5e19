package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/anushreedahiya/pension-benefit/internal/tui/tuistyles"
)

// ParameterSlider is an adjustable projection input
type ParameterSlider struct {
	Label     string
	Value     float64
	Min       float64
	Max       float64
	Step      float64
	Prefix    string // currency symbol
	Unit      string // e.g. "%", " yrs"
	Format    string
	Width     int
	IsFocused bool
}

// NewParameterSlider creates a slider clamped to [min, max]
func NewParameterSlider(label string, value, min, max, step float64) *ParameterSlider {
	p := &ParameterSlider{
		Label:  label,
		Min:    min,
		Max:    max,
		Step:   step,
		Format: "%.0f",
		Width:  24,
	}
	p.SetValue(value)
	return p
}

// WithPrefix sets a symbol printed before the value
func (p *ParameterSlider) WithPrefix(prefix string) *ParameterSlider {
	p.Prefix = prefix
	return p
}

// WithUnit sets the unit suffix
func (p *ParameterSlider) WithUnit(unit string) *ParameterSlider {
	p.Unit = unit
	return p
}

// WithFormat sets the value format verb
func (p *ParameterSlider) WithFormat(format string) *ParameterSlider {
	p.Format = format
	return p
}

// Increment raises the value by one step, stopping at Max
func (p *ParameterSlider) Increment() {
	p.SetValue(p.Value + p.Step)
}

// Decrement lowers the value by one step, stopping at Min
func (p *ParameterSlider) Decrement() {
	p.SetValue(p.Value - p.Step)
}

// SetValue clamps value into range
func (p *ParameterSlider) SetValue(value float64) {
	p.Value = math.Max(p.Min, math.Min(p.Max, value))
}

// Percentage is the value's position within the range, 0 to 1
func (p *ParameterSlider) Percentage() float64 {
	if p.Max == p.Min {
		return 0
	}
	return (p.Value - p.Min) / (p.Max - p.Min)
}

// FormattedValue renders the value with prefix and unit
func (p *ParameterSlider) FormattedValue() string {
	return p.Prefix + fmt.Sprintf(p.Format, p.Value) + p.Unit
}

// Render draws the slider on one line
func (p *ParameterSlider) Render() string {
	label := tuistyles.ParameterLabelStyle
	value := tuistyles.ParameterValueStyle
	cursor := "  "
	if p.IsFocused {
		label = label.Foreground(tuistyles.ColorPrimary)
		value = value.Foreground(tuistyles.ColorAccent)
		cursor = "▸ "
	}
	return fmt.Sprintf("%s%s %s %s", cursor, label.Render(fmt.Sprintf("%-22s", p.Label)), p.bar(), value.Render(p.FormattedValue()))
}

func (p *ParameterSlider) bar() string {
	filled := int(math.Round(float64(p.Width) * p.Percentage()))
	if filled > p.Width {
		filled = p.Width
	}

	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < p.Width; i++ {
		switch {
		case i == filled || (i == p.Width-1 && filled == p.Width):
			b.WriteString(tuistyles.SliderThumbStyle.Render("●"))
		case i < filled:
			b.WriteString(tuistyles.SliderThumbStyle.Render("━"))
		default:
			b.WriteString(tuistyles.SliderTrackStyle.Render("─"))
		}
	}
	b.WriteString("]")
	return b.String()
}
