package tuistyles

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	ColorPrimary   = lipgloss.AdaptiveColor{Light: "#1F4E79", Dark: "#7AB8F5"}
	ColorSecondary = lipgloss.AdaptiveColor{Light: "#5B5B8F", Dark: "#B4B4E6"}
	ColorAccent    = lipgloss.AdaptiveColor{Light: "#B35C00", Dark: "#F5A142"}
	ColorSuccess   = lipgloss.AdaptiveColor{Light: "#1E7B34", Dark: "#5FD37A"}
	ColorDanger    = lipgloss.AdaptiveColor{Light: "#B02A2A", Dark: "#F57272"}
	ColorMuted     = lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#8A8A8A"}
	ColorBorder    = lipgloss.AdaptiveColor{Light: "#C8C8C8", Dark: "#444444"}
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary).
			MarginTop(1)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StatusKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	SelectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	UnselectedItemStyle = lipgloss.NewStyle()

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Bold(true)

	AdvantageStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	DisadvantageStyle = lipgloss.NewStyle().
				Foreground(ColorDanger)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorDanger)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	ActiveBorderStyle = BorderStyle.
				BorderForeground(ColorPrimary)

	InfoStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(ColorMuted)
)

// Slider styles
var (
	ParameterLabelStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary)

	ParameterValueStyle = lipgloss.NewStyle().
				Bold(true)

	SliderTrackStyle = lipgloss.NewStyle().
				Foreground(ColorBorder)

	SliderThumbStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary)
)

// TrendIndicator returns an arrow for the direction of a change
func TrendIndicator(isPositive bool) string {
	if isPositive {
		return "▲"
	}
	return "▼"
}

// MetricTrendStyle colors a change by direction
func MetricTrendStyle(isPositive bool) lipgloss.Style {
	if isPositive {
		return lipgloss.NewStyle().Foreground(ColorSuccess)
	}
	return lipgloss.NewStyle().Foreground(ColorDanger)
}
