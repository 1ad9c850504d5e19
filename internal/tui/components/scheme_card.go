package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/anushreedahiya/pension-benefit/internal/tui/tuistyles"
)

// SchemeCard is the list entry for one eligible scheme
type SchemeCard struct {
	ID         string
	Name       string
	Score      int
	Monthly    string
	Highlights []string
	IsSelected bool
	Width      int
}

// NewSchemeCard creates a card for a scheme
func NewSchemeCard(id, name string) *SchemeCard {
	return &SchemeCard{ID: id, Name: name, Width: 60}
}

// WithScore sets the relevance score shown on the card
func (s *SchemeCard) WithScore(score int) *SchemeCard {
	s.Score = score
	return s
}

// WithMonthly sets the formatted monthly pension
func (s *SchemeCard) WithMonthly(monthly string) *SchemeCard {
	s.Monthly = monthly
	return s
}

// AddHighlight appends a bullet line
func (s *SchemeCard) AddHighlight(h string) *SchemeCard {
	s.Highlights = append(s.Highlights, h)
	return s
}

// SetSelected marks the card as the cursor position
func (s *SchemeCard) SetSelected(selected bool) *SchemeCard {
	s.IsSelected = selected
	return s
}

// Render draws the full bordered card
func (s *SchemeCard) Render() string {
	var content strings.Builder
	content.WriteString(tuistyles.TitleStyle.Render(s.Name))
	content.WriteString("\n")
	content.WriteString(tuistyles.SubtitleStyle.Render(s.ID))
	content.WriteString("\n")
	content.WriteString(ScoreBar(s.Score, 10))
	if s.Monthly != "" {
		content.WriteString("  " + tuistyles.MetricValueStyle.Render(s.Monthly+"/month"))
	}
	for _, h := range s.Highlights {
		content.WriteString("\n" + tuistyles.SubtitleStyle.Render("• "+h))
	}

	style := tuistyles.BorderStyle
	if s.IsSelected {
		style = tuistyles.ActiveBorderStyle
	}
	return style.Width(s.Width).Render(content.String())
}

// RenderCompact draws the card as one list line
func (s *SchemeCard) RenderCompact() string {
	parts := []string{
		fmt.Sprintf("%2d", s.Score),
		lipgloss.NewStyle().Bold(true).Render(s.Name),
	}
	if s.Monthly != "" {
		parts = append(parts, tuistyles.SubtitleStyle.Render(s.Monthly+"/month"))
	}
	return strings.Join(parts, "  ")
}

// SchemeListCompact renders cards one per line with a cursor on selected
func SchemeListCompact(cards []*SchemeCard, selected int) string {
	if len(cards) == 0 {
		return tuistyles.InfoStyle.Render("No eligible schemes")
	}

	lines := make([]string, len(cards))
	for i, card := range cards {
		prefix, style := "  ", tuistyles.UnselectedItemStyle
		if i == selected {
			prefix, style = "▸ ", tuistyles.SelectedItemStyle
		}
		lines[i] = style.Render(prefix + card.RenderCompact())
	}
	return strings.Join(lines, "\n")
}

// ScoreBar draws score out of max as a filled bar
func ScoreBar(score, max int) string {
	if max <= 0 {
		return ""
	}
	filled := score
	if filled < 0 {
		filled = 0
	}
	if filled > max {
		filled = max
	}
	bar := tuistyles.SliderThumbStyle.Render(strings.Repeat("█", filled)) +
		tuistyles.SliderTrackStyle.Render(strings.Repeat("░", max-filled))
	return fmt.Sprintf("[%s] %d/%d", bar, score, max)
}
