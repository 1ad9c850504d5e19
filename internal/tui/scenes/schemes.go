package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/anushreedahiya/pension-benefit/internal/calculation"
	"github.com/anushreedahiya/pension-benefit/internal/domain"
	"github.com/anushreedahiya/pension-benefit/internal/tui/components"
	"github.com/anushreedahiya/pension-benefit/internal/tui/tuimsg"
	"github.com/anushreedahiya/pension-benefit/internal/tui/tuistyles"
)

// SchemesModel is the ranked list of eligible schemes
type SchemesModel struct {
	schemes       []domain.EstimatedScheme
	cards         []*components.SchemeCard
	selectedIndex int
	width         int
	height        int
}

// NewSchemesModel creates an empty list
func NewSchemesModel() *SchemesModel {
	return &SchemesModel{}
}

// SetSchemes replaces the list; symbol is the profile's currency
func (m *SchemesModel) SetSchemes(schemes []domain.EstimatedScheme, symbol string) {
	m.schemes = schemes
	m.cards = make([]*components.SchemeCard, len(schemes))
	for i, s := range schemes {
		m.cards[i] = components.NewSchemeCard(s.Scheme.ID, s.Scheme.Name).
			WithScore(s.RelevanceScore).
			WithMonthly(calculation.FormatMoney(symbol, s.Estimate.MonthlyPension)).
			AddHighlight(s.Estimate.Calculation).
			AddHighlight(s.Recommendation)
	}
	if m.selectedIndex >= len(schemes) {
		m.selectedIndex = 0
	}
}

// SetSize updates the scene dimensions
func (m *SchemesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Selected returns the cursor position
func (m *SchemesModel) Selected() int {
	return m.selectedIndex
}

// SelectedScheme returns the scheme under the cursor
func (m *SchemesModel) SelectedScheme() (domain.EstimatedScheme, bool) {
	if m.selectedIndex < 0 || m.selectedIndex >= len(m.schemes) {
		return domain.EstimatedScheme{}, false
	}
	return m.schemes[m.selectedIndex], true
}

// Update handles list navigation
func (m *SchemesModel) Update(msg tea.Msg) (*SchemesModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		if m.selectedIndex > 0 {
			m.selectedIndex--
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j"))):
		if m.selectedIndex < len(m.schemes)-1 {
			m.selectedIndex++
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("g", "home"))):
		m.selectedIndex = 0
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("G", "end"))):
		m.selectedIndex = max(0, len(m.schemes)-1)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter"))):
		if len(m.schemes) == 0 {
			return m, nil
		}
		index := m.selectedIndex
		return m, func() tea.Msg { return tuimsg.SchemeSelectedMsg{Index: index} }
	}
	return m, nil
}

// View renders the compact list with the selected card expanded below it
func (m *SchemesModel) View() string {
	var sb strings.Builder
	sb.WriteString(tuistyles.SectionStyle.Render(fmt.Sprintf("Eligible schemes (%d)", len(m.schemes))))
	sb.WriteString("\n\n")
	sb.WriteString(components.SchemeListCompact(m.cards, m.selectedIndex))

	if m.selectedIndex < len(m.cards) {
		width := 60
		if m.width > 10 && m.width-4 < width {
			width = m.width - 4
		}
		card := *m.cards[m.selectedIndex]
		card.Width = width
		sb.WriteString("\n\n")
		sb.WriteString(card.SetSelected(true).Render())
	}
	sb.WriteString("\n")
	sb.WriteString(tuistyles.InfoStyle.Render("↑/↓ move • enter details"))
	return sb.String()
}
