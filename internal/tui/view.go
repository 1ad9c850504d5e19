package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/anushreedahiya/pension-benefit/internal/calculation"
	"github.com/anushreedahiya/pension-benefit/internal/tui/scenes"
	"github.com/anushreedahiya/pension-benefit/internal/tui/tuistyles"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.loading {
		return m.renderApp(tuistyles.BorderStyle.Render("⠋ Evaluating " + m.profilePath + "..."))
	}
	if m.err != nil {
		return m.renderApp(tuistyles.ErrorStyle.Render(
			fmt.Sprintf("Error: %s\n\nPress any key to continue...", m.err.Error())))
	}

	var content string
	switch m.currentScene {
	case SceneSchemes:
		content = m.schemesModel.View()
	case SceneDetail:
		content = m.renderDetail()
	case SceneSummary:
		content = scenes.SummaryView(m.report)
	case SceneScenario:
		content = m.renderScenario()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}
	return m.renderApp(content)
}

// renderApp wraps content with the title bar and status bar
func (m Model) renderApp(content string) string {
	contentHeight := m.height - 4
	if contentHeight < 0 {
		contentHeight = 0
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		lipgloss.NewStyle().Height(contentHeight).Render(content),
		m.renderStatusBar(),
	)
}

func (m Model) renderTitleBar() string {
	title := tuistyles.TitleStyle.Render("Pension Scheme Assessment")
	crumb := m.currentScene.String()
	if m.report != nil {
		p := m.report.Profile
		who := p.Name
		if who == "" {
			who = fmt.Sprintf("age %d", p.Age)
		}
		crumb = fmt.Sprintf("%s / %s, %s, %s", crumb, who, p.Country,
			calculation.FormatMoney(p.Country.CurrencySymbol(), p.AnnualSalary)+"/year")
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, tuistyles.SubtitleStyle.Render(crumb))
}

func (m Model) renderStatusBar() string {
	return tuistyles.StatusBarStyle.Width(m.width).Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

func (m Model) renderDetail() string {
	s, ok := m.selectedScheme()
	if !ok {
		return tuistyles.InfoStyle.Render("No scheme selected")
	}
	position := tuistyles.SubtitleStyle.Render(fmt.Sprintf("%d of %d • n/b next/previous", m.selected+1, len(m.report.Schemes)))
	return scenes.DetailView(s, m.report.Profile.Country.CurrencySymbol()) + "\n" + position
}

func (m Model) renderScenario() string {
	if m.scenarioModel == nil {
		return tuistyles.InfoStyle.Render("No profile loaded")
	}
	return m.scenarioModel.View()
}

func (m Model) renderHelp() string {
	intro := tuistyles.TitleStyle.Render("Keyboard shortcuts") + "\n\n"
	list := "Schemes:    ↑/↓ or j/k move, g/G jump, enter opens a scheme\n" +
		"Detail:     n/b step through schemes\n" +
		"Projection: ↑/↓ choose an input, ←/→ or +/- adjust it\n\n"
	return tuistyles.BorderStyle.Render(intro + list + m.help.FullHelpView(m.keys.FullHelp()))
}
