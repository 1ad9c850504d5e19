package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/anushreedahiya/pension-benefit/internal/tui/scenes"
	"github.com/anushreedahiya/pension-benefit/internal/tui/tuimsg"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.schemesModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case NavigateMsg:
		if msg.Scene == SceneDetail {
			if _, ok := m.selectedScheme(); !ok {
				return m, nil
			}
		}
		if msg.Scene != m.currentScene {
			m.previousScene = m.currentScene
			m.currentScene = msg.Scene
		}
		return m, nil

	case tuimsg.ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case tuimsg.ReportLoadedMsg:
		m.loading = false
		m.report = msg.Report
		m.selected = 0
		symbol := msg.Report.Profile.Country.CurrencySymbol()
		m.schemesModel.SetSchemes(msg.Report.Schemes, symbol)
		m.schemesModel.SetSize(m.width, m.height)
		m.scenarioModel = scenes.NewScenarioModel(msg.Report.Profile.Age, msg.Report.Profile.Country)
		return m, nil

	case tuimsg.SchemeSelectedMsg:
		m.selected = msg.Index
		return m, navigate(SceneDetail)

	case tuimsg.ScenarioChangedMsg:
		return m, nil
	}

	return m.updateCurrentScene(msg)
}

func navigate(scene Scene) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Scene: scene} }
}

// handleKeyPress processes global shortcuts before the scene sees the key
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.err != nil {
		m.err = nil
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		return m, navigate(SceneHelp)
	case key.Matches(msg, m.keys.Schemes):
		return m, navigate(SceneSchemes)
	case key.Matches(msg, m.keys.Summary):
		return m, navigate(SceneSummary)
	case key.Matches(msg, m.keys.Scenario):
		if m.scenarioModel != nil {
			return m, navigate(SceneScenario)
		}
		return m, nil
	case key.Matches(msg, m.keys.Back):
		if m.currentScene == SceneSchemes {
			return m, nil
		}
		back := m.previousScene
		if back == m.currentScene || back == SceneHelp {
			back = SceneSchemes
		}
		return m, navigate(back)
	}

	return m.updateCurrentScene(msg)
}

// updateCurrentScene delegates to the active scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.currentScene {
	case SceneSchemes:
		updated, cmd := m.schemesModel.Update(msg)
		m.schemesModel = updated
		return m, cmd

	case SceneDetail:
		keyMsg, ok := msg.(tea.KeyMsg)
		if !ok || m.report == nil {
			return m, nil
		}
		switch {
		case key.Matches(keyMsg, m.keys.Next):
			if m.selected < len(m.report.Schemes)-1 {
				m.selected++
			}
		case key.Matches(keyMsg, m.keys.Prev):
			if m.selected > 0 {
				m.selected--
			}
		}
		return m, nil

	case SceneScenario:
		if m.scenarioModel == nil {
			return m, nil
		}
		updated, cmd := m.scenarioModel.Update(msg)
		m.scenarioModel = updated
		return m, cmd
	}

	return m, nil
}
