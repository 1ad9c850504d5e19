package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/anushreedahiya/pension-benefit/internal/config"
	"github.com/anushreedahiya/pension-benefit/internal/domain"
	"github.com/anushreedahiya/pension-benefit/internal/tui/scenes"
	"github.com/anushreedahiya/pension-benefit/internal/tui/tuimsg"
)

// Evaluator runs the pension pipeline for one profile
type Evaluator interface {
	Evaluate(ctx context.Context, profile domain.UserProfile) (*domain.Report, error)
}

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	profilePath string
	parser      *config.InputParser
	engine      Evaluator

	report   *domain.Report
	selected int

	schemesModel  *scenes.SchemesModel
	scenarioModel *scenes.ScenarioModel

	keys keyMap
	help help.Model

	err     error
	loading bool
}

// NewModel creates a model that evaluates the profile at profilePath on Init
func NewModel(engine Evaluator, parser *config.InputParser, profilePath string) Model {
	if parser == nil {
		parser = config.NewInputParser()
	}
	return Model{
		currentScene: SceneSchemes,
		profilePath:  profilePath,
		parser:       parser,
		engine:       engine,
		schemesModel: scenes.NewSchemesModel(),
		keys:         defaultKeyMap(),
		help:         help.New(),
		loading:      true,
		width:        80,
		height:       24,
	}
}

// Init starts loading the profile (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return loadReportCmd(m.engine, m.parser, m.profilePath)
}

// loadReportCmd reads the profile file and evaluates it
func loadReportCmd(engine Evaluator, parser *config.InputParser, path string) tea.Cmd {
	return func() tea.Msg {
		if engine == nil {
			return tuimsg.ErrorMsg{Err: fmt.Errorf("no calculation engine configured")}
		}
		profile, err := parser.LoadProfile(path)
		if err != nil {
			return tuimsg.ErrorMsg{Err: err}
		}
		report, err := engine.Evaluate(context.Background(), profile)
		if err != nil {
			return tuimsg.ErrorMsg{Err: err}
		}
		return tuimsg.ReportLoadedMsg{Report: report}
	}
}

// Report returns the loaded report, nil until evaluation finishes
func (m Model) Report() *domain.Report {
	return m.report
}

// CurrentScene returns the active scene
func (m Model) CurrentScene() Scene {
	return m.currentScene
}

func (m Model) selectedScheme() (domain.EstimatedScheme, bool) {
	if m.report == nil || m.selected < 0 || m.selected >= len(m.report.Schemes) {
		return domain.EstimatedScheme{}, false
	}
	return m.report.Schemes[m.selected], true
}
