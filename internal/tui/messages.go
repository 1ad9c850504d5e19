package tui

// Scene represents different screens in the TUI
type Scene int

const (
	SceneSchemes Scene = iota
	SceneDetail
	SceneSummary
	SceneScenario
	SceneHelp
)

func (s Scene) String() string {
	switch s {
	case SceneSchemes:
		return "Schemes"
	case SceneDetail:
		return "Scheme detail"
	case SceneSummary:
		return "Summary"
	case SceneScenario:
		return "Projection"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}
