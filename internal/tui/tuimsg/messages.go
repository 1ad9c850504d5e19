package tuimsg

import (
	"github.com/anushreedahiya/pension-benefit/internal/domain"
)

// ReportLoadedMsg carries the evaluated report for the loaded profile
type ReportLoadedMsg struct {
	Report *domain.Report
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// SchemeSelectedMsg signals a scheme was opened from the list
type SchemeSelectedMsg struct {
	Index int
}

// ScenarioChangedMsg signals the projection inputs were adjusted
type ScenarioChangedMsg struct {
	Inputs domain.ScenarioInputs
}
