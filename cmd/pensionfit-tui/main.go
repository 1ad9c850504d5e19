package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/anushreedahiya/pension-benefit/internal/calculation"
	"github.com/anushreedahiya/pension-benefit/internal/catalog"
	"github.com/anushreedahiya/pension-benefit/internal/config"
	"github.com/anushreedahiya/pension-benefit/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "pensionfit-tui [profile-file]",
	Short: "Browse the pension assessment of a profile interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profilePath := args[0]
		if _, err := os.Stat(profilePath); os.IsNotExist(err) {
			return fmt.Errorf("profile file not found: %s", profilePath)
		}

		catalogPath, _ := cmd.Flags().GetString("catalog")
		cat, err := catalog.Load(catalogPath)
		if err != nil {
			return err
		}
		engine, err := calculation.NewCalculationEngine(cat)
		if err != nil {
			return err
		}

		model := tui.NewModel(engine, config.NewInputParser(), profilePath)
		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running TUI: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().String("catalog", "", "Path to a scheme catalog file (default: bundled catalog)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
