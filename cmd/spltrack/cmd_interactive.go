package main

import (
	"fmt"

	"spltrack/cmd/spltrack/ui"
	"spltrack/cmd/spltrack/viewer"
	"spltrack/internal/flightlog"
	"spltrack/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// newViewer builds the viewer model from the loaded config.
func newViewer(cmd *cobra.Command) viewer.Model {
	c := currentConfig()
	return viewer.New(viewer.Options{
		Context:      cmd.Context(),
		Analyzer:     flightlog.NewAnalyzer(c.Input.Encoding),
		Styles:       ui.NewStyles(ui.ThemeFor(c.UI.Theme)),
		StartDir:     c.UI.StartDir,
		ShowHidden:   c.UI.ShowHidden,
		AllowedTypes: c.UI.AllowedTypes,
	})
}

// runViewer launches the interactive viewer
func runViewer(cmd *cobra.Command, args []string) error {
	logging.UI("starting viewer")
	p := tea.NewProgram(newViewer(cmd), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("viewer failed: %w", err)
	}
	return nil
}
