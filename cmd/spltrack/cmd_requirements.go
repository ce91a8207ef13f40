package main

import (
	"fmt"

	"spltrack/cmd/spltrack/ui"
	"spltrack/internal/report"
	"spltrack/internal/training"

	"github.com/spf13/cobra"
)

var requirementsFormat string

// requirementsCmd prints the syllabus thresholds
var requirementsCmd = &cobra.Command{
	Use:   "requirements",
	Short: "Print the SPL syllabus requirements",
	Args:  cobra.NoArgs,
	RunE:  runRequirements,
}

func runRequirements(cmd *cobra.Command, args []string) error {
	reqs := training.Requirements()
	out := cmd.OutOrStdout()

	switch requirementsFormat {
	case "json":
		return report.WriteJSON(out, reqs)
	case "yaml":
		return report.WriteYAML(out, reqs)
	case "", "text":
		styles := ui.NewStyles(ui.ThemeFor(currentConfig().UI.Theme))
		_, err := fmt.Fprint(out, ui.RequirementsTable(reqs).View(styles))
		return err
	}
	return fmt.Errorf("unknown format %q (valid: text, json, yaml)", requirementsFormat)
}
