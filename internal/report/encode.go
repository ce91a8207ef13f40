package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

// Markdown renders the report as a markdown document.
func Markdown(r Report) string {
	var sb strings.Builder
	if r.Failed() {
		sb.WriteString("> **" + r.Error + "**\n")
		return sb.String()
	}

	if h := r.PilotHeader(); h != "" {
		sb.WriteString("# " + h + "\n\n")
	}
	if r.Source != "" {
		sb.WriteString("_" + r.Source + "_\n\n")
	}
	for _, c := range r.Cards {
		sb.WriteString("## " + c.Task + "\n\n")
		for _, l := range c.Lines {
			sb.WriteString(fmt.Sprintf("- %s (%d%%)\n", l.Text, int(math.Round(l.Progress*100))))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

// WriteYAML writes v as YAML.
func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
