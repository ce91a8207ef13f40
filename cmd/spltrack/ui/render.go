package ui

import (
	"strings"

	"spltrack/internal/report"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// CardWidth is the outer width of a task card including its border.
const CardWidth = 46

// RenderReport renders the pilot header, file label and task cards, or a
// single error panel for a failed report. Cards are laid out in as many
// columns as width allows.
func RenderReport(rep report.Report, s Styles, width int) string {
	if rep.Failed() {
		return RenderError(rep.Error, s, width)
	}

	var sections []string
	if header := rep.PilotHeader(); header != "" {
		sections = append(sections, s.PilotHeader.Render(header))
	}
	if rep.Source != "" {
		sections = append(sections, s.FileLabel.Render(rep.Source))
	}

	cards := make([]string, 0, len(rep.Cards))
	for _, c := range rep.Cards {
		cards = append(cards, RenderCard(c, s))
	}
	sections = append(sections, grid(cards, width))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// RenderCard renders one task with a progress bar under every line.
func RenderCard(c report.Card, s Styles) string {
	inner := CardWidth - 4

	title := s.CardTitle
	if c.Met() {
		title = s.CardMet
	}
	rows := []string{title.Render(c.Task)}

	for _, line := range c.Lines {
		style, fill := s.LineNotMet, NotMetColor
		if line.Met {
			style, fill = s.LineMet, MetColor
		}
		bar := progress.New(progress.WithSolidFill(string(fill)), progress.WithWidth(inner))
		rows = append(rows, style.Render(line.Text), bar.ViewAs(line.Progress))
	}

	return s.Card.Width(CardWidth - 2).Render(strings.Join(rows, "\n"))
}

// RenderError renders the error panel.
func RenderError(msg string, s Styles, width int) string {
	panel := s.ErrorPanel
	if width > 4 {
		panel = panel.MaxWidth(width)
	}
	return panel.Render(msg)
}

func grid(cards []string, width int) string {
	perRow := width / CardWidth
	if perRow < 1 {
		perRow = 1
	}

	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := i + perRow
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
