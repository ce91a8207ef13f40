package ui

import (
	"errors"
	"strings"
	"testing"

	"spltrack/internal/report"
	"spltrack/internal/training"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func sampleReport() report.Report {
	rep := report.Build(training.Result{
		Pilot: "Jan Kowalski",
		Summary: training.Summary{
			"P8 SPL/II 1": {DuoFlights: 1},
			"P8 SPL/V 1":  {DuoFlights: 1, DuoTimeMinutes: 45},
		},
	})
	rep.Source = "logbook.csv"
	return rep
}

func TestRenderReport(t *testing.T) {
	out := RenderReport(sampleReport(), NewStyles(LightTheme()), 120)

	assert.Contains(t, out, "Pilot: Jan Kowalski")
	assert.Contains(t, out, "logbook.csv")
	for _, task := range training.Tasks() {
		assert.Contains(t, out, task)
	}
	assert.Contains(t, out, "✅ Z Instruktorem: 1 / 1")
	assert.Contains(t, out, "❌ Czas z Instruktorem: 00:45 / 05:00")
	assert.Less(t, strings.Index(out, "P8 SPL/II 1"), strings.Index(out, "P8 SPL/V 1"))
}

func TestRenderReport_Error(t *testing.T) {
	rep := report.FromError(errors.New("CSV file is empty or has no data rows"))
	out := RenderReport(rep, NewStyles(LightTheme()), 120)

	assert.Contains(t, out, "An error occurred: CSV file is empty or has no data rows")
	assert.NotContains(t, out, "Pilot:")
	assert.NotContains(t, out, "P8 SPL")
}

func TestRenderReport_NarrowWidthStacksCards(t *testing.T) {
	narrow := RenderReport(sampleReport(), NewStyles(LightTheme()), 40)
	wide := RenderReport(sampleReport(), NewStyles(LightTheme()), 3*CardWidth)

	assert.Greater(t, strings.Count(narrow, "\n"), strings.Count(wide, "\n"))
}

func TestReportPageModel(t *testing.T) {
	model := NewReportPageModel(NewStyles(LightTheme()))
	if !strings.Contains(model.View(), "No flight log loaded") {
		t.Fatalf("expected empty report view")
	}
	if _, ok := model.Report(); ok {
		t.Fatalf("expected no report before SetReport")
	}

	model.SetSize(CardWidth, 10)
	model.SetReport(sampleReport())
	if !strings.Contains(model.View(), "Pilot: Jan Kowalski") {
		t.Fatalf("expected pilot header in view")
	}
	if !model.AtTop() {
		t.Fatalf("expected new report to start at the top")
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if model.AtTop() {
		t.Fatalf("expected j to scroll down")
	}
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyUp})
	if !model.AtTop() {
		t.Fatalf("expected up to scroll back")
	}

	model.SetReport(report.FromError(errors.New("boom")))
	view := model.View()
	if strings.Contains(view, "Pilot:") || !strings.Contains(view, "An error occurred: boom") {
		t.Fatalf("expected error report to replace previous content, got:\n%s", view)
	}
}
