package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"spltrack/internal/training"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		name             string
		actual, required int
		want             float64
		met              bool
	}{
		{"half", 5, 10, 0.5, false},
		{"exact", 10, 10, 1.0, true},
		{"over", 15, 10, 1.0, true},
		{"zero required", 4, 0, 0, false},
		{"none flown", 0, 3, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := NewLine(training.DuoFlights, tt.actual, tt.required)
			assert.InDelta(t, tt.want, line.Progress, 1e-9)
			assert.Equal(t, tt.met, line.Met)
		})
	}
}

func TestNewLine_Text(t *testing.T) {
	got := NewLine(training.SoloFlights, 2, 5)
	want := Line{
		Metric:   training.SoloFlights,
		Label:    "Solo",
		Icon:     IconNotMet,
		Met:      false,
		Progress: 0.4,
		Actual:   2,
		Required: 5,
		Value:    "2 / 5",
		Text:     "❌ Solo: 2 / 5",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NewLine mismatch (-want +got):\n%s", diff)
	}

	timeLine := NewLine(training.DuoTimeMinutes, 305, 300)
	assert.Equal(t, "05:05 / 05:00", timeLine.Value)
	assert.Equal(t, "✅ Czas z Instruktorem: 05:05 / 05:00", timeLine.Text)
}

func TestCards_AllSyllabusTasksInOrder(t *testing.T) {
	cards := Cards(training.Summary{})
	require.Len(t, cards, len(training.Tasks()))

	var tasks []string
	for _, c := range cards {
		tasks = append(tasks, c.Task)
		for _, l := range c.Lines {
			assert.Zero(t, l.Actual, c.Task)
			assert.False(t, l.Met, c.Task)
		}
	}
	if diff := cmp.Diff(training.Tasks(), tasks); diff != "" {
		t.Errorf("card order mismatch (-want +got):\n%s", diff)
	}
}

func TestCards_UsesActuals(t *testing.T) {
	cards := Cards(training.Summary{
		"P8 SPL/V 1": {DuoFlights: 3, DuoTimeMinutes: 125, SoloFlights: 1, SoloTimeMinutes: 200},
		"Not in syllabus": {DuoFlights: 40},
	})

	var card Card
	for _, c := range cards {
		if c.Task == "P8 SPL/V 1" {
			card = c
		}
		assert.NotEqual(t, "Not in syllabus", c.Task)
	}
	require.Len(t, card.Lines, 4)

	var texts []string
	for _, l := range card.Lines {
		texts = append(texts, l.Text)
	}
	want := []string{
		"✅ Z Instruktorem: 3 / 3",
		"❌ Czas z Instruktorem: 02:05 / 05:00",
		"❌ Solo: 1 / 3",
		"✅ Czas Solo: 03:20 / 03:00",
	}
	if diff := cmp.Diff(want, texts); diff != "" {
		t.Errorf("line texts mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, card.Met())
}

func TestBuildAndFromError(t *testing.T) {
	rep := Build(training.Result{Pilot: "Jan", Summary: training.Summary{}})
	assert.Equal(t, "Pilot: Jan", rep.PilotHeader())
	assert.False(t, rep.Failed())

	failed := FromError(errors.New("CSV file is empty or has no data rows"))
	assert.True(t, failed.Failed())
	assert.Empty(t, failed.Cards)
	assert.Empty(t, failed.PilotHeader())
	assert.Equal(t, "An error occurred: CSV file is empty or has no data rows", failed.Error)
}

func TestMarkdown(t *testing.T) {
	rep := Build(training.Result{Pilot: "Jan", Summary: training.Summary{"P8 SPL/II 1": {DuoFlights: 1}}})
	rep.Source = "log.csv"
	md := Markdown(rep)

	assert.True(t, strings.HasPrefix(md, "# Pilot: Jan\n"))
	assert.Contains(t, md, "_log.csv_")
	assert.Contains(t, md, "## P8 SPL/II 1\n\n- ✅ Z Instruktorem: 1 / 1 (100%)")
	assert.Contains(t, md, "## P8 SPL/II 2\n\n- ❌ Z Instruktorem: 0 / 5 (0%)")

	// 174/300 is 0.58 but 0.58*100 is just below 58 in floating point.
	partial := Markdown(Build(training.Result{Pilot: "Jan", Summary: training.Summary{"P8 SPL/V 1": {DuoTimeMinutes: 174}}}))
	assert.Contains(t, partial, "- ❌ Czas z Instruktorem: 02:54 / 05:00 (58%)")

	errMD := Markdown(FromError(errors.New("boom")))
	assert.Equal(t, "> **An error occurred: boom**\n", errMD)
}

func TestWriteJSONAndYAML(t *testing.T) {
	rep := Build(training.Result{Pilot: "Jan", Summary: training.Summary{}})

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, rep))
	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Jan", decoded.Pilot)
	assert.Len(t, decoded.Cards, len(rep.Cards))

	buf.Reset()
	require.NoError(t, WriteYAML(&buf, rep))
	var generic map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &generic))
	assert.Equal(t, "Jan", generic["pilot"])
	assert.NotContains(t, generic, "error")
}
