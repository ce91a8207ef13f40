// Package report turns aggregated flight counters into a render tree of
// per-task progress cards. It has no knowledge of any output surface.
package report

import (
	"fmt"
	"strconv"

	"spltrack/internal/training"
)

// Status icons.
const (
	IconMet    = "✅"
	IconNotMet = "❌"
)

// ErrorPrefix starts every error message shown in place of a report.
const ErrorPrefix = "An error occurred: "

// Line is one required metric of a task.
type Line struct {
	Metric   training.Metric `json:"metric" yaml:"metric"`
	Label    string          `json:"label" yaml:"label"`
	Icon     string          `json:"icon" yaml:"icon"`
	Met      bool            `json:"met" yaml:"met"`
	Progress float64         `json:"progress" yaml:"progress"`
	Actual   int             `json:"actual" yaml:"actual"`
	Required int             `json:"required" yaml:"required"`
	Value    string          `json:"value" yaml:"value"`
	Text     string          `json:"text" yaml:"text"`
}

// Card groups the lines of one task.
type Card struct {
	Task  string `json:"task" yaml:"task"`
	Lines []Line `json:"lines" yaml:"lines"`
}

// Met reports whether every line of the card is met.
func (c Card) Met() bool {
	for _, l := range c.Lines {
		if !l.Met {
			return false
		}
	}
	return true
}

// Report is the full render tree for one export.
type Report struct {
	Pilot  string `json:"pilot,omitempty" yaml:"pilot,omitempty"`
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	Cards  []Card `json:"cards,omitempty" yaml:"cards,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed reports whether the report stands for a failed run.
func (r Report) Failed() bool {
	return r.Error != ""
}

// PilotHeader is the header line shown above the cards; empty on failure.
func (r Report) PilotHeader() string {
	if r.Failed() || r.Pilot == "" {
		return ""
	}
	return "Pilot: " + r.Pilot
}

// Build renders a successful aggregation.
func Build(res training.Result) Report {
	return Report{
		Pilot: res.Pilot,
		Cards: Cards(res.Summary),
	}
}

// FromError renders an error in place of the report. Any pilot name and cards
// of a previous report are dropped.
func FromError(err error) Report {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return Report{Error: ErrorPrefix + msg}
}

// Cards renders one card per syllabus task in lexicographic order. Tasks
// missing from the summary render with zero actuals.
func Cards(summary training.Summary) []Card {
	reqs := training.Requirements()
	cards := make([]Card, 0, len(reqs))
	for _, req := range reqs {
		actual := summary.Get(req.Task)
		card := Card{Task: req.Task, Lines: make([]Line, 0, len(req.Thresholds))}
		for _, th := range req.Thresholds {
			card.Lines = append(card.Lines, NewLine(th.Metric, actual.Value(th.Metric), th.Value))
		}
		cards = append(cards, card)
	}
	return cards
}

// NewLine computes progress and display text for one metric.
func NewLine(m training.Metric, actual, required int) Line {
	progress := Ratio(actual, required)
	met := progress >= 1.0

	icon := IconNotMet
	if met {
		icon = IconMet
	}

	var value string
	if m.IsTime() {
		value = training.FormatMinutesToHHMM(float64(actual)) + " / " + training.FormatMinutesToHHMM(float64(required))
	} else {
		value = strconv.Itoa(actual) + " / " + strconv.Itoa(required)
	}

	return Line{
		Metric:   m,
		Label:    m.Label(),
		Icon:     icon,
		Met:      met,
		Progress: progress,
		Actual:   actual,
		Required: required,
		Value:    value,
		Text:     fmt.Sprintf("%s %s: %s", icon, m.Label(), value),
	}
}

// Ratio is actual/required clamped to [0, 1]; a zero requirement yields 0.
func Ratio(actual, required int) float64 {
	if required <= 0 {
		return 0
	}
	r := float64(actual) / float64(required)
	if r > 1.0 {
		r = 1.0
	}
	if r < 0 {
		r = 0
	}
	return r
}
