package training

import (
	"errors"
	"fmt"
	"strings"
)

// Column layout of the logbook export (0-indexed).
const (
	minColumns     = 16
	colPilot       = 5
	colDuoMarker   = 6
	colTaskCode    = 8
	colTaskSubCode = 9
	colFlightTime  = 15
)

// UnknownPilot is reported when the pilot column of the first row is blank.
const UnknownPilot = "Unknown"

// ErrNoDataRows is wrapped by the ParseError returned for exports that hold
// nothing beyond a header.
var ErrNoDataRows = errors.New("CSV file is empty or has no data rows")

// ParseError is the single failure shape surfaced to users.
type ParseError struct {
	Msg string
	Err error
}

func (e *ParseError) Error() string {
	switch {
	case e.Msg == "" && e.Err != nil:
		return e.Err.Error()
	case e.Err != nil && e.Err.Error() != e.Msg:
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// NewParseError wraps err with a description. A nil err yields a plain message.
func NewParseError(msg string, err error) *ParseError {
	return &ParseError{Msg: msg, Err: err}
}

// Counters are the per-task observed totals.
type Counters struct {
	DuoFlights      int `json:"duo_flights" yaml:"duo_flights"`
	SoloFlights     int `json:"solo_flights" yaml:"solo_flights"`
	DuoTimeMinutes  int `json:"duo_time_minutes" yaml:"duo_time_minutes"`
	SoloTimeMinutes int `json:"solo_time_minutes" yaml:"solo_time_minutes"`
}

// Value returns the counter backing a metric.
func (c Counters) Value(m Metric) int {
	switch m {
	case DuoFlights:
		return c.DuoFlights
	case SoloFlights:
		return c.SoloFlights
	case DuoTimeMinutes:
		return c.DuoTimeMinutes
	case SoloTimeMinutes:
		return c.SoloTimeMinutes
	}
	return 0
}

func (c *Counters) add(duo bool, minutes int) {
	if duo {
		c.DuoFlights++
		c.DuoTimeMinutes += minutes
		return
	}
	c.SoloFlights++
	c.SoloTimeMinutes += minutes
}

// Summary maps task identifiers to counters. Tasks never seen are absent.
type Summary map[string]Counters

// Get returns the counters for a task, zero when the task was never flown.
func (s Summary) Get(task string) Counters {
	return s[task]
}

// Result is the outcome of aggregating one export.
type Result struct {
	Pilot   string  `json:"pilot" yaml:"pilot"`
	Summary Summary `json:"summary" yaml:"summary"`
	// Skipped counts rows dropped for having too few columns.
	Skipped int `json:"-" yaml:"-"`
}

// Aggregate folds a semicolon-delimited logbook export into per-task
// counters. Only an export without data rows is an error; short rows are
// dropped and unparsable durations count as zero.
func Aggregate(raw string) (Result, error) {
	lines := nonBlankLines(raw)
	if len(lines) <= 1 {
		return Result{}, NewParseError(ErrNoDataRows.Error(), ErrNoDataRows)
	}

	res := Result{Summary: make(Summary)}
	for _, line := range lines[1:] {
		cols := strings.Split(line, ";")
		if len(cols) < minColumns {
			res.Skipped++
			continue
		}

		if res.Pilot == "" {
			res.Pilot = strings.TrimSpace(cols[colPilot])
			if res.Pilot == "" {
				res.Pilot = UnknownPilot
			}
		}

		minutes := ParseTimeToMinutes(strings.TrimSpace(cols[colFlightTime]))
		duo := strings.TrimSpace(cols[colDuoMarker]) != ""

		for _, task := range TargetTasks(cols[colTaskCode], cols[colTaskSubCode]) {
			c := res.Summary[task]
			c.add(duo, minutes)
			res.Summary[task] = c
		}
	}

	if res.Pilot == "" {
		res.Pilot = UnknownPilot
	}
	return res, nil
}

// TargetTasks maps a row's task code and sub-code to the credited task
// identifiers.
func TargetTasks(code, subCode string) []string {
	code = strings.TrimSpace(code)
	if code == CombinedTaskCode {
		return CombinedTargets()
	}
	return []string{strings.TrimSpace(code + " " + strings.TrimSpace(subCode))}
}

func nonBlankLines(raw string) []string {
	all := strings.Split(raw, "\n")
	lines := all[:0]
	for _, l := range all {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
