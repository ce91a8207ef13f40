// Package training holds the glider training syllabus thresholds and the
// aggregation of flight-log exports into per-task counters.
package training

import (
	"sort"
	"strings"
)

// Metric names one counter tracked per training task.
type Metric string

const (
	DuoFlights      Metric = "duo_flights"
	SoloFlights     Metric = "solo_flights"
	DuoTimeMinutes  Metric = "duo_time_minutes"
	SoloTimeMinutes Metric = "solo_time_minutes"
)

// IsTime reports whether the metric counts minutes rather than flights.
func (m Metric) IsTime() bool {
	return strings.Contains(string(m), "time")
}

// Label returns the display label used on report lines.
func (m Metric) Label() string {
	switch m {
	case DuoFlights:
		return "Z Instruktorem"
	case SoloFlights:
		return "Solo"
	case DuoTimeMinutes:
		return "Czas z Instruktorem"
	case SoloTimeMinutes:
		return "Czas Solo"
	}
	return string(m)
}

// Threshold is a single required value for a metric.
type Threshold struct {
	Metric Metric `json:"metric" yaml:"metric"`
	Value  int    `json:"value" yaml:"value"`
}

// Requirement lists the thresholds of one task in declared order.
// A metric missing from the list is not required.
type Requirement struct {
	Task       string      `json:"task" yaml:"task"`
	Thresholds []Threshold `json:"thresholds" yaml:"thresholds"`
}

// Combined-task sentinel: a flight logged under this task code counts
// towards both target tasks in full.
const (
	CombinedTaskCode = "P8 SPL IV- SPL V"
)

var combinedTargets = [...]string{"P8 SPL/IV 4", "P8 SPL/V 1"}

// CombinedTargets returns the task identifiers credited by CombinedTaskCode.
func CombinedTargets() []string {
	out := combinedTargets
	return out[:]
}

// syllabus is compiled in and never mutated; callers get copies.
var syllabus = map[string][]Threshold{
	"P8 SPL/II 1": {{DuoFlights, 1}},
	"P8 SPL/II 2": {{DuoFlights, 5}},
	"P8 SPL/II 3": {{DuoFlights, 10}},
	"P8 SPL/II 4": {{DuoFlights, 6}},
	"P8 SPL/II 5": {{DuoFlights, 2}},
	"P8 SPL/II 6": {{DuoFlights, 4}},
	"P8 SPL/II 7": {{DuoFlights, 2}},
	"P8 SPL/II 8": {{SoloFlights, 5}},
	"P8 SPL/IV 1": {{DuoFlights, 3}, {SoloFlights, 6}},
	"P8 SPL/IV 2": {{DuoFlights, 3}, {SoloFlights, 2}},
	"P8 SPL/IV 3": {{DuoFlights, 2}, {SoloFlights, 2}},
	"P8 SPL/IV 4": {{DuoFlights, 2}},
	"P8 SPL/V 1": {
		{DuoFlights, 3}, {DuoTimeMinutes, 300},
		{SoloFlights, 3}, {SoloTimeMinutes, 180},
	},
}

// Requirements returns the syllabus sorted by task identifier.
func Requirements() []Requirement {
	tasks := Tasks()
	out := make([]Requirement, 0, len(tasks))
	for _, task := range tasks {
		th := make([]Threshold, len(syllabus[task]))
		copy(th, syllabus[task])
		out = append(out, Requirement{Task: task, Thresholds: th})
	}
	return out
}

// Tasks returns the known task identifiers in lexicographic order.
func Tasks() []string {
	tasks := make([]string, 0, len(syllabus))
	for task := range syllabus {
		tasks = append(tasks, task)
	}
	sort.Strings(tasks)
	return tasks
}

// Lookup returns the requirement for a task, if it is part of the syllabus.
func Lookup(task string) (Requirement, bool) {
	th, ok := syllabus[task]
	if !ok {
		return Requirement{}, false
	}
	cp := make([]Threshold, len(th))
	copy(cp, th)
	return Requirement{Task: task, Thresholds: cp}, true
}
