package ui

import (
	"strconv"
	"strings"

	"spltrack/internal/training"

	"github.com/charmbracelet/lipgloss"
)

// Table renders static rows with aligned columns.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// NewTable creates a table with the given title and headers.
func NewTable(title string, headers []string) *Table {
	return &Table{
		Title:   title,
		Headers: headers,
		Rows:    make([][]string, 0),
	}
}

// AddRow adds a row to the table. Missing cells render empty.
func (t *Table) AddRow(row ...string) {
	t.Rows = append(t.Rows, row)
}

// View renders the table using the provided styles.
func (t *Table) View(styles Styles) string {
	if len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder
	if t.Title != "" {
		sb.WriteString(styles.TableTitle.Render(t.Title))
		sb.WriteString("\n")
	}

	colWidths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(colWidths) {
				colWidths[i] = max(colWidths[i], lipgloss.Width(cell))
			}
		}
	}
	// lipgloss widths include the horizontal padding
	for i := range colWidths {
		colWidths[i] += 2
	}

	sep := styles.Muted.Render("|")

	writeRow := func(cells []string, style lipgloss.Style) {
		for i := range colWidths {
			if i > 0 {
				sb.WriteString(sep)
			}
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			sb.WriteString(style.Width(colWidths[i]).Render(cell))
		}
		sb.WriteString("\n")
	}

	writeRow(t.Headers, styles.TableHeader)

	total := len(colWidths) - 1
	for _, w := range colWidths {
		total += w
	}
	sb.WriteString(styles.Muted.Render(strings.Repeat("-", total)) + "\n")

	for _, row := range t.Rows {
		writeRow(row, styles.TableCell)
	}
	return sb.String()
}

// RequirementsTable lists every task with its thresholds in declared order.
// Time thresholds are shown as HH:MM.
func RequirementsTable(reqs []training.Requirement) *Table {
	t := NewTable("SPL requirements", []string{"Task", "Requirement", "Target"})
	for _, req := range reqs {
		for i, th := range req.Thresholds {
			task := ""
			if i == 0 {
				task = req.Task
			}
			target := strconv.Itoa(th.Value)
			if th.Metric.IsTime() {
				target = training.FormatMinutesToHHMM(float64(th.Value))
			}
			t.AddRow(task, th.Metric.Label(), target)
		}
	}
	return t
}
