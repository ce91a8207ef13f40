package ui

import (
	"spltrack/internal/report"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// ReportPageModel is the scrollable progress view.
type ReportPageModel struct {
	width    int
	height   int
	viewport viewport.Model

	rep    *report.Report
	styles Styles
}

// NewReportPageModel creates an empty report page.
func NewReportPageModel(styles Styles) ReportPageModel {
	vp := viewport.New(80, 20)
	vp.SetContent("")
	return ReportPageModel{
		viewport: vp,
		styles:   styles,
		width:    80,
		height:   20,
	}
}

// Init initializes the model.
func (m ReportPageModel) Init() tea.Cmd {
	return nil
}

// Update handles scrolling keys.
func (m ReportPageModel) Update(msg tea.Msg) (ReportPageModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "k", "up":
			m.viewport.LineUp(1)
			return m, nil
		case "j", "down":
			m.viewport.LineDown(1)
			return m, nil
		case "pgup":
			m.viewport.HalfViewUp()
			return m, nil
		case "pgdown":
			m.viewport.HalfViewDown()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the page.
func (m ReportPageModel) View() string {
	if m.rep == nil {
		return m.styles.EmptyState.Render("No flight log loaded. Press o to open a CSV export.")
	}
	return m.viewport.View()
}

// SetSize updates the size of the viewport and re-lays out the cards.
func (m *ReportPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = h
	m.refresh()
}

// SetReport replaces everything shown with rep.
func (m *ReportPageModel) SetReport(rep report.Report) {
	m.rep = &rep
	m.refresh()
	m.viewport.GotoTop()
}

// Report returns the report on display, if any.
func (m ReportPageModel) Report() (report.Report, bool) {
	if m.rep == nil {
		return report.Report{}, false
	}
	return *m.rep, true
}

// AtTop reports whether the viewport is scrolled to the top.
func (m ReportPageModel) AtTop() bool {
	return m.viewport.AtTop()
}

func (m *ReportPageModel) refresh() {
	if m.rep == nil {
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(RenderReport(*m.rep, m.styles, m.width))
}
