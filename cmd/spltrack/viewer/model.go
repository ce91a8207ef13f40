// Package viewer is the interactive terminal front end: pick a logbook export,
// read it in the background and show the progress cards.
package viewer

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"spltrack/cmd/spltrack/ui"
	"spltrack/internal/flightlog"
	"spltrack/internal/logging"
	"spltrack/internal/report"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ViewMode is the screen currently shown.
type ViewMode int

const (
	PickerView ViewMode = iota
	ReportView
)

// chrome is the number of rows taken by the banner, file label, divider and help line.
const chrome = 6

// Options configure a viewer.
type Options struct {
	Context      context.Context
	Analyzer     *flightlog.Analyzer
	Styles       ui.Styles
	StartDir     string
	ShowHidden   bool
	AllowedTypes []string
}

// loadedMsg carries the outcome of a background read.
type loadedMsg struct {
	outcome flightlog.Outcome
}

// Model is the bubbletea model of the viewer.
type Model struct {
	ctx      context.Context
	analyzer *flightlog.Analyzer
	styles   ui.Styles

	mode       ViewMode
	filepicker filepicker.Model
	spinner    spinner.Model
	page       ui.ReportPageModel

	fileName string
	inFlight int
	status   string
	width    int
	height   int
}

// New creates a viewer that opens on the file picker.
func New(opts Options) Model {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Analyzer == nil {
		opts.Analyzer = flightlog.NewAnalyzer(flightlog.EncodingAuto)
	}
	if len(opts.AllowedTypes) == 0 {
		opts.AllowedTypes = []string{".csv", ".txt"}
	}

	fp := filepicker.New()
	fp.AllowedTypes = opts.AllowedTypes
	fp.ShowHidden = opts.ShowHidden
	if opts.StartDir != "" {
		fp.CurrentDirectory = opts.StartDir
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = opts.Styles.Spinner

	return Model{
		ctx:        opts.Context,
		analyzer:   opts.Analyzer,
		styles:     opts.Styles,
		mode:       PickerView,
		filepicker: fp,
		spinner:    sp,
		page:       ui.NewReportPageModel(opts.Styles),
		width:      80,
		height:     24,
	}
}

// Init reads the starting directory.
func (m Model) Init() tea.Cmd {
	return m.filepicker.Init()
}

// Mode returns the screen currently shown.
func (m Model) Mode() ViewMode { return m.mode }

// Loading reports whether a read is in flight.
func (m Model) Loading() bool { return m.inFlight > 0 }

// FileName is the label of the most recently selected file.
func (m Model) FileName() string { return m.fileName }

// Report returns the report on display, if any.
func (m Model) Report() (report.Report, bool) { return m.page.Report() }

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		var cmd tea.Cmd
		m.filepicker, cmd = m.filepicker.Update(msg)
		m.filepicker.Height = max(1, m.height-chrome)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case loadedMsg:
		m.inFlight--
		rep := msg.outcome.Report
		rep.Source = ""
		m.page.SetReport(rep)
		if msg.outcome.Err != nil {
			logging.Get(logging.CategoryUI).Warn("run %s failed: %v", msg.outcome.RunID, msg.outcome.Err)
		} else {
			logging.UIDebug("run %s rendered %d cards", msg.outcome.RunID, len(rep.Cards))
		}
		return m, nil

	case spinner.TickMsg:
		if !m.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Directory listings and other internal messages belong to the picker.
	var cmd tea.Cmd
	m.filepicker, cmd = m.filepicker.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	}

	if m.mode == ReportView {
		if msg.String() == "o" {
			m.mode = PickerView
			m.status = ""
			return m, m.filepicker.Init()
		}
		var cmd tea.Cmd
		m.page, cmd = m.page.Update(msg)
		return m, cmd
	}

	if msg.String() == "esc" && m.hasContent() {
		m.mode = ReportView
		return m, nil
	}

	var cmd tea.Cmd
	m.filepicker, cmd = m.filepicker.Update(msg)

	if didSelect, path := m.filepicker.DidSelectFile(msg); didSelect {
		next, loadCmd := m.startLoad(path)
		return next, tea.Batch(cmd, loadCmd)
	}
	if didSelect, path := m.filepicker.DidSelectDisabledFile(msg); didSelect {
		m.status = fmt.Sprintf("%s is not a logbook export (%s)", filepath.Base(path), strings.Join(m.filepicker.AllowedTypes, ", "))
		return m, cmd
	}
	return m, cmd
}

// startLoad shows the file label and spinner and starts the read. Reads
// already in flight are left to finish; each completion replaces the page.
func (m Model) startLoad(path string) (Model, tea.Cmd) {
	m.fileName = filepath.Base(path)
	m.mode = ReportView
	m.status = ""
	m.inFlight++
	logging.UI("selected %s", path)
	return m, tea.Batch(m.spinner.Tick, m.loadCmd(path))
}

func (m Model) loadCmd(path string) tea.Cmd {
	ctx, analyzer := m.ctx, m.analyzer
	return func() tea.Msg {
		return loadedMsg{outcome: analyzer.Run(ctx, path)}
	}
}

func (m Model) hasContent() bool {
	_, ok := m.page.Report()
	return ok || m.Loading()
}

func (m *Model) resize(w, h int) {
	m.width = max(0, w)
	m.height = max(0, h)
	m.page.SetSize(m.width, max(1, m.height-chrome))
}

// View renders the current screen.
func (m Model) View() string {
	header := m.styles.Banner.Render(" SPL Training Progress ")

	var body string
	var help string
	switch m.mode {
	case PickerView:
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Prompt.Render("Select a logbook export ("+strings.Join(m.filepicker.AllowedTypes, ", ")+")"),
			m.filepicker.View(),
		)
		help = "enter open • ←/→ navigate • q quit"
		if m.hasContent() {
			help = "enter open • esc back • q quit"
		}
	default:
		label := m.styles.FileLabel.Render(m.fileName)
		if m.Loading() {
			label += " " + m.spinner.View() + m.styles.Muted.Render(" reading...")
		}
		body = lipgloss.JoinVertical(lipgloss.Left, label, m.page.View())
		help = "o open • j/k scroll • q quit"
	}

	sections := []string{header, body}
	if m.status != "" {
		sections = append(sections, m.styles.Status.Render(m.status))
	}
	sections = append(sections, m.styles.RenderDivider(m.width), m.styles.Help.Render(help))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
