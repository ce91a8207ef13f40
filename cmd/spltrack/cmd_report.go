package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spltrack/cmd/spltrack/ui"
	"spltrack/internal/config"
	"spltrack/internal/flightlog"
	"spltrack/internal/logging"
	"spltrack/internal/report"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	reportFormat   string
	reportRaw      bool
	reportWatch    bool
	reportEncoding string
)

// reportCmd renders a progress report for one export
var reportCmd = &cobra.Command{
	Use:   "report <file>",
	Short: "Print training progress for a logbook export",
	Long: `Reads a logbook export and prints one card per syllabus task.

Examples:
  spltrack report logbook.csv
  spltrack report logbook.csv --format markdown
  spltrack report logbook.csv --format json > progress.json
  spltrack report logbook.csv --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

// reportedError marks a failure whose message was already printed as part of
// the report output.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// reportOptions is the resolved combination of flags and config.
type reportOptions struct {
	format       string
	raw          bool
	encoding     string
	width        int
	theme        string
	glamourStyle string
}

func resolveReportOptions(c *config.Config) (reportOptions, error) {
	opts := reportOptions{
		format:       reportFormat,
		raw:          reportRaw,
		encoding:     reportEncoding,
		width:        c.Report.Width,
		theme:        c.UI.Theme,
		glamourStyle: c.Report.GlamourStyle,
	}
	if opts.format == "" {
		opts.format = c.Report.Format
	}
	if opts.encoding == "" {
		opts.encoding = c.Input.Encoding
	}

	switch opts.format {
	case "text", "markdown", "json", "yaml":
	default:
		return opts, fmt.Errorf("unknown format %q (valid: text, markdown, json, yaml)", opts.format)
	}
	return opts, nil
}

func runReport(cmd *cobra.Command, args []string) error {
	c := currentConfig()
	opts, err := resolveReportOptions(c)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	analyzer := flightlog.NewAnalyzer(opts.encoding)
	out := cmd.OutOrStdout()

	if reportWatch {
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		return watchReport(ctx, out, args[0], analyzer, opts, c.GetWatchDebounce())
	}

	outcome := analyzer.Run(ctx, args[0])
	if err := writeReport(out, outcome.Report, opts); err != nil {
		return err
	}
	if outcome.Err != nil {
		return &reportedError{err: outcome.Err}
	}
	return nil
}

// watchReport prints the report, then reprints it after every change until
// ctx is done. Failed runs are printed and watching continues.
func watchReport(ctx context.Context, w io.Writer, path string, analyzer *flightlog.Analyzer, opts reportOptions, debounce time.Duration) error {
	if err := writeReport(w, analyzer.Run(ctx, path).Report, opts); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	outcomes := make(chan flightlog.Outcome)

	watcher, err := flightlog.NewWatcher(path, analyzer, debounce, func(o flightlog.Outcome) {
		select {
		case outcomes <- o:
		case <-gctx.Done():
		}
	})
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Start(gctx); err != nil {
		watcher.Stop()
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	g.Go(func() error {
		<-gctx.Done()
		watcher.Stop()
		return nil
	})
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case o := <-outcomes:
				logging.Watch("run %s: re-rendering %s", o.RunID, path)
				fmt.Fprintln(w)
				if err := writeReport(w, o.Report, opts); err != nil {
					return err
				}
			}
		}
	})
	return g.Wait()
}

func writeReport(w io.Writer, rep report.Report, opts reportOptions) error {
	timer := logging.StartTimer(logging.Get(logging.CategoryRender), "write "+opts.format)
	defer timer.Stop()

	switch opts.format {
	case "json":
		return report.WriteJSON(w, rep)
	case "yaml":
		return report.WriteYAML(w, rep)
	case "markdown":
		md := report.Markdown(rep)
		if !opts.raw {
			rendered, err := renderMarkdown(md, opts.glamourStyle, opts.width)
			if err != nil {
				return err
			}
			md = rendered
		}
		_, err := io.WriteString(w, md)
		return err
	default:
		styles := ui.NewStyles(ui.ThemeFor(opts.theme))
		_, err := fmt.Fprintln(w, ui.RenderReport(rep, styles, opts.width))
		return err
	}
}

func renderMarkdown(md, style string, width int) (string, error) {
	options := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" || style == "auto" {
		options = append(options, glamour.WithAutoStyle())
	} else {
		options = append(options, glamour.WithStandardStyle(style))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
