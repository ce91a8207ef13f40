package flightlog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"spltrack/internal/logging"
	"spltrack/internal/report"
	"spltrack/internal/training"

	"github.com/google/uuid"
)

// slowCycle is the duration above which a cycle is logged as a warning.
const slowCycle = time.Second

// aggregate is swapped in tests to exercise panic recovery.
var aggregate = training.Aggregate

// Outcome is the result of one read/aggregate/render cycle. Report is always
// renderable: on failure it is the error report.
type Outcome struct {
	RunID  string
	Path   string
	Result training.Result
	Report report.Report
	Err    error
}

// Analyzer reads exports from disk and evaluates them.
type Analyzer struct {
	Encoding string
}

// NewAnalyzer creates an analyzer decoding input with the given encoding.
func NewAnalyzer(encoding string) *Analyzer {
	return &Analyzer{Encoding: encoding}
}

type readResult struct {
	data []byte
	err  error
}

// Load reads and decodes path. It is the only blocking step of a cycle and
// returns early when ctx is done; the read itself is not interrupted.
func (a *Analyzer) Load(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", training.NewParseError("reading flight log canceled", err)
	}

	ch := make(chan readResult, 1)
	go func() {
		data, err := os.ReadFile(path)
		ch <- readResult{data: data, err: err}
	}()

	var r readResult
	select {
	case <-ctx.Done():
		return "", training.NewParseError("reading flight log canceled", ctx.Err())
	case r = <-ch:
	}

	if r.err != nil {
		return "", training.NewParseError(fmt.Sprintf("could not read %s", filepath.Base(path)), r.err)
	}
	logging.IngestDebug("read %d bytes from %s", len(r.data), path)
	text, err := Decode(r.data, a.Encoding)
	if err != nil {
		return "", training.NewParseError(fmt.Sprintf("could not decode %s", filepath.Base(path)), err)
	}
	return text, nil
}

// Evaluate aggregates and renders text synchronously. Unexpected panics are
// converted into a ParseError carrying the panic description.
func Evaluate(text string) (res training.Result, rep report.Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = training.NewParseError(fmt.Sprintf("unexpected failure: %v", r), nil)
			res = training.Result{}
			rep = report.FromError(err)
		}
	}()

	res, err = aggregate(text)
	if err != nil {
		return training.Result{}, report.FromError(err), err
	}
	return res, report.Build(res), nil
}

// Run performs a full cycle for path.
func (a *Analyzer) Run(ctx context.Context, path string) Outcome {
	out := Outcome{RunID: uuid.NewString(), Path: path}
	log := logging.WithRun(logging.CategoryIngest, out.RunID)
	timer := logging.StartTimer(log, "flight log cycle")
	defer timer.StopWithThreshold(slowCycle)

	log.Debug("reading %s (encoding=%s)", path, a.Encoding)
	text, err := a.Load(ctx, path)
	if err != nil {
		log.Error("load failed: %v", err)
		out.Err = err
		out.Report = report.FromError(err)
		return out
	}

	out.Result, out.Report, out.Err = Evaluate(text)
	if out.Err != nil {
		log.Warn("evaluation failed: %v", out.Err)
		return out
	}
	out.Report.Source = filepath.Base(path)
	logging.Ingest("loaded %s for %s", out.Report.Source, out.Result.Pilot)

	logging.WithRun(logging.CategoryParse, out.RunID).Debug(
		"pilot=%q tasks=%d skipped_rows=%d", out.Result.Pilot, len(out.Result.Summary), out.Result.Skipped)
	return out
}
