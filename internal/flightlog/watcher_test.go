package flightlog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_RerunsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := writeExport(t, dir, "logbook.csv", []byte(export(row("A", "", "P8 SPL/II", "8", "00:05"))))

	outcomes := make(chan Outcome, 8)
	w, err := NewWatcher(path, NewAnalyzer(EncodingAuto), 20*time.Millisecond, func(o Outcome) {
		outcomes <- o
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	// Unrelated files in the same directory are ignored.
	writeExport(t, dir, "other.csv", []byte(header))
	require.NoError(t, os.WriteFile(path, []byte(export(
		row("B", "I", "P8 SPL/II", "1", "00:10"),
		row("B", "I", "P8 SPL/II", "1", "00:10"),
	)), 0644))

	select {
	case out := <-outcomes:
		require.NoError(t, out.Err)
		assert.Equal(t, "B", out.Result.Pilot)
		assert.Equal(t, 2, out.Result.Summary.Get("P8 SPL/II 1").DuoFlights)
	case <-time.After(5 * time.Second):
		t.Fatal("no outcome after write")
	}

	stats := w.Stats()
	assert.GreaterOrEqual(t, stats.Events, 1)
	assert.GreaterOrEqual(t, stats.Runs, 1)
}

func TestWatcher_ReportsErrorsForBrokenExport(t *testing.T) {
	dir := t.TempDir()
	path := writeExport(t, dir, "logbook.csv", []byte(export(row("A", "", "P8 SPL/II", "8", "00:05"))))

	outcomes := make(chan Outcome, 8)
	w, err := NewWatcher(path, NewAnalyzer(EncodingAuto), 20*time.Millisecond, func(o Outcome) {
		outcomes <- o
	})
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte(header), 0644))

	select {
	case out := <-outcomes:
		assert.Error(t, out.Err)
		assert.True(t, out.Report.Failed())
	case <-time.After(5 * time.Second):
		t.Fatal("no outcome after write")
	}
}

func TestWatcher_StopWithoutStart(t *testing.T) {
	w, err := NewWatcher(writeExport(t, t.TempDir(), "x.csv", nil), NewAnalyzer(EncodingAuto), 0, nil)
	require.NoError(t, err)
	w.Stop()
	w.Stop()
}

func TestWatcher_StartFailureLeavesStopUsable(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone", "x.csv")
	w, err := NewWatcher(missing, NewAnalyzer(EncodingAuto), 0, nil)
	require.NoError(t, err)

	require.Error(t, w.Start(context.Background()))

	stopped := make(chan struct{})
	go func() {
		w.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop blocked after a failed Start")
	}
}

func TestWatcher_StopsOnContextCancel(t *testing.T) {
	w, err := NewWatcher(writeExport(t, t.TempDir(), "x.csv", nil), NewAnalyzer(EncodingAuto), 0, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	cancel()

	select {
	case <-w.doneCh:
	case <-time.After(5 * time.Second):
		t.Fatal("event loop did not exit")
	}
	w.Stop()
}
