package integration

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termfx/internal/runner"
	"termfx/pkg/demo"
	apperrors "termfx/pkg/errors"
)

func TestFullSequenceEndToEnd(t *testing.T) {
	var buf bytes.Buffer
	session, _ := newCapturedSession(t, &buf)

	report, err := runner.New(session, demo.Registry()).Run(context.Background())
	require.NoError(t, err)
	require.NoError(t, session.Term.Err())

	assert.Equal(t, 10, report.Completed)
	assert.Zero(t, report.Failed)
	assert.Zero(t, report.Skipped)
	assert.False(t, report.Interrupted)

	out := buf.String()
	requireInOrder(t, out,
		"Console Output and Animation Demo",
		"=== Basic Write Demo ===",
		"=== Flush Importance Demo ===",
		"=== Carriage Return Demo ===",
		"=== Loading Animation Demo ===",
		"=== Progress Bar Demo ===",
		"=== Multi-line Output Demo ===",
		"=== Backspace Demo ===",
		"=== Threaded Animation Demo ===",
		"=== Advanced Loading Demo ===",
		"=== Error Handling Demo ===",
		"All demos completed!",
	)
}

func TestFullSequenceEmitsExpectedControlSequences(t *testing.T) {
	var buf bytes.Buffer
	session, _ := newCapturedSession(t, &buf)

	_, err := runner.New(session, demo.Registry()).Run(context.Background())
	require.NoError(t, err)

	out := buf.String()
	// The four control sequences the demos are about, bit-exact.
	assert.Contains(t, out, "\r")
	assert.Contains(t, out, "\b \b")
	assert.Contains(t, out, "\033[3A")
	assert.Contains(t, out, "\033[1B")
}

func TestSubsetRunKeepsRegistryOrder(t *testing.T) {
	var buf bytes.Buffer
	session, _ := newCapturedSession(t, &buf)

	selected, err := demo.Find("progress", "countdown")
	require.NoError(t, err)

	report, err := runner.New(session, selected).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Completed)

	out := buf.String()
	requireInOrder(t, out,
		"=== Carriage Return Demo ===",
		"=== Progress Bar Demo ===",
		"All demos completed!",
	)
	assert.NotContains(t, out, "=== Loading Animation Demo ===")
}

func TestCountdownSequenceExact(t *testing.T) {
	var buf bytes.Buffer
	session, _ := newCapturedSession(t, &buf)

	selected, err := demo.Find("countdown")
	require.NoError(t, err)
	_, err = runner.New(session, selected).Run(context.Background())
	require.NoError(t, err)

	out := buf.String()
	// Trailing \r anchors each value so 1 cannot match inside 10; the
	// leading \r is left off because consecutive frames share it.
	markers := make([]string, 0, 11)
	for i := 10; i >= 1; i-- {
		markers = append(markers, "Countdown: "+strconv.Itoa(i)+"\r")
	}
	markers = append(markers, "Countdown: Blast off!")
	requireInOrder(t, out, markers...)
}

func TestInterruptedRunReportsAndSkips(t *testing.T) {
	var buf bytes.Buffer
	session, _ := newCapturedSession(t, &buf)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := runner.New(session, demo.Registry()).Run(ctx)
	require.Error(t, err)
	assert.True(t, apperrors.IsInterrupt(err))
	assert.True(t, report.Interrupted)
	assert.Equal(t, 10, report.Skipped)
	assert.Contains(t, buf.String(), "⚠️  Demo interrupted by user.")
	assert.NotContains(t, buf.String(), "All demos completed!")
}

func TestRunLogsDiagnosticsPerDemo(t *testing.T) {
	var buf bytes.Buffer
	session, capture := newCapturedSession(t, &buf)

	selected, err := demo.Find("basic-write", "errors")
	require.NoError(t, err)
	report, err := runner.New(session, selected).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Completed)

	assert.True(t, capture.Has("Demo run finished"))
	// Both demos started and completed; the simulated failure is
	// recovered inside the errors demo, so nothing reaches the log at
	// error level.
	started := 0
	for _, e := range capture.ByLevel("DEBUG") {
		if e.Message == "Demo started" {
			started++
		}
	}
	assert.Equal(t, 2, started)
	assert.False(t, capture.HasError())
}

func TestThreadedDemoWritesStopAfterRun(t *testing.T) {
	var buf bytes.Buffer
	session, _ := newCapturedSession(t, &buf)

	selected, err := demo.Find("threaded")
	require.NoError(t, err)
	_, err = runner.New(session, selected).Run(context.Background())
	require.NoError(t, err)

	// Once the run is over the spinner goroutine has been joined; the
	// buffer is stable and ends with the completion banner.
	out := buf.String()
	assert.Contains(t, out, "✅ Work complete!")
	stable := buf.String()
	assert.Equal(t, out, stable)

	done := strings.Index(out, "✅ Work complete!")
	require.GreaterOrEqual(t, done, 0)
	assert.NotContains(t, out[done:], "Working...")
}
