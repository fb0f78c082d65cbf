package integration

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"termfx/pkg/config"
	"termfx/pkg/console"
	"termfx/pkg/demo"
	"termfx/pkg/logger"
	"termfx/pkg/pace"
	"termfx/pkg/progress"
)

// newCapturedSession builds a Session writing into buf, with an
// immediate pacer so full runs finish in microseconds. The capture
// logger is returned for assertions on run diagnostics.
func newCapturedSession(t *testing.T, buf *bytes.Buffer) (*demo.Session, *logger.CaptureLogger) {
	t.Helper()

	cfg := config.DefaultConfig()
	require.NoError(t, cfg.Validate())

	capture := logger.NewCaptureLogger()
	session := &demo.Session{
		Term:   console.NewWidth(buf, cfg.Display.Width),
		Pace:   pace.Immediate(),
		Timing: cfg.Animation.Timing(),
		Bar: progress.Bar{
			Width: cfg.Display.BarWidth,
			Fill:  cfg.Display.BarFill,
			Empty: cfg.Display.BarEmpty,
		},
		Log: capture,
	}
	return session, capture
}

// indexAfter returns the index of sub in s at or after from, or -1.
func indexAfter(s, sub string, from int) int {
	if from < 0 || from > len(s) {
		return -1
	}
	idx := strings.Index(s[from:], sub)
	if idx < 0 {
		return -1
	}
	return from + idx
}

// requireInOrder asserts that the markers appear in s in the given
// order, each after the previous one.
func requireInOrder(t *testing.T, s string, markers ...string) {
	t.Helper()

	pos := 0
	for _, marker := range markers {
		idx := indexAfter(s, marker, pos)
		require.GreaterOrEqual(t, idx, 0, "marker %q not found after offset %d", marker, pos)
		pos = idx + len(marker)
	}
}
