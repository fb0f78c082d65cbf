// Package progress renders fixed-width textual progress bars for
// in-place terminal updates.
package progress

import (
	"fmt"
	"strings"
)

// Default bar geometry and glyphs.
const (
	DefaultWidth = 30
	DefaultFill  = "█"
	DefaultEmpty = "░"
)

// Bar renders a progress bar of a fixed cell width.
type Bar struct {
	Width int
	Fill  string
	Empty string
}

// New returns a Bar of the given width using the default glyphs.
// Non-positive widths fall back to DefaultWidth.
func New(width int) Bar {
	if width <= 0 {
		width = DefaultWidth
	}
	return Bar{
		Width: width,
		Fill:  DefaultFill,
		Empty: DefaultEmpty,
	}
}

// FilledWidth returns how many of the bar's cells are filled at
// current out of total, floored. Out-of-range currents clamp into
// [0, total]; a non-positive total fills nothing.
func (b Bar) FilledWidth(current, total int) int {
	if total <= 0 {
		return 0
	}
	return b.Width * clamp(current, total) / total
}

// Percent returns the completion percentage, floored and clamped to
// [0, 100].
func (b Bar) Percent(current, total int) int {
	if total <= 0 {
		return 0
	}
	return 100 * clamp(current, total) / total
}

// Render returns the bracketed bar with percentage and count:
//
//	[██████████████████░░░░░░░░░░░░] 60% (30/50)
func (b Bar) Render(current, total int) string {
	filled := b.FilledWidth(current, total)
	bar := strings.Repeat(b.Fill, filled) + strings.Repeat(b.Empty, b.Width-filled)
	return fmt.Sprintf("[%s] %d%% (%d/%d)", bar, b.Percent(current, total), current, total)
}

func clamp(current, total int) int {
	if current < 0 {
		return 0
	}
	if current > total {
		return total
	}
	return current
}
