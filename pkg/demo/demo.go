package demo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"termfx/pkg/config"
	"termfx/pkg/console"
	"termfx/pkg/logger"
	"termfx/pkg/pace"
	"termfx/pkg/progress"
)

// Session carries everything a demo needs to produce output. One
// Session serves a whole run; demos share the Writer strictly in
// sequence, except for the single background spinner goroutine in the
// threaded demo.
type Session struct {
	Term   *console.Writer
	Pace   pace.Pacer
	Timing config.Timing
	Bar    progress.Bar
	Log    logger.Logger
}

// sleep pauses for d through the session pacer, surfacing context
// cancellation as the error.
func (s *Session) sleep(ctx context.Context, d time.Duration) error {
	return s.Pace.Wait(ctx, d)
}

// Demo is one self-contained demonstration routine.
type Demo struct {
	Name  string
	Title string
	About string
	Run   func(ctx context.Context, s *Session) error
}

// Registry returns all demos in their fixed execution order.
func Registry() []Demo {
	return []Demo{
		{
			Name:  "basic-write",
			Title: "Basic Write",
			About: "newline-terminated prints vs raw writes on one line",
			Run:   runBasicWrite,
		},
		{
			Name:  "flush",
			Title: "Flush Importance",
			About: "buffered output vs explicitly flushed output",
			Run:   runFlush,
		},
		{
			Name:  "countdown",
			Title: "Carriage Return",
			About: "countdown overwriting one line via carriage return",
			Run:   runCountdown,
		},
		{
			Name:  "spinner",
			Title: "Loading Animation",
			About: "braille spinner with an iteration counter",
			Run:   runSpinner,
		},
		{
			Name:  "progress",
			Title: "Progress Bar",
			About: "filled/empty bar with percentage and counts",
			Run:   runProgress,
		},
		{
			Name:  "multiline",
			Title: "Multi-line Output",
			About: "rewriting three lines in place with cursor movement",
			Run:   runMultiline,
		},
		{
			Name:  "backspace",
			Title: "Backspace",
			About: "typing a message and erasing it character by character",
			Run:   runBackspace,
		},
		{
			Name:  "threaded",
			Title: "Threaded Animation",
			About: "background spinner goroutine with a cooperative stop",
			Run:   runThreaded,
		},
		{
			Name:  "styles",
			Title: "Advanced Loading",
			About: "the same spinner pattern across four frame styles",
			Run:   runStyles,
		},
		{
			Name:  "errors",
			Title: "Error Handling",
			About: "recovering from a mid-animation failure cleanly",
			Run:   runErrors,
		},
	}
}

// Find resolves names to demos, preserving registry order regardless
// of the order the names were given in. Unknown names are an error.
func Find(names ...string) ([]Demo, error) {
	all := Registry()

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		known := false
		for _, d := range all {
			if d.Name == name {
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("unknown demo %q (known: %s)", name, strings.Join(Names(), ", "))
		}
		wanted[name] = true
	}

	var out []Demo
	for _, d := range all {
		if wanted[d.Name] {
			out = append(out, d)
		}
	}
	return out, nil
}

// Names returns the registry demo names in order.
func Names() []string {
	all := Registry()
	names := make([]string, len(all))
	for i, d := range all {
		names[i] = d.Name
	}
	return names
}
