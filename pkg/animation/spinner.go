package animation

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"termfx/pkg/console"
	"termfx/pkg/pace"
)

// Spinner animates a frame set next to a message on one terminal
// line from a dedicated goroutine.
//
// Start launches the goroutine; Stop signals it and blocks until it
// has exited, so after Stop returns the spinner writes nothing more.
// Both are safe to call repeatedly and from the main goroutine while
// the animation runs.
type Spinner struct {
	term     *console.Writer
	frames   Frames
	message  string
	interval time.Duration
	pacer    pace.Pacer

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
	writes  atomic.Int64
}

// NewSpinner returns an unstarted Spinner. An empty frame set falls
// back to Lines; a nil pacer falls back to real-time pacing.
func NewSpinner(term *console.Writer, frames Frames, message string, interval time.Duration, pacer pace.Pacer) *Spinner {
	if len(frames) == 0 {
		frames = Lines
	}
	if pacer == nil {
		pacer = pace.NewSleeper(1.0)
	}
	return &Spinner{
		term:     term,
		frames:   frames,
		message:  message,
		interval: interval,
		pacer:    pacer,
	}
}

// Start launches the animation goroutine. Starting a running spinner
// is a no-op.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.wg.Add(1)
	go s.spin(ctx)
}

// Stop signals the animation goroutine and waits for it to exit.
// Stopping a stopped or never started spinner is a no-op. The
// animated line is left in place; callers clear or overwrite it.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	cancel := s.cancel
	s.mu.Unlock()

	cancel()
	s.wg.Wait()
}

// Writes returns how many frames the spinner has drawn. The count is
// stable once Stop has returned.
func (s *Spinner) Writes() int64 {
	return s.writes.Load()
}

func (s *Spinner) spin(ctx context.Context) {
	defer s.wg.Done()

	for i := 0; ; i++ {
		select {
		case <-ctx.Done():
			return
		default:
		}

		s.term.Overwrite(s.frames.At(i) + " " + s.message)
		s.writes.Add(1)

		if err := s.pacer.Wait(ctx, s.interval); err != nil {
			return
		}
	}
}
