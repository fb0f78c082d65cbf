package pace

import (
	"context"
	"sync"
	"time"
)

// Pacer is the waiting strategy behind every animation delay.
type Pacer interface {
	// Wait blocks for the given duration or until the context is
	// cancelled, returning the context error in that case.
	Wait(ctx context.Context, d time.Duration) error
}

// Sleeper waits in real time, with every delay multiplied by Scale.
type Sleeper struct {
	scale float64
}

// NewSleeper returns a Pacer that sleeps scale times each requested
// delay. A non-positive scale skips sleeping entirely.
func NewSleeper(scale float64) *Sleeper {
	return &Sleeper{scale: scale}
}

// Wait sleeps for the scaled delay or returns early when ctx is done.
func (s *Sleeper) Wait(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	d = time.Duration(float64(d) * s.scale)
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Immediate returns a Pacer that never sleeps but still reports a
// cancelled context.
func Immediate() Pacer {
	return immediate{}
}

type immediate struct{}

func (immediate) Wait(ctx context.Context, d time.Duration) error {
	return ctx.Err()
}

// Recorder is a Pacer for tests. It never sleeps and remembers every
// requested delay in order. Safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	delays []time.Duration
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Wait records d and returns immediately, or reports a cancelled
// context without recording.
func (r *Recorder) Wait(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	r.delays = append(r.delays, d)
	r.mu.Unlock()
	return nil
}

// Delays returns a copy of the recorded delays in request order.
func (r *Recorder) Delays() []time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]time.Duration, len(r.delays))
	copy(out, r.delays)
	return out
}

// Count returns how many waits have been recorded.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.delays)
}
