// Package pace controls how animations wait between frames.
//
// Every sleep in the demos goes through a Pacer, which keeps two
// things in one place: context cancellation (a Ctrl+C must interrupt a
// sleeping animation immediately) and speed control (delays can be
// scaled or skipped without touching demo code).
//
// Implementations:
//
// Sleeper:
//   - Real wall-clock waiting with a configurable scale factor
//   - Scale 1.0 runs demos at their authored speed, 0.5 at double speed
//   - The default for interactive runs
//
// Immediate:
//   - Never sleeps, still reports prior cancellation
//   - Used by the --fast flag
//
// Recorder:
//   - Never sleeps, remembers every requested delay in order
//   - Used by tests to assert pacing without waiting for it
//
// Usage:
//
//	p := pace.NewSleeper(1.0)
//	if err := p.Wait(ctx, 100*time.Millisecond); err != nil {
//	    return err // context cancelled mid-sleep
//	}
package pace
