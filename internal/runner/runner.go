// Package runner drives an ordered sequence of terminal demos,
// isolating each demo's failure from the rest of the run.
package runner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"termfx/pkg/demo"
	apperrors "termfx/pkg/errors"
	"termfx/pkg/logger"
)

const bannerRule = 50

// Report summarizes one run of the demo sequence.
type Report struct {
	Completed   int
	Failed      int
	Skipped     int
	Interrupted bool
}

// Runner executes demos in order against one shared Session.
type Runner struct {
	session *demo.Session
	demos   []demo.Demo
	log     logger.Logger
}

// New returns a Runner for the given demos. The session's logger is
// used for run diagnostics.
func New(session *demo.Session, demos []demo.Demo) *Runner {
	return &Runner{
		session: session,
		demos:   demos,
		log:     session.Log,
	}
}

// Run executes the sequence. A user interrupt stops the remaining
// demos with a notice; any other demo failure is reported and the run
// continues. A broken output sink aborts everything: with nowhere to
// write, further demos are pointless.
//
// The returned error is non-nil only for the interrupt and broken-sink
// cases, so callers can map it to a non-zero exit status.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	var report Report
	started := time.Now()

	r.printOpening()

	for i, d := range r.demos {
		if ctx.Err() != nil {
			report.Interrupted = true
			report.Skipped = len(r.demos) - i
			break
		}

		err := r.runOne(ctx, d)
		switch {
		case err == nil:
			report.Completed++
		case apperrors.IsInterrupt(err):
			report.Interrupted = true
			report.Skipped = len(r.demos) - i - 1
		default:
			report.Failed++
			r.session.Term.Println(fmt.Sprintf("\n❌ Error in %s: %v", d.Name, err))
			r.log.WithField("demo", d.Name).WithError(err).Error("Demo failed")
		}

		if sinkErr := r.session.Term.Err(); sinkErr != nil {
			report.Skipped = len(r.demos) - i - 1
			r.log.WithError(sinkErr).Error("Output sink failed, aborting run")
			return report, apperrors.Output(sinkErr)
		}

		if report.Interrupted {
			break
		}
	}

	r.log.WithFields(map[string]interface{}{
		"completed":   report.Completed,
		"failed":      report.Failed,
		"skipped":     report.Skipped,
		"interrupted": report.Interrupted,
		"duration_ms": time.Since(started).Milliseconds(),
	}).Info("Demo run finished")

	if report.Interrupted {
		r.session.Term.Println("\n\n⚠️  Demo interrupted by user.")
		return report, apperrors.Interrupted("")
	}

	r.printClosing()
	return report, nil
}

// runOne executes a single demo, converting panics and errors into
// contained demo failures. Only a genuine interrupt passes through
// with its interrupt classification.
func (r *Runner) runOne(ctx context.Context, d demo.Demo) (err error) {
	started := time.Now()
	r.log.WithField("demo", d.Name).Debug("Demo started")

	defer func() {
		if rec := recover(); rec != nil {
			err = apperrors.DemoFailed(d.Name, fmt.Errorf("panic: %v", rec))
		}
	}()

	if err := d.Run(ctx, r.session); err != nil {
		if apperrors.IsInterrupt(err) {
			return apperrors.Interrupted(d.Name)
		}
		return apperrors.DemoFailed(d.Name, err)
	}

	r.log.WithFields(map[string]interface{}{
		"demo":        d.Name,
		"duration_ms": time.Since(started).Milliseconds(),
	}).Debug("Demo completed")
	return nil
}

func (r *Runner) printOpening() {
	rule := strings.Repeat("=", bannerRule)
	r.session.Term.Println("Console Output and Animation Demo")
	r.session.Term.Println(rule)
	r.session.Term.Println("Demonstrating unbuffered writes and explicit flush techniques")
	r.session.Term.Println(rule)
}

func (r *Runner) printClosing() {
	rule := strings.Repeat("=", bannerRule)
	r.session.Term.Println("\n" + rule)
	r.session.Term.Println("All demos completed!")
	r.session.Term.Println(rule)
}
