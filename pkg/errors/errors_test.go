package errors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestInterruptClassification(t *testing.T) {
	if !IsInterrupt(Interrupted("countdown")) {
		t.Error("Expected Interrupted error to classify as interrupt")
	}
	if !IsInterrupt(context.Canceled) {
		t.Error("Expected context.Canceled to classify as interrupt")
	}
	if !IsInterrupt(fmt.Errorf("wait aborted: %w", context.Canceled)) {
		t.Error("Expected wrapped context.Canceled to classify as interrupt")
	}
	if !IsInterrupt(context.DeadlineExceeded) {
		t.Error("Expected deadline expiry to classify as interrupt")
	}

	if IsInterrupt(nil) {
		t.Error("Expected nil to not classify as interrupt")
	}
	if IsInterrupt(DemoFailed("spinner", errors.New("boom"))) {
		t.Error("Expected demo failure to not classify as interrupt")
	}
}

func TestOutputClassification(t *testing.T) {
	if !IsOutput(Output(io.ErrClosedPipe)) {
		t.Error("Expected Output error to classify as output")
	}
	if !IsOutput(fmt.Errorf("run aborted: %w", Output(io.ErrClosedPipe))) {
		t.Error("Expected wrapped Output error to classify as output")
	}

	if IsOutput(nil) {
		t.Error("Expected nil to not classify as output")
	}
	if IsOutput(Interrupted("progress")) {
		t.Error("Expected interrupt to not classify as output")
	}
}

func TestDemoFailedWrapping(t *testing.T) {
	cause := errors.New("simulated error during processing")
	err := DemoFailed("errors", cause)

	if !errors.Is(err, cause) {
		t.Error("Expected demo failure to unwrap to its cause")
	}
	if got := err.Error(); got != "demo error in errors: simulated error during processing" {
		t.Errorf("Unexpected message %q", got)
	}
}

func TestErrorMessages(t *testing.T) {
	if got := Interrupted("backspace").Error(); got != "interrupt error in backspace" {
		t.Errorf("Unexpected interrupt message %q", got)
	}
	if got := Interrupted("").Error(); got != "interrupt error" {
		t.Errorf("Unexpected bare interrupt message %q", got)
	}
	if got := Output(io.ErrClosedPipe).Error(); got != "output error: io: read/write on closed pipe" {
		t.Errorf("Unexpected output message %q", got)
	}
}
