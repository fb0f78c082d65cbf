package errors

import (
	"context"
	"errors"
	"fmt"
)

// ErrorType classifies the failures the demo driver tells apart
type ErrorType string

const (
	// ErrorTypeInterrupt marks a run aborted by the user
	ErrorTypeInterrupt ErrorType = "interrupt"
	// ErrorTypeDemo marks a failure inside a single demo
	ErrorTypeDemo ErrorType = "demo"
	// ErrorTypeOutput marks a broken output sink, such as a closed pipe
	ErrorTypeOutput ErrorType = "output"
)

// Error carries the failure class and the demo it happened in
type Error struct {
	Type ErrorType
	Demo string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		if e.Demo != "" {
			return fmt.Sprintf("%s error in %s", e.Type, e.Demo)
		}
		return fmt.Sprintf("%s error", e.Type)
	}
	if e.Demo != "" {
		return fmt.Sprintf("%s error in %s: %v", e.Type, e.Demo, e.Err)
	}
	return fmt.Sprintf("%s error: %v", e.Type, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Interrupted marks a demo cut short by the user
func Interrupted(demo string) *Error {
	return &Error{Type: ErrorTypeInterrupt, Demo: demo}
}

// DemoFailed wraps an error that stays contained to one demo
func DemoFailed(demo string, err error) *Error {
	return &Error{Type: ErrorTypeDemo, Demo: demo, Err: err}
}

// Output wraps a failure of the output sink itself
func Output(err error) *Error {
	return &Error{Type: ErrorTypeOutput, Err: err}
}

// IsInterrupt checks if err means the user aborted the run. Context
// cancellation counts, since demos surface Ctrl+C as context errors.
func IsInterrupt(err error) bool {
	if err == nil {
		return false
	}
	var e *Error
	if errors.As(err, &e) && e.Type == ErrorTypeInterrupt {
		return true
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsOutput checks if err means the output sink itself failed, which
// makes continuing with further demos pointless.
func IsOutput(err error) bool {
	if err == nil {
		return false
	}
	var e *Error
	return errors.As(err, &e) && e.Type == ErrorTypeOutput
}
