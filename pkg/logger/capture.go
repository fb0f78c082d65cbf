package logger

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Entry is one captured log call.
type Entry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
	Err     error
}

// CaptureLogger is a Logger for tests: every call is recorded instead
// of written anywhere. Deriving loggers with WithField, WithFields or
// WithError shares the parent's entry store, so assertions see the
// whole tree of derived loggers. Safe for concurrent use.
type CaptureLogger struct {
	store  *captureStore
	fields map[string]interface{}
	err    error
}

type captureStore struct {
	mu      sync.Mutex
	entries []Entry
	nop     zerolog.Logger
}

// NewCaptureLogger returns an empty CaptureLogger.
func NewCaptureLogger() *CaptureLogger {
	return &CaptureLogger{
		store: &captureStore{nop: zerolog.Nop()},
	}
}

func (l *CaptureLogger) Debug(msg string) { l.log("DEBUG", msg, nil) }
func (l *CaptureLogger) Info(msg string)  { l.log("INFO", msg, nil) }
func (l *CaptureLogger) Warn(msg string)  { l.log("WARN", msg, nil) }
func (l *CaptureLogger) Error(msg string) { l.log("ERROR", msg, nil) }

// Fatal records the entry without exiting, so tests can assert on it.
func (l *CaptureLogger) Fatal(msg string) { l.log("FATAL", msg, nil) }

func (l *CaptureLogger) DebugWithFields(msg string, fields map[string]interface{}) {
	l.log("DEBUG", msg, fields)
}

func (l *CaptureLogger) InfoWithFields(msg string, fields map[string]interface{}) {
	l.log("INFO", msg, fields)
}

func (l *CaptureLogger) WarnWithFields(msg string, fields map[string]interface{}) {
	l.log("WARN", msg, fields)
}

func (l *CaptureLogger) ErrorWithFields(msg string, fields map[string]interface{}) {
	l.log("ERROR", msg, fields)
}

func (l *CaptureLogger) FatalWithFields(msg string, fields map[string]interface{}) {
	l.log("FATAL", msg, fields)
}

func (l *CaptureLogger) WithField(key string, value interface{}) Logger {
	return l.with(map[string]interface{}{key: value}, l.err)
}

func (l *CaptureLogger) WithFields(fields map[string]interface{}) Logger {
	return l.with(fields, l.err)
}

func (l *CaptureLogger) WithError(err error) Logger {
	if err == nil {
		return l
	}
	return l.with(nil, err)
}

func (l *CaptureLogger) WithContext(ctx context.Context) Logger {
	return l
}

func (l *CaptureLogger) GetZerolog() *zerolog.Logger {
	return &l.store.nop
}

// Entries returns a copy of everything logged so far, in order.
func (l *CaptureLogger) Entries() []Entry {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()

	out := make([]Entry, len(l.store.entries))
	copy(out, l.store.entries)
	return out
}

// ByLevel returns the captured entries of one level.
func (l *CaptureLogger) ByLevel(level string) []Entry {
	var filtered []Entry
	for _, e := range l.Entries() {
		if e.Level == level {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// Has checks whether a message with the exact text was logged.
func (l *CaptureLogger) Has(text string) bool {
	for _, e := range l.Entries() {
		if e.Message == text {
			return true
		}
	}
	return false
}

// HasError checks whether anything was logged at error level.
func (l *CaptureLogger) HasError() bool {
	return len(l.ByLevel("ERROR")) > 0
}

// Clear drops all captured entries.
func (l *CaptureLogger) Clear() {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()

	l.store.entries = l.store.entries[:0]
}

func (l *CaptureLogger) with(extra map[string]interface{}, err error) *CaptureLogger {
	fields := make(map[string]interface{}, len(l.fields)+len(extra))
	for k, v := range l.fields {
		fields[k] = v
	}
	for k, v := range extra {
		fields[k] = v
	}
	return &CaptureLogger{store: l.store, fields: fields, err: err}
}

func (l *CaptureLogger) log(level, msg string, fields map[string]interface{}) {
	merged := make(map[string]interface{}, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}

	l.store.mu.Lock()
	defer l.store.mu.Unlock()

	l.store.entries = append(l.store.entries, Entry{
		Level:   level,
		Message: msg,
		Fields:  merged,
		Err:     l.err,
	})
}
