// Package console provides the low-level terminal writer used by all
// animation demos.
//
// The Writer wraps any io.Writer behind an explicit buffer so that the
// difference between buffered and flushed output stays observable, and
// serializes access with a mutex so a background animation goroutine
// and the main goroutine never interleave partial escape sequences.
//
// Line rewriting:
//
// In-place animation is built from three primitives:
//   - Overwrite(text) - carriage return followed by the new content
//   - ClearLine() - carriage return, a full line of spaces, carriage return
//   - EndLine(text) - final content padded wide enough to cover whatever
//     the line held before, then a newline
//
// The Writer tracks the widest visible content since the last newline
// (escape sequences stripped, wide runes counted at display width), so
// EndLine always pads enough to leave no residue from longer frames.
//
// Cursor movement:
//
//	w.CursorUp(3)   // ESC [3A
//	w.CursorDown(1) // ESC [1B
//
// Moves with n <= 0 are no-ops.
//
// Error handling:
//
// Writes never return errors at the call site. The first failure of the
// underlying sink is latched and every later call becomes a no-op;
// callers that care (the demo driver does) poll Err() between demos.
package console
