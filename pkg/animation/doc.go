// Package animation provides frame sets and the background spinner
// used by the terminal demos.
//
// Frame sets:
//
// A Frames value is an ordered list of glyphs cycled by iteration
// index, so frame selection is always frames.At(i) with wrap-around.
// Four canonical sets ship with the package:
//   - Dots - ten braille glyphs, the smoothest spinner
//   - Lines - the classic | / - \ spinner
//   - Blocks - half blocks circling the cell
//   - Circles - a rotating half-filled circle
//
// Styles() exposes the same sets under their display names in a fixed
// order for the multi-style demo.
//
// Spinner:
//
// Spinner animates a frame set next to a message from its own
// goroutine, overwriting one terminal line per tick. Stop signals the
// goroutine and blocks until it has exited, so callers know no stray
// frame can appear after Stop returns:
//
//	sp := animation.NewSpinner(term, animation.Lines, "Working...", 200*time.Millisecond, pacer)
//	sp.Start()
//	// ... do the real work ...
//	sp.Stop()
//	term.ClearLine()
package animation
