package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// DefaultWidth is the number of columns ClearLine blanks when no width
// is configured. Terminal size is never queried at runtime, so lines
// wider than this are not fully cleared.
const DefaultWidth = 80

// Escape sequences understood by VT100-compatible terminals.
const (
	cursorUpFmt   = "\033[%dA"
	cursorDownFmt = "\033[%dB"
	eraseSeq      = "\b \b"
)

// Writer is a mutex-guarded, explicitly buffered terminal writer.
//
// Write appends to the buffer without delivering anything; Print and
// the line primitives flush immediately. The zero value is not usable,
// construct with New or NewWidth.
type Writer struct {
	mu    sync.Mutex
	out   *bufio.Writer
	width int

	// visible-width model of the current line
	col     int
	lineMax int

	err error
}

// New returns a Writer over out using DefaultWidth for ClearLine.
func New(out io.Writer) *Writer {
	return NewWidth(out, DefaultWidth)
}

// NewWidth returns a Writer whose ClearLine blanks width columns.
// Non-positive widths fall back to DefaultWidth.
func NewWidth(out io.Writer, width int) *Writer {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Writer{
		out:   bufio.NewWriter(out),
		width: width,
	}
}

// Width returns the configured clear-line width.
func (w *Writer) Width() int {
	return w.width
}

// Write appends text to the buffer without flushing. The text stays
// invisible on the terminal until Flush or any flushing call runs.
func (w *Writer) Write(text string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.push(text)
}

// Print writes text and flushes it to the terminal immediately.
func (w *Writer) Print(text string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.push(text)
	w.flush()
}

// Printf formats according to fmt.Sprintf, writes and flushes.
func (w *Writer) Printf(format string, args ...interface{}) {
	w.Print(fmt.Sprintf(format, args...))
}

// Println writes text followed by a newline and flushes.
func (w *Writer) Println(text string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.push(text)
	w.push("\n")
	w.flush()
}

// Flush delivers any buffered output to the sink.
func (w *Writer) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.flush()
}

// Overwrite returns the cursor to column zero and writes text over the
// current line. Residue from earlier, wider content is left in place;
// finish the line with EndLine or ClearLine to remove it.
func (w *Writer) Overwrite(text string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.push("\r")
	w.push(text)
	w.flush()
}

// EndLine replaces the current line with text, pads with spaces to
// cover the widest content the line has held since the last newline,
// and moves to the next line.
func (w *Writer) EndLine(text string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	pad := w.lineMax - visibleWidth(text)
	if pad < 0 {
		pad = 0
	}
	w.push("\r")
	w.push(text)
	w.push(strings.Repeat(" ", pad))
	w.push("\n")
	w.flush()
}

// ClearLine blanks the current line: carriage return, a full width of
// spaces, carriage return. The cursor ends at column zero.
func (w *Writer) ClearLine() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.push("\r")
	w.push(strings.Repeat(" ", w.width))
	w.push("\r")
	w.col = 0
	w.lineMax = 0
	w.flush()
}

// CursorUp moves the cursor up n lines. Moves with n <= 0 are no-ops.
// The width tracker keeps following the line the cursor came from, so
// rewrites after a move should be at least as wide as the old content.
func (w *Writer) CursorUp(n int) {
	if n <= 0 {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	w.raw(fmt.Sprintf(cursorUpFmt, n))
	w.flush()
}

// CursorDown moves the cursor down n lines. Moves with n <= 0 are no-ops.
func (w *Writer) CursorDown(n int) {
	if n <= 0 {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	w.raw(fmt.Sprintf(cursorDownFmt, n))
	w.flush()
}

// EraseChar rubs out the character left of the cursor with the
// backspace, space, backspace sequence.
func (w *Writer) EraseChar() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.push(eraseSeq)
	w.flush()
}

// Err reports the first write or flush failure, if any. After a
// failure the Writer goes quiet: every call is a no-op and the
// original error is preserved.
func (w *Writer) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.err
}

// push writes s and advances the visible-width model. Callers hold mu.
func (w *Writer) push(s string) {
	w.raw(s)
	w.track(s)
}

// raw writes s without touching the width model. Callers hold mu.
func (w *Writer) raw(s string) {
	if w.err != nil {
		return
	}
	if _, err := w.out.WriteString(s); err != nil {
		w.err = err
	}
}

func (w *Writer) flush() {
	if w.err != nil {
		return
	}
	if err := w.out.Flush(); err != nil {
		w.err = err
	}
}

// track follows the cursor column through s, escape sequences
// stripped. Carriage return rewinds to column zero, newline starts a
// fresh line, backspace steps back one column; everything else
// advances by display width.
func (w *Writer) track(s string) {
	for _, r := range ansi.Strip(s) {
		switch r {
		case '\r':
			w.col = 0
		case '\n':
			w.col = 0
			w.lineMax = 0
		case '\b':
			if w.col > 0 {
				w.col--
			}
		default:
			w.col += runewidth.RuneWidth(r)
			if w.col > w.lineMax {
				w.lineMax = w.col
			}
		}
	}
}

// visibleWidth measures the display width of s with ANSI escape
// sequences removed.
func visibleWidth(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}
