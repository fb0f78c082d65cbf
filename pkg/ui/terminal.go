package ui

import (
	"fmt"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ASCII logo for the application
const ASCIILogo = `
    ╔══════════════════════════════════════════════════════════╗
    ║ ████████╗███████╗██████╗ ███╗   ███╗███████╗██╗  ██╗ ║
    ║ ╚══██╔══╝██╔════╝██╔══██╗████╗ ████║██╔════╝╚██╗██╔╝ ║
    ║    ██║   █████╗  ██████╔╝██╔████╔██║█████╗   ╚███╔╝  ║
    ║    ██║   ██╔══╝  ██╔══██╗██║╚██╔╝██║██╔══╝   ██╔██╗  ║
    ║    ██║   ███████╗██║  ██║██║ ╚═╝ ██║██║     ██╔╝ ██╗ ║
    ║    ╚═╝   ╚══════╝╚═╝  ╚═╝╚═╝     ╚═╝╚═╝     ╚═╝  ╚═╝ ║
    ║        TERMINAL OUTPUT & ANIMATION DEMO TOOLKIT         ║
    ╚══════════════════════════════════════════════════════════╝
`

var (
	modeMu       sync.RWMutex
	colorEnabled = true
	quietMode    bool
)

// EnableColor switches ANSI color wrapping on or off globally.
func EnableColor(enabled bool) {
	modeMu.Lock()
	defer modeMu.Unlock()
	colorEnabled = enabled
}

// ColorEnabled reports whether color output is currently on.
func ColorEnabled() bool {
	modeMu.RLock()
	defer modeMu.RUnlock()
	return colorEnabled
}

// SetQuiet suppresses all non-error output when enabled.
func SetQuiet(quiet bool) {
	modeMu.Lock()
	defer modeMu.Unlock()
	quietMode = quiet
}

// Quiet reports whether quiet mode is active.
func Quiet() bool {
	modeMu.RLock()
	defer modeMu.RUnlock()
	return quietMode
}

// AutoDetect enables color only when stdout is a real terminal and the
// NO_COLOR convention does not ask for plain output.
func AutoDetect() {
	EnableColor(term.IsTerminal(int(os.Stdout.Fd())) && !termenv.EnvNoColor())
}

// Color functions for terminal output
var (
	Cyan    = colorize("\033[36m%s\033[0m")
	Yellow  = colorize("\033[33m%s\033[0m")
	Red     = colorize("\033[31m%s\033[0m")
	Green   = colorize("\033[32m%s\033[0m")
	Magenta = colorize("\033[35m%s\033[0m")
	Dim     = colorize("\033[2m%s\033[0m")
)

// colorize returns a function that wraps text with ANSI color codes,
// honoring the global color switch at call time
func colorize(colorString string) func(string) string {
	return func(text string) string {
		if !ColorEnabled() {
			return text
		}
		return fmt.Sprintf(colorString, text)
	}
}

// PrintLogo prints the ASCII logo with color
func PrintLogo() {
	if Quiet() {
		return
	}
	fmt.Print(Cyan(ASCIILogo))
}

// PrintError prints an error message in red. Errors ignore quiet mode.
func PrintError(msg string, args ...interface{}) {
	if len(args) > 0 {
		fmt.Fprintln(os.Stderr, Red(msg+": "+fmt.Sprintf("%v", args[0])))
	} else {
		fmt.Fprintln(os.Stderr, Red(msg))
	}
}

// PrintSuccess prints a success message in green
func PrintSuccess(msg string) {
	if Quiet() {
		return
	}
	fmt.Println(Green(msg))
}

// PrintInfo prints an info message in cyan
func PrintInfo(label string, value string) {
	if Quiet() {
		return
	}
	fmt.Printf("%s: %s\n", Cyan(label), Yellow(value))
}

// PrintWarning prints a warning message in yellow
func PrintWarning(msg string, args ...interface{}) {
	if Quiet() {
		return
	}
	if len(args) > 0 {
		fmt.Println(Yellow(msg + ": " + fmt.Sprintf("%v", args[0])))
	} else {
		fmt.Println(Yellow(msg))
	}
}

// PrintHighlight prints a highlighted message in magenta
func PrintHighlight(msg string) {
	if Quiet() {
		return
	}
	fmt.Println(Magenta(msg))
}
