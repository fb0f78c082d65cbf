package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"termfx/pkg/ui"
)

var (
	// Version information
	version   = "1.0.0"
	gitCommit = "unknown"
	buildDate = "unknown"

	// Global flags
	configFile string
	logLevel   string
	logFile    string
	noColor    bool
	quiet      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "termfx",
	Short: "A showcase of terminal output and animation techniques",
	Long: `termfx is a command-line demonstration of dynamic terminal output.

It runs a fixed sequence of short demos covering:
  - Unbuffered writes vs explicit flushing
  - Carriage-return line overwrites and countdowns
  - Spinner animations with multiple frame styles
  - Progress bars with percentage and counts
  - Multi-line updates with ANSI cursor movement
  - Backspace typing and erasing effects
  - A background spinner goroutine with a cooperative stop
  - Graceful recovery from mid-animation errors

Run everything with 'termfx run', or a subset by name.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, gitCommit, buildDate),
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.AutoDetect()
		if noColor {
			ui.EnableColor(false)
		}
		if quiet || logLevel == "error" {
			ui.SetQuiet(true)
		}

		// Don't show logo for certain commands
		if cmd.Name() != "version" && cmd.Name() != "help" && cmd.Name() != "completion" {
			ui.PrintLogo()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default is .termfx.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress all output except errors and demo animation")

	// Version template
	rootCmd.SetVersionTemplate(`termfx {{.Version}}
Go Version: ` + runtime.Version() + `
OS/Arch: ` + runtime.GOOS + `/` + runtime.GOARCH + `
`)

	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
