package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"termfx/internal/runner"
	"termfx/pkg/config"
	"termfx/pkg/console"
	"termfx/pkg/demo"
	apperrors "termfx/pkg/errors"
	"termfx/pkg/logger"
	"termfx/pkg/pace"
	"termfx/pkg/progress"
	"termfx/pkg/tui"
	"termfx/pkg/ui"
)

var (
	// Run command flags
	speed    float64
	fast     bool
	pick     bool
	width    int
	barWidth int
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [demo...]",
	Short: "Run the terminal output demos",
	Long: `Run the demo sequence, or a named subset of it.

With no arguments every demo runs in its fixed order. Naming demos
runs only those, still in registry order. Use 'termfx list' to see
the available names.

Press Ctrl+C at any time to stop the remaining demos.`,
	Example: `  # Run the full sequence
  termfx run

  # Run only the spinner and progress bar demos
  termfx run spinner progress

  # Run everything at double speed
  termfx run --speed 0.5

  # Skip all delays (useful for piping output)
  termfx run --fast

  # Choose demos interactively first
  termfx run --pick`,
	Args: cobra.ArbitraryArgs,
	RunE: runDemos,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Float64Var(&speed, "speed", 1.0, "multiplier applied to every animation delay")
	runCmd.Flags().BoolVar(&fast, "fast", false, "skip all animation delays")
	runCmd.Flags().BoolVar(&pick, "pick", false, "choose demos interactively before running")
	runCmd.Flags().IntVar(&width, "width", 0, "columns blanked when clearing a line (default 80)")
	runCmd.Flags().IntVar(&barWidth, "bar-width", 0, "progress bar width in cells (default 30)")
}

func runDemos(cmd *cobra.Command, args []string) error {
	// Build flags map from command line
	flags := make(map[string]interface{})
	if cmd.Flags().Changed("speed") {
		flags["speed"] = speed
	}
	if fast {
		flags["fast"] = true
	}
	if width > 0 {
		flags["width"] = width
	}
	if barWidth > 0 {
		flags["bar-width"] = barWidth
	}
	if noColor {
		flags["no-color"] = true
	}
	if cmd.Flags().Changed("log-level") {
		flags["log-level"] = logLevel
	}
	if logFile != "" {
		flags["log-file"] = logFile
	}

	// Load configuration
	cfg, err := config.Load(configFile, flags)
	if err != nil {
		ui.PrintError("Failed to load configuration", err.Error())
		os.Exit(1)
	}

	// Initialize logger
	logger.Initialize(&cfg.Logging)
	logger.WithField("version", version).Debug("termfx starting")

	if !cfg.Display.Color {
		ui.EnableColor(false)
	}

	// Resolve the demo selection
	selected := demo.Registry()
	if len(args) > 0 {
		selected, err = demo.Find(args...)
		if err != nil {
			ui.PrintError("Unknown demo", err.Error())
			os.Exit(1)
		}
	}

	if pick {
		items := make([]tui.Item, len(selected))
		for i, d := range selected {
			items[i] = tui.Item{Name: d.Name, Title: d.Title, About: d.About}
		}
		names, confirmed, err := tui.Pick(items)
		if err != nil {
			ui.PrintError("Picker failed", err.Error())
			os.Exit(1)
		}
		if !confirmed {
			ui.PrintWarning("No demos selected, nothing to run")
			return nil
		}
		if len(names) > 0 {
			selected, err = demo.Find(names...)
			if err != nil {
				ui.PrintError("Unknown demo", err.Error())
				os.Exit(1)
			}
		}
	}

	// A Ctrl+C cancels the context; the runner stops at the next
	// pacing point and prints the interrupt notice.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var pacer pace.Pacer
	if cfg.Animation.Speed <= 0 {
		pacer = pace.Immediate()
	} else {
		pacer = pace.NewSleeper(cfg.Animation.Speed)
	}

	session := &demo.Session{
		Term:   console.NewWidth(os.Stdout, cfg.Display.Width),
		Pace:   pacer,
		Timing: cfg.Animation.Timing(),
		Bar: progress.Bar{
			Width: cfg.Display.BarWidth,
			Fill:  cfg.Display.BarFill,
			Empty: cfg.Display.BarEmpty,
		},
		Log: logger.GetLogger(),
	}

	started := time.Now()
	report, err := runner.New(session, selected).Run(ctx)
	logger.LogRunSummary(report.Completed, report.Failed, report.Interrupted, time.Since(started))

	if err != nil {
		if apperrors.IsOutput(err) {
			logger.WithError(err).Error("Output sink failed")
		}
		return err
	}
	return nil
}
