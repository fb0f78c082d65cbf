package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"termfx/pkg/config"
	"termfx/pkg/ui"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration files",
	Long: `Manage termfx configuration files.

Configuration can be loaded from:
  - Command line flags (highest priority)
  - Environment variables (TERMFX_*)
  - Configuration file
  - Default values (lowest priority)`,
}

// initCmd represents the config init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an example configuration file",
	Long: `Create an example configuration file with all available options.

The file will be created in the current directory as '.termfx.yaml'
unless a different path is specified with the --config flag.`,
	Run: runConfigInit,
}

// showCmd represents the config show command
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long: `Show the current configuration including values from all sources:
  - Command line flags
  - Environment variables
  - Configuration file
  - Default values`,
	Run: runConfigShow,
}

// validateCmd represents the config validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration file",
	Long: `Validate a configuration file for syntax errors and invalid values.

This command checks:
  - YAML syntax
  - Value types and ranges
  - Glyph display widths`,
	Run: runConfigValidate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(initCmd)
	configCmd.AddCommand(showCmd)
	configCmd.AddCommand(validateCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) {
	// Determine config file path
	configPath := configFile
	if configPath == "" {
		configPath = ".termfx.yaml"
	}

	// Check if file already exists
	if _, err := os.Stat(configPath); err == nil {
		ui.PrintError("Configuration file already exists", configPath)
		fmt.Println("\nTo overwrite, first remove the existing file:")
		fmt.Printf("  rm %s\n", configPath)
		os.Exit(1)
	}

	// Create example configuration
	exampleConfig := `# termfx Configuration File
#
# This file contains all available configuration options.
# You can also use environment variables prefixed with TERMFX_
# For example: TERMFX_SPEED, TERMFX_WIDTH, TERMFX_LOG_LEVEL

# Terminal display settings
display:
  # Columns blanked when clearing a line. The terminal is never
  # queried for its real size, so keep this at or above the widest
  # line the demos draw.
  # Range: 20-500
  width: 80

  # Progress bar width in cells
  # Range: 1-200
  bar_width: 30

  # Progress bar glyphs (must be one column wide each)
  bar_fill: "█"
  bar_empty: "░"

  # Enable colored output
  color: true

# Animation timing
animation:
  # Multiplier applied to every delay below.
  # 1.0 is real time, 0 skips all waiting.
  speed: 1.0

  # Per-demo frame and pause intervals
  spinner_interval: 100ms
  countdown_interval: 500ms
  progress_interval: 50ms
  typing_interval: 100ms
  threaded_interval: 200ms
  work_duration: 3s
  style_interval: 200ms
  multiline_pause: 1s
  step_interval: 500ms

# Logging configuration
logging:
  # Log level: debug, info, warn, error
  # Logs go to stderr so they never tear an animation frame apart.
  level: "warn"

  # Log file path (optional)
  # Leave empty to log to stderr only
  file: ""
`

	// Write configuration file
	if err := os.WriteFile(configPath, []byte(exampleConfig), 0644); err != nil {
		ui.PrintError("Failed to create configuration file", err.Error())
		os.Exit(1)
	}

	ui.PrintSuccess("Configuration file created: " + configPath)
	fmt.Println("\nNext steps:")
	fmt.Println("1. Adjust the timings and display settings to taste")
	fmt.Println("2. Run 'termfx config validate' to check the configuration")
	fmt.Println("3. Start the show with 'termfx run'")
}

func runConfigShow(cmd *cobra.Command, args []string) {
	// Load configuration
	cfg, err := config.Load(configFile, nil)
	if err != nil {
		ui.PrintError("Failed to load configuration", err.Error())
		os.Exit(1)
	}

	// Convert to YAML for display
	data, err := yaml.Marshal(cfg)
	if err != nil {
		ui.PrintError("Failed to format configuration", err.Error())
		os.Exit(1)
	}

	ui.PrintHighlight("Current Configuration")
	fmt.Println()
	fmt.Print(string(data))

	// Show configuration sources
	fmt.Println("\nConfiguration sources (in order of priority):")
	fmt.Println("1. Command line flags")
	fmt.Println("2. Environment variables (TERMFX_*)")
	if configFile != "" {
		fmt.Printf("3. Configuration file: %s\n", configFile)
	} else {
		fmt.Println("3. Configuration file: (not specified)")
	}
	fmt.Println("4. Default values")
}

func runConfigValidate(cmd *cobra.Command, args []string) {
	// Check if config file is specified
	if configFile == "" {
		// Try to find config file in common locations
		possiblePaths := []string{
			".termfx.yaml",
			".termfx.yml",
			filepath.Join(os.Getenv("HOME"), ".termfx.yaml"),
			filepath.Join(os.Getenv("HOME"), ".config", "termfx", "config.yaml"),
		}

		for _, path := range possiblePaths {
			if _, err := os.Stat(path); err == nil {
				configFile = path
				break
			}
		}

		if configFile == "" {
			ui.PrintError("No configuration file found", "Specify a file with --config flag")
			os.Exit(1)
		}
	}

	ui.PrintInfo("Validating configuration", configFile)

	// Try to load and validate configuration
	cfg, err := config.Load(configFile, nil)
	if err != nil {
		ui.PrintError("Configuration validation failed", err.Error())
		os.Exit(1)
	}

	// Check the log file path is usable before the first run needs it
	if cfg.Logging.File != "" {
		dir := filepath.Dir(cfg.Logging.File)
		if err := os.MkdirAll(dir, 0755); err != nil {
			ui.PrintError("Cannot create log directory", err.Error())
			os.Exit(1)
		}
	}

	ui.PrintSuccess("Configuration is valid")

	// Show summary
	fmt.Println("\nConfiguration summary:")
	fmt.Printf("  Clear-line width: %d columns\n", cfg.Display.Width)
	fmt.Printf("  Progress bar: %d cells (%s / %s)\n", cfg.Display.BarWidth, cfg.Display.BarFill, cfg.Display.BarEmpty)
	fmt.Printf("  Animation speed: %.2fx\n", cfg.Animation.Speed)
	fmt.Printf("  Log level: %s\n", cfg.Logging.Level)
}
