package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration options for the demo toolkit
type Config struct {
	// Terminal display settings
	Display DisplayConfig `yaml:"display" json:"display"`

	// Animation timing settings
	Animation AnimationConfig `yaml:"animation" json:"animation"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// DisplayConfig holds terminal rendering configuration
type DisplayConfig struct {
	// Width is the column count ClearLine blanks; the terminal is
	// never queried for its real size
	Width    int    `yaml:"width" json:"width"`
	BarWidth int    `yaml:"bar_width" json:"bar_width"`
	BarFill  string `yaml:"bar_fill" json:"bar_fill"`
	BarEmpty string `yaml:"bar_empty" json:"bar_empty"`
	Color    bool   `yaml:"color" json:"color"`
}

// AnimationConfig holds the timing of every demo animation
type AnimationConfig struct {
	// Speed multiplies every delay; 0 disables waiting entirely
	Speed             float64  `yaml:"speed" json:"speed"`
	SpinnerInterval   Duration `yaml:"spinner_interval" json:"spinner_interval"`
	CountdownInterval Duration `yaml:"countdown_interval" json:"countdown_interval"`
	ProgressInterval  Duration `yaml:"progress_interval" json:"progress_interval"`
	TypingInterval    Duration `yaml:"typing_interval" json:"typing_interval"`
	ThreadedInterval  Duration `yaml:"threaded_interval" json:"threaded_interval"`
	WorkDuration      Duration `yaml:"work_duration" json:"work_duration"`
	StyleInterval     Duration `yaml:"style_interval" json:"style_interval"`
	MultilinePause    Duration `yaml:"multiline_pause" json:"multiline_pause"`
	StepInterval      Duration `yaml:"step_interval" json:"step_interval"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file" json:"file"`
}

// Duration wraps time.Duration so YAML files can spell delays the
// human way ("500ms", "3s") instead of nanosecond integers.
type Duration time.Duration

// UnmarshalYAML parses a duration string from a YAML scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML renders the duration in its string form
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Std returns the plain time.Duration value
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Timing is the resolved animation schedule handed to demos
type Timing struct {
	SpinnerInterval   time.Duration
	CountdownInterval time.Duration
	ProgressInterval  time.Duration
	TypingInterval    time.Duration
	ThreadedInterval  time.Duration
	WorkDuration      time.Duration
	StyleInterval     time.Duration
	MultilinePause    time.Duration
	StepInterval      time.Duration
}

// Timing resolves the YAML-facing durations into plain time.Durations
func (a AnimationConfig) Timing() Timing {
	return Timing{
		SpinnerInterval:   a.SpinnerInterval.Std(),
		CountdownInterval: a.CountdownInterval.Std(),
		ProgressInterval:  a.ProgressInterval.Std(),
		TypingInterval:    a.TypingInterval.Std(),
		ThreadedInterval:  a.ThreadedInterval.Std(),
		WorkDuration:      a.WorkDuration.Std(),
		StyleInterval:     a.StyleInterval.Std(),
		MultilinePause:    a.MultilinePause.Std(),
		StepInterval:      a.StepInterval.Std(),
	}
}

// DefaultConfig returns a Config instance with the stock demo timings
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:    80,
			BarWidth: 30,
			BarFill:  "█",
			BarEmpty: "░",
			Color:    true,
		},
		Animation: AnimationConfig{
			Speed:             1.0,
			SpinnerInterval:   Duration(100 * time.Millisecond),
			CountdownInterval: Duration(500 * time.Millisecond),
			ProgressInterval:  Duration(50 * time.Millisecond),
			TypingInterval:    Duration(100 * time.Millisecond),
			ThreadedInterval:  Duration(200 * time.Millisecond),
			WorkDuration:      Duration(3 * time.Second),
			StyleInterval:     Duration(200 * time.Millisecond),
			MultilinePause:    Duration(1 * time.Second),
			StepInterval:      Duration(500 * time.Millisecond),
		},
		Logging: LoggingConfig{
			Level: "warn",
			File:  "",
		},
	}
}

// LoadFromEnv loads configuration from environment variables
func (c *Config) LoadFromEnv() error {
	// Display settings
	if width := os.Getenv("TERMFX_WIDTH"); width != "" {
		var val int
		fmt.Sscanf(width, "%d", &val)
		if val > 0 {
			c.Display.Width = val
		}
	}
	if barWidth := os.Getenv("TERMFX_BAR_WIDTH"); barWidth != "" {
		var val int
		fmt.Sscanf(barWidth, "%d", &val)
		if val > 0 {
			c.Display.BarWidth = val
		}
	}
	if color := os.Getenv("TERMFX_COLOR"); color != "" {
		c.Display.Color = strings.ToLower(color) == "true"
	}

	// Animation speed
	if speed := os.Getenv("TERMFX_SPEED"); speed != "" {
		var val float64
		fmt.Sscanf(speed, "%f", &val)
		if val >= 0 {
			c.Animation.Speed = val
		}
	}

	// Logging
	if logLevel := os.Getenv("TERMFX_LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFile := os.Getenv("TERMFX_LOG_FILE"); logFile != "" {
		c.Logging.File = logFile
	}

	return nil
}

// LoadFromFile loads configuration from a YAML file
func (c *Config) LoadFromFile(path string) error {
	// If path is empty, try default locations
	if path == "" {
		path = c.findConfigFile()
		if path == "" {
			return nil // No config file found, not an error
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// findConfigFile searches for config file in standard locations
func (c *Config) findConfigFile() string {
	// Check in order of precedence
	locations := []string{
		".termfx.yaml",
		".termfx.yml",
		filepath.Join(os.Getenv("HOME"), ".config", "termfx", "config.yaml"),
		filepath.Join(os.Getenv("HOME"), ".config", "termfx", "config.yml"),
		filepath.Join(os.Getenv("HOME"), ".termfx.yaml"),
		filepath.Join(os.Getenv("HOME"), ".termfx.yml"),
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	// Validate display settings. The clear width must cover the
	// longest line any demo rewrites, so very narrow values would
	// leave residue on screen.
	if c.Display.Width < 20 {
		errs = append(errs, errors.New("display width must be at least 20 columns"))
	}
	if c.Display.Width > 500 {
		errs = append(errs, errors.New("display width must not exceed 500 columns"))
	}
	if c.Display.BarWidth < 1 {
		errs = append(errs, errors.New("progress bar width must be positive"))
	}
	if c.Display.BarWidth > 200 {
		errs = append(errs, errors.New("progress bar width must not exceed 200 cells"))
	}
	if runewidth.StringWidth(c.Display.BarFill) != 1 {
		errs = append(errs, errors.New("bar fill glyph must be one column wide"))
	}
	if runewidth.StringWidth(c.Display.BarEmpty) != 1 {
		errs = append(errs, errors.New("bar empty glyph must be one column wide"))
	}

	// Validate animation settings
	if c.Animation.Speed < 0 {
		errs = append(errs, errors.New("animation speed cannot be negative"))
	}
	intervals := map[string]Duration{
		"spinner_interval":   c.Animation.SpinnerInterval,
		"countdown_interval": c.Animation.CountdownInterval,
		"progress_interval":  c.Animation.ProgressInterval,
		"typing_interval":    c.Animation.TypingInterval,
		"threaded_interval":  c.Animation.ThreadedInterval,
		"work_duration":      c.Animation.WorkDuration,
		"style_interval":     c.Animation.StyleInterval,
		"multiline_pause":    c.Animation.MultilinePause,
		"step_interval":      c.Animation.StepInterval,
	}
	for name, d := range intervals {
		if d < 0 {
			errs = append(errs, fmt.Errorf("%s cannot be negative", name))
		}
	}

	// Validate logging
	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "warning": true,
		"error": true, "fatal": true, "disabled": true,
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, errors.New("invalid log level"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Save saves the configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeCommandLineFlags merges command line flags into the configuration
func (c *Config) MergeCommandLineFlags(flags map[string]interface{}) {
	if width, ok := flags["width"].(int); ok && width > 0 {
		c.Display.Width = width
	}
	if barWidth, ok := flags["bar-width"].(int); ok && barWidth > 0 {
		c.Display.BarWidth = barWidth
	}
	if noColor, ok := flags["no-color"].(bool); ok && noColor {
		c.Display.Color = false
	}
	if speed, ok := flags["speed"].(float64); ok && speed >= 0 {
		c.Animation.Speed = speed
	}
	if fast, ok := flags["fast"].(bool); ok && fast {
		c.Animation.Speed = 0
	}
	if logLevel, ok := flags["log-level"].(string); ok && logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFile, ok := flags["log-file"].(string); ok && logFile != "" {
		c.Logging.File = logFile
	}
}

// Load loads configuration from all sources with proper precedence
// Precedence order: Command line flags > Environment variables > .env file > Config file > Defaults
func Load(configPath string, flags map[string]interface{}) (*Config, error) {
	// Try to load .env files (don't fail if they don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join(os.Getenv("HOME"), ".env"))
	_ = godotenv.Load(filepath.Join(os.Getenv("HOME"), ".termfx.env"))

	// Start with defaults
	config := DefaultConfig()

	// Load from config file
	if err := config.LoadFromFile(configPath); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	// Override with environment variables (includes values from .env)
	if err := config.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Override with command line flags
	config.MergeCommandLineFlags(flags)

	// Validate final configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}
