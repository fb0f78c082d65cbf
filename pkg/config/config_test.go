package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	// Test default values
	if config.Display.Width != 80 {
		t.Errorf("Expected default display width to be 80, got %d", config.Display.Width)
	}

	if config.Display.BarWidth != 30 {
		t.Errorf("Expected default bar width to be 30, got %d", config.Display.BarWidth)
	}

	if config.Display.BarFill != "█" || config.Display.BarEmpty != "░" {
		t.Errorf("Expected default bar glyphs █/░, got %s/%s", config.Display.BarFill, config.Display.BarEmpty)
	}

	if config.Animation.Speed != 1.0 {
		t.Errorf("Expected default speed to be 1.0, got %f", config.Animation.Speed)
	}

	if config.Animation.WorkDuration.Std() != 3*time.Second {
		t.Errorf("Expected default work duration to be 3s, got %v", config.Animation.WorkDuration.Std())
	}

	if config.Logging.Level != "warn" {
		t.Errorf("Expected default log level to be warn, got %s", config.Logging.Level)
	}

	if err := config.Validate(); err != nil {
		t.Errorf("Default config should validate, got %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	// Set test environment variables
	os.Setenv("TERMFX_WIDTH", "120")
	os.Setenv("TERMFX_BAR_WIDTH", "40")
	os.Setenv("TERMFX_COLOR", "false")
	os.Setenv("TERMFX_SPEED", "0.5")
	os.Setenv("TERMFX_LOG_LEVEL", "debug")
	os.Setenv("TERMFX_LOG_FILE", "/tmp/termfx-test.log")

	defer func() {
		// Clean up environment variables
		os.Unsetenv("TERMFX_WIDTH")
		os.Unsetenv("TERMFX_BAR_WIDTH")
		os.Unsetenv("TERMFX_COLOR")
		os.Unsetenv("TERMFX_SPEED")
		os.Unsetenv("TERMFX_LOG_LEVEL")
		os.Unsetenv("TERMFX_LOG_FILE")
	}()

	config := DefaultConfig()
	err := config.LoadFromEnv()
	if err != nil {
		t.Fatalf("Failed to load from environment: %v", err)
	}

	// Test loaded values
	if config.Display.Width != 120 {
		t.Errorf("Expected width to be 120, got %d", config.Display.Width)
	}

	if config.Display.BarWidth != 40 {
		t.Errorf("Expected bar width to be 40, got %d", config.Display.BarWidth)
	}

	if config.Display.Color {
		t.Error("Expected color to be disabled")
	}

	if config.Animation.Speed != 0.5 {
		t.Errorf("Expected speed to be 0.5, got %f", config.Animation.Speed)
	}

	if config.Logging.Level != "debug" {
		t.Errorf("Expected log level to be debug, got %s", config.Logging.Level)
	}

	if config.Logging.File != "/tmp/termfx-test.log" {
		t.Errorf("Expected log file to be /tmp/termfx-test.log, got %s", config.Logging.File)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "termfx.yaml")

	content := `display:
  width: 100
  bar_width: 20
  color: false
animation:
  speed: 2.0
  countdown_interval: 250ms
  work_duration: 1s
logging:
  level: info
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	config := DefaultConfig()
	if err := config.LoadFromFile(path); err != nil {
		t.Fatalf("Failed to load config file: %v", err)
	}

	if config.Display.Width != 100 {
		t.Errorf("Expected width 100, got %d", config.Display.Width)
	}
	if config.Display.BarWidth != 20 {
		t.Errorf("Expected bar width 20, got %d", config.Display.BarWidth)
	}
	if config.Animation.Speed != 2.0 {
		t.Errorf("Expected speed 2.0, got %f", config.Animation.Speed)
	}
	if config.Animation.CountdownInterval.Std() != 250*time.Millisecond {
		t.Errorf("Expected countdown interval 250ms, got %v", config.Animation.CountdownInterval.Std())
	}
	if config.Animation.WorkDuration.Std() != time.Second {
		t.Errorf("Expected work duration 1s, got %v", config.Animation.WorkDuration.Std())
	}

	// Untouched fields keep their defaults
	if config.Animation.SpinnerInterval.Std() != 100*time.Millisecond {
		t.Errorf("Expected spinner interval to keep default 100ms, got %v", config.Animation.SpinnerInterval.Std())
	}
}

func TestMergeCommandLineFlags(t *testing.T) {
	config := DefaultConfig()

	config.MergeCommandLineFlags(map[string]interface{}{
		"width":     100,
		"bar-width": 15,
		"no-color":  true,
		"speed":     0.25,
		"log-level": "debug",
	})

	if config.Display.Width != 100 {
		t.Errorf("Expected width 100, got %d", config.Display.Width)
	}
	if config.Display.BarWidth != 15 {
		t.Errorf("Expected bar width 15, got %d", config.Display.BarWidth)
	}
	if config.Display.Color {
		t.Error("Expected color to be disabled")
	}
	if config.Animation.Speed != 0.25 {
		t.Errorf("Expected speed 0.25, got %f", config.Animation.Speed)
	}
	if config.Logging.Level != "debug" {
		t.Errorf("Expected log level debug, got %s", config.Logging.Level)
	}
}

func TestFastFlagZeroesSpeed(t *testing.T) {
	config := DefaultConfig()
	config.MergeCommandLineFlags(map[string]interface{}{
		"speed": 2.0,
		"fast":  true,
	})

	if config.Animation.Speed != 0 {
		t.Errorf("Expected fast to force speed 0, got %f", config.Animation.Speed)
	}
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "termfx.yaml")

	original := DefaultConfig()
	original.Display.Width = 132
	original.Animation.StyleInterval = Duration(150 * time.Millisecond)

	if err := original.Save(path); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	reloaded := DefaultConfig()
	if err := reloaded.LoadFromFile(path); err != nil {
		t.Fatalf("Failed to reload config: %v", err)
	}

	if reloaded.Display.Width != 132 {
		t.Errorf("Expected reloaded width 132, got %d", reloaded.Display.Width)
	}
	if reloaded.Animation.StyleInterval.Std() != 150*time.Millisecond {
		t.Errorf("Expected reloaded style interval 150ms, got %v", reloaded.Animation.StyleInterval.Std())
	}
}
