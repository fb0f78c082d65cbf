package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:    "width too narrow",
			mutate:  func(c *Config) { c.Display.Width = 10 },
			wantErr: "display width must be at least 20 columns",
		},
		{
			name:    "width absurd",
			mutate:  func(c *Config) { c.Display.Width = 1000 },
			wantErr: "display width must not exceed 500 columns",
		},
		{
			name:    "bar width zero",
			mutate:  func(c *Config) { c.Display.BarWidth = 0 },
			wantErr: "progress bar width must be positive",
		},
		{
			name:    "bar width absurd",
			mutate:  func(c *Config) { c.Display.BarWidth = 300 },
			wantErr: "progress bar width must not exceed 200 cells",
		},
		{
			name:    "wide fill glyph",
			mutate:  func(c *Config) { c.Display.BarFill = "ＸＸ" },
			wantErr: "bar fill glyph must be one column wide",
		},
		{
			name:    "empty empty glyph",
			mutate:  func(c *Config) { c.Display.BarEmpty = "" },
			wantErr: "bar empty glyph must be one column wide",
		},
		{
			name:    "negative speed",
			mutate:  func(c *Config) { c.Animation.Speed = -1 },
			wantErr: "animation speed cannot be negative",
		},
		{
			name:    "negative interval",
			mutate:  func(c *Config) { c.Animation.SpinnerInterval = Duration(-time.Second) },
			wantErr: "spinner_interval cannot be negative",
		},
		{
			name:    "bogus log level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: "invalid log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Display.Width = 5
	cfg.Display.BarWidth = 0
	cfg.Animation.Speed = -2
	cfg.Logging.Level = "never"

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{
		"display width must be at least 20 columns",
		"progress bar width must be positive",
		"animation speed cannot be negative",
		"invalid log level",
	} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestValidateAcceptsZeroSpeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Animation.Speed = 0
	assert.NoError(t, cfg.Validate())
}

func TestDurationUnmarshalRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("animation:\n  spinner_interval: soon\n"), 0644))

	cfg := DefaultConfig()
	err := cfg.LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid duration "soon"`)
}

func TestLoadFromFileBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display: [not a map\n"), 0644))

	cfg := DefaultConfig()
	err := cfg.LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadFromFileExplicitMissingPath(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadPrecedenceFlagsBeatEnvBeatFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "termfx.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display:\n  width: 90\n  bar_width: 25\nanimation:\n  speed: 3.0\n"), 0644))

	os.Setenv("TERMFX_WIDTH", "110")
	os.Setenv("TERMFX_SPEED", "2.0")
	defer func() {
		os.Unsetenv("TERMFX_WIDTH")
		os.Unsetenv("TERMFX_SPEED")
	}()

	cfg, err := Load(path, map[string]interface{}{"speed": 0.5})
	require.NoError(t, err)

	// Flag wins over env and file
	assert.Equal(t, 0.5, cfg.Animation.Speed)
	// Env wins over file
	assert.Equal(t, 110, cfg.Display.Width)
	// File wins over default
	assert.Equal(t, 25, cfg.Display.BarWidth)
}

func TestLoadRejectsInvalidFinalConfig(t *testing.T) {
	_, err := Load("", map[string]interface{}{"width": 5000})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
}

func TestTimingResolvesEveryField(t *testing.T) {
	cfg := DefaultConfig()
	timing := cfg.Animation.Timing()

	assert.Equal(t, 100*time.Millisecond, timing.SpinnerInterval)
	assert.Equal(t, 500*time.Millisecond, timing.CountdownInterval)
	assert.Equal(t, 50*time.Millisecond, timing.ProgressInterval)
	assert.Equal(t, 100*time.Millisecond, timing.TypingInterval)
	assert.Equal(t, 200*time.Millisecond, timing.ThreadedInterval)
	assert.Equal(t, 3*time.Second, timing.WorkDuration)
	assert.Equal(t, 200*time.Millisecond, timing.StyleInterval)
	assert.Equal(t, time.Second, timing.MultilinePause)
	assert.Equal(t, 500*time.Millisecond, timing.StepInterval)
}

func TestDurationMarshalsAsString(t *testing.T) {
	out, err := Duration(1500 * time.Millisecond).MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, "1.5s", out)
}
