package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "speaker", cfg.Tone.Backend)
	assert.Equal(t, 44100, cfg.Tone.SampleRate)
	assert.Equal(t, 100*time.Millisecond, cfg.Tone.BufferSize.Duration())
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_ParsesTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[tone]
backend = "system"
sample_rate = 48000
buffer_size = "50ms"

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "system", cfg.Tone.Backend)
	assert.Equal(t, 48000, cfg.Tone.SampleRate)
	assert.Equal(t, 50*time.Millisecond, cfg.Tone.BufferSize.Duration())
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_ParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
tone:
  backend: print
  buffer_size: 250
log:
  level: info
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "print", cfg.Tone.Backend)
	assert.Equal(t, DefaultSampleRate, cfg.Tone.SampleRate)
	assert.Equal(t, 250*time.Millisecond, cfg.Tone.BufferSize.Duration())
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_PartialConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[log]
level = "error"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)

	// Unchanged fields should have defaults
	assert.Equal(t, DefaultBackend, cfg.Tone.Backend)
	assert.Equal(t, DefaultSampleRate, cfg.Tone.SampleRate)
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	require.NoError(t, os.WriteFile(path, []byte(`this is not valid toml [`), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown backend", "[tone]\nbackend = \"pcspkr\"\n"},
		{"zero sample rate", "[tone]\nsample_rate = 0\n"},
		{"bad duration", "[tone]\nbuffer_size = \"soon\"\n"},
		{"unknown level", "[log]\nlevel = \"loud\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := LoadConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestLogConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"ERROR", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			level, err := LogConfig{Level: tt.level}.SlogLevel()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestDuration_UnmarshalText(t *testing.T) {
	var d Duration

	require.NoError(t, d.UnmarshalText([]byte("75")))
	assert.Equal(t, 75*time.Millisecond, d.Duration())

	require.NoError(t, d.UnmarshalText([]byte("1s")))
	assert.Equal(t, time.Second, d.Duration())

	assert.Error(t, d.UnmarshalText([]byte("later")))
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, "/custom/config/freqbeep/config.toml", ConfigPath())
}

func TestConfigPathDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	assert.Contains(t, ConfigPath(), filepath.Join("freqbeep", "config.toml"))
}
