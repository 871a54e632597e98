package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/hazard-course/internal/hazard"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "course.yaml")
	require.NoError(t, os.WriteFile(path, []byte("course:\n  count: 9\n  palette: [axe]\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Course.Count)
	assert.Equal(t, []string{"axe"}, cfg.Course.Palette)
	assert.Equal(t, 60, cfg.Run.TickRate, "missing keys keep defaults")

	palette, err := cfg.Palette()
	require.NoError(t, err)
	assert.Equal(t, []hazard.Type{hazard.Axe}, palette)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("course: [not, a, map"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative count", func(c *Config) { c.Course.Count = -1 }},
		{"empty palette", func(c *Config) { c.Course.Palette = nil }},
		{"unknown hazard", func(c *Config) { c.Course.Palette = []string{"spinner", "trampoline"} }},
		{"zero tick rate", func(c *Config) { c.Run.TickRate = 0 }},
		{"no time limit", func(c *Config) { c.Run.MaxSeconds = 0 }},
		{"no gravity", func(c *Config) { c.Physics.Gravity = 0 }},
		{"kill plane above floor", func(c *Config) { c.Physics.KillPlane = 1 }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestRuntime(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Course.Seed = 42
	rt := cfg.Runtime()
	assert.Equal(t, 60, rt.TickRate)
	assert.Equal(t, int64(42), rt.Seed)
	assert.Equal(t, 5, rt.Count)
}

func TestLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.Level = "debug"
	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, level)

	cfg.Log.Level = ""
	level, err = cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, log.InfoLevel, level)
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name  string
		count int
	}{
		{"easy", 3},
		{"Normal", 5},
		{" hard ", 10},
		{"marathon", 20},
	}
	for _, tc := range tests {
		p, err := ParsePreset(tc.name)
		require.NoError(t, err)

		cfg := DefaultConfig()
		ApplyPreset(&cfg, p)
		assert.Equal(t, tc.count, cfg.Course.Count)
		assert.GreaterOrEqual(t, cfg.Run.MaxSeconds, float64(tc.count+2)*8)
	}

	_, err := ParsePreset("nightmare")
	assert.Error(t, err)
}

func TestMarshalRoundTripKeepsPalette(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, string(data), "palette:")
}
