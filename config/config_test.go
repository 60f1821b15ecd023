package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultValidates(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadLayersFileOverDefaults(t *testing.T) {
	path := writeConfig(t, `
tick_rate: 30
log_level: debug
scene:
  rigid_bodies: 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30.0, cfg.TickRate)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 2, cfg.Scene.RigidBodies)

	// Untouched keys keep their defaults
	assert.True(t, cfg.EnablePhysics)
	assert.Equal(t, int64(1), cfg.Scene.Seed)
	assert.Equal(t, 3, cfg.Scene.LinkCount)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "failed to read config")
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "tick_rate: [not a number")

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }},
		{"negative tick rate", func(c *Config) { c.TickRate = -60 }},
		{"unknown log level", func(c *Config) { c.LogLevel = "verbose" }},
		{"negative body count", func(c *Config) { c.Scene.RigidBodies = -1 }},
		{"negative link count", func(c *Config) { c.Scene.LinkCount = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := writeConfig(t, "tick_rate: -1\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "tick_rate")
}
