package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the viewer configuration, loadable from a YAML file with
// command-line flags layered on top
type Config struct {
	TickRate      float64 `yaml:"tick_rate"`
	EnablePhysics bool    `yaml:"enable_physics"`
	EnableAudio   bool    `yaml:"enable_audio"`

	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`

	Scene SceneConfig `yaml:"scene"`
}

// SceneConfig seeds the demo scene
type SceneConfig struct {
	Seed        int64 `yaml:"seed"`
	RigidBodies int   `yaml:"rigid_bodies"`
	LinkCount   int   `yaml:"link_count"`
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		TickRate:      60,
		EnablePhysics: true,
		EnableAudio:   true,
		LogLevel:      "info",
		LogFile:       "scene-pilot.log",
		Scene: SceneConfig{
			Seed:        1,
			RigidBodies: 6,
			LinkCount:   3,
		},
	}
}

// Load reads a YAML config file over the defaults
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the loop cannot run with
func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("tick_rate must be positive, got %v", c.TickRate)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	if c.Scene.RigidBodies < 0 || c.Scene.LinkCount < 0 {
		return fmt.Errorf("scene counts must be non-negative")
	}
	return nil
}
