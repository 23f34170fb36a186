package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jmallek/shotpath/internal/camera"
	"github.com/jmallek/shotpath/internal/interp"
)

const (
	DefaultMaxKeyframes = 2000
	DefaultMaxVelocity  = 0.0 // disabled
)

// Config is the host-facing interpreter configuration.
type Config struct {
	DefaultEasing string  `yaml:"default_easing"`
	MaxVelocity   float64 `yaml:"max_velocity"`
	MaxKeyframes  int     `yaml:"max_keyframes"`
}

func DefaultConfig() *Config {
	return &Config{
		DefaultEasing: camera.EasingLinear,
		MaxVelocity:   DefaultMaxVelocity,
		MaxKeyframes:  DefaultMaxKeyframes,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Interp converts to the interpreter's config type.
func (c *Config) Interp() interp.Config {
	return interp.Config{
		DefaultEasing: c.DefaultEasing,
		MaxVelocity:   c.MaxVelocity,
		MaxKeyframes:  c.MaxKeyframes,
	}
}
