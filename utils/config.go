package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sheikhrachel/go-life/model"
)

var ErrInvalidConfig = errors.New("invalid config")

// Duration is a time.Duration that decodes from strings such as "3s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "[Duration] expected a duration string")
	}
	return d.parse(s)
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return errors.Wrap(err, "[Duration] expected a duration string")
	}
	return d.parse(s)
}

func (d *Duration) parse(s string) error {
	v, err := time.ParseDuration(s)
	if err != nil {
		return errors.Wrapf(err, "[Duration] failed to parse: %q", s)
	}
	*d = Duration(v)
	return nil
}

// Config holds the configuration for a simulation run
type Config struct {
	Width               int      `json:"width" yaml:"width"`
	Height              int      `json:"height" yaml:"height"`
	Density             int      `json:"density" yaml:"density"`
	FrameRate           Duration `json:"frame_rate" yaml:"frame_rate"`
	AutoPilot           bool     `json:"auto_pilot" yaml:"auto_pilot"`
	AutoRestart         bool     `json:"auto_restart" yaml:"auto_restart"`
	StagnationThreshold int      `json:"stagnation_threshold" yaml:"stagnation_threshold"`
	MaxGenerations      int      `json:"max_generations" yaml:"max_generations"`
	UseMemoryPool       bool     `json:"use_memory_pool" yaml:"use_memory_pool"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               model.DefaultWidth,
		Height:              model.DefaultHeight,
		Density:             model.DefaultDensity,
		FrameRate:           Duration(3 * time.Second),
		AutoPilot:           true,
		AutoRestart:         false,
		StagnationThreshold: 5,
		MaxGenerations:      1000,
		UseMemoryPool:       true,
	}
}

// LoadConfig loads configuration from a JSON or YAML file over the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] file: %+v", filename)
	}

	return config, nil
}

// Validate checks the config describes a grid the engine can build
func (c Config) Validate() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return errors.Wrapf(ErrInvalidConfig, "width and height must be positive, got %dx%d", c.Width, c.Height)
	case c.Density < model.MinDensity || c.Density > model.MaxDensity:
		return errors.Wrapf(ErrInvalidConfig, "density must be within [%d, %d], got %d",
			model.MinDensity, model.MaxDensity, c.Density)
	case c.FrameRate <= 0:
		return errors.Wrapf(ErrInvalidConfig, "frame_rate must be positive, got %s", time.Duration(c.FrameRate))
	case c.StagnationThreshold < 0:
		return errors.Wrapf(ErrInvalidConfig, "stagnation_threshold must not be negative, got %d", c.StagnationThreshold)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "max_generations must not be negative, got %d", c.MaxGenerations)
	}
	return nil
}
