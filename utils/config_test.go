package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	c := DefaultConfig()
	require.NoError(t, c.Validate())
	assert.Equal(t, 50, c.Width)
	assert.Equal(t, 50, c.Height)
	assert.Equal(t, 5, c.Density)
	assert.Equal(t, Duration(3*time.Second), c.FrameRate)
}

func TestLoadConfigJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"width": 20, "height": 30, "density": 3, "frame_rate": "250ms", "auto_restart": true}`)

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 20, c.Width)
	assert.Equal(t, 30, c.Height)
	assert.Equal(t, 3, c.Density)
	assert.Equal(t, Duration(250*time.Millisecond), c.FrameRate)
	assert.True(t, c.AutoRestart)
	// untouched keys keep their defaults
	assert.Equal(t, DefaultConfig().MaxGenerations, c.MaxGenerations)
}

func TestLoadConfigYAMLMatchesJSON(t *testing.T) {
	jsonPath := writeFile(t, "config.json", `{"width": 8, "height": 9, "density": 10, "frame_rate": "1s", "auto_pilot": false}`)
	yamlPath := writeFile(t, "config.yaml", "width: 8\nheight: 9\ndensity: 10\nframe_rate: 1s\nauto_pilot: false\n")

	fromJSON, err := LoadConfig(jsonPath)
	require.NoError(t, err)
	fromYAML, err := LoadConfig(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, fromJSON, fromYAML)
	assert.False(t, fromYAML.AutoPilot)
}

func TestLoadConfigMissingFile(t *testing.T) {
	c, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Equal(t, DefaultConfig(), c)
}

func TestLoadConfigMalformed(t *testing.T) {
	_, err := LoadConfig(writeFile(t, "config.json", `{"width": `))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "config.yml", "frame_rate: soon\n"))
	assert.Error(t, err)
}

func TestLoadConfigInvalid(t *testing.T) {
	_, err := LoadConfig(writeFile(t, "config.json", `{"width": 0}`))
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -2 }},
		{"density too low", func(c *Config) { c.Density = -1 }},
		{"density too high", func(c *Config) { c.Density = 11 }},
		{"zero frame rate", func(c *Config) { c.FrameRate = 0 }},
		{"negative threshold", func(c *Config) { c.StagnationThreshold = -1 }},
		{"negative max generations", func(c *Config) { c.MaxGenerations = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(&c)
			assert.True(t, errors.Is(c.Validate(), ErrInvalidConfig))
		})
	}
}
