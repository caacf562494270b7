// Package config holds the host settings for the game: window, tick rate,
// font, backend and audio. Physics constants live in the ball package.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Supported backends
const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"
)

// Config holds all host settings
type Config struct {
	TicksPerSecond int    `json:"ticks_per_second"`
	ScreenWidth    int    `json:"screen_width"`
	ScreenHeight   int    `json:"screen_height"`
	Title          string `json:"title"`

	// Where the ball starts
	SpawnX float64 `json:"spawn_x"`
	SpawnY float64 `json:"spawn_y"`

	// Font for the HUD; empty uses the built-in font
	FontPath string  `json:"font_path"`
	FontSize float64 `json:"font_size"`

	Backend string      `json:"backend"`
	Audio   AudioConfig `json:"audio"`
}

// AudioConfig defines sound output
type AudioConfig struct {
	Enabled    bool    `json:"enabled"`
	SampleRate int     `json:"sample_rate"`
	Volume     float64 `json:"volume"` // 0..1
}

// DefaultConfig returns the settings of the classic demo
func DefaultConfig() *Config {
	return &Config{
		TicksPerSecond: 30,
		ScreenWidth:    800,
		ScreenHeight:   600,
		Title:          "Angry Ball",
		SpawnX:         100,
		SpawnY:         10,
		FontSize:       32,
		Backend:        BackendWindow,
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 48000,
			Volume:     0.5,
		},
	}
}

// Load reads the config from a JSON file. Missing fields keep their defaults
// and a missing file yields the defaults. The result is not validated; call
// Validate once command-line overrides have been applied.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

// Validate checks that all settings are usable
func (c *Config) Validate() error {
	var errs []error

	if c.TicksPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("ticks_per_second must be positive, got %d", c.TicksPerSecond))
	}
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight))
	}
	if c.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("font_size must be positive, got %v", c.FontSize))
	}
	if c.Backend != BackendWindow && c.Backend != BackendTerminal {
		errs = append(errs, fmt.Errorf("unknown backend %q", c.Backend))
	}
	if c.Audio.Enabled {
		if c.Audio.SampleRate <= 0 {
			errs = append(errs, fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate))
		}
		if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
			errs = append(errs, fmt.Errorf("audio.volume must be within [0, 1], got %v", c.Audio.Volume))
		}
	}

	return errors.Join(errs...)
}
