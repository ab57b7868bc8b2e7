// Package config loads the deck configuration from YAML with environment
// variable expansion.
package config

import (
	"errors"
	"fmt"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/dailydeck/internal/anim"
)

// Themes understood by the renderers.
const (
	ThemeClassic = "classic"
	ThemeNeon    = "neon"
	ThemeMono    = "mono"
)

// Config is the application configuration.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	UI        UIConfig        `yaml:"ui"`
	Animation AnimationConfig `yaml:"animation"`
	Assets    AssetsConfig    `yaml:"assets"`
	Deck      DeckConfig      `yaml:"deck"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.UI.Validate(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	if err := c.Animation.Validate(); err != nil {
		return fmt.Errorf("animation: %w", err)
	}
	return nil
}

// LogConfig selects level, format and destination. An empty File discards
// interactive logs; the TUI owns the terminal.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Validate validates the log configuration.
func (c *LogConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Level, validation.Required, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.Format, validation.Required, validation.In("text", "json", "logfmt")),
	)
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme string `yaml:"theme"`
	Mouse bool   `yaml:"mouse"`
}

// Validate validates the UI configuration.
func (c *UIConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Theme, validation.Required, validation.In(ThemeClassic, ThemeNeon, ThemeMono)),
	)
}

// AnimationConfig tunes the modal spring.
//
// Remeasure makes the modal origin follow terminal resizes. When false the
// viewport measured at startup is used for the whole session.
type AnimationConfig struct {
	Tension   float64 `yaml:"tension"`
	Friction  float64 `yaml:"friction"`
	FPS       int     `yaml:"fps"`
	Remeasure bool    `yaml:"remeasure"`
}

// Validate validates the animation configuration.
func (c *AnimationConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Tension, validation.Required, validation.Min(1.0)),
		validation.Field(&c.Friction, validation.Required, validation.Min(1.0)),
		validation.Field(&c.FPS, validation.Required, validation.Min(1), validation.Max(240)),
	)
}

// Spring returns the spring parameters for the animator.
func (c AnimationConfig) Spring() anim.SpringConfig {
	return anim.SpringConfig{Tension: c.Tension, Friction: c.Friction, FPS: c.FPS}
}

// AssetsConfig points at optional asset directories.
type AssetsConfig struct {
	AudioDir string `yaml:"audio_dir"`
}

// DeckConfig selects the starting deck. An empty Seed uses the built-in deck.
type DeckConfig struct {
	Seed string `yaml:"seed"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	sp := anim.DefaultSpring()
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		UI: UIConfig{
			Theme: ThemeClassic,
			Mouse: true,
		},
		Animation: AnimationConfig{
			Tension:   sp.Tension,
			Friction:  sp.Friction,
			FPS:       sp.FPS,
			Remeasure: true,
		},
	}
}

// Load reads filename over target with environment variable expansion and
// validates the result.
func Load(filename string, target *Config) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), target); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}
	if err := target.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// LoadOptional is Load, except that a missing file leaves the defaults in
// place. Defaults are still validated.
func LoadOptional(filename string, target *Config) error {
	if filename == "" {
		return target.Validate()
	}
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return target.Validate()
	}
	return Load(filename, target)
}
