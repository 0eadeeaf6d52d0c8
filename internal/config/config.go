// Package config reads runtime settings from the environment.
package config

import (
	"fmt"
	"image/color"

	"matchline/internal/render"
	"matchline/pkg/colorutil"

	"github.com/caarlos0/env/v11"
)

// Store kinds accepted by MATCHLINE_STORE.
const (
	StorePrefs  = "prefs"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// Config holds the settings shared by the desktop app and the CLI.
type Config struct {
	QuizPath   string `env:"MATCHLINE_QUIZ"`
	Store      string `env:"MATCHLINE_STORE" envDefault:"prefs"`
	DBPath     string `env:"MATCHLINE_DB" envDefault:"matchline.db"`
	StorageKey string `env:"MATCHLINE_STORAGE_KEY" envDefault:"ANSWERS"`

	StrokeWidth    float64 `env:"MATCHLINE_STROKE_WIDTH" envDefault:"2"`
	StrokeColor    string  `env:"MATCHLINE_STROKE_COLOR" envDefault:"blue"`
	CorrectColor   string  `env:"MATCHLINE_CORRECT_COLOR" envDefault:"blue"`
	IncorrectColor string  `env:"MATCHLINE_INCORRECT_COLOR" envDefault:"red"`

	HotReload bool `env:"MATCHLINE_HOT_RELOAD" envDefault:"true"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the process environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// LoadFrom parses the given variables instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks the store kind and the stroke settings.
func (c Config) Validate() error {
	switch c.Store {
	case StorePrefs, StoreSQLite, StoreMemory:
	default:
		return fmt.Errorf("unknown store %q (want %s, %s or %s)", c.Store, StorePrefs, StoreSQLite, StoreMemory)
	}
	if c.StorageKey == "" {
		return fmt.Errorf("storage key is required")
	}
	_, err := c.Style()
	return err
}

// Style builds the render style from the stroke settings.
func (c Config) Style() (render.Style, error) {
	if c.StrokeWidth <= 0 {
		return render.Style{}, fmt.Errorf("stroke width %v must be positive", c.StrokeWidth)
	}
	style := render.Style{Width: c.StrokeWidth}
	for _, f := range []struct {
		name  string
		value string
		dst   *color.Color
	}{
		{"stroke", c.StrokeColor, &style.Stroke},
		{"correct", c.CorrectColor, &style.Correct},
		{"incorrect", c.IncorrectColor, &style.Incorrect},
	} {
		col, err := colorutil.Parse(f.value)
		if err != nil {
			return render.Style{}, fmt.Errorf("%s color: %w", f.name, err)
		}
		*f.dst = col
	}
	return style, nil
}
