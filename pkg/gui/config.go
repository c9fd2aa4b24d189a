package gui

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config is the optional JSON configuration file. It can add themes and
// pick which one to use.
type Config struct {
	Theme  string     `json:"theme"`
	Themes []ThemeHex `json:"themes"`
}

// LoadConfig reads a JSON config file. A missing path returns the zero
// config rather than an error.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// PickTheme resolves the theme to use from the config and an optional
// command line override. The override wins; an empty selection falls back
// to the default theme.
func PickTheme(cfg Config, override string) (Theme, error) {
	want := cfg.Theme
	if override != "" {
		want = override
	}
	if want == "" {
		return ThemeBasic, nil
	}
	return ImportThemes(want, cfg.Themes)
}
