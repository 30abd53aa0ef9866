// Package config provides configuration types and defaults for the synedit
// showcase.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ionut-t/synedit/ui"
)

// Presets lists the accepted values of EditorConfig.Preset.
var Presets = []string{"default", "simple", "outlined", "minimal"}

// Config holds all configuration options for the showcase.
type Config struct {
	File   string       `mapstructure:"file"`
	Watch  bool         `mapstructure:"watch"` // reload File when it changes on disk
	Editor EditorConfig `mapstructure:"editor"`
	Debug  DebugConfig  `mapstructure:"debug"`
}

// EditorConfig configures the editor widget.
type EditorConfig struct {
	Theme          string  `mapstructure:"theme"`
	Extension      string  `mapstructure:"extension"` // inferred from File when empty
	Preset         string  `mapstructure:"preset"`
	Height         float32 `mapstructure:"height"`      // dp
	LineHeight     float32 `mapstructure:"line_height"` // dp
	SelectionColor string  `mapstructure:"selection_color"`
}

// DebugConfig controls the debug log.
type DebugConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	LogPath string `mapstructure:"log_path"`
}

// Defaults returns the showcase's built in configuration.
func Defaults() Config {
	return Config{
		Watch: true,
		Editor: EditorConfig{
			Theme:      "base16-eighties.dark",
			Extension:  "rs",
			Preset:     "default",
			Height:     300,
			LineHeight: 22,
		},
		Debug: DebugConfig{
			LogPath: "debug.log",
		},
	}
}

// Validate checks the configuration for errors. Empty values fall back to
// defaults and are accepted.
func Validate(c Config) error {
	if err := ValidateEditor(c.Editor); err != nil {
		return fmt.Errorf("editor: %w", err)
	}
	return nil
}

// ValidateEditor checks the editor section.
func ValidateEditor(e EditorConfig) error {
	if e.Preset != "" && !isPreset(e.Preset) {
		return fmt.Errorf("preset must be one of %s, got %q", strings.Join(Presets, ", "), e.Preset)
	}
	if e.Height < 0 {
		return fmt.Errorf("height must not be negative, got %v", e.Height)
	}
	if e.LineHeight < 0 {
		return fmt.Errorf("line_height must not be negative, got %v", e.LineHeight)
	}
	if e.SelectionColor != "" {
		if _, err := ui.ParseHex(e.SelectionColor); err != nil {
			return fmt.Errorf("selection_color: %w", err)
		}
	}
	return nil
}

func isPreset(name string) bool {
	for _, p := range Presets {
		if p == name {
			return true
		}
	}
	return false
}

// ExtensionFor returns the extension the editor should highlight with: the
// file's own when it has one, otherwise the configured one.
func (c Config) ExtensionFor() string {
	if ext := strings.TrimPrefix(filepath.Ext(c.File), "."); ext != "" {
		return ext
	}
	return c.Editor.Extension
}
