// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/bethropolis/lazyhex/internal/highlight"
	"github.com/bethropolis/lazyhex/internal/logger"
	"github.com/bethropolis/lazyhex/internal/script"
	"github.com/bethropolis/lazyhex/internal/types"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"`
	Editor EditorConfig  `toml:"editor"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	Page            int    `toml:"page"`
	Endian          string `toml:"endian"`
	EmptyValue      int    `toml:"empty_value"`
	OnDelete        string `toml:"on_delete"`
	Script          string `toml:"script"`
	Theme           string `toml:"theme"`
	ScrollOff       int    `toml:"scroll_off"`
	SystemClipboard bool   `toml:"system_clipboard"`

	endian   types.Endian
	onDelete highlight.Policy
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			LogLevel: "info",
		},
		Editor: EditorConfig{
			Page:            DefaultPage,
			Endian:          DefaultEndian,
			EmptyValue:      0,
			OnDelete:        DefaultOnDelete,
			ScrollOff:       DefaultScrollOff,
			SystemClipboard: SystemClipboard,
		},
	}
}

// ConfigDir returns <UserConfigDir>/lazyhex, or "" when it cannot be determined.
func ConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName)
}

// loadFromFile decodes filePath over cfg. A missing file is not an error.
func loadFromFile(cfg *Config, filePath string) error {
	_, err := os.Stat(filePath)
	if errors.Is(err, os.ErrNotExist) {
		logger.Debugf("Config file not found: %s", filePath)
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, undecoded)
	}
	return nil
}

// ApplyScript copies the scalar settings returned by the extension script.
func (c *Config) ApplyScript(s script.Settings) {
	if s.Page != nil {
		c.Editor.Page = *s.Page
	}
	if s.Endian != nil {
		c.Editor.Endian = *s.Endian
	}
	if s.EmptyValue != nil {
		c.Editor.EmptyValue = *s.EmptyValue
	}
	if s.OnDelete != nil {
		c.Editor.OnDelete = *s.OnDelete
	}
}

// Validate checks the enumerated and ranged settings. Invalid values are fatal.
func (c *Config) Validate() error {
	var err error
	if c.Editor.endian, err = types.ParseEndian(c.Editor.Endian); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Editor.onDelete, err = highlight.ParsePolicy(c.Editor.OnDelete); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Editor.Page <= 0 {
		return fmt.Errorf("config: page must be positive, got %d", c.Editor.Page)
	}
	if c.Editor.EmptyValue < 0 || c.Editor.EmptyValue > 0xff {
		return fmt.Errorf("config: empty_value must be a byte (0-255), got %d", c.Editor.EmptyValue)
	}
	if c.Editor.ScrollOff < 0 {
		c.Editor.ScrollOff = DefaultScrollOff
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = "info"
	}
	return nil
}

// EndianValue returns the validated byte order.
func (e EditorConfig) EndianValue() types.Endian {
	return e.endian
}

// OnDeleteValue returns the validated highlight policy.
func (e EditorConfig) OnDeleteValue() highlight.Policy {
	return e.onDelete
}

// ScriptCandidates lists where the extension script is looked for, in order.
func (c *Config) ScriptCandidates() []string {
	if c.Editor.Script != "" {
		return []string{expandHome(c.Editor.Script)}
	}
	candidates := []string{DefaultScriptFileName}
	if dir := ConfigDir(); dir != "" {
		candidates = append(candidates, filepath.Join(dir, DefaultScriptFileName))
	}
	return candidates
}

func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
