package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bethropolis/lazyhex/internal/logger"
	"github.com/bethropolis/lazyhex/internal/script"
)

// LoadOptions controls where configuration comes from.
type LoadOptions struct {
	// ConfigFilePath overrides the default TOML location.
	ConfigFilePath string
	// Flags holds command-line overrides; nil means none.
	Flags *Flags
	// SkipScript disables loading the extension script.
	SkipScript bool
}

// LoadConfig builds the configuration in order: defaults, TOML file,
// extension script, command-line flags, then validation.
// The returned extension is nil when no script was found.
func LoadConfig(opts LoadOptions) (*Config, *script.Extension, error) {
	cfg := NewDefaultConfig()

	path := opts.ConfigFilePath
	if path == "" {
		if dir := ConfigDir(); dir != "" {
			path = filepath.Join(dir, DefaultConfigFileName)
		}
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, nil, err
		}
	}

	if opts.Flags != nil {
		opts.Flags.applyScriptPath(cfg)
	}

	var ext *script.Extension
	if !opts.SkipScript {
		var err error
		ext, err = loadScript(cfg.ScriptCandidates(), cfg.Editor.Script != "")
		if err != nil {
			return nil, nil, err
		}
		if ext != nil {
			cfg.ApplyScript(ext.Settings())
		}
	}

	if opts.Flags != nil {
		opts.Flags.ApplyOverrides(cfg)
	}

	if cfg.Logger.LogFilePath == "" {
		if dir := ConfigDir(); dir != "" {
			cfg.Logger.LogFilePath = filepath.Join(dir, DefaultLogFileName)
		}
	}

	if err := cfg.Validate(); err != nil {
		if ext != nil {
			ext.Close()
		}
		return nil, nil, err
	}
	return cfg, ext, nil
}

// loadScript runs the first existing candidate. When required is set the
// single candidate must exist.
func loadScript(candidates []string, required bool) (*script.Extension, error) {
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err != nil {
			if errors.Is(err, os.ErrNotExist) && !required {
				continue
			}
			return nil, fmt.Errorf("config: script '%s': %w", candidate, err)
		}
		ext, err := script.LoadFile(candidate)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		return ext, nil
	}
	logger.Debugf("Config: no extension script found in %v", candidates)
	return nil, nil
}
