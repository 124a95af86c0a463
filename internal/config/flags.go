// internal/config/flags.go
package config

import (
	"fmt"
	"strings"

	"github.com/bethropolis/lazyhex/internal/logger"
)

// FlagSet is the subset of a pflag/cobra flag set used to define and query flags.
type FlagSet interface {
	StringVar(p *string, name, value, usage string)
	IntVar(p *int, name string, value int, usage string)
	BoolVar(p *bool, name string, value bool, usage string)
	Changed(name string) bool
}

// Flags holds values parsed from command-line flags.
type Flags struct {
	ConfigFilePath  string
	LogLevel        string
	LogFilePath     string
	Page            int
	Endian          string
	OnDelete        string
	EmptyValue      int
	Script          string
	Theme           string
	EnableTags      string
	DisableTags     string
	SystemClipboard bool

	changed func(string) bool
}

// DefineFlags registers the flags on fs.
func (f *Flags) DefineFlags(fs FlagSet) {
	fs.StringVar(&f.ConfigFilePath, "config", "", fmt.Sprintf("Path to TOML configuration file (default <config dir>/%s/%s)", AppName, DefaultConfigFileName))
	fs.StringVar(&f.LogLevel, "loglevel", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFilePath, "logfile", "", "Path to write log file (use '-' for stderr)")
	fs.IntVar(&f.Page, "page", 0, "Bytes moved by page up/down")
	fs.StringVar(&f.Endian, "endian", "", "Byte order for the inspector (big, little)")
	fs.StringVar(&f.OnDelete, "on-delete", "", "How script highlights follow edits (update, reload)")
	fs.IntVar(&f.EmptyValue, "empty-value", 0, "Byte value used for inserted bytes")
	fs.StringVar(&f.Script, "script", "", "Path to the Lua extension script")
	fs.StringVar(&f.Theme, "theme", "", "Path to a TOML theme file")
	fs.StringVar(&f.EnableTags, "log-tags", "", "Comma-separated list of log tags to enable")
	fs.StringVar(&f.DisableTags, "log-disable-tags", "", "Comma-separated list of log tags to disable")
	fs.BoolVar(&f.SystemClipboard, "system-clipboard", SystemClipboard, "Mirror yanks to the system clipboard")
	f.changed = fs.Changed
}

func (f *Flags) isSet(name string) bool {
	return f.changed != nil && f.changed(name)
}

func (f *Flags) applyScriptPath(cfg *Config) {
	if f.isSet("script") {
		cfg.Editor.Script = f.Script
	}
}

// ApplyOverrides updates cfg with the flags that were set on the command line.
func (f *Flags) ApplyOverrides(cfg *Config) {
	apply := func(name string, fn func()) {
		if f.isSet(name) {
			logger.DebugTagf("config", "Applying flag override: %s", name)
			fn()
		}
	}
	apply("loglevel", func() { cfg.Logger.LogLevel = f.LogLevel })
	apply("logfile", func() { cfg.Logger.LogFilePath = f.LogFilePath })
	apply("page", func() { cfg.Editor.Page = f.Page })
	apply("endian", func() { cfg.Editor.Endian = f.Endian })
	apply("on-delete", func() { cfg.Editor.OnDelete = f.OnDelete })
	apply("empty-value", func() { cfg.Editor.EmptyValue = f.EmptyValue })
	apply("script", func() { cfg.Editor.Script = f.Script })
	apply("theme", func() { cfg.Editor.Theme = f.Theme })
	apply("system-clipboard", func() { cfg.Editor.SystemClipboard = f.SystemClipboard })
	apply("log-tags", func() { cfg.Logger.EnabledTags = splitCommaList(f.EnableTags) })
	apply("log-disable-tags", func() { cfg.Logger.DisabledTags = splitCommaList(f.DisableTags) })
}

func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
