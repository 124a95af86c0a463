package logger

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap/zapcore"
)

const tagKey = "tag" // field key used for tag filtering

// filteringCore wraps a zapcore.Core and drops entries by tag or source package.
type filteringCore struct {
	zapcore.Core
	cfg *Config
	tag string // tag attached through With, if any
}

func newFilteringCore(base zapcore.Core, cfg *Config) *filteringCore {
	return &filteringCore{Core: base, cfg: cfg}
}

func (c *filteringCore) With(fields []zapcore.Field) zapcore.Core {
	tag := c.tag
	if t, ok := findTag(fields); ok {
		tag = t
	}
	return &filteringCore{Core: c.Core.With(fields), cfg: c.cfg, tag: tag}
}

func (c *filteringCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write applies the filters before handing the entry to the wrapped core.
func (c *filteringCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	if !c.allowPackage(ent.Caller) {
		return nil
	}
	tag, found := findTag(fields)
	if !found && c.tag != "" {
		tag, found = c.tag, true
	}
	if !c.allowTag(tag, found) {
		return nil
	}
	return c.Core.Write(ent, fields)
}

func (c *filteringCore) allowPackage(caller zapcore.EntryCaller) bool {
	if !caller.Defined {
		return true
	}
	pkg := strings.ToLower(filepath.Base(filepath.Dir(caller.File)))
	if foundInSet(c.cfg.disabledPackagesSet, pkg) {
		return false
	}
	if c.cfg.enabledPackagesSet != nil && !foundInSet(c.cfg.enabledPackagesSet, pkg) {
		return false
	}
	return true
}

func (c *filteringCore) allowTag(tag string, found bool) bool {
	if !found {
		// Untagged entries are dropped once an allow-list exists.
		return c.cfg.enabledTagsSet == nil
	}
	tag = strings.ToLower(tag)
	if foundInSet(c.cfg.disabledTagsSet, tag) {
		return false
	}
	if c.cfg.enabledTagsSet != nil && !foundInSet(c.cfg.enabledTagsSet, tag) {
		return false
	}
	return true
}

func findTag(fields []zapcore.Field) (string, bool) {
	for _, f := range fields {
		if f.Key == tagKey && f.Type == zapcore.StringType {
			return f.String, true
		}
	}
	return "", false
}

func foundInSet(set map[string]struct{}, key string) bool {
	if set == nil {
		return false
	}
	_, found := set[key]
	return found
}
