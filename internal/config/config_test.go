package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/lazyhex/internal/highlight"
	"github.com/bethropolis/lazyhex/internal/script"
	"github.com/bethropolis/lazyhex/internal/types"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultsValidate(t *testing.T) {
	cfg := NewDefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultPage, cfg.Editor.Page)
	assert.Equal(t, types.BigEndian, cfg.Editor.EndianValue())
	assert.Equal(t, highlight.PolicyReload, cfg.Editor.OnDeleteValue())
}

func TestLoadFromFileKeepsUnsetDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", `
[editor]
endian = "little"
empty_value = 255

[logger]
log_level = "debug"
`)
	cfg := NewDefaultConfig()
	require.NoError(t, loadFromFile(cfg, path))
	require.NoError(t, cfg.Validate())

	assert.Equal(t, types.LittleEndian, cfg.Editor.EndianValue())
	assert.Equal(t, 255, cfg.Editor.EmptyValue)
	assert.Equal(t, DefaultPage, cfg.Editor.Page)
	assert.Equal(t, "debug", cfg.Logger.LogLevel)
}

func TestLoadFromFileMissingIsNotAnError(t *testing.T) {
	cfg := NewDefaultConfig()
	assert.NoError(t, loadFromFile(cfg, filepath.Join(t.TempDir(), "nope.toml")))
}

func TestLoadFromFileSyntaxError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", "[editor\npage = ")
	assert.Error(t, loadFromFile(NewDefaultConfig(), path))
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"endian", func(c *Config) { c.Editor.Endian = "middle" }},
		{"on_delete", func(c *Config) { c.Editor.OnDelete = "sometimes" }},
		{"empty_value high", func(c *Config) { c.Editor.EmptyValue = 256 }},
		{"empty_value negative", func(c *Config) { c.Editor.EmptyValue = -1 }},
		{"page", func(c *Config) { c.Editor.Page = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestApplyScript(t *testing.T) {
	ext, err := script.LoadString(`return { page = 64, endian = "little", on_delete = "update" }`, "test")
	require.NoError(t, err)
	defer ext.Close()

	cfg := NewDefaultConfig()
	cfg.ApplyScript(ext.Settings())
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 64, cfg.Editor.Page)
	assert.Equal(t, types.LittleEndian, cfg.Editor.EndianValue())
	assert.Equal(t, highlight.PolicyUpdate, cfg.Editor.OnDeleteValue())
	assert.Equal(t, 0, cfg.Editor.EmptyValue)
}

func TestFlagOverridesOnlyChanged(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	var flags Flags
	flags.DefineFlags(fs)
	require.NoError(t, fs.Parse([]string{"--endian", "little", "--log-tags", "config, mode,"}))

	cfg := NewDefaultConfig()
	cfg.Editor.Page = 128
	flags.ApplyOverrides(cfg)

	assert.Equal(t, "little", cfg.Editor.Endian)
	assert.Equal(t, 128, cfg.Editor.Page)
	assert.Equal(t, []string{"config", "mode"}, cfg.Logger.EnabledTags)
}

func TestLoadConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	tomlPath := writeFile(t, dir, "config.toml", `
[editor]
page = 32
endian = "little"
empty_value = 1
`)
	luaPath := writeFile(t, dir, "hex.lua", `return { page = 48, empty_value = 2 }`)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	var flags Flags
	flags.DefineFlags(fs)
	require.NoError(t, fs.Parse([]string{"--script", luaPath, "--empty-value", "3", "--logfile", "-"}))

	cfg, ext, err := LoadConfig(LoadOptions{ConfigFilePath: tomlPath, Flags: &flags})
	require.NoError(t, err)
	require.NotNil(t, ext)
	defer ext.Close()

	assert.Equal(t, 48, cfg.Editor.Page)
	assert.Equal(t, types.LittleEndian, cfg.Editor.EndianValue())
	assert.Equal(t, 3, cfg.Editor.EmptyValue)
	assert.Equal(t, "-", cfg.Logger.LogFilePath)
}

func TestLoadConfigMissingExplicitScript(t *testing.T) {
	dir := t.TempDir()
	tomlPath := writeFile(t, dir, "config.toml", "[editor]\nscript = \""+filepath.Join(dir, "missing.lua")+"\"\n")

	_, _, err := LoadConfig(LoadOptions{ConfigFilePath: tomlPath})
	assert.Error(t, err)
}

func TestLoadConfigInvalidScriptSetting(t *testing.T) {
	dir := t.TempDir()
	luaPath := writeFile(t, dir, "hex.lua", `return { endian = "sideways" }`)
	tomlPath := writeFile(t, dir, "config.toml", "[editor]\nscript = \""+luaPath+"\"\n")

	_, _, err := LoadConfig(LoadOptions{ConfigFilePath: tomlPath})
	assert.Error(t, err)
}

func TestSplitCommaList(t *testing.T) {
	assert.Nil(t, splitCommaList(""))
	assert.Equal(t, []string{"a", "b"}, splitCommaList(" a ,, b "))
}
