package logger

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, InitWriter(Config{LogLevel: "warn"}, &buf))
	t.Cleanup(Close)

	Infof("quiet %d", 1)
	Warnf("loud %d", 2)

	out := buf.String()
	assert.NotContains(t, out, "quiet 1")
	assert.Contains(t, out, "loud 2")
	assert.Contains(t, out, "WARN")
}

func TestTagFiltering(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, InitWriter(Config{LogLevel: "debug", DisabledTags: []string{"Script"}}, &buf))
	t.Cleanup(Close)

	DebugTagf("script", "dropped")
	DebugTagf("history", "kept")
	Debugf("untagged")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
	assert.Contains(t, out, "untagged")
}

func TestEnabledTagsDropUntagged(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, InitWriter(Config{LogLevel: "debug", EnabledTags: []string{"history"}}, &buf))
	t.Cleanup(Close)

	Debugf("untagged")
	DebugTagf("history", "tagged")

	out := buf.String()
	assert.NotContains(t, out, "untagged")
	assert.Contains(t, out, "tagged")
}

func TestPackageFiltering(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, InitWriter(Config{LogLevel: "info", DisabledPackages: []string{"logger"}}, &buf))
	t.Cleanup(Close)

	Infof("from this package")
	assert.Empty(t, buf.String())
}

func TestInitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "lazyhex.log")
	require.NoError(t, Init(Config{LogLevel: "info", LogFilePath: path}))
	Infof("written")
	Close()

	assert.FileExists(t, path)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "debug", ParseLevel("DEBUG").String())
	assert.Equal(t, "warn", ParseLevel("warning").String())
	assert.Equal(t, "info", ParseLevel("bogus").String())
}
