package script

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, code string) *Extension {
	t.Helper()
	ext, err := LoadString(code, t.Name())
	require.NoError(t, err)
	t.Cleanup(ext.Close)
	return ext
}

func TestReturnedTableSettings(t *testing.T) {
	ext := load(t, `
return {
  page = 512,
  endian = "little",
  empty_value = 255,
  on_delete = "update",
  highlight = function(buf) end,
}`)
	s := ext.Settings()
	require.NotNil(t, s.Page)
	assert.Equal(t, 512, *s.Page)
	assert.Equal(t, "little", *s.Endian)
	assert.Equal(t, 255, *s.EmptyValue)
	assert.Equal(t, "update", *s.OnDelete)
	assert.True(t, ext.HasCallback())
}

func TestBadSettingType(t *testing.T) {
	_, err := LoadString(`return { page = "big" }`, "bad")
	assert.Error(t, err)
}

func TestGlobalHighlightFunction(t *testing.T) {
	ext := load(t, `
function highlight(buf)
  buf.register(0, 1, "red", "white", "magic")
end`)
	set, err := ext.Highlight(context.Background(), []byte{0x7f, 0x45, 0x4c})
	require.NoError(t, err)
	all := set.All()
	require.Len(t, all, 1)
	assert.Equal(t, 0, all[0].Start)
	assert.Equal(t, 1, all[0].End)
	assert.Equal(t, tcell.ColorRed, all[0].Background)
	assert.Equal(t, tcell.ColorWhite, all[0].Foreground)
	assert.Equal(t, "magic", all[0].Label)
}

func TestReadFunctions(t *testing.T) {
	ext := load(t, `
return { highlight = function(buf)
  if buf:read(0, 2) ~= "\18\52" then error("read") end
  if buf.read_be(0, 2) ~= 0x1234 then error("read_be") end
  if buf:read_le(0, 2) ~= 0x3412 then error("read_le") end
  if buf.read_be(2) ~= 0x56 then error("default end") end
  if buf.len() ~= 3 then error("len") end
  buf:register(2)
end }`)
	set, err := ext.Highlight(context.Background(), []byte{0x12, 0x34, 0x56})
	require.NoError(t, err)
	require.Equal(t, 1, set.Len())
	assert.Equal(t, 2, set.All()[0].End)
}

func TestFailedPassIsEmpty(t *testing.T) {
	cases := map[string]string{
		"read past end":     `buf.read(0, 10)`,
		"start after end":   `buf.read(2, 1)`,
		"wide integer":      `buf.read_be(0, 9)`,
		"register past end": `buf.register(0, 3)`,
		"bad color":         `buf.register(0, 0, "nope")`,
		"script error":      `error("boom")`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			ext := load(t, "function highlight(buf)\n buf.register(0, 0)\n "+body+"\nend")
			set, err := ext.Highlight(context.Background(), []byte{1, 2, 3})
			assert.Error(t, err)
			assert.Zero(t, set.Len(), "partial results must be discarded")
		})
	}
}

func TestNoCallback(t *testing.T) {
	ext := load(t, `return { page = 16 }`)
	assert.False(t, ext.HasCallback())
	_, err := ext.Highlight(context.Background(), []byte{0})
	assert.ErrorIs(t, err, ErrNoCallback)
}

func TestSandbox(t *testing.T) {
	ext := load(t, `
function highlight(buf)
  if os ~= nil or io ~= nil or dofile ~= nil or loadstring ~= nil then error("unsafe") end
end`)
	_, err := ext.Highlight(context.Background(), []byte{0})
	assert.NoError(t, err)
}

func TestTimeout(t *testing.T) {
	ext, err := LoadString(`function highlight(buf) while true do end end`, "loop", WithTimeout(50*time.Millisecond))
	require.NoError(t, err)
	defer ext.Close()

	set, err := ext.Highlight(context.Background(), []byte{0})
	assert.Error(t, err)
	assert.Zero(t, set.Len())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.lua")
	require.NoError(t, os.WriteFile(path, []byte(`return { endian = "b" }`), 0o644))
	ext, err := LoadFile(path)
	require.NoError(t, err)
	defer ext.Close()
	assert.Equal(t, "b", *ext.Settings().Endian)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.lua"))
	assert.Error(t, err)
}

func TestClosed(t *testing.T) {
	ext, err := LoadString(`function highlight(buf) end`, "closed")
	require.NoError(t, err)
	ext.Close()
	_, err = ext.Highlight(context.Background(), []byte{0})
	assert.ErrorIs(t, err, ErrClosed)
}
