package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/lazyhex/internal/buffer"
	"github.com/bethropolis/lazyhex/internal/compare"
	"github.com/bethropolis/lazyhex/internal/core"
	"github.com/bethropolis/lazyhex/internal/theme"
	"github.com/bethropolis/lazyhex/internal/types"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func textAt(s tcell.SimulationScreen, x, y, n int) string {
	cells, w, _ := s.GetContents()
	var sb strings.Builder
	for i := 0; i < n; i++ {
		c := cells[y*w+x+i]
		if len(c.Runes) == 0 {
			sb.WriteByte(' ')
			continue
		}
		sb.WriteString(string(c.Runes))
	}
	return sb.String()
}

func styleAt(s tcell.SimulationScreen, x, y int) tcell.Style {
	cells, w, _ := s.GetContents()
	return cells[y*w+x].Style
}

func newEditor(data []byte, rows int) *core.Editor {
	ed := core.NewEditor(buffer.NewSliceBuffer(data), nil, core.Options{})
	ed.SetViewSize(rows)
	return ed
}

func TestHexColumn(t *testing.T) {
	assert.Equal(t, 0, hexColumn(0))
	assert.Equal(t, 21, hexColumn(7))
	assert.Equal(t, 25, hexColumn(8))
	assert.Equal(t, HexWidth-2, hexColumn(15))
}

func TestViewRows(t *testing.T) {
	assert.Equal(t, 8, ViewRows(10))
	assert.Equal(t, 0, ViewRows(1))
}

func TestEditorRows(t *testing.T) {
	data := []byte("Hello, hex world\x00\x01")
	s := newScreen(t, MainWidth, 5)
	ed := newEditor(data, ViewRows(5))

	Editor(s, ed, &theme.HexDark)
	s.Show()

	assert.Equal(t, " 0", textAt(s, IndexWidth, 0, 2))
	assert.Equal(t, "0x0000000", textAt(s, 0, 1, 9))
	assert.Equal(t, "0x0000010", textAt(s, 0, 2, 9))
	assert.Equal(t, "48 65", textAt(s, IndexWidth, 1, 5))
	assert.Equal(t, "00 01", textAt(s, IndexWidth, 2, 5))
	asciiX := IndexWidth + HexWidth + 1
	assert.Equal(t, "Hello, hex world", textAt(s, asciiX, 1, 16))
	assert.Equal(t, "..", textAt(s, asciiX, 2, 2))
	// No third row of data.
	assert.Equal(t, "         ", textAt(s, 0, 3, 9))

	assert.Equal(t, theme.HexDark.GetStyle(theme.StyleCursor), styleAt(s, IndexWidth, 1))
	assert.Equal(t, theme.HexDark.GetStyle(theme.StyleHex), styleAt(s, IndexWidth+3, 1))
}

func TestEditorSelectionAndMarks(t *testing.T) {
	ed := newEditor(make([]byte, 32), 4)
	ed.Goto(2)
	ed.SetMode(types.ModeVisual)
	ed.Move(2)
	ed.ToggleMark()
	ed.SetMode(types.ModeNormal)
	ed.Goto(20)
	ed.SetMode(types.ModeVisual)
	ed.Move(1)

	s := newScreen(t, MainWidth, 6)
	Editor(s, ed, &theme.HexDark)
	s.Show()

	mark := ed.Highlights().All()[0]
	markStyle := mark.Style(theme.HexDark.GetStyle(theme.StyleHexZero))
	assert.Equal(t, markStyle, styleAt(s, IndexWidth+hexColumn(3), 1))
	// The gap between two marked bytes carries the mark style too.
	assert.Equal(t, markStyle, styleAt(s, IndexWidth+hexColumn(3)-1, 1))

	assert.Equal(t, theme.HexDark.GetStyle(theme.StyleSelection), styleAt(s, IndexWidth+hexColumn(4), 2))
	assert.Equal(t, theme.HexDark.GetStyle(theme.StyleCursor), styleAt(s, IndexWidth+hexColumn(5), 2))
}

func TestEditorPendingNibble(t *testing.T) {
	ed := newEditor([]byte{0, 0}, 2)
	ed.SetMode(types.ModeReplace)
	require.True(t, ed.Input('c'))

	s := newScreen(t, MainWidth, 4)
	Editor(s, ed, &theme.HexDark)
	s.Show()
	assert.Equal(t, "c_", textAt(s, IndexWidth, 1, 2))
}

func TestEditorSidePanel(t *testing.T) {
	ed := newEditor([]byte{0xde, 0xad}, 20)
	w := MainWidth + SideWidth
	s := newScreen(t, w, 22)
	Editor(s, ed, &theme.HexDark)
	s.Show()

	assert.Equal(t, " Info ", textAt(s, MainWidth+2, 0, 6))
	assert.Equal(t, "endian  : big", textAt(s, MainWidth+2, 1, 13))
	assert.Equal(t, "ondelete: reload", textAt(s, MainWidth+2, 2, 16))
	assert.Equal(t, "hex     : 0xde", textAt(s, MainWidth+2, 3, 14))
}

func TestHighlightListShowsRebasedSpan(t *testing.T) {
	ed := newEditor(make([]byte, 8), 20)
	ed.Goto(2)
	ed.SetMode(types.ModeVisual)
	ed.Move(3)
	ed.ToggleMark()
	ed.SetMode(types.ModeNormal)
	ed.Goto(4)
	ed.SetMode(types.ModeVisual)
	ed.Move(3)
	ed.Delete()
	require.Equal(t, 3, ed.Selection().Current)

	s := newScreen(t, MainWidth+SideWidth, 42)
	Editor(s, ed, &theme.HexDark)
	s.Show()

	// side panel height 41: info box rows 0-19, highlights box from row 20
	assert.Equal(t, "0x2-0x3 mark", textAt(s, MainWidth+2, 21, 12))
}

func TestDiffView(t *testing.T) {
	r := compare.New([]byte{1, 2, 3}, []byte{1, 2, 3, 4})
	view := compare.NewView(r, "a.bin", "b.bin", 16, 0)
	view.SetViewSize(4)
	view.GotoEnd()

	s := newScreen(t, DiffWidth+DiffPanelWidth, 12)
	Diff(s, view, &theme.HexDark)
	s.Show()

	oldX := IndexWidth
	newX := oldX + HexWidth + 1
	assert.Equal(t, "01 02 03   ", textAt(s, oldX, 1, 11))
	assert.Equal(t, "01 02 03 04", textAt(s, newX, 1, 11))

	panelX := DiffWidth + 2
	assert.Equal(t, "a.bin", textAt(s, panelX, 1, 5))
	assert.Equal(t, " ++++++ ", textAt(s, panelX, 3, 8))
	assert.Equal(t, "00000100", textAt(s, panelX, 4, 8))
	assert.Equal(t, "+1 added", textAt(s, panelX, 7, 8))
}
