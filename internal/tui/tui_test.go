package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/lazyhex/internal/theme"
)

func newTUI(t *testing.T, w, h int) (*TUI, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	ui, err := NewWithScreen(sim, &theme.HexDark)
	require.NoError(t, err)
	sim.SetSize(w, h)
	t.Cleanup(ui.Close)
	return ui, sim
}

func runeAt(sim tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := sim.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func TestDrawTextClipsWideClusters(t *testing.T) {
	ui, sim := newTUI(t, 5, 1)
	next := DrawText(ui.GetScreen(), 0, 0, 5, "ab日本", tcell.StyleDefault)
	ui.Show()
	assert.Equal(t, 4, next)
	assert.Equal(t, '日', runeAt(sim, 2, 0))
}

func TestDrawTextRight(t *testing.T) {
	ui, sim := newTUI(t, 10, 1)
	DrawTextRight(ui.GetScreen(), 0, 0, 10, "end", tcell.StyleDefault)
	ui.Show()
	assert.Equal(t, 'e', runeAt(sim, 7, 0))
	assert.Equal(t, 'd', runeAt(sim, 9, 0))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 10))
	assert.Equal(t, "he", Truncate("hello", 2))
	assert.Equal(t, "a", Truncate("a日", 2))
	assert.Equal(t, 3, TextWidth("a日"))
}

func TestDrawBox(t *testing.T) {
	ui, sim := newTUI(t, 12, 4)
	DrawBox(ui.GetScreen(), 0, 0, 12, 4, " Info ", tcell.StyleDefault)
	ui.Show()
	assert.Equal(t, tcell.RuneULCorner, runeAt(sim, 0, 0))
	assert.Equal(t, tcell.RuneLRCorner, runeAt(sim, 11, 3))
	assert.Equal(t, 'I', runeAt(sim, 3, 0))
	assert.Equal(t, tcell.RuneVLine, runeAt(sim, 0, 1))
}
