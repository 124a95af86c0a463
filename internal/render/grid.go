package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/lazyhex/internal/core/cursor"
	"github.com/bethropolis/lazyhex/internal/theme"
	"github.com/bethropolis/lazyhex/internal/tui"
)

// cellSource describes the bytes shown by a grid.
type cellSource interface {
	Len() int
	// Cell returns the byte at i and whether it exists (padding does not).
	Cell(i int) (byte, bool)
	// Style returns the style for the byte at i given the base style.
	Style(i int, base tcell.Style) tcell.Style
	// Joined reports whether the gap before i shares i's style.
	Joined(i int) bool
}

// grid draws rows of a cellSource.
type grid struct {
	screen   tcell.Screen
	theme    *theme.Theme
	firstRow int
	rows     int
	maxX     int
}

func (g grid) drawHeader(x, y int) {
	style := g.theme.GetStyle(theme.StyleIndex)
	for col := 0; col < cursor.BytesPerRow; col++ {
		tui.DrawText(g.screen, x+hexColumn(col), y, g.maxX, fmt.Sprintf("%2x", col), style)
	}
}

func (g grid) drawIndex(x, y int, total int) {
	style := g.theme.GetStyle(theme.StyleIndex)
	for r := 0; r < g.rows; r++ {
		offset := (g.firstRow + r) * cursor.BytesPerRow
		if offset >= total {
			break
		}
		tui.DrawText(g.screen, x, y+r, g.maxX, fmt.Sprintf("%#09x", offset), style)
	}
}

func (g grid) baseHexStyle(v byte, present bool) tcell.Style {
	switch {
	case !present:
		return g.theme.GetStyle(theme.StylePadding)
	case v == 0:
		return g.theme.GetStyle(theme.StyleHexZero)
	default:
		return g.theme.GetStyle(theme.StyleHex)
	}
}

func (g grid) drawHex(src cellSource, x, y int) {
	n := src.Len()
	for r := 0; r < g.rows; r++ {
		for col := 0; col < cursor.BytesPerRow; col++ {
			i := (g.firstRow+r)*cursor.BytesPerRow + col
			if i >= n {
				return
			}
			v, present := src.Cell(i)
			style := src.Style(i, g.baseHexStyle(v, present))
			text := "  "
			if present {
				text = fmt.Sprintf("%02x", v)
			}
			cx := x + hexColumn(col)
			if col > 0 && src.Joined(i) {
				for gap := x + hexColumn(col-1) + 2; gap < cx; gap++ {
					tui.DrawText(g.screen, gap, y+r, g.maxX, " ", style)
				}
			}
			tui.DrawText(g.screen, cx, y+r, g.maxX, text, style)
		}
	}
}

// asciiRune maps a byte to its ascii column rune.
func asciiRune(v byte) (rune, bool) {
	if v >= 0x20 && v < 0x7f {
		return rune(v), true
	}
	return '.', false
}

func (g grid) drawASCII(src cellSource, x, y int) {
	n := src.Len()
	for r := 0; r < g.rows; r++ {
		for col := 0; col < cursor.BytesPerRow; col++ {
			i := (g.firstRow+r)*cursor.BytesPerRow + col
			if i >= n {
				return
			}
			v, present := src.Cell(i)
			ch, printable := asciiRune(v)
			base := g.theme.GetStyle(theme.StyleASCII)
			switch {
			case !present:
				ch = ' '
				base = g.theme.GetStyle(theme.StylePadding)
			case !printable:
				base = g.theme.GetStyle(theme.StyleASCIIControl)
			}
			if x+col < g.maxX {
				g.screen.SetContent(x+col, y+r, ch, nil, src.Style(i, base))
			}
		}
	}
}
