package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/lazyhex/internal/compare"
	"github.com/bethropolis/lazyhex/internal/highlight"
	"github.com/bethropolis/lazyhex/internal/theme"
	"github.com/bethropolis/lazyhex/internal/tui"
)

// DiffPanelWidth is the width of the bit comparison panel.
const DiffPanelWidth = 14

// diffSource exposes one side of a comparison to the grid.
type diffSource struct {
	cells      []compare.Cell
	highlights *highlight.Set
	current    int
	theme      *theme.Theme
}

func (s *diffSource) Len() int { return len(s.cells) }

func (s *diffSource) Cell(i int) (byte, bool) { return s.cells[i].Value, s.cells[i].Present }

func (s *diffSource) Style(i int, base tcell.Style) tcell.Style {
	style := base
	for _, h := range s.highlights.At(i) {
		style = h.Style(style)
	}
	if i == s.current {
		style = s.theme.GetStyle(theme.StyleCursor)
	}
	return style
}

func (s *diffSource) Joined(i int) bool {
	if i == s.current || i-1 == s.current {
		return false
	}
	for _, h := range s.highlights.At(i) {
		if h.Contains(i - 1) {
			return true
		}
	}
	return false
}

// DiffWidth is the width needed for both hex columns.
const DiffWidth = IndexWidth + 2*(HexWidth+1)

// Diff draws the comparison view above the status line: offsets, the old
// and new hex columns side by side, and the bit panel for the cursor.
func Diff(screen tcell.Screen, view *compare.View, th *theme.Theme) {
	width, height := screen.Size()
	tui.Fill(screen, 0, 0, width, height-StatusHeight, th.GetStyle(theme.StyleDefault))

	firstRow, rows := view.GetViewport()
	if limit := ViewRows(height); rows > limit {
		rows = limit
	}
	g := grid{screen: screen, theme: th, firstRow: firstRow, rows: rows, maxX: width}
	oldSrc := &diffSource{cells: view.Result.Old, highlights: view.Result.OldHighlights, current: view.Position(), theme: th}
	newSrc := &diffSource{cells: view.Result.New, highlights: view.Result.NewHighlights, current: view.Position(), theme: th}

	oldX := IndexWidth
	newX := oldX + HexWidth + 1
	nameStyle := th.GetStyle(theme.StyleInfoKey)
	tui.DrawText(screen, 0, 0, oldX, "old/new", nameStyle)
	g.drawHeader(oldX, 0)
	g.drawHeader(newX, 0)
	g.drawIndex(0, HeaderHeight, oldSrc.Len())
	g.drawHex(oldSrc, oldX, HeaderHeight)
	g.drawHex(newSrc, newX, HeaderHeight)

	if width >= DiffWidth+DiffPanelWidth && height-StatusHeight >= 9 {
		drawBitPanel(screen, view, th, DiffWidth, 0, DiffPanelWidth, height-StatusHeight)
	}
}

func drawBitPanel(screen tcell.Screen, view *compare.View, th *theme.Theme, x, y, w, h int) {
	border := th.GetStyle(theme.StyleBorder)
	base := th.GetStyle(theme.StyleDefault)
	tui.DrawBox(screen, x, y, w, h, " Bits ", border)

	inner := x + 2
	maxX := x + w - 1
	tui.DrawText(screen, inner, y+1, maxX, tui.Truncate(view.OldName, w-4), th.GetStyle(theme.StyleInfoKey))
	tui.DrawText(screen, inner, y+5, maxX, tui.Truncate(view.NewName, w-4), th.GetStyle(theme.StyleInfoKey))

	oldCell, newCell := view.Current()
	d := compare.CompareCells(oldCell, newCell)
	tui.DrawText(screen, inner, y+2, maxX, d.Old, base)
	tui.DrawText(screen, inner, y+4, maxX, d.New, base)

	switch {
	case !oldCell.Present:
		tui.DrawText(screen, inner, y+3, maxX, d.Marker(), th.GetStyle(theme.StyleDiffAdded))
	case !newCell.Present:
		tui.DrawText(screen, inner, y+3, maxX, d.Marker(), th.GetStyle(theme.StyleDiffDeleted))
	default:
		for i, state := range d.Bits {
			ch, style := ' ', base
			switch state {
			case compare.BitSet:
				ch, style = '1', th.GetStyle(theme.StyleDiffAdded)
			case compare.BitCleared:
				ch, style = '0', th.GetStyle(theme.StyleDiffDeleted)
			}
			screen.SetContent(inner+i, y+3, ch, nil, style)
		}
	}

	summary := view.Result.Summary()
	for i, part := range strings.Split(summary, ", ") {
		if y+7+i >= y+h-1 {
			break
		}
		tui.DrawText(screen, inner, y+7+i, maxX, part, base)
	}
}
