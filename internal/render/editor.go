// internal/render/editor.go
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/lazyhex/internal/core"
	"github.com/bethropolis/lazyhex/internal/core/cursor"
	"github.com/bethropolis/lazyhex/internal/highlight"
	"github.com/bethropolis/lazyhex/internal/inspect"
	"github.com/bethropolis/lazyhex/internal/theme"
	"github.com/bethropolis/lazyhex/internal/tui"
	"github.com/bethropolis/lazyhex/internal/types"
)

// editorSource exposes an editor's buffer to the grid.
type editorSource struct {
	data       []byte
	selection  types.Range
	current    int
	pending    int
	highlights []highlight.Highlight
	theme      *theme.Theme
}

func newEditorSource(ed *core.Editor, th *theme.Theme) *editorSource {
	src := &editorSource{
		data:       ed.GetBuffer().Bytes(),
		selection:  ed.SelectionRange(),
		current:    ed.Selection().Current,
		pending:    -1,
		highlights: ed.Highlights().All(),
		theme:      th,
	}
	if n, ok := ed.PendingNibble(); ok {
		src.pending = int(n)
	}
	return src
}

func (s *editorSource) Len() int { return len(s.data) }

func (s *editorSource) Cell(i int) (byte, bool) { return s.data[i], true }

func (s *editorSource) Style(i int, base tcell.Style) tcell.Style {
	style := base
	for _, h := range s.highlights {
		if h.Contains(i) {
			style = h.Style(style)
		}
	}
	switch {
	case i == s.current:
		style = s.theme.GetStyle(theme.StyleCursor)
	case s.selection.Contains(i):
		style = s.theme.GetStyle(theme.StyleSelection)
	}
	return style
}

func (s *editorSource) Joined(i int) bool {
	if i == s.current || i-1 == s.current {
		return false
	}
	if s.selection.Contains(i) && s.selection.Contains(i-1) {
		return true
	}
	for _, h := range s.highlights {
		if h.Contains(i) && h.Contains(i-1) {
			return true
		}
	}
	return false
}

// Editor draws everything above the status line: column header, offsets,
// hex and ascii columns, and the info and highlights panels when they fit.
func Editor(screen tcell.Screen, ed *core.Editor, th *theme.Theme) {
	width, height := screen.Size()
	tui.Fill(screen, 0, 0, width, height-StatusHeight, th.GetStyle(theme.StyleDefault))

	firstRow, rows := ed.GetViewport()
	if limit := ViewRows(height); rows > limit {
		rows = limit
	}
	g := grid{screen: screen, theme: th, firstRow: firstRow, rows: rows, maxX: width}
	src := newEditorSource(ed, th)

	hexX := IndexWidth
	asciiX := hexX + HexWidth + 1
	g.drawHeader(hexX, 0)
	g.drawIndex(0, HeaderHeight, src.Len())
	g.drawHex(src, hexX, HeaderHeight)
	g.drawASCII(src, asciiX, HeaderHeight)

	if src.pending >= 0 {
		drawPendingNibble(g, src, hexX)
	}

	if ShowSidePanel(width) {
		drawSidePanel(screen, ed, th, MainWidth, 0, SideWidth, height-StatusHeight)
	}
}

// drawPendingNibble shows the typed first digit over the cursor cell.
func drawPendingNibble(g grid, src *editorSource, hexX int) {
	row := src.current/cursor.BytesPerRow - g.firstRow
	if row < 0 || row >= g.rows {
		return
	}
	x := hexX + hexColumn(src.current%cursor.BytesPerRow)
	tui.DrawText(g.screen, x, HeaderHeight+row, g.maxX, fmt.Sprintf("%x_", src.pending), g.theme.GetStyle(theme.StyleCursor))
}

func drawSidePanel(screen tcell.Screen, ed *core.Editor, th *theme.Theme, x, y, w, h int) {
	border := th.GetStyle(theme.StyleBorder)
	infoHeight := h
	showHighlights := h >= 40
	if showHighlights {
		infoHeight = h / 2
	}

	tui.DrawBox(screen, x, y, w, infoHeight, " Info ", border)
	drawInfo(screen, ed, th, x+2, y+1, w-4, infoHeight-2)

	if showHighlights {
		tui.DrawBox(screen, x, y+infoHeight, w, h-infoHeight, " Highlights ", border)
		drawHighlightList(screen, ed, th, x+2, y+infoHeight+1, w-4, h-infoHeight-2)
	}
}

func drawInfo(screen tcell.Screen, ed *core.Editor, th *theme.Theme, x, y, w, h int) {
	keyStyle := th.GetStyle(theme.StyleInfoKey)
	valueStyle := th.GetStyle(theme.StyleInfoValue)
	maxX := x + w

	lines := []inspect.Row{
		{Name: "endian", Value: ed.Endian().String()},
		{Name: "ondelete", Value: ed.Highlights().Policy().String()},
	}
	lines = append(lines, inspect.Table(ed.GetBuffer().Bytes(), ed.Selection().Current, ed.Selection(), ed.Endian())...)
	for i, row := range lines {
		if i >= h {
			break
		}
		next := tui.DrawText(screen, x, y+i, maxX, fmt.Sprintf("%-8s: ", row.Name), keyStyle)
		tui.DrawText(screen, next, y+i, maxX, row.Value, valueStyle)
	}
}

func drawHighlightList(screen tcell.Screen, ed *core.Editor, th *theme.Theme, x, y, w, h int) {
	base := th.GetStyle(theme.StyleDefault)
	covering := highlight.NewSet(ed.Highlights().At(ed.Selection().Current)...)
	for i, hl := range covering.Sorted() {
		if i >= h {
			break
		}
		tui.DrawText(screen, x, y+i, x+w, tui.Truncate(highlightText(hl), w), hl.Style(base))
	}
}

// highlightText shows the current span, so a rebased mark reads correctly.
func highlightText(hl highlight.Highlight) string {
	span := fmt.Sprintf("%#x-%#x", hl.Start, hl.End)
	if hl.Label == "" {
		return span
	}
	return span + " " + hl.Label
}
