// internal/tui/drawing.go
package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// DrawText draws text from x on row y, clipped at maxX, and returns the next column.
// Widths are measured per grapheme cluster.
func DrawText(screen tcell.Screen, x, y, maxX int, text string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusterWidth := gr.Width()
		if x+clusterWidth > maxX {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			screen.SetContent(x, y, runes[0], runes[1:], style)
		}
		x += clusterWidth
	}
	return x
}

// DrawTextRight draws text so that it ends at maxX, never starting before minX.
func DrawTextRight(screen tcell.Screen, minX, y, maxX int, text string, style tcell.Style) {
	x := maxX - uniseg.StringWidth(text)
	if x < minX {
		x = minX
	}
	DrawText(screen, x, y, maxX, text, style)
}

// TextWidth returns the display width of text.
func TextWidth(text string) int {
	return uniseg.StringWidth(text)
}

// Truncate cuts text to at most width columns.
func Truncate(text string, width int) string {
	if uniseg.StringWidth(text) <= width {
		return text
	}
	out := make([]byte, 0, len(text))
	used := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		if used+gr.Width() > width {
			break
		}
		used += gr.Width()
		out = append(out, gr.Bytes()...)
	}
	return string(out)
}

// Fill paints the rectangle with spaces in style.
func Fill(screen tcell.Screen, x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// DrawBox draws a single-line border around the rectangle with title on the top edge.
func DrawBox(screen tcell.Screen, x, y, w, h int, title string, style tcell.Style) {
	if w < 2 || h < 2 {
		return
	}
	right, bottom := x+w-1, y+h-1
	for col := x + 1; col < right; col++ {
		screen.SetContent(col, y, tcell.RuneHLine, nil, style)
		screen.SetContent(col, bottom, tcell.RuneHLine, nil, style)
	}
	for row := y + 1; row < bottom; row++ {
		screen.SetContent(x, row, tcell.RuneVLine, nil, style)
		screen.SetContent(right, row, tcell.RuneVLine, nil, style)
	}
	screen.SetContent(x, y, tcell.RuneULCorner, nil, style)
	screen.SetContent(right, y, tcell.RuneURCorner, nil, style)
	screen.SetContent(x, bottom, tcell.RuneLLCorner, nil, style)
	screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
	if title != "" {
		DrawText(screen, x+2, y, right-1, title, style)
	}
}
