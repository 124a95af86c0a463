package render

import "github.com/bethropolis/lazyhex/internal/core/cursor"

const (
	// IndexWidth is the offset column, "0x0000000" plus a gap.
	IndexWidth = 11
	// HexWidth holds 16 pairs, their separators and the mid-row gap.
	HexWidth = cursor.BytesPerRow*3 + 1
	// ASCIIWidth holds one column per byte.
	ASCIIWidth = cursor.BytesPerRow
	// MainWidth is the width of index, hex and ascii columns with gaps.
	MainWidth = IndexWidth + HexWidth + 1 + ASCIIWidth + 1
	// SideWidth is the width of the info and highlights panels.
	SideWidth = 36
	// HeaderHeight is the column header above the rows.
	HeaderHeight = 1
	// StatusHeight is the status line below the rows.
	StatusHeight = 1
)

// ViewRows returns how many byte rows fit on a screen of the given height.
func ViewRows(height int) int {
	if rows := height - HeaderHeight - StatusHeight; rows > 0 {
		return rows
	}
	return 0
}

// hexColumn returns the x offset of byte column col inside the hex area.
func hexColumn(col int) int {
	x := col * 3
	if col >= cursor.BytesPerRow/2 {
		x++
	}
	return x
}

// ShowSidePanel reports whether the info panels fit next to the main area.
func ShowSidePanel(width int) bool {
	return width >= MainWidth+SideWidth
}
