package cursor

import "github.com/bethropolis/lazyhex/internal/logger"

// BytesPerRow is the number of bytes shown on one hex row.
const BytesPerRow = 16

// Manager keeps the visible window of rows following a byte offset.
type Manager struct {
	viewportTop int // first visible row
	viewHeight  int // visible rows
	scrollOff   int
}

// NewManager creates a viewport manager keeping scrollOff rows of context.
func NewManager(scrollOff int) *Manager {
	if scrollOff < 0 {
		scrollOff = 0
	}
	return &Manager{scrollOff: scrollOff}
}

// SetViewSize updates the number of visible rows.
func (m *Manager) SetViewSize(rows int) {
	if rows < 0 {
		rows = 0
	}
	m.viewHeight = rows
}

// GetViewport returns the first visible row and the number of rows.
func (m *Manager) GetViewport() (int, int) {
	return m.viewportTop, m.viewHeight
}

// FirstOffset returns the byte offset of the first visible row.
func (m *Manager) FirstOffset() int {
	return m.viewportTop * BytesPerRow
}

// Row returns the row holding offset.
func Row(offset int) int {
	return offset / BytesPerRow
}

// ScrollTo moves the viewport so offset is visible with scrollOff rows of context.
func (m *Manager) ScrollTo(offset, length int) {
	if m.viewHeight <= 0 {
		return
	}
	row := Row(offset)
	lastRow := Row(length - 1)

	off := m.scrollOff
	if off*2 >= m.viewHeight {
		off = (m.viewHeight - 1) / 2
	}

	if row < m.viewportTop+off {
		m.viewportTop = row - off
	}
	if row > m.viewportTop+m.viewHeight-1-off {
		m.viewportTop = row - m.viewHeight + 1 + off
	}

	maxTop := lastRow - m.viewHeight + 1
	if m.viewportTop > maxTop {
		m.viewportTop = maxTop
	}
	if m.viewportTop < 0 {
		m.viewportTop = 0
	}
	logger.DebugTagf("cursor", "Viewport: offset %d -> top row %d", offset, m.viewportTop)
}
