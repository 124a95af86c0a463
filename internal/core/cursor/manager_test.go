package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrollFollowsOffset(t *testing.T) {
	m := NewManager(1)
	m.SetViewSize(4)

	m.ScrollTo(0, 1024)
	top, rows := m.GetViewport()
	assert.Equal(t, 0, top)
	assert.Equal(t, 4, rows)

	m.ScrollTo(16*10, 1024)
	top, _ = m.GetViewport()
	assert.Equal(t, 8, top, "row 10 sits one row above the bottom edge")
	assert.Equal(t, 8*BytesPerRow, m.FirstOffset())

	m.ScrollTo(16*8, 1024)
	top, _ = m.GetViewport()
	assert.Equal(t, 7, top)
}

func TestScrollClampsAtEnd(t *testing.T) {
	m := NewManager(3)
	m.SetViewSize(10)
	m.ScrollTo(100, 101)
	top, _ := m.GetViewport()
	assert.Equal(t, 0, top, "short buffers never scroll")
}
