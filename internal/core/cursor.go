package core

// SetViewSize updates the number of visible hex rows.
func (e *Editor) SetViewSize(rows int) {
	e.cursor.SetViewSize(rows)
	e.ScrollToCursor()
}

// ScrollToCursor keeps the active edge of the selection visible.
func (e *Editor) ScrollToCursor() {
	e.cursor.ScrollTo(e.selection.Current, e.buffer.Len())
}

// GetViewport returns the first visible row and the number of visible rows.
func (e *Editor) GetViewport() (int, int) {
	return e.cursor.GetViewport()
}
