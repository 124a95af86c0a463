package core

import (
	"github.com/bethropolis/lazyhex/internal/core/history"
	"github.com/bethropolis/lazyhex/internal/logger"
	"github.com/bethropolis/lazyhex/internal/types"
)

// Move shifts the active edge of the selection by offset, clamped to the buffer.
func (e *Editor) Move(offset int) {
	e.history.Execute(history.Move(offset))
}

// Goto jumps the active edge to position, clamped to the buffer.
func (e *Editor) Goto(position int) {
	e.history.Execute(history.Goto(position))
}

// PageDown moves forward by one page.
func (e *Editor) PageDown() {
	e.Move(e.page)
}

// PageUp moves back by one page.
func (e *Editor) PageUp() {
	e.Move(-e.page)
}

// GotoStart jumps to the first byte.
func (e *Editor) GotoStart() {
	e.Goto(0)
}

// GotoEnd jumps to the last byte.
func (e *Editor) GotoEnd() {
	e.Goto(e.buffer.Len() - 1)
}

// SetMode switches mode. Entering Insert also inserts a byte at the cursor.
// Switching to the current mode does nothing.
func (e *Editor) SetMode(mode types.Mode) {
	e.pending = -1
	if mode == types.ModeInsert {
		e.EnterInsert(false)
		return
	}
	e.history.Execute(history.SetMode(mode))
}

// EnterInsert switches to Insert mode with a fresh byte at the cursor, or after it.
func (e *Editor) EnterInsert(after bool) {
	e.pending = -1
	e.history.Execute(history.EnterInsert(after))
}

// Set writes values over the selection. A single value is broadcast.
func (e *Editor) Set(values ...byte) {
	e.history.Execute(history.Set(values...))
}

// Insert adds one fill byte before at.
func (e *Editor) Insert(at int) {
	e.history.Execute(history.Insert(at))
}

// Delete removes the selected bytes and returns to Normal mode.
func (e *Editor) Delete() {
	e.pending = -1
	e.history.Execute(history.Delete())
}

// ToggleMark adds or removes a manual highlight over the selection.
func (e *Editor) ToggleMark() {
	e.history.Execute(history.Mark())
}

// Undo reverts the most recent command. It returns false when there is nothing to undo.
func (e *Editor) Undo() bool {
	e.pending = -1
	if !e.history.Undo() {
		logger.DebugTagf("history", "Editor: nothing to undo")
		return false
	}
	return true
}

// ToggleEndian flips the byte order used by the inspector.
func (e *Editor) ToggleEndian() types.Endian {
	e.endian = e.endian.Toggle()
	return e.endian
}

// Cancel forces Normal mode and drops any pending nibble.
// Committed commands stay in place.
func (e *Editor) Cancel() {
	e.pending = -1
	e.history.Execute(history.SetMode(types.ModeNormal))
}
