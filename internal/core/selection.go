package core

import "github.com/bethropolis/lazyhex/internal/types"

// SelectionRange returns the selected byte range.
func (e *Editor) SelectionRange() types.Range {
	return e.selection.Range()
}

// SelectedBytes returns a copy of the selected bytes.
func (e *Editor) SelectedBytes() []byte {
	r := e.selection.Range()
	return e.buffer.Slice(r.Start, r.End)
}
