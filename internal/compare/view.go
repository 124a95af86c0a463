package compare

import (
	"github.com/bethropolis/lazyhex/internal/core/cursor"
	"github.com/bethropolis/lazyhex/internal/highlight"
	"github.com/bethropolis/lazyhex/internal/types"
)

// View is a read-only cursor over a Result. It records no history.
type View struct {
	Result  *Result
	OldName string
	NewName string

	position int
	page     int
	viewport *cursor.Manager
}

// NewView creates a view positioned at the first aligned cell.
func NewView(r *Result, oldName, newName string, page, scrollOff int) *View {
	if page <= 0 {
		page = 256
	}
	return &View{
		Result:   r,
		OldName:  oldName,
		NewName:  newName,
		page:     page,
		viewport: cursor.NewManager(scrollOff),
	}
}

// Position returns the aligned cursor offset.
func (v *View) Position() int {
	return v.position
}

// Move shifts the cursor by offset, clamped.
func (v *View) Move(offset int) {
	v.Goto(v.position + offset)
}

// Goto jumps to position, clamped.
func (v *View) Goto(position int) {
	n := v.Result.Len()
	if n == 0 {
		v.position = 0
		return
	}
	v.position = types.ClampIndex(position, n)
	v.viewport.ScrollTo(v.position, n)
}

func (v *View) PageDown() { v.Move(v.page) }
func (v *View) PageUp()   { v.Move(-v.page) }
func (v *View) GotoEnd()  { v.Goto(v.Result.Len() - 1) }

// SetViewSize updates the number of visible rows.
func (v *View) SetViewSize(rows int) {
	v.viewport.SetViewSize(rows)
	if n := v.Result.Len(); n > 0 {
		v.viewport.ScrollTo(v.position, n)
	}
}

// GetViewport returns the first visible row and the number of rows.
func (v *View) GetViewport() (int, int) {
	return v.viewport.GetViewport()
}

// Current returns the aligned pair under the cursor.
func (v *View) Current() (Cell, Cell) {
	if v.Result.Len() == 0 {
		return Cell{}, Cell{}
	}
	return v.Result.Old[v.position], v.Result.New[v.position]
}

// HighlightsAt returns the change highlights of both sides covering the cursor.
func (v *View) HighlightsAt() []highlight.Highlight {
	return append(v.Result.OldHighlights.At(v.position), v.Result.NewHighlights.At(v.position)...)
}

// NextChange moves to the start of the next changed region after the cursor.
// It reports whether one was found.
func (v *View) NextChange() bool {
	next := -1
	for _, h := range append(v.Result.OldHighlights.All(), v.Result.NewHighlights.All()...) {
		if h.Start > v.position && (next < 0 || h.Start < next) {
			next = h.Start
		}
	}
	if next < 0 {
		return false
	}
	v.Goto(next)
	return true
}
