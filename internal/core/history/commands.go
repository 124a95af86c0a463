package history

import (
	"bytes"
	"fmt"

	"github.com/bethropolis/lazyhex/internal/types"
)

// apply executes cmd against t and captures its undo state.
// It reports false when the command changed nothing and must not be recorded.
func apply(t Target, cmd *Command) bool {
	cmd.prevSelection = t.Selection()
	cmd.prevMode = t.Mode()

	switch cmd.Kind {
	case KindMove:
		return applyMove(t, cmd)
	case KindGoto:
		return applyGoto(t, cmd)
	case KindSet:
		return applySet(t, cmd)
	case KindInsert:
		return applyInsert(t, cmd)
	case KindDelete:
		return applyDelete(t, cmd)
	case KindMode:
		return applyMode(t, cmd)
	case KindMark:
		return applyMark(t, cmd)
	default:
		panic(fmt.Sprintf("history: unknown command kind %v", cmd.Kind))
	}
}

// revert undoes a previously applied cmd.
func revert(t Target, cmd *Command) {
	switch cmd.Kind {
	case KindMove, KindGoto:
		t.SetSelection(cmd.prevSelection)
	case KindSet:
		t.Buffer().Set(cmd.start, cmd.old)
		t.ContentChanged(types.EditInfo{Start: cmd.start, OldEnd: cmd.start + len(cmd.old), NewEnd: cmd.start + len(cmd.old)})
		t.SetSelection(cmd.prevSelection)
	case KindInsert:
		t.Buffer().Delete(cmd.start, cmd.start+1)
		t.ContentChanged(types.DeleteEdit(cmd.start, cmd.start+1))
		t.SetSelection(cmd.prevSelection)
	case KindDelete:
		revertDelete(t, cmd)
	case KindMode:
		if cmd.inserted {
			t.Buffer().Delete(cmd.start, cmd.start+1)
			t.ContentChanged(types.DeleteEdit(cmd.start, cmd.start+1))
		}
		t.SetMode(cmd.prevMode)
		t.SetSelection(cmd.prevSelection)
	case KindMark:
		t.RestoreHighlights(cmd.highlights)
	default:
		panic(fmt.Sprintf("history: unknown command kind %v", cmd.Kind))
	}
}

func applyMove(t Target, cmd *Command) bool {
	sel := t.Selection()
	t.SetSelection(sel.MoveTo(types.ClampIndex(sel.Current+cmd.Offset, t.Buffer().Len())))
	return true
}

func applyGoto(t Target, cmd *Command) bool {
	sel := t.Selection()
	t.SetSelection(sel.MoveTo(types.ClampIndex(cmd.Position, t.Buffer().Len())))
	return true
}

// applySet panics on a value count that neither broadcasts nor matches the range.
func applySet(t Target, cmd *Command) bool {
	r := t.Selection().Range()
	values := cmd.Values
	switch {
	case len(values) == 1:
		values = bytes.Repeat(values, r.Len())
	case len(values) != r.Len():
		panic(fmt.Sprintf("history: Set of %d values over a range of %d bytes", len(values), r.Len()))
	}
	cmd.start = r.Start
	cmd.old = t.Buffer().Set(r.Start, values)
	t.ContentChanged(types.EditInfo{Start: r.Start, OldEnd: r.End, NewEnd: r.End})
	return true
}

func applyInsert(t Target, cmd *Command) bool {
	at := cmd.At
	if n := t.Buffer().Len(); at > n {
		at = n
	}
	if at < 0 {
		at = 0
	}
	cmd.start = at
	insertFill(t, at)
	return true
}

// insertFill adds the fill byte at offset at and moves the cursor onto it.
func insertFill(t Target, at int) {
	t.Buffer().Insert(at, []byte{t.FillValue()})
	t.ContentChanged(types.InsertEdit(at, 1))
	t.SetSelection(types.Single(at))
}

func applyDelete(t Target, cmd *Command) bool {
	r := t.Selection().Range()
	buf := t.Buffer()

	cmd.start = r.Start
	cmd.highlights = t.SnapshotHighlights()
	cmd.old = buf.Delete(r.Start, r.End)
	edits := []types.EditInfo{types.DeleteEdit(r.Start, r.End)}
	if buf.Len() == 0 {
		buf.Insert(0, []byte{0})
		cmd.placeholder = true
		edits = append(edits, types.InsertEdit(0, 1))
	}
	t.ContentChanged(edits...)

	t.SetSelection(types.Single(types.ClampIndex(r.Start, buf.Len())))
	t.SetMode(types.ModeNormal)
	return true
}

func revertDelete(t Target, cmd *Command) {
	buf := t.Buffer()
	var edits []types.EditInfo
	if cmd.placeholder {
		buf.Delete(0, 1)
		edits = append(edits, types.DeleteEdit(0, 1))
	}
	buf.Insert(cmd.start, cmd.old)
	edits = append(edits, types.InsertEdit(cmd.start, len(cmd.old)))
	t.ContentChanged(edits...)
	t.RestoreHighlights(cmd.highlights)

	t.SetMode(cmd.prevMode)
	t.SetSelection(cmd.prevSelection)
}

// applyMode performs a mode transition. Re-entering the current mode is a no-op.
func applyMode(t Target, cmd *Command) bool {
	from := t.Mode()
	if from == cmd.Mode {
		return false
	}
	sel := t.Selection()

	switch cmd.Mode {
	case types.ModeNormal:
		t.SetSelection(sel.Collapse())
	case types.ModeVisual:
		if !sel.IsVisual() {
			t.SetSelection(types.Visual(sel.Current, sel.Current))
		}
	case types.ModeReplace:
	case types.ModeInsert:
		at := sel.Current
		if cmd.After {
			at++
		}
		cmd.start = at
		cmd.inserted = true
		insertFill(t, at)
	}
	t.SetMode(cmd.Mode)
	return true
}

func applyMark(t Target, cmd *Command) bool {
	cmd.highlights = t.SnapshotHighlights()
	t.ToggleMark(t.Selection().Range())
	return true
}
