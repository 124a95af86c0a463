package core

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/lazyhex/internal/buffer"
	"github.com/bethropolis/lazyhex/internal/event"
	"github.com/bethropolis/lazyhex/internal/highlight"
	"github.com/bethropolis/lazyhex/internal/types"
)

func newEditor(t *testing.T, data ...byte) *Editor {
	t.Helper()
	return NewEditor(buffer.NewSliceBuffer(data), nil, Options{Page: 4})
}

func content(e *Editor) []byte {
	return append([]byte(nil), e.GetBuffer().Bytes()...)
}

func TestSelectionStaysInBounds(t *testing.T) {
	e := newEditor(t, make([]byte, 10)...)
	steps := []func(){
		func() { e.Move(-5) },
		func() { e.Move(100) },
		func() { e.PageDown() },
		func() { e.SetMode(types.ModeVisual) },
		func() { e.Goto(-3) },
		func() { e.GotoEnd() },
		func() { e.PageUp() },
		func() { e.Move(1 << 20) },
	}
	for _, step := range steps {
		step()
		r := e.SelectionRange()
		assert.GreaterOrEqual(t, r.Start, 0)
		assert.LessOrEqual(t, r.End, e.GetBuffer().Len())
		assert.Positive(t, r.Len())
	}
}

func TestVisualSelection(t *testing.T) {
	e := newEditor(t, make([]byte, 32)...)
	e.Goto(5)
	e.SetMode(types.ModeVisual)
	e.Move(3)
	assert.Equal(t, types.Range{Start: 5, End: 9}, e.SelectionRange())
	e.Move(-6)
	assert.Equal(t, types.Range{Start: 2, End: 6}, e.SelectionRange())

	e.SetMode(types.ModeNormal)
	assert.Equal(t, types.Single(2), e.Selection())
}

func TestDeleteUndoExact(t *testing.T) {
	e := newEditor(t, 0, 1, 2, 3, 4, 5, 6, 7)
	e.Goto(2)
	e.SetMode(types.ModeVisual)
	e.Move(3)
	before := e.Selection()

	e.Delete()
	assert.Equal(t, []byte{0, 1, 6, 7}, content(e))
	assert.Equal(t, types.ModeNormal, e.Mode())
	assert.True(t, e.GetBuffer().IsModified())

	require.True(t, e.Undo())
	assert.Equal(t, []byte{0, 1, 2, 3, 4, 5, 6, 7}, content(e))
	assert.Equal(t, before, e.Selection())
	assert.Equal(t, types.ModeVisual, e.Mode())
}

func TestInsertUndoIdentity(t *testing.T) {
	e := newEditor(t, 0xaa, 0xbb)
	e.Goto(1)
	e.Insert(1)
	assert.Equal(t, []byte{0xaa, 0x00, 0xbb}, content(e))
	e.Undo()
	assert.Equal(t, []byte{0xaa, 0xbb}, content(e))
	assert.Equal(t, types.Single(1), e.Selection())
}

func TestModeRoundTrip(t *testing.T) {
	e := newEditor(t, 1, 2, 3)
	e.Goto(1)
	e.SetMode(types.ModeVisual)
	e.SetMode(types.ModeVisual)
	e.SetMode(types.ModeNormal)

	e.Undo()
	assert.Equal(t, types.ModeVisual, e.Mode())
	e.Undo()
	assert.Equal(t, types.ModeNormal, e.Mode())
	assert.Equal(t, types.Single(1), e.Selection())
}

func TestReplaceTwoNibbles(t *testing.T) {
	e := newEditor(t, 0, 0, 0)
	e.SetMode(types.ModeReplace)

	assert.True(t, e.Input('a'))
	nib, ok := e.PendingNibble()
	assert.True(t, ok)
	assert.Equal(t, byte(0xa), nib)
	assert.Equal(t, []byte{0, 0, 0}, content(e), "first nibble writes nothing")

	assert.True(t, e.Input('B'))
	assert.Equal(t, []byte{0xab, 0, 0}, content(e))
	assert.Equal(t, types.Single(1), e.Selection())
	assert.Equal(t, types.ModeReplace, e.Mode())

	assert.False(t, e.Input('z'))
	_, ok = e.PendingNibble()
	assert.False(t, ok)
}

func TestReplaceOverRange(t *testing.T) {
	e := newEditor(t, 1, 2, 3, 4)
	e.SetMode(types.ModeVisual)
	e.Move(2)
	e.SetMode(types.ModeReplace)
	e.Input('f')
	e.Input('f')
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 4}, content(e))
	assert.Equal(t, types.ModeNormal, e.Mode())
}

func TestInsertModeTyping(t *testing.T) {
	e := newEditor(t, 0x10, 0x20)
	e.Goto(1)
	e.SetMode(types.ModeInsert)
	assert.Equal(t, []byte{0x10, 0x00, 0x20}, content(e))

	e.Input('1')
	e.Input('2')
	e.Input('3')
	e.Input('4')
	assert.Equal(t, []byte{0x10, 0x12, 0x34, 0x00, 0x20}, content(e))
	assert.Equal(t, types.Single(3), e.Selection())

	e.Cancel()
	assert.Equal(t, types.ModeNormal, e.Mode())
}

func TestInsertAfterAppends(t *testing.T) {
	e := newEditor(t, 1)
	e.EnterInsert(true)
	assert.Equal(t, []byte{1, 0}, content(e))
	assert.Equal(t, types.Single(1), e.Selection())
}

func TestCancelDropsPendingNibble(t *testing.T) {
	e := newEditor(t, 0, 0)
	e.SetMode(types.ModeReplace)
	e.Input('7')
	e.Cancel()
	e.SetMode(types.ModeReplace)
	e.Input('1')
	e.Input('2')
	assert.Equal(t, []byte{0x12, 0}, content(e))
}

func TestEmptyValueFill(t *testing.T) {
	e := NewEditor(buffer.NewSliceBuffer([]byte{1}), nil, Options{EmptyValue: 0xcc})
	e.Insert(0)
	assert.Equal(t, []byte{0xcc, 1}, content(e))
}

func TestHighlightsRebaseWithEdits(t *testing.T) {
	src := highlight.SourceFunc(func(context.Context, []byte) (*highlight.Set, error) {
		return highlight.NewSet(highlight.Highlight{Start: 4, End: 6, Label: "field"}), nil
	})
	hm := highlight.NewManager(highlight.PolicyUpdate, src)
	e := NewEditor(buffer.NewSliceBuffer(make([]byte, 10)), hm, Options{})
	e.ReloadHighlights()

	e.Goto(2)
	e.Insert(2)
	got := hm.At(5)
	require.Len(t, got, 1)
	assert.Equal(t, 5, got[0].Start)
	assert.Equal(t, 7, got[0].End)

	e.Undo()
	got = hm.At(4)
	require.Len(t, got, 1)
	assert.Equal(t, 4, got[0].Start)
	assert.Equal(t, 6, got[0].End)
}

func TestScriptFailureRaisesNotice(t *testing.T) {
	src := highlight.SourceFunc(func(context.Context, []byte) (*highlight.Set, error) {
		return nil, errors.New("bad script")
	})
	e := NewEditor(buffer.NewSliceBuffer([]byte{1, 2}), highlight.NewManager(highlight.PolicyReload, src), Options{})
	em := event.NewManager()
	var notices []string
	em.Subscribe(event.TypeNotice, func(ev event.Event) bool {
		notices = append(notices, ev.Data.(event.NoticeData).Message)
		return false
	})
	e.SetEventManager(em)

	e.ReloadHighlights()
	e.Set(9)
	require.Len(t, notices, 2)
	assert.Contains(t, notices[0], "bad script")
	assert.Empty(t, e.Highlights().All())
}

func TestEvents(t *testing.T) {
	e := newEditor(t, 1, 2, 3)
	em := event.NewManager()
	seen := map[event.Type]int{}
	for _, typ := range []event.Type{event.TypeBufferModified, event.TypeCursorMoved, event.TypeModeChanged} {
		em.Subscribe(typ, func(ev event.Event) bool {
			seen[ev.Type]++
			return false
		})
	}
	e.SetEventManager(em)

	e.Move(1)
	e.SetMode(types.ModeReplace)
	e.Set(5)
	assert.Equal(t, 1, seen[event.TypeCursorMoved])
	assert.Equal(t, 1, seen[event.TypeModeChanged])
	assert.Equal(t, 1, seen[event.TypeBufferModified])
}

func TestSaveBuffer(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.bin")
	buf := buffer.NewSliceBuffer(nil)
	require.NoError(t, buf.Load(path))
	e := NewEditor(buf, nil, Options{})
	e.Set(0x42)

	other := filepath.Join(dir, "b.bin")
	require.NoError(t, os.WriteFile(other, []byte{1}, 0o644))
	assert.False(t, e.NeedsOverwriteConfirm(path))
	assert.True(t, e.NeedsOverwriteConfirm(other))
	assert.False(t, e.NeedsOverwriteConfirm(filepath.Join(dir, "c.bin")))

	require.NoError(t, e.SaveBuffer(""))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x42}, got)
	assert.False(t, e.GetBuffer().IsModified())

	err = e.SaveBuffer(filepath.Join(dir, "missing", "x.bin"))
	assert.Error(t, err)
	assert.Equal(t, path, e.GetBuffer().FilePath())
}

func TestYankSelection(t *testing.T) {
	e := newEditor(t, 0xca, 0xfe, 0x00)
	e.SetMode(types.ModeVisual)
	e.Move(1)
	text, err := e.YankSelection()
	require.NoError(t, err)
	assert.Equal(t, "ca fe", text)
	assert.Equal(t, []byte{0xca, 0xfe}, e.Register())
}

func TestToggleMarkUndo(t *testing.T) {
	e := newEditor(t, 1, 2, 3)
	e.ToggleMark()
	assert.Len(t, e.Highlights().At(0), 1)
	e.Undo()
	assert.Empty(t, e.Highlights().At(0))
}

func TestUndoMarkAfterUndoneDelete(t *testing.T) {
	e := newEditor(t, 1, 2, 3, 4, 5)
	e.Goto(2)
	e.ToggleMark()
	e.Delete()
	assert.Empty(t, e.Highlights().All())

	require.True(t, e.Undo())
	marks := e.Highlights().All()
	require.Len(t, marks, 1)
	assert.Equal(t, 2, marks[0].Start)
	assert.Equal(t, 2, marks[0].End)

	require.True(t, e.Undo())
	assert.Empty(t, e.Highlights().All())
}

func TestUndoDeleteRestoresClampedMark(t *testing.T) {
	e := newEditor(t, make([]byte, 8)...)
	e.Goto(2)
	e.SetMode(types.ModeVisual)
	e.Move(3)
	e.ToggleMark()
	e.SetMode(types.ModeNormal)

	e.Goto(4)
	e.SetMode(types.ModeVisual)
	e.Move(3)
	e.Delete()
	marks := e.Highlights().All()
	require.Len(t, marks, 1)
	assert.Equal(t, 3, marks[0].End)

	require.True(t, e.Undo())
	marks = e.Highlights().All()
	require.Len(t, marks, 1)
	assert.Equal(t, 2, marks[0].Start)
	assert.Equal(t, 5, marks[0].End)
	assert.Equal(t, highlight.MarkLabel, marks[0].Label)
}

func TestUndoEmpty(t *testing.T) {
	e := newEditor(t, 1)
	assert.False(t, e.Undo())
}
