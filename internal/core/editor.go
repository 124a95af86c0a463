// internal/core/editor.go
package core

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/bethropolis/lazyhex/internal/buffer"
	"github.com/bethropolis/lazyhex/internal/core/clipboard"
	"github.com/bethropolis/lazyhex/internal/core/cursor"
	"github.com/bethropolis/lazyhex/internal/core/history"
	"github.com/bethropolis/lazyhex/internal/event"
	"github.com/bethropolis/lazyhex/internal/highlight"
	"github.com/bethropolis/lazyhex/internal/logger"
	"github.com/bethropolis/lazyhex/internal/types"
)

// DefaultPage is the page-up/page-down distance in bytes.
const DefaultPage = 256

// Options configures an Editor.
type Options struct {
	Page            int
	Endian          types.Endian
	EmptyValue      byte
	ScrollOff       int
	SystemClipboard bool
	MaxHistory      int
}

// Editor owns the buffer, selection, mode, highlights and history of one session.
// All mutation goes through commands recorded in the history.
type Editor struct {
	buffer    buffer.Buffer
	selection types.Selection
	mode      types.Mode
	endian    types.Endian
	fill      byte
	page      int
	pending   int // first hex nibble, or -1

	highlights   *highlight.Manager
	history      *history.Manager
	eventManager *event.Manager
	cursor       *cursor.Manager
	clipboard    *clipboard.Manager
	ctx          context.Context
}

// NewEditor creates an Editor over buf. highlights may be nil.
func NewEditor(buf buffer.Buffer, highlights *highlight.Manager, opts Options) *Editor {
	if opts.Page <= 0 {
		opts.Page = DefaultPage
	}
	if highlights == nil {
		highlights = highlight.NewManager(highlight.PolicyReload, nil)
	}
	e := &Editor{
		buffer:     buf,
		selection:  types.Single(0),
		mode:       types.ModeNormal,
		endian:     opts.Endian,
		fill:       opts.EmptyValue,
		page:       opts.Page,
		pending:    -1,
		highlights: highlights,
		cursor:     cursor.NewManager(opts.ScrollOff),
		clipboard:  clipboard.NewManager(opts.SystemClipboard),
		ctx:        context.Background(),
	}
	e.history = history.NewManager(target{e}, opts.MaxHistory)
	return e
}

// SetEventManager sets the event manager for dispatching events.
func (e *Editor) SetEventManager(mgr *event.Manager) {
	e.eventManager = mgr
}

// SetContext sets the context handed to highlight recomputation.
func (e *Editor) SetContext(ctx context.Context) {
	e.ctx = ctx
}

func (e *Editor) dispatch(t event.Type, data interface{}) {
	if e.eventManager != nil {
		e.eventManager.Dispatch(t, data)
	}
}

func (e *Editor) notify(format string, args ...interface{}) {
	e.dispatch(event.TypeNotice, event.NoticeData{Message: fmt.Sprintf(format, args...), IsError: true})
}

// GetBuffer returns the editor's buffer.
func (e *Editor) GetBuffer() buffer.Buffer {
	return e.buffer
}

// Selection returns the current selection.
func (e *Editor) Selection() types.Selection {
	return e.selection
}

// Mode returns the current editing mode.
func (e *Editor) Mode() types.Mode {
	return e.mode
}

// Endian returns the byte order used by the inspector.
func (e *Editor) Endian() types.Endian {
	return e.endian
}

// PageSize returns the page distance in bytes.
func (e *Editor) PageSize() int {
	return e.page
}

// Highlights returns the highlight manager.
func (e *Editor) Highlights() *highlight.Manager {
	return e.highlights
}

// History returns the command history.
func (e *Editor) History() *history.Manager {
	return e.history
}

// ReloadHighlights recomputes script highlights for the whole buffer.
// A failing script leaves no script highlights and raises a notice.
func (e *Editor) ReloadHighlights() {
	if err := e.highlights.Reload(e.ctx, e.buffer.Bytes()); err != nil {
		e.notify("highlight script failed: %v", err)
	}
}

// SaveBuffer writes the buffer to path, or to its own path when path is empty.
// On failure the buffer and its modified flag are unchanged.
func (e *Editor) SaveBuffer(path string) error {
	if err := e.buffer.Save(path); err != nil {
		logger.Warnf("Editor: save failed: %v", err)
		return err
	}
	logger.Infof("Editor: wrote %d bytes to %s", e.buffer.Len(), e.buffer.FilePath())
	e.dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: e.buffer.FilePath(), Size: e.buffer.Len()})
	return nil
}

// NeedsOverwriteConfirm reports whether writing to path would replace
// an existing file other than the buffer's own.
func (e *Editor) NeedsOverwriteConfirm(path string) bool {
	if path == "" || path == e.buffer.FilePath() {
		return false
	}
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}

// target adapts Editor to history.Target without exposing the raw setters.
type target struct {
	e *Editor
}

func (t target) Buffer() buffer.Buffer { return t.e.buffer }

func (t target) Selection() types.Selection { return t.e.selection }

func (t target) SetSelection(s types.Selection) {
	s = s.Clamp(t.e.buffer.Len())
	if s == t.e.selection {
		return
	}
	t.e.selection = s
	t.e.ScrollToCursor()
	t.e.dispatch(event.TypeCursorMoved, event.CursorMovedData{Selection: s})
}

func (t target) Mode() types.Mode { return t.e.mode }

func (t target) SetMode(m types.Mode) {
	if m == t.e.mode {
		return
	}
	from := t.e.mode
	t.e.mode = m
	t.e.pending = -1
	logger.DebugTagf("mode", "Editor: mode %v -> %v", from, m)
	t.e.dispatch(event.TypeModeChanged, event.ModeChangedData{From: from, To: m})
}

func (t target) FillValue() byte { return t.e.fill }

func (t target) ContentChanged(edits ...types.EditInfo) {
	if err := t.e.highlights.ApplyEdits(t.e.ctx, t.e.buffer.Bytes(), edits...); err != nil {
		t.e.notify("highlight script failed: %v", err)
	}
	t.e.dispatch(event.TypeBufferModified, event.BufferModifiedData{Edits: edits})
}

func (t target) ToggleMark(r types.Range) bool {
	return t.e.highlights.ToggleMark(r)
}

func (t target) SnapshotHighlights() highlight.Snapshot {
	return t.e.highlights.Snapshot()
}

func (t target) RestoreHighlights(snap highlight.Snapshot) {
	t.e.highlights.Restore(snap)
}
