package modehandler

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/lazyhex/internal/compare"
	"github.com/bethropolis/lazyhex/internal/core/cursor"
	"github.com/bethropolis/lazyhex/internal/input"
	"github.com/bethropolis/lazyhex/internal/statusbar"
)

// DiffHandler drives the read-only comparison view. It never edits.
type DiffHandler struct {
	view           *compare.View
	inputProcessor *input.InputProcessor
	statusBar      *statusbar.StatusBar
	quitSignal     chan<- struct{}
	quitOnce       sync.Once
}

// NewDiffHandler creates a handler for view.
func NewDiffHandler(view *compare.View, processor *input.InputProcessor, sb *statusbar.StatusBar, quit chan<- struct{}) *DiffHandler {
	return &DiffHandler{view: view, inputProcessor: processor, statusBar: sb, quitSignal: quit}
}

// HandleKeyEvent handles one key. It returns true when a redraw is needed.
func (dh *DiffHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	if _, ok := dh.statusBar.Notice(); ok {
		dh.statusBar.ClearNotice()
		return true
	}

	switch dh.inputProcessor.ProcessEvent(ev, false).Action {
	case input.ActionQuit, input.ActionCancel:
		dh.quitOnce.Do(func() { close(dh.quitSignal) })
	case input.ActionMoveLeft:
		dh.view.Move(-1)
	case input.ActionMoveRight:
		dh.view.Move(1)
	case input.ActionMoveUp:
		dh.view.Move(-cursor.BytesPerRow)
	case input.ActionMoveDown:
		dh.view.Move(cursor.BytesPerRow)
	case input.ActionPageUp:
		dh.view.PageUp()
	case input.ActionPageDown:
		dh.view.PageDown()
	case input.ActionGotoStart:
		dh.view.Goto(0)
	case input.ActionGotoEnd:
		dh.view.GotoEnd()
	case input.ActionNextChange:
		if !dh.view.NextChange() {
			dh.statusBar.SetTemporaryMessage("No more changes")
		}
	default:
		return false
	}
	return true
}
