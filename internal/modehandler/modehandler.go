// internal/modehandler/modehandler.go
package modehandler

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/lazyhex/internal/core"
	"github.com/bethropolis/lazyhex/internal/core/cursor"
	"github.com/bethropolis/lazyhex/internal/event"
	"github.com/bethropolis/lazyhex/internal/input"
	"github.com/bethropolis/lazyhex/internal/logger"
	"github.com/bethropolis/lazyhex/internal/statusbar"
	"github.com/bethropolis/lazyhex/internal/types"
)

// ModeHandler turns key events into editor operations and resolves the
// pending notice before anything else.
type ModeHandler struct {
	editor         *core.Editor
	inputProcessor *input.InputProcessor
	eventManager   *event.Manager
	statusBar      *statusbar.StatusBar

	quitSignal chan<- struct{}
	quitOnce   sync.Once
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Editor         *core.Editor
	InputProcessor *input.InputProcessor
	EventManager   *event.Manager
	StatusBar      *statusbar.StatusBar
	QuitSignal     chan<- struct{} // closed once to stop the app
}

// New creates a new ModeHandler and routes editor notices to the status bar.
func New(cfg Config) *ModeHandler {
	if cfg.Editor == nil || cfg.InputProcessor == nil || cfg.EventManager == nil || cfg.StatusBar == nil || cfg.QuitSignal == nil {
		panic("modehandler.New: Missing required dependencies in Config")
	}
	mh := &ModeHandler{
		editor:         cfg.Editor,
		inputProcessor: cfg.InputProcessor,
		eventManager:   cfg.EventManager,
		statusBar:      cfg.StatusBar,
		quitSignal:     cfg.QuitSignal,
	}
	mh.eventManager.Subscribe(event.TypeNotice, mh.handleNoticeEvent)
	return mh
}

func (mh *ModeHandler) handleNoticeEvent(e event.Event) bool {
	data, ok := e.Data.(event.NoticeData)
	if !ok {
		return false
	}
	kind := statusbar.NoticeInfo
	if data.IsError {
		kind = statusbar.NoticeError
	}
	mh.statusBar.ShowNotice(statusbar.Notice{Kind: kind, Message: data.Message})
	return false
}

func (mh *ModeHandler) quit() {
	mh.quitOnce.Do(func() {
		logger.Infof("ModeHandler: quitting")
		close(mh.quitSignal)
	})
}

// HandleKeyEvent handles one key. It returns true when a redraw is needed.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	if notice, ok := mh.statusBar.Notice(); ok {
		mh.handleNoticeKey(notice, ev)
		return true
	}

	mode := mh.editor.Mode()
	hexEntry := mode == types.ModeReplace || mode == types.ModeInsert
	actionEvent := mh.inputProcessor.ProcessEvent(ev, hexEntry)
	logger.DebugTagf("input", "ModeHandler: %v in %v", actionEvent.Action, mode)

	switch actionEvent.Action {
	case input.ActionQuit:
		mh.requestQuit()
		return true
	case input.ActionCancel:
		mh.editor.Cancel()
		return true
	case input.ActionHexDigit:
		return mh.editor.Input(actionEvent.Rune)
	}

	if hexEntry {
		return false
	}
	return mh.handleCommand(actionEvent.Action, mode)
}

// handleCommand runs Normal and Visual mode bindings.
func (mh *ModeHandler) handleCommand(action input.Action, mode types.Mode) bool {
	visual := mode == types.ModeVisual
	switch action {
	case input.ActionMoveLeft:
		mh.editor.Move(-1)
	case input.ActionMoveRight:
		mh.editor.Move(1)
	case input.ActionMoveUp:
		mh.editor.Move(-cursor.BytesPerRow)
	case input.ActionMoveDown:
		mh.editor.Move(cursor.BytesPerRow)
	case input.ActionPageUp:
		mh.editor.PageUp()
	case input.ActionPageDown:
		mh.editor.PageDown()
	case input.ActionGotoStart:
		mh.editor.GotoStart()
	case input.ActionGotoEnd:
		mh.editor.GotoEnd()
	case input.ActionReplace:
		mh.editor.SetMode(types.ModeReplace)
	case input.ActionDelete:
		mh.editor.Delete()
	case input.ActionUndo:
		if !mh.editor.Undo() {
			mh.statusBar.SetTemporaryMessage("Already at oldest change")
		}
	case input.ActionToggleMark:
		mh.editor.ToggleMark()
	case input.ActionYank:
		mh.yank()
	case input.ActionVisual:
		if visual {
			return false
		}
		mh.editor.SetMode(types.ModeVisual)
	case input.ActionInsert, input.ActionAppend:
		if visual {
			return false
		}
		mh.editor.EnterInsert(action == input.ActionAppend)
	case input.ActionToggleEndian:
		if visual {
			return false
		}
		mh.statusBar.SetTemporaryMessage("Endian: %v", mh.editor.ToggleEndian())
	case input.ActionWrite:
		if visual {
			return false
		}
		if path := mh.editor.GetBuffer().FilePath(); path != "" {
			mh.requestWrite(path)
		} else {
			mh.promptFilename("")
		}
	case input.ActionWriteAs:
		if visual {
			return false
		}
		mh.promptFilename(mh.editor.GetBuffer().FilePath())
	default:
		return false
	}
	return true
}

func (mh *ModeHandler) yank() {
	n := mh.editor.SelectionRange().Len()
	if _, err := mh.editor.YankSelection(); err != nil {
		mh.statusBar.ShowNotice(statusbar.Notice{Kind: statusbar.NoticeError, Message: err.Error()})
		return
	}
	mh.statusBar.SetTemporaryMessage("Yanked %d bytes", n)
}

func (mh *ModeHandler) requestQuit() {
	if mh.editor.GetBuffer().IsModified() {
		mh.statusBar.ShowNotice(statusbar.Notice{Kind: statusbar.NoticeConfirmQuit})
		return
	}
	mh.quit()
}
