package modehandler

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/lazyhex/internal/input"
	"github.com/bethropolis/lazyhex/internal/statusbar"
)

// handleNoticeKey consumes ev on behalf of the pending notice.
func (mh *ModeHandler) handleNoticeKey(n statusbar.Notice, ev *tcell.EventKey) {
	switch n.Kind {
	case statusbar.NoticePrompt:
		mh.handlePromptKey(ev)
	case statusbar.NoticeConfirmOverwrite:
		mh.statusBar.ClearNotice()
		if isYes(ev) {
			mh.write(n.Path)
		} else {
			mh.statusBar.SetTemporaryMessage("Write cancelled")
		}
	case statusbar.NoticeConfirmQuit:
		mh.statusBar.ClearNotice()
		if isYes(ev) {
			mh.quit()
		}
	default:
		mh.statusBar.ClearNotice()
	}
}

func isYes(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyRune && (ev.Rune() == 'y' || ev.Rune() == 'Y')
}

func (mh *ModeHandler) handlePromptKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		mh.statusBar.EditPrompt(func(s string) string { return s + string(r) })
		return
	}

	switch mh.inputProcessor.ProcessEvent(ev, false).Action {
	case input.ActionConfirm:
		n, _ := mh.statusBar.Notice()
		mh.statusBar.ClearNotice()
		if n.Input == "" {
			return
		}
		mh.requestWrite(n.Input)
	case input.ActionCancel:
		mh.statusBar.ClearNotice()
	case input.ActionBackspace:
		mh.statusBar.EditPrompt(func(s string) string {
			if s == "" {
				return s
			}
			_, size := utf8.DecodeLastRuneInString(s)
			return s[:len(s)-size]
		})
	}
}

func (mh *ModeHandler) promptFilename(initial string) {
	mh.statusBar.ShowNotice(statusbar.Notice{Kind: statusbar.NoticePrompt, Message: "Write to: ", Input: initial})
}

// requestWrite writes to path, asking first when it would replace another file.
func (mh *ModeHandler) requestWrite(path string) {
	if mh.editor.NeedsOverwriteConfirm(path) {
		mh.statusBar.ShowNotice(statusbar.Notice{Kind: statusbar.NoticeConfirmOverwrite, Path: path})
		return
	}
	mh.write(path)
}

func (mh *ModeHandler) write(path string) {
	if err := mh.editor.SaveBuffer(path); err != nil {
		mh.statusBar.ShowNotice(statusbar.Notice{Kind: statusbar.NoticeError, Message: err.Error()})
		return
	}
	mh.statusBar.SetTemporaryMessage("Wrote %d bytes to %s", mh.editor.GetBuffer().Len(), path)
}
