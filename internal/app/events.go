package app

import (
	"github.com/bethropolis/lazyhex/internal/event"
	"github.com/bethropolis/lazyhex/internal/logger"
)

func (a *App) subscribe() {
	a.eventManager.Subscribe(event.TypeModeChanged, a.handleModeChangedForStatus)
	a.eventManager.Subscribe(event.TypeBufferSaved, a.handleBufferSavedForStatus)
	a.eventManager.Subscribe(event.TypeBufferLoaded, a.handleBufferLoadedForStatus)
	a.eventManager.Subscribe(event.TypeBufferModified, a.handleBufferModifiedForStatus)
}

// handleModeChangedForStatus updates the mode shown in the status bar.
func (a *App) handleModeChangedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.ModeChangedData); ok {
		a.statusBar.SetEditorMode(data.To.String())
	}
	return false
}

// handleBufferModifiedForStatus refreshes the modified indicator.
func (a *App) handleBufferModifiedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.BufferModifiedData); ok {
		logger.DebugTagf("event", "App: buffer modified by %d edit(s)", len(data.Edits))
	}
	buf := a.editor.GetBuffer()
	a.statusBar.SetFileInfo(buf.FilePath(), buf.IsModified())
	return false
}

// handleBufferSavedForStatus updates the path and clears the modified indicator.
func (a *App) handleBufferSavedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.BufferSavedData); ok {
		logger.Infof("App: saved %d bytes to %s", data.Size, data.FilePath)
		a.statusBar.SetFileInfo(data.FilePath, false)
	}
	return false
}

// handleBufferLoadedForStatus shows the loaded file.
func (a *App) handleBufferLoadedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.BufferLoadedData); ok {
		logger.Infof("App: loaded %d bytes from %q", data.Size, data.FilePath)
		a.statusBar.SetFileInfo(data.FilePath, false)
	}
	return false
}
