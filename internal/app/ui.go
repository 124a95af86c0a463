package app

import (
	"github.com/bethropolis/lazyhex/internal/logger"
	"github.com/bethropolis/lazyhex/internal/render"
)

// drawEditor clears the screen and redraws all components.
func (a *App) drawEditor() {
	a.updateStatusBarContent()

	currentTheme := a.themeManager.Current()
	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	logger.DebugTagf("draw", "drawEditor: Screen Size (%d x %d)", width, height)

	a.tuiManager.Clear()
	render.Editor(screen, a.editor, currentTheme)
	a.statusBar.Draw(screen, width, height)
	a.tuiManager.Show()
}

// updateStatusBarContent pushes current editor state to the status bar component.
func (a *App) updateStatusBarContent() {
	buf := a.editor.GetBuffer()
	a.statusBar.SetFileInfo(buf.FilePath(), buf.IsModified())
	a.statusBar.SetCursorInfo(a.editor.Selection().Current, buf.Len(), a.editor.SelectionRange().Len())
	a.statusBar.SetEditorMode(a.editor.Mode().String())
	a.statusBar.SetEndian(a.editor.Endian().String())
	if n, ok := a.editor.PendingNibble(); ok {
		a.statusBar.SetPendingNibble(int(n))
	} else {
		a.statusBar.SetPendingNibble(-1)
	}
}
