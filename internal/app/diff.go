package app

import (
	"context"
	"fmt"
	"os"

	"github.com/bethropolis/lazyhex/internal/compare"
	"github.com/bethropolis/lazyhex/internal/config"
	"github.com/bethropolis/lazyhex/internal/input"
	"github.com/bethropolis/lazyhex/internal/logger"
	"github.com/bethropolis/lazyhex/internal/modehandler"
	"github.com/bethropolis/lazyhex/internal/render"
	"github.com/bethropolis/lazyhex/internal/statusbar"
	"github.com/bethropolis/lazyhex/internal/theme"
	"github.com/bethropolis/lazyhex/internal/tui"
)

// DiffApp shows a read-only comparison of two files.
type DiffApp struct {
	tuiManager   *tui.TUI
	view         *compare.View
	statusBar    *statusbar.StatusBar
	handler      *modehandler.DiffHandler
	themeManager *theme.Manager
	quit         chan struct{}
}

// ReadPair reads both files of a comparison. Either read failing is an error.
func ReadPair(oldPath, newPath string) ([]byte, []byte, error) {
	oldData, err := os.ReadFile(oldPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", oldPath, err)
	}
	newData, err := os.ReadFile(newPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", newPath, err)
	}
	return oldData, newData, nil
}

// NewDiffApp compares the two files and prepares the view.
func NewDiffApp(ui *tui.TUI, oldPath, newPath string, cfg *config.Config, themes *theme.Manager) (*DiffApp, error) {
	oldData, newData, err := ReadPair(oldPath, newPath)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	if themes == nil {
		themes = theme.NewManager("")
	}

	result := compare.New(oldData, newData)
	view := compare.NewView(result, oldPath, newPath, cfg.Editor.Page, cfg.Editor.ScrollOff)
	_, height := ui.Size()
	view.SetViewSize(render.ViewRows(height))

	sb := statusbar.New(statusbar.ConfigFromTheme(themes.Current(), config.MessageTimeout))
	quit := make(chan struct{})
	return &DiffApp{
		tuiManager:   ui,
		view:         view,
		statusBar:    sb,
		handler:      modehandler.NewDiffHandler(view, input.NewInputProcessor(), sb, quit),
		themeManager: themes,
		quit:         quit,
	}, nil
}

// View returns the comparison view.
func (d *DiffApp) View() *compare.View {
	return d.view
}

// Run draws and handles events until the user quits or ctx is cancelled.
func (d *DiffApp) Run(ctx context.Context) error {
	defer d.tuiManager.Close()
	l := &loop{
		ui:        d.tuiManager,
		quit:      d.quit,
		draw:      d.draw,
		handleKey: d.handler.HandleKeyEvent,
		resize: func(_, h int) {
			d.view.SetViewSize(render.ViewRows(h))
		},
	}
	logger.Infof("DiffApp: %s", d.view.Result.Summary())
	d.statusBar.SetTemporaryMessage("%s", d.message())
	return l.run(ctx)
}

// message is the status line shown when the view opens.
func (d *DiffApp) message() string {
	if d.view.Result.Identical() {
		return "files are identical"
	}
	return d.view.Result.Summary()
}

func (d *DiffApp) draw() {
	screen := d.tuiManager.GetScreen()
	width, height := d.tuiManager.Size()
	d.statusBar.SetEditorMode("DIFF")
	d.statusBar.SetFileInfo(fmt.Sprintf("%s -> %s", d.view.OldName, d.view.NewName), false)
	d.statusBar.SetCursorInfo(d.view.Position(), d.view.Result.Len(), 1)

	d.tuiManager.Clear()
	render.Diff(screen, d.view, d.themeManager.Current())
	d.statusBar.Draw(screen, width, height)
	d.tuiManager.Show()
}
