// internal/app/app.go
package app

import (
	"context"
	"fmt"

	"github.com/bethropolis/lazyhex/internal/buffer"
	"github.com/bethropolis/lazyhex/internal/config"
	"github.com/bethropolis/lazyhex/internal/core"
	"github.com/bethropolis/lazyhex/internal/event"
	"github.com/bethropolis/lazyhex/internal/highlight"
	"github.com/bethropolis/lazyhex/internal/input"
	"github.com/bethropolis/lazyhex/internal/logger"
	"github.com/bethropolis/lazyhex/internal/modehandler"
	"github.com/bethropolis/lazyhex/internal/render"
	"github.com/bethropolis/lazyhex/internal/script"
	"github.com/bethropolis/lazyhex/internal/statusbar"
	"github.com/bethropolis/lazyhex/internal/theme"
	"github.com/bethropolis/lazyhex/internal/tui"
)

// App encapsulates the core components and main loop of the editor.
type App struct {
	tuiManager   *tui.TUI
	editor       *core.Editor
	statusBar    *statusbar.StatusBar
	eventManager *event.Manager
	modeHandler  *modehandler.ModeHandler
	themeManager *theme.Manager

	quit chan struct{}
}

// Options carries what NewApp needs besides the file to open.
type Options struct {
	Config    *config.Config
	Extension *script.Extension // nil when no script was found
	Themes    *theme.Manager
}

// NewApp loads filePath into a new editor bound to ui.
// A read error other than a missing file is returned.
func NewApp(ui *tui.TUI, filePath string, opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewDefaultConfig()
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	themes := opts.Themes
	if themes == nil {
		themes = theme.NewManager("")
	}

	buf := buffer.NewSliceBuffer(nil)
	if err := buf.Load(filePath); err != nil {
		return nil, fmt.Errorf("load %s: %w", filePath, err)
	}

	var source highlight.Source
	if opts.Extension != nil && opts.Extension.HasCallback() {
		source = opts.Extension
	}
	highlights := highlight.NewManager(cfg.Editor.OnDeleteValue(), source)

	editor := core.NewEditor(buf, highlights, core.Options{
		Page:            cfg.Editor.Page,
		Endian:          cfg.Editor.EndianValue(),
		EmptyValue:      byte(cfg.Editor.EmptyValue),
		ScrollOff:       cfg.Editor.ScrollOff,
		SystemClipboard: cfg.Editor.SystemClipboard,
	})

	eventManager := event.NewManager()
	editor.SetEventManager(eventManager)
	statusBar := statusbar.New(statusbar.ConfigFromTheme(themes.Current(), config.MessageTimeout))
	quitChan := make(chan struct{})

	modeHandler := modehandler.New(modehandler.Config{
		Editor:         editor,
		InputProcessor: input.NewInputProcessor(),
		EventManager:   eventManager,
		StatusBar:      statusBar,
		QuitSignal:     quitChan,
	})

	a := &App{
		tuiManager:   ui,
		editor:       editor,
		statusBar:    statusBar,
		eventManager: eventManager,
		modeHandler:  modeHandler,
		themeManager: themes,
		quit:         quitChan,
	}
	a.subscribe()

	_, height := ui.Size()
	editor.SetViewSize(render.ViewRows(height))
	editor.ReloadHighlights()
	eventManager.Dispatch(event.TypeBufferLoaded, event.BufferLoadedData{FilePath: buf.FilePath(), Size: buf.Len()})

	return a, nil
}

// Editor returns the editor driven by the app.
func (a *App) Editor() *core.Editor {
	return a.editor
}

// Run draws and handles events until the user quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.tuiManager.Close()
	a.editor.SetContext(ctx)

	l := &loop{
		ui:        a.tuiManager,
		quit:      a.quit,
		draw:      a.drawEditor,
		handleKey: a.modeHandler.HandleKeyEvent,
		resize: func(_, h int) {
			a.editor.SetViewSize(render.ViewRows(h))
		},
	}

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("%s - w write | u undo | q quit", config.AppName)
	err := l.run(ctx)

	modified := a.editor.GetBuffer().IsModified()
	a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{Modified: modified})
	if modified {
		logger.Warnf("App: exited with unsaved changes")
	}
	logger.Infof("App: exiting")
	return err
}
