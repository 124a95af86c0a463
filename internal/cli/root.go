package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bethropolis/lazyhex/internal/app"
	"github.com/bethropolis/lazyhex/internal/config"
	"github.com/bethropolis/lazyhex/internal/logger"
	"github.com/bethropolis/lazyhex/internal/script"
	"github.com/bethropolis/lazyhex/internal/theme"
	"github.com/bethropolis/lazyhex/internal/tui"
)

func Execute() error {
	if err := newRootCmd().Execute(); err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	return nil
}

func newRootCmd() *cobra.Command {
	flags := &config.Flags{}
	root := &cobra.Command{
		Use:   config.AppName + " [file]",
		Short: "Modal hex editor for the terminal",
		Long: "lazyhex: view and edit binary files in a vim-like hex editor,\n" +
			"with Lua-scripted highlights and a byte-level diff view.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filePath string
			if len(args) > 0 {
				filePath = args[0]
			}
			return runEditor(cmd.Context(), flags, filePath)
		},
	}
	flags.DefineFlags(root.PersistentFlags())

	root.AddCommand(newDiffCmd(flags))
	root.AddCommand(newThemesCmd(flags))
	return root
}

// session is the state shared by every command that opens the screen.
type session struct {
	cfg    *config.Config
	ext    *script.Extension
	themes *theme.Manager
}

// startup loads configuration, starts the logger and resolves the theme.
// Callers must call close.
func startup(flags *config.Flags, skipScript bool) (*session, error) {
	cfg, ext, err := config.LoadConfig(config.LoadOptions{
		ConfigFilePath: flags.ConfigFilePath,
		Flags:          flags,
		SkipScript:     skipScript,
	})
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := logger.Init(cfg.Logger); err != nil {
		if ext != nil {
			ext.Close()
		}
		return nil, fmt.Errorf("logger: %w", err)
	}

	var themesDir string
	if dir := config.ConfigDir(); dir != "" {
		themesDir = filepath.Join(dir, config.ThemesDirName)
	}
	themes := theme.NewManager(themesDir)
	if cfg.Editor.Theme != "" {
		if err := themes.Select(cfg.Editor.Theme); err != nil {
			logger.Warnf("CLI: theme %q not applied: %v", cfg.Editor.Theme, err)
		}
	}
	return &session{cfg: cfg, ext: ext, themes: themes}, nil
}

func (s *session) close() {
	if s.ext != nil {
		s.ext.Close()
	}
	logger.Close()
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

func runEditor(parent context.Context, flags *config.Flags, filePath string) error {
	s, err := startup(flags, false)
	if err != nil {
		return err
	}
	defer s.close()

	logger.Infof("Starting %s", config.AppName)
	if filePath != "" {
		logger.Debugf("File path specified: %s", filePath)
	} else {
		logger.Debugf("No file specified, starting empty.")
	}

	ui, err := tui.New(s.themes.Current())
	if err != nil {
		return err
	}
	a, err := app.NewApp(ui, filePath, app.Options{Config: s.cfg, Extension: s.ext, Themes: s.themes})
	if err != nil {
		ui.Close()
		logger.Errorf("Error initializing application: %v", err)
		return err
	}

	ctx, cancel := signalContext(parent)
	defer cancel()
	if err := a.Run(ctx); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		return err
	}
	logger.Infof("%s finished.", config.AppName)
	return nil
}
