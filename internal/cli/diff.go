package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bethropolis/lazyhex/internal/app"
	"github.com/bethropolis/lazyhex/internal/compare"
	"github.com/bethropolis/lazyhex/internal/config"
	"github.com/bethropolis/lazyhex/internal/logger"
	"github.com/bethropolis/lazyhex/internal/tui"
)

func newDiffCmd(flags *config.Flags) *cobra.Command {
	var summary bool
	cmd := &cobra.Command{
		Use:   "diff OLD NEW",
		Short: "Compare two files byte by byte",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if summary {
				return printSummary(cmd.OutOrStdout(), args[0], args[1])
			}
			return runDiff(cmd, flags, args[0], args[1])
		},
	}
	cmd.Flags().BoolVar(&summary, "summary", false, "Print the edit script and counters instead of opening the viewer")
	return cmd
}

// printSummary writes one line per changed region followed by the counters.
func printSummary(w io.Writer, oldPath, newPath string) error {
	oldData, newData, err := app.ReadPair(oldPath, newPath)
	if err != nil {
		return err
	}
	result := compare.New(oldData, newData)
	for _, op := range result.Ops {
		if op.Kind == compare.OpEqual {
			continue
		}
		fmt.Fprintf(w, "%-7s old %#x+%d new %#x+%d\n",
			op.Kind, op.Old.Start, op.Old.Len(), op.New.Start, op.New.Len())
	}
	fmt.Fprintln(w, result.Summary())
	return nil
}

func runDiff(cmd *cobra.Command, flags *config.Flags, oldPath, newPath string) error {
	s, err := startup(flags, true)
	if err != nil {
		return err
	}
	defer s.close()

	ui, err := tui.New(s.themes.Current())
	if err != nil {
		return err
	}
	d, err := app.NewDiffApp(ui, oldPath, newPath, s.cfg, s.themes)
	if err != nil {
		ui.Close()
		logger.Errorf("Error initializing diff view: %v", err)
		return err
	}

	ctx, cancel := signalContext(cmd.Context())
	defer cancel()
	return d.Run(ctx)
}
