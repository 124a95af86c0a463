package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bethropolis/lazyhex/internal/config"
)

func newThemesCmd(flags *config.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available themes, marking the active one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := startup(flags, true)
			if err != nil {
				return err
			}
			defer s.close()

			active := s.themes.Current().Name
			for _, name := range s.themes.ListThemes() {
				marker := " "
				if strings.EqualFold(name, active) {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name)
			}
			return nil
		},
	}
}
