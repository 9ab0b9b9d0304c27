package cmd

import (
	"fmt"

	"github.com/jake/detectlang/internal/report"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List known extensions and their languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := report.Table(id)
			if len(rows) == 0 {
				return fmt.Errorf("unknown language id: %s", id)
			}
			return report.Render(cmd.OutOrStdout(), a.cfg.Output.Format, rows)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Only list extensions of this language ID")
	return cmd
}
