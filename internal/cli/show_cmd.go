package cli

import (
	"fmt"

	"github.com/alexanderramin/floatsync/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newShowCmd(a *App) *cobra.Command {
	var xlsxPath string

	cmd := &cobra.Command{
		Use:   "show RUN_ID",
		Short: "Show a recorded run and its update batch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := a.History.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRun(detail.Run, detail.Updates, a.styled()))
			if xlsxPath != "" {
				return writeXLSX(xlsxPath, detail.Run, detail.Updates)
			}
			return nil
		},
	}

	addXLSXFlag(cmd.Flags(), &xlsxPath)

	return cmd
}
