package cli

import (
	"fmt"

	"github.com/alexanderramin/floatsync/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(a *App) *cobra.Command {
	var (
		limit   int
		sheetID string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded float runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := a.History.List(cmd.Context(), sheetID, limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRunList(runs, a.styled()))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to list")
	cmd.Flags().StringVar(&sheetID, "sheet", "", "Only list runs for this sheet ID")

	return cmd
}
