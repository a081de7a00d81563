package cli

import (
	"fmt"

	"github.com/alexanderramin/floatsync/internal/app"
	"github.com/alexanderramin/floatsync/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newRunCmd(a *App) *cobra.Command {
	var (
		sheetID         string
		dryRun          bool
		assignSuccessor bool
		xlsxPath        string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compute float for every scheduled row and write it to the sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.NewRunRequest(a.SheetID)
			if sheetID != "" {
				req.SheetID = sheetID
			}
			if a.FloatColumnTitle != "" {
				req.FloatColumnTitle = a.FloatColumnTitle
			}
			req.DryRun = dryRun
			req.AssignConnectedToSuccessor = assignSuccessor

			if a.Preflight != nil {
				if err := a.Preflight(req.SheetID); err != nil {
					return err
				}
			}

			result, err := a.Float.Run(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRun(result.Run, result.Updates, a.styled()))
			if xlsxPath != "" {
				return writeXLSX(xlsxPath, result.Run, result.Updates)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sheetID, "sheet", "", "Sheet ID (overrides config)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Compute and record without writing to the sheet")
	cmd.Flags().BoolVar(&assignSuccessor, "assign-successor", false, "Write connected-row float to the successor row")
	addXLSXFlag(cmd.Flags(), &xlsxPath)

	return cmd
}
