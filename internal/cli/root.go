package cli

import (
	"github.com/alexanderramin/floatsync/internal/app"
	"github.com/spf13/cobra"
)

// App holds the use cases and per-invocation settings used by CLI commands.
type App struct {
	Float   app.RunFloatUseCase
	History app.RunHistoryUseCase

	// SheetID and FloatColumnTitle come from config; flags override them.
	SheetID          string
	FloatColumnTitle string

	// Preflight, when set, validates settings before a run against sheetID.
	Preflight func(sheetID string) error

	// IsInteractive reports whether stdout is a terminal. Nil means plain output.
	IsInteractive func() bool
}

func (a *App) styled() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "floatsync" command and registers all
// subcommands against the provided App.
func NewRootCmd(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "floatsync",
		Short:         "Compute total float for a Smartsheet schedule and write it back",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRunCmd(a),
		newHistoryCmd(a),
		newShowCmd(a),
	)

	return root
}
