package cli

import (
	"github.com/spf13/cobra"

	"github.com/ebenezerdon/lunasleep-sleep-tracker/internal/config"
)

func (a *App) Config() *config.Config { return a.cfg }

// NewRootCmd wires every user action as a subcommand over the App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "lunasleep",
		Short:         "Personal sleep-log tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newAddCmd(app),
		newEditCmd(app),
		newDeleteCmd(app),
		newListCmd(app),
		newStatsCmd(app),
		newChartCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newSampleCmd(app),
		newClearCmd(app),
	)
	return root
}
