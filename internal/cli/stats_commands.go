package cli

import (
	"github.com/spf13/cobra"

	"github.com/ebenezerdon/lunasleep-sleep-tracker/internal/render"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show summary statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			render.Summary(cmd.OutOrStdout(), app.Stats(cmd.Context()))
			return nil
		},
	}
}

func newChartCmd(app *App) *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Show the trailing sleep-duration chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			render.Chart(cmd.OutOrStdout(), app.Chart(cmd.Context(), days))
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", app.Config().HistogramDays, "trailing window in days")
	return cmd
}
