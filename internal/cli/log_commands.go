package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ebenezerdon/lunasleep-sleep-tracker/internal/render"
	"github.com/ebenezerdon/lunasleep-sleep-tracker/internal/service"
	"github.com/ebenezerdon/lunasleep-sleep-tracker/internal/timemath"
)

func candidateFlags(cmd *cobra.Command, c *service.Candidate) {
	cmd.Flags().StringVar(&c.Date, "date", "", "night the sleep is attributed to (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&c.Bedtime, "bed", "", "bedtime (HH:MM, 24h)")
	cmd.Flags().StringVar(&c.Waketime, "wake", "", "wake time (HH:MM, 24h)")
	cmd.Flags().Float64Var(&c.Quality, "quality", 3, "quality rating, 1 to 5")
	cmd.Flags().StringVar(&c.Notes, "notes", "", "free-text notes")
}

func newAddCmd(app *App) *cobra.Command {
	var c service.Candidate
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a night of sleep",
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.Date == "" {
				c.Date = timemath.ToISODate(app.now())
			}
			entry, err := app.AddLog(cmd.Context(), &c)
			if err != nil {
				return err
			}
			app.Logger().Infof("added log %s for %s", entry.ID, entry.Date)
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", entry.Date, entry.ID)
			return nil
		},
	}
	candidateFlags(cmd, &c)
	return cmd
}

func newEditCmd(app *App) *cobra.Command {
	var c service.Candidate
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Replace a log wholesale under the same id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := app.UpdateLog(cmd.Context(), args[0], &c)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s (%s)\n", entry.Date, entry.ID)
			return nil
		},
	}
	candidateFlags(cmd, &c)
	return cmd
}

func newDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a log by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := app.DeleteLog(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !removed {
				return fmt.Errorf("no log with id %s", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted")
			return nil
		},
	}
}

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all logs, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			render.List(cmd.OutOrStdout(), app.List(cmd.Context()))
			return nil
		},
	}
}
