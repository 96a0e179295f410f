package commands

import (
	"fmt"
	"time"

	"budget-coach/internal/app"
	"budget-coach/internal/models"

	"github.com/spf13/cobra"
)

func newDashboardCommand(rt Runtime) *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Print the dashboard snapshot as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day := models.Day(time.Now())
			if asOf != "" {
				parsed, err := models.ParseDay(asOf)
				if err != nil {
					return fmt.Errorf("invalid --as-of %q, use YYYY-MM-DD", asOf)
				}
				day = parsed
			}

			return rt.withApp(func(a *app.App) error {
				snapshot, err := a.Dashboard.ComputeDashboard(cmd.Context(), day)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), snapshot)
			})
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "reference date (YYYY-MM-DD), defaults to today")

	return cmd
}
