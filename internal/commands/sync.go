package commands

import (
	"budget-coach/internal/app"

	"github.com/spf13/cobra"
)

func newSyncCommand(rt Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Pull new transactions from every linked bank",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.withApp(func(a *app.App) error {
				result, err := a.BankLinks.SyncAll(cmd.Context())
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), result)
			})
		},
	}
}
