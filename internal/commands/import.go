package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"budget-coach/internal/app"
	"budget-coach/internal/dto"
	"budget-coach/internal/services"

	"github.com/spf13/cobra"
)

func newImportCommand(rt Runtime) *cobra.Command {
	var file string
	var outflowPositive bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import provider transactions from a JSON file",
		Long:  "Import a JSON array of provider transactions. Records already in the ledger are counted as duplicates.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := readProviderTransactions(file)
			if err != nil {
				return err
			}

			convention := services.OutflowNegative
			if outflowPositive {
				convention = services.OutflowPositive
			}

			return rt.withApp(func(a *app.App) error {
				result, err := a.Ledger.SyncTransactions(cmd.Context(), records, convention)
				if err != nil {
					return err
				}
				a.SyncLogger.LogBatchImported(cmd.Context(), "file", *result)
				return writeJSON(cmd.OutOrStdout(), result)
			})
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "path to the JSON file (required)")
	_ = cmd.MarkFlagRequired("file")
	cmd.Flags().BoolVar(&outflowPositive, "outflow-positive", false, "amounts in the file are positive for money leaving the account")

	return cmd
}

func readProviderTransactions(path string) ([]dto.ProviderTransaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var records []dto.ProviderTransaction
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s contains no transactions", path)
	}
	return records, nil
}
