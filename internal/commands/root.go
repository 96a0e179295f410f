// Package commands implements the budgetctl operator CLI.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"budget-coach/internal/app"
	"budget-coach/internal/config"
	"budget-coach/internal/database"

	"github.com/spf13/cobra"
)

// Runtime opens the configuration and database a command works on.
type Runtime struct {
	LoadConfig func() *config.Config
	OpenDB     func(cfg *config.Config) (*database.DB, error)
	Logger     *slog.Logger
}

// DefaultRuntime reads the environment and opens the configured database.
func DefaultRuntime() Runtime {
	return Runtime{
		LoadConfig: config.Load,
		OpenDB:     database.Initialize,
	}
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand(rt Runtime) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "budgetctl",
		Short: "Operate the budget coach ledger",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newMigrateCommand(rt),
		newSyncCommand(rt),
		newDashboardCommand(rt),
		newImportCommand(rt),
		newHashPasswordCommand(),
	)

	return rootCmd
}

// withApp opens the database, builds the app and closes the database when fn
// returns.
func (rt Runtime) withApp(fn func(a *app.App) error) error {
	cfg := rt.LoadConfig()
	logger := rt.Logger
	if logger == nil {
		logger = app.NewLogger(cfg.Server.Environment)
	}

	db, err := rt.OpenDB(cfg)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	return fn(app.New(cfg, db, logger))
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
