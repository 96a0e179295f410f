package commands

import (
	"database/sql"
	"fmt"

	"budget-coach/internal/database"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

func newMigrateCommand(rt Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect the postgres schema migrations",
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 1 {
				return fmt.Errorf("--steps must be at least 1")
			}
			return rt.withMigrationRunner(func(runner *database.MigrationRunner) error {
				if err := runner.Down(steps); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "rolled back %d migration(s)\n", steps)
				return nil
			})
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return rt.withMigrationRunner(func(runner *database.MigrationRunner) error {
					if err := runner.Run(); err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
					return nil
				})
			},
		},
		down,
		&cobra.Command{
			Use:   "status",
			Short: "Print the current schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return rt.withMigrationRunner(func(runner *database.MigrationRunner) error {
					version, dirty, err := runner.Status()
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
					return nil
				})
			},
		},
	)

	return cmd
}

// withMigrationRunner opens a plain postgres handle; migrations bypass gorm.
func (rt Runtime) withMigrationRunner(fn func(runner *database.MigrationRunner) error) error {
	cfg := rt.LoadConfig()
	if cfg.Database.Driver != database.DriverPostgres {
		return fmt.Errorf("migrations need the %s driver, configured driver is %q", database.DriverPostgres, cfg.Database.Driver)
	}

	sqlDB, err := sql.Open("postgres", cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("opening postgres: %w", err)
	}
	defer sqlDB.Close()

	return fn(database.NewMigrationRunner(sqlDB, cfg.Database.MigrationsPath))
}
