package main

import (
	"github.com/spf13/cobra"
)

// rootOptions carry flags shared by every subcommand
type rootOptions struct {
	driver   string
	dbPath   string
	table    string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "postcodes",
		Short: "Look up Australian postcodes from the command line",
		Long: `Runs the same batch lookup as the HTTP API directly against the database.
The database is selected by the DB_* environment variables, optionally
overridden by the flags below.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.driver, "driver", "", "Database driver (postgres, sqlite); overrides DB_DRIVER")
	cmd.PersistentFlags().StringVar(&opts.dbPath, "db-path", "", "SQLite database file; overrides DB_PATH")
	cmd.PersistentFlags().StringVar(&opts.table, "table", "", "Postcode table name; overrides DB_TABLE")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level written to stderr")

	cmd.AddCommand(newLookupCmd(opts))
	return cmd
}
