package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/altechdata/postcode-api/internal/config"
	"github.com/altechdata/postcode-api/internal/logger"
	"github.com/altechdata/postcode-api/internal/models"
	"github.com/altechdata/postcode-api/internal/repository"
	"github.com/altechdata/postcode-api/internal/services"
	"github.com/spf13/cobra"
)

func newLookupCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <postcodes>",
		Short: "Look up a comma-separated list of up to 5 postcodes",
		Long: `Prints the lookup result as JSON, keyed by each trimmed token in input order.
Malformed or unknown postcodes are reported per token. Exits non-zero when
more than 5 postcodes are given or the database cannot be queried.`,
		Example: `  postcodes lookup "2000,3000,abcd"
  postcodes --driver sqlite --db-path ./postcodes.db lookup 0800`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, opts, args[0])
		},
	}
}

func runLookup(cmd *cobra.Command, opts *rootOptions, raw string) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	log := logger.NewWithOutput(cfg.Log.Level, "text", cmd.ErrOrStderr())

	repo, err := repository.Open(cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := repo.Close(); err != nil {
			log.WithError(err).Warn("Failed to close repository")
		}
	}()

	result, err := services.NewLookupService(repo, log).Handle(cmd.Context(), raw)
	if err != nil {
		if werr := writeJSON(cmd.OutOrStdout(), models.ErrorResponse{Error: err.Error()}); werr != nil {
			log.WithError(werr).Warn("Failed to write error body")
		}
		return err
	}

	return writeJSON(cmd.OutOrStdout(), result)
}

// loadConfig reads the environment and applies flag overrides
func loadConfig(opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if opts.driver != "" {
		cfg.Database.Driver = opts.driver
	}
	if opts.dbPath != "" {
		cfg.Database.Path = opts.dbPath
	}
	if opts.table != "" {
		cfg.Database.Table = opts.table
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
