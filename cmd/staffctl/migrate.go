package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/staffhq/staff-bot/internal/persistence"
)

// NewMigrateCommand applies schema migrations and exits.
func NewMigrateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.cfg.Database.Validate(); err != nil {
				return err
			}
			db, err := persistence.Open(cmd.Context(), opts.cfg.Database, opts.logger)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer db.Close()

			if err := persistence.Migrate(cmd.Context(), db, opts.logger); err != nil {
				return fmt.Errorf("run migrations: %w", err)
			}
			opts.logger.Info("migrations applied")
			return nil
		},
	}
}
