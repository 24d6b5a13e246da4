package main

import (
	"github.com/spf13/cobra"

	"github.com/coregx/forumhub"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long: `Apply the embedded migrations for DB_DRIVER using DB_PREFIX as table prefix.
Migrations are idempotent and safe to run on every deploy.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		if err := forumhub.Migrate(cmd.Context(), a.db, a.cfg.Database.Driver, a.cfg.Database.Prefix); err != nil {
			return err
		}
		a.logger.Info("Migrations applied")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
