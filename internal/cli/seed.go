package cli

import (
	"solidarmap/internal/database"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the default user, resource and zone types",
	Long: `Insert the default lookup rows. Tables that already hold rows are left untouched,
so seeding twice is harmless.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.Open(cfg.Database, log)
		if err != nil {
			return err
		}
		defer func() {
			if err := database.Close(db); err != nil {
				log.WithError(err).Warn("failed to close database")
			}
		}()

		if err := database.Migrate(db); err != nil {
			return err
		}

		_, err = database.Seed(cmd.Context(), db, log)
		return err
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
