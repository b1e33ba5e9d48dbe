package commands

import (
	"github.com/spf13/cobra"

	"pasacalle/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long: `Create the restaurantes, usuarios, PLATOS and reservas tables and
their foreign keys, or add missing columns to existing ones.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, log, err := setup()
		if err != nil {
			return err
		}
		defer database.Close(db)

		if err := database.Migrate(db); err != nil {
			return err
		}
		log.Info().Msg("schema migrated")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
