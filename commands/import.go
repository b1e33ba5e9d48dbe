package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pasacalle/database"
	"pasacalle/service"
)

var (
	// Import flags
	sheetPath string
)

var importCmd = &cobra.Command{
	Use:   "import-dishes",
	Short: "Load dishes from an xlsx workbook",
	Long: `Load dishes from the first sheet of an xlsx workbook. The first row
is a header; the columns are ID_RESTAURANTE, CATEGORIA_PLATO,
NOMBRE_PLATO, PRECIO_PLATO and an optional DESCRIPCION_PLATO.

Examples:
  pasacalle import-dishes --file menu.xlsx`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(cmd)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVarP(&sheetPath, "file", "f", "", "Workbook to import (required)")
	_ = importCmd.MarkFlagRequired("file")
}

func runImport(cmd *cobra.Command) error {
	f, err := os.Open(sheetPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", sheetPath, err)
	}
	defer f.Close()

	dishes, skipped, err := service.ParseDishSheet(f)
	if err != nil {
		return err
	}

	_, db, log, err := setup()
	if err != nil {
		return err
	}
	defer database.Close(db)

	for _, s := range skipped {
		log.Warn().Int("row", s.Row).Str("reason", s.Reason).Msg("dish row skipped")
	}
	if len(dishes) == 0 {
		return fmt.Errorf("no valid rows in %s", sheetPath)
	}

	n, err := service.NewMutationService(db).CreateDishes(cmd.Context(), dishes)
	if err != nil {
		return err
	}
	log.Info().Int("imported", n).Int("skipped", len(skipped)).Str("file", sheetPath).Msg("dishes imported")
	return nil
}
