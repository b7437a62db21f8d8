package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the score history from a CSV or JSON file",
	Long: "Discards the current score series, replays one scoring step per row of the " +
		"file, and persists the last row's parameters as the confirmed set.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		model, cleanup, err := buildModel(cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		count, err := model.Import(args[0])
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		fmt.Printf("Successfully imported %d records\n", count)
		return nil
	},
}
