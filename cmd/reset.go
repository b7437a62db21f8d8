package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/gradecast/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the score history",
	Long:  "Deletes every recorded score event. Confirmed parameters are kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		st, err := store.Open(cfg.HistoryDB)
		if err != nil {
			return fmt.Errorf("open history store: %w", err)
		}
		defer st.Close()

		events, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("open event repo: %w", err)
		}

		if err := events.ResetScores(cmd.Context()); err != nil {
			return fmt.Errorf("reset score history: %w", err)
		}

		fmt.Println("Score history cleared.")
		return nil
	},
}
