package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/gradecast/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print the persisted score series",
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

		limit, _ := cmd.Flags().GetInt("limit")
		records, err := events.QueryScores(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query score events: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No score history yet.")
			return nil
		}

		fmt.Printf("%-6s %-8s %-9s %s\n", "STEP", "SCORE", "KIND", "RECORDED")
		for _, rec := range records {
			fmt.Printf("%-6d %-8.1f %-9s %s\n",
				rec.TimeStep, rec.Score, rec.Kind, rec.Timestamp.Local().Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 0, "Only show the N most recent entries (0 = all)")
}
