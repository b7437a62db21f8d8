package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/gradecast/internal/subject"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the current score, prediction, and trend",
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

		confirmed := model.Confirmed()
		fmt.Println("Confirmed parameters:")
		for _, name := range subject.ParameterNames {
			fmt.Printf("  %-14s %3d\n", name, confirmed[name])
		}
		fmt.Println()

		if score, ok := model.CurrentScore(); ok {
			fmt.Printf("Pass probability: %.1f%%\n", score)
		} else {
			fmt.Println("Pass probability: no data")
		}
		fmt.Printf("Prediction:       %s\n", model.PredictPassFail().Label)

		trend := model.PredictTrend()
		if trend.Label == subject.TrendNoData.Label {
			fmt.Printf("Trend:            %s\n", trend.Label)
		} else {
			fmt.Printf("Trend:            %s (slope %+.2f)\n", trend.Label, trend.Slope)
		}
		return nil
	},
}
