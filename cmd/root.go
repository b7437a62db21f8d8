package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/gradecast/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "gradecast",
	Short: "Subject pass/fail predictor",
	Long: "Gradecast — terminal tool that scores a subject's pass probability from " +
		"weighted evaluation parameters and tracks the trend over time.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides GRADECAST_CONFIG env var)")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves the config file using the --config flag (highest
// priority), then the GRADECAST_CONFIG env var, then no file at all,
// and loads the layered configuration.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = os.Getenv("GRADECAST_CONFIG")
	}
	return config.Load(path)
}
