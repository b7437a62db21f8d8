package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time via
// -ldflags "-X github.com/abhisek/gradecast/cmd.version=v1.2.3".
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the gradecast version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gradecast %s\n", version)
	},
}
