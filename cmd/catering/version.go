package catering

import (
	"fmt"

	"github.com/spf13/cobra"
)

const appVersion = "v2.0.2"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version metadata",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "catering %s\n", appVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
