package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time via
// -ldflags "-X github.com/timvw/tmuxify/cmd.Version=v1.2.3".
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the tmuxify version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "tmuxify "+Version)
	},
}

func init() {
	rootCmd.Version = Version
	rootCmd.AddCommand(versionCmd)
}
