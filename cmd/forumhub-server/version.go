package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "0.1.0" // overridden at build time with -ldflags "-X main.version=..."

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of forumhub-server",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "forumhub-server v%s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
