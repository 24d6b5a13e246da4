// Package main provides the forumhub server executable: the HTTP API plus
// schema and user administration commands.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "forumhub-server",
	Short: "Forum topics REST API",
	Long: `forumhub-server serves the forum topics REST API.

Configuration is read from environment variables and an optional .env file.

Available commands:
  serve      Start the HTTP server
  migrate    Create or update the database schema
  user add   Register a forum user
  version    Print the version number`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
