package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication with the Quiz Master server (login, register, logout, status)",
	Long: `Manage authentication against a running Quiz Master server.

Subcommands obtain a token pair (login, register), destroy it (logout),
and inspect the current session (status). Tokens are stored in the OS
keyring for use by other quizctl commands.

Examples:
  quizctl auth login --email you@example.com
  quizctl auth logout
  quizctl auth status`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("auth called")
	},
}

func init() {
	rootCmd.AddCommand(authCmd)
}
