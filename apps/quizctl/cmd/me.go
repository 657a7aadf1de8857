package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show information about the current authenticated user",
	Run: func(cmd *cobra.Command, args []string) {
		sdk, err := newSDK(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		if !navigate(sdk, "/profile") {
			return
		}

		u, err := sdk.Me(cmd.Context())
		if err != nil {
			exitIfSdkError(err)
		}

		fmt.Printf("Logged in: %s (@%s)\n", u.FullName, u.Username)
		fmt.Printf("Email: %s\n", u.Email)
		if u.Qualification != "" {
			fmt.Printf("Qualification: %s\n", u.Qualification)
		}
		fmt.Printf("ID: %d\n", u.ID)
	},
}

func init() {
	rootCmd.AddCommand(meCmd)
}
