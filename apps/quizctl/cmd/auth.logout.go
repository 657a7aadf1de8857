package cmd

import (
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Destroy the stored session",
	Run: func(cmd *cobra.Command, args []string) {
		sdk, err := newSDK(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		sdk.Logout()
	},
}

func init() {
	authCmd.AddCommand(logoutCmd)
}
