package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/IRONalways17/Quiz-Master-APP/pkg/qmsdk"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session state",
	Run: func(cmd *cobra.Command, args []string) {
		sdk, err := newSDK(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		if !sdk.Session.IsAuthenticated() {
			fmt.Println("Not logged in")
			return
		}

		u := sdk.Session.CurrentUser()
		fmt.Printf("Logged in as: %s (%s)\n", u.FullName, u.Email)
		fmt.Printf("Role: %s\n", sdk.Session.Role())

		if claims, err := qmsdk.ClaimsFromToken(sdk.Session.AccessToken()); err == nil && claims.Exp > 0 {
			fmt.Printf("Token expires: %s\n", time.Unix(claims.Exp, 0).Format(time.RFC3339))
		}
	},
}

func init() {
	authCmd.AddCommand(statusCmd)
}
