package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IRONalways17/Quiz-Master-APP/pkg/qmsdk"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a Quiz Master account and sign in",
	Run: func(cmd *cobra.Command, args []string) {
		sdk, err := newSDK(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		reg := qmsdk.Registration{}
		reg.Username, _ = cmd.Flags().GetString("username")
		reg.Email, _ = cmd.Flags().GetString("email")
		reg.Password, _ = cmd.Flags().GetString("password")
		reg.FullName, _ = cmd.Flags().GetString("full-name")
		reg.Qualification, _ = cmd.Flags().GetString("qualification")

		sdk.Router.Navigate("/register")
		user, err := sdk.Register(cmd.Context(), reg)
		if err != nil {
			os.Exit(1)
		}

		fmt.Printf("Registered as: %s (@%s)\n", user.FullName, user.Username)
	},
}

func init() {
	registerCmd.Flags().String("username", "", "unique username")
	registerCmd.Flags().String("email", "", "account email")
	registerCmd.Flags().String("password", "", "account password")
	registerCmd.Flags().String("full-name", "", "display name")
	registerCmd.Flags().String("qualification", "", "qualification (optional)")
	authCmd.AddCommand(registerCmd)
}
