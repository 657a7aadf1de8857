package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/IRONalways17/Quiz-Master-APP/pkg/qmsdk"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate to the Quiz Master server",
	Long: `Sign in with email and password. On success the token pair is saved to
the OS keyring and subsequent commands use it automatically.

Examples:
	quizctl auth login --email you@example.com --password secret

	# omit --password to be prompted
	quizctl auth login --email you@example.com`,
	Run: runLogin,
}

func runLogin(cmd *cobra.Command, args []string) {
	sdk, err := newSDK(cmd)
	if err != nil {
		log.Fatalf("failed to create client: %v", err)
	}

	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	reader := bufio.NewReader(os.Stdin)
	if email == "" {
		fmt.Print("Email: ")
		line, _ := reader.ReadString('\n')
		email = strings.TrimSpace(line)
	}
	if password == "" {
		fmt.Print("Password: ")
		line, _ := reader.ReadString('\n')
		password = strings.TrimSpace(line)
	}

	sdk.Router.Navigate("/login")
	user, err := sdk.Login(cmd.Context(), qmsdk.Credentials{Email: email, Password: password})
	if err != nil {
		os.Exit(1)
	}

	fmt.Printf("Logged in as: %s (%s)\n", user.FullName, user.Email)
	fmt.Printf("Landing page: %s\n", sdk.Router.Current().Path)
}

func init() {
	loginCmd.Flags().String("email", "", "account email")
	loginCmd.Flags().String("password", "", "account password (prompted when omitted)")
	authCmd.AddCommand(loginCmd)
}
