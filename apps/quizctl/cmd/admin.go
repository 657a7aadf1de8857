package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administration commands (dashboard, users, subjects)",
	Long: `Administration area of the Quiz Master platform. Every subcommand is
gated by the admin role; non-admin sessions are redirected to their own
dashboard, same as in the web client.`,
}

var adminDashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show platform-wide stats",
	Run: func(cmd *cobra.Command, args []string) {
		sdk, err := newSDK(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		if !navigate(sdk, "/admin/dashboard") {
			return
		}

		stats, err := sdk.AdminStats(cmd.Context())
		if err != nil {
			exitIfSdkError(err)
		}

		fmt.Printf("Users: %d (%d active)\n", stats.TotalUsers, stats.ActiveUsers)
		fmt.Printf("Subjects: %d, chapters: %d, quizzes: %d\n",
			stats.TotalSubjects, stats.TotalChapters, stats.TotalQuizzes)
		fmt.Printf("Total attempts: %d\n", stats.TotalAttempts)
	},
}

var adminUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List registered users",
	Run: func(cmd *cobra.Command, args []string) {
		sdk, err := newSDK(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		if !navigate(sdk, "/admin/users") {
			return
		}

		users, err := sdk.AdminUsers(cmd.Context())
		if err != nil {
			exitIfSdkError(err)
		}

		for _, u := range users {
			state := "active"
			if !u.IsActive {
				state = "blocked"
			}
			fmt.Printf("%d %s <%s> (%s)\n", u.ID, u.FullName, u.Email, state)
		}
	},
}

var adminSubjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "List subjects for administration",
	Run: func(cmd *cobra.Command, args []string) {
		sdk, err := newSDK(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		if !navigate(sdk, "/admin/subjects") {
			return
		}

		subjects, err := sdk.AdminSubjects(cmd.Context())
		if err != nil {
			exitIfSdkError(err)
		}

		for _, s := range subjects {
			fmt.Printf("%d %s (%s) - %d chapters\n", s.ID, s.Name, s.Slug, s.ChaptersCount)
		}
	},
}

func init() {
	adminCmd.AddCommand(adminDashboardCmd)
	adminCmd.AddCommand(adminUsersCmd)
	adminCmd.AddCommand(adminSubjectsCmd)
	rootCmd.AddCommand(adminCmd)
}
