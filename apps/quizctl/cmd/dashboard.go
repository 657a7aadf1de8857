package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show your dashboard stats",
	Run: func(cmd *cobra.Command, args []string) {
		sdk, err := newSDK(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		if !navigate(sdk, "/dashboard") {
			return
		}

		stats, err := sdk.UserStats(cmd.Context())
		if err != nil {
			exitIfSdkError(err)
		}

		fmt.Printf("Attempts: %d (passed %d)\n", stats.TotalAttempts, stats.PassedAttempts)
		fmt.Printf("Average score: %.2f%%\n", stats.AverageScore)
		fmt.Printf("Subjects: %d, quizzes: %d\n", stats.SubjectsCount, stats.QuizzesCount)
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
