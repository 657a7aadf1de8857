package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the global leaderboard",
	Run: func(cmd *cobra.Command, args []string) {
		sdk, err := newSDK(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		if !navigate(sdk, "/leaderboard") {
			return
		}

		entries, err := sdk.Leaderboard(cmd.Context())
		if err != nil {
			exitIfSdkError(err)
		}

		for _, e := range entries {
			fmt.Printf("%2d. %s - avg %.2f%% over %d attempts (pass rate %.0f%%)\n",
				e.Rank, e.FullName, e.AverageScore, e.TotalAttempts, e.PassRate)
		}
	},
}

func init() {
	rootCmd.AddCommand(leaderboardCmd)
}
