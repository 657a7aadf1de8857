package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show your quiz attempts, newest first",
	Run: func(cmd *cobra.Command, args []string) {
		sdk, err := newSDK(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		if !navigate(sdk, "/scores") {
			return
		}

		page, _ := cmd.Flags().GetInt("page")
		perPage, _ := cmd.Flags().GetInt("per-page")
		result, err := sdk.Scores(cmd.Context(), page, perPage)
		if err != nil {
			exitIfSdkError(err)
		}

		for _, sc := range result.Scores {
			verdict := "failed"
			if sc.Passed {
				verdict = "passed"
			}
			fmt.Printf("#%d %s: %.0f/%.0f (%.1f%%) %s\n",
				sc.ID, sc.QuizTitle, sc.Score, sc.MaxScore, sc.Percentage, verdict)
		}
		fmt.Printf("page %d of %d (%d total)\n", result.Page, result.Pages, result.Total)
	},
}

func init() {
	scoresCmd.Flags().Int("page", 1, "page number")
	scoresCmd.Flags().Int("per-page", 20, "results per page")
	rootCmd.AddCommand(scoresCmd)
}
