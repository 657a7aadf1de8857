package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var quizzesCmd = &cobra.Command{
	Use:   "quizzes <subject-slug> <chapter-slug>",
	Short: "List the quizzes of a chapter",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		sdk, err := newSDK(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		if !navigate(sdk, fmt.Sprintf("/subjects/%s/chapters/%s/quizzes", args[0], args[1])) {
			return
		}

		quizzes, err := sdk.ChapterQuizzes(cmd.Context(), args[0], args[1])
		if err != nil {
			exitIfSdkError(err)
		}

		for _, q := range quizzes {
			state := "available"
			if !q.CanAttempt {
				state = "unavailable"
			}
			fmt.Printf("%s (%s) - %d min, pass %.0f%%, attempts %d/%d, %s\n",
				q.Title, q.Slug, q.DurationMinutes, q.PassingScore, q.UserAttempts, q.MaxAttempts, state)
		}
	},
}

func init() {
	rootCmd.AddCommand(quizzesCmd)
}
