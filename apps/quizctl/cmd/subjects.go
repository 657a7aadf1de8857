package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "List subjects and their chapters",
	Run: func(cmd *cobra.Command, args []string) {
		sdk, err := newSDK(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}
		if !navigate(sdk, "/subjects") {
			return
		}

		subjects, err := sdk.Subjects(cmd.Context())
		if err != nil {
			exitIfSdkError(err)
		}

		for _, s := range subjects {
			fmt.Printf("%s (%s) - %d chapters, %d quizzes\n", s.Name, s.Slug, s.ChaptersCount, s.QuizzesCount)
			for _, c := range s.Chapters {
				fmt.Printf("  %d. %s (%s)\n", c.ChapterNumber, c.Name, c.Slug)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(subjectsCmd)
}
