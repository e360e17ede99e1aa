package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/mujeeb/quizdev/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz activity statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, repo store.EventRepo) error {
			stats, err := repo.QuizStats(ctx)
			if err != nil {
				return fmt.Errorf("query stats: %w", err)
			}

			if stats.QuizzesGenerated == 0 {
				fmt.Println("No quizzes generated yet.")
				return nil
			}

			fmt.Println("Quiz Activity")
			fmt.Println(strings.Repeat("─", 44))
			fmt.Printf("%-28s  %12d\n", "Quizzes generated", stats.QuizzesGenerated)
			fmt.Printf("%-28s  %12d\n", "Questions requested", stats.ItemsRequested)
			fmt.Printf("%-28s  %12d\n", "Unique questions served", stats.ItemsAccepted)
			if stats.ItemsRequested > 0 {
				fmt.Printf("%-28s  %12d\n", "Dropped as repeats", stats.ItemsRequested-stats.ItemsAccepted)
			}

			fmt.Println()
			fmt.Println("Scoring")
			fmt.Println(strings.Repeat("─", 44))
			fmt.Printf("%-28s  %12d\n", "Quizzes submitted", stats.QuizzesScored)
			fmt.Printf("%-28s  %12d\n", "Questions answered right", stats.CorrectAnswers)
			fmt.Printf("%-28s  %12d\n", "Questions scored", stats.ScoredItems)
			if stats.ScoredItems > 0 {
				acc := float64(stats.CorrectAnswers) / float64(stats.ScoredItems) * 100
				fmt.Printf("%-28s  %11.0f%%\n", "Accuracy", acc)
			}

			return nil
		})
	},
}
