package cmd

import (
	"github.com/mujeeb/quizdev/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quizdev",
	Short: "AI quiz developer",
	Long:  "Quizdev — terminal app that generates quizzes about your documents or any topic using a hosted language model.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command; invoking quizdev with no subcommand
// launches the interactive app.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZDEV_DB env var)")

	for _, sub := range []*cobra.Command{resetCmd, statsCmd, llmCmd, updateCmd, versionCmd} {
		rootCmd.AddCommand(sub)
	}
}

// resolveDBPath picks the database location: the --db flag wins, then
// the QUIZDEV_DB environment variable, then the XDG data directory.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
