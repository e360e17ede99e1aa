package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped by goreleaser through -ldflags; source builds
// report "(devel)".
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the quizdev version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("quizdev %s\n", version)
	},
}
