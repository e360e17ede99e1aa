package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mujeeb/quizdev/internal/selfupdate"
	"github.com/spf13/cobra"
)

// updateTimeout bounds the whole check-download-apply cycle.
const updateTimeout = 2 * time.Minute

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Download and install the latest release",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), updateTimeout)
		defer cancel()

		checker := selfupdate.NewChecker(selfupdate.WithTimeout(updateTimeout))
		err := checker.Update(ctx,
			&selfupdate.UpdateInput{CurrentVersion: version},
			func(p selfupdate.UpdateProgress) { fmt.Println(p.Message) },
		)

		switch {
		case err == nil:
			return nil
		case errors.Is(err, selfupdate.ErrDevBuild):
			fmt.Println("This is a development build; install a release build to use self-update.")
			return nil
		case errors.Is(err, selfupdate.ErrAlreadyLatest):
			fmt.Println("quizdev is already up to date.")
			return nil
		case os.IsPermission(err):
			return fmt.Errorf("%w\n\nThe binary location is not writable. Try: sudo quizdev update", err)
		default:
			return err
		}
	},
}
