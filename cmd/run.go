package cmd

import (
	"fmt"

	"github.com/mujeeb/quizdev/internal/app"
	"github.com/mujeeb/quizdev/internal/llm"
	"github.com/mujeeb/quizdev/internal/quizgen"
	"github.com/mujeeb/quizdev/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()

	// Quiz generation needs a working provider up front; there is no
	// degraded mode without one.
	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w\n\nSet QUIZDEV_LLM_PROVIDER and the matching API key, or export GOOGLE_API_KEY / OPENAI_API_KEY / ANTHROPIC_API_KEY / OPENROUTER_API_KEY", err)
	}

	return app.Run(app.Options{
		Generator: quizgen.New(provider, quizgen.DefaultConfig()),
		Provider:  provider,
		EventRepo: eventRepo,
	})
}
