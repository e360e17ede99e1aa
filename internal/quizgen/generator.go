package quizgen

import (
	"context"
	"errors"

	"github.com/mujeeb/quizdev/internal/llm"
)

// Generator produces quiz items for a set of parameters.
type Generator interface {
	// Generate requests params.Count new items about params.Subject.
	// The history is rendered into the prompt so the model avoids
	// repeats; the caller still runs FilterSeen on the result.
	// Returns items in reply order, possibly empty.
	Generate(ctx context.Context, params Params, history []Item) ([]Item, error)
}

// LLMGenerator implements Generator on top of an llm.Provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

func (g *LLMGenerator) Generate(ctx context.Context, params Params, history []Item) ([]Item, error) {
	// Parameter validation happens before any provider call.
	if err := params.Validate(); err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, "quiz-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(params, history, g.config.MaxHistoryPrompt)},
		},
		Schema:      ItemsSchema(params.Kind),
		MaxTokens:   g.config.maxTokens(params.Count),
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		// A schema-invalid reply is a parse failure, not a service fault.
		var invalid *llm.ErrInvalidResponse
		if errors.As(err, &invalid) {
			return nil, &MalformedOutputError{Err: invalid}
		}
		return nil, err
	}

	return ParseItems(resp.Content, params.Kind)
}
