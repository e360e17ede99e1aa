package quizgen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// TokensPerItem is the response token budget allotted per requested
	// question.
	TokensPerItem int

	// MinTokens is the floor for the response token budget, so tiny
	// requests are not starved.
	MinTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64

	// MaxHistoryPrompt is the maximum number of history questions
	// rendered into the prompt's "already asked" list.
	MaxHistoryPrompt int
}

// DefaultConfig returns recommended defaults.
func DefaultConfig() Config {
	return Config{
		TokensPerItem:    220,
		MinTokens:        1024,
		Temperature:      0.7,
		MaxHistoryPrompt: 100,
	}
}

// maxTokens returns the response budget for a request of count items.
func (c Config) maxTokens(count int) int {
	budget := c.TokensPerItem * count
	if budget < c.MinTokens {
		return c.MinTokens
	}
	return budget
}
