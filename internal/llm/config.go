package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all provider configuration.
type Config struct {
	// Provider selects which service to use.
	// Values: "gemini", "openai", "anthropic", "openrouter", "mock"
	Provider string

	Gemini     GeminiConfig
	OpenAI     OpenAIConfig
	Anthropic  AnthropicConfig
	OpenRouter OpenRouterConfig

	// Timeout is the maximum duration for a single request. Default: 60s.
	// Quiz generation asks for up to 50 items in one reply, so this is
	// more generous than a chat-style default.
	Timeout time.Duration
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional override for OpenAI-compatible APIs.
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-2.0-flash-exp"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// DefaultConfig returns a Config with sensible defaults. Gemini is the
// default provider; it is what the quiz prompt was tuned against.
func DefaultConfig() Config {
	return Config{
		Provider:   "gemini",
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Timeout:    60 * time.Second,
	}
}

// envOverride writes the named variable's value into dst when set.
func envOverride(dst *string, name string) {
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}

// ConfigFromEnv builds a Config from QUIZDEV_* environment variables,
// falling back to defaults for anything unset.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	envOverride(&cfg.Provider, "QUIZDEV_LLM_PROVIDER")
	envOverride(&cfg.Gemini.APIKey, "QUIZDEV_GEMINI_API_KEY")
	envOverride(&cfg.Gemini.Model, "QUIZDEV_GEMINI_MODEL")
	envOverride(&cfg.OpenAI.APIKey, "QUIZDEV_OPENAI_API_KEY")
	envOverride(&cfg.OpenAI.Model, "QUIZDEV_OPENAI_MODEL")
	envOverride(&cfg.OpenAI.BaseURL, "QUIZDEV_OPENAI_BASE_URL")
	envOverride(&cfg.Anthropic.APIKey, "QUIZDEV_ANTHROPIC_API_KEY")
	envOverride(&cfg.Anthropic.Model, "QUIZDEV_ANTHROPIC_MODEL")
	envOverride(&cfg.OpenRouter.APIKey, "QUIZDEV_OPENROUTER_API_KEY")
	envOverride(&cfg.OpenRouter.Model, "QUIZDEV_OPENROUTER_MODEL")

	return cfg
}

// DiscoverConfig probes the providers' conventional API key variables
// in priority order (Gemini, then OpenAI, Anthropic, OpenRouter) and
// returns a Config for the first key found. The second return is false
// when no key is set.
func DiscoverConfig() (Config, bool) {
	probes := []struct {
		envVar   string
		provider string
		key      func(*Config) *string
	}{
		{"GOOGLE_API_KEY", "gemini", func(c *Config) *string { return &c.Gemini.APIKey }},
		{"GEMINI_API_KEY", "gemini", func(c *Config) *string { return &c.Gemini.APIKey }},
		{"OPENAI_API_KEY", "openai", func(c *Config) *string { return &c.OpenAI.APIKey }},
		{"ANTHROPIC_API_KEY", "anthropic", func(c *Config) *string { return &c.Anthropic.APIKey }},
		{"OPENROUTER_API_KEY", "openrouter", func(c *Config) *string { return &c.OpenRouter.APIKey }},
	}

	for _, p := range probes {
		if k := os.Getenv(p.envVar); k != "" {
			cfg := DefaultConfig()
			cfg.Provider = p.provider
			*p.key(&cfg) = k
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	keys := map[string]struct {
		set    bool
		envVar string
	}{
		"gemini":     {c.Gemini.APIKey != "", "QUIZDEV_GEMINI_API_KEY"},
		"openai":     {c.OpenAI.APIKey != "", "QUIZDEV_OPENAI_API_KEY"},
		"anthropic":  {c.Anthropic.APIKey != "", "QUIZDEV_ANTHROPIC_API_KEY"},
		"openrouter": {c.OpenRouter.APIKey != "", "QUIZDEV_OPENROUTER_API_KEY"},
	}

	if c.Provider == "mock" {
		return nil
	}
	req, ok := keys[c.Provider]
	if !ok {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if !req.set {
		return fmt.Errorf("%s is required for the %s provider", req.envVar, c.Provider)
	}
	return nil
}
