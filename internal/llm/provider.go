// Package llm abstracts the hosted model services quizdev can call and
// records every call as an event.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is one hosted text-generation service. Implementations wrap
// a vendor SDK and normalize its request and response shapes.
type Provider interface {
	// Generate sends a prompt to the model and returns its reply.
	// When the request carries a Schema, the provider uses its native
	// structured-output mechanism and the response Content is the
	// validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports which model this provider was configured with.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system prompt. Sets the model's role and output rules.
	System string

	// Messages is the conversation. Quiz generation is single-turn, so
	// this normally holds one user message.
	Messages []Message

	// Schema is the JSON Schema the reply must conform to. When nil the
	// response Content is the raw text reply.
	Schema *Schema

	// MaxTokens caps the reply length.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0. Zero means deterministic.
	Temperature float64
}

// Message is a single conversation message.
type Message struct {
	Role    Role
	Content string
}

// Role labels who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "quiz-items".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the schema body as decoded JSON.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output. With a Schema on the request this
	// is schema-valid JSON; without one it is the raw text reply.
	Content json.RawMessage

	// Usage is the token count the provider reported for this call.
	Usage Usage

	// Model is the model that actually served the call, which can
	// differ from the requested alias.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage is one call's token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
