package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent is the audit record of one model call: what was sent,
// what came back, and what it cost in tokens and time.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			Comment("gemini, openai, anthropic or openrouter"),
		field.String("model").
			Comment("Model ID the call actually used"),
		field.String("purpose").
			Comment("Caller-supplied label such as quiz-gen or extract"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int64("latency_ms").
			Default(0).
			Comment("Round-trip time of the call"),
		field.Bool("success"),
		field.String("error_message").
			Default("").
			Comment("Set only when success is false"),
		field.Text("request_body").
			Default("").
			Comment("Rendered prompt, messages and response schema"),
		field.Text("response_body").
			Default("").
			Comment("Raw model reply"),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
		index.Fields("purpose"),
		index.Fields("success"),
	}
}
