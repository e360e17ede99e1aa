package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizEvent records one quiz lifecycle event: a generation that loaded
// items into the session, or a scored submission.
type QuizEvent struct {
	ent.Schema
}

func (QuizEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Comment("UUID of the interactive session"),
		field.Enum("action").
			Values("generated", "scored").
			Comment("Which lifecycle step this event records"),
		field.String("source").
			Default("").
			Comment("Subject origin: document, taxonomy, topic"),
		field.String("kind").
			Default("").
			Comment("Question kind: multiple-choice, true-false"),
		field.String("difficulty").
			Default("").
			Comment("Easy, Medium or Hard"),
		field.String("language").
			Default(""),
		field.Int("requested").
			Default(0).
			Comment("Item count asked of the generator"),
		field.Int("accepted").
			Default(0).
			Comment("Unique items that survived dedup"),
		field.Int("score").
			Default(0).
			Comment("Correct answers on submission"),
		field.Int("total").
			Default(0).
			Comment("Items scored on submission"),
	}
}

func (QuizEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
