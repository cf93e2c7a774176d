package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent is the append-only log of graded answers. The unique
// attempt_id makes replays of the same submission detectable.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Caller- or server-generated idempotency key"),
		field.String("question_id").
			NotEmpty(),
		field.String("user_id").
			NotEmpty(),
		field.String("category_id").
			NotEmpty(),
		field.Bool("correct").
			Comment("Whether the answer was graded correct"),
		field.String("confidence").
			NotEmpty().
			Comment("Self-reported confidence label"),
		field.Int("quality").
			Comment("Derived SM-2 quality, 0 through 5"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("question_id"),
		index.Fields("user_id", "question_id"),
	}
}
