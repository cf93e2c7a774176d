package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is a quiz item in the content bank.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").
			NotEmpty().
			Unique().
			Comment("External identifier used by records and events"),
		field.String("category_id").
			NotEmpty(),
		field.String("prompt").
			NotEmpty().
			Comment("Text shown to the learner"),
		field.String("answer").
			NotEmpty().
			Comment("Canonical correct answer"),
		field.Bool("active").
			Default(true).
			Comment("Inactive questions stay out of new queues"),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category_id"),
	}
}
