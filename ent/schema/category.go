package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Category is a topic grouping for questions.
type Category struct {
	ent.Schema
}

func (Category) Fields() []ent.Field {
	return []ent.Field{
		field.String("category_id").
			NotEmpty().
			Unique().
			Comment("External identifier referenced by questions and records"),
		field.String("name").
			NotEmpty().
			Comment("Display name"),
	}
}
