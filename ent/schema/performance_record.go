package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PerformanceRecord is the scheduling state for one (question, user)
// pair. There is exactly one row per pair; answers rewrite it in place.
type PerformanceRecord struct {
	ent.Schema
}

func (PerformanceRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").
			NotEmpty().
			Comment("Question this record schedules"),
		field.String("user_id").
			NotEmpty().
			Comment("Owner of the record"),
		field.String("category_id").
			NotEmpty().
			Comment("Category of the question, denormalized for range queries"),
		field.Float("ease_factor").
			Default(2.5).
			Comment("SM-2 ease factor, floored at 1.3"),
		field.Int("interval").
			Default(0).
			Comment("Current inter-review interval in days"),
		field.Int("repetitions").
			Default(0).
			Comment("Consecutive successful reviews"),
		field.Time("next_review").
			Default(time.Now).
			Comment("When the question becomes due again"),
		field.Time("last_reviewed").
			Optional().
			Comment("Wall-clock time of the most recent answer"),
		field.Int("total_attempts").
			Default(0),
		field.Int("correct_attempts").
			Default(0),
		field.Int("incorrect_attempts").
			Default(0),
		field.JSON("confidence_history", []string{}).
			Optional().
			Comment("Last five confidence labels, oldest first"),
	}
}

func (PerformanceRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id", "user_id").Unique(),
		index.Fields("user_id", "category_id"),
		index.Fields("user_id", "next_review"),
	}
}
