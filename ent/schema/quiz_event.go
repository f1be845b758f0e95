package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizEvent records one quiz submission.
type QuizEvent struct {
	ent.Schema
}

func (QuizEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic_id").
			NotEmpty().
			Comment("Topic the quiz belongs to"),
		field.Int("score").
			NonNegative().
			Comment("Correct answers out of total"),
		field.Int("total").
			Positive().
			Comment("Number of questions"),
		field.Int("pass_threshold").
			Positive().
			Comment("Minimum score required to pass"),
		field.Bool("passed").
			Comment("Whether score met the threshold"),
	}
}

func (QuizEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_id"),
		index.Fields("passed"),
	}
}
