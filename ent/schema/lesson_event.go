package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonEvent records one notification emitted by a running lesson
// module: a phase change, a prediction, a parameter tweak, a gallery
// view, or mastery. Quiz submissions get their own entity because the
// stats screens aggregate over them.
type LessonEvent struct {
	ent.Schema
}

func (LessonEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LessonEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic_id").
			NotEmpty().
			Comment("Topic the lesson was running"),
		field.String("topic_title").
			NotEmpty().
			Comment("Display title at the time of the event"),
		field.String("event_type").
			NotEmpty().
			Comment("phase_change, prediction_made, param_changed, gallery_viewed, quiz_submitted, or mastery_reached"),
		field.JSON("details", map[string]any{}).
			Optional().
			Comment("Event-type-specific payload"),
	}
}

func (LessonEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_id"),
		index.Fields("event_type"),
	}
}
