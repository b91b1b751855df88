package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle events (start/end/skip).
// The burnout assessor reads these to compute study intensity,
// irregularity and engagement decay.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("user_id").
			NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("start, end or skip"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on end only)"),
		field.Int("interactions").
			Default(0).
			Comment("Total interaction events observed (on end only)"),
		field.Int("correct").
			Default(0).
			Comment("Correct responses (on end only)"),
		field.Float("completion_ratio").
			Default(0).
			Comment("Fraction of the planned session completed (on end only)"),
		field.Int("self_rating").
			Default(0).
			Comment("Learner self-rating 1-5, 0 when not given"),
		field.String("topic").
			Default(""),
		field.Bool("planned").
			Default(true).
			Comment("False for ad hoc sessions outside the schedule"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
