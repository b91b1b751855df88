package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StressPattern holds a mined recurring stress response pattern. The
// (user_id, pattern_type, trigger_signature) triple is the merge key:
// re-mining folds new observations into the existing row.
type StressPattern struct {
	ent.Schema
}

func (StressPattern) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("pattern_type").
			NotEmpty().
			Comment("TOPIC_SPECIFIC, TIME_OF_DAY, DAY_OF_WEEK or EXAM_PROXIMITY"),
		field.String("trigger_signature").
			NotEmpty().
			Comment("Canonical key for the trigger, e.g. topic:physiology"),
		field.JSON("trigger_conditions", map[string]string{}).
			Optional(),
		field.JSON("response_profile", map[string]float64{}).
			Optional().
			Comment("Observed response stats: mean load, peak load, recovery minutes"),
		field.Int("occurrences").
			Comment("Corroborating observations folded into this pattern"),
		field.Float("confidence").
			Comment("0-1, never decreases on merge"),
		field.Time("first_detected_at").
			Immutable(),
		field.Time("last_occurrence"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (StressPattern) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "pattern_type", "trigger_signature").
			Unique(),
		index.Fields("user_id", "confidence"),
	}
}
