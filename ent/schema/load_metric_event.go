package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LoadMetricEvent records one cognitive-load measurement taken during a
// study session. Rows are append-only; within a session their timestamps
// strictly increase.
type LoadMetricEvent struct {
	ent.Schema
}

func (LoadMetricEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

// IndicatorRecord is the serialized form of a stress indicator attached
// to a load metric.
type IndicatorRecord struct {
	Type         string  `json:"type"`
	Severity     string  `json:"severity"`
	Contribution float64 `json:"contribution"`
}

func (LoadMetricEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the session this measurement belongs to"),
		field.String("user_id").
			NotEmpty(),
		field.Float("load_score").
			Comment("Instantaneous cognitive load, 0-100"),
		field.Float("confidence").
			Comment("Estimator confidence, 0-1"),
		field.JSON("indicators", []IndicatorRecord{}).
			Optional().
			Comment("Stress indicators active at measurement time"),
		field.String("topic").
			Default("").
			Comment("Topic tag supplied by the orchestrator"),
		field.Int("hour").
			Comment("Local hour of day (0-23) at measurement time"),
		field.Int("weekday").
			Comment("Local day of week (0=Sunday) at measurement time"),
		field.Int("days_to_exam").
			Default(-1).
			Comment("Days until the next exam, -1 when unknown"),
	}
}

func (LoadMetricEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("session_id"),
		index.Fields("user_id", "timestamp"),
	}
}
