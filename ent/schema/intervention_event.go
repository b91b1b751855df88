package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InterventionEvent records a learner's response to a recommended
// intervention. Acknowledgements are append-only so that effectiveness
// tracking never rewrites history.
type InterventionEvent struct {
	ent.Schema
}

func (InterventionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (InterventionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("intervention_id").
			NotEmpty().
			Comment("UUID assigned when the intervention was recommended"),
		field.String("action").
			NotEmpty().
			Comment("Intervention action, e.g. rest-day, reduce-workload"),
		field.String("risk_level").
			NotEmpty().
			Comment("Risk level at the time the intervention was issued"),
		field.Bool("accepted").
			Comment("Whether the learner accepted the recommendation"),
	}
}

func (InterventionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("intervention_id"),
	}
}
