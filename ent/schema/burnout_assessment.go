package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BurnoutAssessment holds the canonical burnout risk assessment for one
// user on one day. The (user_id, assessment_date) pair is the idempotency
// key: re-running an assessment for the same day updates the row in place
// rather than inserting a duplicate.
type BurnoutAssessment struct {
	ent.Schema
}

// FactorRecord is the serialized form of one contributing factor.
type FactorRecord struct {
	Name         string  `json:"name"`
	Contribution float64 `json:"contribution"`
	Cap          float64 `json:"cap"`
	Detail       string  `json:"detail,omitempty"`
}

func (BurnoutAssessment) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("assessment_date").
			NotEmpty().
			Comment("Date in YYYY-MM-DD form, local to the user"),
		field.Float("risk_score").
			Comment("0-100"),
		field.String("risk_level").
			NotEmpty().
			Comment("LOW, MEDIUM, HIGH or CRITICAL"),
		field.JSON("factors", []FactorRecord{}).
			Optional(),
		field.JSON("recommendations", []string{}).
			Optional(),
		field.Bool("insufficient_data").
			Default(false).
			Comment("True when history was too sparse for a real score"),
		field.Time("on_demand_at").
			Optional().
			Comment("Time of the last on-demand run, for rate limiting"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (BurnoutAssessment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "assessment_date").
			Unique(),
	}
}
