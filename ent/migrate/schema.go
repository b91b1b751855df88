// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BurnoutAssessmentsColumns holds the columns for the "burnout_assessments" table.
	BurnoutAssessmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "assessment_date", Type: field.TypeString},
		{Name: "risk_score", Type: field.TypeFloat64},
		{Name: "risk_level", Type: field.TypeString},
		{Name: "factors", Type: field.TypeJSON, Nullable: true},
		{Name: "recommendations", Type: field.TypeJSON, Nullable: true},
		{Name: "insufficient_data", Type: field.TypeBool, Default: false},
		{Name: "on_demand_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BurnoutAssessmentsTable holds the schema information for the "burnout_assessments" table.
	BurnoutAssessmentsTable = &schema.Table{
		Name:       "burnout_assessments",
		Columns:    BurnoutAssessmentsColumns,
		PrimaryKey: []*schema.Column{BurnoutAssessmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "burnoutassessment_user_id_assessment_date",
				Unique:  true,
				Columns: []*schema.Column{BurnoutAssessmentsColumns[1], BurnoutAssessmentsColumns[2]},
			},
		},
	}
	// InterventionEventsColumns holds the columns for the "intervention_events" table.
	InterventionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "intervention_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "risk_level", Type: field.TypeString},
		{Name: "accepted", Type: field.TypeBool},
	}
	// InterventionEventsTable holds the schema information for the "intervention_events" table.
	InterventionEventsTable = &schema.Table{
		Name:       "intervention_events",
		Columns:    InterventionEventsColumns,
		PrimaryKey: []*schema.Column{InterventionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "interventionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{InterventionEventsColumns[1]},
			},
			{
				Name:    "interventionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{InterventionEventsColumns[2]},
			},
			{
				Name:    "interventionevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{InterventionEventsColumns[3]},
			},
			{
				Name:    "interventionevent_intervention_id",
				Unique:  false,
				Columns: []*schema.Column{InterventionEventsColumns[4]},
			},
		},
	}
	// LoadMetricEventsColumns holds the columns for the "load_metric_events" table.
	LoadMetricEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "load_score", Type: field.TypeFloat64},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "indicators", Type: field.TypeJSON, Nullable: true},
		{Name: "topic", Type: field.TypeString, Default: ""},
		{Name: "hour", Type: field.TypeInt},
		{Name: "weekday", Type: field.TypeInt},
		{Name: "days_to_exam", Type: field.TypeInt, Default: -1},
	}
	// LoadMetricEventsTable holds the schema information for the "load_metric_events" table.
	LoadMetricEventsTable = &schema.Table{
		Name:       "load_metric_events",
		Columns:    LoadMetricEventsColumns,
		PrimaryKey: []*schema.Column{LoadMetricEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "loadmetricevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LoadMetricEventsColumns[1]},
			},
			{
				Name:    "loadmetricevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LoadMetricEventsColumns[2]},
			},
			{
				Name:    "loadmetricevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{LoadMetricEventsColumns[4]},
			},
			{
				Name:    "loadmetricevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{LoadMetricEventsColumns[3]},
			},
			{
				Name:    "loadmetricevent_user_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LoadMetricEventsColumns[4], LoadMetricEventsColumns[2]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
		{Name: "interactions", Type: field.TypeInt, Default: 0},
		{Name: "correct", Type: field.TypeInt, Default: 0},
		{Name: "completion_ratio", Type: field.TypeFloat64, Default: 0},
		{Name: "self_rating", Type: field.TypeInt, Default: 0},
		{Name: "topic", Type: field.TypeString, Default: ""},
		{Name: "planned", Type: field.TypeBool, Default: true},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5]},
			},
		},
	}
	// StressPatternsColumns holds the columns for the "stress_patterns" table.
	StressPatternsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "pattern_type", Type: field.TypeString},
		{Name: "trigger_signature", Type: field.TypeString},
		{Name: "trigger_conditions", Type: field.TypeJSON, Nullable: true},
		{Name: "response_profile", Type: field.TypeJSON, Nullable: true},
		{Name: "occurrences", Type: field.TypeInt},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "first_detected_at", Type: field.TypeTime},
		{Name: "last_occurrence", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StressPatternsTable holds the schema information for the "stress_patterns" table.
	StressPatternsTable = &schema.Table{
		Name:       "stress_patterns",
		Columns:    StressPatternsColumns,
		PrimaryKey: []*schema.Column{StressPatternsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stresspattern_user_id_pattern_type_trigger_signature",
				Unique:  true,
				Columns: []*schema.Column{StressPatternsColumns[1], StressPatternsColumns[2], StressPatternsColumns[3]},
			},
			{
				Name:    "stresspattern_user_id_confidence",
				Unique:  false,
				Columns: []*schema.Column{StressPatternsColumns[1], StressPatternsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BurnoutAssessmentsTable,
		InterventionEventsTable,
		LoadMetricEventsTable,
		SessionEventsTable,
		StressPatternsTable,
	}
)

func init() {
}
