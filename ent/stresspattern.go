// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anupamd/studypulse/ent/stresspattern"
)

// StressPattern is the model entity for the StressPattern schema.
type StressPattern struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// TOPIC_SPECIFIC, TIME_OF_DAY, DAY_OF_WEEK or EXAM_PROXIMITY
	PatternType string `json:"pattern_type,omitempty"`
	// Canonical key for the trigger, e.g. topic:physiology
	TriggerSignature string `json:"trigger_signature,omitempty"`
	// TriggerConditions holds the value of the "trigger_conditions" field.
	TriggerConditions map[string]string `json:"trigger_conditions,omitempty"`
	// Observed response stats: mean load, peak load, recovery minutes
	ResponseProfile map[string]float64 `json:"response_profile,omitempty"`
	// Corroborating observations folded into this pattern
	Occurrences int `json:"occurrences,omitempty"`
	// 0-1, never decreases on merge
	Confidence float64 `json:"confidence,omitempty"`
	// FirstDetectedAt holds the value of the "first_detected_at" field.
	FirstDetectedAt time.Time `json:"first_detected_at,omitempty"`
	// LastOccurrence holds the value of the "last_occurrence" field.
	LastOccurrence time.Time `json:"last_occurrence,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StressPattern) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stresspattern.FieldTriggerConditions, stresspattern.FieldResponseProfile:
			values[i] = new([]byte)
		case stresspattern.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case stresspattern.FieldID, stresspattern.FieldOccurrences:
			values[i] = new(sql.NullInt64)
		case stresspattern.FieldUserID, stresspattern.FieldPatternType, stresspattern.FieldTriggerSignature:
			values[i] = new(sql.NullString)
		case stresspattern.FieldFirstDetectedAt, stresspattern.FieldLastOccurrence, stresspattern.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StressPattern fields.
func (_m *StressPattern) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stresspattern.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case stresspattern.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case stresspattern.FieldPatternType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pattern_type", values[i])
			} else if value.Valid {
				_m.PatternType = value.String
			}
		case stresspattern.FieldTriggerSignature:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_signature", values[i])
			} else if value.Valid {
				_m.TriggerSignature = value.String
			}
		case stresspattern.FieldTriggerConditions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_conditions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TriggerConditions); err != nil {
					return fmt.Errorf("unmarshal field trigger_conditions: %w", err)
				}
			}
		case stresspattern.FieldResponseProfile:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field response_profile", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResponseProfile); err != nil {
					return fmt.Errorf("unmarshal field response_profile: %w", err)
				}
			}
		case stresspattern.FieldOccurrences:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field occurrences", values[i])
			} else if value.Valid {
				_m.Occurrences = int(value.Int64)
			}
		case stresspattern.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case stresspattern.FieldFirstDetectedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_detected_at", values[i])
			} else if value.Valid {
				_m.FirstDetectedAt = value.Time
			}
		case stresspattern.FieldLastOccurrence:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_occurrence", values[i])
			} else if value.Valid {
				_m.LastOccurrence = value.Time
			}
		case stresspattern.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StressPattern.
// This includes values selected through modifiers, order, etc.
func (_m *StressPattern) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StressPattern.
// Note that you need to call StressPattern.Unwrap() before calling this method if this StressPattern
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StressPattern) Update() *StressPatternUpdateOne {
	return NewStressPatternClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StressPattern entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StressPattern) Unwrap() *StressPattern {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StressPattern is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StressPattern) String() string {
	var builder strings.Builder
	builder.WriteString("StressPattern(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("pattern_type=")
	builder.WriteString(_m.PatternType)
	builder.WriteString(", ")
	builder.WriteString("trigger_signature=")
	builder.WriteString(_m.TriggerSignature)
	builder.WriteString(", ")
	builder.WriteString("trigger_conditions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TriggerConditions))
	builder.WriteString(", ")
	builder.WriteString("response_profile=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseProfile))
	builder.WriteString(", ")
	builder.WriteString("occurrences=")
	builder.WriteString(fmt.Sprintf("%v", _m.Occurrences))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("first_detected_at=")
	builder.WriteString(_m.FirstDetectedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_occurrence=")
	builder.WriteString(_m.LastOccurrence.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StressPatterns is a parsable slice of StressPattern.
type StressPatterns []*StressPattern
