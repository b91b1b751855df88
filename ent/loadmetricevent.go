// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anupamd/studypulse/ent/loadmetricevent"
	"github.com/anupamd/studypulse/ent/schema"
)

// LoadMetricEvent is the model entity for the LoadMetricEvent schema.
type LoadMetricEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID of the session this measurement belongs to
	SessionID string `json:"session_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Instantaneous cognitive load, 0-100
	LoadScore float64 `json:"load_score,omitempty"`
	// Estimator confidence, 0-1
	Confidence float64 `json:"confidence,omitempty"`
	// Stress indicators active at measurement time
	Indicators []schema.IndicatorRecord `json:"indicators,omitempty"`
	// Topic tag supplied by the orchestrator
	Topic string `json:"topic,omitempty"`
	// Local hour of day (0-23) at measurement time
	Hour int `json:"hour,omitempty"`
	// Local day of week (0=Sunday) at measurement time
	Weekday int `json:"weekday,omitempty"`
	// Days until the next exam, -1 when unknown
	DaysToExam   int `json:"days_to_exam,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LoadMetricEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case loadmetricevent.FieldIndicators:
			values[i] = new([]byte)
		case loadmetricevent.FieldLoadScore, loadmetricevent.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case loadmetricevent.FieldID, loadmetricevent.FieldSequence, loadmetricevent.FieldHour, loadmetricevent.FieldWeekday, loadmetricevent.FieldDaysToExam:
			values[i] = new(sql.NullInt64)
		case loadmetricevent.FieldSessionID, loadmetricevent.FieldUserID, loadmetricevent.FieldTopic:
			values[i] = new(sql.NullString)
		case loadmetricevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LoadMetricEvent fields.
func (_m *LoadMetricEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case loadmetricevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case loadmetricevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case loadmetricevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case loadmetricevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case loadmetricevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case loadmetricevent.FieldLoadScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field load_score", values[i])
			} else if value.Valid {
				_m.LoadScore = value.Float64
			}
		case loadmetricevent.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case loadmetricevent.FieldIndicators:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field indicators", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Indicators); err != nil {
					return fmt.Errorf("unmarshal field indicators: %w", err)
				}
			}
		case loadmetricevent.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case loadmetricevent.FieldHour:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hour", values[i])
			} else if value.Valid {
				_m.Hour = int(value.Int64)
			}
		case loadmetricevent.FieldWeekday:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field weekday", values[i])
			} else if value.Valid {
				_m.Weekday = int(value.Int64)
			}
		case loadmetricevent.FieldDaysToExam:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field days_to_exam", values[i])
			} else if value.Valid {
				_m.DaysToExam = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LoadMetricEvent.
// This includes values selected through modifiers, order, etc.
func (_m *LoadMetricEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LoadMetricEvent.
// Note that you need to call LoadMetricEvent.Unwrap() before calling this method if this LoadMetricEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LoadMetricEvent) Update() *LoadMetricEventUpdateOne {
	return NewLoadMetricEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LoadMetricEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LoadMetricEvent) Unwrap() *LoadMetricEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LoadMetricEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LoadMetricEvent) String() string {
	var builder strings.Builder
	builder.WriteString("LoadMetricEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("load_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.LoadScore))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("indicators=")
	builder.WriteString(fmt.Sprintf("%v", _m.Indicators))
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("hour=")
	builder.WriteString(fmt.Sprintf("%v", _m.Hour))
	builder.WriteString(", ")
	builder.WriteString("weekday=")
	builder.WriteString(fmt.Sprintf("%v", _m.Weekday))
	builder.WriteString(", ")
	builder.WriteString("days_to_exam=")
	builder.WriteString(fmt.Sprintf("%v", _m.DaysToExam))
	builder.WriteByte(')')
	return builder.String()
}

// LoadMetricEvents is a parsable slice of LoadMetricEvent.
type LoadMetricEvents []*LoadMetricEvent
