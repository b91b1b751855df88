// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anupamd/studypulse/ent/burnoutassessment"
	"github.com/anupamd/studypulse/ent/schema"
)

// BurnoutAssessment is the model entity for the BurnoutAssessment schema.
type BurnoutAssessment struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Date in YYYY-MM-DD form, local to the user
	AssessmentDate string `json:"assessment_date,omitempty"`
	// 0-100
	RiskScore float64 `json:"risk_score,omitempty"`
	// LOW, MEDIUM, HIGH or CRITICAL
	RiskLevel string `json:"risk_level,omitempty"`
	// Factors holds the value of the "factors" field.
	Factors []schema.FactorRecord `json:"factors,omitempty"`
	// Recommendations holds the value of the "recommendations" field.
	Recommendations []string `json:"recommendations,omitempty"`
	// True when history was too sparse for a real score
	InsufficientData bool `json:"insufficient_data,omitempty"`
	// Time of the last on-demand run, for rate limiting
	OnDemandAt time.Time `json:"on_demand_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BurnoutAssessment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case burnoutassessment.FieldFactors, burnoutassessment.FieldRecommendations:
			values[i] = new([]byte)
		case burnoutassessment.FieldInsufficientData:
			values[i] = new(sql.NullBool)
		case burnoutassessment.FieldRiskScore:
			values[i] = new(sql.NullFloat64)
		case burnoutassessment.FieldID:
			values[i] = new(sql.NullInt64)
		case burnoutassessment.FieldUserID, burnoutassessment.FieldAssessmentDate, burnoutassessment.FieldRiskLevel:
			values[i] = new(sql.NullString)
		case burnoutassessment.FieldOnDemandAt, burnoutassessment.FieldCreatedAt, burnoutassessment.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BurnoutAssessment fields.
func (_m *BurnoutAssessment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case burnoutassessment.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case burnoutassessment.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case burnoutassessment.FieldAssessmentDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assessment_date", values[i])
			} else if value.Valid {
				_m.AssessmentDate = value.String
			}
		case burnoutassessment.FieldRiskScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field risk_score", values[i])
			} else if value.Valid {
				_m.RiskScore = value.Float64
			}
		case burnoutassessment.FieldRiskLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risk_level", values[i])
			} else if value.Valid {
				_m.RiskLevel = value.String
			}
		case burnoutassessment.FieldFactors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field factors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Factors); err != nil {
					return fmt.Errorf("unmarshal field factors: %w", err)
				}
			}
		case burnoutassessment.FieldRecommendations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recommendations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Recommendations); err != nil {
					return fmt.Errorf("unmarshal field recommendations: %w", err)
				}
			}
		case burnoutassessment.FieldInsufficientData:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field insufficient_data", values[i])
			} else if value.Valid {
				_m.InsufficientData = value.Bool
			}
		case burnoutassessment.FieldOnDemandAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field on_demand_at", values[i])
			} else if value.Valid {
				_m.OnDemandAt = value.Time
			}
		case burnoutassessment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case burnoutassessment.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the BurnoutAssessment.
// This includes values selected through modifiers, order, etc.
func (_m *BurnoutAssessment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BurnoutAssessment.
// Note that you need to call BurnoutAssessment.Unwrap() before calling this method if this BurnoutAssessment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BurnoutAssessment) Update() *BurnoutAssessmentUpdateOne {
	return NewBurnoutAssessmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BurnoutAssessment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BurnoutAssessment) Unwrap() *BurnoutAssessment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BurnoutAssessment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BurnoutAssessment) String() string {
	var builder strings.Builder
	builder.WriteString("BurnoutAssessment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("assessment_date=")
	builder.WriteString(_m.AssessmentDate)
	builder.WriteString(", ")
	builder.WriteString("risk_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskScore))
	builder.WriteString(", ")
	builder.WriteString("risk_level=")
	builder.WriteString(_m.RiskLevel)
	builder.WriteString(", ")
	builder.WriteString("factors=")
	builder.WriteString(fmt.Sprintf("%v", _m.Factors))
	builder.WriteString(", ")
	builder.WriteString("recommendations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Recommendations))
	builder.WriteString(", ")
	builder.WriteString("insufficient_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.InsufficientData))
	builder.WriteString(", ")
	builder.WriteString("on_demand_at=")
	builder.WriteString(_m.OnDemandAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BurnoutAssessments is a parsable slice of BurnoutAssessment.
type BurnoutAssessments []*BurnoutAssessment
