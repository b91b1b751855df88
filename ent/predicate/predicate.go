// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BurnoutAssessment is the predicate function for burnoutassessment builders.
type BurnoutAssessment func(*sql.Selector)

// InterventionEvent is the predicate function for interventionevent builders.
type InterventionEvent func(*sql.Selector)

// LoadMetricEvent is the predicate function for loadmetricevent builders.
type LoadMetricEvent func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)

// StressPattern is the predicate function for stresspattern builders.
type StressPattern func(*sql.Selector)
