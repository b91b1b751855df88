// Code generated by ent, DO NOT EDIT.

package stresspattern

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the stresspattern type in the database.
	Label = "stress_pattern"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldPatternType holds the string denoting the pattern_type field in the database.
	FieldPatternType = "pattern_type"
	// FieldTriggerSignature holds the string denoting the trigger_signature field in the database.
	FieldTriggerSignature = "trigger_signature"
	// FieldTriggerConditions holds the string denoting the trigger_conditions field in the database.
	FieldTriggerConditions = "trigger_conditions"
	// FieldResponseProfile holds the string denoting the response_profile field in the database.
	FieldResponseProfile = "response_profile"
	// FieldOccurrences holds the string denoting the occurrences field in the database.
	FieldOccurrences = "occurrences"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldFirstDetectedAt holds the string denoting the first_detected_at field in the database.
	FieldFirstDetectedAt = "first_detected_at"
	// FieldLastOccurrence holds the string denoting the last_occurrence field in the database.
	FieldLastOccurrence = "last_occurrence"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the stresspattern in the database.
	Table = "stress_patterns"
)

// Columns holds all SQL columns for stresspattern fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldPatternType,
	FieldTriggerSignature,
	FieldTriggerConditions,
	FieldResponseProfile,
	FieldOccurrences,
	FieldConfidence,
	FieldFirstDetectedAt,
	FieldLastOccurrence,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// PatternTypeValidator is a validator for the "pattern_type" field. It is called by the builders before save.
	PatternTypeValidator func(string) error
	// TriggerSignatureValidator is a validator for the "trigger_signature" field. It is called by the builders before save.
	TriggerSignatureValidator func(string) error
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the StressPattern queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByPatternType orders the results by the pattern_type field.
func ByPatternType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatternType, opts...).ToFunc()
}

// ByTriggerSignature orders the results by the trigger_signature field.
func ByTriggerSignature(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerSignature, opts...).ToFunc()
}

// ByOccurrences orders the results by the occurrences field.
func ByOccurrences(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOccurrences, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByFirstDetectedAt orders the results by the first_detected_at field.
func ByFirstDetectedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstDetectedAt, opts...).ToFunc()
}

// ByLastOccurrence orders the results by the last_occurrence field.
func ByLastOccurrence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastOccurrence, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
