// Code generated by ent, DO NOT EDIT.

package burnoutassessment

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the burnoutassessment type in the database.
	Label = "burnout_assessment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldAssessmentDate holds the string denoting the assessment_date field in the database.
	FieldAssessmentDate = "assessment_date"
	// FieldRiskScore holds the string denoting the risk_score field in the database.
	FieldRiskScore = "risk_score"
	// FieldRiskLevel holds the string denoting the risk_level field in the database.
	FieldRiskLevel = "risk_level"
	// FieldFactors holds the string denoting the factors field in the database.
	FieldFactors = "factors"
	// FieldRecommendations holds the string denoting the recommendations field in the database.
	FieldRecommendations = "recommendations"
	// FieldInsufficientData holds the string denoting the insufficient_data field in the database.
	FieldInsufficientData = "insufficient_data"
	// FieldOnDemandAt holds the string denoting the on_demand_at field in the database.
	FieldOnDemandAt = "on_demand_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the burnoutassessment in the database.
	Table = "burnout_assessments"
)

// Columns holds all SQL columns for burnoutassessment fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldAssessmentDate,
	FieldRiskScore,
	FieldRiskLevel,
	FieldFactors,
	FieldRecommendations,
	FieldInsufficientData,
	FieldOnDemandAt,
	FieldCreatedAt,
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
	// AssessmentDateValidator is a validator for the "assessment_date" field. It is called by the builders before save.
	AssessmentDateValidator func(string) error
	// RiskLevelValidator is a validator for the "risk_level" field. It is called by the builders before save.
	RiskLevelValidator func(string) error
	// DefaultInsufficientData holds the default value on creation for the "insufficient_data" field.
	DefaultInsufficientData bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the BurnoutAssessment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByAssessmentDate orders the results by the assessment_date field.
func ByAssessmentDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssessmentDate, opts...).ToFunc()
}

// ByRiskScore orders the results by the risk_score field.
func ByRiskScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskScore, opts...).ToFunc()
}

// ByRiskLevel orders the results by the risk_level field.
func ByRiskLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskLevel, opts...).ToFunc()
}

// ByInsufficientData orders the results by the insufficient_data field.
func ByInsufficientData(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInsufficientData, opts...).ToFunc()
}

// ByOnDemandAt orders the results by the on_demand_at field.
func ByOnDemandAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOnDemandAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
