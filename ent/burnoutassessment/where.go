// Code generated by ent, DO NOT EDIT.

package burnoutassessment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/anupamd/studypulse/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldEQ(FieldUserID, v))
}

// AssessmentDate applies equality check predicate on the "assessment_date" field. It's identical to AssessmentDateEQ.
func AssessmentDate(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldEQ(FieldAssessmentDate, v))
}

// RiskScore applies equality check predicate on the "risk_score" field. It's identical to RiskScoreEQ.
func RiskScore(v float64) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldEQ(FieldRiskScore, v))
}

// RiskLevel applies equality check predicate on the "risk_level" field. It's identical to RiskLevelEQ.
func RiskLevel(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldEQ(FieldRiskLevel, v))
}

// InsufficientData applies equality check predicate on the "insufficient_data" field. It's identical to InsufficientDataEQ.
func InsufficientData(v bool) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldEQ(FieldInsufficientData, v))
}

// OnDemandAt applies equality check predicate on the "on_demand_at" field. It's identical to OnDemandAtEQ.
func OnDemandAt(v time.Time) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldEQ(FieldOnDemandAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldContainsFold(FieldUserID, v))
}

// AssessmentDateEQ applies the EQ predicate on the "assessment_date" field.
func AssessmentDateEQ(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldEQ(FieldAssessmentDate, v))
}

// AssessmentDateNEQ applies the NEQ predicate on the "assessment_date" field.
func AssessmentDateNEQ(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldNEQ(FieldAssessmentDate, v))
}

// AssessmentDateIn applies the In predicate on the "assessment_date" field.
func AssessmentDateIn(vs ...string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldIn(FieldAssessmentDate, vs...))
}

// AssessmentDateNotIn applies the NotIn predicate on the "assessment_date" field.
func AssessmentDateNotIn(vs ...string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldNotIn(FieldAssessmentDate, vs...))
}

// AssessmentDateGT applies the GT predicate on the "assessment_date" field.
func AssessmentDateGT(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldGT(FieldAssessmentDate, v))
}

// AssessmentDateGTE applies the GTE predicate on the "assessment_date" field.
func AssessmentDateGTE(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldGTE(FieldAssessmentDate, v))
}

// AssessmentDateLT applies the LT predicate on the "assessment_date" field.
func AssessmentDateLT(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldLT(FieldAssessmentDate, v))
}

// AssessmentDateLTE applies the LTE predicate on the "assessment_date" field.
func AssessmentDateLTE(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldLTE(FieldAssessmentDate, v))
}

// AssessmentDateContains applies the Contains predicate on the "assessment_date" field.
func AssessmentDateContains(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldContains(FieldAssessmentDate, v))
}

// AssessmentDateHasPrefix applies the HasPrefix predicate on the "assessment_date" field.
func AssessmentDateHasPrefix(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldHasPrefix(FieldAssessmentDate, v))
}

// AssessmentDateHasSuffix applies the HasSuffix predicate on the "assessment_date" field.
func AssessmentDateHasSuffix(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldHasSuffix(FieldAssessmentDate, v))
}

// AssessmentDateEqualFold applies the EqualFold predicate on the "assessment_date" field.
func AssessmentDateEqualFold(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldEqualFold(FieldAssessmentDate, v))
}

// AssessmentDateContainsFold applies the ContainsFold predicate on the "assessment_date" field.
func AssessmentDateContainsFold(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldContainsFold(FieldAssessmentDate, v))
}

// RiskScoreEQ applies the EQ predicate on the "risk_score" field.
func RiskScoreEQ(v float64) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldEQ(FieldRiskScore, v))
}

// RiskScoreNEQ applies the NEQ predicate on the "risk_score" field.
func RiskScoreNEQ(v float64) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldNEQ(FieldRiskScore, v))
}

// RiskScoreIn applies the In predicate on the "risk_score" field.
func RiskScoreIn(vs ...float64) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldIn(FieldRiskScore, vs...))
}

// RiskScoreNotIn applies the NotIn predicate on the "risk_score" field.
func RiskScoreNotIn(vs ...float64) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldNotIn(FieldRiskScore, vs...))
}

// RiskScoreGT applies the GT predicate on the "risk_score" field.
func RiskScoreGT(v float64) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldGT(FieldRiskScore, v))
}

// RiskScoreGTE applies the GTE predicate on the "risk_score" field.
func RiskScoreGTE(v float64) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldGTE(FieldRiskScore, v))
}

// RiskScoreLT applies the LT predicate on the "risk_score" field.
func RiskScoreLT(v float64) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldLT(FieldRiskScore, v))
}

// RiskScoreLTE applies the LTE predicate on the "risk_score" field.
func RiskScoreLTE(v float64) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldLTE(FieldRiskScore, v))
}

// RiskLevelEQ applies the EQ predicate on the "risk_level" field.
func RiskLevelEQ(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldEQ(FieldRiskLevel, v))
}

// RiskLevelNEQ applies the NEQ predicate on the "risk_level" field.
func RiskLevelNEQ(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldNEQ(FieldRiskLevel, v))
}

// RiskLevelIn applies the In predicate on the "risk_level" field.
func RiskLevelIn(vs ...string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldIn(FieldRiskLevel, vs...))
}

// RiskLevelNotIn applies the NotIn predicate on the "risk_level" field.
func RiskLevelNotIn(vs ...string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldNotIn(FieldRiskLevel, vs...))
}

// RiskLevelGT applies the GT predicate on the "risk_level" field.
func RiskLevelGT(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldGT(FieldRiskLevel, v))
}

// RiskLevelGTE applies the GTE predicate on the "risk_level" field.
func RiskLevelGTE(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldGTE(FieldRiskLevel, v))
}

// RiskLevelLT applies the LT predicate on the "risk_level" field.
func RiskLevelLT(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldLT(FieldRiskLevel, v))
}

// RiskLevelLTE applies the LTE predicate on the "risk_level" field.
func RiskLevelLTE(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldLTE(FieldRiskLevel, v))
}

// RiskLevelContains applies the Contains predicate on the "risk_level" field.
func RiskLevelContains(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldContains(FieldRiskLevel, v))
}

// RiskLevelHasPrefix applies the HasPrefix predicate on the "risk_level" field.
func RiskLevelHasPrefix(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldHasPrefix(FieldRiskLevel, v))
}

// RiskLevelHasSuffix applies the HasSuffix predicate on the "risk_level" field.
func RiskLevelHasSuffix(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldHasSuffix(FieldRiskLevel, v))
}

// RiskLevelEqualFold applies the EqualFold predicate on the "risk_level" field.
func RiskLevelEqualFold(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldEqualFold(FieldRiskLevel, v))
}

// RiskLevelContainsFold applies the ContainsFold predicate on the "risk_level" field.
func RiskLevelContainsFold(v string) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldContainsFold(FieldRiskLevel, v))
}

// FactorsIsNil applies the IsNil predicate on the "factors" field.
func FactorsIsNil() predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldIsNull(FieldFactors))
}

// FactorsNotNil applies the NotNil predicate on the "factors" field.
func FactorsNotNil() predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldNotNull(FieldFactors))
}

// RecommendationsIsNil applies the IsNil predicate on the "recommendations" field.
func RecommendationsIsNil() predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldIsNull(FieldRecommendations))
}

// RecommendationsNotNil applies the NotNil predicate on the "recommendations" field.
func RecommendationsNotNil() predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldNotNull(FieldRecommendations))
}

// InsufficientDataEQ applies the EQ predicate on the "insufficient_data" field.
func InsufficientDataEQ(v bool) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldEQ(FieldInsufficientData, v))
}

// InsufficientDataNEQ applies the NEQ predicate on the "insufficient_data" field.
func InsufficientDataNEQ(v bool) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldNEQ(FieldInsufficientData, v))
}

// OnDemandAtEQ applies the EQ predicate on the "on_demand_at" field.
func OnDemandAtEQ(v time.Time) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldEQ(FieldOnDemandAt, v))
}

// OnDemandAtNEQ applies the NEQ predicate on the "on_demand_at" field.
func OnDemandAtNEQ(v time.Time) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldNEQ(FieldOnDemandAt, v))
}

// OnDemandAtIn applies the In predicate on the "on_demand_at" field.
func OnDemandAtIn(vs ...time.Time) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldIn(FieldOnDemandAt, vs...))
}

// OnDemandAtNotIn applies the NotIn predicate on the "on_demand_at" field.
func OnDemandAtNotIn(vs ...time.Time) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldNotIn(FieldOnDemandAt, vs...))
}

// OnDemandAtGT applies the GT predicate on the "on_demand_at" field.
func OnDemandAtGT(v time.Time) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldGT(FieldOnDemandAt, v))
}

// OnDemandAtGTE applies the GTE predicate on the "on_demand_at" field.
func OnDemandAtGTE(v time.Time) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldGTE(FieldOnDemandAt, v))
}

// OnDemandAtLT applies the LT predicate on the "on_demand_at" field.
func OnDemandAtLT(v time.Time) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldLT(FieldOnDemandAt, v))
}

// OnDemandAtLTE applies the LTE predicate on the "on_demand_at" field.
func OnDemandAtLTE(v time.Time) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldLTE(FieldOnDemandAt, v))
}

// OnDemandAtIsNil applies the IsNil predicate on the "on_demand_at" field.
func OnDemandAtIsNil() predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldIsNull(FieldOnDemandAt))
}

// OnDemandAtNotNil applies the NotNil predicate on the "on_demand_at" field.
func OnDemandAtNotNil() predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldNotNull(FieldOnDemandAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BurnoutAssessment) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BurnoutAssessment) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BurnoutAssessment) predicate.BurnoutAssessment {
	return predicate.BurnoutAssessment(sql.NotPredicates(p))
}
