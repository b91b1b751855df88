// Code generated by ent, DO NOT EDIT.

package interventionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/anupamd/studypulse/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldUserID, v))
}

// InterventionID applies equality check predicate on the "intervention_id" field. It's identical to InterventionIDEQ.
func InterventionID(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldInterventionID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldAction, v))
}

// RiskLevel applies equality check predicate on the "risk_level" field. It's identical to RiskLevelEQ.
func RiskLevel(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldRiskLevel, v))
}

// Accepted applies equality check predicate on the "accepted" field. It's identical to AcceptedEQ.
func Accepted(v bool) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldAccepted, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContainsFold(FieldUserID, v))
}

// InterventionIDEQ applies the EQ predicate on the "intervention_id" field.
func InterventionIDEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldInterventionID, v))
}

// InterventionIDNEQ applies the NEQ predicate on the "intervention_id" field.
func InterventionIDNEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldInterventionID, v))
}

// InterventionIDIn applies the In predicate on the "intervention_id" field.
func InterventionIDIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldInterventionID, vs...))
}

// InterventionIDNotIn applies the NotIn predicate on the "intervention_id" field.
func InterventionIDNotIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldInterventionID, vs...))
}

// InterventionIDGT applies the GT predicate on the "intervention_id" field.
func InterventionIDGT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldInterventionID, v))
}

// InterventionIDGTE applies the GTE predicate on the "intervention_id" field.
func InterventionIDGTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldInterventionID, v))
}

// InterventionIDLT applies the LT predicate on the "intervention_id" field.
func InterventionIDLT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldInterventionID, v))
}

// InterventionIDLTE applies the LTE predicate on the "intervention_id" field.
func InterventionIDLTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldInterventionID, v))
}

// InterventionIDContains applies the Contains predicate on the "intervention_id" field.
func InterventionIDContains(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContains(FieldInterventionID, v))
}

// InterventionIDHasPrefix applies the HasPrefix predicate on the "intervention_id" field.
func InterventionIDHasPrefix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasPrefix(FieldInterventionID, v))
}

// InterventionIDHasSuffix applies the HasSuffix predicate on the "intervention_id" field.
func InterventionIDHasSuffix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasSuffix(FieldInterventionID, v))
}

// InterventionIDEqualFold applies the EqualFold predicate on the "intervention_id" field.
func InterventionIDEqualFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEqualFold(FieldInterventionID, v))
}

// InterventionIDContainsFold applies the ContainsFold predicate on the "intervention_id" field.
func InterventionIDContainsFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContainsFold(FieldInterventionID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContainsFold(FieldAction, v))
}

// RiskLevelEQ applies the EQ predicate on the "risk_level" field.
func RiskLevelEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldRiskLevel, v))
}

// RiskLevelNEQ applies the NEQ predicate on the "risk_level" field.
func RiskLevelNEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldRiskLevel, v))
}

// RiskLevelIn applies the In predicate on the "risk_level" field.
func RiskLevelIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldRiskLevel, vs...))
}

// RiskLevelNotIn applies the NotIn predicate on the "risk_level" field.
func RiskLevelNotIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldRiskLevel, vs...))
}

// RiskLevelGT applies the GT predicate on the "risk_level" field.
func RiskLevelGT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldRiskLevel, v))
}

// RiskLevelGTE applies the GTE predicate on the "risk_level" field.
func RiskLevelGTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldRiskLevel, v))
}

// RiskLevelLT applies the LT predicate on the "risk_level" field.
func RiskLevelLT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldRiskLevel, v))
}

// RiskLevelLTE applies the LTE predicate on the "risk_level" field.
func RiskLevelLTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldRiskLevel, v))
}

// RiskLevelContains applies the Contains predicate on the "risk_level" field.
func RiskLevelContains(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContains(FieldRiskLevel, v))
}

// RiskLevelHasPrefix applies the HasPrefix predicate on the "risk_level" field.
func RiskLevelHasPrefix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasPrefix(FieldRiskLevel, v))
}

// RiskLevelHasSuffix applies the HasSuffix predicate on the "risk_level" field.
func RiskLevelHasSuffix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasSuffix(FieldRiskLevel, v))
}

// RiskLevelEqualFold applies the EqualFold predicate on the "risk_level" field.
func RiskLevelEqualFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEqualFold(FieldRiskLevel, v))
}

// RiskLevelContainsFold applies the ContainsFold predicate on the "risk_level" field.
func RiskLevelContainsFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContainsFold(FieldRiskLevel, v))
}

// AcceptedEQ applies the EQ predicate on the "accepted" field.
func AcceptedEQ(v bool) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldAccepted, v))
}

// AcceptedNEQ applies the NEQ predicate on the "accepted" field.
func AcceptedNEQ(v bool) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldAccepted, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InterventionEvent) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InterventionEvent) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InterventionEvent) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.NotPredicates(p))
}
