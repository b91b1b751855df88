// Code generated by ent, DO NOT EDIT.

package stresspattern

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/anupamd/studypulse/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldEQ(FieldUserID, v))
}

// PatternType applies equality check predicate on the "pattern_type" field. It's identical to PatternTypeEQ.
func PatternType(v string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldEQ(FieldPatternType, v))
}

// TriggerSignature applies equality check predicate on the "trigger_signature" field. It's identical to TriggerSignatureEQ.
func TriggerSignature(v string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldEQ(FieldTriggerSignature, v))
}

// Occurrences applies equality check predicate on the "occurrences" field. It's identical to OccurrencesEQ.
func Occurrences(v int) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldEQ(FieldOccurrences, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldEQ(FieldConfidence, v))
}

// FirstDetectedAt applies equality check predicate on the "first_detected_at" field. It's identical to FirstDetectedAtEQ.
func FirstDetectedAt(v time.Time) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldEQ(FieldFirstDetectedAt, v))
}

// LastOccurrence applies equality check predicate on the "last_occurrence" field. It's identical to LastOccurrenceEQ.
func LastOccurrence(v time.Time) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldEQ(FieldLastOccurrence, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldContainsFold(FieldUserID, v))
}

// PatternTypeEQ applies the EQ predicate on the "pattern_type" field.
func PatternTypeEQ(v string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldEQ(FieldPatternType, v))
}

// PatternTypeNEQ applies the NEQ predicate on the "pattern_type" field.
func PatternTypeNEQ(v string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldNEQ(FieldPatternType, v))
}

// PatternTypeIn applies the In predicate on the "pattern_type" field.
func PatternTypeIn(vs ...string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldIn(FieldPatternType, vs...))
}

// PatternTypeNotIn applies the NotIn predicate on the "pattern_type" field.
func PatternTypeNotIn(vs ...string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldNotIn(FieldPatternType, vs...))
}

// PatternTypeGT applies the GT predicate on the "pattern_type" field.
func PatternTypeGT(v string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldGT(FieldPatternType, v))
}

// PatternTypeGTE applies the GTE predicate on the "pattern_type" field.
func PatternTypeGTE(v string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldGTE(FieldPatternType, v))
}

// PatternTypeLT applies the LT predicate on the "pattern_type" field.
func PatternTypeLT(v string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldLT(FieldPatternType, v))
}

// PatternTypeLTE applies the LTE predicate on the "pattern_type" field.
func PatternTypeLTE(v string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldLTE(FieldPatternType, v))
}

// PatternTypeContains applies the Contains predicate on the "pattern_type" field.
func PatternTypeContains(v string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldContains(FieldPatternType, v))
}

// PatternTypeHasPrefix applies the HasPrefix predicate on the "pattern_type" field.
func PatternTypeHasPrefix(v string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldHasPrefix(FieldPatternType, v))
}

// PatternTypeHasSuffix applies the HasSuffix predicate on the "pattern_type" field.
func PatternTypeHasSuffix(v string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldHasSuffix(FieldPatternType, v))
}

// PatternTypeEqualFold applies the EqualFold predicate on the "pattern_type" field.
func PatternTypeEqualFold(v string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldEqualFold(FieldPatternType, v))
}

// PatternTypeContainsFold applies the ContainsFold predicate on the "pattern_type" field.
func PatternTypeContainsFold(v string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldContainsFold(FieldPatternType, v))
}

// TriggerSignatureEQ applies the EQ predicate on the "trigger_signature" field.
func TriggerSignatureEQ(v string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldEQ(FieldTriggerSignature, v))
}

// TriggerSignatureNEQ applies the NEQ predicate on the "trigger_signature" field.
func TriggerSignatureNEQ(v string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldNEQ(FieldTriggerSignature, v))
}

// TriggerSignatureIn applies the In predicate on the "trigger_signature" field.
func TriggerSignatureIn(vs ...string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldIn(FieldTriggerSignature, vs...))
}

// TriggerSignatureNotIn applies the NotIn predicate on the "trigger_signature" field.
func TriggerSignatureNotIn(vs ...string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldNotIn(FieldTriggerSignature, vs...))
}

// TriggerSignatureGT applies the GT predicate on the "trigger_signature" field.
func TriggerSignatureGT(v string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldGT(FieldTriggerSignature, v))
}

// TriggerSignatureGTE applies the GTE predicate on the "trigger_signature" field.
func TriggerSignatureGTE(v string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldGTE(FieldTriggerSignature, v))
}

// TriggerSignatureLT applies the LT predicate on the "trigger_signature" field.
func TriggerSignatureLT(v string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldLT(FieldTriggerSignature, v))
}

// TriggerSignatureLTE applies the LTE predicate on the "trigger_signature" field.
func TriggerSignatureLTE(v string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldLTE(FieldTriggerSignature, v))
}

// TriggerSignatureContains applies the Contains predicate on the "trigger_signature" field.
func TriggerSignatureContains(v string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldContains(FieldTriggerSignature, v))
}

// TriggerSignatureHasPrefix applies the HasPrefix predicate on the "trigger_signature" field.
func TriggerSignatureHasPrefix(v string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldHasPrefix(FieldTriggerSignature, v))
}

// TriggerSignatureHasSuffix applies the HasSuffix predicate on the "trigger_signature" field.
func TriggerSignatureHasSuffix(v string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldHasSuffix(FieldTriggerSignature, v))
}

// TriggerSignatureEqualFold applies the EqualFold predicate on the "trigger_signature" field.
func TriggerSignatureEqualFold(v string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldEqualFold(FieldTriggerSignature, v))
}

// TriggerSignatureContainsFold applies the ContainsFold predicate on the "trigger_signature" field.
func TriggerSignatureContainsFold(v string) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldContainsFold(FieldTriggerSignature, v))
}

// TriggerConditionsIsNil applies the IsNil predicate on the "trigger_conditions" field.
func TriggerConditionsIsNil() predicate.StressPattern {
	return predicate.StressPattern(sql.FieldIsNull(FieldTriggerConditions))
}

// TriggerConditionsNotNil applies the NotNil predicate on the "trigger_conditions" field.
func TriggerConditionsNotNil() predicate.StressPattern {
	return predicate.StressPattern(sql.FieldNotNull(FieldTriggerConditions))
}

// ResponseProfileIsNil applies the IsNil predicate on the "response_profile" field.
func ResponseProfileIsNil() predicate.StressPattern {
	return predicate.StressPattern(sql.FieldIsNull(FieldResponseProfile))
}

// ResponseProfileNotNil applies the NotNil predicate on the "response_profile" field.
func ResponseProfileNotNil() predicate.StressPattern {
	return predicate.StressPattern(sql.FieldNotNull(FieldResponseProfile))
}

// OccurrencesEQ applies the EQ predicate on the "occurrences" field.
func OccurrencesEQ(v int) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldEQ(FieldOccurrences, v))
}

// OccurrencesNEQ applies the NEQ predicate on the "occurrences" field.
func OccurrencesNEQ(v int) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldNEQ(FieldOccurrences, v))
}

// OccurrencesIn applies the In predicate on the "occurrences" field.
func OccurrencesIn(vs ...int) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldIn(FieldOccurrences, vs...))
}

// OccurrencesNotIn applies the NotIn predicate on the "occurrences" field.
func OccurrencesNotIn(vs ...int) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldNotIn(FieldOccurrences, vs...))
}

// OccurrencesGT applies the GT predicate on the "occurrences" field.
func OccurrencesGT(v int) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldGT(FieldOccurrences, v))
}

// OccurrencesGTE applies the GTE predicate on the "occurrences" field.
func OccurrencesGTE(v int) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldGTE(FieldOccurrences, v))
}

// OccurrencesLT applies the LT predicate on the "occurrences" field.
func OccurrencesLT(v int) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldLT(FieldOccurrences, v))
}

// OccurrencesLTE applies the LTE predicate on the "occurrences" field.
func OccurrencesLTE(v int) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldLTE(FieldOccurrences, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldLTE(FieldConfidence, v))
}

// FirstDetectedAtEQ applies the EQ predicate on the "first_detected_at" field.
func FirstDetectedAtEQ(v time.Time) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldEQ(FieldFirstDetectedAt, v))
}

// FirstDetectedAtNEQ applies the NEQ predicate on the "first_detected_at" field.
func FirstDetectedAtNEQ(v time.Time) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldNEQ(FieldFirstDetectedAt, v))
}

// FirstDetectedAtIn applies the In predicate on the "first_detected_at" field.
func FirstDetectedAtIn(vs ...time.Time) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldIn(FieldFirstDetectedAt, vs...))
}

// FirstDetectedAtNotIn applies the NotIn predicate on the "first_detected_at" field.
func FirstDetectedAtNotIn(vs ...time.Time) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldNotIn(FieldFirstDetectedAt, vs...))
}

// FirstDetectedAtGT applies the GT predicate on the "first_detected_at" field.
func FirstDetectedAtGT(v time.Time) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldGT(FieldFirstDetectedAt, v))
}

// FirstDetectedAtGTE applies the GTE predicate on the "first_detected_at" field.
func FirstDetectedAtGTE(v time.Time) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldGTE(FieldFirstDetectedAt, v))
}

// FirstDetectedAtLT applies the LT predicate on the "first_detected_at" field.
func FirstDetectedAtLT(v time.Time) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldLT(FieldFirstDetectedAt, v))
}

// FirstDetectedAtLTE applies the LTE predicate on the "first_detected_at" field.
func FirstDetectedAtLTE(v time.Time) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldLTE(FieldFirstDetectedAt, v))
}

// LastOccurrenceEQ applies the EQ predicate on the "last_occurrence" field.
func LastOccurrenceEQ(v time.Time) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldEQ(FieldLastOccurrence, v))
}

// LastOccurrenceNEQ applies the NEQ predicate on the "last_occurrence" field.
func LastOccurrenceNEQ(v time.Time) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldNEQ(FieldLastOccurrence, v))
}

// LastOccurrenceIn applies the In predicate on the "last_occurrence" field.
func LastOccurrenceIn(vs ...time.Time) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldIn(FieldLastOccurrence, vs...))
}

// LastOccurrenceNotIn applies the NotIn predicate on the "last_occurrence" field.
func LastOccurrenceNotIn(vs ...time.Time) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldNotIn(FieldLastOccurrence, vs...))
}

// LastOccurrenceGT applies the GT predicate on the "last_occurrence" field.
func LastOccurrenceGT(v time.Time) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldGT(FieldLastOccurrence, v))
}

// LastOccurrenceGTE applies the GTE predicate on the "last_occurrence" field.
func LastOccurrenceGTE(v time.Time) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldGTE(FieldLastOccurrence, v))
}

// LastOccurrenceLT applies the LT predicate on the "last_occurrence" field.
func LastOccurrenceLT(v time.Time) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldLT(FieldLastOccurrence, v))
}

// LastOccurrenceLTE applies the LTE predicate on the "last_occurrence" field.
func LastOccurrenceLTE(v time.Time) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldLTE(FieldLastOccurrence, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.StressPattern {
	return predicate.StressPattern(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StressPattern) predicate.StressPattern {
	return predicate.StressPattern(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StressPattern) predicate.StressPattern {
	return predicate.StressPattern(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StressPattern) predicate.StressPattern {
	return predicate.StressPattern(sql.NotPredicates(p))
}
