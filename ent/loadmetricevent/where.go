// Code generated by ent, DO NOT EDIT.

package loadmetricevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/anupamd/studypulse/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldEQ(FieldSessionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldEQ(FieldUserID, v))
}

// LoadScore applies equality check predicate on the "load_score" field. It's identical to LoadScoreEQ.
func LoadScore(v float64) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldEQ(FieldLoadScore, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldEQ(FieldConfidence, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldEQ(FieldTopic, v))
}

// Hour applies equality check predicate on the "hour" field. It's identical to HourEQ.
func Hour(v int) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldEQ(FieldHour, v))
}

// Weekday applies equality check predicate on the "weekday" field. It's identical to WeekdayEQ.
func Weekday(v int) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldEQ(FieldWeekday, v))
}

// DaysToExam applies equality check predicate on the "days_to_exam" field. It's identical to DaysToExamEQ.
func DaysToExam(v int) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldEQ(FieldDaysToExam, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldContainsFold(FieldUserID, v))
}

// LoadScoreEQ applies the EQ predicate on the "load_score" field.
func LoadScoreEQ(v float64) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldEQ(FieldLoadScore, v))
}

// LoadScoreNEQ applies the NEQ predicate on the "load_score" field.
func LoadScoreNEQ(v float64) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldNEQ(FieldLoadScore, v))
}

// LoadScoreIn applies the In predicate on the "load_score" field.
func LoadScoreIn(vs ...float64) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldIn(FieldLoadScore, vs...))
}

// LoadScoreNotIn applies the NotIn predicate on the "load_score" field.
func LoadScoreNotIn(vs ...float64) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldNotIn(FieldLoadScore, vs...))
}

// LoadScoreGT applies the GT predicate on the "load_score" field.
func LoadScoreGT(v float64) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldGT(FieldLoadScore, v))
}

// LoadScoreGTE applies the GTE predicate on the "load_score" field.
func LoadScoreGTE(v float64) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldGTE(FieldLoadScore, v))
}

// LoadScoreLT applies the LT predicate on the "load_score" field.
func LoadScoreLT(v float64) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldLT(FieldLoadScore, v))
}

// LoadScoreLTE applies the LTE predicate on the "load_score" field.
func LoadScoreLTE(v float64) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldLTE(FieldLoadScore, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldLTE(FieldConfidence, v))
}

// IndicatorsIsNil applies the IsNil predicate on the "indicators" field.
func IndicatorsIsNil() predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldIsNull(FieldIndicators))
}

// IndicatorsNotNil applies the NotNil predicate on the "indicators" field.
func IndicatorsNotNil() predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldNotNull(FieldIndicators))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldContainsFold(FieldTopic, v))
}

// HourEQ applies the EQ predicate on the "hour" field.
func HourEQ(v int) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldEQ(FieldHour, v))
}

// HourNEQ applies the NEQ predicate on the "hour" field.
func HourNEQ(v int) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldNEQ(FieldHour, v))
}

// HourIn applies the In predicate on the "hour" field.
func HourIn(vs ...int) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldIn(FieldHour, vs...))
}

// HourNotIn applies the NotIn predicate on the "hour" field.
func HourNotIn(vs ...int) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldNotIn(FieldHour, vs...))
}

// HourGT applies the GT predicate on the "hour" field.
func HourGT(v int) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldGT(FieldHour, v))
}

// HourGTE applies the GTE predicate on the "hour" field.
func HourGTE(v int) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldGTE(FieldHour, v))
}

// HourLT applies the LT predicate on the "hour" field.
func HourLT(v int) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldLT(FieldHour, v))
}

// HourLTE applies the LTE predicate on the "hour" field.
func HourLTE(v int) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldLTE(FieldHour, v))
}

// WeekdayEQ applies the EQ predicate on the "weekday" field.
func WeekdayEQ(v int) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldEQ(FieldWeekday, v))
}

// WeekdayNEQ applies the NEQ predicate on the "weekday" field.
func WeekdayNEQ(v int) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldNEQ(FieldWeekday, v))
}

// WeekdayIn applies the In predicate on the "weekday" field.
func WeekdayIn(vs ...int) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldIn(FieldWeekday, vs...))
}

// WeekdayNotIn applies the NotIn predicate on the "weekday" field.
func WeekdayNotIn(vs ...int) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldNotIn(FieldWeekday, vs...))
}

// WeekdayGT applies the GT predicate on the "weekday" field.
func WeekdayGT(v int) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldGT(FieldWeekday, v))
}

// WeekdayGTE applies the GTE predicate on the "weekday" field.
func WeekdayGTE(v int) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldGTE(FieldWeekday, v))
}

// WeekdayLT applies the LT predicate on the "weekday" field.
func WeekdayLT(v int) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldLT(FieldWeekday, v))
}

// WeekdayLTE applies the LTE predicate on the "weekday" field.
func WeekdayLTE(v int) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldLTE(FieldWeekday, v))
}

// DaysToExamEQ applies the EQ predicate on the "days_to_exam" field.
func DaysToExamEQ(v int) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldEQ(FieldDaysToExam, v))
}

// DaysToExamNEQ applies the NEQ predicate on the "days_to_exam" field.
func DaysToExamNEQ(v int) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldNEQ(FieldDaysToExam, v))
}

// DaysToExamIn applies the In predicate on the "days_to_exam" field.
func DaysToExamIn(vs ...int) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldIn(FieldDaysToExam, vs...))
}

// DaysToExamNotIn applies the NotIn predicate on the "days_to_exam" field.
func DaysToExamNotIn(vs ...int) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldNotIn(FieldDaysToExam, vs...))
}

// DaysToExamGT applies the GT predicate on the "days_to_exam" field.
func DaysToExamGT(v int) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldGT(FieldDaysToExam, v))
}

// DaysToExamGTE applies the GTE predicate on the "days_to_exam" field.
func DaysToExamGTE(v int) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldGTE(FieldDaysToExam, v))
}

// DaysToExamLT applies the LT predicate on the "days_to_exam" field.
func DaysToExamLT(v int) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldLT(FieldDaysToExam, v))
}

// DaysToExamLTE applies the LTE predicate on the "days_to_exam" field.
func DaysToExamLTE(v int) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.FieldLTE(FieldDaysToExam, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LoadMetricEvent) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LoadMetricEvent) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LoadMetricEvent) predicate.LoadMetricEvent {
	return predicate.LoadMetricEvent(sql.NotPredicates(p))
}
