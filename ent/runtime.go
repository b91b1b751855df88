// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/anupamd/studypulse/ent/burnoutassessment"
	"github.com/anupamd/studypulse/ent/interventionevent"
	"github.com/anupamd/studypulse/ent/loadmetricevent"
	"github.com/anupamd/studypulse/ent/schema"
	"github.com/anupamd/studypulse/ent/sessionevent"
	"github.com/anupamd/studypulse/ent/stresspattern"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	burnoutassessmentFields := schema.BurnoutAssessment{}.Fields()
	_ = burnoutassessmentFields
	// burnoutassessmentDescUserID is the schema descriptor for user_id field.
	burnoutassessmentDescUserID := burnoutassessmentFields[0].Descriptor()
	// burnoutassessment.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	burnoutassessment.UserIDValidator = burnoutassessmentDescUserID.Validators[0].(func(string) error)
	// burnoutassessmentDescAssessmentDate is the schema descriptor for assessment_date field.
	burnoutassessmentDescAssessmentDate := burnoutassessmentFields[1].Descriptor()
	// burnoutassessment.AssessmentDateValidator is a validator for the "assessment_date" field. It is called by the builders before save.
	burnoutassessment.AssessmentDateValidator = burnoutassessmentDescAssessmentDate.Validators[0].(func(string) error)
	// burnoutassessmentDescRiskLevel is the schema descriptor for risk_level field.
	burnoutassessmentDescRiskLevel := burnoutassessmentFields[3].Descriptor()
	// burnoutassessment.RiskLevelValidator is a validator for the "risk_level" field. It is called by the builders before save.
	burnoutassessment.RiskLevelValidator = burnoutassessmentDescRiskLevel.Validators[0].(func(string) error)
	// burnoutassessmentDescInsufficientData is the schema descriptor for insufficient_data field.
	burnoutassessmentDescInsufficientData := burnoutassessmentFields[6].Descriptor()
	// burnoutassessment.DefaultInsufficientData holds the default value on creation for the insufficient_data field.
	burnoutassessment.DefaultInsufficientData = burnoutassessmentDescInsufficientData.Default.(bool)
	// burnoutassessmentDescCreatedAt is the schema descriptor for created_at field.
	burnoutassessmentDescCreatedAt := burnoutassessmentFields[8].Descriptor()
	// burnoutassessment.DefaultCreatedAt holds the default value on creation for the created_at field.
	burnoutassessment.DefaultCreatedAt = burnoutassessmentDescCreatedAt.Default.(func() time.Time)
	// burnoutassessmentDescUpdatedAt is the schema descriptor for updated_at field.
	burnoutassessmentDescUpdatedAt := burnoutassessmentFields[9].Descriptor()
	// burnoutassessment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	burnoutassessment.DefaultUpdatedAt = burnoutassessmentDescUpdatedAt.Default.(func() time.Time)
	// burnoutassessment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	burnoutassessment.UpdateDefaultUpdatedAt = burnoutassessmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	interventioneventMixin := schema.InterventionEvent{}.Mixin()
	interventioneventMixinFields0 := interventioneventMixin[0].Fields()
	_ = interventioneventMixinFields0
	interventioneventFields := schema.InterventionEvent{}.Fields()
	_ = interventioneventFields
	// interventioneventDescTimestamp is the schema descriptor for timestamp field.
	interventioneventDescTimestamp := interventioneventMixinFields0[1].Descriptor()
	// interventionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	interventionevent.DefaultTimestamp = interventioneventDescTimestamp.Default.(func() time.Time)
	// interventioneventDescUserID is the schema descriptor for user_id field.
	interventioneventDescUserID := interventioneventFields[0].Descriptor()
	// interventionevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	interventionevent.UserIDValidator = interventioneventDescUserID.Validators[0].(func(string) error)
	// interventioneventDescInterventionID is the schema descriptor for intervention_id field.
	interventioneventDescInterventionID := interventioneventFields[1].Descriptor()
	// interventionevent.InterventionIDValidator is a validator for the "intervention_id" field. It is called by the builders before save.
	interventionevent.InterventionIDValidator = interventioneventDescInterventionID.Validators[0].(func(string) error)
	// interventioneventDescAction is the schema descriptor for action field.
	interventioneventDescAction := interventioneventFields[2].Descriptor()
	// interventionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	interventionevent.ActionValidator = interventioneventDescAction.Validators[0].(func(string) error)
	// interventioneventDescRiskLevel is the schema descriptor for risk_level field.
	interventioneventDescRiskLevel := interventioneventFields[3].Descriptor()
	// interventionevent.RiskLevelValidator is a validator for the "risk_level" field. It is called by the builders before save.
	interventionevent.RiskLevelValidator = interventioneventDescRiskLevel.Validators[0].(func(string) error)
	loadmetriceventMixin := schema.LoadMetricEvent{}.Mixin()
	loadmetriceventMixinFields0 := loadmetriceventMixin[0].Fields()
	_ = loadmetriceventMixinFields0
	loadmetriceventFields := schema.LoadMetricEvent{}.Fields()
	_ = loadmetriceventFields
	// loadmetriceventDescTimestamp is the schema descriptor for timestamp field.
	loadmetriceventDescTimestamp := loadmetriceventMixinFields0[1].Descriptor()
	// loadmetricevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	loadmetricevent.DefaultTimestamp = loadmetriceventDescTimestamp.Default.(func() time.Time)
	// loadmetriceventDescSessionID is the schema descriptor for session_id field.
	loadmetriceventDescSessionID := loadmetriceventFields[0].Descriptor()
	// loadmetricevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	loadmetricevent.SessionIDValidator = loadmetriceventDescSessionID.Validators[0].(func(string) error)
	// loadmetriceventDescUserID is the schema descriptor for user_id field.
	loadmetriceventDescUserID := loadmetriceventFields[1].Descriptor()
	// loadmetricevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	loadmetricevent.UserIDValidator = loadmetriceventDescUserID.Validators[0].(func(string) error)
	// loadmetriceventDescTopic is the schema descriptor for topic field.
	loadmetriceventDescTopic := loadmetriceventFields[5].Descriptor()
	// loadmetricevent.DefaultTopic holds the default value on creation for the topic field.
	loadmetricevent.DefaultTopic = loadmetriceventDescTopic.Default.(string)
	// loadmetriceventDescDaysToExam is the schema descriptor for days_to_exam field.
	loadmetriceventDescDaysToExam := loadmetriceventFields[8].Descriptor()
	// loadmetricevent.DefaultDaysToExam holds the default value on creation for the days_to_exam field.
	loadmetricevent.DefaultDaysToExam = loadmetriceventDescDaysToExam.Default.(int)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescUserID is the schema descriptor for user_id field.
	sessioneventDescUserID := sessioneventFields[1].Descriptor()
	// sessionevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	sessionevent.UserIDValidator = sessioneventDescUserID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	// sessioneventDescInteractions is the schema descriptor for interactions field.
	sessioneventDescInteractions := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultInteractions holds the default value on creation for the interactions field.
	sessionevent.DefaultInteractions = sessioneventDescInteractions.Default.(int)
	// sessioneventDescCorrect is the schema descriptor for correct field.
	sessioneventDescCorrect := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultCorrect holds the default value on creation for the correct field.
	sessionevent.DefaultCorrect = sessioneventDescCorrect.Default.(int)
	// sessioneventDescCompletionRatio is the schema descriptor for completion_ratio field.
	sessioneventDescCompletionRatio := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultCompletionRatio holds the default value on creation for the completion_ratio field.
	sessionevent.DefaultCompletionRatio = sessioneventDescCompletionRatio.Default.(float64)
	// sessioneventDescSelfRating is the schema descriptor for self_rating field.
	sessioneventDescSelfRating := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultSelfRating holds the default value on creation for the self_rating field.
	sessionevent.DefaultSelfRating = sessioneventDescSelfRating.Default.(int)
	// sessioneventDescTopic is the schema descriptor for topic field.
	sessioneventDescTopic := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultTopic holds the default value on creation for the topic field.
	sessionevent.DefaultTopic = sessioneventDescTopic.Default.(string)
	// sessioneventDescPlanned is the schema descriptor for planned field.
	sessioneventDescPlanned := sessioneventFields[9].Descriptor()
	// sessionevent.DefaultPlanned holds the default value on creation for the planned field.
	sessionevent.DefaultPlanned = sessioneventDescPlanned.Default.(bool)
	stresspatternFields := schema.StressPattern{}.Fields()
	_ = stresspatternFields
	// stresspatternDescUserID is the schema descriptor for user_id field.
	stresspatternDescUserID := stresspatternFields[0].Descriptor()
	// stresspattern.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	stresspattern.UserIDValidator = stresspatternDescUserID.Validators[0].(func(string) error)
	// stresspatternDescPatternType is the schema descriptor for pattern_type field.
	stresspatternDescPatternType := stresspatternFields[1].Descriptor()
	// stresspattern.PatternTypeValidator is a validator for the "pattern_type" field. It is called by the builders before save.
	stresspattern.PatternTypeValidator = stresspatternDescPatternType.Validators[0].(func(string) error)
	// stresspatternDescTriggerSignature is the schema descriptor for trigger_signature field.
	stresspatternDescTriggerSignature := stresspatternFields[2].Descriptor()
	// stresspattern.TriggerSignatureValidator is a validator for the "trigger_signature" field. It is called by the builders before save.
	stresspattern.TriggerSignatureValidator = stresspatternDescTriggerSignature.Validators[0].(func(string) error)
	// stresspatternDescUpdatedAt is the schema descriptor for updated_at field.
	stresspatternDescUpdatedAt := stresspatternFields[9].Descriptor()
	// stresspattern.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	stresspattern.DefaultUpdatedAt = stresspatternDescUpdatedAt.Default.(func() time.Time)
	// stresspattern.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	stresspattern.UpdateDefaultUpdatedAt = stresspatternDescUpdatedAt.UpdateDefault.(func() time.Time)
}
