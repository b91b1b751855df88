// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anupamd/studypulse/ent/predicate"
	"github.com/anupamd/studypulse/ent/stresspattern"
)

// StressPatternUpdate is the builder for updating StressPattern entities.
type StressPatternUpdate struct {
	config
	hooks    []Hook
	mutation *StressPatternMutation
}

// Where appends a list predicates to the StressPatternUpdate builder.
func (_u *StressPatternUpdate) Where(ps ...predicate.StressPattern) *StressPatternUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *StressPatternUpdate) SetUserID(v string) *StressPatternUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *StressPatternUpdate) SetNillableUserID(v *string) *StressPatternUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetPatternType sets the "pattern_type" field.
func (_u *StressPatternUpdate) SetPatternType(v string) *StressPatternUpdate {
	_u.mutation.SetPatternType(v)
	return _u
}

// SetNillablePatternType sets the "pattern_type" field if the given value is not nil.
func (_u *StressPatternUpdate) SetNillablePatternType(v *string) *StressPatternUpdate {
	if v != nil {
		_u.SetPatternType(*v)
	}
	return _u
}

// SetTriggerSignature sets the "trigger_signature" field.
func (_u *StressPatternUpdate) SetTriggerSignature(v string) *StressPatternUpdate {
	_u.mutation.SetTriggerSignature(v)
	return _u
}

// SetNillableTriggerSignature sets the "trigger_signature" field if the given value is not nil.
func (_u *StressPatternUpdate) SetNillableTriggerSignature(v *string) *StressPatternUpdate {
	if v != nil {
		_u.SetTriggerSignature(*v)
	}
	return _u
}

// SetTriggerConditions sets the "trigger_conditions" field.
func (_u *StressPatternUpdate) SetTriggerConditions(v map[string]string) *StressPatternUpdate {
	_u.mutation.SetTriggerConditions(v)
	return _u
}

// ClearTriggerConditions clears the value of the "trigger_conditions" field.
func (_u *StressPatternUpdate) ClearTriggerConditions() *StressPatternUpdate {
	_u.mutation.ClearTriggerConditions()
	return _u
}

// SetResponseProfile sets the "response_profile" field.
func (_u *StressPatternUpdate) SetResponseProfile(v map[string]float64) *StressPatternUpdate {
	_u.mutation.SetResponseProfile(v)
	return _u
}

// ClearResponseProfile clears the value of the "response_profile" field.
func (_u *StressPatternUpdate) ClearResponseProfile() *StressPatternUpdate {
	_u.mutation.ClearResponseProfile()
	return _u
}

// SetOccurrences sets the "occurrences" field.
func (_u *StressPatternUpdate) SetOccurrences(v int) *StressPatternUpdate {
	_u.mutation.ResetOccurrences()
	_u.mutation.SetOccurrences(v)
	return _u
}

// SetNillableOccurrences sets the "occurrences" field if the given value is not nil.
func (_u *StressPatternUpdate) SetNillableOccurrences(v *int) *StressPatternUpdate {
	if v != nil {
		_u.SetOccurrences(*v)
	}
	return _u
}

// AddOccurrences adds value to the "occurrences" field.
func (_u *StressPatternUpdate) AddOccurrences(v int) *StressPatternUpdate {
	_u.mutation.AddOccurrences(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *StressPatternUpdate) SetConfidence(v float64) *StressPatternUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *StressPatternUpdate) SetNillableConfidence(v *float64) *StressPatternUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *StressPatternUpdate) AddConfidence(v float64) *StressPatternUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetLastOccurrence sets the "last_occurrence" field.
func (_u *StressPatternUpdate) SetLastOccurrence(v time.Time) *StressPatternUpdate {
	_u.mutation.SetLastOccurrence(v)
	return _u
}

// SetNillableLastOccurrence sets the "last_occurrence" field if the given value is not nil.
func (_u *StressPatternUpdate) SetNillableLastOccurrence(v *time.Time) *StressPatternUpdate {
	if v != nil {
		_u.SetLastOccurrence(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StressPatternUpdate) SetUpdatedAt(v time.Time) *StressPatternUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StressPatternMutation object of the builder.
func (_u *StressPatternUpdate) Mutation() *StressPatternMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StressPatternUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StressPatternUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StressPatternUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StressPatternUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StressPatternUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stresspattern.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StressPatternUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := stresspattern.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "StressPattern.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatternType(); ok {
		if err := stresspattern.PatternTypeValidator(v); err != nil {
			return &ValidationError{Name: "pattern_type", err: fmt.Errorf(`ent: validator failed for field "StressPattern.pattern_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TriggerSignature(); ok {
		if err := stresspattern.TriggerSignatureValidator(v); err != nil {
			return &ValidationError{Name: "trigger_signature", err: fmt.Errorf(`ent: validator failed for field "StressPattern.trigger_signature": %w`, err)}
		}
	}
	return nil
}

func (_u *StressPatternUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stresspattern.Table, stresspattern.Columns, sqlgraph.NewFieldSpec(stresspattern.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(stresspattern.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatternType(); ok {
		_spec.SetField(stresspattern.FieldPatternType, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggerSignature(); ok {
		_spec.SetField(stresspattern.FieldTriggerSignature, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggerConditions(); ok {
		_spec.SetField(stresspattern.FieldTriggerConditions, field.TypeJSON, value)
	}
	if _u.mutation.TriggerConditionsCleared() {
		_spec.ClearField(stresspattern.FieldTriggerConditions, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResponseProfile(); ok {
		_spec.SetField(stresspattern.FieldResponseProfile, field.TypeJSON, value)
	}
	if _u.mutation.ResponseProfileCleared() {
		_spec.ClearField(stresspattern.FieldResponseProfile, field.TypeJSON)
	}
	if value, ok := _u.mutation.Occurrences(); ok {
		_spec.SetField(stresspattern.FieldOccurrences, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOccurrences(); ok {
		_spec.AddField(stresspattern.FieldOccurrences, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(stresspattern.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(stresspattern.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastOccurrence(); ok {
		_spec.SetField(stresspattern.FieldLastOccurrence, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(stresspattern.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stresspattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StressPatternUpdateOne is the builder for updating a single StressPattern entity.
type StressPatternUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StressPatternMutation
}

// SetUserID sets the "user_id" field.
func (_u *StressPatternUpdateOne) SetUserID(v string) *StressPatternUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *StressPatternUpdateOne) SetNillableUserID(v *string) *StressPatternUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetPatternType sets the "pattern_type" field.
func (_u *StressPatternUpdateOne) SetPatternType(v string) *StressPatternUpdateOne {
	_u.mutation.SetPatternType(v)
	return _u
}

// SetNillablePatternType sets the "pattern_type" field if the given value is not nil.
func (_u *StressPatternUpdateOne) SetNillablePatternType(v *string) *StressPatternUpdateOne {
	if v != nil {
		_u.SetPatternType(*v)
	}
	return _u
}

// SetTriggerSignature sets the "trigger_signature" field.
func (_u *StressPatternUpdateOne) SetTriggerSignature(v string) *StressPatternUpdateOne {
	_u.mutation.SetTriggerSignature(v)
	return _u
}

// SetNillableTriggerSignature sets the "trigger_signature" field if the given value is not nil.
func (_u *StressPatternUpdateOne) SetNillableTriggerSignature(v *string) *StressPatternUpdateOne {
	if v != nil {
		_u.SetTriggerSignature(*v)
	}
	return _u
}

// SetTriggerConditions sets the "trigger_conditions" field.
func (_u *StressPatternUpdateOne) SetTriggerConditions(v map[string]string) *StressPatternUpdateOne {
	_u.mutation.SetTriggerConditions(v)
	return _u
}

// ClearTriggerConditions clears the value of the "trigger_conditions" field.
func (_u *StressPatternUpdateOne) ClearTriggerConditions() *StressPatternUpdateOne {
	_u.mutation.ClearTriggerConditions()
	return _u
}

// SetResponseProfile sets the "response_profile" field.
func (_u *StressPatternUpdateOne) SetResponseProfile(v map[string]float64) *StressPatternUpdateOne {
	_u.mutation.SetResponseProfile(v)
	return _u
}

// ClearResponseProfile clears the value of the "response_profile" field.
func (_u *StressPatternUpdateOne) ClearResponseProfile() *StressPatternUpdateOne {
	_u.mutation.ClearResponseProfile()
	return _u
}

// SetOccurrences sets the "occurrences" field.
func (_u *StressPatternUpdateOne) SetOccurrences(v int) *StressPatternUpdateOne {
	_u.mutation.ResetOccurrences()
	_u.mutation.SetOccurrences(v)
	return _u
}

// SetNillableOccurrences sets the "occurrences" field if the given value is not nil.
func (_u *StressPatternUpdateOne) SetNillableOccurrences(v *int) *StressPatternUpdateOne {
	if v != nil {
		_u.SetOccurrences(*v)
	}
	return _u
}

// AddOccurrences adds value to the "occurrences" field.
func (_u *StressPatternUpdateOne) AddOccurrences(v int) *StressPatternUpdateOne {
	_u.mutation.AddOccurrences(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *StressPatternUpdateOne) SetConfidence(v float64) *StressPatternUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *StressPatternUpdateOne) SetNillableConfidence(v *float64) *StressPatternUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *StressPatternUpdateOne) AddConfidence(v float64) *StressPatternUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetLastOccurrence sets the "last_occurrence" field.
func (_u *StressPatternUpdateOne) SetLastOccurrence(v time.Time) *StressPatternUpdateOne {
	_u.mutation.SetLastOccurrence(v)
	return _u
}

// SetNillableLastOccurrence sets the "last_occurrence" field if the given value is not nil.
func (_u *StressPatternUpdateOne) SetNillableLastOccurrence(v *time.Time) *StressPatternUpdateOne {
	if v != nil {
		_u.SetLastOccurrence(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StressPatternUpdateOne) SetUpdatedAt(v time.Time) *StressPatternUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StressPatternMutation object of the builder.
func (_u *StressPatternUpdateOne) Mutation() *StressPatternMutation {
	return _u.mutation
}

// Where appends a list predicates to the StressPatternUpdate builder.
func (_u *StressPatternUpdateOne) Where(ps ...predicate.StressPattern) *StressPatternUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StressPatternUpdateOne) Select(field string, fields ...string) *StressPatternUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StressPattern entity.
func (_u *StressPatternUpdateOne) Save(ctx context.Context) (*StressPattern, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StressPatternUpdateOne) SaveX(ctx context.Context) *StressPattern {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StressPatternUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StressPatternUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StressPatternUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stresspattern.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StressPatternUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := stresspattern.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "StressPattern.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PatternType(); ok {
		if err := stresspattern.PatternTypeValidator(v); err != nil {
			return &ValidationError{Name: "pattern_type", err: fmt.Errorf(`ent: validator failed for field "StressPattern.pattern_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TriggerSignature(); ok {
		if err := stresspattern.TriggerSignatureValidator(v); err != nil {
			return &ValidationError{Name: "trigger_signature", err: fmt.Errorf(`ent: validator failed for field "StressPattern.trigger_signature": %w`, err)}
		}
	}
	return nil
}

func (_u *StressPatternUpdateOne) sqlSave(ctx context.Context) (_node *StressPattern, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stresspattern.Table, stresspattern.Columns, sqlgraph.NewFieldSpec(stresspattern.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StressPattern.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stresspattern.FieldID)
		for _, f := range fields {
			if !stresspattern.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stresspattern.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(stresspattern.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatternType(); ok {
		_spec.SetField(stresspattern.FieldPatternType, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggerSignature(); ok {
		_spec.SetField(stresspattern.FieldTriggerSignature, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggerConditions(); ok {
		_spec.SetField(stresspattern.FieldTriggerConditions, field.TypeJSON, value)
	}
	if _u.mutation.TriggerConditionsCleared() {
		_spec.ClearField(stresspattern.FieldTriggerConditions, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResponseProfile(); ok {
		_spec.SetField(stresspattern.FieldResponseProfile, field.TypeJSON, value)
	}
	if _u.mutation.ResponseProfileCleared() {
		_spec.ClearField(stresspattern.FieldResponseProfile, field.TypeJSON)
	}
	if value, ok := _u.mutation.Occurrences(); ok {
		_spec.SetField(stresspattern.FieldOccurrences, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOccurrences(); ok {
		_spec.AddField(stresspattern.FieldOccurrences, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(stresspattern.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(stresspattern.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastOccurrence(); ok {
		_spec.SetField(stresspattern.FieldLastOccurrence, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(stresspattern.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &StressPattern{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stresspattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
