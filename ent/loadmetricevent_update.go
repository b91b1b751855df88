// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/anupamd/studypulse/ent/loadmetricevent"
	"github.com/anupamd/studypulse/ent/predicate"
	"github.com/anupamd/studypulse/ent/schema"
)

// LoadMetricEventUpdate is the builder for updating LoadMetricEvent entities.
type LoadMetricEventUpdate struct {
	config
	hooks    []Hook
	mutation *LoadMetricEventMutation
}

// Where appends a list predicates to the LoadMetricEventUpdate builder.
func (_u *LoadMetricEventUpdate) Where(ps ...predicate.LoadMetricEvent) *LoadMetricEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *LoadMetricEventUpdate) SetSessionID(v string) *LoadMetricEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *LoadMetricEventUpdate) SetNillableSessionID(v *string) *LoadMetricEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *LoadMetricEventUpdate) SetUserID(v string) *LoadMetricEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LoadMetricEventUpdate) SetNillableUserID(v *string) *LoadMetricEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLoadScore sets the "load_score" field.
func (_u *LoadMetricEventUpdate) SetLoadScore(v float64) *LoadMetricEventUpdate {
	_u.mutation.ResetLoadScore()
	_u.mutation.SetLoadScore(v)
	return _u
}

// SetNillableLoadScore sets the "load_score" field if the given value is not nil.
func (_u *LoadMetricEventUpdate) SetNillableLoadScore(v *float64) *LoadMetricEventUpdate {
	if v != nil {
		_u.SetLoadScore(*v)
	}
	return _u
}

// AddLoadScore adds value to the "load_score" field.
func (_u *LoadMetricEventUpdate) AddLoadScore(v float64) *LoadMetricEventUpdate {
	_u.mutation.AddLoadScore(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *LoadMetricEventUpdate) SetConfidence(v float64) *LoadMetricEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *LoadMetricEventUpdate) SetNillableConfidence(v *float64) *LoadMetricEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *LoadMetricEventUpdate) AddConfidence(v float64) *LoadMetricEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetIndicators sets the "indicators" field.
func (_u *LoadMetricEventUpdate) SetIndicators(v []schema.IndicatorRecord) *LoadMetricEventUpdate {
	_u.mutation.SetIndicators(v)
	return _u
}

// AppendIndicators appends value to the "indicators" field.
func (_u *LoadMetricEventUpdate) AppendIndicators(v []schema.IndicatorRecord) *LoadMetricEventUpdate {
	_u.mutation.AppendIndicators(v)
	return _u
}

// ClearIndicators clears the value of the "indicators" field.
func (_u *LoadMetricEventUpdate) ClearIndicators() *LoadMetricEventUpdate {
	_u.mutation.ClearIndicators()
	return _u
}

// SetTopic sets the "topic" field.
func (_u *LoadMetricEventUpdate) SetTopic(v string) *LoadMetricEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *LoadMetricEventUpdate) SetNillableTopic(v *string) *LoadMetricEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetHour sets the "hour" field.
func (_u *LoadMetricEventUpdate) SetHour(v int) *LoadMetricEventUpdate {
	_u.mutation.ResetHour()
	_u.mutation.SetHour(v)
	return _u
}

// SetNillableHour sets the "hour" field if the given value is not nil.
func (_u *LoadMetricEventUpdate) SetNillableHour(v *int) *LoadMetricEventUpdate {
	if v != nil {
		_u.SetHour(*v)
	}
	return _u
}

// AddHour adds value to the "hour" field.
func (_u *LoadMetricEventUpdate) AddHour(v int) *LoadMetricEventUpdate {
	_u.mutation.AddHour(v)
	return _u
}

// SetWeekday sets the "weekday" field.
func (_u *LoadMetricEventUpdate) SetWeekday(v int) *LoadMetricEventUpdate {
	_u.mutation.ResetWeekday()
	_u.mutation.SetWeekday(v)
	return _u
}

// SetNillableWeekday sets the "weekday" field if the given value is not nil.
func (_u *LoadMetricEventUpdate) SetNillableWeekday(v *int) *LoadMetricEventUpdate {
	if v != nil {
		_u.SetWeekday(*v)
	}
	return _u
}

// AddWeekday adds value to the "weekday" field.
func (_u *LoadMetricEventUpdate) AddWeekday(v int) *LoadMetricEventUpdate {
	_u.mutation.AddWeekday(v)
	return _u
}

// SetDaysToExam sets the "days_to_exam" field.
func (_u *LoadMetricEventUpdate) SetDaysToExam(v int) *LoadMetricEventUpdate {
	_u.mutation.ResetDaysToExam()
	_u.mutation.SetDaysToExam(v)
	return _u
}

// SetNillableDaysToExam sets the "days_to_exam" field if the given value is not nil.
func (_u *LoadMetricEventUpdate) SetNillableDaysToExam(v *int) *LoadMetricEventUpdate {
	if v != nil {
		_u.SetDaysToExam(*v)
	}
	return _u
}

// AddDaysToExam adds value to the "days_to_exam" field.
func (_u *LoadMetricEventUpdate) AddDaysToExam(v int) *LoadMetricEventUpdate {
	_u.mutation.AddDaysToExam(v)
	return _u
}

// Mutation returns the LoadMetricEventMutation object of the builder.
func (_u *LoadMetricEventUpdate) Mutation() *LoadMetricEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LoadMetricEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LoadMetricEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LoadMetricEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LoadMetricEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LoadMetricEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := loadmetricevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "LoadMetricEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := loadmetricevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LoadMetricEvent.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LoadMetricEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(loadmetricevent.Table, loadmetricevent.Columns, sqlgraph.NewFieldSpec(loadmetricevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(loadmetricevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(loadmetricevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LoadScore(); ok {
		_spec.SetField(loadmetricevent.FieldLoadScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLoadScore(); ok {
		_spec.AddField(loadmetricevent.FieldLoadScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(loadmetricevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(loadmetricevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Indicators(); ok {
		_spec.SetField(loadmetricevent.FieldIndicators, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIndicators(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, loadmetricevent.FieldIndicators, value)
		})
	}
	if _u.mutation.IndicatorsCleared() {
		_spec.ClearField(loadmetricevent.FieldIndicators, field.TypeJSON)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(loadmetricevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hour(); ok {
		_spec.SetField(loadmetricevent.FieldHour, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHour(); ok {
		_spec.AddField(loadmetricevent.FieldHour, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Weekday(); ok {
		_spec.SetField(loadmetricevent.FieldWeekday, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeekday(); ok {
		_spec.AddField(loadmetricevent.FieldWeekday, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DaysToExam(); ok {
		_spec.SetField(loadmetricevent.FieldDaysToExam, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDaysToExam(); ok {
		_spec.AddField(loadmetricevent.FieldDaysToExam, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{loadmetricevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LoadMetricEventUpdateOne is the builder for updating a single LoadMetricEvent entity.
type LoadMetricEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LoadMetricEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *LoadMetricEventUpdateOne) SetSessionID(v string) *LoadMetricEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *LoadMetricEventUpdateOne) SetNillableSessionID(v *string) *LoadMetricEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *LoadMetricEventUpdateOne) SetUserID(v string) *LoadMetricEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LoadMetricEventUpdateOne) SetNillableUserID(v *string) *LoadMetricEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLoadScore sets the "load_score" field.
func (_u *LoadMetricEventUpdateOne) SetLoadScore(v float64) *LoadMetricEventUpdateOne {
	_u.mutation.ResetLoadScore()
	_u.mutation.SetLoadScore(v)
	return _u
}

// SetNillableLoadScore sets the "load_score" field if the given value is not nil.
func (_u *LoadMetricEventUpdateOne) SetNillableLoadScore(v *float64) *LoadMetricEventUpdateOne {
	if v != nil {
		_u.SetLoadScore(*v)
	}
	return _u
}

// AddLoadScore adds value to the "load_score" field.
func (_u *LoadMetricEventUpdateOne) AddLoadScore(v float64) *LoadMetricEventUpdateOne {
	_u.mutation.AddLoadScore(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *LoadMetricEventUpdateOne) SetConfidence(v float64) *LoadMetricEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *LoadMetricEventUpdateOne) SetNillableConfidence(v *float64) *LoadMetricEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *LoadMetricEventUpdateOne) AddConfidence(v float64) *LoadMetricEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetIndicators sets the "indicators" field.
func (_u *LoadMetricEventUpdateOne) SetIndicators(v []schema.IndicatorRecord) *LoadMetricEventUpdateOne {
	_u.mutation.SetIndicators(v)
	return _u
}

// AppendIndicators appends value to the "indicators" field.
func (_u *LoadMetricEventUpdateOne) AppendIndicators(v []schema.IndicatorRecord) *LoadMetricEventUpdateOne {
	_u.mutation.AppendIndicators(v)
	return _u
}

// ClearIndicators clears the value of the "indicators" field.
func (_u *LoadMetricEventUpdateOne) ClearIndicators() *LoadMetricEventUpdateOne {
	_u.mutation.ClearIndicators()
	return _u
}

// SetTopic sets the "topic" field.
func (_u *LoadMetricEventUpdateOne) SetTopic(v string) *LoadMetricEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *LoadMetricEventUpdateOne) SetNillableTopic(v *string) *LoadMetricEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetHour sets the "hour" field.
func (_u *LoadMetricEventUpdateOne) SetHour(v int) *LoadMetricEventUpdateOne {
	_u.mutation.ResetHour()
	_u.mutation.SetHour(v)
	return _u
}

// SetNillableHour sets the "hour" field if the given value is not nil.
func (_u *LoadMetricEventUpdateOne) SetNillableHour(v *int) *LoadMetricEventUpdateOne {
	if v != nil {
		_u.SetHour(*v)
	}
	return _u
}

// AddHour adds value to the "hour" field.
func (_u *LoadMetricEventUpdateOne) AddHour(v int) *LoadMetricEventUpdateOne {
	_u.mutation.AddHour(v)
	return _u
}

// SetWeekday sets the "weekday" field.
func (_u *LoadMetricEventUpdateOne) SetWeekday(v int) *LoadMetricEventUpdateOne {
	_u.mutation.ResetWeekday()
	_u.mutation.SetWeekday(v)
	return _u
}

// SetNillableWeekday sets the "weekday" field if the given value is not nil.
func (_u *LoadMetricEventUpdateOne) SetNillableWeekday(v *int) *LoadMetricEventUpdateOne {
	if v != nil {
		_u.SetWeekday(*v)
	}
	return _u
}

// AddWeekday adds value to the "weekday" field.
func (_u *LoadMetricEventUpdateOne) AddWeekday(v int) *LoadMetricEventUpdateOne {
	_u.mutation.AddWeekday(v)
	return _u
}

// SetDaysToExam sets the "days_to_exam" field.
func (_u *LoadMetricEventUpdateOne) SetDaysToExam(v int) *LoadMetricEventUpdateOne {
	_u.mutation.ResetDaysToExam()
	_u.mutation.SetDaysToExam(v)
	return _u
}

// SetNillableDaysToExam sets the "days_to_exam" field if the given value is not nil.
func (_u *LoadMetricEventUpdateOne) SetNillableDaysToExam(v *int) *LoadMetricEventUpdateOne {
	if v != nil {
		_u.SetDaysToExam(*v)
	}
	return _u
}

// AddDaysToExam adds value to the "days_to_exam" field.
func (_u *LoadMetricEventUpdateOne) AddDaysToExam(v int) *LoadMetricEventUpdateOne {
	_u.mutation.AddDaysToExam(v)
	return _u
}

// Mutation returns the LoadMetricEventMutation object of the builder.
func (_u *LoadMetricEventUpdateOne) Mutation() *LoadMetricEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the LoadMetricEventUpdate builder.
func (_u *LoadMetricEventUpdateOne) Where(ps ...predicate.LoadMetricEvent) *LoadMetricEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LoadMetricEventUpdateOne) Select(field string, fields ...string) *LoadMetricEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LoadMetricEvent entity.
func (_u *LoadMetricEventUpdateOne) Save(ctx context.Context) (*LoadMetricEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LoadMetricEventUpdateOne) SaveX(ctx context.Context) *LoadMetricEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LoadMetricEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LoadMetricEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LoadMetricEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := loadmetricevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "LoadMetricEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := loadmetricevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LoadMetricEvent.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LoadMetricEventUpdateOne) sqlSave(ctx context.Context) (_node *LoadMetricEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(loadmetricevent.Table, loadmetricevent.Columns, sqlgraph.NewFieldSpec(loadmetricevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LoadMetricEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, loadmetricevent.FieldID)
		for _, f := range fields {
			if !loadmetricevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != loadmetricevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(loadmetricevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(loadmetricevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LoadScore(); ok {
		_spec.SetField(loadmetricevent.FieldLoadScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLoadScore(); ok {
		_spec.AddField(loadmetricevent.FieldLoadScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(loadmetricevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(loadmetricevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Indicators(); ok {
		_spec.SetField(loadmetricevent.FieldIndicators, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIndicators(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, loadmetricevent.FieldIndicators, value)
		})
	}
	if _u.mutation.IndicatorsCleared() {
		_spec.ClearField(loadmetricevent.FieldIndicators, field.TypeJSON)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(loadmetricevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hour(); ok {
		_spec.SetField(loadmetricevent.FieldHour, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHour(); ok {
		_spec.AddField(loadmetricevent.FieldHour, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Weekday(); ok {
		_spec.SetField(loadmetricevent.FieldWeekday, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeekday(); ok {
		_spec.AddField(loadmetricevent.FieldWeekday, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DaysToExam(); ok {
		_spec.SetField(loadmetricevent.FieldDaysToExam, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDaysToExam(); ok {
		_spec.AddField(loadmetricevent.FieldDaysToExam, field.TypeInt, value)
	}
	_node = &LoadMetricEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{loadmetricevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
