// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anupamd/studypulse/ent/interventionevent"
	"github.com/anupamd/studypulse/ent/predicate"
)

// InterventionEventUpdate is the builder for updating InterventionEvent entities.
type InterventionEventUpdate struct {
	config
	hooks    []Hook
	mutation *InterventionEventMutation
}

// Where appends a list predicates to the InterventionEventUpdate builder.
func (_u *InterventionEventUpdate) Where(ps ...predicate.InterventionEvent) *InterventionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *InterventionEventUpdate) SetUserID(v string) *InterventionEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InterventionEventUpdate) SetNillableUserID(v *string) *InterventionEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetInterventionID sets the "intervention_id" field.
func (_u *InterventionEventUpdate) SetInterventionID(v string) *InterventionEventUpdate {
	_u.mutation.SetInterventionID(v)
	return _u
}

// SetNillableInterventionID sets the "intervention_id" field if the given value is not nil.
func (_u *InterventionEventUpdate) SetNillableInterventionID(v *string) *InterventionEventUpdate {
	if v != nil {
		_u.SetInterventionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *InterventionEventUpdate) SetAction(v string) *InterventionEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *InterventionEventUpdate) SetNillableAction(v *string) *InterventionEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *InterventionEventUpdate) SetRiskLevel(v string) *InterventionEventUpdate {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *InterventionEventUpdate) SetNillableRiskLevel(v *string) *InterventionEventUpdate {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetAccepted sets the "accepted" field.
func (_u *InterventionEventUpdate) SetAccepted(v bool) *InterventionEventUpdate {
	_u.mutation.SetAccepted(v)
	return _u
}

// SetNillableAccepted sets the "accepted" field if the given value is not nil.
func (_u *InterventionEventUpdate) SetNillableAccepted(v *bool) *InterventionEventUpdate {
	if v != nil {
		_u.SetAccepted(*v)
	}
	return _u
}

// Mutation returns the InterventionEventMutation object of the builder.
func (_u *InterventionEventUpdate) Mutation() *InterventionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InterventionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterventionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InterventionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterventionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterventionEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := interventionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InterventionID(); ok {
		if err := interventionevent.InterventionIDValidator(v); err != nil {
			return &ValidationError{Name: "intervention_id", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.intervention_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := interventionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := interventionevent.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.risk_level": %w`, err)}
		}
	}
	return nil
}

func (_u *InterventionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interventionevent.Table, interventionevent.Columns, sqlgraph.NewFieldSpec(interventionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(interventionevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.InterventionID(); ok {
		_spec.SetField(interventionevent.FieldInterventionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(interventionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(interventionevent.FieldRiskLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Accepted(); ok {
		_spec.SetField(interventionevent.FieldAccepted, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interventionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InterventionEventUpdateOne is the builder for updating a single InterventionEvent entity.
type InterventionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InterventionEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *InterventionEventUpdateOne) SetUserID(v string) *InterventionEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InterventionEventUpdateOne) SetNillableUserID(v *string) *InterventionEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetInterventionID sets the "intervention_id" field.
func (_u *InterventionEventUpdateOne) SetInterventionID(v string) *InterventionEventUpdateOne {
	_u.mutation.SetInterventionID(v)
	return _u
}

// SetNillableInterventionID sets the "intervention_id" field if the given value is not nil.
func (_u *InterventionEventUpdateOne) SetNillableInterventionID(v *string) *InterventionEventUpdateOne {
	if v != nil {
		_u.SetInterventionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *InterventionEventUpdateOne) SetAction(v string) *InterventionEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *InterventionEventUpdateOne) SetNillableAction(v *string) *InterventionEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *InterventionEventUpdateOne) SetRiskLevel(v string) *InterventionEventUpdateOne {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *InterventionEventUpdateOne) SetNillableRiskLevel(v *string) *InterventionEventUpdateOne {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetAccepted sets the "accepted" field.
func (_u *InterventionEventUpdateOne) SetAccepted(v bool) *InterventionEventUpdateOne {
	_u.mutation.SetAccepted(v)
	return _u
}

// SetNillableAccepted sets the "accepted" field if the given value is not nil.
func (_u *InterventionEventUpdateOne) SetNillableAccepted(v *bool) *InterventionEventUpdateOne {
	if v != nil {
		_u.SetAccepted(*v)
	}
	return _u
}

// Mutation returns the InterventionEventMutation object of the builder.
func (_u *InterventionEventUpdateOne) Mutation() *InterventionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the InterventionEventUpdate builder.
func (_u *InterventionEventUpdateOne) Where(ps ...predicate.InterventionEvent) *InterventionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InterventionEventUpdateOne) Select(field string, fields ...string) *InterventionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InterventionEvent entity.
func (_u *InterventionEventUpdateOne) Save(ctx context.Context) (*InterventionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterventionEventUpdateOne) SaveX(ctx context.Context) *InterventionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InterventionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterventionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterventionEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := interventionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InterventionID(); ok {
		if err := interventionevent.InterventionIDValidator(v); err != nil {
			return &ValidationError{Name: "intervention_id", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.intervention_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := interventionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := interventionevent.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.risk_level": %w`, err)}
		}
	}
	return nil
}

func (_u *InterventionEventUpdateOne) sqlSave(ctx context.Context) (_node *InterventionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interventionevent.Table, interventionevent.Columns, sqlgraph.NewFieldSpec(interventionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InterventionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interventionevent.FieldID)
		for _, f := range fields {
			if !interventionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interventionevent.FieldID {
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
		_spec.SetField(interventionevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.InterventionID(); ok {
		_spec.SetField(interventionevent.FieldInterventionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(interventionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(interventionevent.FieldRiskLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Accepted(); ok {
		_spec.SetField(interventionevent.FieldAccepted, field.TypeBool, value)
	}
	_node = &InterventionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interventionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
