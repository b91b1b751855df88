// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anupamd/studypulse/ent/interventionevent"
)

// InterventionEventCreate is the builder for creating a InterventionEvent entity.
type InterventionEventCreate struct {
	config
	mutation *InterventionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *InterventionEventCreate) SetSequence(v int64) *InterventionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *InterventionEventCreate) SetTimestamp(v time.Time) *InterventionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *InterventionEventCreate) SetNillableTimestamp(v *time.Time) *InterventionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *InterventionEventCreate) SetUserID(v string) *InterventionEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetInterventionID sets the "intervention_id" field.
func (_c *InterventionEventCreate) SetInterventionID(v string) *InterventionEventCreate {
	_c.mutation.SetInterventionID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *InterventionEventCreate) SetAction(v string) *InterventionEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetRiskLevel sets the "risk_level" field.
func (_c *InterventionEventCreate) SetRiskLevel(v string) *InterventionEventCreate {
	_c.mutation.SetRiskLevel(v)
	return _c
}

// SetAccepted sets the "accepted" field.
func (_c *InterventionEventCreate) SetAccepted(v bool) *InterventionEventCreate {
	_c.mutation.SetAccepted(v)
	return _c
}

// Mutation returns the InterventionEventMutation object of the builder.
func (_c *InterventionEventCreate) Mutation() *InterventionEventMutation {
	return _c.mutation
}

// Save creates the InterventionEvent in the database.
func (_c *InterventionEventCreate) Save(ctx context.Context) (*InterventionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InterventionEventCreate) SaveX(ctx context.Context) *InterventionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterventionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterventionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InterventionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := interventionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InterventionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "InterventionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "InterventionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "InterventionEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := interventionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InterventionID(); !ok {
		return &ValidationError{Name: "intervention_id", err: errors.New(`ent: missing required field "InterventionEvent.intervention_id"`)}
	}
	if v, ok := _c.mutation.InterventionID(); ok {
		if err := interventionevent.InterventionIDValidator(v); err != nil {
			return &ValidationError{Name: "intervention_id", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.intervention_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "InterventionEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := interventionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RiskLevel(); !ok {
		return &ValidationError{Name: "risk_level", err: errors.New(`ent: missing required field "InterventionEvent.risk_level"`)}
	}
	if v, ok := _c.mutation.RiskLevel(); ok {
		if err := interventionevent.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.risk_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Accepted(); !ok {
		return &ValidationError{Name: "accepted", err: errors.New(`ent: missing required field "InterventionEvent.accepted"`)}
	}
	return nil
}

func (_c *InterventionEventCreate) sqlSave(ctx context.Context) (*InterventionEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InterventionEventCreate) createSpec() (*InterventionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &InterventionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(interventionevent.Table, sqlgraph.NewFieldSpec(interventionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(interventionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(interventionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(interventionevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.InterventionID(); ok {
		_spec.SetField(interventionevent.FieldInterventionID, field.TypeString, value)
		_node.InterventionID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(interventionevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.RiskLevel(); ok {
		_spec.SetField(interventionevent.FieldRiskLevel, field.TypeString, value)
		_node.RiskLevel = value
	}
	if value, ok := _c.mutation.Accepted(); ok {
		_spec.SetField(interventionevent.FieldAccepted, field.TypeBool, value)
		_node.Accepted = value
	}
	return _node, _spec
}

// InterventionEventCreateBulk is the builder for creating many InterventionEvent entities in bulk.
type InterventionEventCreateBulk struct {
	config
	err      error
	builders []*InterventionEventCreate
}

// Save creates the InterventionEvent entities in the database.
func (_c *InterventionEventCreateBulk) Save(ctx context.Context) ([]*InterventionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InterventionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InterventionEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InterventionEventCreateBulk) SaveX(ctx context.Context) []*InterventionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterventionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterventionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
