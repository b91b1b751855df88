// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anupamd/studypulse/ent/stresspattern"
)

// StressPatternCreate is the builder for creating a StressPattern entity.
type StressPatternCreate struct {
	config
	mutation *StressPatternMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *StressPatternCreate) SetUserID(v string) *StressPatternCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetPatternType sets the "pattern_type" field.
func (_c *StressPatternCreate) SetPatternType(v string) *StressPatternCreate {
	_c.mutation.SetPatternType(v)
	return _c
}

// SetTriggerSignature sets the "trigger_signature" field.
func (_c *StressPatternCreate) SetTriggerSignature(v string) *StressPatternCreate {
	_c.mutation.SetTriggerSignature(v)
	return _c
}

// SetTriggerConditions sets the "trigger_conditions" field.
func (_c *StressPatternCreate) SetTriggerConditions(v map[string]string) *StressPatternCreate {
	_c.mutation.SetTriggerConditions(v)
	return _c
}

// SetResponseProfile sets the "response_profile" field.
func (_c *StressPatternCreate) SetResponseProfile(v map[string]float64) *StressPatternCreate {
	_c.mutation.SetResponseProfile(v)
	return _c
}

// SetOccurrences sets the "occurrences" field.
func (_c *StressPatternCreate) SetOccurrences(v int) *StressPatternCreate {
	_c.mutation.SetOccurrences(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *StressPatternCreate) SetConfidence(v float64) *StressPatternCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetFirstDetectedAt sets the "first_detected_at" field.
func (_c *StressPatternCreate) SetFirstDetectedAt(v time.Time) *StressPatternCreate {
	_c.mutation.SetFirstDetectedAt(v)
	return _c
}

// SetLastOccurrence sets the "last_occurrence" field.
func (_c *StressPatternCreate) SetLastOccurrence(v time.Time) *StressPatternCreate {
	_c.mutation.SetLastOccurrence(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StressPatternCreate) SetUpdatedAt(v time.Time) *StressPatternCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StressPatternCreate) SetNillableUpdatedAt(v *time.Time) *StressPatternCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the StressPatternMutation object of the builder.
func (_c *StressPatternCreate) Mutation() *StressPatternMutation {
	return _c.mutation
}

// Save creates the StressPattern in the database.
func (_c *StressPatternCreate) Save(ctx context.Context) (*StressPattern, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StressPatternCreate) SaveX(ctx context.Context) *StressPattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StressPatternCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StressPatternCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StressPatternCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := stresspattern.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StressPatternCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "StressPattern.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := stresspattern.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "StressPattern.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PatternType(); !ok {
		return &ValidationError{Name: "pattern_type", err: errors.New(`ent: missing required field "StressPattern.pattern_type"`)}
	}
	if v, ok := _c.mutation.PatternType(); ok {
		if err := stresspattern.PatternTypeValidator(v); err != nil {
			return &ValidationError{Name: "pattern_type", err: fmt.Errorf(`ent: validator failed for field "StressPattern.pattern_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TriggerSignature(); !ok {
		return &ValidationError{Name: "trigger_signature", err: errors.New(`ent: missing required field "StressPattern.trigger_signature"`)}
	}
	if v, ok := _c.mutation.TriggerSignature(); ok {
		if err := stresspattern.TriggerSignatureValidator(v); err != nil {
			return &ValidationError{Name: "trigger_signature", err: fmt.Errorf(`ent: validator failed for field "StressPattern.trigger_signature": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Occurrences(); !ok {
		return &ValidationError{Name: "occurrences", err: errors.New(`ent: missing required field "StressPattern.occurrences"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "StressPattern.confidence"`)}
	}
	if _, ok := _c.mutation.FirstDetectedAt(); !ok {
		return &ValidationError{Name: "first_detected_at", err: errors.New(`ent: missing required field "StressPattern.first_detected_at"`)}
	}
	if _, ok := _c.mutation.LastOccurrence(); !ok {
		return &ValidationError{Name: "last_occurrence", err: errors.New(`ent: missing required field "StressPattern.last_occurrence"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StressPattern.updated_at"`)}
	}
	return nil
}

func (_c *StressPatternCreate) sqlSave(ctx context.Context) (*StressPattern, error) {
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

func (_c *StressPatternCreate) createSpec() (*StressPattern, *sqlgraph.CreateSpec) {
	var (
		_node = &StressPattern{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stresspattern.Table, sqlgraph.NewFieldSpec(stresspattern.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(stresspattern.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.PatternType(); ok {
		_spec.SetField(stresspattern.FieldPatternType, field.TypeString, value)
		_node.PatternType = value
	}
	if value, ok := _c.mutation.TriggerSignature(); ok {
		_spec.SetField(stresspattern.FieldTriggerSignature, field.TypeString, value)
		_node.TriggerSignature = value
	}
	if value, ok := _c.mutation.TriggerConditions(); ok {
		_spec.SetField(stresspattern.FieldTriggerConditions, field.TypeJSON, value)
		_node.TriggerConditions = value
	}
	if value, ok := _c.mutation.ResponseProfile(); ok {
		_spec.SetField(stresspattern.FieldResponseProfile, field.TypeJSON, value)
		_node.ResponseProfile = value
	}
	if value, ok := _c.mutation.Occurrences(); ok {
		_spec.SetField(stresspattern.FieldOccurrences, field.TypeInt, value)
		_node.Occurrences = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(stresspattern.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.FirstDetectedAt(); ok {
		_spec.SetField(stresspattern.FieldFirstDetectedAt, field.TypeTime, value)
		_node.FirstDetectedAt = value
	}
	if value, ok := _c.mutation.LastOccurrence(); ok {
		_spec.SetField(stresspattern.FieldLastOccurrence, field.TypeTime, value)
		_node.LastOccurrence = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(stresspattern.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// StressPatternCreateBulk is the builder for creating many StressPattern entities in bulk.
type StressPatternCreateBulk struct {
	config
	err      error
	builders []*StressPatternCreate
}

// Save creates the StressPattern entities in the database.
func (_c *StressPatternCreateBulk) Save(ctx context.Context) ([]*StressPattern, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StressPattern, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StressPatternMutation)
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
func (_c *StressPatternCreateBulk) SaveX(ctx context.Context) []*StressPattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StressPatternCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StressPatternCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
