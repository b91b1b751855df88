// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anupamd/studypulse/ent/loadmetricevent"
	"github.com/anupamd/studypulse/ent/schema"
)

// LoadMetricEventCreate is the builder for creating a LoadMetricEvent entity.
type LoadMetricEventCreate struct {
	config
	mutation *LoadMetricEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *LoadMetricEventCreate) SetSequence(v int64) *LoadMetricEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *LoadMetricEventCreate) SetTimestamp(v time.Time) *LoadMetricEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *LoadMetricEventCreate) SetNillableTimestamp(v *time.Time) *LoadMetricEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *LoadMetricEventCreate) SetSessionID(v string) *LoadMetricEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *LoadMetricEventCreate) SetUserID(v string) *LoadMetricEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetLoadScore sets the "load_score" field.
func (_c *LoadMetricEventCreate) SetLoadScore(v float64) *LoadMetricEventCreate {
	_c.mutation.SetLoadScore(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *LoadMetricEventCreate) SetConfidence(v float64) *LoadMetricEventCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetIndicators sets the "indicators" field.
func (_c *LoadMetricEventCreate) SetIndicators(v []schema.IndicatorRecord) *LoadMetricEventCreate {
	_c.mutation.SetIndicators(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *LoadMetricEventCreate) SetTopic(v string) *LoadMetricEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_c *LoadMetricEventCreate) SetNillableTopic(v *string) *LoadMetricEventCreate {
	if v != nil {
		_c.SetTopic(*v)
	}
	return _c
}

// SetHour sets the "hour" field.
func (_c *LoadMetricEventCreate) SetHour(v int) *LoadMetricEventCreate {
	_c.mutation.SetHour(v)
	return _c
}

// SetWeekday sets the "weekday" field.
func (_c *LoadMetricEventCreate) SetWeekday(v int) *LoadMetricEventCreate {
	_c.mutation.SetWeekday(v)
	return _c
}

// SetDaysToExam sets the "days_to_exam" field.
func (_c *LoadMetricEventCreate) SetDaysToExam(v int) *LoadMetricEventCreate {
	_c.mutation.SetDaysToExam(v)
	return _c
}

// SetNillableDaysToExam sets the "days_to_exam" field if the given value is not nil.
func (_c *LoadMetricEventCreate) SetNillableDaysToExam(v *int) *LoadMetricEventCreate {
	if v != nil {
		_c.SetDaysToExam(*v)
	}
	return _c
}

// Mutation returns the LoadMetricEventMutation object of the builder.
func (_c *LoadMetricEventCreate) Mutation() *LoadMetricEventMutation {
	return _c.mutation
}

// Save creates the LoadMetricEvent in the database.
func (_c *LoadMetricEventCreate) Save(ctx context.Context) (*LoadMetricEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LoadMetricEventCreate) SaveX(ctx context.Context) *LoadMetricEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LoadMetricEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LoadMetricEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LoadMetricEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := loadmetricevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Topic(); !ok {
		v := loadmetricevent.DefaultTopic
		_c.mutation.SetTopic(v)
	}
	if _, ok := _c.mutation.DaysToExam(); !ok {
		v := loadmetricevent.DefaultDaysToExam
		_c.mutation.SetDaysToExam(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LoadMetricEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "LoadMetricEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "LoadMetricEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "LoadMetricEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := loadmetricevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "LoadMetricEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LoadMetricEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := loadmetricevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LoadMetricEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LoadScore(); !ok {
		return &ValidationError{Name: "load_score", err: errors.New(`ent: missing required field "LoadMetricEvent.load_score"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "LoadMetricEvent.confidence"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "LoadMetricEvent.topic"`)}
	}
	if _, ok := _c.mutation.Hour(); !ok {
		return &ValidationError{Name: "hour", err: errors.New(`ent: missing required field "LoadMetricEvent.hour"`)}
	}
	if _, ok := _c.mutation.Weekday(); !ok {
		return &ValidationError{Name: "weekday", err: errors.New(`ent: missing required field "LoadMetricEvent.weekday"`)}
	}
	if _, ok := _c.mutation.DaysToExam(); !ok {
		return &ValidationError{Name: "days_to_exam", err: errors.New(`ent: missing required field "LoadMetricEvent.days_to_exam"`)}
	}
	return nil
}

func (_c *LoadMetricEventCreate) sqlSave(ctx context.Context) (*LoadMetricEvent, error) {
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

func (_c *LoadMetricEventCreate) createSpec() (*LoadMetricEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &LoadMetricEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(loadmetricevent.Table, sqlgraph.NewFieldSpec(loadmetricevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(loadmetricevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(loadmetricevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(loadmetricevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(loadmetricevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.LoadScore(); ok {
		_spec.SetField(loadmetricevent.FieldLoadScore, field.TypeFloat64, value)
		_node.LoadScore = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(loadmetricevent.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Indicators(); ok {
		_spec.SetField(loadmetricevent.FieldIndicators, field.TypeJSON, value)
		_node.Indicators = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(loadmetricevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Hour(); ok {
		_spec.SetField(loadmetricevent.FieldHour, field.TypeInt, value)
		_node.Hour = value
	}
	if value, ok := _c.mutation.Weekday(); ok {
		_spec.SetField(loadmetricevent.FieldWeekday, field.TypeInt, value)
		_node.Weekday = value
	}
	if value, ok := _c.mutation.DaysToExam(); ok {
		_spec.SetField(loadmetricevent.FieldDaysToExam, field.TypeInt, value)
		_node.DaysToExam = value
	}
	return _node, _spec
}

// LoadMetricEventCreateBulk is the builder for creating many LoadMetricEvent entities in bulk.
type LoadMetricEventCreateBulk struct {
	config
	err      error
	builders []*LoadMetricEventCreate
}

// Save creates the LoadMetricEvent entities in the database.
func (_c *LoadMetricEventCreateBulk) Save(ctx context.Context) ([]*LoadMetricEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LoadMetricEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LoadMetricEventMutation)
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
func (_c *LoadMetricEventCreateBulk) SaveX(ctx context.Context) []*LoadMetricEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LoadMetricEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LoadMetricEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
