// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anupamd/studypulse/ent/loadmetricevent"
	"github.com/anupamd/studypulse/ent/predicate"
)

// LoadMetricEventDelete is the builder for deleting a LoadMetricEvent entity.
type LoadMetricEventDelete struct {
	config
	hooks    []Hook
	mutation *LoadMetricEventMutation
}

// Where appends a list predicates to the LoadMetricEventDelete builder.
func (_d *LoadMetricEventDelete) Where(ps ...predicate.LoadMetricEvent) *LoadMetricEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *LoadMetricEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LoadMetricEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *LoadMetricEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(loadmetricevent.Table, sqlgraph.NewFieldSpec(loadmetricevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// LoadMetricEventDeleteOne is the builder for deleting a single LoadMetricEvent entity.
type LoadMetricEventDeleteOne struct {
	_d *LoadMetricEventDelete
}

// Where appends a list predicates to the LoadMetricEventDelete builder.
func (_d *LoadMetricEventDeleteOne) Where(ps ...predicate.LoadMetricEvent) *LoadMetricEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *LoadMetricEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{loadmetricevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LoadMetricEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
