// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anupamd/studypulse/ent/burnoutassessment"
	"github.com/anupamd/studypulse/ent/predicate"
)

// BurnoutAssessmentDelete is the builder for deleting a BurnoutAssessment entity.
type BurnoutAssessmentDelete struct {
	config
	hooks    []Hook
	mutation *BurnoutAssessmentMutation
}

// Where appends a list predicates to the BurnoutAssessmentDelete builder.
func (_d *BurnoutAssessmentDelete) Where(ps ...predicate.BurnoutAssessment) *BurnoutAssessmentDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BurnoutAssessmentDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BurnoutAssessmentDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BurnoutAssessmentDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(burnoutassessment.Table, sqlgraph.NewFieldSpec(burnoutassessment.FieldID, field.TypeInt))
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

// BurnoutAssessmentDeleteOne is the builder for deleting a single BurnoutAssessment entity.
type BurnoutAssessmentDeleteOne struct {
	_d *BurnoutAssessmentDelete
}

// Where appends a list predicates to the BurnoutAssessmentDelete builder.
func (_d *BurnoutAssessmentDeleteOne) Where(ps ...predicate.BurnoutAssessment) *BurnoutAssessmentDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BurnoutAssessmentDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{burnoutassessment.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BurnoutAssessmentDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
