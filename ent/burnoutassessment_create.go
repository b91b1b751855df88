// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anupamd/studypulse/ent/burnoutassessment"
	"github.com/anupamd/studypulse/ent/schema"
)

// BurnoutAssessmentCreate is the builder for creating a BurnoutAssessment entity.
type BurnoutAssessmentCreate struct {
	config
	mutation *BurnoutAssessmentMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *BurnoutAssessmentCreate) SetUserID(v string) *BurnoutAssessmentCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetAssessmentDate sets the "assessment_date" field.
func (_c *BurnoutAssessmentCreate) SetAssessmentDate(v string) *BurnoutAssessmentCreate {
	_c.mutation.SetAssessmentDate(v)
	return _c
}

// SetRiskScore sets the "risk_score" field.
func (_c *BurnoutAssessmentCreate) SetRiskScore(v float64) *BurnoutAssessmentCreate {
	_c.mutation.SetRiskScore(v)
	return _c
}

// SetRiskLevel sets the "risk_level" field.
func (_c *BurnoutAssessmentCreate) SetRiskLevel(v string) *BurnoutAssessmentCreate {
	_c.mutation.SetRiskLevel(v)
	return _c
}

// SetFactors sets the "factors" field.
func (_c *BurnoutAssessmentCreate) SetFactors(v []schema.FactorRecord) *BurnoutAssessmentCreate {
	_c.mutation.SetFactors(v)
	return _c
}

// SetRecommendations sets the "recommendations" field.
func (_c *BurnoutAssessmentCreate) SetRecommendations(v []string) *BurnoutAssessmentCreate {
	_c.mutation.SetRecommendations(v)
	return _c
}

// SetInsufficientData sets the "insufficient_data" field.
func (_c *BurnoutAssessmentCreate) SetInsufficientData(v bool) *BurnoutAssessmentCreate {
	_c.mutation.SetInsufficientData(v)
	return _c
}

// SetNillableInsufficientData sets the "insufficient_data" field if the given value is not nil.
func (_c *BurnoutAssessmentCreate) SetNillableInsufficientData(v *bool) *BurnoutAssessmentCreate {
	if v != nil {
		_c.SetInsufficientData(*v)
	}
	return _c
}

// SetOnDemandAt sets the "on_demand_at" field.
func (_c *BurnoutAssessmentCreate) SetOnDemandAt(v time.Time) *BurnoutAssessmentCreate {
	_c.mutation.SetOnDemandAt(v)
	return _c
}

// SetNillableOnDemandAt sets the "on_demand_at" field if the given value is not nil.
func (_c *BurnoutAssessmentCreate) SetNillableOnDemandAt(v *time.Time) *BurnoutAssessmentCreate {
	if v != nil {
		_c.SetOnDemandAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BurnoutAssessmentCreate) SetCreatedAt(v time.Time) *BurnoutAssessmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BurnoutAssessmentCreate) SetNillableCreatedAt(v *time.Time) *BurnoutAssessmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BurnoutAssessmentCreate) SetUpdatedAt(v time.Time) *BurnoutAssessmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BurnoutAssessmentCreate) SetNillableUpdatedAt(v *time.Time) *BurnoutAssessmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the BurnoutAssessmentMutation object of the builder.
func (_c *BurnoutAssessmentCreate) Mutation() *BurnoutAssessmentMutation {
	return _c.mutation
}

// Save creates the BurnoutAssessment in the database.
func (_c *BurnoutAssessmentCreate) Save(ctx context.Context) (*BurnoutAssessment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BurnoutAssessmentCreate) SaveX(ctx context.Context) *BurnoutAssessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BurnoutAssessmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BurnoutAssessmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BurnoutAssessmentCreate) defaults() {
	if _, ok := _c.mutation.InsufficientData(); !ok {
		v := burnoutassessment.DefaultInsufficientData
		_c.mutation.SetInsufficientData(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := burnoutassessment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := burnoutassessment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BurnoutAssessmentCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "BurnoutAssessment.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := burnoutassessment.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "BurnoutAssessment.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AssessmentDate(); !ok {
		return &ValidationError{Name: "assessment_date", err: errors.New(`ent: missing required field "BurnoutAssessment.assessment_date"`)}
	}
	if v, ok := _c.mutation.AssessmentDate(); ok {
		if err := burnoutassessment.AssessmentDateValidator(v); err != nil {
			return &ValidationError{Name: "assessment_date", err: fmt.Errorf(`ent: validator failed for field "BurnoutAssessment.assessment_date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RiskScore(); !ok {
		return &ValidationError{Name: "risk_score", err: errors.New(`ent: missing required field "BurnoutAssessment.risk_score"`)}
	}
	if _, ok := _c.mutation.RiskLevel(); !ok {
		return &ValidationError{Name: "risk_level", err: errors.New(`ent: missing required field "BurnoutAssessment.risk_level"`)}
	}
	if v, ok := _c.mutation.RiskLevel(); ok {
		if err := burnoutassessment.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "BurnoutAssessment.risk_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InsufficientData(); !ok {
		return &ValidationError{Name: "insufficient_data", err: errors.New(`ent: missing required field "BurnoutAssessment.insufficient_data"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BurnoutAssessment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BurnoutAssessment.updated_at"`)}
	}
	return nil
}

func (_c *BurnoutAssessmentCreate) sqlSave(ctx context.Context) (*BurnoutAssessment, error) {
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

func (_c *BurnoutAssessmentCreate) createSpec() (*BurnoutAssessment, *sqlgraph.CreateSpec) {
	var (
		_node = &BurnoutAssessment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(burnoutassessment.Table, sqlgraph.NewFieldSpec(burnoutassessment.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(burnoutassessment.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.AssessmentDate(); ok {
		_spec.SetField(burnoutassessment.FieldAssessmentDate, field.TypeString, value)
		_node.AssessmentDate = value
	}
	if value, ok := _c.mutation.RiskScore(); ok {
		_spec.SetField(burnoutassessment.FieldRiskScore, field.TypeFloat64, value)
		_node.RiskScore = value
	}
	if value, ok := _c.mutation.RiskLevel(); ok {
		_spec.SetField(burnoutassessment.FieldRiskLevel, field.TypeString, value)
		_node.RiskLevel = value
	}
	if value, ok := _c.mutation.Factors(); ok {
		_spec.SetField(burnoutassessment.FieldFactors, field.TypeJSON, value)
		_node.Factors = value
	}
	if value, ok := _c.mutation.Recommendations(); ok {
		_spec.SetField(burnoutassessment.FieldRecommendations, field.TypeJSON, value)
		_node.Recommendations = value
	}
	if value, ok := _c.mutation.InsufficientData(); ok {
		_spec.SetField(burnoutassessment.FieldInsufficientData, field.TypeBool, value)
		_node.InsufficientData = value
	}
	if value, ok := _c.mutation.OnDemandAt(); ok {
		_spec.SetField(burnoutassessment.FieldOnDemandAt, field.TypeTime, value)
		_node.OnDemandAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(burnoutassessment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(burnoutassessment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// BurnoutAssessmentCreateBulk is the builder for creating many BurnoutAssessment entities in bulk.
type BurnoutAssessmentCreateBulk struct {
	config
	err      error
	builders []*BurnoutAssessmentCreate
}

// Save creates the BurnoutAssessment entities in the database.
func (_c *BurnoutAssessmentCreateBulk) Save(ctx context.Context) ([]*BurnoutAssessment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BurnoutAssessment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BurnoutAssessmentMutation)
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
func (_c *BurnoutAssessmentCreateBulk) SaveX(ctx context.Context) []*BurnoutAssessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BurnoutAssessmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BurnoutAssessmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
