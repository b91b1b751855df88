// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/anupamd/studypulse/ent/burnoutassessment"
	"github.com/anupamd/studypulse/ent/predicate"
	"github.com/anupamd/studypulse/ent/schema"
)

// BurnoutAssessmentUpdate is the builder for updating BurnoutAssessment entities.
type BurnoutAssessmentUpdate struct {
	config
	hooks    []Hook
	mutation *BurnoutAssessmentMutation
}

// Where appends a list predicates to the BurnoutAssessmentUpdate builder.
func (_u *BurnoutAssessmentUpdate) Where(ps ...predicate.BurnoutAssessment) *BurnoutAssessmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *BurnoutAssessmentUpdate) SetUserID(v string) *BurnoutAssessmentUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *BurnoutAssessmentUpdate) SetNillableUserID(v *string) *BurnoutAssessmentUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAssessmentDate sets the "assessment_date" field.
func (_u *BurnoutAssessmentUpdate) SetAssessmentDate(v string) *BurnoutAssessmentUpdate {
	_u.mutation.SetAssessmentDate(v)
	return _u
}

// SetNillableAssessmentDate sets the "assessment_date" field if the given value is not nil.
func (_u *BurnoutAssessmentUpdate) SetNillableAssessmentDate(v *string) *BurnoutAssessmentUpdate {
	if v != nil {
		_u.SetAssessmentDate(*v)
	}
	return _u
}

// SetRiskScore sets the "risk_score" field.
func (_u *BurnoutAssessmentUpdate) SetRiskScore(v float64) *BurnoutAssessmentUpdate {
	_u.mutation.ResetRiskScore()
	_u.mutation.SetRiskScore(v)
	return _u
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_u *BurnoutAssessmentUpdate) SetNillableRiskScore(v *float64) *BurnoutAssessmentUpdate {
	if v != nil {
		_u.SetRiskScore(*v)
	}
	return _u
}

// AddRiskScore adds value to the "risk_score" field.
func (_u *BurnoutAssessmentUpdate) AddRiskScore(v float64) *BurnoutAssessmentUpdate {
	_u.mutation.AddRiskScore(v)
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *BurnoutAssessmentUpdate) SetRiskLevel(v string) *BurnoutAssessmentUpdate {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *BurnoutAssessmentUpdate) SetNillableRiskLevel(v *string) *BurnoutAssessmentUpdate {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetFactors sets the "factors" field.
func (_u *BurnoutAssessmentUpdate) SetFactors(v []schema.FactorRecord) *BurnoutAssessmentUpdate {
	_u.mutation.SetFactors(v)
	return _u
}

// AppendFactors appends value to the "factors" field.
func (_u *BurnoutAssessmentUpdate) AppendFactors(v []schema.FactorRecord) *BurnoutAssessmentUpdate {
	_u.mutation.AppendFactors(v)
	return _u
}

// ClearFactors clears the value of the "factors" field.
func (_u *BurnoutAssessmentUpdate) ClearFactors() *BurnoutAssessmentUpdate {
	_u.mutation.ClearFactors()
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *BurnoutAssessmentUpdate) SetRecommendations(v []string) *BurnoutAssessmentUpdate {
	_u.mutation.SetRecommendations(v)
	return _u
}

// AppendRecommendations appends value to the "recommendations" field.
func (_u *BurnoutAssessmentUpdate) AppendRecommendations(v []string) *BurnoutAssessmentUpdate {
	_u.mutation.AppendRecommendations(v)
	return _u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (_u *BurnoutAssessmentUpdate) ClearRecommendations() *BurnoutAssessmentUpdate {
	_u.mutation.ClearRecommendations()
	return _u
}

// SetInsufficientData sets the "insufficient_data" field.
func (_u *BurnoutAssessmentUpdate) SetInsufficientData(v bool) *BurnoutAssessmentUpdate {
	_u.mutation.SetInsufficientData(v)
	return _u
}

// SetNillableInsufficientData sets the "insufficient_data" field if the given value is not nil.
func (_u *BurnoutAssessmentUpdate) SetNillableInsufficientData(v *bool) *BurnoutAssessmentUpdate {
	if v != nil {
		_u.SetInsufficientData(*v)
	}
	return _u
}

// SetOnDemandAt sets the "on_demand_at" field.
func (_u *BurnoutAssessmentUpdate) SetOnDemandAt(v time.Time) *BurnoutAssessmentUpdate {
	_u.mutation.SetOnDemandAt(v)
	return _u
}

// SetNillableOnDemandAt sets the "on_demand_at" field if the given value is not nil.
func (_u *BurnoutAssessmentUpdate) SetNillableOnDemandAt(v *time.Time) *BurnoutAssessmentUpdate {
	if v != nil {
		_u.SetOnDemandAt(*v)
	}
	return _u
}

// ClearOnDemandAt clears the value of the "on_demand_at" field.
func (_u *BurnoutAssessmentUpdate) ClearOnDemandAt() *BurnoutAssessmentUpdate {
	_u.mutation.ClearOnDemandAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BurnoutAssessmentUpdate) SetUpdatedAt(v time.Time) *BurnoutAssessmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BurnoutAssessmentMutation object of the builder.
func (_u *BurnoutAssessmentUpdate) Mutation() *BurnoutAssessmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BurnoutAssessmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BurnoutAssessmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BurnoutAssessmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BurnoutAssessmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BurnoutAssessmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := burnoutassessment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BurnoutAssessmentUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := burnoutassessment.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "BurnoutAssessment.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssessmentDate(); ok {
		if err := burnoutassessment.AssessmentDateValidator(v); err != nil {
			return &ValidationError{Name: "assessment_date", err: fmt.Errorf(`ent: validator failed for field "BurnoutAssessment.assessment_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := burnoutassessment.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "BurnoutAssessment.risk_level": %w`, err)}
		}
	}
	return nil
}

func (_u *BurnoutAssessmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(burnoutassessment.Table, burnoutassessment.Columns, sqlgraph.NewFieldSpec(burnoutassessment.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(burnoutassessment.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssessmentDate(); ok {
		_spec.SetField(burnoutassessment.FieldAssessmentDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskScore(); ok {
		_spec.SetField(burnoutassessment.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRiskScore(); ok {
		_spec.AddField(burnoutassessment.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(burnoutassessment.FieldRiskLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Factors(); ok {
		_spec.SetField(burnoutassessment.FieldFactors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFactors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, burnoutassessment.FieldFactors, value)
		})
	}
	if _u.mutation.FactorsCleared() {
		_spec.ClearField(burnoutassessment.FieldFactors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(burnoutassessment.FieldRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, burnoutassessment.FieldRecommendations, value)
		})
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(burnoutassessment.FieldRecommendations, field.TypeJSON)
	}
	if value, ok := _u.mutation.InsufficientData(); ok {
		_spec.SetField(burnoutassessment.FieldInsufficientData, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OnDemandAt(); ok {
		_spec.SetField(burnoutassessment.FieldOnDemandAt, field.TypeTime, value)
	}
	if _u.mutation.OnDemandAtCleared() {
		_spec.ClearField(burnoutassessment.FieldOnDemandAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(burnoutassessment.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{burnoutassessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BurnoutAssessmentUpdateOne is the builder for updating a single BurnoutAssessment entity.
type BurnoutAssessmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BurnoutAssessmentMutation
}

// SetUserID sets the "user_id" field.
func (_u *BurnoutAssessmentUpdateOne) SetUserID(v string) *BurnoutAssessmentUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *BurnoutAssessmentUpdateOne) SetNillableUserID(v *string) *BurnoutAssessmentUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAssessmentDate sets the "assessment_date" field.
func (_u *BurnoutAssessmentUpdateOne) SetAssessmentDate(v string) *BurnoutAssessmentUpdateOne {
	_u.mutation.SetAssessmentDate(v)
	return _u
}

// SetNillableAssessmentDate sets the "assessment_date" field if the given value is not nil.
func (_u *BurnoutAssessmentUpdateOne) SetNillableAssessmentDate(v *string) *BurnoutAssessmentUpdateOne {
	if v != nil {
		_u.SetAssessmentDate(*v)
	}
	return _u
}

// SetRiskScore sets the "risk_score" field.
func (_u *BurnoutAssessmentUpdateOne) SetRiskScore(v float64) *BurnoutAssessmentUpdateOne {
	_u.mutation.ResetRiskScore()
	_u.mutation.SetRiskScore(v)
	return _u
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_u *BurnoutAssessmentUpdateOne) SetNillableRiskScore(v *float64) *BurnoutAssessmentUpdateOne {
	if v != nil {
		_u.SetRiskScore(*v)
	}
	return _u
}

// AddRiskScore adds value to the "risk_score" field.
func (_u *BurnoutAssessmentUpdateOne) AddRiskScore(v float64) *BurnoutAssessmentUpdateOne {
	_u.mutation.AddRiskScore(v)
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *BurnoutAssessmentUpdateOne) SetRiskLevel(v string) *BurnoutAssessmentUpdateOne {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *BurnoutAssessmentUpdateOne) SetNillableRiskLevel(v *string) *BurnoutAssessmentUpdateOne {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetFactors sets the "factors" field.
func (_u *BurnoutAssessmentUpdateOne) SetFactors(v []schema.FactorRecord) *BurnoutAssessmentUpdateOne {
	_u.mutation.SetFactors(v)
	return _u
}

// AppendFactors appends value to the "factors" field.
func (_u *BurnoutAssessmentUpdateOne) AppendFactors(v []schema.FactorRecord) *BurnoutAssessmentUpdateOne {
	_u.mutation.AppendFactors(v)
	return _u
}

// ClearFactors clears the value of the "factors" field.
func (_u *BurnoutAssessmentUpdateOne) ClearFactors() *BurnoutAssessmentUpdateOne {
	_u.mutation.ClearFactors()
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *BurnoutAssessmentUpdateOne) SetRecommendations(v []string) *BurnoutAssessmentUpdateOne {
	_u.mutation.SetRecommendations(v)
	return _u
}

// AppendRecommendations appends value to the "recommendations" field.
func (_u *BurnoutAssessmentUpdateOne) AppendRecommendations(v []string) *BurnoutAssessmentUpdateOne {
	_u.mutation.AppendRecommendations(v)
	return _u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (_u *BurnoutAssessmentUpdateOne) ClearRecommendations() *BurnoutAssessmentUpdateOne {
	_u.mutation.ClearRecommendations()
	return _u
}

// SetInsufficientData sets the "insufficient_data" field.
func (_u *BurnoutAssessmentUpdateOne) SetInsufficientData(v bool) *BurnoutAssessmentUpdateOne {
	_u.mutation.SetInsufficientData(v)
	return _u
}

// SetNillableInsufficientData sets the "insufficient_data" field if the given value is not nil.
func (_u *BurnoutAssessmentUpdateOne) SetNillableInsufficientData(v *bool) *BurnoutAssessmentUpdateOne {
	if v != nil {
		_u.SetInsufficientData(*v)
	}
	return _u
}

// SetOnDemandAt sets the "on_demand_at" field.
func (_u *BurnoutAssessmentUpdateOne) SetOnDemandAt(v time.Time) *BurnoutAssessmentUpdateOne {
	_u.mutation.SetOnDemandAt(v)
	return _u
}

// SetNillableOnDemandAt sets the "on_demand_at" field if the given value is not nil.
func (_u *BurnoutAssessmentUpdateOne) SetNillableOnDemandAt(v *time.Time) *BurnoutAssessmentUpdateOne {
	if v != nil {
		_u.SetOnDemandAt(*v)
	}
	return _u
}

// ClearOnDemandAt clears the value of the "on_demand_at" field.
func (_u *BurnoutAssessmentUpdateOne) ClearOnDemandAt() *BurnoutAssessmentUpdateOne {
	_u.mutation.ClearOnDemandAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BurnoutAssessmentUpdateOne) SetUpdatedAt(v time.Time) *BurnoutAssessmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BurnoutAssessmentMutation object of the builder.
func (_u *BurnoutAssessmentUpdateOne) Mutation() *BurnoutAssessmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the BurnoutAssessmentUpdate builder.
func (_u *BurnoutAssessmentUpdateOne) Where(ps ...predicate.BurnoutAssessment) *BurnoutAssessmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BurnoutAssessmentUpdateOne) Select(field string, fields ...string) *BurnoutAssessmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BurnoutAssessment entity.
func (_u *BurnoutAssessmentUpdateOne) Save(ctx context.Context) (*BurnoutAssessment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BurnoutAssessmentUpdateOne) SaveX(ctx context.Context) *BurnoutAssessment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BurnoutAssessmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BurnoutAssessmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BurnoutAssessmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := burnoutassessment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BurnoutAssessmentUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := burnoutassessment.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "BurnoutAssessment.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssessmentDate(); ok {
		if err := burnoutassessment.AssessmentDateValidator(v); err != nil {
			return &ValidationError{Name: "assessment_date", err: fmt.Errorf(`ent: validator failed for field "BurnoutAssessment.assessment_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := burnoutassessment.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "BurnoutAssessment.risk_level": %w`, err)}
		}
	}
	return nil
}

func (_u *BurnoutAssessmentUpdateOne) sqlSave(ctx context.Context) (_node *BurnoutAssessment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(burnoutassessment.Table, burnoutassessment.Columns, sqlgraph.NewFieldSpec(burnoutassessment.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BurnoutAssessment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, burnoutassessment.FieldID)
		for _, f := range fields {
			if !burnoutassessment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != burnoutassessment.FieldID {
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
		_spec.SetField(burnoutassessment.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssessmentDate(); ok {
		_spec.SetField(burnoutassessment.FieldAssessmentDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskScore(); ok {
		_spec.SetField(burnoutassessment.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRiskScore(); ok {
		_spec.AddField(burnoutassessment.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(burnoutassessment.FieldRiskLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Factors(); ok {
		_spec.SetField(burnoutassessment.FieldFactors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFactors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, burnoutassessment.FieldFactors, value)
		})
	}
	if _u.mutation.FactorsCleared() {
		_spec.ClearField(burnoutassessment.FieldFactors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(burnoutassessment.FieldRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, burnoutassessment.FieldRecommendations, value)
		})
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(burnoutassessment.FieldRecommendations, field.TypeJSON)
	}
	if value, ok := _u.mutation.InsufficientData(); ok {
		_spec.SetField(burnoutassessment.FieldInsufficientData, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OnDemandAt(); ok {
		_spec.SetField(burnoutassessment.FieldOnDemandAt, field.TypeTime, value)
	}
	if _u.mutation.OnDemandAtCleared() {
		_spec.ClearField(burnoutassessment.FieldOnDemandAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(burnoutassessment.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &BurnoutAssessment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{burnoutassessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
