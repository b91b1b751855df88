// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anupamd/studypulse/ent/burnoutassessment"
	"github.com/anupamd/studypulse/ent/interventionevent"
	"github.com/anupamd/studypulse/ent/loadmetricevent"
	"github.com/anupamd/studypulse/ent/predicate"
	"github.com/anupamd/studypulse/ent/schema"
	"github.com/anupamd/studypulse/ent/sessionevent"
	"github.com/anupamd/studypulse/ent/stresspattern"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBurnoutAssessment = "BurnoutAssessment"
	TypeInterventionEvent = "InterventionEvent"
	TypeLoadMetricEvent   = "LoadMetricEvent"
	TypeSessionEvent      = "SessionEvent"
	TypeStressPattern     = "StressPattern"
)

// BurnoutAssessmentMutation represents an operation that mutates the BurnoutAssessment nodes in the graph.
type BurnoutAssessmentMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	user_id               *string
	assessment_date       *string
	risk_score            *float64
	addrisk_score         *float64
	risk_level            *string
	factors               *[]schema.FactorRecord
	appendfactors         []schema.FactorRecord
	recommendations       *[]string
	appendrecommendations []string
	insufficient_data     *bool
	on_demand_at          *time.Time
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*BurnoutAssessment, error)
	predicates            []predicate.BurnoutAssessment
}

var _ ent.Mutation = (*BurnoutAssessmentMutation)(nil)

// burnoutassessmentOption allows management of the mutation configuration using functional options.
type burnoutassessmentOption func(*BurnoutAssessmentMutation)

// newBurnoutAssessmentMutation creates new mutation for the BurnoutAssessment entity.
func newBurnoutAssessmentMutation(c config, op Op, opts ...burnoutassessmentOption) *BurnoutAssessmentMutation {
	m := &BurnoutAssessmentMutation{
		config:        c,
		op:            op,
		typ:           TypeBurnoutAssessment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBurnoutAssessmentID sets the ID field of the mutation.
func withBurnoutAssessmentID(id int) burnoutassessmentOption {
	return func(m *BurnoutAssessmentMutation) {
		var (
			err   error
			once  sync.Once
			value *BurnoutAssessment
		)
		m.oldValue = func(ctx context.Context) (*BurnoutAssessment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BurnoutAssessment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBurnoutAssessment sets the old BurnoutAssessment of the mutation.
func withBurnoutAssessment(node *BurnoutAssessment) burnoutassessmentOption {
	return func(m *BurnoutAssessmentMutation) {
		m.oldValue = func(context.Context) (*BurnoutAssessment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BurnoutAssessmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BurnoutAssessmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BurnoutAssessmentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BurnoutAssessmentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BurnoutAssessment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *BurnoutAssessmentMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *BurnoutAssessmentMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the BurnoutAssessment entity.
// If the BurnoutAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BurnoutAssessmentMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *BurnoutAssessmentMutation) ResetUserID() {
	m.user_id = nil
}

// SetAssessmentDate sets the "assessment_date" field.
func (m *BurnoutAssessmentMutation) SetAssessmentDate(s string) {
	m.assessment_date = &s
}

// AssessmentDate returns the value of the "assessment_date" field in the mutation.
func (m *BurnoutAssessmentMutation) AssessmentDate() (r string, exists bool) {
	v := m.assessment_date
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessmentDate returns the old "assessment_date" field's value of the BurnoutAssessment entity.
// If the BurnoutAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BurnoutAssessmentMutation) OldAssessmentDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessmentDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessmentDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessmentDate: %w", err)
	}
	return oldValue.AssessmentDate, nil
}

// ResetAssessmentDate resets all changes to the "assessment_date" field.
func (m *BurnoutAssessmentMutation) ResetAssessmentDate() {
	m.assessment_date = nil
}

// SetRiskScore sets the "risk_score" field.
func (m *BurnoutAssessmentMutation) SetRiskScore(f float64) {
	m.risk_score = &f
	m.addrisk_score = nil
}

// RiskScore returns the value of the "risk_score" field in the mutation.
func (m *BurnoutAssessmentMutation) RiskScore() (r float64, exists bool) {
	v := m.risk_score
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskScore returns the old "risk_score" field's value of the BurnoutAssessment entity.
// If the BurnoutAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BurnoutAssessmentMutation) OldRiskScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskScore: %w", err)
	}
	return oldValue.RiskScore, nil
}

// AddRiskScore adds f to the "risk_score" field.
func (m *BurnoutAssessmentMutation) AddRiskScore(f float64) {
	if m.addrisk_score != nil {
		*m.addrisk_score += f
	} else {
		m.addrisk_score = &f
	}
}

// AddedRiskScore returns the value that was added to the "risk_score" field in this mutation.
func (m *BurnoutAssessmentMutation) AddedRiskScore() (r float64, exists bool) {
	v := m.addrisk_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetRiskScore resets all changes to the "risk_score" field.
func (m *BurnoutAssessmentMutation) ResetRiskScore() {
	m.risk_score = nil
	m.addrisk_score = nil
}

// SetRiskLevel sets the "risk_level" field.
func (m *BurnoutAssessmentMutation) SetRiskLevel(s string) {
	m.risk_level = &s
}

// RiskLevel returns the value of the "risk_level" field in the mutation.
func (m *BurnoutAssessmentMutation) RiskLevel() (r string, exists bool) {
	v := m.risk_level
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskLevel returns the old "risk_level" field's value of the BurnoutAssessment entity.
// If the BurnoutAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BurnoutAssessmentMutation) OldRiskLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskLevel: %w", err)
	}
	return oldValue.RiskLevel, nil
}

// ResetRiskLevel resets all changes to the "risk_level" field.
func (m *BurnoutAssessmentMutation) ResetRiskLevel() {
	m.risk_level = nil
}

// SetFactors sets the "factors" field.
func (m *BurnoutAssessmentMutation) SetFactors(sr []schema.FactorRecord) {
	m.factors = &sr
	m.appendfactors = nil
}

// Factors returns the value of the "factors" field in the mutation.
func (m *BurnoutAssessmentMutation) Factors() (r []schema.FactorRecord, exists bool) {
	v := m.factors
	if v == nil {
		return
	}
	return *v, true
}

// OldFactors returns the old "factors" field's value of the BurnoutAssessment entity.
// If the BurnoutAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BurnoutAssessmentMutation) OldFactors(ctx context.Context) (v []schema.FactorRecord, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFactors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFactors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFactors: %w", err)
	}
	return oldValue.Factors, nil
}

// AppendFactors adds sr to the "factors" field.
func (m *BurnoutAssessmentMutation) AppendFactors(sr []schema.FactorRecord) {
	m.appendfactors = append(m.appendfactors, sr...)
}

// AppendedFactors returns the list of values that were appended to the "factors" field in this mutation.
func (m *BurnoutAssessmentMutation) AppendedFactors() ([]schema.FactorRecord, bool) {
	if len(m.appendfactors) == 0 {
		return nil, false
	}
	return m.appendfactors, true
}

// ClearFactors clears the value of the "factors" field.
func (m *BurnoutAssessmentMutation) ClearFactors() {
	m.factors = nil
	m.appendfactors = nil
	m.clearedFields[burnoutassessment.FieldFactors] = struct{}{}
}

// FactorsCleared returns if the "factors" field was cleared in this mutation.
func (m *BurnoutAssessmentMutation) FactorsCleared() bool {
	_, ok := m.clearedFields[burnoutassessment.FieldFactors]
	return ok
}

// ResetFactors resets all changes to the "factors" field.
func (m *BurnoutAssessmentMutation) ResetFactors() {
	m.factors = nil
	m.appendfactors = nil
	delete(m.clearedFields, burnoutassessment.FieldFactors)
}

// SetRecommendations sets the "recommendations" field.
func (m *BurnoutAssessmentMutation) SetRecommendations(s []string) {
	m.recommendations = &s
	m.appendrecommendations = nil
}

// Recommendations returns the value of the "recommendations" field in the mutation.
func (m *BurnoutAssessmentMutation) Recommendations() (r []string, exists bool) {
	v := m.recommendations
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendations returns the old "recommendations" field's value of the BurnoutAssessment entity.
// If the BurnoutAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BurnoutAssessmentMutation) OldRecommendations(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendations: %w", err)
	}
	return oldValue.Recommendations, nil
}

// AppendRecommendations adds s to the "recommendations" field.
func (m *BurnoutAssessmentMutation) AppendRecommendations(s []string) {
	m.appendrecommendations = append(m.appendrecommendations, s...)
}

// AppendedRecommendations returns the list of values that were appended to the "recommendations" field in this mutation.
func (m *BurnoutAssessmentMutation) AppendedRecommendations() ([]string, bool) {
	if len(m.appendrecommendations) == 0 {
		return nil, false
	}
	return m.appendrecommendations, true
}

// ClearRecommendations clears the value of the "recommendations" field.
func (m *BurnoutAssessmentMutation) ClearRecommendations() {
	m.recommendations = nil
	m.appendrecommendations = nil
	m.clearedFields[burnoutassessment.FieldRecommendations] = struct{}{}
}

// RecommendationsCleared returns if the "recommendations" field was cleared in this mutation.
func (m *BurnoutAssessmentMutation) RecommendationsCleared() bool {
	_, ok := m.clearedFields[burnoutassessment.FieldRecommendations]
	return ok
}

// ResetRecommendations resets all changes to the "recommendations" field.
func (m *BurnoutAssessmentMutation) ResetRecommendations() {
	m.recommendations = nil
	m.appendrecommendations = nil
	delete(m.clearedFields, burnoutassessment.FieldRecommendations)
}

// SetInsufficientData sets the "insufficient_data" field.
func (m *BurnoutAssessmentMutation) SetInsufficientData(b bool) {
	m.insufficient_data = &b
}

// InsufficientData returns the value of the "insufficient_data" field in the mutation.
func (m *BurnoutAssessmentMutation) InsufficientData() (r bool, exists bool) {
	v := m.insufficient_data
	if v == nil {
		return
	}
	return *v, true
}

// OldInsufficientData returns the old "insufficient_data" field's value of the BurnoutAssessment entity.
// If the BurnoutAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BurnoutAssessmentMutation) OldInsufficientData(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsufficientData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsufficientData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsufficientData: %w", err)
	}
	return oldValue.InsufficientData, nil
}

// ResetInsufficientData resets all changes to the "insufficient_data" field.
func (m *BurnoutAssessmentMutation) ResetInsufficientData() {
	m.insufficient_data = nil
}

// SetOnDemandAt sets the "on_demand_at" field.
func (m *BurnoutAssessmentMutation) SetOnDemandAt(t time.Time) {
	m.on_demand_at = &t
}

// OnDemandAt returns the value of the "on_demand_at" field in the mutation.
func (m *BurnoutAssessmentMutation) OnDemandAt() (r time.Time, exists bool) {
	v := m.on_demand_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOnDemandAt returns the old "on_demand_at" field's value of the BurnoutAssessment entity.
// If the BurnoutAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BurnoutAssessmentMutation) OldOnDemandAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOnDemandAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOnDemandAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOnDemandAt: %w", err)
	}
	return oldValue.OnDemandAt, nil
}

// ClearOnDemandAt clears the value of the "on_demand_at" field.
func (m *BurnoutAssessmentMutation) ClearOnDemandAt() {
	m.on_demand_at = nil
	m.clearedFields[burnoutassessment.FieldOnDemandAt] = struct{}{}
}

// OnDemandAtCleared returns if the "on_demand_at" field was cleared in this mutation.
func (m *BurnoutAssessmentMutation) OnDemandAtCleared() bool {
	_, ok := m.clearedFields[burnoutassessment.FieldOnDemandAt]
	return ok
}

// ResetOnDemandAt resets all changes to the "on_demand_at" field.
func (m *BurnoutAssessmentMutation) ResetOnDemandAt() {
	m.on_demand_at = nil
	delete(m.clearedFields, burnoutassessment.FieldOnDemandAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *BurnoutAssessmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BurnoutAssessmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BurnoutAssessment entity.
// If the BurnoutAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BurnoutAssessmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BurnoutAssessmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BurnoutAssessmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BurnoutAssessmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BurnoutAssessment entity.
// If the BurnoutAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BurnoutAssessmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BurnoutAssessmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the BurnoutAssessmentMutation builder.
func (m *BurnoutAssessmentMutation) Where(ps ...predicate.BurnoutAssessment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BurnoutAssessmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BurnoutAssessmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BurnoutAssessment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BurnoutAssessmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BurnoutAssessmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BurnoutAssessment).
func (m *BurnoutAssessmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BurnoutAssessmentMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.user_id != nil {
		fields = append(fields, burnoutassessment.FieldUserID)
	}
	if m.assessment_date != nil {
		fields = append(fields, burnoutassessment.FieldAssessmentDate)
	}
	if m.risk_score != nil {
		fields = append(fields, burnoutassessment.FieldRiskScore)
	}
	if m.risk_level != nil {
		fields = append(fields, burnoutassessment.FieldRiskLevel)
	}
	if m.factors != nil {
		fields = append(fields, burnoutassessment.FieldFactors)
	}
	if m.recommendations != nil {
		fields = append(fields, burnoutassessment.FieldRecommendations)
	}
	if m.insufficient_data != nil {
		fields = append(fields, burnoutassessment.FieldInsufficientData)
	}
	if m.on_demand_at != nil {
		fields = append(fields, burnoutassessment.FieldOnDemandAt)
	}
	if m.created_at != nil {
		fields = append(fields, burnoutassessment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, burnoutassessment.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BurnoutAssessmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case burnoutassessment.FieldUserID:
		return m.UserID()
	case burnoutassessment.FieldAssessmentDate:
		return m.AssessmentDate()
	case burnoutassessment.FieldRiskScore:
		return m.RiskScore()
	case burnoutassessment.FieldRiskLevel:
		return m.RiskLevel()
	case burnoutassessment.FieldFactors:
		return m.Factors()
	case burnoutassessment.FieldRecommendations:
		return m.Recommendations()
	case burnoutassessment.FieldInsufficientData:
		return m.InsufficientData()
	case burnoutassessment.FieldOnDemandAt:
		return m.OnDemandAt()
	case burnoutassessment.FieldCreatedAt:
		return m.CreatedAt()
	case burnoutassessment.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BurnoutAssessmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case burnoutassessment.FieldUserID:
		return m.OldUserID(ctx)
	case burnoutassessment.FieldAssessmentDate:
		return m.OldAssessmentDate(ctx)
	case burnoutassessment.FieldRiskScore:
		return m.OldRiskScore(ctx)
	case burnoutassessment.FieldRiskLevel:
		return m.OldRiskLevel(ctx)
	case burnoutassessment.FieldFactors:
		return m.OldFactors(ctx)
	case burnoutassessment.FieldRecommendations:
		return m.OldRecommendations(ctx)
	case burnoutassessment.FieldInsufficientData:
		return m.OldInsufficientData(ctx)
	case burnoutassessment.FieldOnDemandAt:
		return m.OldOnDemandAt(ctx)
	case burnoutassessment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case burnoutassessment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BurnoutAssessment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BurnoutAssessmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case burnoutassessment.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case burnoutassessment.FieldAssessmentDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessmentDate(v)
		return nil
	case burnoutassessment.FieldRiskScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskScore(v)
		return nil
	case burnoutassessment.FieldRiskLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskLevel(v)
		return nil
	case burnoutassessment.FieldFactors:
		v, ok := value.([]schema.FactorRecord)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFactors(v)
		return nil
	case burnoutassessment.FieldRecommendations:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendations(v)
		return nil
	case burnoutassessment.FieldInsufficientData:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsufficientData(v)
		return nil
	case burnoutassessment.FieldOnDemandAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOnDemandAt(v)
		return nil
	case burnoutassessment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case burnoutassessment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BurnoutAssessment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BurnoutAssessmentMutation) AddedFields() []string {
	var fields []string
	if m.addrisk_score != nil {
		fields = append(fields, burnoutassessment.FieldRiskScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BurnoutAssessmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case burnoutassessment.FieldRiskScore:
		return m.AddedRiskScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BurnoutAssessmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case burnoutassessment.FieldRiskScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRiskScore(v)
		return nil
	}
	return fmt.Errorf("unknown BurnoutAssessment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BurnoutAssessmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(burnoutassessment.FieldFactors) {
		fields = append(fields, burnoutassessment.FieldFactors)
	}
	if m.FieldCleared(burnoutassessment.FieldRecommendations) {
		fields = append(fields, burnoutassessment.FieldRecommendations)
	}
	if m.FieldCleared(burnoutassessment.FieldOnDemandAt) {
		fields = append(fields, burnoutassessment.FieldOnDemandAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BurnoutAssessmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BurnoutAssessmentMutation) ClearField(name string) error {
	switch name {
	case burnoutassessment.FieldFactors:
		m.ClearFactors()
		return nil
	case burnoutassessment.FieldRecommendations:
		m.ClearRecommendations()
		return nil
	case burnoutassessment.FieldOnDemandAt:
		m.ClearOnDemandAt()
		return nil
	}
	return fmt.Errorf("unknown BurnoutAssessment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BurnoutAssessmentMutation) ResetField(name string) error {
	switch name {
	case burnoutassessment.FieldUserID:
		m.ResetUserID()
		return nil
	case burnoutassessment.FieldAssessmentDate:
		m.ResetAssessmentDate()
		return nil
	case burnoutassessment.FieldRiskScore:
		m.ResetRiskScore()
		return nil
	case burnoutassessment.FieldRiskLevel:
		m.ResetRiskLevel()
		return nil
	case burnoutassessment.FieldFactors:
		m.ResetFactors()
		return nil
	case burnoutassessment.FieldRecommendations:
		m.ResetRecommendations()
		return nil
	case burnoutassessment.FieldInsufficientData:
		m.ResetInsufficientData()
		return nil
	case burnoutassessment.FieldOnDemandAt:
		m.ResetOnDemandAt()
		return nil
	case burnoutassessment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case burnoutassessment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown BurnoutAssessment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BurnoutAssessmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BurnoutAssessmentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BurnoutAssessmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BurnoutAssessmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BurnoutAssessmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BurnoutAssessmentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BurnoutAssessmentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BurnoutAssessment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BurnoutAssessmentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BurnoutAssessment edge %s", name)
}

// InterventionEventMutation represents an operation that mutates the InterventionEvent nodes in the graph.
type InterventionEventMutation struct {
	config
	op              Op
	typ             string
	id              *int
	sequence        *int64
	addsequence     *int64
	timestamp       *time.Time
	user_id         *string
	intervention_id *string
	action          *string
	risk_level      *string
	accepted        *bool
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*InterventionEvent, error)
	predicates      []predicate.InterventionEvent
}

var _ ent.Mutation = (*InterventionEventMutation)(nil)

// interventioneventOption allows management of the mutation configuration using functional options.
type interventioneventOption func(*InterventionEventMutation)

// newInterventionEventMutation creates new mutation for the InterventionEvent entity.
func newInterventionEventMutation(c config, op Op, opts ...interventioneventOption) *InterventionEventMutation {
	m := &InterventionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeInterventionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInterventionEventID sets the ID field of the mutation.
func withInterventionEventID(id int) interventioneventOption {
	return func(m *InterventionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *InterventionEvent
		)
		m.oldValue = func(ctx context.Context) (*InterventionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InterventionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInterventionEvent sets the old InterventionEvent of the mutation.
func withInterventionEvent(node *InterventionEvent) interventioneventOption {
	return func(m *InterventionEventMutation) {
		m.oldValue = func(context.Context) (*InterventionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InterventionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InterventionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InterventionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InterventionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InterventionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *InterventionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *InterventionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the InterventionEvent entity.
// If the InterventionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterventionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *InterventionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *InterventionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *InterventionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *InterventionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *InterventionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the InterventionEvent entity.
// If the InterventionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterventionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *InterventionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetUserID sets the "user_id" field.
func (m *InterventionEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *InterventionEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the InterventionEvent entity.
// If the InterventionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterventionEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *InterventionEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetInterventionID sets the "intervention_id" field.
func (m *InterventionEventMutation) SetInterventionID(s string) {
	m.intervention_id = &s
}

// InterventionID returns the value of the "intervention_id" field in the mutation.
func (m *InterventionEventMutation) InterventionID() (r string, exists bool) {
	v := m.intervention_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInterventionID returns the old "intervention_id" field's value of the InterventionEvent entity.
// If the InterventionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterventionEventMutation) OldInterventionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInterventionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInterventionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInterventionID: %w", err)
	}
	return oldValue.InterventionID, nil
}

// ResetInterventionID resets all changes to the "intervention_id" field.
func (m *InterventionEventMutation) ResetInterventionID() {
	m.intervention_id = nil
}

// SetAction sets the "action" field.
func (m *InterventionEventMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *InterventionEventMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the InterventionEvent entity.
// If the InterventionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterventionEventMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *InterventionEventMutation) ResetAction() {
	m.action = nil
}

// SetRiskLevel sets the "risk_level" field.
func (m *InterventionEventMutation) SetRiskLevel(s string) {
	m.risk_level = &s
}

// RiskLevel returns the value of the "risk_level" field in the mutation.
func (m *InterventionEventMutation) RiskLevel() (r string, exists bool) {
	v := m.risk_level
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskLevel returns the old "risk_level" field's value of the InterventionEvent entity.
// If the InterventionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterventionEventMutation) OldRiskLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskLevel: %w", err)
	}
	return oldValue.RiskLevel, nil
}

// ResetRiskLevel resets all changes to the "risk_level" field.
func (m *InterventionEventMutation) ResetRiskLevel() {
	m.risk_level = nil
}

// SetAccepted sets the "accepted" field.
func (m *InterventionEventMutation) SetAccepted(b bool) {
	m.accepted = &b
}

// Accepted returns the value of the "accepted" field in the mutation.
func (m *InterventionEventMutation) Accepted() (r bool, exists bool) {
	v := m.accepted
	if v == nil {
		return
	}
	return *v, true
}

// OldAccepted returns the old "accepted" field's value of the InterventionEvent entity.
// If the InterventionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterventionEventMutation) OldAccepted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccepted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccepted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccepted: %w", err)
	}
	return oldValue.Accepted, nil
}

// ResetAccepted resets all changes to the "accepted" field.
func (m *InterventionEventMutation) ResetAccepted() {
	m.accepted = nil
}

// Where appends a list predicates to the InterventionEventMutation builder.
func (m *InterventionEventMutation) Where(ps ...predicate.InterventionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InterventionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InterventionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InterventionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InterventionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InterventionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InterventionEvent).
func (m *InterventionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InterventionEventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.sequence != nil {
		fields = append(fields, interventionevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, interventionevent.FieldTimestamp)
	}
	if m.user_id != nil {
		fields = append(fields, interventionevent.FieldUserID)
	}
	if m.intervention_id != nil {
		fields = append(fields, interventionevent.FieldInterventionID)
	}
	if m.action != nil {
		fields = append(fields, interventionevent.FieldAction)
	}
	if m.risk_level != nil {
		fields = append(fields, interventionevent.FieldRiskLevel)
	}
	if m.accepted != nil {
		fields = append(fields, interventionevent.FieldAccepted)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InterventionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case interventionevent.FieldSequence:
		return m.Sequence()
	case interventionevent.FieldTimestamp:
		return m.Timestamp()
	case interventionevent.FieldUserID:
		return m.UserID()
	case interventionevent.FieldInterventionID:
		return m.InterventionID()
	case interventionevent.FieldAction:
		return m.Action()
	case interventionevent.FieldRiskLevel:
		return m.RiskLevel()
	case interventionevent.FieldAccepted:
		return m.Accepted()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InterventionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case interventionevent.FieldSequence:
		return m.OldSequence(ctx)
	case interventionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case interventionevent.FieldUserID:
		return m.OldUserID(ctx)
	case interventionevent.FieldInterventionID:
		return m.OldInterventionID(ctx)
	case interventionevent.FieldAction:
		return m.OldAction(ctx)
	case interventionevent.FieldRiskLevel:
		return m.OldRiskLevel(ctx)
	case interventionevent.FieldAccepted:
		return m.OldAccepted(ctx)
	}
	return nil, fmt.Errorf("unknown InterventionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InterventionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case interventionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case interventionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case interventionevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case interventionevent.FieldInterventionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInterventionID(v)
		return nil
	case interventionevent.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case interventionevent.FieldRiskLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskLevel(v)
		return nil
	case interventionevent.FieldAccepted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccepted(v)
		return nil
	}
	return fmt.Errorf("unknown InterventionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InterventionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, interventionevent.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InterventionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case interventionevent.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InterventionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case interventionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown InterventionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InterventionEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InterventionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InterventionEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown InterventionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InterventionEventMutation) ResetField(name string) error {
	switch name {
	case interventionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case interventionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case interventionevent.FieldUserID:
		m.ResetUserID()
		return nil
	case interventionevent.FieldInterventionID:
		m.ResetInterventionID()
		return nil
	case interventionevent.FieldAction:
		m.ResetAction()
		return nil
	case interventionevent.FieldRiskLevel:
		m.ResetRiskLevel()
		return nil
	case interventionevent.FieldAccepted:
		m.ResetAccepted()
		return nil
	}
	return fmt.Errorf("unknown InterventionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InterventionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InterventionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InterventionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InterventionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InterventionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InterventionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InterventionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown InterventionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InterventionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown InterventionEvent edge %s", name)
}

// LoadMetricEventMutation represents an operation that mutates the LoadMetricEvent nodes in the graph.
type LoadMetricEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	session_id       *string
	user_id          *string
	load_score       *float64
	addload_score    *float64
	confidence       *float64
	addconfidence    *float64
	indicators       *[]schema.IndicatorRecord
	appendindicators []schema.IndicatorRecord
	topic            *string
	hour             *int
	addhour          *int
	weekday          *int
	addweekday       *int
	days_to_exam     *int
	adddays_to_exam  *int
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LoadMetricEvent, error)
	predicates       []predicate.LoadMetricEvent
}

var _ ent.Mutation = (*LoadMetricEventMutation)(nil)

// loadmetriceventOption allows management of the mutation configuration using functional options.
type loadmetriceventOption func(*LoadMetricEventMutation)

// newLoadMetricEventMutation creates new mutation for the LoadMetricEvent entity.
func newLoadMetricEventMutation(c config, op Op, opts ...loadmetriceventOption) *LoadMetricEventMutation {
	m := &LoadMetricEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLoadMetricEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLoadMetricEventID sets the ID field of the mutation.
func withLoadMetricEventID(id int) loadmetriceventOption {
	return func(m *LoadMetricEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LoadMetricEvent
		)
		m.oldValue = func(ctx context.Context) (*LoadMetricEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LoadMetricEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLoadMetricEvent sets the old LoadMetricEvent of the mutation.
func withLoadMetricEvent(node *LoadMetricEvent) loadmetriceventOption {
	return func(m *LoadMetricEventMutation) {
		m.oldValue = func(context.Context) (*LoadMetricEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LoadMetricEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LoadMetricEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LoadMetricEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LoadMetricEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LoadMetricEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LoadMetricEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LoadMetricEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LoadMetricEvent entity.
// If the LoadMetricEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoadMetricEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LoadMetricEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LoadMetricEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LoadMetricEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LoadMetricEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LoadMetricEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LoadMetricEvent entity.
// If the LoadMetricEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoadMetricEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LoadMetricEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *LoadMetricEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *LoadMetricEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the LoadMetricEvent entity.
// If the LoadMetricEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoadMetricEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *LoadMetricEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetUserID sets the "user_id" field.
func (m *LoadMetricEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *LoadMetricEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the LoadMetricEvent entity.
// If the LoadMetricEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoadMetricEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *LoadMetricEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetLoadScore sets the "load_score" field.
func (m *LoadMetricEventMutation) SetLoadScore(f float64) {
	m.load_score = &f
	m.addload_score = nil
}

// LoadScore returns the value of the "load_score" field in the mutation.
func (m *LoadMetricEventMutation) LoadScore() (r float64, exists bool) {
	v := m.load_score
	if v == nil {
		return
	}
	return *v, true
}

// OldLoadScore returns the old "load_score" field's value of the LoadMetricEvent entity.
// If the LoadMetricEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoadMetricEventMutation) OldLoadScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoadScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoadScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoadScore: %w", err)
	}
	return oldValue.LoadScore, nil
}

// AddLoadScore adds f to the "load_score" field.
func (m *LoadMetricEventMutation) AddLoadScore(f float64) {
	if m.addload_score != nil {
		*m.addload_score += f
	} else {
		m.addload_score = &f
	}
}

// AddedLoadScore returns the value that was added to the "load_score" field in this mutation.
func (m *LoadMetricEventMutation) AddedLoadScore() (r float64, exists bool) {
	v := m.addload_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetLoadScore resets all changes to the "load_score" field.
func (m *LoadMetricEventMutation) ResetLoadScore() {
	m.load_score = nil
	m.addload_score = nil
}

// SetConfidence sets the "confidence" field.
func (m *LoadMetricEventMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *LoadMetricEventMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the LoadMetricEvent entity.
// If the LoadMetricEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoadMetricEventMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *LoadMetricEventMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *LoadMetricEventMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *LoadMetricEventMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetIndicators sets the "indicators" field.
func (m *LoadMetricEventMutation) SetIndicators(sr []schema.IndicatorRecord) {
	m.indicators = &sr
	m.appendindicators = nil
}

// Indicators returns the value of the "indicators" field in the mutation.
func (m *LoadMetricEventMutation) Indicators() (r []schema.IndicatorRecord, exists bool) {
	v := m.indicators
	if v == nil {
		return
	}
	return *v, true
}

// OldIndicators returns the old "indicators" field's value of the LoadMetricEvent entity.
// If the LoadMetricEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoadMetricEventMutation) OldIndicators(ctx context.Context) (v []schema.IndicatorRecord, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIndicators is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIndicators requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIndicators: %w", err)
	}
	return oldValue.Indicators, nil
}

// AppendIndicators adds sr to the "indicators" field.
func (m *LoadMetricEventMutation) AppendIndicators(sr []schema.IndicatorRecord) {
	m.appendindicators = append(m.appendindicators, sr...)
}

// AppendedIndicators returns the list of values that were appended to the "indicators" field in this mutation.
func (m *LoadMetricEventMutation) AppendedIndicators() ([]schema.IndicatorRecord, bool) {
	if len(m.appendindicators) == 0 {
		return nil, false
	}
	return m.appendindicators, true
}

// ClearIndicators clears the value of the "indicators" field.
func (m *LoadMetricEventMutation) ClearIndicators() {
	m.indicators = nil
	m.appendindicators = nil
	m.clearedFields[loadmetricevent.FieldIndicators] = struct{}{}
}

// IndicatorsCleared returns if the "indicators" field was cleared in this mutation.
func (m *LoadMetricEventMutation) IndicatorsCleared() bool {
	_, ok := m.clearedFields[loadmetricevent.FieldIndicators]
	return ok
}

// ResetIndicators resets all changes to the "indicators" field.
func (m *LoadMetricEventMutation) ResetIndicators() {
	m.indicators = nil
	m.appendindicators = nil
	delete(m.clearedFields, loadmetricevent.FieldIndicators)
}

// SetTopic sets the "topic" field.
func (m *LoadMetricEventMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *LoadMetricEventMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the LoadMetricEvent entity.
// If the LoadMetricEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoadMetricEventMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *LoadMetricEventMutation) ResetTopic() {
	m.topic = nil
}

// SetHour sets the "hour" field.
func (m *LoadMetricEventMutation) SetHour(i int) {
	m.hour = &i
	m.addhour = nil
}

// Hour returns the value of the "hour" field in the mutation.
func (m *LoadMetricEventMutation) Hour() (r int, exists bool) {
	v := m.hour
	if v == nil {
		return
	}
	return *v, true
}

// OldHour returns the old "hour" field's value of the LoadMetricEvent entity.
// If the LoadMetricEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoadMetricEventMutation) OldHour(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHour is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHour requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHour: %w", err)
	}
	return oldValue.Hour, nil
}

// AddHour adds i to the "hour" field.
func (m *LoadMetricEventMutation) AddHour(i int) {
	if m.addhour != nil {
		*m.addhour += i
	} else {
		m.addhour = &i
	}
}

// AddedHour returns the value that was added to the "hour" field in this mutation.
func (m *LoadMetricEventMutation) AddedHour() (r int, exists bool) {
	v := m.addhour
	if v == nil {
		return
	}
	return *v, true
}

// ResetHour resets all changes to the "hour" field.
func (m *LoadMetricEventMutation) ResetHour() {
	m.hour = nil
	m.addhour = nil
}

// SetWeekday sets the "weekday" field.
func (m *LoadMetricEventMutation) SetWeekday(i int) {
	m.weekday = &i
	m.addweekday = nil
}

// Weekday returns the value of the "weekday" field in the mutation.
func (m *LoadMetricEventMutation) Weekday() (r int, exists bool) {
	v := m.weekday
	if v == nil {
		return
	}
	return *v, true
}

// OldWeekday returns the old "weekday" field's value of the LoadMetricEvent entity.
// If the LoadMetricEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoadMetricEventMutation) OldWeekday(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeekday is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeekday requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeekday: %w", err)
	}
	return oldValue.Weekday, nil
}

// AddWeekday adds i to the "weekday" field.
func (m *LoadMetricEventMutation) AddWeekday(i int) {
	if m.addweekday != nil {
		*m.addweekday += i
	} else {
		m.addweekday = &i
	}
}

// AddedWeekday returns the value that was added to the "weekday" field in this mutation.
func (m *LoadMetricEventMutation) AddedWeekday() (r int, exists bool) {
	v := m.addweekday
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeekday resets all changes to the "weekday" field.
func (m *LoadMetricEventMutation) ResetWeekday() {
	m.weekday = nil
	m.addweekday = nil
}

// SetDaysToExam sets the "days_to_exam" field.
func (m *LoadMetricEventMutation) SetDaysToExam(i int) {
	m.days_to_exam = &i
	m.adddays_to_exam = nil
}

// DaysToExam returns the value of the "days_to_exam" field in the mutation.
func (m *LoadMetricEventMutation) DaysToExam() (r int, exists bool) {
	v := m.days_to_exam
	if v == nil {
		return
	}
	return *v, true
}

// OldDaysToExam returns the old "days_to_exam" field's value of the LoadMetricEvent entity.
// If the LoadMetricEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoadMetricEventMutation) OldDaysToExam(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDaysToExam is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDaysToExam requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDaysToExam: %w", err)
	}
	return oldValue.DaysToExam, nil
}

// AddDaysToExam adds i to the "days_to_exam" field.
func (m *LoadMetricEventMutation) AddDaysToExam(i int) {
	if m.adddays_to_exam != nil {
		*m.adddays_to_exam += i
	} else {
		m.adddays_to_exam = &i
	}
}

// AddedDaysToExam returns the value that was added to the "days_to_exam" field in this mutation.
func (m *LoadMetricEventMutation) AddedDaysToExam() (r int, exists bool) {
	v := m.adddays_to_exam
	if v == nil {
		return
	}
	return *v, true
}

// ResetDaysToExam resets all changes to the "days_to_exam" field.
func (m *LoadMetricEventMutation) ResetDaysToExam() {
	m.days_to_exam = nil
	m.adddays_to_exam = nil
}

// Where appends a list predicates to the LoadMetricEventMutation builder.
func (m *LoadMetricEventMutation) Where(ps ...predicate.LoadMetricEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LoadMetricEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LoadMetricEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LoadMetricEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LoadMetricEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LoadMetricEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LoadMetricEvent).
func (m *LoadMetricEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LoadMetricEventMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.sequence != nil {
		fields = append(fields, loadmetricevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, loadmetricevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, loadmetricevent.FieldSessionID)
	}
	if m.user_id != nil {
		fields = append(fields, loadmetricevent.FieldUserID)
	}
	if m.load_score != nil {
		fields = append(fields, loadmetricevent.FieldLoadScore)
	}
	if m.confidence != nil {
		fields = append(fields, loadmetricevent.FieldConfidence)
	}
	if m.indicators != nil {
		fields = append(fields, loadmetricevent.FieldIndicators)
	}
	if m.topic != nil {
		fields = append(fields, loadmetricevent.FieldTopic)
	}
	if m.hour != nil {
		fields = append(fields, loadmetricevent.FieldHour)
	}
	if m.weekday != nil {
		fields = append(fields, loadmetricevent.FieldWeekday)
	}
	if m.days_to_exam != nil {
		fields = append(fields, loadmetricevent.FieldDaysToExam)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LoadMetricEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case loadmetricevent.FieldSequence:
		return m.Sequence()
	case loadmetricevent.FieldTimestamp:
		return m.Timestamp()
	case loadmetricevent.FieldSessionID:
		return m.SessionID()
	case loadmetricevent.FieldUserID:
		return m.UserID()
	case loadmetricevent.FieldLoadScore:
		return m.LoadScore()
	case loadmetricevent.FieldConfidence:
		return m.Confidence()
	case loadmetricevent.FieldIndicators:
		return m.Indicators()
	case loadmetricevent.FieldTopic:
		return m.Topic()
	case loadmetricevent.FieldHour:
		return m.Hour()
	case loadmetricevent.FieldWeekday:
		return m.Weekday()
	case loadmetricevent.FieldDaysToExam:
		return m.DaysToExam()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LoadMetricEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case loadmetricevent.FieldSequence:
		return m.OldSequence(ctx)
	case loadmetricevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case loadmetricevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case loadmetricevent.FieldUserID:
		return m.OldUserID(ctx)
	case loadmetricevent.FieldLoadScore:
		return m.OldLoadScore(ctx)
	case loadmetricevent.FieldConfidence:
		return m.OldConfidence(ctx)
	case loadmetricevent.FieldIndicators:
		return m.OldIndicators(ctx)
	case loadmetricevent.FieldTopic:
		return m.OldTopic(ctx)
	case loadmetricevent.FieldHour:
		return m.OldHour(ctx)
	case loadmetricevent.FieldWeekday:
		return m.OldWeekday(ctx)
	case loadmetricevent.FieldDaysToExam:
		return m.OldDaysToExam(ctx)
	}
	return nil, fmt.Errorf("unknown LoadMetricEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LoadMetricEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case loadmetricevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case loadmetricevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case loadmetricevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case loadmetricevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case loadmetricevent.FieldLoadScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoadScore(v)
		return nil
	case loadmetricevent.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case loadmetricevent.FieldIndicators:
		v, ok := value.([]schema.IndicatorRecord)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIndicators(v)
		return nil
	case loadmetricevent.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case loadmetricevent.FieldHour:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHour(v)
		return nil
	case loadmetricevent.FieldWeekday:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeekday(v)
		return nil
	case loadmetricevent.FieldDaysToExam:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDaysToExam(v)
		return nil
	}
	return fmt.Errorf("unknown LoadMetricEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LoadMetricEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, loadmetricevent.FieldSequence)
	}
	if m.addload_score != nil {
		fields = append(fields, loadmetricevent.FieldLoadScore)
	}
	if m.addconfidence != nil {
		fields = append(fields, loadmetricevent.FieldConfidence)
	}
	if m.addhour != nil {
		fields = append(fields, loadmetricevent.FieldHour)
	}
	if m.addweekday != nil {
		fields = append(fields, loadmetricevent.FieldWeekday)
	}
	if m.adddays_to_exam != nil {
		fields = append(fields, loadmetricevent.FieldDaysToExam)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LoadMetricEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case loadmetricevent.FieldSequence:
		return m.AddedSequence()
	case loadmetricevent.FieldLoadScore:
		return m.AddedLoadScore()
	case loadmetricevent.FieldConfidence:
		return m.AddedConfidence()
	case loadmetricevent.FieldHour:
		return m.AddedHour()
	case loadmetricevent.FieldWeekday:
		return m.AddedWeekday()
	case loadmetricevent.FieldDaysToExam:
		return m.AddedDaysToExam()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LoadMetricEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case loadmetricevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case loadmetricevent.FieldLoadScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLoadScore(v)
		return nil
	case loadmetricevent.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case loadmetricevent.FieldHour:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHour(v)
		return nil
	case loadmetricevent.FieldWeekday:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeekday(v)
		return nil
	case loadmetricevent.FieldDaysToExam:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDaysToExam(v)
		return nil
	}
	return fmt.Errorf("unknown LoadMetricEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LoadMetricEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(loadmetricevent.FieldIndicators) {
		fields = append(fields, loadmetricevent.FieldIndicators)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LoadMetricEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LoadMetricEventMutation) ClearField(name string) error {
	switch name {
	case loadmetricevent.FieldIndicators:
		m.ClearIndicators()
		return nil
	}
	return fmt.Errorf("unknown LoadMetricEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LoadMetricEventMutation) ResetField(name string) error {
	switch name {
	case loadmetricevent.FieldSequence:
		m.ResetSequence()
		return nil
	case loadmetricevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case loadmetricevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case loadmetricevent.FieldUserID:
		m.ResetUserID()
		return nil
	case loadmetricevent.FieldLoadScore:
		m.ResetLoadScore()
		return nil
	case loadmetricevent.FieldConfidence:
		m.ResetConfidence()
		return nil
	case loadmetricevent.FieldIndicators:
		m.ResetIndicators()
		return nil
	case loadmetricevent.FieldTopic:
		m.ResetTopic()
		return nil
	case loadmetricevent.FieldHour:
		m.ResetHour()
		return nil
	case loadmetricevent.FieldWeekday:
		m.ResetWeekday()
		return nil
	case loadmetricevent.FieldDaysToExam:
		m.ResetDaysToExam()
		return nil
	}
	return fmt.Errorf("unknown LoadMetricEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LoadMetricEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LoadMetricEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LoadMetricEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LoadMetricEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LoadMetricEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LoadMetricEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LoadMetricEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LoadMetricEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LoadMetricEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LoadMetricEvent edge %s", name)
}

// SessionEventMutation represents an operation that mutates the SessionEvent nodes in the graph.
type SessionEventMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	sequence            *int64
	addsequence         *int64
	timestamp           *time.Time
	session_id          *string
	user_id             *string
	action              *string
	duration_secs       *int
	addduration_secs    *int
	interactions        *int
	addinteractions     *int
	correct             *int
	addcorrect          *int
	completion_ratio    *float64
	addcompletion_ratio *float64
	self_rating         *int
	addself_rating      *int
	topic               *string
	planned             *bool
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*SessionEvent, error)
	predicates          []predicate.SessionEvent
}

var _ ent.Mutation = (*SessionEventMutation)(nil)

// sessioneventOption allows management of the mutation configuration using functional options.
type sessioneventOption func(*SessionEventMutation)

// newSessionEventMutation creates new mutation for the SessionEvent entity.
func newSessionEventMutation(c config, op Op, opts ...sessioneventOption) *SessionEventMutation {
	m := &SessionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionEventID sets the ID field of the mutation.
func withSessionEventID(id int) sessioneventOption {
	return func(m *SessionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionEvent
		)
		m.oldValue = func(ctx context.Context) (*SessionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionEvent sets the old SessionEvent of the mutation.
func withSessionEvent(node *SessionEvent) sessioneventOption {
	return func(m *SessionEventMutation) {
		m.oldValue = func(context.Context) (*SessionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *SessionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *SessionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *SessionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *SessionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *SessionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *SessionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SessionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SessionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *SessionEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetUserID sets the "user_id" field.
func (m *SessionEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SessionEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SessionEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetAction sets the "action" field.
func (m *SessionEventMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *SessionEventMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *SessionEventMutation) ResetAction() {
	m.action = nil
}

// SetDurationSecs sets the "duration_secs" field.
func (m *SessionEventMutation) SetDurationSecs(i int) {
	m.duration_secs = &i
	m.addduration_secs = nil
}

// DurationSecs returns the value of the "duration_secs" field in the mutation.
func (m *SessionEventMutation) DurationSecs() (r int, exists bool) {
	v := m.duration_secs
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSecs returns the old "duration_secs" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldDurationSecs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSecs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSecs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSecs: %w", err)
	}
	return oldValue.DurationSecs, nil
}

// AddDurationSecs adds i to the "duration_secs" field.
func (m *SessionEventMutation) AddDurationSecs(i int) {
	if m.addduration_secs != nil {
		*m.addduration_secs += i
	} else {
		m.addduration_secs = &i
	}
}

// AddedDurationSecs returns the value that was added to the "duration_secs" field in this mutation.
func (m *SessionEventMutation) AddedDurationSecs() (r int, exists bool) {
	v := m.addduration_secs
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationSecs resets all changes to the "duration_secs" field.
func (m *SessionEventMutation) ResetDurationSecs() {
	m.duration_secs = nil
	m.addduration_secs = nil
}

// SetInteractions sets the "interactions" field.
func (m *SessionEventMutation) SetInteractions(i int) {
	m.interactions = &i
	m.addinteractions = nil
}

// Interactions returns the value of the "interactions" field in the mutation.
func (m *SessionEventMutation) Interactions() (r int, exists bool) {
	v := m.interactions
	if v == nil {
		return
	}
	return *v, true
}

// OldInteractions returns the old "interactions" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldInteractions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInteractions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInteractions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInteractions: %w", err)
	}
	return oldValue.Interactions, nil
}

// AddInteractions adds i to the "interactions" field.
func (m *SessionEventMutation) AddInteractions(i int) {
	if m.addinteractions != nil {
		*m.addinteractions += i
	} else {
		m.addinteractions = &i
	}
}

// AddedInteractions returns the value that was added to the "interactions" field in this mutation.
func (m *SessionEventMutation) AddedInteractions() (r int, exists bool) {
	v := m.addinteractions
	if v == nil {
		return
	}
	return *v, true
}

// ResetInteractions resets all changes to the "interactions" field.
func (m *SessionEventMutation) ResetInteractions() {
	m.interactions = nil
	m.addinteractions = nil
}

// SetCorrect sets the "correct" field.
func (m *SessionEventMutation) SetCorrect(i int) {
	m.correct = &i
	m.addcorrect = nil
}

// Correct returns the value of the "correct" field in the mutation.
func (m *SessionEventMutation) Correct() (r int, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldCorrect(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// AddCorrect adds i to the "correct" field.
func (m *SessionEventMutation) AddCorrect(i int) {
	if m.addcorrect != nil {
		*m.addcorrect += i
	} else {
		m.addcorrect = &i
	}
}

// AddedCorrect returns the value that was added to the "correct" field in this mutation.
func (m *SessionEventMutation) AddedCorrect() (r int, exists bool) {
	v := m.addcorrect
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrect resets all changes to the "correct" field.
func (m *SessionEventMutation) ResetCorrect() {
	m.correct = nil
	m.addcorrect = nil
}

// SetCompletionRatio sets the "completion_ratio" field.
func (m *SessionEventMutation) SetCompletionRatio(f float64) {
	m.completion_ratio = &f
	m.addcompletion_ratio = nil
}

// CompletionRatio returns the value of the "completion_ratio" field in the mutation.
func (m *SessionEventMutation) CompletionRatio() (r float64, exists bool) {
	v := m.completion_ratio
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionRatio returns the old "completion_ratio" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldCompletionRatio(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionRatio is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionRatio requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionRatio: %w", err)
	}
	return oldValue.CompletionRatio, nil
}

// AddCompletionRatio adds f to the "completion_ratio" field.
func (m *SessionEventMutation) AddCompletionRatio(f float64) {
	if m.addcompletion_ratio != nil {
		*m.addcompletion_ratio += f
	} else {
		m.addcompletion_ratio = &f
	}
}

// AddedCompletionRatio returns the value that was added to the "completion_ratio" field in this mutation.
func (m *SessionEventMutation) AddedCompletionRatio() (r float64, exists bool) {
	v := m.addcompletion_ratio
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletionRatio resets all changes to the "completion_ratio" field.
func (m *SessionEventMutation) ResetCompletionRatio() {
	m.completion_ratio = nil
	m.addcompletion_ratio = nil
}

// SetSelfRating sets the "self_rating" field.
func (m *SessionEventMutation) SetSelfRating(i int) {
	m.self_rating = &i
	m.addself_rating = nil
}

// SelfRating returns the value of the "self_rating" field in the mutation.
func (m *SessionEventMutation) SelfRating() (r int, exists bool) {
	v := m.self_rating
	if v == nil {
		return
	}
	return *v, true
}

// OldSelfRating returns the old "self_rating" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSelfRating(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSelfRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSelfRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSelfRating: %w", err)
	}
	return oldValue.SelfRating, nil
}

// AddSelfRating adds i to the "self_rating" field.
func (m *SessionEventMutation) AddSelfRating(i int) {
	if m.addself_rating != nil {
		*m.addself_rating += i
	} else {
		m.addself_rating = &i
	}
}

// AddedSelfRating returns the value that was added to the "self_rating" field in this mutation.
func (m *SessionEventMutation) AddedSelfRating() (r int, exists bool) {
	v := m.addself_rating
	if v == nil {
		return
	}
	return *v, true
}

// ResetSelfRating resets all changes to the "self_rating" field.
func (m *SessionEventMutation) ResetSelfRating() {
	m.self_rating = nil
	m.addself_rating = nil
}

// SetTopic sets the "topic" field.
func (m *SessionEventMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *SessionEventMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *SessionEventMutation) ResetTopic() {
	m.topic = nil
}

// SetPlanned sets the "planned" field.
func (m *SessionEventMutation) SetPlanned(b bool) {
	m.planned = &b
}

// Planned returns the value of the "planned" field in the mutation.
func (m *SessionEventMutation) Planned() (r bool, exists bool) {
	v := m.planned
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanned returns the old "planned" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldPlanned(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanned: %w", err)
	}
	return oldValue.Planned, nil
}

// ResetPlanned resets all changes to the "planned" field.
func (m *SessionEventMutation) ResetPlanned() {
	m.planned = nil
}

// Where appends a list predicates to the SessionEventMutation builder.
func (m *SessionEventMutation) Where(ps ...predicate.SessionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionEvent).
func (m *SessionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionEventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.sequence != nil {
		fields = append(fields, sessionevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, sessionevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, sessionevent.FieldSessionID)
	}
	if m.user_id != nil {
		fields = append(fields, sessionevent.FieldUserID)
	}
	if m.action != nil {
		fields = append(fields, sessionevent.FieldAction)
	}
	if m.duration_secs != nil {
		fields = append(fields, sessionevent.FieldDurationSecs)
	}
	if m.interactions != nil {
		fields = append(fields, sessionevent.FieldInteractions)
	}
	if m.correct != nil {
		fields = append(fields, sessionevent.FieldCorrect)
	}
	if m.completion_ratio != nil {
		fields = append(fields, sessionevent.FieldCompletionRatio)
	}
	if m.self_rating != nil {
		fields = append(fields, sessionevent.FieldSelfRating)
	}
	if m.topic != nil {
		fields = append(fields, sessionevent.FieldTopic)
	}
	if m.planned != nil {
		fields = append(fields, sessionevent.FieldPlanned)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldSequence:
		return m.Sequence()
	case sessionevent.FieldTimestamp:
		return m.Timestamp()
	case sessionevent.FieldSessionID:
		return m.SessionID()
	case sessionevent.FieldUserID:
		return m.UserID()
	case sessionevent.FieldAction:
		return m.Action()
	case sessionevent.FieldDurationSecs:
		return m.DurationSecs()
	case sessionevent.FieldInteractions:
		return m.Interactions()
	case sessionevent.FieldCorrect:
		return m.Correct()
	case sessionevent.FieldCompletionRatio:
		return m.CompletionRatio()
	case sessionevent.FieldSelfRating:
		return m.SelfRating()
	case sessionevent.FieldTopic:
		return m.Topic()
	case sessionevent.FieldPlanned:
		return m.Planned()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionevent.FieldSequence:
		return m.OldSequence(ctx)
	case sessionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case sessionevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionevent.FieldUserID:
		return m.OldUserID(ctx)
	case sessionevent.FieldAction:
		return m.OldAction(ctx)
	case sessionevent.FieldDurationSecs:
		return m.OldDurationSecs(ctx)
	case sessionevent.FieldInteractions:
		return m.OldInteractions(ctx)
	case sessionevent.FieldCorrect:
		return m.OldCorrect(ctx)
	case sessionevent.FieldCompletionRatio:
		return m.OldCompletionRatio(ctx)
	case sessionevent.FieldSelfRating:
		return m.OldSelfRating(ctx)
	case sessionevent.FieldTopic:
		return m.OldTopic(ctx)
	case sessionevent.FieldPlanned:
		return m.OldPlanned(ctx)
	}
	return nil, fmt.Errorf("unknown SessionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case sessionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case sessionevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case sessionevent.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case sessionevent.FieldDurationSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSecs(v)
		return nil
	case sessionevent.FieldInteractions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInteractions(v)
		return nil
	case sessionevent.FieldCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case sessionevent.FieldCompletionRatio:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionRatio(v)
		return nil
	case sessionevent.FieldSelfRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSelfRating(v)
		return nil
	case sessionevent.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case sessionevent.FieldPlanned:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanned(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, sessionevent.FieldSequence)
	}
	if m.addduration_secs != nil {
		fields = append(fields, sessionevent.FieldDurationSecs)
	}
	if m.addinteractions != nil {
		fields = append(fields, sessionevent.FieldInteractions)
	}
	if m.addcorrect != nil {
		fields = append(fields, sessionevent.FieldCorrect)
	}
	if m.addcompletion_ratio != nil {
		fields = append(fields, sessionevent.FieldCompletionRatio)
	}
	if m.addself_rating != nil {
		fields = append(fields, sessionevent.FieldSelfRating)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldSequence:
		return m.AddedSequence()
	case sessionevent.FieldDurationSecs:
		return m.AddedDurationSecs()
	case sessionevent.FieldInteractions:
		return m.AddedInteractions()
	case sessionevent.FieldCorrect:
		return m.AddedCorrect()
	case sessionevent.FieldCompletionRatio:
		return m.AddedCompletionRatio()
	case sessionevent.FieldSelfRating:
		return m.AddedSelfRating()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case sessionevent.FieldDurationSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSecs(v)
		return nil
	case sessionevent.FieldInteractions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInteractions(v)
		return nil
	case sessionevent.FieldCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrect(v)
		return nil
	case sessionevent.FieldCompletionRatio:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionRatio(v)
		return nil
	case sessionevent.FieldSelfRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSelfRating(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SessionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionEventMutation) ResetField(name string) error {
	switch name {
	case sessionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case sessionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case sessionevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionevent.FieldUserID:
		m.ResetUserID()
		return nil
	case sessionevent.FieldAction:
		m.ResetAction()
		return nil
	case sessionevent.FieldDurationSecs:
		m.ResetDurationSecs()
		return nil
	case sessionevent.FieldInteractions:
		m.ResetInteractions()
		return nil
	case sessionevent.FieldCorrect:
		m.ResetCorrect()
		return nil
	case sessionevent.FieldCompletionRatio:
		m.ResetCompletionRatio()
		return nil
	case sessionevent.FieldSelfRating:
		m.ResetSelfRating()
		return nil
	case sessionevent.FieldTopic:
		m.ResetTopic()
		return nil
	case sessionevent.FieldPlanned:
		m.ResetPlanned()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionEvent edge %s", name)
}

// StressPatternMutation represents an operation that mutates the StressPattern nodes in the graph.
type StressPatternMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	user_id            *string
	pattern_type       *string
	trigger_signature  *string
	trigger_conditions *map[string]string
	response_profile   *map[string]float64
	occurrences        *int
	addoccurrences     *int
	confidence         *float64
	addconfidence      *float64
	first_detected_at  *time.Time
	last_occurrence    *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*StressPattern, error)
	predicates         []predicate.StressPattern
}

var _ ent.Mutation = (*StressPatternMutation)(nil)

// stresspatternOption allows management of the mutation configuration using functional options.
type stresspatternOption func(*StressPatternMutation)

// newStressPatternMutation creates new mutation for the StressPattern entity.
func newStressPatternMutation(c config, op Op, opts ...stresspatternOption) *StressPatternMutation {
	m := &StressPatternMutation{
		config:        c,
		op:            op,
		typ:           TypeStressPattern,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStressPatternID sets the ID field of the mutation.
func withStressPatternID(id int) stresspatternOption {
	return func(m *StressPatternMutation) {
		var (
			err   error
			once  sync.Once
			value *StressPattern
		)
		m.oldValue = func(ctx context.Context) (*StressPattern, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StressPattern.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStressPattern sets the old StressPattern of the mutation.
func withStressPattern(node *StressPattern) stresspatternOption {
	return func(m *StressPatternMutation) {
		m.oldValue = func(context.Context) (*StressPattern, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StressPatternMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StressPatternMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StressPatternMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StressPatternMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StressPattern.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *StressPatternMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *StressPatternMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the StressPattern entity.
// If the StressPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StressPatternMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *StressPatternMutation) ResetUserID() {
	m.user_id = nil
}

// SetPatternType sets the "pattern_type" field.
func (m *StressPatternMutation) SetPatternType(s string) {
	m.pattern_type = &s
}

// PatternType returns the value of the "pattern_type" field in the mutation.
func (m *StressPatternMutation) PatternType() (r string, exists bool) {
	v := m.pattern_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPatternType returns the old "pattern_type" field's value of the StressPattern entity.
// If the StressPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StressPatternMutation) OldPatternType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatternType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatternType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatternType: %w", err)
	}
	return oldValue.PatternType, nil
}

// ResetPatternType resets all changes to the "pattern_type" field.
func (m *StressPatternMutation) ResetPatternType() {
	m.pattern_type = nil
}

// SetTriggerSignature sets the "trigger_signature" field.
func (m *StressPatternMutation) SetTriggerSignature(s string) {
	m.trigger_signature = &s
}

// TriggerSignature returns the value of the "trigger_signature" field in the mutation.
func (m *StressPatternMutation) TriggerSignature() (r string, exists bool) {
	v := m.trigger_signature
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerSignature returns the old "trigger_signature" field's value of the StressPattern entity.
// If the StressPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StressPatternMutation) OldTriggerSignature(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerSignature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerSignature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerSignature: %w", err)
	}
	return oldValue.TriggerSignature, nil
}

// ResetTriggerSignature resets all changes to the "trigger_signature" field.
func (m *StressPatternMutation) ResetTriggerSignature() {
	m.trigger_signature = nil
}

// SetTriggerConditions sets the "trigger_conditions" field.
func (m *StressPatternMutation) SetTriggerConditions(value map[string]string) {
	m.trigger_conditions = &value
}

// TriggerConditions returns the value of the "trigger_conditions" field in the mutation.
func (m *StressPatternMutation) TriggerConditions() (r map[string]string, exists bool) {
	v := m.trigger_conditions
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerConditions returns the old "trigger_conditions" field's value of the StressPattern entity.
// If the StressPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StressPatternMutation) OldTriggerConditions(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerConditions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerConditions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerConditions: %w", err)
	}
	return oldValue.TriggerConditions, nil
}

// ClearTriggerConditions clears the value of the "trigger_conditions" field.
func (m *StressPatternMutation) ClearTriggerConditions() {
	m.trigger_conditions = nil
	m.clearedFields[stresspattern.FieldTriggerConditions] = struct{}{}
}

// TriggerConditionsCleared returns if the "trigger_conditions" field was cleared in this mutation.
func (m *StressPatternMutation) TriggerConditionsCleared() bool {
	_, ok := m.clearedFields[stresspattern.FieldTriggerConditions]
	return ok
}

// ResetTriggerConditions resets all changes to the "trigger_conditions" field.
func (m *StressPatternMutation) ResetTriggerConditions() {
	m.trigger_conditions = nil
	delete(m.clearedFields, stresspattern.FieldTriggerConditions)
}

// SetResponseProfile sets the "response_profile" field.
func (m *StressPatternMutation) SetResponseProfile(value map[string]float64) {
	m.response_profile = &value
}

// ResponseProfile returns the value of the "response_profile" field in the mutation.
func (m *StressPatternMutation) ResponseProfile() (r map[string]float64, exists bool) {
	v := m.response_profile
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseProfile returns the old "response_profile" field's value of the StressPattern entity.
// If the StressPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StressPatternMutation) OldResponseProfile(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseProfile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseProfile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseProfile: %w", err)
	}
	return oldValue.ResponseProfile, nil
}

// ClearResponseProfile clears the value of the "response_profile" field.
func (m *StressPatternMutation) ClearResponseProfile() {
	m.response_profile = nil
	m.clearedFields[stresspattern.FieldResponseProfile] = struct{}{}
}

// ResponseProfileCleared returns if the "response_profile" field was cleared in this mutation.
func (m *StressPatternMutation) ResponseProfileCleared() bool {
	_, ok := m.clearedFields[stresspattern.FieldResponseProfile]
	return ok
}

// ResetResponseProfile resets all changes to the "response_profile" field.
func (m *StressPatternMutation) ResetResponseProfile() {
	m.response_profile = nil
	delete(m.clearedFields, stresspattern.FieldResponseProfile)
}

// SetOccurrences sets the "occurrences" field.
func (m *StressPatternMutation) SetOccurrences(i int) {
	m.occurrences = &i
	m.addoccurrences = nil
}

// Occurrences returns the value of the "occurrences" field in the mutation.
func (m *StressPatternMutation) Occurrences() (r int, exists bool) {
	v := m.occurrences
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurrences returns the old "occurrences" field's value of the StressPattern entity.
// If the StressPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StressPatternMutation) OldOccurrences(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurrences is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurrences requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurrences: %w", err)
	}
	return oldValue.Occurrences, nil
}

// AddOccurrences adds i to the "occurrences" field.
func (m *StressPatternMutation) AddOccurrences(i int) {
	if m.addoccurrences != nil {
		*m.addoccurrences += i
	} else {
		m.addoccurrences = &i
	}
}

// AddedOccurrences returns the value that was added to the "occurrences" field in this mutation.
func (m *StressPatternMutation) AddedOccurrences() (r int, exists bool) {
	v := m.addoccurrences
	if v == nil {
		return
	}
	return *v, true
}

// ResetOccurrences resets all changes to the "occurrences" field.
func (m *StressPatternMutation) ResetOccurrences() {
	m.occurrences = nil
	m.addoccurrences = nil
}

// SetConfidence sets the "confidence" field.
func (m *StressPatternMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *StressPatternMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the StressPattern entity.
// If the StressPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StressPatternMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *StressPatternMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *StressPatternMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *StressPatternMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetFirstDetectedAt sets the "first_detected_at" field.
func (m *StressPatternMutation) SetFirstDetectedAt(t time.Time) {
	m.first_detected_at = &t
}

// FirstDetectedAt returns the value of the "first_detected_at" field in the mutation.
func (m *StressPatternMutation) FirstDetectedAt() (r time.Time, exists bool) {
	v := m.first_detected_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstDetectedAt returns the old "first_detected_at" field's value of the StressPattern entity.
// If the StressPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StressPatternMutation) OldFirstDetectedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstDetectedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstDetectedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstDetectedAt: %w", err)
	}
	return oldValue.FirstDetectedAt, nil
}

// ResetFirstDetectedAt resets all changes to the "first_detected_at" field.
func (m *StressPatternMutation) ResetFirstDetectedAt() {
	m.first_detected_at = nil
}

// SetLastOccurrence sets the "last_occurrence" field.
func (m *StressPatternMutation) SetLastOccurrence(t time.Time) {
	m.last_occurrence = &t
}

// LastOccurrence returns the value of the "last_occurrence" field in the mutation.
func (m *StressPatternMutation) LastOccurrence() (r time.Time, exists bool) {
	v := m.last_occurrence
	if v == nil {
		return
	}
	return *v, true
}

// OldLastOccurrence returns the old "last_occurrence" field's value of the StressPattern entity.
// If the StressPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StressPatternMutation) OldLastOccurrence(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastOccurrence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastOccurrence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastOccurrence: %w", err)
	}
	return oldValue.LastOccurrence, nil
}

// ResetLastOccurrence resets all changes to the "last_occurrence" field.
func (m *StressPatternMutation) ResetLastOccurrence() {
	m.last_occurrence = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StressPatternMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StressPatternMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StressPattern entity.
// If the StressPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StressPatternMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StressPatternMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the StressPatternMutation builder.
func (m *StressPatternMutation) Where(ps ...predicate.StressPattern) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StressPatternMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StressPatternMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StressPattern, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StressPatternMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StressPatternMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StressPattern).
func (m *StressPatternMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StressPatternMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.user_id != nil {
		fields = append(fields, stresspattern.FieldUserID)
	}
	if m.pattern_type != nil {
		fields = append(fields, stresspattern.FieldPatternType)
	}
	if m.trigger_signature != nil {
		fields = append(fields, stresspattern.FieldTriggerSignature)
	}
	if m.trigger_conditions != nil {
		fields = append(fields, stresspattern.FieldTriggerConditions)
	}
	if m.response_profile != nil {
		fields = append(fields, stresspattern.FieldResponseProfile)
	}
	if m.occurrences != nil {
		fields = append(fields, stresspattern.FieldOccurrences)
	}
	if m.confidence != nil {
		fields = append(fields, stresspattern.FieldConfidence)
	}
	if m.first_detected_at != nil {
		fields = append(fields, stresspattern.FieldFirstDetectedAt)
	}
	if m.last_occurrence != nil {
		fields = append(fields, stresspattern.FieldLastOccurrence)
	}
	if m.updated_at != nil {
		fields = append(fields, stresspattern.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StressPatternMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stresspattern.FieldUserID:
		return m.UserID()
	case stresspattern.FieldPatternType:
		return m.PatternType()
	case stresspattern.FieldTriggerSignature:
		return m.TriggerSignature()
	case stresspattern.FieldTriggerConditions:
		return m.TriggerConditions()
	case stresspattern.FieldResponseProfile:
		return m.ResponseProfile()
	case stresspattern.FieldOccurrences:
		return m.Occurrences()
	case stresspattern.FieldConfidence:
		return m.Confidence()
	case stresspattern.FieldFirstDetectedAt:
		return m.FirstDetectedAt()
	case stresspattern.FieldLastOccurrence:
		return m.LastOccurrence()
	case stresspattern.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StressPatternMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stresspattern.FieldUserID:
		return m.OldUserID(ctx)
	case stresspattern.FieldPatternType:
		return m.OldPatternType(ctx)
	case stresspattern.FieldTriggerSignature:
		return m.OldTriggerSignature(ctx)
	case stresspattern.FieldTriggerConditions:
		return m.OldTriggerConditions(ctx)
	case stresspattern.FieldResponseProfile:
		return m.OldResponseProfile(ctx)
	case stresspattern.FieldOccurrences:
		return m.OldOccurrences(ctx)
	case stresspattern.FieldConfidence:
		return m.OldConfidence(ctx)
	case stresspattern.FieldFirstDetectedAt:
		return m.OldFirstDetectedAt(ctx)
	case stresspattern.FieldLastOccurrence:
		return m.OldLastOccurrence(ctx)
	case stresspattern.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StressPattern field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StressPatternMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stresspattern.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case stresspattern.FieldPatternType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatternType(v)
		return nil
	case stresspattern.FieldTriggerSignature:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerSignature(v)
		return nil
	case stresspattern.FieldTriggerConditions:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerConditions(v)
		return nil
	case stresspattern.FieldResponseProfile:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseProfile(v)
		return nil
	case stresspattern.FieldOccurrences:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurrences(v)
		return nil
	case stresspattern.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case stresspattern.FieldFirstDetectedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstDetectedAt(v)
		return nil
	case stresspattern.FieldLastOccurrence:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastOccurrence(v)
		return nil
	case stresspattern.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StressPattern field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StressPatternMutation) AddedFields() []string {
	var fields []string
	if m.addoccurrences != nil {
		fields = append(fields, stresspattern.FieldOccurrences)
	}
	if m.addconfidence != nil {
		fields = append(fields, stresspattern.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StressPatternMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stresspattern.FieldOccurrences:
		return m.AddedOccurrences()
	case stresspattern.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StressPatternMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stresspattern.FieldOccurrences:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOccurrences(v)
		return nil
	case stresspattern.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown StressPattern numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StressPatternMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stresspattern.FieldTriggerConditions) {
		fields = append(fields, stresspattern.FieldTriggerConditions)
	}
	if m.FieldCleared(stresspattern.FieldResponseProfile) {
		fields = append(fields, stresspattern.FieldResponseProfile)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StressPatternMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StressPatternMutation) ClearField(name string) error {
	switch name {
	case stresspattern.FieldTriggerConditions:
		m.ClearTriggerConditions()
		return nil
	case stresspattern.FieldResponseProfile:
		m.ClearResponseProfile()
		return nil
	}
	return fmt.Errorf("unknown StressPattern nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StressPatternMutation) ResetField(name string) error {
	switch name {
	case stresspattern.FieldUserID:
		m.ResetUserID()
		return nil
	case stresspattern.FieldPatternType:
		m.ResetPatternType()
		return nil
	case stresspattern.FieldTriggerSignature:
		m.ResetTriggerSignature()
		return nil
	case stresspattern.FieldTriggerConditions:
		m.ResetTriggerConditions()
		return nil
	case stresspattern.FieldResponseProfile:
		m.ResetResponseProfile()
		return nil
	case stresspattern.FieldOccurrences:
		m.ResetOccurrences()
		return nil
	case stresspattern.FieldConfidence:
		m.ResetConfidence()
		return nil
	case stresspattern.FieldFirstDetectedAt:
		m.ResetFirstDetectedAt()
		return nil
	case stresspattern.FieldLastOccurrence:
		m.ResetLastOccurrence()
		return nil
	case stresspattern.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown StressPattern field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StressPatternMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StressPatternMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StressPatternMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StressPatternMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StressPatternMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StressPatternMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StressPatternMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StressPattern unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StressPatternMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StressPattern edge %s", name)
}
