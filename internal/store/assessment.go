package store

import (
	"context"
	"fmt"
	"time"

	"github.com/anupamd/studypulse/ent"
	"github.com/anupamd/studypulse/ent/burnoutassessment"
	entschema "github.com/anupamd/studypulse/ent/schema"
)

type assessmentRepo struct {
	client *ent.Client
}

func (r *assessmentRepo) Upsert(ctx context.Context, a Assessment) error {
	factors := make([]entschema.FactorRecord, 0, len(a.Factors))
	for _, f := range a.Factors {
		factors = append(factors, entschema.FactorRecord{
			Name:         f.Name,
			Contribution: f.Contribution,
			Cap:          f.Cap,
			Detail:       f.Detail,
		})
	}

	existing, err := r.client.BurnoutAssessment.Query().
		Where(
			burnoutassessment.UserID(a.UserID),
			burnoutassessment.AssessmentDate(a.Date),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query assessment: %w", err)
	}

	if existing != nil {
		builder := existing.Update().
			SetRiskScore(a.RiskScore).
			SetRiskLevel(a.RiskLevel).
			SetFactors(factors).
			SetRecommendations(a.Recommendations).
			SetInsufficientData(a.InsufficientData)
		if !a.OnDemandAt.IsZero() {
			builder = builder.SetOnDemandAt(a.OnDemandAt)
		}
		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("update assessment: %w", err)
		}
		return nil
	}

	builder := r.client.BurnoutAssessment.Create().
		SetUserID(a.UserID).
		SetAssessmentDate(a.Date).
		SetRiskScore(a.RiskScore).
		SetRiskLevel(a.RiskLevel).
		SetFactors(factors).
		SetRecommendations(a.Recommendations).
		SetInsufficientData(a.InsufficientData)
	if !a.OnDemandAt.IsZero() {
		builder = builder.SetOnDemandAt(a.OnDemandAt)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save assessment: %w", err)
	}
	return nil
}

func (r *assessmentRepo) Get(ctx context.Context, userID, date string) (*Assessment, error) {
	row, err := r.client.BurnoutAssessment.Query().
		Where(
			burnoutassessment.UserID(userID),
			burnoutassessment.AssessmentDate(date),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query assessment: %w", err)
	}
	return assessmentFromRow(row), nil
}

func (r *assessmentRepo) Latest(ctx context.Context, userID string) (*Assessment, error) {
	row, err := r.client.BurnoutAssessment.Query().
		Where(burnoutassessment.UserID(userID)).
		Order(ent.Desc(burnoutassessment.FieldAssessmentDate)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest assessment: %w", err)
	}
	return assessmentFromRow(row), nil
}

func (r *assessmentRepo) TouchOnDemand(ctx context.Context, userID, date string, at time.Time) error {
	n, err := r.client.BurnoutAssessment.Update().
		Where(
			burnoutassessment.UserID(userID),
			burnoutassessment.AssessmentDate(date),
		).
		SetOnDemandAt(at).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("touch assessment: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("touch assessment: no row for %s/%s", userID, date)
	}
	return nil
}

func assessmentFromRow(row *ent.BurnoutAssessment) *Assessment {
	a := &Assessment{
		UserID:           row.UserID,
		Date:             row.AssessmentDate,
		RiskScore:        row.RiskScore,
		RiskLevel:        row.RiskLevel,
		Recommendations:  row.Recommendations,
		InsufficientData: row.InsufficientData,
		OnDemandAt:       row.OnDemandAt,
		UpdatedAt:        row.UpdatedAt,
	}
	for _, f := range row.Factors {
		a.Factors = append(a.Factors, FactorData{
			Name:         f.Name,
			Contribution: f.Contribution,
			Cap:          f.Cap,
			Detail:       f.Detail,
		})
	}
	return a
}
