package store

import (
	"context"
	"fmt"

	"github.com/anupamd/studypulse/ent"
	"github.com/anupamd/studypulse/ent/stresspattern"
)

type patternRepo struct {
	client *ent.Client
}

func (r *patternRepo) Merge(ctx context.Context, p Pattern) error {
	existing, err := r.client.StressPattern.Query().
		Where(
			stresspattern.UserID(p.UserID),
			stresspattern.PatternType(p.Type),
			stresspattern.TriggerSignature(p.Signature),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query pattern: %w", err)
	}

	if existing != nil {
		// Confidence only ever moves up; first detection is preserved.
		confidence := p.Confidence
		if existing.Confidence > confidence {
			confidence = existing.Confidence
		}
		last := p.LastOccurrence
		if existing.LastOccurrence.After(last) {
			last = existing.LastOccurrence
		}
		_, err := existing.Update().
			SetTriggerConditions(p.TriggerConditions).
			SetResponseProfile(p.ResponseProfile).
			SetOccurrences(p.Occurrences).
			SetConfidence(confidence).
			SetLastOccurrence(last).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("merge pattern: %w", err)
		}
		return nil
	}

	_, err = r.client.StressPattern.Create().
		SetUserID(p.UserID).
		SetPatternType(p.Type).
		SetTriggerSignature(p.Signature).
		SetTriggerConditions(p.TriggerConditions).
		SetResponseProfile(p.ResponseProfile).
		SetOccurrences(p.Occurrences).
		SetConfidence(p.Confidence).
		SetFirstDetectedAt(p.FirstDetectedAt).
		SetLastOccurrence(p.LastOccurrence).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save pattern: %w", err)
	}
	return nil
}

func (r *patternRepo) ByUser(ctx context.Context, userID string, minConfidence float64, minFrequency int) ([]Pattern, error) {
	rows, err := r.client.StressPattern.Query().
		Where(
			stresspattern.UserID(userID),
			stresspattern.ConfidenceGTE(minConfidence),
			stresspattern.OccurrencesGTE(minFrequency),
		).
		Order(ent.Desc(stresspattern.FieldConfidence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query patterns: %w", err)
	}
	return patternsFromRows(rows), nil
}

func (r *patternRepo) AllByUser(ctx context.Context, userID string) ([]Pattern, error) {
	rows, err := r.client.StressPattern.Query().
		Where(stresspattern.UserID(userID)).
		Order(ent.Desc(stresspattern.FieldConfidence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query all patterns: %w", err)
	}
	return patternsFromRows(rows), nil
}

func patternsFromRows(rows []*ent.StressPattern) []Pattern {
	out := make([]Pattern, 0, len(rows))
	for _, row := range rows {
		out = append(out, Pattern{
			UserID:            row.UserID,
			Type:              row.PatternType,
			Signature:         row.TriggerSignature,
			TriggerConditions: row.TriggerConditions,
			ResponseProfile:   row.ResponseProfile,
			Occurrences:       row.Occurrences,
			Confidence:        row.Confidence,
			FirstDetectedAt:   row.FirstDetectedAt,
			LastOccurrence:    row.LastOccurrence,
		})
	}
	return out
}
