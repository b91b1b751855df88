package store

import (
	"context"
	"fmt"
	"time"

	"github.com/anupamd/studypulse/ent"
	"github.com/anupamd/studypulse/ent/loadmetricevent"
	entschema "github.com/anupamd/studypulse/ent/schema"
)

type metricRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *metricRepo) Append(ctx context.Context, m LoadMetric) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	var indicators []entschema.IndicatorRecord
	for _, ind := range m.Indicators {
		indicators = append(indicators, entschema.IndicatorRecord{
			Type:         ind.Type,
			Severity:     ind.Severity,
			Contribution: ind.Contribution,
		})
	}

	builder := r.client.LoadMetricEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(m.Timestamp).
		SetSessionID(m.SessionID).
		SetUserID(m.UserID).
		SetLoadScore(m.Score).
		SetConfidence(m.Confidence).
		SetTopic(m.Topic).
		SetHour(m.Hour).
		SetWeekday(m.Weekday).
		SetDaysToExam(m.DaysToExam)

	if len(indicators) > 0 {
		builder = builder.SetIndicators(indicators)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save load metric: %w", err)
	}
	return nil
}

func (r *metricRepo) ByUser(ctx context.Context, userID string, from, to time.Time) ([]LoadMetric, error) {
	rows, err := r.client.LoadMetricEvent.Query().
		Where(
			loadmetricevent.UserID(userID),
			loadmetricevent.TimestampGTE(from),
			loadmetricevent.TimestampLTE(to),
		).
		Order(ent.Asc(loadmetricevent.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query metrics by user: %w", err)
	}
	return metricsFromRows(rows), nil
}

func (r *metricRepo) Recent(ctx context.Context, userID string, n int) ([]LoadMetric, error) {
	rows, err := r.client.LoadMetricEvent.Query().
		Where(loadmetricevent.UserID(userID)).
		Order(ent.Desc(loadmetricevent.FieldTimestamp)).
		Limit(n).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent metrics: %w", err)
	}

	// Reverse into ascending order for trend consumers.
	out := metricsFromRows(rows)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func (r *metricRepo) BySession(ctx context.Context, sessionID string) ([]LoadMetric, error) {
	rows, err := r.client.LoadMetricEvent.Query().
		Where(loadmetricevent.SessionID(sessionID)).
		Order(ent.Asc(loadmetricevent.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query metrics by session: %w", err)
	}
	return metricsFromRows(rows), nil
}

func metricsFromRows(rows []*ent.LoadMetricEvent) []LoadMetric {
	out := make([]LoadMetric, 0, len(rows))
	for _, row := range rows {
		m := LoadMetric{
			SessionID:  row.SessionID,
			UserID:     row.UserID,
			Timestamp:  row.Timestamp,
			Score:      row.LoadScore,
			Confidence: row.Confidence,
			Topic:      row.Topic,
			Hour:       row.Hour,
			Weekday:    row.Weekday,
			DaysToExam: row.DaysToExam,
		}
		for _, ind := range row.Indicators {
			m.Indicators = append(m.Indicators, IndicatorData{
				Type:         ind.Type,
				Severity:     ind.Severity,
				Contribution: ind.Contribution,
			})
		}
		out = append(out, m)
	}
	return out
}
