package store

import (
	"context"
	"fmt"
	"time"

	"github.com/anupamd/studypulse/ent"
	"github.com/anupamd/studypulse/ent/sessionevent"
)

type sessionRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *sessionRepo) Append(ctx context.Context, rec SessionRecord) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(rec.SessionID).
		SetUserID(rec.UserID).
		SetAction(rec.Action).
		SetDurationSecs(rec.DurationSecs).
		SetInteractions(rec.Interactions).
		SetCorrect(rec.Correct).
		SetCompletionRatio(rec.CompletionRatio).
		SetSelfRating(rec.SelfRating).
		SetTopic(rec.Topic).
		SetPlanned(rec.Planned)

	if !rec.Timestamp.IsZero() {
		builder = builder.SetTimestamp(rec.Timestamp)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *sessionRepo) ByUser(ctx context.Context, userID string, from, to time.Time) ([]SessionRecord, error) {
	rows, err := r.client.SessionEvent.Query().
		Where(
			sessionevent.UserID(userID),
			sessionevent.TimestampGTE(from),
			sessionevent.TimestampLTE(to),
		).
		Order(ent.Asc(sessionevent.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions by user: %w", err)
	}

	out := make([]SessionRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, SessionRecord{
			SessionID:       row.SessionID,
			UserID:          row.UserID,
			Timestamp:       row.Timestamp,
			Action:          row.Action,
			DurationSecs:    row.DurationSecs,
			Interactions:    row.Interactions,
			Correct:         row.Correct,
			CompletionRatio: row.CompletionRatio,
			SelfRating:      row.SelfRating,
			Topic:           row.Topic,
			Planned:         row.Planned,
		})
	}
	return out, nil
}

func (r *sessionRepo) Users(ctx context.Context) ([]string, error) {
	ids, err := r.client.SessionEvent.Query().
		Unique(true).
		Select(sessionevent.FieldUserID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session users: %w", err)
	}
	return ids, nil
}
