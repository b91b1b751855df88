package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/anupamd/studypulse/ent"
	"github.com/anupamd/studypulse/ent/interventionevent"
)

type interventionRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *interventionRepo) Append(ctx context.Context, ack InterventionAck) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.InterventionEvent.Create().
		SetSequence(seqNum).
		SetUserID(ack.UserID).
		SetInterventionID(ack.InterventionID).
		SetAction(ack.Action).
		SetRiskLevel(ack.RiskLevel).
		SetAccepted(ack.Accepted)

	if !ack.Timestamp.IsZero() {
		builder = builder.SetTimestamp(ack.Timestamp)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save intervention ack: %w", err)
	}
	return nil
}

func (r *interventionRepo) AcceptanceByAction(ctx context.Context, userID string) ([]AcceptanceStat, error) {
	rows, err := r.client.InterventionEvent.Query().
		Where(interventionevent.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query intervention acks: %w", err)
	}

	byAction := make(map[string]*AcceptanceStat)
	for _, row := range rows {
		stat := byAction[row.Action]
		if stat == nil {
			stat = &AcceptanceStat{Action: row.Action}
			byAction[row.Action] = stat
		}
		stat.Offered++
		if row.Accepted {
			stat.Accepted++
		}
	}

	out := make([]AcceptanceStat, 0, len(byAction))
	for _, stat := range byAction {
		out = append(out, *stat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Action < out[j].Action })
	return out, nil
}
