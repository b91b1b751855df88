package burnout

import (
	"context"
	"fmt"
	"time"

	"github.com/anupamd/studypulse/internal/store"
)

// dayStat aggregates one calendar day of load metrics.
type dayStat struct {
	date    string
	avgLoad float64
	minLoad float64
	samples int
}

// history is the assembled evidence one assessment works from.
type history struct {
	from, to time.Time

	// days covers only calendar days that have at least one metric,
	// oldest first.
	days []dayStat

	sessions []store.SessionRecord
	ended    []store.SessionRecord
	skips    int
}

// collect builds the history for the window ending at now. Metrics arrive
// from the repo in ascending timestamp order; daily aggregation preserves
// that ordering.
func collect(ctx context.Context, metrics store.MetricRepo, sessions store.SessionRepo, userID string, now time.Time, windowDays int) (*history, error) {
	from := now.AddDate(0, 0, -windowDays)

	ms, err := metrics.ByUser(ctx, userID, from, now)
	if err != nil {
		return nil, fmt.Errorf("load metrics: %w", err)
	}
	ss, err := sessions.ByUser(ctx, userID, from, now)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}

	h := &history{from: from, to: now, sessions: ss}

	var cur *dayStat
	var sum float64
	for _, m := range ms {
		date := m.Timestamp.Format("2006-01-02")
		if cur == nil || cur.date != date {
			if cur != nil {
				cur.avgLoad = sum / float64(cur.samples)
				h.days = append(h.days, *cur)
			}
			cur = &dayStat{date: date, minLoad: m.Score}
			sum = 0
		}
		cur.samples++
		sum += m.Score
		if m.Score < cur.minLoad {
			cur.minLoad = m.Score
		}
	}
	if cur != nil {
		cur.avgLoad = sum / float64(cur.samples)
		h.days = append(h.days, *cur)
	}

	for _, s := range ss {
		switch s.Action {
		case "end":
			h.ended = append(h.ended, s)
		case "skip":
			h.skips++
		}
	}

	return h, nil
}

// hoursPerWeek returns average weekly study hours over the window.
func (h *history) hoursPerWeek() float64 {
	secs := 0
	for _, s := range h.ended {
		secs += s.DurationSecs
	}
	weeks := h.to.Sub(h.from).Hours() / (24 * 7)
	if weeks <= 0 {
		return 0
	}
	return float64(secs) / 3600 / weeks
}

// weeklyAccuracy returns (earlier week, later week, ok). ok is false when
// either half lacks answered interactions.
func (h *history) weeklyAccuracy() (float64, float64, bool) {
	mid := h.from.Add(h.to.Sub(h.from) / 2)
	var c1, n1, c2, n2 int
	for _, s := range h.ended {
		if s.Interactions == 0 {
			continue
		}
		if s.Timestamp.Before(mid) {
			c1 += s.Correct
			n1 += s.Interactions
		} else {
			c2 += s.Correct
			n2 += s.Interactions
		}
	}
	if n1 == 0 || n2 == 0 {
		return 0, 0, false
	}
	return float64(c1) / float64(n1), float64(c2) / float64(n2), true
}

// daysSinceRecovery returns full days since the last day whose average
// load fell below threshold. When no such day exists, the whole window
// counts.
func (h *history) daysSinceRecovery(threshold float64) int {
	for i := len(h.days) - 1; i >= 0; i-- {
		if h.days[i].avgLoad < threshold {
			last, err := time.Parse("2006-01-02", h.days[i].date)
			if err != nil {
				break
			}
			return int(h.to.Sub(last).Hours() / 24)
		}
	}
	return int(h.to.Sub(h.from).Hours() / 24)
}
