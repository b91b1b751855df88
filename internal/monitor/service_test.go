package monitor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/anupamd/studypulse/internal/burnout"
	"github.com/anupamd/studypulse/internal/load"
	"github.com/anupamd/studypulse/internal/patterns"
	"github.com/anupamd/studypulse/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	s := openTestStore(t)
	assessor := burnout.NewAssessor(burnout.DefaultConfig(), s.Metrics(), s.Sessions(), s.Assessments(), zerolog.Nop())
	miner := patterns.NewMiner(patterns.DefaultConfig(), s.Metrics(), s.Patterns(), zerolog.Nop())
	svc := NewService(s, assessor, miner, load.DefaultConfig(), patterns.DefaultConfig(), zerolog.Nop())
	svc.now = func() time.Time { return now }
	return svc, s
}

func seedMetric(t *testing.T, s *store.Store, ts time.Time, score float64) {
	t.Helper()
	err := s.Metrics().Append(context.Background(), store.LoadMetric{
		SessionID:  "s1",
		UserID:     "u1",
		Timestamp:  ts,
		Score:      score,
		Confidence: 0.9,
		Hour:       ts.Hour(),
		Weekday:    int(ts.Weekday()),
		DaysToExam: -1,
	})
	if err != nil {
		t.Fatalf("seed metric: %v", err)
	}
}

func TestCurrentLoadNoData(t *testing.T) {
	svc, _ := newTestService(t)

	status, err := svc.CurrentLoad(context.Background(), "u1")
	if !errors.Is(err, load.ErrInsufficientData) {
		t.Fatalf("err = %v, want ErrInsufficientData", err)
	}
	if status.Score != load.DefaultConfig().DefaultScore || status.Trend != "steady" {
		t.Errorf("status = %+v", status)
	}
}

func TestCurrentLoadTrend(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   string
	}{
		{"rising", []float64{40, 52, 61}, "rising"},
		{"falling", []float64{61, 50, 42}, "falling"},
		{"steady", []float64{50, 52, 51}, "steady"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, s := newTestService(t)
			for i, score := range tt.scores {
				seedMetric(t, s, now.Add(time.Duration(i)*10*time.Minute), score)
			}

			status, err := svc.CurrentLoad(context.Background(), "u1")
			if err != nil {
				t.Fatalf("current load: %v", err)
			}
			if status.Trend != tt.want {
				t.Errorf("trend = %s, want %s", status.Trend, tt.want)
			}
			last := tt.scores[len(tt.scores)-1]
			if status.Score != last {
				t.Errorf("score = %v, want %v", status.Score, last)
			}
		})
	}
}

func TestLoadHistoryDayBuckets(t *testing.T) {
	svc, s := newTestService(t)
	day1 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	seedMetric(t, s, day1, 40)
	seedMetric(t, s, day1.Add(time.Hour), 60)
	seedMetric(t, s, day2, 70)

	points, err := svc.LoadHistory(context.Background(), "u1", day1.Add(-time.Hour), day2.Add(time.Hour), GranularityDay)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("buckets = %d, want 2", len(points))
	}
	if points[0].Avg != 50 || points[0].Peak != 60 || points[0].Samples != 2 {
		t.Errorf("day1 bucket = %+v", points[0])
	}
	if points[1].Avg != 70 || points[1].Samples != 1 {
		t.Errorf("day2 bucket = %+v", points[1])
	}
}

func TestLoadHistoryRejectsUnknownGranularity(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.LoadHistory(context.Background(), "u1", now.Add(-time.Hour), now, "week"); err == nil {
		t.Fatal("expected an error for unknown granularity")
	}
}

// A rate-limited on-demand run is success from the query surface's
// point of view.
func TestBurnoutRiskRateLimitedIsSuccess(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()
	seedSessions(t, s)

	first, err := svc.BurnoutRisk(ctx, "u1")
	if err != nil {
		t.Fatalf("first risk: %v", err)
	}
	second, err := svc.BurnoutRisk(ctx, "u1")
	if err != nil {
		t.Fatalf("rate-limited risk should not error: %v", err)
	}
	if second.Date != first.Date || second.RiskScore != first.RiskScore {
		t.Errorf("cached assessment differs: %+v vs %+v", second, first)
	}
}

func seedSessions(t *testing.T, s *store.Store) {
	t.Helper()
	ctx := context.Background()
	for ago := 8; ago >= 2; ago-- {
		day := now.AddDate(0, 0, -ago)
		id := "s-" + day.Format("2006-01-02")
		if err := s.Sessions().Append(ctx, store.SessionRecord{
			SessionID: id, UserID: "u1", Timestamp: day, Action: "start", Topic: "algebra", Planned: true,
		}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		if err := s.Sessions().Append(ctx, store.SessionRecord{
			SessionID: id, UserID: "u1", Timestamp: day.Add(time.Hour), Action: "end",
			DurationSecs: 3600, Interactions: 20, Correct: 15, CompletionRatio: 1, Topic: "algebra", Planned: true,
		}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		seedMetric(t, s, day.Add(30*time.Minute), 45)
	}
}

func TestStressPatternsEnforcesFloor(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()

	low := store.Pattern{
		UserID: "u1", Type: patterns.TypeTopic, Signature: "topic=geometry",
		Occurrences: 4, Confidence: 0.4,
		FirstDetectedAt: now.AddDate(0, 0, -10), LastOccurrence: now,
	}
	high := store.Pattern{
		UserID: "u1", Type: patterns.TypeTopic, Signature: "topic=calculus",
		Occurrences: 7, Confidence: 0.7,
		FirstDetectedAt: now.AddDate(0, 0, -10), LastOccurrence: now,
	}
	for _, p := range []store.Pattern{low, high} {
		if err := s.Patterns().Merge(ctx, p); err != nil {
			t.Fatalf("merge: %v", err)
		}
	}

	// Asking for 0.2 still applies the global 0.6 floor.
	got, err := svc.StressPatterns(ctx, "u1", 0.2)
	if err != nil {
		t.Fatalf("patterns: %v", err)
	}
	if len(got) != 1 || got[0].Signature != "topic=calculus" {
		t.Errorf("surfaced = %+v", got)
	}
}

func TestApplyInterventionRoundTrip(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()

	acks := []store.InterventionAck{
		{UserID: "u1", InterventionID: "i1", Action: "rest_day", RiskLevel: "MEDIUM", Accepted: true},
		{UserID: "u1", InterventionID: "i2", Action: "rest_day", RiskLevel: "MEDIUM", Accepted: false},
		{UserID: "u1", InterventionID: "i3", Action: "add_breaks", RiskLevel: "MEDIUM", Accepted: true},
	}
	for _, ack := range acks {
		if err := svc.ApplyIntervention(ctx, ack); err != nil {
			t.Fatalf("apply: %v", err)
		}
	}

	stats, err := s.Interventions().AcceptanceByAction(ctx, "u1")
	if err != nil {
		t.Fatalf("acceptance: %v", err)
	}
	byAction := map[string]store.AcceptanceStat{}
	for _, st := range stats {
		byAction[st.Action] = st
	}
	if st := byAction["rest_day"]; st.Offered != 2 || st.Accepted != 1 {
		t.Errorf("rest_day = %+v", st)
	}
	if st := byAction["add_breaks"]; st.Offered != 1 || st.Accepted != 1 {
		t.Errorf("add_breaks = %+v", st)
	}
}

func TestRecordSkip(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()

	if err := svc.RecordSkip(ctx, "u1", "algebra"); err != nil {
		t.Fatalf("skip: %v", err)
	}
	rows, err := s.Sessions().ByUser(ctx, "u1", now.Add(-time.Hour), now.Add(time.Hour))
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(rows) != 1 || rows[0].Action != "skip" || !rows[0].Planned {
		t.Errorf("rows = %+v", rows)
	}
}
