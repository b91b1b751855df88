package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"
)

var t0 = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file:" + filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestMetricAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.Metrics()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.Append(ctx, LoadMetric{
			SessionID:  "s1",
			UserID:     "u1",
			Timestamp:  t0.Add(time.Duration(i) * 5 * time.Minute),
			Score:      float64(40 + i*10),
			Confidence: 0.9,
			Topic:      "algebra",
			Hour:       9,
			Weekday:    1,
			DaysToExam: -1,
			Indicators: []IndicatorData{
				{Type: "ERROR_CLUSTER", Severity: "HIGH", Contribution: 0.5},
			},
		})
		if err != nil {
			t.Fatalf("append metric %d: %v", i, err)
		}
	}

	got, err := repo.ByUser(ctx, "u1", t0.Add(-time.Hour), t0.Add(time.Hour))
	if err != nil {
		t.Fatalf("by user: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d metrics, want 3", len(got))
	}
	// Ascending timestamp order.
	for i := 1; i < len(got); i++ {
		if !got[i].Timestamp.After(got[i-1].Timestamp) {
			t.Errorf("metrics out of order at %d", i)
		}
	}
	if got[0].Score != 40 || got[2].Score != 60 {
		t.Errorf("scores = %v, %v; want 40, 60", got[0].Score, got[2].Score)
	}
	if len(got[0].Indicators) != 1 || got[0].Indicators[0].Type != "ERROR_CLUSTER" {
		t.Errorf("indicators not round-tripped: %+v", got[0].Indicators)
	}
}

func TestMetricRecentAscending(t *testing.T) {
	s := openTestStore(t)
	repo := s.Metrics()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := repo.Append(ctx, LoadMetric{
			SessionID: "s1", UserID: "u1",
			Timestamp: t0.Add(time.Duration(i) * time.Minute),
			Score:     float64(i),
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.Recent(ctx, "u1", 3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d, want 3", len(got))
	}
	if got[0].Score != 2 || got[2].Score != 4 {
		t.Errorf("recent = %v..%v, want 2..4 ascending", got[0].Score, got[2].Score)
	}
}

func TestAssessmentUpsertIdempotent(t *testing.T) {
	s := openTestStore(t)
	repo := s.Assessments()
	ctx := context.Background()

	a := Assessment{
		UserID:    "u1",
		Date:      "2026-03-02",
		RiskScore: 55,
		RiskLevel: "HIGH",
		Factors: []FactorData{
			{Name: "chronic_high_load", Contribution: 20, Cap: 25},
		},
		Recommendations: []string{"reduce workload"},
	}
	if err := repo.Upsert(ctx, a); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	// Second upsert for the same key updates in place.
	a.RiskScore = 60
	if err := repo.Upsert(ctx, a); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := repo.Get(ctx, "u1", "2026-03-02")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("assessment not found")
	}
	if got.RiskScore != 60 {
		t.Errorf("RiskScore = %v, want 60", got.RiskScore)
	}

	n, err := s.Client().BurnoutAssessment.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("row count = %d, want 1", n)
	}
}

func TestAssessmentLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.Assessments()
	ctx := context.Background()

	for _, date := range []string{"2026-02-23", "2026-03-02"} {
		err := repo.Upsert(ctx, Assessment{UserID: "u1", Date: date, RiskScore: 10, RiskLevel: "LOW"})
		if err != nil {
			t.Fatalf("upsert %s: %v", date, err)
		}
	}

	got, err := repo.Latest(ctx, "u1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got == nil || got.Date != "2026-03-02" {
		t.Errorf("latest = %+v, want date 2026-03-02", got)
	}
}

func TestPatternMergeKeepsConfidenceAndFirstSeen(t *testing.T) {
	s := openTestStore(t)
	repo := s.Patterns()
	ctx := context.Background()

	first := Pattern{
		UserID:            "u1",
		Type:              "TOPIC_SPECIFIC",
		Signature:         "topic:physiology",
		TriggerConditions: map[string]string{"topic": "physiology"},
		ResponseProfile:   map[string]float64{"mean_load": 72},
		Occurrences:       4,
		Confidence:        0.4,
		FirstDetectedAt:   t0,
		LastOccurrence:    t0,
	}
	if err := repo.Merge(ctx, first); err != nil {
		t.Fatalf("merge: %v", err)
	}

	// A re-mine reporting lower confidence must not lower the stored one.
	second := first
	second.Occurrences = 5
	second.Confidence = 0.3
	second.LastOccurrence = t0.Add(24 * time.Hour)
	if err := repo.Merge(ctx, second); err != nil {
		t.Fatalf("second merge: %v", err)
	}

	all, err := repo.AllByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("got %d patterns, want 1 merged", len(all))
	}
	p := all[0]
	if p.Confidence != 0.4 {
		t.Errorf("Confidence = %v, want 0.4 preserved", p.Confidence)
	}
	if p.Occurrences != 5 {
		t.Errorf("Occurrences = %d, want 5", p.Occurrences)
	}
	if !p.FirstDetectedAt.Equal(t0) {
		t.Errorf("FirstDetectedAt = %v, want %v", p.FirstDetectedAt, t0)
	}
	if !p.LastOccurrence.Equal(t0.Add(24 * time.Hour)) {
		t.Errorf("LastOccurrence = %v, want advanced", p.LastOccurrence)
	}
}

func TestPatternSurfacingFloors(t *testing.T) {
	s := openTestStore(t)
	repo := s.Patterns()
	ctx := context.Background()

	patterns := []Pattern{
		{UserID: "u1", Type: "TOPIC_SPECIFIC", Signature: "topic:a", Occurrences: 4, Confidence: 0.4, FirstDetectedAt: t0, LastOccurrence: t0},
		{UserID: "u1", Type: "TOPIC_SPECIFIC", Signature: "topic:b", Occurrences: 8, Confidence: 0.8, FirstDetectedAt: t0, LastOccurrence: t0},
		{UserID: "u1", Type: "TIME_OF_DAY", Signature: "hour:22", Occurrences: 2, Confidence: 0.9, FirstDetectedAt: t0, LastOccurrence: t0},
	}
	for _, p := range patterns {
		if err := repo.Merge(ctx, p); err != nil {
			t.Fatalf("merge %s: %v", p.Signature, err)
		}
	}

	got, err := repo.ByUser(ctx, "u1", 0.6, 3)
	if err != nil {
		t.Fatalf("by user: %v", err)
	}
	if len(got) != 1 || got[0].Signature != "topic:b" {
		t.Errorf("surfaced = %+v, want only topic:b", got)
	}
}

func TestInterventionAcceptance(t *testing.T) {
	s := openTestStore(t)
	repo := s.Interventions()
	ctx := context.Background()

	acks := []InterventionAck{
		{UserID: "u1", InterventionID: "i1", Action: "rest-day", RiskLevel: "MEDIUM", Accepted: true},
		{UserID: "u1", InterventionID: "i2", Action: "rest-day", RiskLevel: "MEDIUM", Accepted: false},
		{UserID: "u1", InterventionID: "i3", Action: "reduce-workload", RiskLevel: "HIGH", Accepted: true},
	}
	for _, ack := range acks {
		if err := repo.Append(ctx, ack); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	stats, err := repo.AcceptanceByAction(ctx, "u1")
	if err != nil {
		t.Fatalf("acceptance: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d actions, want 2", len(stats))
	}
	// Sorted by action name.
	if stats[0].Action != "reduce-workload" || stats[0].Accepted != 1 {
		t.Errorf("stats[0] = %+v", stats[0])
	}
	if stats[1].Action != "rest-day" || stats[1].Offered != 2 || stats[1].Accepted != 1 {
		t.Errorf("stats[1] = %+v", stats[1])
	}
}

func TestSessionRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	err := repo.Append(ctx, SessionRecord{
		SessionID: "s1", UserID: "u1", Timestamp: t0, Action: "start",
		Topic: "algebra", Planned: true,
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}
	err = repo.Append(ctx, SessionRecord{
		SessionID: "s1", UserID: "u1", Timestamp: t0.Add(45 * time.Minute),
		Action: "end", DurationSecs: 2700, Interactions: 30, Correct: 24,
		CompletionRatio: 1.0, SelfRating: 4, Topic: "algebra", Planned: true,
	})
	if err != nil {
		t.Fatalf("append end: %v", err)
	}

	got, err := repo.ByUser(ctx, "u1", t0.Add(-time.Hour), t0.Add(time.Hour))
	if err != nil {
		t.Fatalf("by user: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2", len(got))
	}
	if got[1].Action != "end" || got[1].SelfRating != 4 {
		t.Errorf("end row = %+v", got[1])
	}
}

func TestSessionUsersDistinct(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	for i, userID := range []string{"u1", "u1", "u2"} {
		err := repo.Append(ctx, SessionRecord{
			SessionID: fmt.Sprintf("s%d", i), UserID: userID,
			Timestamp: t0.Add(time.Duration(i) * time.Minute), Action: "start",
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	users, err := repo.Users(ctx)
	if err != nil {
		t.Fatalf("users: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("got %d users, want 2: %v", len(users), users)
	}
}
