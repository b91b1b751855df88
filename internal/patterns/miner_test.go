package patterns

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/anupamd/studypulse/internal/store"
)

var now = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

func newTestMiner(t *testing.T) (*Miner, *store.Store) {
	t.Helper()
	s, err := store.Open("file:" + filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	m := NewMiner(DefaultConfig(), s.Metrics(), s.Patterns(), zerolog.Nop())
	m.now = func() time.Time { return now }
	return m, s
}

func addMetric(t *testing.T, s *store.Store, ts time.Time, score float64, topic string, daysToExam int) {
	t.Helper()
	err := s.Metrics().Append(context.Background(), store.LoadMetric{
		SessionID:  "s-" + ts.Format("2006-01-02-15"),
		UserID:     "u1",
		Timestamp:  ts,
		Score:      score,
		Confidence: 0.8,
		Topic:      topic,
		Hour:       ts.Hour(),
		Weekday:    int(ts.Weekday()),
		DaysToExam: daysToExam,
	})
	if err != nil {
		t.Fatalf("append metric: %v", err)
	}
}

// Four high-load sessions on one topic create a stored candidate at
// confidence 0.4, below the surfacing floor.
func TestMineBelowFloorNotSurfaced(t *testing.T) {
	m, s := newTestMiner(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		ts := now.AddDate(0, 0, -(i*3 + 2)).Add(time.Duration(i) * time.Hour)
		addMetric(t, s, ts, 72, "physiology", -1)
	}

	surfaced, err := m.Mine(ctx, "u1")
	if err != nil {
		t.Fatalf("mine: %v", err)
	}
	if len(surfaced) != 0 {
		t.Fatalf("surfaced %d patterns, want 0", len(surfaced))
	}

	stored, err := s.Patterns().AllByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("all patterns: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("stored %d patterns, want 1", len(stored))
	}
	p := stored[0]
	if p.Type != TypeTopic || p.Signature != "topic=physiology" {
		t.Errorf("pattern = %s %s, want topic_stress topic=physiology", p.Type, p.Signature)
	}
	if p.Occurrences != 4 || p.Confidence != 0.4 {
		t.Errorf("occurrences %d confidence %v, want 4 / 0.4", p.Occurrences, p.Confidence)
	}
}

func TestMineSurfacesTopicPattern(t *testing.T) {
	m, s := newTestMiner(t)

	for i := 0; i < 7; i++ {
		ts := now.AddDate(0, 0, -(i*2 + 1)).Add(time.Duration(i%4) * time.Hour)
		addMetric(t, s, ts, 80, "calculus", -1)
	}

	surfaced, err := m.Mine(context.Background(), "u1")
	if err != nil {
		t.Fatalf("mine: %v", err)
	}
	if len(surfaced) != 1 {
		t.Fatalf("surfaced %d patterns, want 1", len(surfaced))
	}
	p := surfaced[0]
	if p.Confidence != 0.7 || p.Occurrences != 7 {
		t.Errorf("confidence %v occurrences %d, want 0.7 / 7", p.Confidence, p.Occurrences)
	}
	if p.TriggerConditions["topic"] != "calculus" {
		t.Errorf("trigger conditions = %v", p.TriggerConditions)
	}
	if p.ResponseProfile["mean_load"] != 80 {
		t.Errorf("mean_load = %v, want 80", p.ResponseProfile["mean_load"])
	}
}

// Time-of-day patterns need five corroborating observations where topic
// patterns need three.
func TestMineTimeOfDayMinObservations(t *testing.T) {
	m, s := newTestMiner(t)
	ctx := context.Background()

	lateNight := func(ago int) time.Time {
		return time.Date(2026, 3, 2-ago, 23, 15, 0, 0, time.UTC)
	}
	for i := 1; i <= 4; i++ {
		addMetric(t, s, lateNight(i*2), 75, "", -1)
	}

	if _, err := m.Mine(ctx, "u1"); err != nil {
		t.Fatalf("mine: %v", err)
	}
	stored, _ := s.Patterns().AllByUser(ctx, "u1")
	for _, p := range stored {
		if p.Type == TypeTimeOfDay {
			t.Fatalf("time-of-day pattern stored with only 4 observations")
		}
	}

	for i := 5; i <= 7; i++ {
		addMetric(t, s, lateNight(i*2), 75, "", -1)
	}
	surfaced, err := m.Mine(ctx, "u1")
	if err != nil {
		t.Fatalf("mine: %v", err)
	}
	found := false
	for _, p := range surfaced {
		if p.Type == TypeTimeOfDay && p.Signature == "hour=23" {
			found = true
			if p.Occurrences != 7 {
				t.Errorf("occurrences = %d, want 7", p.Occurrences)
			}
		}
	}
	if !found {
		t.Error("expected an hour=23 time-of-day pattern")
	}
}

func TestMineExamProximity(t *testing.T) {
	m, s := newTestMiner(t)

	for i := 1; i <= 3; i++ {
		ts := now.AddDate(0, 0, -i*2).Add(time.Duration(i) * time.Hour)
		addMetric(t, s, ts, 82, "", 2)
	}

	surfaced, err := m.Mine(context.Background(), "u1")
	if err != nil {
		t.Fatalf("mine: %v", err)
	}
	if len(surfaced) != 0 {
		t.Fatalf("surfaced %d patterns below frequency floor", len(surfaced))
	}
	stored, _ := s.Patterns().AllByUser(context.Background(), "u1")
	found := false
	for _, p := range stored {
		if p.Type == TypeExamProximity && p.Signature == "days_to_exam<=3" {
			found = true
		}
	}
	if !found {
		t.Error("expected a days_to_exam<=3 pattern in the store")
	}
}

func TestMineIdempotent(t *testing.T) {
	m, s := newTestMiner(t)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		ts := now.AddDate(0, 0, -(i*2 + 1)).Add(time.Duration(i%3) * time.Hour)
		addMetric(t, s, ts, 78, "organic-chem", -1)
	}

	first, err := m.Mine(ctx, "u1")
	if err != nil {
		t.Fatalf("first mine: %v", err)
	}
	second, err := m.Mine(ctx, "u1")
	if err != nil {
		t.Fatalf("second mine: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("pattern count changed across runs: %d vs %d", len(first), len(second))
	}
	stored, _ := s.Patterns().AllByUser(ctx, "u1")
	if len(stored) != 1 {
		t.Fatalf("stored %d patterns, want 1", len(stored))
	}
	if stored[0].Occurrences != 6 {
		t.Errorf("occurrences = %d after re-run, want 6", stored[0].Occurrences)
	}
}

func TestMineConfidenceNonDecreasing(t *testing.T) {
	m, s := newTestMiner(t)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		ts := now.AddDate(0, 0, -(i*3 + 10)).Add(time.Duration(i%3) * time.Hour)
		addMetric(t, s, ts, 78, "statistics", -1)
	}
	if _, err := m.Mine(ctx, "u1"); err != nil {
		t.Fatalf("first mine: %v", err)
	}
	before, _ := s.Patterns().AllByUser(ctx, "u1")

	for i := 0; i < 6; i++ {
		ts := now.AddDate(0, 0, -(i*3 + 11)).Add(time.Duration(i%3) * time.Hour)
		addMetric(t, s, ts, 78, "statistics", -1)
	}
	if _, err := m.Mine(ctx, "u1"); err != nil {
		t.Fatalf("second mine: %v", err)
	}
	after, _ := s.Patterns().AllByUser(ctx, "u1")

	if after[0].Confidence < before[0].Confidence {
		t.Errorf("confidence decreased: %v -> %v", before[0].Confidence, after[0].Confidence)
	}
	if after[0].Confidence > m.cfg.ConfidenceCap {
		t.Errorf("confidence %v exceeds cap %v", after[0].Confidence, m.cfg.ConfidenceCap)
	}
}

func TestBuildProfile(t *testing.T) {
	surfaced := []store.Pattern{
		{Type: TypeTopic, Signature: "topic=calculus", Confidence: 0.9,
			ResponseProfile: map[string]float64{"mean_load": 82, "recovery_hours": 4}},
		{Type: TypeTimeOfDay, Signature: "hour=23", Confidence: 0.8,
			ResponseProfile: map[string]float64{"mean_load": 68, "recovery_hours": 8}},
		{Type: TypeDayOfWeek, Signature: "weekday=monday", Confidence: 0.7,
			ResponseProfile: map[string]float64{"mean_load": 71}},
		{Type: TypeTopic, Signature: "topic=physics", Confidence: 0.6,
			ResponseProfile: map[string]float64{"mean_load": 66}},
	}
	acks := []store.AcceptanceStat{
		{Action: "rest_day", Offered: 4, Accepted: 3},
		{Action: "reduce_workload", Offered: 3, Accepted: 1},
		{Action: "add_breaks", Offered: 1, Accepted: 1},
	}

	profile := BuildProfile(surfaced, acks)

	if len(profile.PrimaryStressors) != 3 {
		t.Fatalf("primary stressors = %d, want 3", len(profile.PrimaryStressors))
	}
	if profile.PrimaryStressors[0].Signature != "topic=calculus" {
		t.Errorf("top stressor = %s", profile.PrimaryStressors[0].Signature)
	}
	if profile.LoadTolerance != 66 {
		t.Errorf("load tolerance = %v, want 66", profile.LoadTolerance)
	}
	if profile.AvgRecoveryHours != 6 {
		t.Errorf("avg recovery = %v, want 6", profile.AvgRecoveryHours)
	}
	if len(profile.EffectiveCoping) != 1 || profile.EffectiveCoping[0] != "rest_day" {
		t.Errorf("effective coping = %v, want [rest_day]", profile.EffectiveCoping)
	}
}

func TestBuildProfileEmpty(t *testing.T) {
	profile := BuildProfile(nil, nil)
	if profile.LoadTolerance != defaultLoadTolerance {
		t.Errorf("load tolerance = %v, want default %v", profile.LoadTolerance, defaultLoadTolerance)
	}
	if len(profile.PrimaryStressors) != 0 || len(profile.EffectiveCoping) != 0 {
		t.Errorf("empty profile has content: %+v", profile)
	}
}
