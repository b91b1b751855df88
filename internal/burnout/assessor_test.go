package burnout

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/anupamd/studypulse/internal/store"
)

var now = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

func newTestAssessor(t *testing.T) (*Assessor, *store.Store) {
	t.Helper()
	s, err := store.Open("file:" + filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	a := NewAssessor(DefaultConfig(), s.Metrics(), s.Sessions(), s.Assessments(), zerolog.Nop())
	a.now = func() time.Time { return now }
	return a, s
}

// seedDay writes one session and a run of metrics for the day `ago` days
// before now.
func seedDay(t *testing.T, s *store.Store, userID string, ago int, avgLoad float64, correct, total int) {
	t.Helper()
	ctx := context.Background()
	day := now.AddDate(0, 0, -ago)
	sessionID := userID + "-" + day.Format("2006-01-02")

	err := s.Sessions().Append(ctx, store.SessionRecord{
		SessionID: sessionID, UserID: userID, Timestamp: day, Action: "start",
		Topic: "algebra", Planned: true,
	})
	if err != nil {
		t.Fatalf("seed start: %v", err)
	}
	err = s.Sessions().Append(ctx, store.SessionRecord{
		SessionID: sessionID, UserID: userID, Timestamp: day.Add(time.Hour),
		Action: "end", DurationSecs: 3600, Interactions: total, Correct: correct,
		CompletionRatio: 1.0, SelfRating: 3, Topic: "algebra", Planned: true,
	})
	if err != nil {
		t.Fatalf("seed end: %v", err)
	}

	for i := 0; i < 3; i++ {
		err := s.Metrics().Append(ctx, store.LoadMetric{
			SessionID: sessionID, UserID: userID,
			Timestamp: day.Add(time.Duration(i+1) * 10 * time.Minute),
			Score:     avgLoad, Confidence: 0.9,
			Hour: day.Hour(), Weekday: int(day.Weekday()), DaysToExam: -1,
		})
		if err != nil {
			t.Fatalf("seed metric: %v", err)
		}
	}
}

func TestAssessInsufficientData(t *testing.T) {
	a, _ := newTestAssessor(t)

	got, err := a.Assess(context.Background(), "u1")
	if err != nil {
		t.Fatalf("assess: %v", err)
	}
	if !got.InsufficientData {
		t.Error("expected insufficient-data result")
	}
	if got.RiskScore != 0 || got.RiskLevel != LevelLow {
		t.Errorf("got score %v level %s, want 0/LOW", got.RiskScore, got.RiskLevel)
	}
	if len(got.Recommendations) == 0 {
		t.Error("expected an insufficient-data message")
	}
}

// Nine of fourteen days above load 60 plus a 25% week-over-week accuracy
// drop: chronic load charges its full cap and the overall level reaches
// HIGH.
func TestAssessChronicLoadAndDecline(t *testing.T) {
	a, s := newTestAssessor(t)

	// Week 1 (days 13..7 ago): high load, strong accuracy.
	for ago := 13; ago >= 9; ago-- {
		seedDay(t, s, "u1", ago, 70, 16, 20) // 80%
	}
	// Week 2 (days 6..3 ago): still high load, accuracy down 25%.
	for ago := 6; ago >= 3; ago-- {
		seedDay(t, s, "u1", ago, 70, 12, 20) // 60%
	}

	got, err := a.Assess(context.Background(), "u1")
	if err != nil {
		t.Fatalf("assess: %v", err)
	}

	var chronic *store.FactorData
	for i := range got.Factors {
		if got.Factors[i].Name == FactorChronicLoad {
			chronic = &got.Factors[i]
		}
	}
	if chronic == nil {
		t.Fatal("chronic load factor missing")
	}
	if chronic.Contribution < 20 {
		t.Errorf("chronic contribution = %v, want near the %v cap", chronic.Contribution, chronic.Cap)
	}
	if got.RiskLevel != LevelHigh && got.RiskLevel != LevelCritical {
		t.Errorf("RiskLevel = %s (score %v), want HIGH or CRITICAL", got.RiskLevel, got.RiskScore)
	}
}

func TestAssessScoreBounds(t *testing.T) {
	a, s := newTestAssessor(t)

	// Everything maxed: long daily sessions, total collapse in accuracy,
	// constant extreme load, no recovery.
	for ago := 13; ago >= 7; ago-- {
		seedDay(t, s, "u1", ago, 95, 20, 20)
	}
	for ago := 6; ago >= 0; ago-- {
		seedDay(t, s, "u1", ago, 95, 1, 20)
	}

	got, err := a.Assess(context.Background(), "u1")
	if err != nil {
		t.Fatalf("assess: %v", err)
	}
	if got.RiskScore < 0 || got.RiskScore > 100 {
		t.Errorf("RiskScore = %v, out of [0,100]", got.RiskScore)
	}
	for _, f := range got.Factors {
		if f.Cap > 0 && f.Contribution > f.Cap {
			t.Errorf("factor %s contribution %v exceeds cap %v", f.Name, f.Contribution, f.Cap)
		}
	}
}

func TestAssessSameDayIdempotent(t *testing.T) {
	a, s := newTestAssessor(t)
	for ago := 10; ago >= 4; ago-- {
		seedDay(t, s, "u1", ago, 50, 15, 20)
	}
	ctx := context.Background()

	first, err := a.Assess(ctx, "u1")
	if err != nil {
		t.Fatalf("first assess: %v", err)
	}
	second, err := a.Assess(ctx, "u1")
	if err != nil {
		t.Fatalf("second assess: %v", err)
	}

	if first.RiskScore != second.RiskScore || first.Date != second.Date {
		t.Errorf("same-day assessments differ: %v vs %v", first.RiskScore, second.RiskScore)
	}

	n, err := s.Client().BurnoutAssessment.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("assessment rows = %d, want 1", n)
	}
}

func TestOnDemandRateLimit(t *testing.T) {
	a, s := newTestAssessor(t)
	for ago := 10; ago >= 4; ago-- {
		seedDay(t, s, "u1", ago, 50, 15, 20)
	}
	ctx := context.Background()

	first, err := a.AssessOnDemand(ctx, "u1")
	if err != nil {
		t.Fatalf("first on-demand: %v", err)
	}

	a.now = func() time.Time { return now.Add(2 * time.Hour) }
	second, err := a.AssessOnDemand(ctx, "u1")
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("err = %v, want ErrRateLimited", err)
	}
	if second.RiskScore != first.RiskScore || second.Date != first.Date {
		t.Errorf("cached assessment differs: %+v vs %+v", second, first)
	}

	// Past the interval a fresh run goes through.
	a.now = func() time.Time { return now.Add(25 * time.Hour) }
	third, err := a.AssessOnDemand(ctx, "u1")
	if err != nil {
		t.Fatalf("third on-demand: %v", err)
	}
	if third.Date == first.Date {
		t.Errorf("expected a new assessment date, got %s again", third.Date)
	}
}

func TestWarningsAnnotateWithoutScoring(t *testing.T) {
	a, s := newTestAssessor(t)
	// Flat accuracy, no self ratings: plateau + no-help-seeking warnings.
	ctx := context.Background()
	for ago := 12; ago >= 2; ago-- {
		day := now.AddDate(0, 0, -ago)
		sessionID := "s-" + day.Format("2006-01-02")
		if err := s.Sessions().Append(ctx, store.SessionRecord{
			SessionID: sessionID, UserID: "u1", Timestamp: day, Action: "start", Topic: "algebra", Planned: true,
		}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		if err := s.Sessions().Append(ctx, store.SessionRecord{
			SessionID: sessionID, UserID: "u1", Timestamp: day.Add(time.Hour),
			Action: "end", DurationSecs: 1800, Interactions: 20, Correct: 14,
			CompletionRatio: 1.0, Topic: "algebra", Planned: true,
		}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		if err := s.Metrics().Append(ctx, store.LoadMetric{
			SessionID: sessionID, UserID: "u1", Timestamp: day.Add(30 * time.Minute),
			Score: 35, Confidence: 0.9, DaysToExam: -1,
		}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	got, err := a.Assess(ctx, "u1")
	if err != nil {
		t.Fatalf("assess: %v", err)
	}

	warnings := 0
	for _, f := range got.Factors {
		if len(f.Name) > 8 && f.Name[:8] == "warning:" {
			warnings++
			if f.Contribution != 0 {
				t.Errorf("warning %s has contribution %v, want 0", f.Name, f.Contribution)
			}
		}
	}
	if warnings == 0 {
		t.Error("expected at least one warning annotation")
	}
}

func TestLevelForBoundaries(t *testing.T) {
	levels := DefaultConfig().Levels
	tests := []struct {
		score float64
		want  string
	}{
		{0, LevelLow},
		{24.9, LevelLow},
		{25, LevelMedium},
		{49.9, LevelMedium},
		{50, LevelHigh},
		{74.9, LevelHigh},
		{75, LevelCritical},
		{100, LevelCritical},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.score, levels); got != tt.want {
			t.Errorf("LevelFor(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}
