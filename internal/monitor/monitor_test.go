package monitor

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/anupamd/studypulse/internal/events"
	"github.com/anupamd/studypulse/internal/load"
	"github.com/anupamd/studypulse/internal/store"
)

var now = time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open("file:" + filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func startedMonitor(t *testing.T, s *store.Store) *Monitor {
	t.Helper()
	m := NewMonitor(load.DefaultConfig(), s.Metrics(), s.Sessions(), zerolog.Nop(), SessionInfo{
		UserID:     "u1",
		Topic:      "algebra",
		DaysToExam: -1,
		Planned:    true,
	})
	m.now = func() time.Time { return now }
	if err := m.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	return m
}

func observeResponses(t *testing.T, m *Monitor, n int, correct bool) {
	t.Helper()
	for i := 0; i < n; i++ {
		ev := events.ResponseEvent{
			Timestamp: now.Add(time.Duration(i+1) * 20 * time.Second),
			ItemID:    "item-" + string(rune('a'+i)),
			Correct:   correct,
			LatencyMs: 2000,
		}
		if err := m.Observe(ev); err != nil {
			t.Fatalf("observe: %v", err)
		}
	}
}

func TestTickPersistsMetric(t *testing.T) {
	s := openTestStore(t)
	m := startedMonitor(t, s)
	ctx := context.Background()

	observeResponses(t, m, 6, true)
	m.now = func() time.Time { return now.Add(5 * time.Minute) }

	status, err := m.Tick(ctx)
	if err != nil {
		t.Fatalf("tick: %v", err)
	}
	if status.InsufficientData {
		t.Error("six events should clear the minimum")
	}
	if status.Estimate.Score < 0 || status.Estimate.Score > 100 {
		t.Errorf("score %v out of range", status.Estimate.Score)
	}

	stored, err := s.Metrics().BySession(ctx, m.SessionID())
	if err != nil {
		t.Fatalf("query metrics: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("stored %d metrics, want 1", len(stored))
	}
	if stored[0].Score != status.Estimate.Score || stored[0].Topic != "algebra" {
		t.Errorf("stored metric = %+v", stored[0])
	}
}

func TestTickBeforeMinEventsUsesDefault(t *testing.T) {
	s := openTestStore(t)
	m := startedMonitor(t, s)

	observeResponses(t, m, 2, true)
	m.now = func() time.Time { return now.Add(5 * time.Minute) }

	status, err := m.Tick(context.Background())
	if err != nil {
		t.Fatalf("tick: %v", err)
	}
	if !status.InsufficientData {
		t.Error("expected the sparse-window default")
	}
	if status.Estimate.Score != load.DefaultConfig().DefaultScore {
		t.Errorf("score = %v, want default", status.Estimate.Score)
	}
}

// Stale events are dropped without failing the caller.
func TestObserveDropsStaleEvent(t *testing.T) {
	s := openTestStore(t)
	m := startedMonitor(t, s)

	observeResponses(t, m, 3, true)
	stale := events.ResponseEvent{
		Timestamp: now.Add(-time.Minute),
		ItemID:    "late",
		Correct:   true,
		LatencyMs: 1000,
	}
	if err := m.Observe(stale); err != nil {
		t.Fatalf("stale event should not error, got %v", err)
	}
}

func TestCumulativeShiftCapped(t *testing.T) {
	s := openTestStore(t)
	m := startedMonitor(t, s)
	ctx := context.Background()

	observeResponses(t, m, 8, true)
	for i := 1; i <= 4; i++ {
		m.now = func() time.Time { return now.Add(time.Duration(i) * 5 * time.Minute) }
		if _, err := m.Tick(ctx); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if shift := m.CumulativeShift(); shift > 2 || shift < -2 {
			t.Fatalf("cumulative shift %d escaped the cap", shift)
		}
	}
}

func TestEndRecordsSessionSummary(t *testing.T) {
	s := openTestStore(t)
	m := startedMonitor(t, s)
	ctx := context.Background()

	observeResponses(t, m, 6, true)
	m.now = func() time.Time { return now.Add(30 * time.Minute) }
	if err := m.End(ctx, 0.9, 4); err != nil {
		t.Fatalf("end: %v", err)
	}
	// A second End is a no-op.
	if err := m.End(ctx, 0.9, 4); err != nil {
		t.Fatalf("repeat end: %v", err)
	}

	rows, err := s.Sessions().ByUser(ctx, "u1", now.Add(-time.Hour), now.Add(time.Hour))
	if err != nil {
		t.Fatalf("query sessions: %v", err)
	}
	var ends int
	for _, r := range rows {
		if r.Action == "end" {
			ends++
			if r.Interactions != 6 || r.Correct != 6 {
				t.Errorf("end row = %+v", r)
			}
			if r.DurationSecs != 1800 {
				t.Errorf("duration = %d, want 1800", r.DurationSecs)
			}
			if r.CompletionRatio != 0.9 || r.SelfRating != 4 {
				t.Errorf("end row = %+v", r)
			}
		}
	}
	if ends != 1 {
		t.Fatalf("end rows = %d, want 1", ends)
	}
}
