package events

import (
	"errors"
	"testing"
	"time"
)

var t0 = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func response(offset time.Duration, item string, correct bool, latencyMs int) ResponseEvent {
	return ResponseEvent{
		Timestamp: t0.Add(offset),
		ItemID:    item,
		Correct:   correct,
		LatencyMs: latencyMs,
	}
}

func TestAppendRejectsStaleEvents(t *testing.T) {
	w := NewWindow("s1", "u1", "algebra", -1, t0)

	if err := w.Append(response(10*time.Second, "q1", true, 1000)); err != nil {
		t.Fatalf("append: %v", err)
	}

	// Same timestamp and earlier timestamp must both be dropped.
	for _, offset := range []time.Duration{10 * time.Second, 5 * time.Second} {
		err := w.Append(response(offset, "q2", true, 1000))
		if !errors.Is(err, ErrStaleEvent) {
			t.Errorf("offset %v: got %v, want ErrStaleEvent", offset, err)
		}
	}

	if w.EventCount() != 1 {
		t.Errorf("EventCount = %d, want 1", w.EventCount())
	}
	if w.Dropped() != 2 {
		t.Errorf("Dropped = %d, want 2", w.Dropped())
	}
}

func TestTrailingErrorRate(t *testing.T) {
	w := NewWindow("s1", "u1", "", -1, t0)

	// 15 responses: first 5 correct, then 10 wrong. Trailing window of 10
	// should report 100% errors.
	for i := 0; i < 5; i++ {
		mustAppend(t, w, response(time.Duration(i+1)*time.Second, "q", true, 1000))
	}
	for i := 5; i < 15; i++ {
		mustAppend(t, w, response(time.Duration(i+1)*time.Second, "q", false, 1000))
	}

	if got := w.TrailingErrorRate(); got != 1.0 {
		t.Errorf("TrailingErrorRate = %v, want 1.0", got)
	}
	if got := w.ConsecutiveIncorrect(); got != 10 {
		t.Errorf("ConsecutiveIncorrect = %d, want 10", got)
	}
	// Baseline accuracy froze over the first 10 responses: 5 of 10.
	if got := w.BaselineAccuracy(); got != 0.5 {
		t.Errorf("BaselineAccuracy = %v, want 0.5", got)
	}
}

func TestRepeatFailureTracking(t *testing.T) {
	w := NewWindow("s1", "u1", "", -1, t0)

	mustAppend(t, w, response(1*time.Second, "q7", false, 1000))
	mustAppend(t, w, response(2*time.Second, "q7", false, 1100))
	mustAppend(t, w, response(3*time.Second, "q7", false, 1200))
	if got := w.MaxRepeatFailures(); got != 3 {
		t.Errorf("MaxRepeatFailures = %d, want 3", got)
	}

	// A correct answer resets the item's failure count but the session
	// max already observed stays.
	mustAppend(t, w, response(4*time.Second, "q7", true, 900))
	mustAppend(t, w, response(5*time.Second, "q7", false, 1000))
	if got := w.MaxRepeatFailures(); got != 3 {
		t.Errorf("MaxRepeatFailures after reset = %d, want 3", got)
	}
}

func TestLatencyAggregates(t *testing.T) {
	w := NewWindow("s1", "u1", "", -1, t0)

	latencies := []int{1000, 1000, 1000, 1000, 2000}
	for i, l := range latencies {
		mustAppend(t, w, response(time.Duration(i+1)*time.Second, "q", true, l))
	}

	if got, want := w.BaselineLatency(), 1200.0; got != want {
		t.Errorf("BaselineLatency = %v, want %v", got, want)
	}
	if got, want := w.RecentLatency(), 1200.0; got != want {
		t.Errorf("RecentLatency = %v, want %v", got, want)
	}
	if w.LatencyStdDev() <= 0 {
		t.Errorf("LatencyStdDev = %v, want > 0", w.LatencyStdDev())
	}
	if got := w.LastLatency(); got != 2000 {
		t.Errorf("LastLatency = %d, want 2000", got)
	}
}

func TestPauseTracking(t *testing.T) {
	w := NewWindow("s1", "u1", "", -1, t0)

	// Three pauses early, three pauses much later. Only the recent three
	// fall inside the 10-minute lookback.
	for i := 0; i < 3; i++ {
		mustAppend(t, w, PauseEvent{Timestamp: t0.Add(time.Duration(i+1) * time.Minute), Duration: 30 * time.Second})
	}
	for i := 0; i < 3; i++ {
		mustAppend(t, w, PauseEvent{Timestamp: t0.Add(30*time.Minute + time.Duration(i)*time.Minute), Duration: 30 * time.Second})
	}

	if got := w.PauseCount(); got != 6 {
		t.Errorf("PauseCount = %d, want 6", got)
	}
	if got := w.RecentPauseCount(); got != 3 {
		t.Errorf("RecentPauseCount = %d, want 3", got)
	}
	if got, want := w.TotalPauseDuration(), 3*time.Minute; got != want {
		t.Errorf("TotalPauseDuration = %v, want %v", got, want)
	}
}

func TestAbandonment(t *testing.T) {
	w := NewWindow("s1", "u1", "", -1, t0)
	mustAppend(t, w, response(1*time.Second, "q", true, 1000))
	mustAppend(t, w, AbandonEvent{Timestamp: t0.Add(2 * time.Second), CompletionRatio: 0.4})

	if !w.Abandoned() {
		t.Error("Abandoned = false, want true")
	}
	if got := w.CompletionRatio(); got != 0.4 {
		t.Errorf("CompletionRatio = %v, want 0.4", got)
	}
}

func mustAppend(t *testing.T, w *Window, ev Event) {
	t.Helper()
	if err := w.Append(ev); err != nil {
		t.Fatalf("append: %v", err)
	}
}
