package load

import (
	"errors"
	"testing"
	"time"

	"github.com/anupamd/studypulse/internal/events"
)

var t0 = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func newWindow() *events.Window {
	return events.NewWindow("s1", "u1", "algebra", -1, t0)
}

func appendResponse(t *testing.T, w *events.Window, offset time.Duration, item string, correct bool, latencyMs int) {
	t.Helper()
	err := w.Append(events.ResponseEvent{
		Timestamp: t0.Add(offset),
		ItemID:    item,
		Correct:   correct,
		LatencyMs: latencyMs,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
}

func TestEstimateEmptyWindowDefault(t *testing.T) {
	e := NewEstimator(DefaultConfig())
	est, err := e.Estimate(newWindow())

	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("err = %v, want ErrInsufficientData", err)
	}
	if est.Score != 30 {
		t.Errorf("Score = %v, want 30", est.Score)
	}
	if est.Confidence > 0.3 {
		t.Errorf("Confidence = %v, want <= 0.3", est.Confidence)
	}
}

func TestEstimateSparseWindowDefault(t *testing.T) {
	e := NewEstimator(DefaultConfig())
	w := newWindow()
	for i := 0; i < 4; i++ {
		appendResponse(t, w, time.Duration(i+1)*time.Second, "q", false, 1000)
	}

	est, err := e.Estimate(w)
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("err = %v, want ErrInsufficientData", err)
	}
	if est.Score != 30 || est.Confidence > 0.3 {
		t.Errorf("got score %v confidence %v, want default 30 / <=0.3", est.Score, est.Confidence)
	}
}

// Steady performance, 20 minutes, no errors, flat latency: low load.
func TestEstimateCalmSession(t *testing.T) {
	e := NewEstimator(DefaultConfig())
	w := newWindow()
	for i := 0; i < 20; i++ {
		appendResponse(t, w, time.Duration(i+1)*time.Minute, "q", true, 1500)
	}

	est, err := e.Estimate(w)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if est.Score >= 30 {
		t.Errorf("Score = %v, want < 30", est.Score)
	}
	if est.Confidence < 0.7 {
		t.Errorf("Confidence = %v, want >= 0.7", est.Confidence)
	}
}

// A collapsing session: strong start, then 10 consecutive wrong answers
// with slowing responses and pile-ups of pauses, 95 minutes in. Every
// factor fires and the score lands above the overload band.
func TestEstimateOverloadedSession(t *testing.T) {
	e := NewEstimator(DefaultConfig())
	w := newWindow()

	// Baseline: 10 quick correct answers over the first 80 minutes.
	for i := 0; i < 10; i++ {
		appendResponse(t, w, time.Duration(i+1)*8*time.Minute, "warm", true, 1000)
	}
	// Collapse: 10 consecutive incorrect, latency doubled, pauses piling
	// up, ending past the 90-minute mark.
	base := 81 * time.Minute
	for i := 0; i < 10; i++ {
		offset := base + time.Duration(i)*90*time.Second
		appendResponse(t, w, offset, "hard", false, 2400)
		if err := w.Append(events.PauseEvent{
			Timestamp: t0.Add(offset + 30*time.Second),
			Duration:  75 * time.Second,
		}); err != nil {
			t.Fatalf("append pause: %v", err)
		}
	}

	est, err := e.Estimate(w)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if est.Score <= 80 {
		t.Errorf("Score = %v, want > 80", est.Score)
	}
	if len(est.Factors) != 5 {
		t.Fatalf("Factors = %d, want 5", len(est.Factors))
	}
	for _, f := range est.Factors {
		if f.Raw < 0 || f.Raw > 100 {
			t.Errorf("factor %s raw = %v, out of [0,100]", f.Name, f.Raw)
		}
	}
}

// Monotonicity: more errors, everything else fixed, never lowers the score.
func TestEstimateErrorRateMonotonic(t *testing.T) {
	prevScore := -1.0
	for wrong := 0; wrong <= 10; wrong++ {
		e := NewEstimator(DefaultConfig())
		w := newWindow()
		for i := 0; i < 10; i++ {
			correct := i >= wrong
			appendResponse(t, w, time.Duration(i+1)*time.Minute, "q", correct, 1000)
		}
		est, err := e.Estimate(w)
		if err != nil {
			t.Fatalf("wrong=%d: %v", wrong, err)
		}
		if est.Score < prevScore {
			t.Errorf("wrong=%d: score %v < previous %v", wrong, est.Score, prevScore)
		}
		prevScore = est.Score
	}
}

func TestEstimateScoreBounds(t *testing.T) {
	e := NewEstimator(DefaultConfig())
	w := newWindow()
	// Worst case everything.
	for i := 0; i < 10; i++ {
		appendResponse(t, w, time.Duration(i+1)*time.Minute, "warm", true, 500)
	}
	for i := 0; i < 30; i++ {
		offset := time.Duration(70+i*3) * time.Minute
		appendResponse(t, w, offset, "q", false, 5000)
		if err := w.Append(events.PauseEvent{Timestamp: t0.Add(offset + time.Minute), Duration: 2 * time.Minute}); err != nil {
			t.Fatalf("append pause: %v", err)
		}
	}

	est, err := e.Estimate(w)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if est.Score < 0 || est.Score > 100 {
		t.Errorf("Score = %v, out of [0,100]", est.Score)
	}
	if est.Confidence < 0 || est.Confidence > 1 {
		t.Errorf("Confidence = %v, out of [0,1]", est.Confidence)
	}
}

func TestEstimateBudgetFallback(t *testing.T) {
	e := NewEstimator(DefaultConfig())
	w := newWindow()
	for i := 0; i < 10; i++ {
		appendResponse(t, w, time.Duration(i+1)*time.Minute, "q", true, 1000)
	}

	first, err := e.Estimate(w)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}

	// Make the clock jump past the budget between start and the check.
	calls := 0
	e.now = func() time.Time {
		calls++
		if calls > 1 {
			return time.Now().Add(500 * time.Millisecond)
		}
		return time.Now()
	}

	second, err := e.Estimate(w)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if !second.Fallback {
		t.Fatal("expected fallback estimate")
	}
	if second.Score != first.Score {
		t.Errorf("fallback score = %v, want previous %v", second.Score, first.Score)
	}
	if second.Confidence != first.Confidence*0.5 {
		t.Errorf("fallback confidence = %v, want %v", second.Confidence, first.Confidence*0.5)
	}
}

func TestEstimateConfidenceDegradesWithEstimatedInputs(t *testing.T) {
	e := NewEstimator(DefaultConfig())
	w := newWindow()
	for i := 0; i < 10; i++ {
		err := w.Append(events.ResponseEvent{
			Timestamp: t0.Add(time.Duration(i+1) * time.Minute),
			ItemID:    "q",
			Correct:   true,
			LatencyMs: 1000,
			Estimated: true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	est, err := e.Estimate(w)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if est.Confidence >= 1.0 {
		t.Errorf("Confidence = %v, want < 1.0 with estimated inputs", est.Confidence)
	}
}

func TestLevelFor(t *testing.T) {
	bands := DefaultConfig().Bands
	tests := []struct {
		score float64
		want  string
	}{
		{0, "low"},
		{29.9, "low"},
		{30, "moderate"},
		{59.9, "moderate"},
		{60, "high"},
		{79.9, "high"},
		{80, "overload"},
		{100, "overload"},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.score, bands); got != tt.want {
			t.Errorf("LevelFor(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
