package stress

import (
	"testing"
	"time"

	"github.com/anupamd/studypulse/internal/events"
)

var t0 = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

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

func indicatorOf(indicators []Indicator, typ IndicatorType) (Indicator, bool) {
	for _, ind := range indicators {
		if ind.Type == typ {
			return ind, true
		}
	}
	return Indicator{}, false
}

func TestDetectCleanWindow(t *testing.T) {
	w := events.NewWindow("s1", "u1", "", -1, t0)
	for i := 0; i < 10; i++ {
		appendResponse(t, w, time.Duration(i+1)*time.Minute, "q", true, 1000)
	}
	if got := Detect(w); len(got) != 0 {
		t.Errorf("Detect = %v, want no indicators", got)
	}
}

func TestErrorClusterSeverity(t *testing.T) {
	tests := []struct {
		wrong    int
		fires    bool
		severity Severity
	}{
		{2, false, ""},
		{3, true, SeverityMedium},
		{4, true, SeverityMedium},
		{5, true, SeverityHigh},
		{10, true, SeverityHigh},
	}

	for _, tt := range tests {
		w := events.NewWindow("s1", "u1", "", -1, t0)
		for i := 0; i < tt.wrong; i++ {
			// Distinct items so repeat-failure stays quiet.
			appendResponse(t, w, time.Duration(i+1)*time.Minute, itemID(i), false, 1000)
		}

		ind, ok := (&ErrorClusterDetector{}).Detect(w)
		if ok != tt.fires {
			t.Errorf("wrong=%d: fired=%v, want %v", tt.wrong, ok, tt.fires)
			continue
		}
		if ok && ind.Severity != tt.severity {
			t.Errorf("wrong=%d: severity=%s, want %s", tt.wrong, ind.Severity, tt.severity)
		}
	}
}

func TestLatencySpike(t *testing.T) {
	w := events.NewWindow("s1", "u1", "", -1, t0)
	// Varied but stable latencies, then one extreme outlier.
	latencies := []int{
		900, 1000, 1100, 950, 1050, 1000, 980, 1020,
		1010, 990, 960, 1040, 1000, 970, 1030,
	}
	for i, l := range latencies {
		appendResponse(t, w, time.Duration(i+1)*time.Minute, "q", true, l)
	}
	appendResponse(t, w, 16*time.Minute, "q", true, 6000)

	ind, ok := (&LatencySpikeDetector{}).Detect(w)
	if !ok {
		t.Fatal("expected latency spike")
	}
	if ind.Severity != SeverityHigh {
		t.Errorf("severity = %s, want HIGH", ind.Severity)
	}
}

func TestLatencySpikeNeedsSamples(t *testing.T) {
	w := events.NewWindow("s1", "u1", "", -1, t0)
	appendResponse(t, w, 1*time.Minute, "q", true, 1000)
	appendResponse(t, w, 2*time.Minute, "q", true, 9000)

	if _, ok := (&LatencySpikeDetector{}).Detect(w); ok {
		t.Error("spike fired below the minimum sample size")
	}
}

func TestRepeatFailure(t *testing.T) {
	w := events.NewWindow("s1", "u1", "", -1, t0)
	for i := 0; i < 3; i++ {
		appendResponse(t, w, time.Duration(i+1)*time.Minute, "stuck", false, 1000)
	}

	ind, ok := (&RepeatFailureDetector{}).Detect(w)
	if !ok {
		t.Fatal("expected repeat failure")
	}
	if ind.Severity != SeverityMedium {
		t.Errorf("severity = %s, want MEDIUM", ind.Severity)
	}
}

func TestEngagementDrop(t *testing.T) {
	w := events.NewWindow("s1", "u1", "", -1, t0)
	for i := 0; i < 5; i++ {
		err := w.Append(events.PauseEvent{
			Timestamp: t0.Add(time.Duration(i+1) * time.Minute),
			Duration:  20 * time.Second,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	ind, ok := (&EngagementDropDetector{}).Detect(w)
	if !ok {
		t.Fatal("expected engagement drop")
	}
	if ind.Severity != SeverityHigh {
		t.Errorf("severity = %s, want HIGH", ind.Severity)
	}
}

func TestAbandonment(t *testing.T) {
	w := events.NewWindow("s1", "u1", "", -1, t0)
	appendResponse(t, w, 1*time.Minute, "q", true, 1000)
	err := w.Append(events.AbandonEvent{Timestamp: t0.Add(2 * time.Minute), CompletionRatio: 0.3})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	ind, ok := (&AbandonmentDetector{}).Detect(w)
	if !ok {
		t.Fatal("expected abandonment signal")
	}
	if ind.Severity != SeverityHigh {
		t.Errorf("severity = %s, want HIGH for partial completion", ind.Severity)
	}
}

func TestOverloaded(t *testing.T) {
	high := Indicator{Type: TypeErrorCluster, Severity: SeverityHigh}
	med := Indicator{Type: TypeEngagementDrop, Severity: SeverityMedium}

	tests := []struct {
		name       string
		score      float64
		indicators []Indicator
		want       bool
	}{
		{"calm", 40, nil, false},
		{"score above band", 81, nil, true},
		{"score at band", 80, nil, false},
		{"one high", 50, []Indicator{high}, false},
		{"two high", 50, []Indicator{high, {Type: TypeLatencySpike, Severity: SeverityHigh}}, true},
		{"high plus medium", 50, []Indicator{high, med}, false},
	}

	for _, tt := range tests {
		if got := Overloaded(tt.score, 80, tt.indicators); got != tt.want {
			t.Errorf("%s: Overloaded = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func itemID(i int) string {
	return string(rune('a' + i))
}
