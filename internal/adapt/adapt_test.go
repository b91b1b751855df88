package adapt

import (
	"testing"

	"github.com/anupamd/studypulse/internal/load"
	"github.com/anupamd/studypulse/internal/stress"
)

var bands = load.DefaultConfig().Bands

func TestAdjustBands(t *testing.T) {
	tests := []struct {
		score       float64
		wantShift   int
		wantRatio   float64
		wantValid   Validation
		wantBreaks  BreakCadence
		wantEmerg   bool
	}{
		{0, 1, 0.50, ValidationFull, BreaksStandard, false},
		{29, 1, 0.50, ValidationFull, BreaksStandard, false},
		{30, 0, 0.60, ValidationFull, BreaksStandard, false},
		{59, 0, 0.60, ValidationFull, BreaksStandard, false},
		{60, -1, 0.80, ValidationSimplified, BreaksFrequent, false},
		{79, -1, 0.80, ValidationSimplified, BreaksFrequent, false},
		{80, -2, 1.00, ValidationDisabled, BreaksImmediate, true},
		{100, -2, 1.00, ValidationDisabled, BreaksImmediate, true},
	}

	for _, tt := range tests {
		adj := Adjust(tt.score, nil, SessionContext{}, bands)
		if adj.Shift != tt.wantShift {
			t.Errorf("score %v: Shift = %d, want %d", tt.score, adj.Shift, tt.wantShift)
		}
		if adj.ReviewRatio != tt.wantRatio {
			t.Errorf("score %v: ReviewRatio = %v, want %v", tt.score, adj.ReviewRatio, tt.wantRatio)
		}
		if adj.ValidationComplexity != tt.wantValid {
			t.Errorf("score %v: Validation = %s, want %s", tt.score, adj.ValidationComplexity, tt.wantValid)
		}
		if adj.BreakFrequency != tt.wantBreaks {
			t.Errorf("score %v: Breaks = %s, want %s", tt.score, adj.BreakFrequency, tt.wantBreaks)
		}
		if adj.Emergency != tt.wantEmerg {
			t.Errorf("score %v: Emergency = %v, want %v", tt.score, adj.Emergency, tt.wantEmerg)
		}
		if adj.Rationale == "" {
			t.Errorf("score %v: empty rationale", tt.score)
		}
	}
}

func TestAdjustIndicatorOverride(t *testing.T) {
	// Moderate score, but two simultaneous HIGH signals force the
	// emergency path.
	indicators := []stress.Indicator{
		{Type: stress.TypeErrorCluster, Severity: stress.SeverityHigh},
		{Type: stress.TypeLatencySpike, Severity: stress.SeverityHigh},
	}
	adj := Adjust(45, indicators, SessionContext{}, bands)
	if !adj.Emergency {
		t.Fatal("expected emergency adjustment")
	}
	if adj.Shift != -2 || adj.ReviewRatio != 1.0 {
		t.Errorf("got shift %d ratio %v, want -2 / 1.0", adj.Shift, adj.ReviewRatio)
	}
}

func TestCumulativeShiftCap(t *testing.T) {
	tests := []struct {
		name       string
		score      float64
		cumulative int
		wantShift  int
	}{
		{"easing already at floor", 85, -2, 0},
		{"easing near floor", 85, -1, -1},
		{"raising already at cap", 10, 2, 0},
		{"raising near cap", 10, 1, 1},
		{"unconstrained", 85, 0, -2},
	}

	for _, tt := range tests {
		adj := Adjust(tt.score, nil, SessionContext{CumulativeShift: tt.cumulative}, bands)
		if adj.Shift != tt.wantShift {
			t.Errorf("%s: Shift = %d, want %d", tt.name, adj.Shift, tt.wantShift)
		}
	}
}

func TestAdjustDeterministic(t *testing.T) {
	a := Adjust(72, nil, SessionContext{CumulativeShift: -1}, bands)
	b := Adjust(72, nil, SessionContext{CumulativeShift: -1}, bands)
	if a != b {
		t.Errorf("same inputs gave %+v and %+v", a, b)
	}
}
