package intervene

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/anupamd/studypulse/internal/burnout"
	"github.com/anupamd/studypulse/internal/llm"
	"github.com/anupamd/studypulse/internal/patterns"
	"github.com/anupamd/studypulse/internal/store"
)

func assessment(level string, score float64) store.Assessment {
	return store.Assessment{
		UserID:    "u1",
		Date:      "2026-03-02",
		RiskScore: score,
		RiskLevel: level,
		Factors: []store.FactorData{
			{Name: "chronic_high_load", Contribution: 22, Cap: 25, Detail: "9 of 14 days above 60"},
			{Name: "performance_decline", Contribution: 15, Cap: 25, Detail: "accuracy down 18%"},
			{Name: "warning:performance-plateau", Contribution: 0},
		},
	}
}

func actions(ivs []Intervention) []string {
	out := make([]string, len(ivs))
	for i, iv := range ivs {
		out[i] = iv.Action
	}
	return out
}

func TestRecommendPerLevel(t *testing.T) {
	tests := []struct {
		level string
		want  []string
	}{
		{burnout.LevelLow, []string{ActionMaintainAwareness}},
		{burnout.LevelMedium, []string{ActionRestDay, ActionReduceWorkload, ActionAddBreaks}},
		{burnout.LevelHigh, []string{ActionMandatoryRest, ActionReduceTargetHours, ActionLighterContent}},
		{burnout.LevelCritical, []string{ActionSupportiveFraming, ActionExtendedBreak, ActionDisableNewMaterial, ActionReviewOnly}},
	}
	for _, tt := range tests {
		got := Recommend(assessment(tt.level, 55), patterns.StressProfile{})
		if len(got) != len(tt.want) {
			t.Fatalf("%s: got %d interventions, want %d", tt.level, len(got), len(tt.want))
		}
		for i := range got {
			if got[i].Action != tt.want[i] {
				t.Errorf("%s[%d]: action = %s, want %s", tt.level, i, got[i].Action, tt.want[i])
			}
			if got[i].Rationale == "" || got[i].ExpectedBenefit == "" {
				t.Errorf("%s[%d]: missing rationale or benefit", tt.level, i)
			}
			if got[i].ID == "" {
				t.Errorf("%s[%d]: missing id", tt.level, i)
			}
			if got[i].RiskLevel != tt.level {
				t.Errorf("%s[%d]: risk level = %s", tt.level, i, got[i].RiskLevel)
			}
		}
	}
}

// Actions the user historically accepts move ahead of ones they
// dismiss.
func TestRecommendPrefersEffectiveCoping(t *testing.T) {
	profile := patterns.StressProfile{EffectiveCoping: []string{ActionAddBreaks}}
	got := actions(Recommend(assessment(burnout.LevelMedium, 40), profile))
	want := []string{ActionAddBreaks, ActionRestDay, ActionReduceWorkload}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

// Supportive framing keeps the lead slot of a CRITICAL set regardless
// of acceptance history.
func TestRecommendFramingStaysFirst(t *testing.T) {
	profile := patterns.StressProfile{EffectiveCoping: []string{ActionReviewOnly}}
	got := actions(Recommend(assessment(burnout.LevelCritical, 80), profile))
	if got[0] != ActionSupportiveFraming {
		t.Fatalf("first action = %s, want supportive_framing", got[0])
	}
	if got[1] != ActionReviewOnly {
		t.Errorf("second action = %s, want review_only promoted", got[1])
	}
}

func TestRecommendRationaleNamesTopFactor(t *testing.T) {
	got := Recommend(assessment(burnout.LevelHigh, 62), patterns.StressProfile{})
	if want := "chronic high load"; !strings.Contains(got[0].Rationale, want) {
		t.Errorf("rationale %q does not mention %q", got[0].Rationale, want)
	}
}

func validFramingJSON() json.RawMessage {
	return json.RawMessage(`{
		"message": "You have worked hard for two straight weeks. Taking a couple of days off protects that progress.",
		"tone": "reassuring"
	}`)
}

func consumeFraming(t *testing.T, svc *FramingService, level string) (Framing, bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if f, ok := svc.ConsumeFraming(level); ok {
			return f, true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return Framing{}, false
}

func TestFramingService_Generates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validFramingJSON()})
	svc := NewFramingService(mock, DefaultConfig())

	svc.RequestFraming(t.Context(), assessment(burnout.LevelCritical, 82), patterns.StressProfile{})

	framing, ok := consumeFraming(t, svc, burnout.LevelCritical)
	if !ok {
		t.Fatal("expected framing to be generated")
	}
	if framing.Tone != "reassuring" || framing.Message == "" {
		t.Errorf("framing = %+v", framing)
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "supportive-framing" {
		t.Error("expected schema name 'supportive-framing'")
	}
}

// Generation failures degrade to the canned message, never to nothing.
func TestFramingService_FallbackOnError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewFramingService(mock, DefaultConfig())

	svc.RequestFraming(t.Context(), assessment(burnout.LevelCritical, 82), patterns.StressProfile{})

	framing, ok := consumeFraming(t, svc, burnout.LevelCritical)
	if !ok {
		t.Fatal("expected a fallback framing")
	}
	if framing.Message != FallbackFraming(burnout.LevelCritical).Message {
		t.Errorf("expected canned fallback, got %q", framing.Message)
	}
}

func TestFramingService_NilProvider(t *testing.T) {
	svc := NewFramingService(nil, DefaultConfig())

	svc.RequestFraming(t.Context(), assessment(burnout.LevelHigh, 60), patterns.StressProfile{})

	framing, ok := consumeFraming(t, svc, burnout.LevelHigh)
	if !ok {
		t.Fatal("expected a fallback framing")
	}
	if framing.Message == "" {
		t.Error("expected non-empty fallback message")
	}
}

func TestFramingService_ConsumeClears(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validFramingJSON()})
	svc := NewFramingService(mock, DefaultConfig())

	svc.RequestFraming(t.Context(), assessment(burnout.LevelCritical, 82), patterns.StressProfile{})
	if _, ok := consumeFraming(t, svc, burnout.LevelCritical); !ok {
		t.Fatal("expected framing")
	}
	if _, ok := svc.ConsumeFraming(burnout.LevelCritical); ok {
		t.Error("expected second consume to return false")
	}
}
