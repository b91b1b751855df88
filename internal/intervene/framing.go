package intervene

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/anupamd/studypulse/internal/llm"
	"github.com/anupamd/studypulse/internal/patterns"
	"github.com/anupamd/studypulse/internal/store"
)

// Framing is a generated supportive message.
type Framing struct {
	Message string
	Tone    string
}

// FramingService generates supportive framing asynchronously so the
// recommendation path never waits on a model call. Only one framing is
// in-flight at a time; new requests replace pending ones.
type FramingService struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *Framing
	err     error
	ready   bool
}

// NewFramingService creates a framing service. Provider may be nil, in
// which case every request resolves to the canned fallback.
func NewFramingService(provider llm.Provider, cfg Config) *FramingService {
	return &FramingService{provider: provider, cfg: cfg}
}

// RequestFraming starts async framing generation for the assessment.
func (s *FramingService) RequestFraming(ctx context.Context, a store.Assessment, profile patterns.StressProfile) {
	go func() {
		framing, err := s.generate(ctx, a, profile)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = framing
		s.err = err
		s.ready = true
	}()
}

// ConsumeFraming returns the pending framing if one is ready, falling
// back to the canned message when generation failed. Returns
// (Framing{}, false) if nothing is ready yet. The pending slot is
// cleared on consumption.
func (s *FramingService) ConsumeFraming(level string) (Framing, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return Framing{}, false
	}
	framing := s.pending
	s.pending = nil
	s.ready = false
	s.err = nil

	if framing == nil {
		return FallbackFraming(level), true
	}
	return *framing, true
}

func (s *FramingService) generate(ctx context.Context, a store.Assessment, profile patterns.StressProfile) (*Framing, error) {
	if s.provider == nil {
		return nil, fmt.Errorf("no llm provider configured")
	}
	ctx = llm.WithPurpose(ctx, "framing")

	req := llm.Request{
		System: framingSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildFramingUserMessage(a, profile)},
		},
		Schema:      FramingSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("framing generation: %w", err)
	}

	var out struct {
		Message string `json:"message"`
		Tone    string `json:"tone"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse framing response: %w", err)
	}
	return &Framing{Message: out.Message, Tone: out.Tone}, nil
}

// FallbackFraming returns the canned message used when no provider is
// configured or generation fails.
func FallbackFraming(level string) Framing {
	msg := "You have been putting in real effort lately. A short break now protects that work, and your plan will pick up exactly where you left off."
	if level == "CRITICAL" {
		msg = "You have pushed hard for a while and it shows in your effort. Stepping away for a couple of days is the strongest move you can make right now; everything you have learned stays with you, and your plan will be waiting."
	}
	return Framing{Message: msg, Tone: "reassuring"}
}
