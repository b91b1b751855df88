package scheduler

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/anupamd/studypulse/internal/burnout"
	"github.com/anupamd/studypulse/internal/patterns"
	"github.com/anupamd/studypulse/internal/store"
)

func newTestRunner(t *testing.T) (*Runner, *store.Store) {
	t.Helper()
	s, err := store.Open("file:" + filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	assessor := burnout.NewAssessor(burnout.DefaultConfig(), s.Metrics(), s.Sessions(), s.Assessments(), zerolog.Nop())
	miner := patterns.NewMiner(patterns.DefaultConfig(), s.Metrics(), s.Patterns(), zerolog.Nop())
	r := NewRunner(assessor, miner, zerolog.Nop())
	t.Cleanup(r.Close)
	return r, s
}

func TestRunWeeklyProducesAssessment(t *testing.T) {
	r, s := newTestRunner(t)
	ctx := context.Background()

	r.RunWeekly(ctx, []string{"u1"})

	// An empty history still yields the explicit insufficient-data
	// assessment.
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		a, err := s.Assessments().Latest(ctx, "u1")
		if err != nil {
			t.Fatalf("latest: %v", err)
		}
		if a != nil {
			if !a.InsufficientData {
				t.Errorf("assessment = %+v, want insufficient-data marker", a)
			}
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("assessment never appeared")
}

func TestEnqueueDeduplicates(t *testing.T) {
	r, _ := newTestRunner(t)
	ctx := context.Background()

	// Pin the in-flight marker so the outcome does not depend on how
	// fast the loop drains.
	r.mu.Lock()
	r.inflight["u1/"+JobAssess] = true
	r.mu.Unlock()

	if r.Enqueue(ctx, "u1", JobAssess) {
		t.Error("duplicate enqueue accepted while job in flight")
	}
	// A different kind for the same user is fine.
	if !r.Enqueue(ctx, "u1", JobMine) {
		t.Error("different job kind dropped")
	}
}

func TestEnqueueAgainAfterCompletion(t *testing.T) {
	r, s := newTestRunner(t)
	ctx := context.Background()

	if !r.Enqueue(ctx, "u1", JobAssess) {
		t.Fatal("first enqueue dropped")
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		a, err := s.Assessments().Latest(ctx, "u1")
		if err != nil {
			t.Fatalf("latest: %v", err)
		}
		if a != nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	// In-flight marker must be released once the job ran.
	accepted := false
	for i := 0; i < 100 && !accepted; i++ {
		accepted = r.Enqueue(ctx, "u1", JobAssess)
		time.Sleep(10 * time.Millisecond)
	}
	if !accepted {
		t.Error("re-enqueue after completion never accepted")
	}
}
