// Package scheduler runs the background analytics jobs: the weekly
// burnout assessment and the pattern mining pass. Jobs go through a
// bounded queue with at-most-one-in-flight per user and kind; when the
// queue is full new jobs are dropped rather than blocked on; both jobs are
// idempotent, so a dropped run is only a delay.
package scheduler

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/anupamd/studypulse/internal/burnout"
	"github.com/anupamd/studypulse/internal/patterns"
)

// Job kinds.
const (
	JobAssess = "assess"
	JobMine   = "mine"
)

const queueSize = 32

type job struct {
	ctx    context.Context
	userID string
	kind   string
}

// Runner owns the background job queue.
type Runner struct {
	assessor *burnout.Assessor
	miner    *patterns.Miner
	log      zerolog.Logger

	pending chan job
	done    chan struct{}

	mu       sync.Mutex
	inflight map[string]bool
}

// NewRunner creates a runner and starts its processing loop.
func NewRunner(assessor *burnout.Assessor, miner *patterns.Miner, log zerolog.Logger) *Runner {
	r := &Runner{
		assessor: assessor,
		miner:    miner,
		log:      log.With().Str("component", "scheduler").Logger(),
		pending:  make(chan job, queueSize),
		done:     make(chan struct{}),
		inflight: make(map[string]bool),
	}
	go r.processLoop()
	return r
}

// Enqueue schedules one job. It reports false when the job was dropped,
// either because the same job is already queued or running for this
// user, or because the queue is full.
func (r *Runner) Enqueue(ctx context.Context, userID, kind string) bool {
	key := userID + "/" + kind

	r.mu.Lock()
	if r.inflight[key] {
		r.mu.Unlock()
		return false
	}
	r.inflight[key] = true
	r.mu.Unlock()

	select {
	case r.pending <- job{ctx: ctx, userID: userID, kind: kind}:
		return true
	default:
		r.clear(key)
		r.log.Warn().Str("user_id", userID).Str("kind", kind).Msg("queue full, job dropped")
		return false
	}
}

// RunWeekly enqueues the weekly assessment and mining pass for each
// user.
func (r *Runner) RunWeekly(ctx context.Context, userIDs []string) {
	for _, id := range userIDs {
		r.Enqueue(ctx, id, JobAssess)
		r.Enqueue(ctx, id, JobMine)
	}
}

func (r *Runner) processLoop() {
	defer close(r.done)
	for j := range r.pending {
		r.run(j)
		r.clear(j.userID + "/" + j.kind)
	}
}

func (r *Runner) run(j job) {
	var err error
	switch j.kind {
	case JobAssess:
		_, err = r.assessor.Assess(j.ctx, j.userID)
	case JobMine:
		_, err = r.miner.Mine(j.ctx, j.userID)
	}
	if err != nil {
		// Background analytics never escalate; the next run retries.
		r.log.Warn().Err(err).Str("user_id", j.userID).Str("kind", j.kind).Msg("job failed")
		return
	}
	r.log.Debug().Str("user_id", j.userID).Str("kind", j.kind).Msg("job complete")
}

func (r *Runner) clear(key string) {
	r.mu.Lock()
	delete(r.inflight, key)
	r.mu.Unlock()
}

// Close drains the queue and stops the loop. Enqueue must not be called
// after Close.
func (r *Runner) Close() {
	close(r.pending)
	<-r.done
}
