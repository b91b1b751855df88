package monitor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/anupamd/studypulse/internal/burnout"
	"github.com/anupamd/studypulse/internal/load"
	"github.com/anupamd/studypulse/internal/patterns"
	"github.com/anupamd/studypulse/internal/store"
)

// Granularities accepted by LoadHistory.
const (
	GranularityHour = "hour"
	GranularityDay  = "day"
)

// trendDelta is the score movement across the recent metrics that
// counts as a trend rather than noise.
const trendDelta = 5.0

// LoadStatus is the answer to a current-load query.
type LoadStatus struct {
	Score      float64
	Confidence float64
	Level      string
	Trend      string // rising, falling or steady
	Indicators []store.IndicatorData
	At         time.Time
}

// HistoryPoint is one bucket of a load history timeseries.
type HistoryPoint struct {
	Bucket  time.Time
	Avg     float64
	Peak    float64
	Samples int
}

// Service is the read-mostly query surface over the stored analytics.
// The only mutation it exposes is acknowledging an intervention.
type Service struct {
	metrics       store.MetricRepo
	sessions      store.SessionRepo
	patterns      store.PatternRepo
	interventions store.InterventionRepo

	assessor *burnout.Assessor
	miner    *patterns.Miner
	loadCfg  load.Config
	patCfg   patterns.Config
	log      zerolog.Logger

	now func() time.Time
}

// NewService wires the query surface over an open store.
func NewService(st *store.Store, assessor *burnout.Assessor, miner *patterns.Miner, loadCfg load.Config, patCfg patterns.Config, log zerolog.Logger) *Service {
	return &Service{
		metrics:       st.Metrics(),
		sessions:      st.Sessions(),
		patterns:      st.Patterns(),
		interventions: st.Interventions(),
		assessor:      assessor,
		miner:         miner,
		loadCfg:       loadCfg,
		patCfg:        patCfg,
		log:           log.With().Str("component", "service").Logger(),
		now:           time.Now,
	}
}

// CurrentLoad reports the user's latest load, level and short trend.
// With no metrics yet it returns the sparse default and
// load.ErrInsufficientData, which callers may treat as success.
func (s *Service) CurrentLoad(ctx context.Context, userID string) (LoadStatus, error) {
	recent, err := s.metrics.Recent(ctx, userID, 3)
	if err != nil {
		return LoadStatus{}, fmt.Errorf("query recent metrics: %w", err)
	}
	if len(recent) == 0 {
		return LoadStatus{
			Score:      s.loadCfg.DefaultScore,
			Confidence: 0.1,
			Level:      load.LevelFor(s.loadCfg.DefaultScore, s.loadCfg.Bands),
			Trend:      "steady",
		}, load.ErrInsufficientData
	}

	last := recent[len(recent)-1]
	return LoadStatus{
		Score:      last.Score,
		Confidence: last.Confidence,
		Level:      load.LevelFor(last.Score, s.loadCfg.Bands),
		Trend:      trend(recent),
		Indicators: last.Indicators,
		At:         last.Timestamp,
	}, nil
}

// trend compares the newest and oldest of the recent metrics.
func trend(recent []store.LoadMetric) string {
	delta := recent[len(recent)-1].Score - recent[0].Score
	switch {
	case delta >= trendDelta:
		return "rising"
	case delta <= -trendDelta:
		return "falling"
	default:
		return "steady"
	}
}

// LoadHistory returns the user's load timeseries bucketed by hour or
// day. Buckets appear in timestamp order; empty buckets are omitted.
func (s *Service) LoadHistory(ctx context.Context, userID string, from, to time.Time, granularity string) ([]HistoryPoint, error) {
	var truncate func(time.Time) time.Time
	switch granularity {
	case GranularityHour:
		truncate = func(t time.Time) time.Time { return t.Truncate(time.Hour) }
	case GranularityDay:
		truncate = func(t time.Time) time.Time {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
		}
	default:
		return nil, fmt.Errorf("unknown granularity %q", granularity)
	}

	history, err := s.metrics.ByUser(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("query metric history: %w", err)
	}

	var out []HistoryPoint
	for _, m := range history {
		bucket := truncate(m.Timestamp)
		if len(out) == 0 || !out[len(out)-1].Bucket.Equal(bucket) {
			out = append(out, HistoryPoint{Bucket: bucket, Peak: m.Score})
		}
		p := &out[len(out)-1]
		p.Avg = (p.Avg*float64(p.Samples) + m.Score) / float64(p.Samples+1)
		p.Samples++
		if m.Score > p.Peak {
			p.Peak = m.Score
		}
	}
	return out, nil
}

// BurnoutRisk runs an on-demand assessment. A rate-limited run is not
// an error from the caller's point of view; the cached assessment is
// returned as the answer.
func (s *Service) BurnoutRisk(ctx context.Context, userID string) (*store.Assessment, error) {
	a, err := s.assessor.AssessOnDemand(ctx, userID)
	if errors.Is(err, burnout.ErrRateLimited) {
		return a, nil
	}
	return a, err
}

// StressPatterns returns the user's surfaced patterns. The global
// confidence floor applies even when the caller asks for less.
func (s *Service) StressPatterns(ctx context.Context, userID string, minConfidence float64) ([]store.Pattern, error) {
	floor := s.patCfg.ConfidenceFloor
	if minConfidence > floor {
		floor = minConfidence
	}
	return s.patterns.ByUser(ctx, userID, floor, s.patCfg.MinFrequency)
}

// MinePatterns runs one mining pass and returns the surfaced patterns.
func (s *Service) MinePatterns(ctx context.Context, userID string) ([]store.Pattern, error) {
	return s.miner.Mine(ctx, userID)
}

// Profile builds the derived stress profile for a user.
func (s *Service) Profile(ctx context.Context, userID string) (patterns.StressProfile, error) {
	surfaced, err := s.patterns.ByUser(ctx, userID, s.patCfg.ConfidenceFloor, s.patCfg.MinFrequency)
	if err != nil {
		return patterns.StressProfile{}, fmt.Errorf("query patterns: %w", err)
	}
	acks, err := s.interventions.AcceptanceByAction(ctx, userID)
	if err != nil {
		return patterns.StressProfile{}, fmt.Errorf("query acceptance: %w", err)
	}
	return patterns.BuildProfile(surfaced, acks), nil
}

// ApplyIntervention records the learner's response to a suggestion.
// Prior metrics are never rewritten; the ack only feeds future
// recommendations.
func (s *Service) ApplyIntervention(ctx context.Context, ack store.InterventionAck) error {
	if ack.Timestamp.IsZero() {
		ack.Timestamp = s.now()
	}
	if err := s.interventions.Append(ctx, ack); err != nil {
		return fmt.Errorf("record intervention ack: %w", err)
	}
	s.log.Info().
		Str("user_id", ack.UserID).
		Str("action", ack.Action).
		Bool("accepted", ack.Accepted).
		Msg("intervention acknowledged")
	return nil
}

// RecordSkip notes a planned session the user skipped. Skips feed the
// irregularity factor of the burnout assessment.
func (s *Service) RecordSkip(ctx context.Context, userID, topic string) error {
	err := s.sessions.Append(ctx, store.SessionRecord{
		SessionID: uuid.NewString(),
		UserID:    userID,
		Timestamp: s.now(),
		Action:    "skip",
		Topic:     topic,
		Planned:   true,
	})
	if err != nil {
		return fmt.Errorf("record skip: %w", err)
	}
	return nil
}
