// Package monitor ties the per-session pipeline together: it owns the
// event window, runs the estimator and detectors on each tick, persists
// the resulting metric, and derives the difficulty directive for the
// orchestrator. One Monitor belongs to one session's execution context,
// so nothing here needs locking.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/anupamd/studypulse/internal/adapt"
	"github.com/anupamd/studypulse/internal/events"
	"github.com/anupamd/studypulse/internal/load"
	"github.com/anupamd/studypulse/internal/store"
	"github.com/anupamd/studypulse/internal/stress"
)

// SessionInfo is the session metadata the orchestrator supplies.
type SessionInfo struct {
	UserID string
	Topic  string

	// DaysToExam is negative when no exam is scheduled.
	DaysToExam int
	Planned    bool
}

// Status is the outcome of one monitoring tick.
type Status struct {
	SessionID  string
	Estimate   load.Estimate
	Level      string
	Indicators []stress.Indicator
	Adjustment adapt.Adjustment

	// InsufficientData marks ticks where the estimate is the sparse-window
	// default rather than a measurement.
	InsufficientData bool
}

// Monitor watches one active study session.
type Monitor struct {
	sessionID string
	info      SessionInfo

	window    *events.Window
	estimator *load.Estimator
	detectors []stress.Detector
	cfg       load.Config
	sctx      adapt.SessionContext

	metrics  store.MetricRepo
	sessions store.SessionRepo
	log      zerolog.Logger

	started time.Time
	ended   bool

	now func() time.Time
}

// NewMonitor creates a monitor for a new session and assigns it an id.
// Call Start to record the session before observing events.
func NewMonitor(cfg load.Config, metrics store.MetricRepo, sessions store.SessionRepo, log zerolog.Logger, info SessionInfo) *Monitor {
	id := uuid.NewString()
	return &Monitor{
		sessionID: id,
		info:      info,
		estimator: load.NewEstimator(cfg),
		detectors: stress.DefaultDetectors(),
		cfg:       cfg,
		metrics:   metrics,
		sessions:  sessions,
		log:       log.With().Str("component", "monitor").Str("session_id", id).Logger(),
		now:       time.Now,
	}
}

// SessionID returns the generated session identifier.
func (m *Monitor) SessionID() string { return m.sessionID }

// Start opens the event window and records the session start row.
func (m *Monitor) Start(ctx context.Context) error {
	m.started = m.now()
	m.window = events.NewWindow(m.sessionID, m.info.UserID, m.info.Topic, m.info.DaysToExam, m.started)
	err := m.sessions.Append(ctx, store.SessionRecord{
		SessionID: m.sessionID,
		UserID:    m.info.UserID,
		Timestamp: m.started,
		Action:    "start",
		Topic:     m.info.Topic,
		Planned:   m.info.Planned,
	})
	if err != nil {
		return fmt.Errorf("record session start: %w", err)
	}
	m.log.Info().Str("user_id", m.info.UserID).Str("topic", m.info.Topic).Msg("session started")
	return nil
}

// Observe feeds one interaction event into the window. Stale events are
// dropped and logged; they never fail the session flow.
func (m *Monitor) Observe(ev events.Event) error {
	if m.window == nil {
		return fmt.Errorf("session not started")
	}
	if err := m.window.Append(ev); err != nil {
		if errors.Is(err, events.ErrStaleEvent) {
			m.log.Debug().Err(err).Msg("dropped stale event")
			return nil
		}
		return err
	}
	return nil
}

// Tick runs one monitoring pass: estimate, detect, persist, adapt.
// Estimation failures degrade to defaults; only the metric write can
// return an error.
func (m *Monitor) Tick(ctx context.Context) (Status, error) {
	if m.window == nil {
		return Status{}, fmt.Errorf("session not started")
	}
	est, err := m.estimator.Estimate(m.window)
	insufficient := errors.Is(err, load.ErrInsufficientData)

	indicators := stress.RunDetectors(m.detectors, m.window)
	level := load.LevelFor(est.Score, m.cfg.Bands)

	at := m.now()
	metric := store.LoadMetric{
		SessionID:  m.sessionID,
		UserID:     m.info.UserID,
		Timestamp:  at,
		Score:      est.Score,
		Confidence: est.Confidence,
		Indicators: indicatorData(indicators),
		Topic:      m.info.Topic,
		Hour:       at.Hour(),
		Weekday:    int(at.Weekday()),
		DaysToExam: m.info.DaysToExam,
	}
	if err := m.metrics.Append(ctx, metric); err != nil {
		return Status{}, fmt.Errorf("persist load metric: %w", err)
	}

	adj := adapt.Adjust(est.Score, indicators, m.sctx, m.cfg.Bands)
	m.sctx.CumulativeShift += adj.Shift

	m.log.Info().
		Float64("score", est.Score).
		Str("level", level).
		Int("indicators", len(indicators)).
		Int("shift", adj.Shift).
		Bool("fallback", est.Fallback).
		Msg("tick")

	return Status{
		SessionID:        m.sessionID,
		Estimate:         est,
		Level:            level,
		Indicators:       indicators,
		Adjustment:       adj,
		InsufficientData: insufficient,
	}, nil
}

// End records the session end row and summarizes the window. The window
// is not reusable afterwards.
func (m *Monitor) End(ctx context.Context, completionRatio float64, selfRating int) error {
	if m.ended {
		return nil
	}
	m.ended = true

	at := m.now()
	err := m.sessions.Append(ctx, store.SessionRecord{
		SessionID:       m.sessionID,
		UserID:          m.info.UserID,
		Timestamp:       at,
		Action:          "end",
		DurationSecs:    int(at.Sub(m.started).Seconds()),
		Interactions:    m.window.ResponseCount(),
		Correct:         m.window.CorrectCount(),
		CompletionRatio: completionRatio,
		SelfRating:      selfRating,
		Topic:           m.info.Topic,
		Planned:         m.info.Planned,
	})
	if err != nil {
		return fmt.Errorf("record session end: %w", err)
	}
	m.log.Info().Float64("completion", completionRatio).Msg("session ended")
	return nil
}

// CumulativeShift returns the difficulty movement applied so far.
func (m *Monitor) CumulativeShift() int { return m.sctx.CumulativeShift }

func indicatorData(indicators []stress.Indicator) []store.IndicatorData {
	if len(indicators) == 0 {
		return nil
	}
	out := make([]store.IndicatorData, len(indicators))
	for i, ind := range indicators {
		out[i] = store.IndicatorData{
			Type:         string(ind.Type),
			Severity:     string(ind.Severity),
			Contribution: ind.Contribution,
		}
	}
	return out
}
