// Package events defines the interaction events a study session emits and
// the per-session rolling window that aggregates them. The window is owned
// exclusively by one session's monitor; it is never shared.
package events

import "time"

// Event is the closed set of interaction events. The orchestrator feeds
// these into the session window; the estimator and detector consume them
// via the window's aggregates.
type Event interface {
	// When returns the event's wall-clock timestamp.
	When() time.Time

	isEvent()
}

// ResponseEvent records one answered item.
type ResponseEvent struct {
	Timestamp time.Time
	ItemID    string
	Correct   bool
	LatencyMs int

	// Estimated marks latency values reconstructed by the orchestrator
	// rather than measured directly. Estimated inputs lower the
	// estimator's confidence.
	Estimated bool
}

func (e ResponseEvent) When() time.Time { return e.Timestamp }
func (ResponseEvent) isEvent()          {}

// PauseEvent records an idle gap in the session.
type PauseEvent struct {
	Timestamp time.Time
	Duration  time.Duration
}

func (e PauseEvent) When() time.Time { return e.Timestamp }
func (PauseEvent) isEvent()          {}

// AbandonEvent records an abrupt or partial session end.
type AbandonEvent struct {
	Timestamp time.Time

	// CompletionRatio is the fraction of the planned session that was
	// finished when the learner left.
	CompletionRatio float64
}

func (e AbandonEvent) When() time.Time { return e.Timestamp }
func (AbandonEvent) isEvent()          {}
