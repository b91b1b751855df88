package events

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrStaleEvent is returned by Append for out-of-order or clock-skewed
// events. The event is dropped and counted; the window stays valid.
var ErrStaleEvent = errors.New("stale event: timestamp not after last accepted event")

// TrailingSize is the number of recent responses used for the trailing
// error rate and rolling performance.
const TrailingSize = 10

// recentLatencySize is the number of recent responses averaged for the
// latency-increase comparison against the session baseline.
const recentLatencySize = 5

// pauseLookback is the span over which pause frequency is measured.
const pauseLookback = 10 * time.Minute

// Window is the per-session rolling buffer of interaction events. All
// aggregates are maintained incrementally on Append, so the estimator
// never rescans history. A Window belongs to exactly one session and is
// discarded when the session ends.
type Window struct {
	SessionID  string
	UserID     string
	Topic      string
	DaysToExam int

	startTime time.Time
	lastTime  time.Time
	dropped   int

	eventCount    int
	responseCount int
	correctCount  int
	estimatedAny  bool

	// Latency aggregates. Welford's algorithm tracks the running mean
	// and variance over every response; the recent ring feeds the
	// baseline-vs-recent comparison.
	latMean   float64
	latM2     float64
	latLast   int
	recentLat [recentLatencySize]int
	recentN   int

	// Trailing ring of response outcomes and whether the span includes
	// enough attempts for an error rate.
	trailing   [TrailingSize]bool
	trailingN  int
	trailingAt int

	// Baseline accuracy freezes after the first TrailingSize responses;
	// before that it tracks everything seen so far.
	baselineCorrect int
	baselineTotal   int

	consecIncorrect int

	// attemptsNoProgress tracks repeated failures per item; maxRepeat is
	// maintained incrementally so reads stay O(1).
	attemptsNoProgress map[string]int
	maxRepeat          int

	pauseCount    int
	pauseTotal    time.Duration
	recentPauses  []time.Time
	lastPauseSpan time.Duration

	abandoned       bool
	completionRatio float64
}

// NewWindow creates a window for one session.
func NewWindow(sessionID, userID, topic string, daysToExam int, start time.Time) *Window {
	return &Window{
		SessionID:          sessionID,
		UserID:             userID,
		Topic:              topic,
		DaysToExam:         daysToExam,
		startTime:          start,
		lastTime:           start,
		attemptsNoProgress: make(map[string]int),
		completionRatio:    1.0,
	}
}

// Append adds an event to the window, updating all aggregates. Events
// whose timestamp is not strictly after the last accepted event are
// dropped and ErrStaleEvent is returned.
func (w *Window) Append(ev Event) error {
	ts := ev.When()
	if !ts.After(w.lastTime) {
		w.dropped++
		return fmt.Errorf("%w: %s <= %s", ErrStaleEvent, ts.Format(time.RFC3339), w.lastTime.Format(time.RFC3339))
	}
	w.lastTime = ts
	w.eventCount++

	switch e := ev.(type) {
	case ResponseEvent:
		w.appendResponse(e)
	case PauseEvent:
		w.pauseCount++
		w.pauseTotal += e.Duration
		w.lastPauseSpan = e.Duration
		w.recentPauses = append(w.recentPauses, e.Timestamp)
		w.pruneRecentPauses(ts)
	case AbandonEvent:
		w.abandoned = true
		w.completionRatio = e.CompletionRatio
	}
	return nil
}

func (w *Window) appendResponse(e ResponseEvent) {
	w.responseCount++
	if e.Correct {
		w.correctCount++
	}
	if e.Estimated {
		w.estimatedAny = true
	}

	// Welford update.
	w.latLast = e.LatencyMs
	lat := float64(e.LatencyMs)
	delta := lat - w.latMean
	w.latMean += delta / float64(w.responseCount)
	w.latM2 += delta * (lat - w.latMean)

	w.recentLat[(w.responseCount-1)%recentLatencySize] = e.LatencyMs
	if w.recentN < recentLatencySize {
		w.recentN++
	}

	w.trailing[w.trailingAt] = e.Correct
	w.trailingAt = (w.trailingAt + 1) % TrailingSize
	if w.trailingN < TrailingSize {
		w.trailingN++
	}

	if w.baselineTotal < TrailingSize {
		w.baselineTotal++
		if e.Correct {
			w.baselineCorrect++
		}
	}

	if e.Correct {
		w.consecIncorrect = 0
		delete(w.attemptsNoProgress, e.ItemID)
	} else {
		w.consecIncorrect++
		w.attemptsNoProgress[e.ItemID]++
		if w.attemptsNoProgress[e.ItemID] > w.maxRepeat {
			w.maxRepeat = w.attemptsNoProgress[e.ItemID]
		}
	}
}

func (w *Window) pruneRecentPauses(now time.Time) {
	cutoff := now.Add(-pauseLookback)
	i := 0
	for i < len(w.recentPauses) && w.recentPauses[i].Before(cutoff) {
		i++
	}
	if i > 0 {
		w.recentPauses = w.recentPauses[i:]
	}
}

// EventCount returns the number of accepted events.
func (w *Window) EventCount() int { return w.eventCount }

// ResponseCount returns the number of accepted response events.
func (w *Window) ResponseCount() int { return w.responseCount }

// Dropped returns the number of stale events rejected by Append.
func (w *Window) Dropped() int { return w.dropped }

// HasEstimatedInputs reports whether any response carried a reconstructed
// latency rather than a measured one.
func (w *Window) HasEstimatedInputs() bool { return w.estimatedAny }

// BaselineLatency returns the running mean latency over every response in
// the session, in milliseconds.
func (w *Window) BaselineLatency() float64 { return w.latMean }

// RecentLatency returns the mean latency over the last few responses.
func (w *Window) RecentLatency() float64 {
	if w.recentN == 0 {
		return 0
	}
	sum := 0
	for i := 0; i < w.recentN; i++ {
		sum += w.recentLat[i]
	}
	return float64(sum) / float64(w.recentN)
}

// LatencyStdDev returns the standard deviation of response latency.
func (w *Window) LatencyStdDev() float64 {
	if w.responseCount < 2 {
		return 0
	}
	return math.Sqrt(w.latM2 / float64(w.responseCount-1))
}

// LastLatency returns the most recent response latency in milliseconds.
func (w *Window) LastLatency() int { return w.latLast }

// TrailingErrorRate returns errors/attempts over the trailing responses,
// in [0,1]. Zero when no responses have arrived.
func (w *Window) TrailingErrorRate() float64 {
	if w.trailingN == 0 {
		return 0
	}
	wrong := 0
	for i := 0; i < w.trailingN; i++ {
		if !w.trailing[i] {
			wrong++
		}
	}
	return float64(wrong) / float64(w.trailingN)
}

// BaselineAccuracy returns the session's baseline accuracy, frozen after
// the first TrailingSize responses.
func (w *Window) BaselineAccuracy() float64 {
	if w.baselineTotal == 0 {
		return 0
	}
	return float64(w.baselineCorrect) / float64(w.baselineTotal)
}

// RollingAccuracy returns accuracy over the trailing responses.
func (w *Window) RollingAccuracy() float64 {
	return 1 - w.TrailingErrorRate()
}

// ConsecutiveIncorrect returns the length of the current run of wrong
// answers.
func (w *Window) ConsecutiveIncorrect() int { return w.consecIncorrect }

// MaxRepeatFailures returns the highest number of failed attempts on any
// single item without an intervening correct answer.
func (w *Window) MaxRepeatFailures() int { return w.maxRepeat }

// PauseCount returns the total number of pauses in the session.
func (w *Window) PauseCount() int { return w.pauseCount }

// RecentPauseCount returns the number of pauses within the lookback span
// ending at the last accepted event.
func (w *Window) RecentPauseCount() int {
	w.pruneRecentPauses(w.lastTime)
	return len(w.recentPauses)
}

// TotalPauseDuration returns the accumulated pause time.
func (w *Window) TotalPauseDuration() time.Duration { return w.pauseTotal }

// Duration returns elapsed session time from start to the last accepted
// event.
func (w *Window) Duration() time.Duration { return w.lastTime.Sub(w.startTime) }

// StartTime returns the session start.
func (w *Window) StartTime() time.Time { return w.startTime }

// LastEventTime returns the timestamp of the last accepted event.
func (w *Window) LastEventTime() time.Time { return w.lastTime }

// Abandoned reports whether an AbandonEvent was observed.
func (w *Window) Abandoned() bool { return w.abandoned }

// CompletionRatio returns the session completion ratio; 1.0 unless an
// AbandonEvent said otherwise.
func (w *Window) CompletionRatio() float64 { return w.completionRatio }

// CorrectCount returns the number of correct responses.
func (w *Window) CorrectCount() int { return w.correctCount }
