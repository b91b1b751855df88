package load

import (
	"time"

	"github.com/anupamd/studypulse/internal/events"
)

// Factor names, reported with every estimate for explainability.
const (
	FactorLatency     = "latency_increase"
	FactorErrorRate   = "error_rate"
	FactorEngagement  = "engagement_drop"
	FactorPerformance = "performance_decline"
	FactorDuration    = "duration_stress"
)

// Each factor maps the window to a 0-100 score. The estimator combines
// them with the configured weights.

// latencyFactor scores the percentage increase of recent response latency
// over the session baseline as a step function.
func latencyFactor(w *events.Window) float64 {
	baseline := w.BaselineLatency()
	if baseline <= 0 {
		return 0
	}
	increase := (w.RecentLatency() - baseline) / baseline * 100
	switch {
	case increase > 50:
		return 100
	case increase > 30:
		return 75
	case increase > 15:
		return 50
	case increase > 5:
		return 25
	default:
		return 0
	}
}

// errorFactor scores the trailing error rate directly.
func errorFactor(w *events.Window) float64 {
	return clamp(w.TrailingErrorRate()*100, 0, 100)
}

// pausesForMaxEngagement is the recent pause count treated as full
// disengagement.
const pausesForMaxEngagement = 5

// engagementFactor scores disengagement from pause frequency within the
// window's lookback span, with a boost for long average pauses.
func engagementFactor(w *events.Window) float64 {
	score := float64(w.RecentPauseCount()) / pausesForMaxEngagement * 100
	if w.PauseCount() > 0 {
		avg := w.TotalPauseDuration() / time.Duration(w.PauseCount())
		if avg > time.Minute {
			score += 25
		}
	}
	return clamp(score, 0, 100)
}

// performanceFactor scores the percentage drop of rolling accuracy below
// the session baseline, floored at zero.
func performanceFactor(w *events.Window) float64 {
	baseline := w.BaselineAccuracy()
	if baseline <= 0 {
		return 0
	}
	drop := (baseline - w.RollingAccuracy()) / baseline * 100
	return clamp(drop, 0, 100)
}

// durationFactor scores fatigue from raw session length.
func durationFactor(w *events.Window) float64 {
	d := w.Duration()
	switch {
	case d > 90*time.Minute:
		return 25
	case d >= 60*time.Minute:
		return 10
	default:
		return 0
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
