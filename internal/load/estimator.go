// Package load computes instantaneous cognitive load from a session's
// event window. The estimate is a weighted sum of five behavioral factors,
// each clamped to 0-100, reported per-factor for explainability.
package load

import (
	"errors"
	"time"

	"github.com/anupamd/studypulse/internal/events"
)

// ErrInsufficientData marks estimates produced from too few events. The
// estimate carried alongside is still usable; callers that only care
// about a score can ignore the error.
var ErrInsufficientData = errors.New("insufficient events for a confident estimate")

// FactorScore is one factor's contribution to an estimate.
type FactorScore struct {
	Name     string
	Raw      float64 // factor output, 0-100
	Weight   float64
	Weighted float64 // Raw * Weight
}

// Estimate is the result of one load estimation.
type Estimate struct {
	Score      float64 // 0-100
	Confidence float64 // 0-1
	Factors    []FactorScore

	// Fallback is true when the latency budget was exceeded and the
	// previous tick's score was reused.
	Fallback bool
}

// Estimator computes load estimates for a single session. It keeps the
// previous estimate for the latency-budget fallback, so one Estimator
// instance belongs to one session's monitor and needs no locking.
type Estimator struct {
	cfg  Config
	prev *Estimate

	// now is swappable for tests.
	now func() time.Time
}

// NewEstimator creates an estimator with the given configuration.
func NewEstimator(cfg Config) *Estimator {
	return &Estimator{cfg: cfg, now: time.Now}
}

// Estimate computes the current load for the window. Sparse windows yield
// the configured default score with capped confidence and an
// ErrInsufficientData the caller may ignore. The session flow never
// blocks on a failed estimate.
func (e *Estimator) Estimate(w *events.Window) (Estimate, error) {
	if w.EventCount() < e.cfg.MinEvents {
		est := Estimate{
			Score:      e.cfg.DefaultScore,
			Confidence: sparseConfidence(w.EventCount(), e.cfg.DefaultConfidenceCap),
		}
		e.prev = &est
		return est, ErrInsufficientData
	}

	start := e.now()

	factors := []FactorScore{
		{Name: FactorLatency, Raw: latencyFactor(w), Weight: e.cfg.Weights.Latency},
		{Name: FactorErrorRate, Raw: errorFactor(w), Weight: e.cfg.Weights.ErrorRate},
		{Name: FactorEngagement, Raw: engagementFactor(w), Weight: e.cfg.Weights.Engagement},
		{Name: FactorPerformance, Raw: performanceFactor(w), Weight: e.cfg.Weights.Performance},
		{Name: FactorDuration, Raw: durationFactor(w), Weight: e.cfg.Weights.Duration},
	}

	score := 0.0
	for i := range factors {
		factors[i].Weighted = factors[i].Raw * factors[i].Weight
		score += factors[i].Weighted
	}

	// The window aggregates are O(1), so the budget only trips under
	// severe scheduling pressure. Fall back rather than stall the
	// session's request path.
	if e.overBudget(start) && e.prev != nil {
		fallback := Estimate{
			Score:      e.prev.Score,
			Confidence: e.prev.Confidence * 0.5,
			Factors:    e.prev.Factors,
			Fallback:   true,
		}
		e.prev = &fallback
		return fallback, nil
	}

	est := Estimate{
		Score:      clamp(score, 0, 100),
		Confidence: confidence(w),
		Factors:    factors,
	}
	e.prev = &est
	return est, nil
}

// Previous returns the last estimate, or nil before the first call.
func (e *Estimator) Previous() *Estimate { return e.prev }

func (e *Estimator) overBudget(start time.Time) bool {
	return e.now().Sub(start) > time.Duration(e.cfg.BudgetMs)*time.Millisecond
}

// confidence degrades with event sparsity, estimated inputs, and dropped
// events.
func confidence(w *events.Window) float64 {
	c := 1.0
	if w.ResponseCount() < events.TrailingSize {
		c -= 0.2
	}
	if w.HasEstimatedInputs() {
		c -= 0.2
	}
	if w.Dropped() > 0 {
		c -= 0.1
	}
	return clamp(c, 0.1, 1)
}

// sparseConfidence scales with the few events present, never above limit.
func sparseConfidence(n int, limit float64) float64 {
	c := 0.1 + 0.04*float64(n)
	return clamp(c, 0.1, limit)
}

// LevelFor names the band a score falls in.
func LevelFor(score float64, b Bands) string {
	switch {
	case score >= b.Overload:
		return "overload"
	case score >= b.Elevated:
		return "high"
	case score >= b.Low:
		return "moderate"
	default:
		return "low"
	}
}
