// Package adapt maps a load estimate and active stress signals to a
// content-adjustment directive. Adjust is pure and deterministic; the only
// cross-call state is the per-session cumulative shift the caller carries
// in SessionContext.
package adapt

import (
	"fmt"

	"github.com/anupamd/studypulse/internal/load"
	"github.com/anupamd/studypulse/internal/stress"
)

// Validation selects how generated content is checked before serving.
type Validation string

const (
	ValidationFull       Validation = "full"
	ValidationSimplified Validation = "simplified"
	ValidationDisabled   Validation = "disabled"
)

// BreakCadence tells the orchestrator how aggressively to insert breaks.
type BreakCadence string

const (
	BreaksStandard  BreakCadence = "standard"
	BreaksFrequent  BreakCadence = "frequent"
	BreaksImmediate BreakCadence = "immediate"
)

// MaxCumulativeShift caps the total difficulty movement within one
// session, in either direction.
const MaxCumulativeShift = 2

// SessionContext carries the per-session state the adapter needs.
type SessionContext struct {
	// CumulativeShift is the sum of shifts already applied this session.
	CumulativeShift int
}

// Adjustment is the directive handed to the session orchestrator. It is
// transient: consumed immediately, never persisted, so discarding one on
// early session end costs nothing.
type Adjustment struct {
	Shift               int
	ReviewRatio         float64
	ValidationComplexity Validation
	BreakFrequency      BreakCadence
	Rationale           string

	// Emergency marks the overload path: the orchestrator should act on
	// this directive before serving the next item.
	Emergency bool
}

// Adjust computes the difficulty directive for the current load. The
// overload rule (score above the band, or two simultaneous HIGH signals)
// forces the emergency row regardless of the raw score.
func Adjust(loadScore float64, indicators []stress.Indicator, sctx SessionContext, bands load.Bands) Adjustment {
	var adj Adjustment

	overloaded := stress.Overloaded(loadScore, bands.Overload, indicators)
	switch {
	case overloaded || loadScore >= bands.Overload:
		adj = Adjustment{
			Shift:                -2,
			ReviewRatio:          1.00,
			ValidationComplexity: ValidationDisabled,
			BreakFrequency:       BreaksImmediate,
			Emergency:            true,
			Rationale:            fmt.Sprintf("overload at load %.0f: review-only content, immediate break", loadScore),
		}
	case loadScore >= bands.Elevated:
		adj = Adjustment{
			Shift:                -1,
			ReviewRatio:          0.80,
			ValidationComplexity: ValidationSimplified,
			BreakFrequency:       BreaksFrequent,
			Rationale:            fmt.Sprintf("elevated load %.0f: easing difficulty, weighting review", loadScore),
		}
	case loadScore >= bands.Low:
		adj = Adjustment{
			Shift:                0,
			ReviewRatio:          0.60,
			ValidationComplexity: ValidationFull,
			BreakFrequency:       BreaksStandard,
			Rationale:            fmt.Sprintf("load %.0f in the productive band: holding steady", loadScore),
		}
	default:
		adj = Adjustment{
			Shift:                1,
			ReviewRatio:          0.50,
			ValidationComplexity: ValidationFull,
			BreakFrequency:       BreaksStandard,
			Rationale:            fmt.Sprintf("low load %.0f: room to increase challenge", loadScore),
		}
	}

	adj.Shift = capShift(adj.Shift, sctx.CumulativeShift)
	return adj
}

// capShift limits the proposed shift so the session's cumulative shift
// never leaves [-MaxCumulativeShift, MaxCumulativeShift].
func capShift(proposed, cumulative int) int {
	total := cumulative + proposed
	if total > MaxCumulativeShift {
		return MaxCumulativeShift - cumulative
	}
	if total < -MaxCumulativeShift {
		return -MaxCumulativeShift - cumulative
	}
	return proposed
}
