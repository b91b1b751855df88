package burnout

import (
	"fmt"

	"github.com/anupamd/studypulse/internal/store"
)

// Each factor maps history to a capped contribution. The assessor sums
// them; because the caps sum to 100 the total needs no rescaling.

// intensityFactor charges for weekly study hours approaching the ceiling.
func intensityFactor(h *history, cfg Config) store.FactorData {
	hours := h.hoursPerWeek()
	contrib := capAt(hours/cfg.HoursCeiling*cfg.Caps.Intensity, cfg.Caps.Intensity)
	return store.FactorData{
		Name:         FactorIntensity,
		Contribution: contrib,
		Cap:          cfg.Caps.Intensity,
		Detail:       fmt.Sprintf("%.1f study hours/week against a %.0fh ceiling", hours, cfg.HoursCeiling),
	}
}

// declineReferenceDrop is the accuracy drop (fractional) charged at full
// cap.
const declineReferenceDrop = 0.30

// declineFactor charges for a falling two-week performance trend.
func declineFactor(h *history, cfg Config) store.FactorData {
	f := store.FactorData{Name: FactorDecline, Cap: cfg.Caps.Decline}
	early, late, ok := h.weeklyAccuracy()
	if !ok || early <= 0 {
		f.Detail = "not enough answered work to compare weeks"
		return f
	}
	drop := (early - late) / early
	if drop < 0 {
		drop = 0
	}
	f.Contribution = capAt(drop/declineReferenceDrop*cfg.Caps.Decline, cfg.Caps.Decline)
	f.Detail = fmt.Sprintf("accuracy %.0f%% -> %.0f%% week over week", early*100, late*100)
	return f
}

// chronicLoadFactor charges for the fraction of measured days spent above
// the high-load threshold.
func chronicLoadFactor(h *history, cfg Config) store.FactorData {
	f := store.FactorData{Name: FactorChronicLoad, Cap: cfg.Caps.ChronicLoad}
	if len(h.days) == 0 {
		f.Detail = "no measured days"
		return f
	}
	high := 0
	for _, d := range h.days {
		if d.avgLoad > cfg.ChronicLoadThreshold {
			high++
		}
	}
	frac := float64(high) / float64(len(h.days))
	f.Contribution = capAt(frac*cfg.Caps.ChronicLoad, cfg.Caps.ChronicLoad)
	f.Detail = fmt.Sprintf("%d of %d measured days above load %.0f", high, len(h.days), cfg.ChronicLoadThreshold)
	return f
}

// irregularityFactor charges for skipped sessions relative to completed
// ones.
func irregularityFactor(h *history, cfg Config) store.FactorData {
	f := store.FactorData{Name: FactorIrregularity, Cap: cfg.Caps.Irregularity}
	total := len(h.ended) + h.skips
	if total == 0 {
		f.Detail = "no sessions in window"
		return f
	}
	frac := float64(h.skips) / float64(total)
	f.Contribution = capAt(frac*2*cfg.Caps.Irregularity, cfg.Caps.Irregularity)
	f.Detail = fmt.Sprintf("%d skipped of %d planned sessions", h.skips, total)
	return f
}

// engagementFactor charges for abandonment and a sagging self-rating
// trend.
func engagementFactor(h *history, cfg Config) store.FactorData {
	f := store.FactorData{Name: FactorEngagement, Cap: cfg.Caps.Engagement}
	if len(h.ended) == 0 {
		f.Detail = "no completed sessions"
		return f
	}

	abandoned := 0
	var ratingSum, ratingN int
	for _, s := range h.ended {
		if s.CompletionRatio < 0.8 {
			abandoned++
		}
		if s.SelfRating > 0 {
			ratingSum += s.SelfRating
			ratingN++
		}
	}

	score := float64(abandoned) / float64(len(h.ended))
	if ratingN > 0 {
		avg := float64(ratingSum) / float64(ratingN)
		if avg < 3 {
			score += (3 - avg) / 2
		}
	}
	f.Contribution = capAt(score*cfg.Caps.Engagement, cfg.Caps.Engagement)
	f.Detail = fmt.Sprintf("%d of %d sessions cut short", abandoned, len(h.ended))
	return f
}

// recoveryFactor charges for days without a low-load day beyond the grace
// period.
func recoveryFactor(h *history, cfg Config) store.FactorData {
	f := store.FactorData{Name: FactorRecovery, Cap: cfg.Caps.Recovery}
	if len(h.days) == 0 {
		f.Detail = "no measured days"
		return f
	}
	days := h.daysSinceRecovery(cfg.RecoveryLoadThreshold)
	over := days - cfg.RecoveryGraceDays
	if over <= 0 {
		f.Detail = fmt.Sprintf("last recovery day %d days ago", days)
		return f
	}
	f.Contribution = capAt(float64(over)/float64(cfg.RecoveryGraceDays)*cfg.Caps.Recovery, cfg.Caps.Recovery)
	f.Detail = fmt.Sprintf("%d days without a day below load %.0f", days, cfg.RecoveryLoadThreshold)
	return f
}

func capAt(v, limit float64) float64 {
	if v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}
