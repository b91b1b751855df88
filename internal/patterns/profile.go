package patterns

import (
	"math"

	"github.com/anupamd/studypulse/internal/store"
)

const (
	maxPrimaryStressors  = 3
	defaultLoadTolerance = 60

	// copingMinOffered and copingMinRate gate which acknowledged
	// intervention actions count as working coping strategies.
	copingMinOffered = 2
	copingMinRate    = 0.5
)

// StressProfile is a derived view over a user's surfaced patterns and
// intervention history. It is computed on demand and never stored.
type StressProfile struct {
	PrimaryStressors []store.Pattern

	// LoadTolerance is the lowest sustained load at which this user's
	// stress patterns start to appear.
	LoadTolerance float64

	// AvgRecoveryHours averages the recovery estimates across patterns
	// that have one. Zero when none do.
	AvgRecoveryHours float64

	// EffectiveCoping lists intervention actions this user has accepted
	// often enough to treat as working strategies.
	EffectiveCoping []string
}

// BuildProfile derives a stress profile from surfaced patterns (highest
// confidence first, as the store returns them) and per-action
// intervention acceptance stats.
func BuildProfile(surfaced []store.Pattern, acks []store.AcceptanceStat) StressProfile {
	profile := StressProfile{LoadTolerance: defaultLoadTolerance}

	n := len(surfaced)
	if n > maxPrimaryStressors {
		n = maxPrimaryStressors
	}
	profile.PrimaryStressors = surfaced[:n]

	tolerance := math.Inf(1)
	recoverySum := 0.0
	recoveryN := 0
	for _, p := range surfaced {
		if mean, ok := p.ResponseProfile["mean_load"]; ok && mean < tolerance {
			tolerance = mean
		}
		if hours, ok := p.ResponseProfile["recovery_hours"]; ok {
			recoverySum += hours
			recoveryN++
		}
	}
	if !math.IsInf(tolerance, 1) {
		profile.LoadTolerance = tolerance
	}
	if recoveryN > 0 {
		profile.AvgRecoveryHours = recoverySum / float64(recoveryN)
	}

	for _, stat := range acks {
		if stat.Offered < copingMinOffered {
			continue
		}
		if float64(stat.Accepted)/float64(stat.Offered) >= copingMinRate {
			profile.EffectiveCoping = append(profile.EffectiveCoping, stat.Action)
		}
	}
	return profile
}
