package burnout

import "time"

// Caps bound each factor's contribution. They sum to 100.
type Caps struct {
	Intensity    float64 `yaml:"intensity"`
	Decline      float64 `yaml:"decline"`
	ChronicLoad  float64 `yaml:"chronic_load"`
	Irregularity float64 `yaml:"irregularity"`
	Engagement   float64 `yaml:"engagement"`
	Recovery     float64 `yaml:"recovery"`
}

// Levels are the risk-score boundaries for the named risk levels.
type Levels struct {
	Medium   float64 `yaml:"medium"`
	High     float64 `yaml:"high"`
	Critical float64 `yaml:"critical"`
}

// Config controls the assessor.
type Config struct {
	Caps   Caps   `yaml:"caps"`
	Levels Levels `yaml:"levels"`

	// WindowDays is the history span one assessment covers.
	WindowDays int `yaml:"window_days"`

	// HoursCeiling is the weekly study-hours level treated as maximal
	// intensity.
	HoursCeiling float64 `yaml:"hours_ceiling"`

	// ChronicLoadThreshold marks a day as high-load when its average
	// load exceeds it.
	ChronicLoadThreshold float64 `yaml:"chronic_load_threshold"`

	// RecoveryLoadThreshold is the daily average below which a day
	// counts as recovery.
	RecoveryLoadThreshold float64 `yaml:"recovery_load_threshold"`

	// RecoveryGraceDays is how long without a recovery day is tolerated
	// before the deficit factor starts charging.
	RecoveryGraceDays int `yaml:"recovery_grace_days"`

	// OnDemandInterval rate-limits on-demand assessments; within it the
	// cached assessment is returned.
	OnDemandInterval time.Duration `yaml:"on_demand_interval"`

	// MinSessions and MinMetricDays gate real scoring; below either the
	// assessor returns an explicit insufficient-data result.
	MinSessions   int `yaml:"min_sessions"`
	MinMetricDays int `yaml:"min_metric_days"`
}

// DefaultConfig returns the standard assessor configuration.
func DefaultConfig() Config {
	return Config{
		Caps: Caps{
			Intensity:    20,
			Decline:      25,
			ChronicLoad:  25,
			Irregularity: 15,
			Engagement:   10,
			Recovery:     5,
		},
		Levels: Levels{
			Medium:   25,
			High:     50,
			Critical: 75,
		},
		WindowDays:            14,
		HoursCeiling:          40,
		ChronicLoadThreshold:  60,
		RecoveryLoadThreshold: 40,
		RecoveryGraceDays:     7,
		OnDemandInterval:      24 * time.Hour,
		MinSessions:           3,
		MinMetricDays:         3,
	}
}

// Factor names used in contributing-factor records.
const (
	FactorIntensity    = "study_intensity"
	FactorDecline      = "performance_decline"
	FactorChronicLoad  = "chronic_high_load"
	FactorIrregularity = "session_irregularity"
	FactorEngagement   = "engagement_decay"
	FactorRecovery     = "recovery_deficit"
)

// Risk levels.
const (
	LevelLow      = "LOW"
	LevelMedium   = "MEDIUM"
	LevelHigh     = "HIGH"
	LevelCritical = "CRITICAL"
)

// LevelFor maps a risk score to its level.
func LevelFor(score float64, l Levels) string {
	switch {
	case score >= l.Critical:
		return LevelCritical
	case score >= l.High:
		return LevelHigh
	case score >= l.Medium:
		return LevelMedium
	default:
		return LevelLow
	}
}
