package patterns

// Pattern types produced by the miner, one per context dimension of
// the stored load metrics.
const (
	TypeTopic         = "topic_stress"
	TypeTimeOfDay     = "time_of_day"
	TypeDayOfWeek     = "day_of_week"
	TypeExamProximity = "exam_proximity"
)

// Thresholds holds the mean-load bar a metric group must clear before
// it becomes a pattern candidate, per pattern type.
type Thresholds struct {
	Topic         float64 `yaml:"topic"`
	TimeOfDay     float64 `yaml:"time_of_day"`
	DayOfWeek     float64 `yaml:"day_of_week"`
	ExamProximity float64 `yaml:"exam_proximity"`
}

// MinObservations holds the corroboration floor per pattern type.
type MinObservations struct {
	Topic         int `yaml:"topic"`
	TimeOfDay     int `yaml:"time_of_day"`
	DayOfWeek     int `yaml:"day_of_week"`
	ExamProximity int `yaml:"exam_proximity"`
}

type Config struct {
	Thresholds Thresholds      `yaml:"thresholds"`
	MinObs     MinObservations `yaml:"min_observations"`

	// ConfidenceCap and ConfidenceNormalizer shape the confidence
	// curve: min(cap, occurrences/normalizer).
	ConfidenceCap        float64 `yaml:"confidence_cap"`
	ConfidenceNormalizer float64 `yaml:"confidence_normalizer"`

	// ConfidenceFloor and MinFrequency gate which stored patterns are
	// surfaced to callers. Below-floor patterns stay in the store and
	// keep accumulating evidence.
	ConfidenceFloor float64 `yaml:"confidence_floor"`
	MinFrequency    int     `yaml:"min_frequency"`

	// LookbackDays bounds how much metric history one mining run reads.
	LookbackDays int `yaml:"lookback_days"`

	// RecoveryLoad is the score under which a later metric counts as
	// recovered, used for the recovery-time estimate in the response
	// profile.
	RecoveryLoad float64 `yaml:"recovery_load"`
}

func DefaultConfig() Config {
	return Config{
		Thresholds: Thresholds{
			Topic:         65,
			TimeOfDay:     60,
			DayOfWeek:     60,
			ExamProximity: 70,
		},
		MinObs: MinObservations{
			Topic:         3,
			TimeOfDay:     5,
			DayOfWeek:     5,
			ExamProximity: 3,
		},
		ConfidenceCap:        0.95,
		ConfidenceNormalizer: 10,
		ConfidenceFloor:      0.6,
		MinFrequency:         3,
		LookbackDays:         90,
		RecoveryLoad:         40,
	}
}
