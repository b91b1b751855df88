package load

// Weights holds the relative weight of each load factor. They sum to 1.0.
type Weights struct {
	Latency     float64 `yaml:"latency"`
	ErrorRate   float64 `yaml:"error_rate"`
	Engagement  float64 `yaml:"engagement"`
	Performance float64 `yaml:"performance"`
	Duration    float64 `yaml:"duration"`
}

// Bands holds the load score boundaries that drive level naming and
// difficulty adjustment. Defaults suit most learners; they are tunable
// per deployment, not per user.
type Bands struct {
	Low      float64 `yaml:"low"`      // below: comfortable, room to push
	Elevated float64 `yaml:"elevated"` // at or above: ease off
	Overload float64 `yaml:"overload"` // at or above: emergency path
}

// Config controls the estimator.
type Config struct {
	Weights Weights `yaml:"weights"`
	Bands   Bands   `yaml:"bands"`

	// MinEvents is the minimum window size for a real estimate. Below
	// it the estimator returns the low-confidence default.
	MinEvents int `yaml:"min_events"`

	// DefaultScore is returned when the window is too sparse.
	DefaultScore float64 `yaml:"default_score"`

	// DefaultConfidenceCap bounds confidence for sparse-window estimates.
	DefaultConfidenceCap float64 `yaml:"default_confidence_cap"`

	// BudgetMs is the per-call latency budget. When exceeded and a
	// previous estimate exists, the estimator falls back to it with
	// halved confidence.
	BudgetMs int `yaml:"budget_ms"`
}

// DefaultConfig returns the standard estimator configuration.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			Latency:     0.30,
			ErrorRate:   0.25,
			Engagement:  0.20,
			Performance: 0.15,
			Duration:    0.10,
		},
		Bands: Bands{
			Low:      30,
			Elevated: 60,
			Overload: 80,
		},
		MinEvents:            5,
		DefaultScore:         30,
		DefaultConfidenceCap: 0.3,
		BudgetMs:             100,
	}
}
