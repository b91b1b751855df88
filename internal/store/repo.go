package store

import (
	"context"
	"time"
)

// IndicatorData is one stress indicator attached to a persisted metric.
type IndicatorData struct {
	Type         string
	Severity     string
	Contribution float64
}

// LoadMetric is one persisted cognitive-load measurement.
type LoadMetric struct {
	SessionID  string
	UserID     string
	Timestamp  time.Time
	Score      float64
	Confidence float64
	Indicators []IndicatorData
	Topic      string
	Hour       int
	Weekday    int
	DaysToExam int
}

// MetricRepo provides append and ordered read access to load metrics.
// Reads always return metrics in ascending timestamp order; trend
// calculations depend on it.
type MetricRepo interface {
	// Append records a load metric.
	Append(ctx context.Context, m LoadMetric) error

	// ByUser returns a user's metrics within [from, to], ascending.
	ByUser(ctx context.Context, userID string, from, to time.Time) ([]LoadMetric, error)

	// Recent returns a user's last n metrics, ascending.
	Recent(ctx context.Context, userID string, n int) ([]LoadMetric, error)

	// BySession returns a session's metrics, ascending.
	BySession(ctx context.Context, sessionID string) ([]LoadMetric, error)
}

// SessionRecord is one session lifecycle row.
type SessionRecord struct {
	SessionID       string
	UserID          string
	Timestamp       time.Time
	Action          string // start, end or skip
	DurationSecs    int
	Interactions    int
	Correct         int
	CompletionRatio float64
	SelfRating      int
	Topic           string
	Planned         bool
}

// SessionRepo provides append and read access to session lifecycle events.
type SessionRepo interface {
	Append(ctx context.Context, rec SessionRecord) error

	// ByUser returns a user's session rows within [from, to], ascending.
	ByUser(ctx context.Context, userID string, from, to time.Time) ([]SessionRecord, error)

	// Users returns every user id that has session rows.
	Users(ctx context.Context) ([]string, error)
}

// FactorData is one contributing factor of an assessment.
type FactorData struct {
	Name         string
	Contribution float64
	Cap          float64
	Detail       string
}

// Assessment is the canonical burnout risk assessment for one user-day.
type Assessment struct {
	UserID           string
	Date             string // YYYY-MM-DD
	RiskScore        float64
	RiskLevel        string
	Factors          []FactorData
	Recommendations  []string
	InsufficientData bool
	OnDemandAt       time.Time
	UpdatedAt        time.Time
}

// AssessmentRepo manages assessments with date idempotency.
type AssessmentRepo interface {
	// Upsert writes the assessment for (UserID, Date), replacing any
	// existing row for the same key.
	Upsert(ctx context.Context, a Assessment) error

	// Get returns the assessment for (userID, date), or nil if absent.
	Get(ctx context.Context, userID, date string) (*Assessment, error)

	// Latest returns the user's most recent assessment, or nil.
	Latest(ctx context.Context, userID string) (*Assessment, error)

	// TouchOnDemand stamps the on-demand run time on an existing row.
	TouchOnDemand(ctx context.Context, userID, date string, at time.Time) error
}

// Pattern is a mined stress response pattern.
type Pattern struct {
	UserID            string
	Type              string
	Signature         string
	TriggerConditions map[string]string
	ResponseProfile   map[string]float64
	Occurrences       int
	Confidence        float64
	FirstDetectedAt   time.Time
	LastOccurrence    time.Time
}

// PatternRepo manages patterns keyed by (user, type, signature).
type PatternRepo interface {
	// Merge folds the observation into an existing pattern or creates
	// it. Confidence never decreases; FirstDetectedAt is preserved.
	Merge(ctx context.Context, p Pattern) error

	// ByUser returns patterns meeting the confidence and frequency
	// floors, highest confidence first.
	ByUser(ctx context.Context, userID string, minConfidence float64, minFrequency int) ([]Pattern, error)

	// AllByUser returns every stored pattern for the user, including
	// ones below the surfacing floors.
	AllByUser(ctx context.Context, userID string) ([]Pattern, error)
}

// InterventionAck records the learner's response to an intervention.
type InterventionAck struct {
	UserID         string
	InterventionID string
	Action         string
	RiskLevel      string
	Accepted       bool
	Timestamp      time.Time
}

// AcceptanceStat summarizes how a user responds to one intervention action.
type AcceptanceStat struct {
	Action   string
	Offered  int
	Accepted int
}

// InterventionRepo provides append and aggregate access to
// acknowledgements.
type InterventionRepo interface {
	Append(ctx context.Context, ack InterventionAck) error

	// AcceptanceByAction aggregates acks per action for a user.
	AcceptanceByAction(ctx context.Context, userID string) ([]AcceptanceStat, error)
}
