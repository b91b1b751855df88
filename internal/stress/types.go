// Package stress derives typed, severity-tagged stress signals from a
// session's event window.
package stress

// IndicatorType classifies a stress signal.
type IndicatorType string

const (
	TypeLatencySpike      IndicatorType = "LATENCY_SPIKE"
	TypeErrorCluster      IndicatorType = "ERROR_CLUSTER"
	TypeRepeatFailure     IndicatorType = "REPEAT_FAILURE"
	TypeEngagementDrop    IndicatorType = "ENGAGEMENT_DROP"
	TypeAbandonmentSignal IndicatorType = "ABANDONMENT_SIGNAL"
)

// Severity grades how strong a signal is.
type Severity string

const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

// Indicator is one detected stress signal.
type Indicator struct {
	Type     IndicatorType
	Severity Severity

	// Contribution is the normalized signal magnitude in [0,1], used for
	// explainability alongside the load factors.
	Contribution float64

	// Detail is a short human-readable description of what fired.
	Detail string
}
