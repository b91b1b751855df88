package stress

import (
	"fmt"
	"time"

	"github.com/anupamd/studypulse/internal/events"
)

// Detector inspects the window for one kind of stress signal.
// Detect returns (Indicator{}, false) when the signal is absent.
type Detector interface {
	Name() string
	Detect(w *events.Window) (Indicator, bool)
}

// DefaultDetectors returns the standard detector set. Unlike an error
// classifier chain, every detector runs, since simultaneous signals matter
// for the overload rule.
func DefaultDetectors() []Detector {
	return []Detector{
		&LatencySpikeDetector{},
		&ErrorClusterDetector{},
		&RepeatFailureDetector{},
		&EngagementDropDetector{},
		&AbandonmentDetector{},
	}
}

// Detect runs every detector against the window and collects the
// indicators that fired.
func Detect(w *events.Window) []Indicator {
	return RunDetectors(DefaultDetectors(), w)
}

// RunDetectors executes detectors in order, collecting all hits.
func RunDetectors(detectors []Detector, w *events.Window) []Indicator {
	var out []Indicator
	for _, d := range detectors {
		if ind, ok := d.Detect(w); ok {
			out = append(out, ind)
		}
	}
	return out
}

// Overloaded reports whether the session has crossed the emergency
// threshold: load above the overload band, or two HIGH-severity signals
// at once.
func Overloaded(loadScore, overloadBand float64, indicators []Indicator) bool {
	if loadScore > overloadBand {
		return true
	}
	high := 0
	for _, ind := range indicators {
		if ind.Severity == SeverityHigh {
			high++
		}
	}
	return high >= 2
}

// latencySpikeMinResponses is the minimum sample size before the rolling
// mean/stddev are trustworthy.
const latencySpikeMinResponses = 5

// LatencySpikeDetector fires when the latest response latency sits more
// than two standard deviations above the rolling mean.
type LatencySpikeDetector struct{}

func (d *LatencySpikeDetector) Name() string { return "latency-spike" }

func (d *LatencySpikeDetector) Detect(w *events.Window) (Indicator, bool) {
	if w.ResponseCount() < latencySpikeMinResponses {
		return Indicator{}, false
	}
	std := w.LatencyStdDev()
	if std <= 0 {
		return Indicator{}, false
	}
	z := (float64(w.LastLatency()) - w.BaselineLatency()) / std
	if z <= 2 {
		return Indicator{}, false
	}

	sev := SeverityMedium
	if z > 3 {
		sev = SeverityHigh
	}
	return Indicator{
		Type:         TypeLatencySpike,
		Severity:     sev,
		Contribution: clamp01(z / 4),
		Detail:       fmt.Sprintf("last response %.1f std devs above rolling mean", z),
	}, true
}

// errorClusterMin is the consecutive-incorrect run that counts as a
// cluster; errorClusterHigh upgrades the severity.
const (
	errorClusterMin  = 3
	errorClusterHigh = 5
)

// ErrorClusterDetector fires on a run of consecutive incorrect answers.
type ErrorClusterDetector struct{}

func (d *ErrorClusterDetector) Name() string { return "error-cluster" }

func (d *ErrorClusterDetector) Detect(w *events.Window) (Indicator, bool) {
	run := w.ConsecutiveIncorrect()
	if run < errorClusterMin {
		return Indicator{}, false
	}
	sev := SeverityMedium
	if run >= errorClusterHigh {
		sev = SeverityHigh
	}
	return Indicator{
		Type:         TypeErrorCluster,
		Severity:     sev,
		Contribution: clamp01(float64(run) / 10),
		Detail:       fmt.Sprintf("%d consecutive incorrect responses", run),
	}, true
}

// RepeatFailureDetector fires when one item has absorbed three or more
// failed attempts without progress.
type RepeatFailureDetector struct{}

func (d *RepeatFailureDetector) Name() string { return "repeat-failure" }

func (d *RepeatFailureDetector) Detect(w *events.Window) (Indicator, bool) {
	attempts := w.MaxRepeatFailures()
	if attempts < 3 {
		return Indicator{}, false
	}
	sev := SeverityMedium
	if attempts >= 5 {
		sev = SeverityHigh
	}
	return Indicator{
		Type:         TypeRepeatFailure,
		Severity:     sev,
		Contribution: clamp01(float64(attempts) / 6),
		Detail:       fmt.Sprintf("%d attempts on one item without progress", attempts),
	}, true
}

// Pause-count thresholds over the window's 10-minute lookback.
const (
	engagementDropMedium = 3
	engagementDropHigh   = 5
)

// EngagementDropDetector fires when pauses pile up or a very long pause
// is observed.
type EngagementDropDetector struct{}

func (d *EngagementDropDetector) Name() string { return "engagement-drop" }

func (d *EngagementDropDetector) Detect(w *events.Window) (Indicator, bool) {
	pauses := w.RecentPauseCount()
	longIdle := w.PauseCount() > 0 && w.TotalPauseDuration() > 5*time.Minute
	if pauses < engagementDropMedium && !longIdle {
		return Indicator{}, false
	}
	sev := SeverityMedium
	if pauses >= engagementDropHigh {
		sev = SeverityHigh
	}
	return Indicator{
		Type:         TypeEngagementDrop,
		Severity:     sev,
		Contribution: clamp01(float64(pauses) / float64(engagementDropHigh)),
		Detail:       fmt.Sprintf("%d pauses in the last 10 minutes", pauses),
	}, true
}

// abandonPartialThreshold marks completion ratios below it as HIGH.
const abandonPartialThreshold = 0.5

// AbandonmentDetector fires when the session ended abruptly or only
// partially complete.
type AbandonmentDetector struct{}

func (d *AbandonmentDetector) Name() string { return "abandonment" }

func (d *AbandonmentDetector) Detect(w *events.Window) (Indicator, bool) {
	if !w.Abandoned() {
		return Indicator{}, false
	}
	sev := SeverityMedium
	if w.CompletionRatio() < abandonPartialThreshold {
		sev = SeverityHigh
	}
	return Indicator{
		Type:         TypeAbandonmentSignal,
		Severity:     sev,
		Contribution: clamp01(1 - w.CompletionRatio()),
		Detail:       fmt.Sprintf("session left at %.0f%% completion", w.CompletionRatio()*100),
	}, true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
