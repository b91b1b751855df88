package patterns

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/anupamd/studypulse/internal/store"
)

// Miner extracts recurring stress responses from a user's load metric
// history. A run reads the lookback window, groups metrics by context
// dimension, and merges every candidate group into the pattern store.
// Re-running over the same history converges on the same rows.
type Miner struct {
	cfg      Config
	metrics  store.MetricRepo
	patterns store.PatternRepo
	log      zerolog.Logger

	now func() time.Time
}

func NewMiner(cfg Config, metrics store.MetricRepo, patterns store.PatternRepo, log zerolog.Logger) *Miner {
	return &Miner{
		cfg:      cfg,
		metrics:  metrics,
		patterns: patterns,
		log:      log.With().Str("component", "patterns").Logger(),
		now:      time.Now,
	}
}

// group accumulates the metrics sharing one trigger signature.
type group struct {
	patternType string
	signature   string
	conditions  map[string]string
	metrics     []store.LoadMetric
}

// Mine runs one mining pass for the user and returns the patterns that
// clear the surfacing floors. Candidates below the floors are still
// persisted so later runs can promote them.
func (m *Miner) Mine(ctx context.Context, userID string) ([]store.Pattern, error) {
	now := m.now()
	from := now.AddDate(0, 0, -m.cfg.LookbackDays)

	history, err := m.metrics.ByUser(ctx, userID, from, now)
	if err != nil {
		return nil, fmt.Errorf("load metric history: %w", err)
	}

	groups := m.groupMetrics(history)
	merged := 0
	for _, g := range groups {
		mean := meanLoad(g.metrics)
		if mean <= m.threshold(g.patternType) || len(g.metrics) < m.minObs(g.patternType) {
			continue
		}
		p := m.buildPattern(userID, g, mean, history)
		if err := m.patterns.Merge(ctx, p); err != nil {
			return nil, fmt.Errorf("merge pattern %s: %w", p.Signature, err)
		}
		merged++
	}

	surfaced, err := m.patterns.ByUser(ctx, userID, m.cfg.ConfidenceFloor, m.cfg.MinFrequency)
	if err != nil {
		return nil, fmt.Errorf("query surfaced patterns: %w", err)
	}

	m.log.Info().
		Str("user_id", userID).
		Int("metrics", len(history)).
		Int("merged", merged).
		Int("surfaced", len(surfaced)).
		Msg("mining pass complete")
	return surfaced, nil
}

func (m *Miner) groupMetrics(history []store.LoadMetric) []group {
	byKey := map[string]*group{}
	add := func(patternType, signature string, conditions map[string]string, metric store.LoadMetric) {
		key := patternType + "|" + signature
		g, ok := byKey[key]
		if !ok {
			g = &group{patternType: patternType, signature: signature, conditions: conditions}
			byKey[key] = g
		}
		g.metrics = append(g.metrics, metric)
	}

	for _, metric := range history {
		if topic := strings.TrimSpace(metric.Topic); topic != "" {
			add(TypeTopic, "topic="+topic, map[string]string{"topic": topic}, metric)
		}
		hour := fmt.Sprintf("%02d", metric.Hour)
		add(TypeTimeOfDay, "hour="+hour, map[string]string{"hour": hour}, metric)

		weekday := strings.ToLower(time.Weekday(metric.Weekday).String())
		add(TypeDayOfWeek, "weekday="+weekday, map[string]string{"weekday": weekday}, metric)

		if bucket, ok := examBucket(metric.DaysToExam); ok {
			add(TypeExamProximity, "days_to_exam<="+bucket, map[string]string{"days_to_exam": bucket}, metric)
		}
	}

	out := make([]group, 0, len(byKey))
	for _, g := range byKey {
		out = append(out, *g)
	}
	// Map iteration order is not stable; merges should be.
	sort.Slice(out, func(i, j int) bool {
		if out[i].patternType != out[j].patternType {
			return out[i].patternType < out[j].patternType
		}
		return out[i].signature < out[j].signature
	})
	return out
}

func (m *Miner) buildPattern(userID string, g group, mean float64, history []store.LoadMetric) store.Pattern {
	first, last := g.metrics[0].Timestamp, g.metrics[0].Timestamp
	peak := g.metrics[0].Score
	confidenceSum := 0.0
	highSeverity := 0
	for _, metric := range g.metrics {
		if metric.Timestamp.Before(first) {
			first = metric.Timestamp
		}
		if metric.Timestamp.After(last) {
			last = metric.Timestamp
		}
		if metric.Score > peak {
			peak = metric.Score
		}
		confidenceSum += metric.Confidence
		for _, ind := range metric.Indicators {
			if ind.Severity == "HIGH" {
				highSeverity++
				break
			}
		}
	}

	n := len(g.metrics)
	profile := map[string]float64{
		"mean_load":           round2(mean),
		"peak_load":           round2(peak),
		"mean_confidence":     round2(confidenceSum / float64(n)),
		"high_severity_share": round2(float64(highSeverity) / float64(n)),
	}
	if hours, ok := m.recoveryHours(g.metrics, history); ok {
		profile["recovery_hours"] = round2(hours)
	}

	return store.Pattern{
		UserID:            userID,
		Type:              g.patternType,
		Signature:         g.signature,
		TriggerConditions: g.conditions,
		ResponseProfile:   profile,
		Occurrences:       n,
		Confidence:        math.Min(m.cfg.ConfidenceCap, float64(n)/m.cfg.ConfidenceNormalizer),
		FirstDetectedAt:   first,
		LastOccurrence:    last,
	}
}

// recoveryHours estimates how long it takes the user's load to come
// back under the recovery threshold after a metric in this group.
// History is in ascending timestamp order.
func (m *Miner) recoveryHours(members []store.LoadMetric, history []store.LoadMetric) (float64, bool) {
	total := 0.0
	samples := 0
	for _, member := range members {
		for _, metric := range history {
			if !metric.Timestamp.After(member.Timestamp) {
				continue
			}
			if metric.Score < m.cfg.RecoveryLoad {
				total += metric.Timestamp.Sub(member.Timestamp).Hours()
				samples++
				break
			}
		}
	}
	if samples == 0 {
		return 0, false
	}
	return total / float64(samples), true
}

func (m *Miner) threshold(patternType string) float64 {
	switch patternType {
	case TypeTopic:
		return m.cfg.Thresholds.Topic
	case TypeTimeOfDay:
		return m.cfg.Thresholds.TimeOfDay
	case TypeDayOfWeek:
		return m.cfg.Thresholds.DayOfWeek
	default:
		return m.cfg.Thresholds.ExamProximity
	}
}

func (m *Miner) minObs(patternType string) int {
	switch patternType {
	case TypeTopic:
		return m.cfg.MinObs.Topic
	case TypeTimeOfDay:
		return m.cfg.MinObs.TimeOfDay
	case TypeDayOfWeek:
		return m.cfg.MinObs.DayOfWeek
	default:
		return m.cfg.MinObs.ExamProximity
	}
}

// examBucket maps days-to-exam to a coarse proximity bucket. Negative
// values mean no exam is scheduled.
func examBucket(days int) (string, bool) {
	switch {
	case days < 0:
		return "", false
	case days <= 3:
		return "3", true
	case days <= 7:
		return "7", true
	default:
		return "", false
	}
}

func meanLoad(metrics []store.LoadMetric) float64 {
	sum := 0.0
	for _, m := range metrics {
		sum += m.Score
	}
	return sum / float64(len(metrics))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
