// Package burnout computes the longitudinal burnout risk assessment: six
// capped factors over a two-week history, an explicit insufficient-data
// result for sparse histories, and a 24-hour rate limit on on-demand runs.
package burnout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/anupamd/studypulse/internal/store"
)

// ErrRateLimited marks an on-demand assessment that was answered from the
// cached result. The assessment returned alongside is valid; callers that
// only want a result can ignore the error.
var ErrRateLimited = errors.New("on-demand assessment rate limited")

// Assessor computes burnout risk assessments from stored history.
type Assessor struct {
	cfg         Config
	metrics     store.MetricRepo
	sessions    store.SessionRepo
	assessments store.AssessmentRepo
	log         zerolog.Logger

	// now is swappable for tests.
	now func() time.Time
}

// NewAssessor creates an assessor over the given repositories.
func NewAssessor(cfg Config, metrics store.MetricRepo, sessions store.SessionRepo, assessments store.AssessmentRepo, log zerolog.Logger) *Assessor {
	return &Assessor{
		cfg:         cfg,
		metrics:     metrics,
		sessions:    sessions,
		assessments: assessments,
		now:         time.Now,
		log:         log,
	}
}

// Assess runs a scheduled assessment for the user and persists it under
// today's date. Re-running on the same day updates the canonical row in
// place, so the (user, date) result stays idempotent.
func (a *Assessor) Assess(ctx context.Context, userID string) (*store.Assessment, error) {
	now := a.now()
	assessment, err := a.compute(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	if err := a.assessments.Upsert(ctx, *assessment); err != nil {
		return nil, fmt.Errorf("persist assessment: %w", err)
	}
	a.log.Info().
		Str("user", userID).
		Float64("risk_score", assessment.RiskScore).
		Str("risk_level", assessment.RiskLevel).
		Bool("insufficient_data", assessment.InsufficientData).
		Msg("burnout assessment complete")
	return assessment, nil
}

// AssessOnDemand serves a user-initiated assessment. Within the
// rate-limit interval of the previous on-demand run it returns the cached
// assessment and ErrRateLimited; otherwise it computes, persists and
// stamps the run time.
func (a *Assessor) AssessOnDemand(ctx context.Context, userID string) (*store.Assessment, error) {
	now := a.now()

	cached, err := a.assessments.Latest(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("lookup cached assessment: %w", err)
	}
	if cached != nil && !cached.OnDemandAt.IsZero() && now.Sub(cached.OnDemandAt) < a.cfg.OnDemandInterval {
		a.log.Debug().Str("user", userID).Time("last_run", cached.OnDemandAt).Msg("on-demand assessment served from cache")
		return cached, ErrRateLimited
	}

	assessment, err := a.compute(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	assessment.OnDemandAt = now
	if err := a.assessments.Upsert(ctx, *assessment); err != nil {
		return nil, fmt.Errorf("persist assessment: %w", err)
	}
	return assessment, nil
}

func (a *Assessor) compute(ctx context.Context, userID string, now time.Time) (*store.Assessment, error) {
	h, err := collect(ctx, a.metrics, a.sessions, userID, now, a.cfg.WindowDays)
	if err != nil {
		return nil, fmt.Errorf("collect history: %w", err)
	}

	date := now.Format("2006-01-02")

	if len(h.ended) < a.cfg.MinSessions || len(h.days) < a.cfg.MinMetricDays {
		return &store.Assessment{
			UserID:           userID,
			Date:             date,
			RiskScore:        0,
			RiskLevel:        LevelLow,
			InsufficientData: true,
			Factors: []store.FactorData{{
				Name:   "insufficient_data",
				Detail: fmt.Sprintf("%d completed sessions, %d measured days in the last %d days", len(h.ended), len(h.days), a.cfg.WindowDays),
			}},
			Recommendations: []string{"Not enough study history yet for a risk assessment. Keep sessions coming."},
		}, nil
	}

	factors := []store.FactorData{
		intensityFactor(h, a.cfg),
		declineFactor(h, a.cfg),
		chronicLoadFactor(h, a.cfg),
		irregularityFactor(h, a.cfg),
		engagementFactor(h, a.cfg),
		recoveryFactor(h, a.cfg),
	}

	score := 0.0
	for _, f := range factors {
		score += f.Contribution
	}
	if score > 100 {
		score = 100
	}

	assessment := &store.Assessment{
		UserID:    userID,
		Date:      date,
		RiskScore: score,
		RiskLevel: LevelFor(score, a.cfg.Levels),
		Factors:   factors,
	}

	// Warning signals annotate the record; they never move the score.
	for _, w := range detectWarnings(h) {
		assessment.Factors = append(assessment.Factors, store.FactorData{
			Name:   "warning:" + w.Kind,
			Detail: w.Detail,
		})
		assessment.Recommendations = append(assessment.Recommendations, warningAdvice(w))
	}
	assessment.Recommendations = append(assessment.Recommendations, levelAdvice(assessment.RiskLevel)...)

	return assessment, nil
}

func warningAdvice(w warning) string {
	switch w.Kind {
	case WarnPlateau:
		return "Progress has flattened; a change of material or difficulty may help."
	case WarnTopicAvoid:
		return "One topic has been dropped recently; consider a short, low-stakes review of it."
	case WarnLateSessions:
		return "Many sessions start late at night; earlier slots tend to lower load."
	case WarnNoHelpSeeking:
		return "No check-ins recorded; rating sessions helps tune recommendations."
	default:
		return w.Detail
	}
}

func levelAdvice(level string) []string {
	switch level {
	case LevelCritical:
		return []string{"Sustained overload detected. A multi-day break is strongly recommended."}
	case LevelHigh:
		return []string{"Risk is high. Reduce weekly study hours and prioritize lighter material."}
	case LevelMedium:
		return []string{"Load is building. Plan a rest day this week."}
	default:
		return nil
	}
}
