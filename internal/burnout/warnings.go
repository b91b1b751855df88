package burnout

import (
	"fmt"
	"math"
)

// Warning signals annotate an assessment without moving its score. They
// catch patterns the numeric factors are blind to: treading water,
// avoiding a topic, drifting into late-night sessions, never checking in.

const (
	WarnPlateau       = "performance-plateau"
	WarnTopicAvoid    = "topic-avoidance"
	WarnLateSessions  = "irregular-late-sessions"
	WarnNoHelpSeeking = "no-help-seeking"
)

type warning struct {
	Kind   string
	Detail string
}

// plateauBand is the week-over-week accuracy change treated as "flat".
const plateauBand = 0.02

func detectWarnings(h *history) []warning {
	var out []warning

	if early, late, ok := h.weeklyAccuracy(); ok {
		if math.Abs(late-early) <= plateauBand && early > 0 && early < 0.9 {
			out = append(out, warning{
				Kind:   WarnPlateau,
				Detail: fmt.Sprintf("accuracy flat at %.0f%% for two weeks", late*100),
			})
		}
	}

	if topic, ok := avoidedTopic(h); ok {
		out = append(out, warning{
			Kind:   WarnTopicAvoid,
			Detail: fmt.Sprintf("topic %q studied early in the window, untouched since", topic),
		})
	}

	if frac := lateSessionFraction(h); frac > 0.3 {
		out = append(out, warning{
			Kind:   WarnLateSessions,
			Detail: fmt.Sprintf("%.0f%% of sessions start between 22:00 and 05:00", frac*100),
		})
	}

	if len(h.ended) >= 3 && !anySelfRating(h) {
		out = append(out, warning{
			Kind:   WarnNoHelpSeeking,
			Detail: "no session check-ins or self-ratings in the window",
		})
	}

	return out
}

// avoidedTopic finds a topic present in the first half of the window but
// absent from the second while other study continued.
func avoidedTopic(h *history) (string, bool) {
	mid := h.from.Add(h.to.Sub(h.from) / 2)
	earlyCount := make(map[string]int)
	late := make(map[string]bool)
	lateSessions := 0
	for _, s := range h.ended {
		if s.Topic == "" {
			continue
		}
		if s.Timestamp.Before(mid) {
			earlyCount[s.Topic]++
		} else {
			late[s.Topic] = true
			lateSessions++
		}
	}
	if lateSessions == 0 {
		return "", false
	}
	for topic, n := range earlyCount {
		if n >= 2 && !late[topic] {
			return topic, true
		}
	}
	return "", false
}

func lateSessionFraction(h *history) float64 {
	if len(h.sessions) == 0 {
		return 0
	}
	late := 0
	starts := 0
	for _, s := range h.sessions {
		if s.Action != "start" {
			continue
		}
		starts++
		hour := s.Timestamp.Hour()
		if hour >= 22 || hour < 5 {
			late++
		}
	}
	if starts == 0 {
		return 0
	}
	return float64(late) / float64(starts)
}

func anySelfRating(h *history) bool {
	for _, s := range h.ended {
		if s.SelfRating > 0 {
			return true
		}
	}
	return false
}
