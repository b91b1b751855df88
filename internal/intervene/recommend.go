package intervene

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/anupamd/studypulse/internal/burnout"
	"github.com/anupamd/studypulse/internal/patterns"
	"github.com/anupamd/studypulse/internal/store"
)

// benefits maps each action to the outcome the suggestion is after.
var benefits = map[string]string{
	ActionMaintainAwareness:  "keeps you aware of your load while everything stays on track",
	ActionRestDay:            "one full day off typically restores focus within 48 hours",
	ActionReduceWorkload:     "a ~20% lighter plan lowers daily load without losing momentum",
	ActionAddBreaks:          "regular breaks cut sustained-load spikes within a session",
	ActionMandatoryRest:      "a hard stop prevents the slide from high strain into burnout",
	ActionReduceTargetHours:  "cutting target hours ~30% gives recovery room while keeping a routine",
	ActionLighterContent:     "familiar, lighter material keeps practice going at low cost",
	ActionExtendedBreak:      "2-3 days away is the fastest route back to a sustainable baseline",
	ActionDisableNewMaterial: "pausing new topics removes the main driver of overload",
	ActionSupportiveFraming:  "a reminder that this is recoverable and the plan adapts with you",
	ActionReviewOnly:         "low-stakes review maintains retention while stress comes down",
}

// actionsFor holds the base suggestion order per risk level.
var actionsFor = map[string][]string{
	burnout.LevelLow: {ActionMaintainAwareness},
	burnout.LevelMedium: {
		ActionRestDay,
		ActionReduceWorkload,
		ActionAddBreaks,
	},
	burnout.LevelHigh: {
		ActionMandatoryRest,
		ActionReduceTargetHours,
		ActionLighterContent,
	},
	burnout.LevelCritical: {
		ActionSupportiveFraming,
		ActionExtendedBreak,
		ActionDisableNewMaterial,
		ActionReviewOnly,
	},
}

// Recommend turns an assessment and the user's stress profile into an
// ordered list of suggested interventions. Actions the user has
// historically accepted are moved ahead of ones they tend to dismiss,
// except supportive framing, which always leads a CRITICAL set.
func Recommend(a store.Assessment, profile patterns.StressProfile) []Intervention {
	base, ok := actionsFor[a.RiskLevel]
	if !ok {
		base = actionsFor[burnout.LevelLow]
	}
	ordered := reorderByCoping(base, profile.EffectiveCoping)

	rationale := buildRationale(a, profile)
	out := make([]Intervention, 0, len(ordered))
	for _, action := range ordered {
		out = append(out, Intervention{
			ID:              uuid.NewString(),
			Action:          action,
			RiskLevel:       a.RiskLevel,
			Rationale:       rationale,
			ExpectedBenefit: benefits[action],
		})
	}
	return out
}

// reorderByCoping stably moves known-effective actions to the front.
// The first base action keeps its slot when it is supportive framing,
// so a CRITICAL set always opens with the message.
func reorderByCoping(base, coping []string) []string {
	if len(coping) == 0 {
		return base
	}
	effective := map[string]bool{}
	for _, action := range coping {
		effective[action] = true
	}

	pinned := 0
	if len(base) > 0 && base[0] == ActionSupportiveFraming {
		pinned = 1
	}

	out := append([]string(nil), base[:pinned]...)
	for _, action := range base[pinned:] {
		if effective[action] {
			out = append(out, action)
		}
	}
	for _, action := range base[pinned:] {
		if !effective[action] {
			out = append(out, action)
		}
	}
	return out
}

func buildRationale(a store.Assessment, profile patterns.StressProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "burnout risk is %s (%.0f/100)", a.RiskLevel, a.RiskScore)

	if top := topFactor(a.Factors); top != nil {
		fmt.Fprintf(&b, "; biggest driver: %s (+%.0f)", readableFactor(top.Name), top.Contribution)
	}
	if len(profile.PrimaryStressors) > 0 {
		fmt.Fprintf(&b, "; main stressor: %s", profile.PrimaryStressors[0].Signature)
	}
	return b.String()
}

// topFactor returns the largest scored factor, skipping warning
// annotations, which carry no contribution.
func topFactor(factors []store.FactorData) *store.FactorData {
	var top *store.FactorData
	for i := range factors {
		if strings.HasPrefix(factors[i].Name, "warning:") {
			continue
		}
		if top == nil || factors[i].Contribution > top.Contribution {
			top = &factors[i]
		}
	}
	return top
}

func readableFactor(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}
