package intervene

// Intervention action identifiers. These are the values recorded back
// into the store when the learner accepts or dismisses a suggestion.
const (
	ActionMaintainAwareness  = "maintain_awareness"
	ActionRestDay            = "rest_day"
	ActionReduceWorkload     = "reduce_workload"
	ActionAddBreaks          = "add_breaks"
	ActionMandatoryRest      = "mandatory_rest"
	ActionReduceTargetHours  = "reduce_target_hours"
	ActionLighterContent     = "lighter_content"
	ActionExtendedBreak      = "extended_break"
	ActionDisableNewMaterial = "disable_new_material"
	ActionSupportiveFraming  = "supportive_framing"
	ActionReviewOnly         = "review_only"
)

// Intervention is one suggested action. The recommender only suggests;
// whether anything is enforced is the caller's decision.
type Intervention struct {
	ID              string
	Action          string
	RiskLevel       string
	Rationale       string
	ExpectedBenefit string

	// Framing carries the supportive message for the
	// supportive_framing action and is empty otherwise.
	Framing string
}
