package intervene

import (
	"fmt"
	"strings"

	"github.com/anupamd/studypulse/internal/patterns"
	"github.com/anupamd/studypulse/internal/store"
)

const framingSystemPrompt = `You write short supportive messages for students whose study analytics show high burnout risk. Be warm, specific and brief. Never diagnose, never mention scores or metrics by name, never promise outcomes. The goal is to make taking a break feel like progress, not failure.`

func buildFramingUserMessage(a store.Assessment, profile patterns.StressProfile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Risk level: %s\n", a.RiskLevel)

	b.WriteString("Main drivers:\n")
	for _, f := range a.Factors {
		if strings.HasPrefix(f.Name, "warning:") || f.Contribution <= 0 {
			continue
		}
		fmt.Fprintf(&b, "- %s: %s\n", readableFactor(f.Name), f.Detail)
	}

	if len(profile.PrimaryStressors) > 0 {
		b.WriteString("Known stress triggers:\n")
		for _, p := range profile.PrimaryStressors {
			fmt.Fprintf(&b, "- %s\n", p.Signature)
		}
	}

	b.WriteString(`
Instructions:
Write a 2-4 sentence message to this student. Acknowledge the effort behind their recent studying, explain that a short break protects the work they have already done, and point out that their plan will pick up where they left off. Plain language, second person, no exclamation marks.`)

	return b.String()
}
