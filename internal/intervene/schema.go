package intervene

import "github.com/anupamd/studypulse/internal/llm"

// FramingSchema defines the JSON schema for supportive framing output.
var FramingSchema = &llm.Schema{
	Name:        "supportive-framing",
	Description: "A short supportive message for a learner at high burnout risk",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"message": map[string]any{
				"type":        "string",
				"description": "2-4 sentence supportive message, warm and concrete, no medical claims",
			},
			"tone": map[string]any{
				"type": "string",
				"enum": []any{"reassuring", "encouraging", "matter_of_fact"},
			},
		},
		"required":             []any{"message", "tone"},
		"additionalProperties": false,
	},
}
