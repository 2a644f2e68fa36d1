package coach

import "github.com/abhisek/numbond/internal/llm"

// SummarySchema defines the JSON schema for the parent coaching summary.
var SummarySchema = &llm.Schema{
	Name:        "parent-summary",
	Description: "A warm, practical progress summary for a parent of a young child learning arithmetic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"overview": map[string]any{
				"type":        "string",
				"description": "3-5 sentence overview of the child's week, written to the parent",
			},
			"celebrate": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "1-3 specific wins to celebrate with the child (5-12 words each)",
			},
			"focus_areas": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "1-3 specific areas needing practice (5-12 words each)",
			},
			"activities": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 short offline activities a parent can do at home",
			},
		},
		"required":             []any{"overview", "celebrate", "focus_areas", "activities"},
		"additionalProperties": false,
	},
}
