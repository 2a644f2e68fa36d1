package insights

import "fmt"

// Insight templates keyed by (pattern type, dimension, bucket value).
// A missing key falls back to the generic template for the type so a
// new bucket never silently drops a pattern.

type template struct {
	title   string
	message string // fmt verb: accuracy percentage
	steps   []string
}

var weaknessTemplates = map[Dimension]map[string]template{
	DimensionOperation: {
		"addition": {
			title:   "Addition needs practice",
			message: "Addition problems are landing at %.0f%% right now.",
			steps: []string{
				"Warm up with number bonds to 10",
				"Practice the make-ten split out loud",
				"Slow down: say the complement before adding",
			},
		},
		"subtraction": {
			title:   "Subtraction needs practice",
			message: "Subtraction problems are landing at %.0f%% right now.",
			steps: []string{
				"Review taking away to the nearest ten first",
				"Use counters or fingers for the ones digit",
				"Retry missed problems at a lower level",
			},
		},
	},
	DimensionStrategy: {
		"crossing": {
			title:   "Crossing the ten is tricky",
			message: "Problems that cross a ten are at %.0f%% accuracy.",
			steps: []string{
				"Practice splitting the second number into two parts",
				"Ask: how many to reach the next ten?",
				"Do five easy crossing problems before harder ones",
			},
		},
		"make_ten": {
			title:   "Make-ten strategy needs work",
			message: "Make-ten problems are at %.0f%% accuracy.",
			steps: []string{
				"Drill complements of ten (7 needs 3, 8 needs 2)",
				"Build the ten first, then add what's left",
			},
		},
	},
	DimensionMagnitude: {
		"double_digit": {
			title:   "Bigger numbers are a hurdle",
			message: "Two-digit problems are at %.0f%% accuracy.",
			steps: []string{
				"Drop back to single-digit crossing for a session",
				"Practice finding the ten below a two-digit number",
			},
		},
		"triple_digit": {
			title:   "Three-digit numbers are a hurdle",
			message: "Three-digit problems are at %.0f%% accuracy.",
			steps: []string{
				"Return to two-digit problems for a few sessions",
				"Practice place value with hundreds and tens",
			},
		},
	},
}

var strengthTemplates = map[Dimension]map[string]template{
	DimensionOperation: {
		"addition": {
			title:   "Addition star",
			message: "Addition is going great: %.0f%% correct, nice and quick.",
			steps:   []string{"Try the next level for a bigger challenge"},
		},
		"subtraction": {
			title:   "Subtraction star",
			message: "Subtraction is going great: %.0f%% correct, nice and quick.",
			steps:   []string{"Try the next level for a bigger challenge"},
		},
	},
	DimensionStrategy: {
		"crossing": {
			title:   "Crossing the ten mastered",
			message: "Crossing problems are at %.0f%% — the strategy has clicked.",
			steps:   []string{"Move up to bigger numbers that cross tens"},
		},
	},
}

func genericTemplate(t PatternType, value string) template {
	if t == PatternStrength {
		return template{
			title:   fmt.Sprintf("Strong at %s", value),
			message: "This area is at %.0f%% accuracy with a good pace.",
			steps:   []string{"Keep it fresh with an occasional review problem"},
		}
	}
	return template{
		title:   fmt.Sprintf("Needs practice: %s", value),
		message: "This area is at %.0f%% accuracy.",
		steps: []string{
			"Serve a few easier problems in this area",
			"Revisit the worked examples together",
		},
	}
}

// lookupTemplate finds the template for a pattern, falling back to the
// generic one.
func lookupTemplate(p LearningPattern) template {
	byDim := strengthTemplates
	if p.Type == PatternWeakness {
		byDim = weaknessTemplates
	}
	if byValue, ok := byDim[p.Dim]; ok {
		if tpl, ok := byValue[p.Value]; ok {
			return tpl
		}
	}
	return genericTemplate(p.Type, p.Value)
}

// correctiveFor builds the machine-actionable map the session layer
// consumes.
func correctiveFor(p LearningPattern) map[string]any {
	if p.Type == PatternStrength {
		return map[string]any{"celebrate": true}
	}
	actions := map[string]any{
		"triggerReviewMode":  true,
		"injectWeakProblems": true,
		"category":           string(p.Dim) + ":" + p.Value,
	}
	if p.HintRate > highHintRate {
		actions["reduceHints"] = true
	}
	return actions
}

// priorityFor ranks a pattern. A weakness with heavy hint usage is
// urgent; other weaknesses are medium; strengths are low.
func priorityFor(p LearningPattern) Priority {
	if p.Type == PatternStrength {
		return PriorityLow
	}
	if p.HintRate > highHintRate {
		return PriorityHigh
	}
	return PriorityMedium
}

const highHintRate = 0.40
