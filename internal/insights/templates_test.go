package insights

import (
	"strings"
	"testing"
)

func TestLookupTemplate_KnownWeakness(t *testing.T) {
	p := LearningPattern{Type: PatternWeakness, Dim: DimensionStrategy, Value: "crossing"}
	tpl := lookupTemplate(p)
	if tpl.title != "Crossing the ten is tricky" {
		t.Errorf("title = %q, want the crossing weakness template", tpl.title)
	}
	if len(tpl.steps) == 0 {
		t.Error("expected actionable steps")
	}
}

func TestLookupTemplate_FallsBackToGeneric(t *testing.T) {
	p := LearningPattern{Type: PatternWeakness, Dim: DimensionStrategy, Value: "review"}
	tpl := lookupTemplate(p)
	if !strings.Contains(tpl.title, "review") {
		t.Errorf("generic title should name the bucket, got %q", tpl.title)
	}
}

func TestCorrectiveFor(t *testing.T) {
	strength := correctiveFor(LearningPattern{Type: PatternStrength})
	if strength["celebrate"] != true {
		t.Errorf("strength corrective = %v, want celebrate", strength)
	}

	weak := correctiveFor(LearningPattern{
		Type:     PatternWeakness,
		Dim:      DimensionOperation,
		Value:    "subtraction",
		HintRate: 0.2,
	})
	if weak["triggerReviewMode"] != true || weak["injectWeakProblems"] != true {
		t.Errorf("weakness corrective = %v, want review mode and weak-problem injection", weak)
	}
	if weak["category"] != "operation:subtraction" {
		t.Errorf("category = %v, want operation:subtraction", weak["category"])
	}
	if _, ok := weak["reduceHints"]; ok {
		t.Error("reduceHints should only appear with heavy hint usage")
	}

	hinty := correctiveFor(LearningPattern{Type: PatternWeakness, HintRate: 0.5})
	if hinty["reduceHints"] != true {
		t.Errorf("corrective = %v, want reduceHints at 50%% hint rate", hinty)
	}
}

func TestPriorityFor(t *testing.T) {
	tests := []struct {
		name string
		p    LearningPattern
		want Priority
	}{
		{"strength", LearningPattern{Type: PatternStrength}, PriorityLow},
		{"weakness", LearningPattern{Type: PatternWeakness, HintRate: 0.1}, PriorityMedium},
		{"hint-heavy weakness", LearningPattern{Type: PatternWeakness, HintRate: 0.45}, PriorityHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := priorityFor(tt.p); got != tt.want {
				t.Errorf("priorityFor = %q, want %q", got, tt.want)
			}
		})
	}
}
