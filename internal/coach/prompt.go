package coach

import (
	"fmt"
	"strings"
)

const summarySystemPrompt = `You are a warm, practical learning coach writing to the parent of a young child (ages 5-8) who practices addition and subtraction with number bonds. Be encouraging but honest, and keep everything concrete.`

func buildSummaryUserMessage(input Input) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Child: %s\n", input.Name))
	b.WriteString(fmt.Sprintf("Problems attempted recently: %d\n", input.Metrics.Attempts))
	b.WriteString(fmt.Sprintf("Accuracy: %.0f%%\n", input.Metrics.Accuracy*100))
	b.WriteString(fmt.Sprintf("Average time per problem: %.1f seconds\n", input.Metrics.AverageTime))
	b.WriteString(fmt.Sprintf("Hint usage: %.0f%%\n", input.Metrics.HintRate*100))
	b.WriteString(fmt.Sprintf("Trend: %s\n", input.Report.Trend))

	if len(input.Report.Strengths) > 0 {
		b.WriteString("\nStrong areas:\n")
		for _, s := range input.Report.Strengths {
			b.WriteString(fmt.Sprintf("- %s\n", s))
		}
	}
	if len(input.Report.Weaknesses) > 0 {
		b.WriteString("\nStruggling areas:\n")
		for _, w := range input.Report.Weaknesses {
			b.WriteString(fmt.Sprintf("- %s\n", w))
		}
	}

	if len(input.Insights) > 0 {
		b.WriteString("\nRecent insights from the practice log:\n")
		for _, ins := range input.Insights {
			b.WriteString(fmt.Sprintf("- [%s] %s: %s\n", ins.Type, ins.Title, ins.Message))
		}
	}

	b.WriteString(`
Instructions:
Write a progress summary for the parent:
1. A 3-5 sentence overview in plain language. Name the child. Mention the trend and what it means.
2. 1-3 specific wins to celebrate with the child.
3. 1-3 specific focus areas, phrased without judgment.
4. 2-4 short offline activities (no screens) matched to the focus areas, e.g. counting games, splitting snacks into tens.
Use plain ASCII text. Numbers like "7 + 5" are fine; no LaTeX or Unicode math symbols.`)

	return b.String()
}

// categoryLabel renders a skill category for parent-facing text.
func categoryLabel(c string) string {
	return strings.ReplaceAll(c, "_", " ")
}
