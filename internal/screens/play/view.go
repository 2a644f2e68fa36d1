package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/numbond/internal/adapt"
	"github.com/abhisek/numbond/internal/problemgen"
	"github.com/abhisek/numbond/internal/ui/theme"
)

func (p *PlayScreen) View(width, height int) string {
	if p.errMsg != "" {
		return renderError(width, p.errMsg)
	}
	if p.state == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Getting ready...")
	}
	if p.showQuit {
		return renderQuitConfirm(width)
	}
	if p.lastResult != nil {
		return p.renderFeedback(width)
	}
	return p.renderProblem(width)
}

// renderProblem renders the active problem and answer input.
func (p *PlayScreen) renderProblem(width int) string {
	st := p.state
	if st.Current == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Picking a problem...")
	}

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", st.Name))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Problem %d   %s %d",
			st.Served+1,
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			st.Correct,
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n\n")

	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(st.Current.Text()))
	b.WriteString("\n\n")

	if p.hintShown {
		hint := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Italic(true).
			Render(hintText(*st.Current))
		b.WriteString(hint)
		b.WriteString("\n\n")
	}

	answerLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Answer: " + p.input.View())
	b.WriteString(answerLine)

	return b.String()
}

// renderFeedback renders the result of the last answer.
func (p *PlayScreen) renderFeedback(width int) string {
	res := p.lastResult
	prob := p.lastProblem

	var b strings.Builder
	b.WriteString("\n\n")

	center := func(s lipgloss.Style, text string) {
		b.WriteString(s.Width(width).Align(lipgloss.Center).Render(text))
		b.WriteString("\n")
	}

	if res.Correct {
		center(lipgloss.NewStyle().Foreground(theme.Success).Bold(true), "Correct!")
		if p.state.Streak >= 3 {
			center(lipgloss.NewStyle().Foreground(theme.Accent),
				fmt.Sprintf("★ %d in a row!", p.state.Streak))
		}
	} else {
		center(lipgloss.NewStyle().Foreground(theme.Error).Bold(true), "Not quite")
		if prob != nil {
			center(lipgloss.NewStyle().Foreground(theme.TextDim),
				fmt.Sprintf("The answer is %d", res.Answer))
		}
	}

	if prob != nil && !res.Correct {
		b.WriteString("\n")
		center(lipgloss.NewStyle().Foreground(theme.Text), workedExample(*prob))
	}

	if rec := res.Recommendation; rec != nil {
		switch rec.Action {
		case adapt.ActionAdvance:
			b.WriteString("\n")
			center(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
				fmt.Sprintf("Level up! Now on level %d", rec.Level))
		case adapt.ActionReviewMode:
			b.WriteString("\n")
			center(lipgloss.NewStyle().Foreground(theme.Secondary),
				"Let's try some easier ones for a bit.")
		}
	}

	for _, ins := range res.NewInsights {
		b.WriteString("\n")
		center(lipgloss.NewStyle().Foreground(theme.Primary), "✦ "+ins.Title)
	}

	if res.StorageWarning != nil {
		b.WriteString("\n")
		center(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true),
			"(progress could not be saved)")
	}

	b.WriteString("\n")
	center(lipgloss.NewStyle().Foreground(theme.TextDim), "Press any key for the next one...")

	return b.String()
}

// hintText renders the taught decomposition as a child-readable hint.
func hintText(p problemgen.Problem) string {
	bd := p.CanonicalBreakdown
	switch {
	case p.Op == problemgen.OpAdd && p.Strategy.RequiresCrossing():
		return fmt.Sprintf("Break %d into %d + %d. First %d + %d makes 10!",
			p.Operand2, bd.First, bd.Second, p.Operand1, bd.First)
	case p.Op == problemgen.OpSub && p.Strategy == problemgen.StrategyCrossing:
		return fmt.Sprintf("Break %d into %d + %d. Take away %d first to land on 10.",
			p.Operand2, bd.First, bd.Second, bd.First)
	default:
		return fmt.Sprintf("Think of %d as %d and %d.", p.Operand2, bd.First, bd.Second)
	}
}

// workedExample shows the full canonical solution after a miss.
func workedExample(p problemgen.Problem) string {
	bd := p.CanonicalBreakdown
	if bd.Second == 0 {
		return fmt.Sprintf("%d %s %d = %d", p.Operand1, p.Op, p.Operand2, p.Answer)
	}
	mid := p.Operand1 + bd.First
	if p.Op == problemgen.OpSub {
		mid = p.Operand1 - bd.First
	}
	return fmt.Sprintf("%d %s %d → %d %s %d %s %d → %d %s %d = %d",
		p.Operand1, p.Op, p.Operand2,
		p.Operand1, p.Op, bd.First, p.Op, bd.Second,
		mid, p.Op, bd.Second, p.Answer)
}

// renderQuitConfirm renders the end-session dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("All done for now?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your progress is saved as you go."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, show my summary"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
