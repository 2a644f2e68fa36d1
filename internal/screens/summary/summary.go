// Package summary displays the end-of-session recap.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/numbond/internal/router"
	"github.com/abhisek/numbond/internal/screen"
	"github.com/abhisek/numbond/internal/session"
	"github.com/abhisek/numbond/internal/ui/components"
	"github.com/abhisek/numbond/internal/ui/layout"
	"github.com/abhisek/numbond/internal/ui/theme"
)

// SummaryScreen shows the recap for one finished session.
type SummaryScreen struct {
	summary *session.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

func New(sum *session.Summary) *SummaryScreen {
	return &SummaryScreen{summary: sum}
}

func (s *SummaryScreen) Init() tea.Cmd { return nil }

func (s *SummaryScreen) Title() string { return "Session Summary" }

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	center := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text) + "\n"
	}
	headline := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	body := lipgloss.NewStyle().Foreground(theme.Text)

	var b strings.Builder
	b.WriteString(center(headline, fmt.Sprintf("Nice work, %s!", sum.Name)))
	b.WriteString("\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center(dim, fmt.Sprintf("Practiced for %d:%02d", mins, secs)))
	b.WriteString("\n")

	b.WriteString(center(body, fmt.Sprintf("Problems: %d        Correct: %d", sum.Served, sum.Correct)))

	bar := components.NewProgressBar("Accuracy", sum.Accuracy, true, min(width-8, 44))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n")

	b.WriteString(center(body, fmt.Sprintf("Best streak: %d        Level: %d", sum.BestStreak, sum.Level)))
	b.WriteString("\n")

	if len(sum.Insights) > 0 {
		b.WriteString(center(dim, "New insights"))
		divider := lipgloss.NewStyle().Foreground(theme.Border).
			Render(strings.Repeat("─", min(width-8, 60)))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, ins := range sum.Insights {
			b.WriteString(center(body, fmt.Sprintf("  ✦ %s — %s", ins.Title, ins.Message)))
		}
	}

	return b.String()
}
