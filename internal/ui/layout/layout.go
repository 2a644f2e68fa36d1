// Package layout renders the chrome shared by every screen: the header
// bar, the footer key hints, and the too-small fallback.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/numbond/internal/ui/theme"
)

// Smallest terminal the frame still fits in.
const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below the supported size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage fills the whole window with a resize prompt.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// chrome boxes a single content line the way both bars are drawn.
func chrome(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderHeader draws the top bar: app name left, screen title centered,
// screen-provided status (level, streak) on the right.
func RenderHeader(title, status string, width int) string {
	name := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  Numbond")
	mid := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	stat := lipgloss.NewStyle().Foreground(theme.Accent).Render(status)

	// Border padding eats four columns.
	inner := max(width-4, 0)

	gapLeft := max((inner-lipgloss.Width(mid))/2-lipgloss.Width(name), 1)
	gapRight := max(inner-lipgloss.Width(name)-gapLeft-lipgloss.Width(mid)-lipgloss.Width(stat), 1)

	return chrome(
		name+strings.Repeat(" ", gapLeft)+mid+strings.Repeat(" ", gapRight)+stat,
		width,
	)
}

// RenderFooter draws the bottom bar listing the active key bindings.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
	}
	return chrome("  "+strings.Join(parts, "   "), width)
}

// RenderFrame stacks header, content, and footer, padding the content
// to keep the footer pinned to the bottom edge.
func RenderFrame(header, content, footer string, width, height int) string {
	body := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	padded := lipgloss.NewStyle().Width(width).Height(body).Render(content)
	return header + "\n" + padded + "\n" + footer
}
