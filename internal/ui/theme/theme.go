// Package theme holds the shared color palette. Screens build their
// own lipgloss styles from these so the whole app shifts together when
// a color changes.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Bright without being harsh; the app runs full-screen for young kids.
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#2DD4BF") // Teal
	Accent    = lipgloss.Color("#FBBF24") // Amber
	Success   = lipgloss.Color("#4ADE80") // Green
	Error     = lipgloss.Color("#FB7185") // Rose
	Text      = lipgloss.Color("#F1F5F9") // Near-white
	TextDim   = lipgloss.Color("#7C8CA3") // Muted slate
	BgDark    = lipgloss.Color("#0B1220") // Night
	BgCard    = lipgloss.Color("#1B2536") // Panel
	Border    = lipgloss.Color("#3B4A61") // Panel edge
)
