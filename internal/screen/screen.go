// Package screen defines the contract between the app shell and the
// individual screens it hosts.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/numbond/internal/ui/layout"
)

// Screen is one full-window view. The shell owns the header and footer;
// View renders only the space between them.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string

	// Title labels the screen in the header. Empty hides the header.
	Title() string
}

// KeyHintProvider lets a screen put its own key bindings in the footer
// instead of the defaults.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider lets a screen feed live text (level, streak) into the
// header's right-hand slot.
type StatusProvider interface {
	HeaderStatus() string
}
