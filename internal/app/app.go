// Package app assembles the Bubble Tea program: router, screens, and
// the shared header/footer frame.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/numbond/internal/router"
	"github.com/abhisek/numbond/internal/screen"
	"github.com/abhisek/numbond/internal/screens/home"
	"github.com/abhisek/numbond/internal/screens/welcome"
	"github.com/abhisek/numbond/internal/session"
	"github.com/abhisek/numbond/internal/store"
	"github.com/abhisek/numbond/internal/ui/layout"
)

// Deps carries everything the screens need.
type Deps struct {
	Engine   *session.Engine
	Profiles store.ProfileRepo
}

var defaultHints = []layout.KeyHint{
	{Key: "↑↓", Description: "Navigate"},
	{Key: "Enter", Description: "Select"},
	{Key: "Ctrl+C", Description: "Quit"},
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

func newAppModel(deps Deps) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(deps.Engine, deps.Profiles)
	}
	return AppModel{router: router.New(welcome.New(homeFactory))}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	return m, m.router.Update(msg)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	switch {
	case m.width == 0 || m.height == 0:
		// First frame before the size arrives.
	case layout.IsTooSmall(m.width, m.height):
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
	default:
		v.SetContent(m.frame())
	}
	return v
}

// frame renders the active screen inside the header/footer chrome.
// Screens with an empty title (the welcome splash) draw frameless.
func (m AppModel) frame() string {
	active := m.router.Active()
	if active == nil || active.Title() == "" {
		return m.router.View(m.width, m.height)
	}

	status := ""
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.HeaderStatus()
	}
	header := layout.RenderHeader(active.Title(), status, m.width)

	hints := defaultHints
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if own := hp.KeyHints(); len(own) > 0 {
			hints = own
		}
	}
	footer := layout.RenderFooter(hints, m.width)

	body := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	return layout.RenderFrame(header, m.router.View(m.width, body), footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
