// Package home is the child picker: pick an existing profile or type
// a new name, then start practicing.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/numbond/internal/router"
	"github.com/abhisek/numbond/internal/screen"
	"github.com/abhisek/numbond/internal/screens/play"
	"github.com/abhisek/numbond/internal/session"
	"github.com/abhisek/numbond/internal/store"
	"github.com/abhisek/numbond/internal/ui/components"
	"github.com/abhisek/numbond/internal/ui/layout"
	"github.com/abhisek/numbond/internal/ui/theme"
)

// HomeScreen lists child profiles and starts play sessions.
type HomeScreen struct {
	engine   *session.Engine
	profiles []store.Profile
	menu     components.Menu

	// naming is true while the new-child name input is showing.
	naming    bool
	nameInput components.TextInput
	nameErr   string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen. Profiles are loaded once at
// construction; returning from a session rebuilds the screen.
func New(engine *session.Engine, repo store.ProfileRepo) *HomeScreen {
	var profiles []store.Profile
	if repo != nil {
		profiles, _ = repo.List(context.Background())
	}

	h := &HomeScreen{
		engine:   engine,
		profiles: profiles,
	}

	var items []components.MenuItem
	for _, p := range profiles {
		name := p.Name
		label := fmt.Sprintf("%s  (level %d)", strings.ToUpper(name), p.CurrentLevel)
		items = append(items, components.MenuItem{Label: label, Action: func() tea.Cmd {
			return h.startSession(name)
		}})
	}
	items = append(items,
		components.MenuItem{Label: "NEW CHILD", Action: func() tea.Cmd {
			h.naming = true
			h.nameErr = ""
			h.nameInput = components.NewTextInput("Type a name...", false, 24)
			return h.nameInput.Init()
		}},
		components.MenuItem{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) startSession(name string) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: play.New(h.engine, name)}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.naming {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if h.naming {
		return h.updateNaming(msg)
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) updateNaming(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			h.naming = false
			return h, nil
		case "enter":
			name := strings.TrimSpace(h.nameInput.Value())
			if name == "" {
				h.nameErr = "Please type a name first."
				return h, nil
			}
			h.naming = false
			return h, h.startSession(name)
		}
	}

	var cmd tea.Cmd
	h.nameInput, cmd = h.nameInput.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Who is practicing today?")
	sections = append(sections, title)
	sections = append(sections, "")

	if h.naming {
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.Text).Render("New child's name:"),
			"",
			h.nameInput.View(),
		)
		if h.nameErr != "" {
			sections = append(sections, "",
				lipgloss.NewStyle().Foreground(theme.Error).Render(h.nameErr))
		}
	} else {
		sections = append(sections, h.menu.View())
		if len(h.profiles) == 0 {
			sections = append(sections,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
					Render("No profiles yet — pick NEW CHILD to get started."))
		}
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
