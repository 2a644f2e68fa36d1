package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/numbond/internal/ui/theme"
)

// MenuItem is one selectable row. Disabled rows are skipped during
// navigation and never trigger their Action.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical pick-one menu driven by arrow keys.
type Menu struct {
	Items    []MenuItem
	Selected int
}

var (
	menuSelected   = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	menuUnselected = lipgloss.NewStyle().Foreground(theme.Text)
)

// NewMenu builds a menu with the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	for i, item := range items {
		if !item.Disabled {
			m.Selected = i
			break
		}
	}
	return m
}

func (m Menu) Init() tea.Cmd { return nil }

// Update moves the cursor or fires the selected action.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		m.Selected = m.seek(m.Selected, -1)
	case "down", "j":
		m.Selected = m.seek(m.Selected, +1)
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			if item := m.Items[m.Selected]; item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}

	return m, nil
}

// seek walks from the cursor in the given direction to the next enabled
// item, staying put when there is none.
func (m Menu) seek(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			return i
		}
	}
	return from
}

func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		if i == m.Selected {
			b.WriteString(menuSelected.Render("  ▸ " + item.Label))
		} else {
			b.WriteString(menuUnselected.Render("    " + item.Label))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
