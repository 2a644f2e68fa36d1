// Package welcome plays the splash animation shown on launch.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/numbond/internal/router"
	"github.com/abhisek/numbond/internal/screen"
	"github.com/abhisek/numbond/internal/ui/theme"
)

// Animation timeline: the bond diagram appears immediately, sparkles
// join at phase1End, banner and tagline at phase2End, and input is
// accepted once totalDur has played out.
const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 4500 * time.Millisecond
)

const mascotArt = `      ╭──────╮
      │  10  │
      ╰──┬───╯
      ╭──┴───╮
   ╭──┴──╮╭──┴──╮
   │  7  ││  3  │
   ╰─────╯╰─────╯`

var sparkleFrames = []string{"★", "✦"}

type tickMsg time.Time

// WelcomeScreen runs the splash and hands off to the home screen on the
// first keypress after the animation finishes.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New wires the factory that builds the screen shown after the splash.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{homeFactory: homeFactory}
}

// Title is empty so the splash renders without the header frame.
func (w *WelcomeScreen) Title() string { return "" }

func nextTick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nextTick()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		w.elapsed = min(w.elapsed+tickInterval, totalDur)
		w.tickCount++
		// Ticks keep flowing after totalDur so the sparkles keep
		// animating while we wait for a key.
		return w, nextTick()

	case tea.KeyPressMsg:
		if w.elapsed >= totalDur {
			return w, w.transition()
		}
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	mascot := lipgloss.NewStyle().Foreground(theme.Primary).Render(mascotArt)
	if w.elapsed >= phase1End {
		mascot = w.sparkled(mascot)
	}

	sections := []string{mascot}

	if w.elapsed >= phase2End {
		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Let's build number bonds!")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")

		sections = append(sections, "", RenderBanner(width), "", tagline, "", hint)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n"))
}

// sparkled frames the mascot with alternating sparkles on a few rows.
func (w *WelcomeScreen) sparkled(art string) string {
	frame := sparkleFrames[w.tickCount%len(sparkleFrames)]
	a := lipgloss.NewStyle().Foreground(theme.Accent).Render(frame)
	b := lipgloss.NewStyle().Foreground(theme.Secondary).Render(frame)

	lines := strings.Split(art, "\n")
	for i, row := range []int{0, 3, 6} {
		if row >= len(lines) {
			break
		}
		left, right := a, b
		if i%2 == 1 {
			left, right = b, a
		}
		lines[row] = left + "  " + lines[row] + "  " + right
	}
	return strings.Join(lines, "\n")
}
