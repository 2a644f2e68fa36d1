package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/numbond/internal/router"
	"github.com/abhisek/numbond/internal/screen"
)

type homeStub struct{}

func (h *homeStub) Init() tea.Cmd                           { return nil }
func (h *homeStub) Update(tea.Msg) (screen.Screen, tea.Cmd) { return h, nil }
func (h *homeStub) View(int, int) string                    { return "home" }
func (h *homeStub) Title() string                           { return "Home" }

// splash returns a fresh screen plus a counter of factory invocations.
func splash() (*WelcomeScreen, *int) {
	built := 0
	return New(func() screen.Screen {
		built++
		return &homeStub{}
	}), &built
}

func tick(w *WelcomeScreen, n int) {
	for i := 0; i < n; i++ {
		w.Update(tickMsg(time.Now()))
	}
}

func pressKey(w *WelcomeScreen) tea.Cmd {
	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	return cmd
}

func TestAnimationPhases(t *testing.T) {
	w, _ := splash()

	if strings.Contains(w.View(80, 24), "number bonds") {
		t.Error("tagline visible before the animation started")
	}

	// 100ms per tick; the banner appears at the phase2End mark.
	tick(w, int(phase2End/tickInterval))
	if !strings.Contains(w.View(80, 24), "number bonds") {
		t.Errorf("tagline missing at %v", w.elapsed)
	}

	// Elapsed never runs past the animation length.
	tick(w, 100)
	if w.elapsed != totalDur {
		t.Errorf("elapsed = %v, want capped at %v", w.elapsed, totalDur)
	}
}

func TestKeyBeforeAnimationEndsIsIgnored(t *testing.T) {
	w, built := splash()
	tick(w, 3)

	if cmd := pressKey(w); cmd != nil {
		t.Error("mid-animation keypress produced a command")
	}
	if *built != 0 {
		t.Errorf("home factory ran %d times before the animation finished", *built)
	}
}

func TestKeyAfterAnimationReplacesScreen(t *testing.T) {
	w, built := splash()
	tick(w, int(totalDur/tickInterval))

	cmd := pressKey(w)
	if cmd == nil {
		t.Fatal("keypress after the animation produced no command")
	}
	rep, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("command produced %T, want router.ReplaceScreenMsg", cmd())
	}
	if rep.Screen == nil {
		t.Error("replacement screen is nil")
	}
	if *built != 1 {
		t.Errorf("home factory ran %d times, want 1", *built)
	}
}

func TestTransitionFiresOnce(t *testing.T) {
	w, built := splash()
	tick(w, int(totalDur/tickInterval))

	if pressKey(w) == nil {
		t.Fatal("first keypress produced no command")
	}
	if pressKey(w) != nil {
		t.Error("second keypress produced another command")
	}
	if *built != 1 {
		t.Errorf("home factory ran %d times, want 1", *built)
	}
}

func TestNoAutoTransition(t *testing.T) {
	w, built := splash()
	tick(w, int(totalDur/tickInterval)+20)

	if *built != 0 {
		t.Errorf("home factory ran %d times without a keypress", *built)
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _ := splash()
	if got := w.Title(); got != "" {
		t.Errorf("Title() = %q, want empty", got)
	}
}
