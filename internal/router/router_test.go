package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/numbond/internal/screen"
)

type fakeScreen struct {
	name  string
	inits int
}

func (f *fakeScreen) Init() tea.Cmd {
	f.inits++
	return nil
}
func (f *fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return f, nil }
func (f *fakeScreen) View(int, int) string                    { return f.name }
func (f *fakeScreen) Title() string                           { return f.name }

func activeName(t *testing.T, r *Router) string {
	t.Helper()
	if r.Active() == nil {
		t.Fatal("no active screen")
	}
	return r.Active().Title()
}

func TestPushPopFlow(t *testing.T) {
	home := &fakeScreen{name: "home"}
	play := &fakeScreen{name: "play"}

	r := New(home)
	r.Push(play)

	if r.Depth() != 2 || activeName(t, r) != "play" {
		t.Fatalf("after push: depth=%d active=%q", r.Depth(), activeName(t, r))
	}
	if play.inits != 1 {
		t.Errorf("pushed screen inits = %d, want 1", play.inits)
	}

	r.Pop()
	if r.Depth() != 1 || activeName(t, r) != "home" {
		t.Fatalf("after pop: depth=%d active=%q", r.Depth(), activeName(t, r))
	}

	// The bottom screen never pops.
	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("pop at bottom changed depth to %d", r.Depth())
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	home := &fakeScreen{name: "home"}
	play := &fakeScreen{name: "play"}
	summary := &fakeScreen{name: "summary"}

	r := New(home)
	r.Push(play)
	r.Replace(summary)

	if r.Depth() != 2 || activeName(t, r) != "summary" {
		t.Fatalf("after replace: depth=%d active=%q", r.Depth(), activeName(t, r))
	}
	if summary.inits != 1 {
		t.Errorf("replacement screen inits = %d, want 1", summary.inits)
	}

	// Popping lands back under the replaced slot.
	r.Pop()
	if activeName(t, r) != "home" {
		t.Errorf("after pop: active = %q, want home", activeName(t, r))
	}
}

func TestNavigationMessages(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)

	play := &fakeScreen{name: "play"}
	r.Update(PushScreenMsg{Screen: play})
	if activeName(t, r) != "play" {
		t.Fatalf("after PushScreenMsg: active = %q", activeName(t, r))
	}

	summary := &fakeScreen{name: "summary"}
	r.Update(ReplaceScreenMsg{Screen: summary})
	if activeName(t, r) != "summary" || r.Depth() != 2 {
		t.Fatalf("after ReplaceScreenMsg: active=%q depth=%d", activeName(t, r), r.Depth())
	}
	if summary.inits != 1 {
		t.Errorf("replacement screen inits = %d, want 1", summary.inits)
	}

	r.Update(PopScreenMsg{})
	if activeName(t, r) != "home" {
		t.Fatalf("after PopScreenMsg: active = %q", activeName(t, r))
	}
}

func TestViewRendersActiveScreen(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	r.Push(&fakeScreen{name: "play"})

	if got := r.View(80, 24); got != "play" {
		t.Errorf("View() = %q, want play", got)
	}
}
