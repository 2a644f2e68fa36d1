package play

import (
	"strconv"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/numbond/internal/problemgen"
	"github.com/abhisek/numbond/internal/router"
	"github.com/abhisek/numbond/internal/screen"
	"github.com/abhisek/numbond/internal/session"
	"github.com/abhisek/numbond/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testEngine() *session.Engine {
	return session.NewEngine(session.Config{
		Generator:    problemgen.NewSeeded(problemgen.DefaultConfig(), 7),
		Log:          store.NewMemoryAttemptLog(),
		InsightStore: store.NewMemoryInsightStore(),
		Profiles:     store.NewMemoryProfileRepo(),
	})
}

// startedScreen returns a PlayScreen with a live session and a served
// problem, as if Init had completed.
func startedScreen(t *testing.T) *PlayScreen {
	t.Helper()
	p := New(testEngine(), "Emma")
	msg := p.startSession()()
	started, ok := msg.(startedMsg)
	if !ok {
		t.Fatalf("expected startedMsg, got %T", msg)
	}
	if started.Err != nil {
		t.Fatalf("start: %v", started.Err)
	}
	scr, _ := p.Update(started)
	return scr.(*PlayScreen)
}

func TestPlayScreen_StartServesProblem(t *testing.T) {
	p := startedScreen(t)
	if p.state == nil {
		t.Fatal("expected session state after start")
	}
	if p.state.Current == nil {
		t.Fatal("expected a served problem")
	}
	if p.state.Name != "Emma" {
		t.Errorf("Name = %q, want Emma", p.state.Name)
	}
}

func TestPlayScreen_Title(t *testing.T) {
	p := New(testEngine(), "Emma")
	if p.Title() != "Practice" {
		t.Errorf("Title = %q", p.Title())
	}
}

func TestPlayScreen_SubmitCorrectAnswer(t *testing.T) {
	p := startedScreen(t)
	answer := p.state.Current.Answer
	p.input.Model.SetValue(strconv.Itoa(answer))

	scr, _ := p.Update(specialKey(tea.KeyEnter))
	p = scr.(*PlayScreen)

	if p.state.Phase != session.PhaseFeedback {
		t.Error("expected feedback phase after submit")
	}
	if p.lastResult == nil || !p.lastResult.Correct {
		t.Error("expected a correct result")
	}
	if p.state.Correct != 1 {
		t.Errorf("Correct = %d, want 1", p.state.Correct)
	}

	view := p.View(80, 24)
	if !strings.Contains(view, "Correct!") {
		t.Error("feedback view should celebrate a correct answer")
	}
}

func TestPlayScreen_SubmitWrongAnswerShowsWorkedExample(t *testing.T) {
	p := startedScreen(t)
	wrong := p.state.Current.Answer + 1
	p.input.Model.SetValue(strconv.Itoa(wrong))

	scr, _ := p.Update(specialKey(tea.KeyEnter))
	p = scr.(*PlayScreen)

	if p.lastResult.Correct {
		t.Fatal("expected a wrong result")
	}
	view := p.View(80, 24)
	if !strings.Contains(view, "Not quite") {
		t.Error("feedback view should show the miss")
	}
	if !strings.Contains(view, "The answer is") {
		t.Error("feedback view should reveal the answer")
	}
}

func TestPlayScreen_EmptyInputIgnored(t *testing.T) {
	p := startedScreen(t)
	scr, _ := p.Update(specialKey(tea.KeyEnter))
	p = scr.(*PlayScreen)
	if p.state.Phase != session.PhaseActive {
		t.Error("empty submit should not advance the phase")
	}
	if p.state.Served != 0 {
		t.Errorf("Served = %d, want 0", p.state.Served)
	}
}

func TestPlayScreen_FeedbackKeyServesNext(t *testing.T) {
	p := startedScreen(t)
	p.input.Model.SetValue(strconv.Itoa(p.state.Current.Answer))
	scr, _ := p.Update(specialKey(tea.KeyEnter))
	p = scr.(*PlayScreen)

	scr, _ = p.Update(keyPress(' '))
	p = scr.(*PlayScreen)

	if p.state.Phase != session.PhaseActive {
		t.Error("expected active phase after dismissing feedback")
	}
	if p.state.Current == nil {
		t.Error("expected a fresh problem")
	}
	if p.lastResult != nil {
		t.Error("expected feedback state cleared")
	}
}

func TestPlayScreen_HintKey(t *testing.T) {
	p := startedScreen(t)

	scr, _ := p.Update(keyPress('h'))
	p = scr.(*PlayScreen)
	if !p.hintShown {
		t.Fatal("expected hint to be shown")
	}

	view := p.View(80, 24)
	if !strings.Contains(view, "Break") && !strings.Contains(view, "Think of") {
		t.Error("hint view should explain the decomposition")
	}

	// Hint usage carries into the attempt record.
	p.input.Model.SetValue(strconv.Itoa(p.state.Current.Answer))
	scr, _ = p.Update(specialKey(tea.KeyEnter))
	p = scr.(*PlayScreen)

	// Next problem resets the hint.
	scr, _ = p.Update(keyPress(' '))
	p = scr.(*PlayScreen)
	if p.hintShown {
		t.Error("hint should reset for the next problem")
	}
}

func TestPlayScreen_QuitConfirm(t *testing.T) {
	p := startedScreen(t)

	var scr screen.Screen = p
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	p = scr.(*PlayScreen)
	if !p.showQuit {
		t.Fatal("expected quit confirmation")
	}

	scr, _ = p.Update(keyPress('n'))
	p = scr.(*PlayScreen)
	if p.showQuit {
		t.Error("expected quit confirmation dismissed")
	}

	scr, _ = p.Update(specialKey(tea.KeyEscape))
	p = scr.(*PlayScreen)
	_, cmd := p.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after confirming quit")
	}
	if _, ok := cmd().(endMsg); !ok {
		t.Error("expected endMsg after confirming quit")
	}
}

func TestPlayScreen_EndReplacesWithSummary(t *testing.T) {
	p := startedScreen(t)

	_, cmd := p.Update(endMsg{})
	if cmd == nil {
		t.Fatal("expected a command from endMsg")
	}
	msg := cmd()
	if _, ok := msg.(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if p.state.Phase != session.PhaseSummary {
		t.Error("expected summary phase")
	}
}

func TestPlayScreen_HeaderStatus(t *testing.T) {
	p := New(testEngine(), "Emma")
	if p.HeaderStatus() != "" {
		t.Error("expected empty status before start")
	}

	p = startedScreen(t)
	status := p.HeaderStatus()
	if !strings.Contains(status, "Lv 1") {
		t.Errorf("status = %q, want level", status)
	}

	p.state.ReviewMode = true
	if !strings.Contains(p.HeaderStatus(), "review") {
		t.Error("status should flag review mode")
	}
}

func TestHintText_CrossingAddition(t *testing.T) {
	prob := problemgen.Problem{
		Operand1: 7, Operand2: 5, Op: problemgen.OpAdd,
		Answer:   12,
		Strategy: problemgen.StrategyCrossing,
		CanonicalBreakdown: problemgen.Breakdown{First: 3, Second: 2},
	}
	got := hintText(prob)
	if !strings.Contains(got, "Break 5 into 3 + 2") {
		t.Errorf("hintText = %q", got)
	}
	if !strings.Contains(got, "makes 10") {
		t.Errorf("hintText = %q, want make-ten step", got)
	}
}

func TestWorkedExample_CrossingSubtraction(t *testing.T) {
	prob := problemgen.Problem{
		Operand1: 14, Operand2: 8, Op: problemgen.OpSub,
		Answer:   6,
		Strategy: problemgen.StrategyCrossing,
		CanonicalBreakdown: problemgen.Breakdown{First: 4, Second: 4},
	}
	got := workedExample(prob)
	if !strings.Contains(got, "14 - 4 - 4") {
		t.Errorf("workedExample = %q", got)
	}
	if !strings.Contains(got, "= 6") {
		t.Errorf("workedExample = %q, want final answer", got)
	}
}
