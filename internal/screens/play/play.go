// Package play is the practice screen: it serves problems from the
// session engine, collects typed answers, and shows feedback between
// problems.
package play

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/numbond/internal/problemgen"
	"github.com/abhisek/numbond/internal/router"
	"github.com/abhisek/numbond/internal/screen"
	"github.com/abhisek/numbond/internal/screens/summary"
	"github.com/abhisek/numbond/internal/session"
	"github.com/abhisek/numbond/internal/ui/components"
	"github.com/abhisek/numbond/internal/ui/layout"
)

// PlayScreen implements screen.Screen for an active practice session.
type PlayScreen struct {
	engine *session.Engine
	name   string

	state       *session.State
	input       components.TextInput
	lastProblem *problemgen.Problem
	lastResult  *session.Result
	hintShown   bool
	showQuit    bool
	errMsg      string
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.StatusProvider = (*PlayScreen)(nil)

// New creates a PlayScreen for the named child.
func New(engine *session.Engine, name string) *PlayScreen {
	return &PlayScreen{
		engine: engine,
		name:   name,
		input:  components.NewTextInput("?", true, 3),
	}
}

func (p *PlayScreen) Init() tea.Cmd {
	return tea.Batch(p.startSession(), tickCmd())
}

func (p *PlayScreen) Title() string {
	return "Practice"
}

func (p *PlayScreen) HeaderStatus() string {
	if p.state == nil {
		return ""
	}
	status := fmt.Sprintf("Lv %d   ★ %d", p.state.Level, p.state.Streak)
	if p.state.ReviewMode {
		status += "   review"
	}
	return status
}

func (p *PlayScreen) KeyHints() []layout.KeyHint {
	if p.showQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if p.state != nil && p.state.Phase == session.PhaseFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Next problem"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Answer"},
		{Key: "H", Description: "Hint"},
		{Key: "Esc", Description: "Finish"},
	}
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		return p.handleStarted(msg)

	case tickMsg:
		if p.state == nil || p.state.Phase == session.PhaseSummary {
			return p, nil
		}
		return p, tickCmd()

	case endMsg:
		return p.handleEnd()

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	if p.answering() {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}
	return p, nil
}

// answering reports whether keystrokes should feed the answer input.
func (p *PlayScreen) answering() bool {
	return p.state != nil && p.state.Phase == session.PhaseActive && !p.showQuit
}

// startSession loads the profile and serves the first problem.
func (p *PlayScreen) startSession() tea.Cmd {
	return func() tea.Msg {
		st, err := p.engine.Start(context.Background(), p.name)
		if err != nil {
			return startedMsg{Err: err}
		}
		p.engine.NextProblem(st)
		return startedMsg{State: st}
	}
}

func (p *PlayScreen) handleStarted(msg startedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		p.errMsg = msg.Err.Error()
		return p, nil
	}
	p.state = msg.State
	return p, p.input.Init()
}

func (p *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if p.errMsg != "" {
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if p.state == nil {
		return p, nil
	}

	if p.showQuit {
		switch key {
		case "y", "Y":
			p.showQuit = false
			return p, func() tea.Msg { return endMsg{} }
		case "n", "N", "esc":
			p.showQuit = false
		}
		return p, nil
	}

	// Feedback overlay: any key serves the next problem.
	if p.state.Phase == session.PhaseFeedback {
		return p.nextProblem()
	}

	if p.state.Phase == session.PhaseActive {
		switch key {
		case "esc":
			p.showQuit = true
			return p, nil
		case "h", "H":
			p.hintShown = true
			return p, nil
		case "enter":
			return p.submitAnswer()
		}

		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}

	return p, nil
}

// submitAnswer scores the typed answer through the engine.
func (p *PlayScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	if p.state == nil || p.state.Current == nil {
		return p, nil
	}
	answer, err := p.input.NumericValue()
	if err != nil {
		return p, nil
	}

	current := *p.state.Current
	res := p.engine.Submit(context.Background(), p.state, session.Submission{
		Answer:   answer,
		TimeSecs: time.Since(p.state.ProblemStart).Seconds(),
		HintUsed: p.hintShown,
	})

	p.lastProblem = &current
	p.lastResult = &res
	p.state.Phase = session.PhaseFeedback
	return p, nil
}

// nextProblem clears feedback state and serves a fresh problem.
func (p *PlayScreen) nextProblem() (screen.Screen, tea.Cmd) {
	p.lastResult = nil
	p.lastProblem = nil
	p.hintShown = false
	p.input = components.NewTextInput("?", true, 3)
	p.state.Phase = session.PhaseActive
	p.engine.NextProblem(p.state)
	return p, p.input.Init()
}

func (p *PlayScreen) handleEnd() (screen.Screen, tea.Cmd) {
	if p.state == nil {
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}
	p.state.Phase = session.PhaseSummary
	sum := session.BuildSummary(p.state, time.Now())
	return p, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}

// tickCmd returns a 1-second tick for the elapsed-time display.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
