package play

import (
	"time"

	"github.com/abhisek/numbond/internal/session"
)

// startedMsg is sent when the session engine has loaded the profile
// and served the first problem.
type startedMsg struct {
	State *session.State
	Err   error
}

// tickMsg is sent every second to refresh the elapsed-time display.
type tickMsg time.Time

// endMsg is sent to trigger the end-of-session flow.
type endMsg struct{}
