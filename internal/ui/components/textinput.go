package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput wraps bubbles/textinput. With NumericOnly set it drops any
// printable key that is not a digit, which keeps the answer box clean
// for small hands mashing the keyboard.
type TextInput struct {
	Model       textinput.Model
	NumericOnly bool
}

// NewTextInput builds a focused input. maxWidth caps the character
// count when positive.
func NewTextInput(placeholder string, numericOnly bool, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}
	return TextInput{Model: ti, NumericOnly: numericOnly}
}

func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.NumericOnly && isNonDigitKey(msg) {
		return t, nil
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// isNonDigitKey reports a single printable keystroke outside 0-9.
// Editing keys (backspace, arrows) render as multi-char names and pass
// through.
func isNonDigitKey(msg tea.Msg) bool {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false
	}
	key := kmsg.String()
	return len(key) == 1 && (key[0] < '0' || key[0] > '9')
}

func (t TextInput) View() string {
	return t.Model.View()
}

// Value returns the raw input text.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// NumericValue parses the input as an integer.
func (t TextInput) NumericValue() (int, error) {
	return strconv.Atoi(t.Model.Value())
}
