package chat

import "strings"

// Indicator is the bot presence state shown in the chat header.
type Indicator int

const (
	Idle Indicator = iota
	Composing
)

func (i Indicator) String() string {
	switch i {
	case Composing:
		return "composing"
	default:
		return "idle"
	}
}

// Status is the indicator plus the current animation frame.
// Frame runs from 1 to the configured frame count while composing.
type Status struct {
	State Indicator `json:"state"`
	Frame int       `json:"frame"`
}

// Text renders the status line under the bot name.
func (s Status) Text() string {
	if s.State != Composing {
		return "● Online"
	}
	dots := s.Frame
	if dots < 1 {
		dots = 1
	}
	return "⌛ Typing" + strings.Repeat(".", dots)
}
