package chat

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Placeholder is the prompt text shown in an empty input box. Submitting it
// unchanged sends nothing.
const Placeholder = "💬 Type your message here..."

// MaxMessageLength is the longest message, in runes, a user may send.
const MaxMessageLength = 1000

var (
	ErrMessageTooLong = errors.New("message is too long")
	ErrSessionClosed  = errors.New("chat session closed")
)

// PrepareInput trims text and reports whether there is anything to send.
// Empty input and the placeholder are not sendable and are not errors.
func PrepareInput(text string) (string, bool, error) {
	text = strings.TrimSpace(text)
	if text == "" || text == Placeholder {
		return "", false, nil
	}
	if utf8.RuneCountInString(text) > MaxMessageLength {
		return "", false, ErrMessageTooLong
	}
	return text, true, nil
}

// IsSendable reports whether text would produce a user turn.
func IsSendable(text string) bool {
	_, ok, err := PrepareInput(text)
	return ok && err == nil
}
