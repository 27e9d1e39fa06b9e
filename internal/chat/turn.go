// Package chat keeps the per-browser counseling conversation: the transcript,
// the typing indicator and the delayed delivery of bot replies.
package chat

import (
	"time"

	"github.com/google/uuid"
)

// Speaker identifies who said a turn.
type Speaker string

const (
	SpeakerUser Speaker = "You"
	SpeakerBot  Speaker = "Bot"
)

// Fixed bot lines.
const (
	WelcomeMessage = "👋 Hello! I'm MAITRI, your AI counselor. How are you feeling today?"
	ClearedMessage = "🧹 Chat cleared! Start fresh with me 💬"
)

// Turn is one displayed message.
type Turn struct {
	ID      uuid.UUID `json:"id"`
	Speaker Speaker   `json:"speaker"`
	Text    string    `json:"text"`
	At      time.Time `json:"at"`
}

// IsUser reports whether the turn was sent by the user.
func (t Turn) IsUser() bool {
	return t.Speaker == SpeakerUser
}

func newTurn(speaker Speaker, text string, at time.Time) Turn {
	return Turn{
		ID:      uuid.New(),
		Speaker: speaker,
		Text:    text,
		At:      at,
	}
}

// TopicRequest is the user line recorded when a topic button is pressed.
func TopicRequest(label string) string {
	return "I want to talk about " + label
}
