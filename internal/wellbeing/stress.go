// Package wellbeing classifies reported emotions into stress levels and
// holds the crew roster and emergency alert vocabulary.
package wellbeing

import (
	"errors"
	"fmt"
	"strings"
)

// Emotion is one of the detectable facial emotions.
type Emotion string

const (
	Happy    Emotion = "happy"
	Sad      Emotion = "sad"
	Angry    Emotion = "angry"
	Fear     Emotion = "fear"
	Surprise Emotion = "surprise"
	Neutral  Emotion = "neutral"
)

// Level is a coarse stress classification.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// ErrUnknownEmotion is returned when parsing an unrecognised emotion.
var ErrUnknownEmotion = errors.New("unknown emotion")

var messages = map[Emotion][]string{
	Happy:    {"😊 Great energy!", "🚀 Excellent mood!"},
	Sad:      {"😢 You okay?", "💙 Earth supports you."},
	Angry:    {"😠 Breath exercise.", "🛡 You’re trained."},
	Fear:     {"😰 You’re safe.", "🔒 Ground monitors."},
	Surprise: {"😮 Stay focused."},
	Neutral:  {"😐 Perfect calm.", "⚖ Steady as always."},
}

// ParseEmotion normalizes and validates an emotion name.
func ParseEmotion(s string) (Emotion, error) {
	e := Emotion(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := messages[e]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownEmotion, s)
	}
	return e, nil
}

// IsStressful reports whether e counts towards stress.
func (e Emotion) IsStressful() bool {
	return e == Angry || e == Fear || e == Sad
}

// StressLevel classifies an emotion reading. Only stressful emotions raise
// the level; confidence above 0.7 is high, above 0.5 medium.
func StressLevel(e Emotion, confidence float64) Level {
	if !e.IsStressful() {
		return LevelLow
	}
	switch {
	case confidence > 0.7:
		return LevelHigh
	case confidence > 0.5:
		return LevelMedium
	default:
		return LevelLow
	}
}

// Picker chooses an index in [0, n).
type Picker func(n int) int

// StatusMessage returns the assistant's status line for a reading. pick
// selects among the emotion's messages; nil always takes the first.
func StatusMessage(e Emotion, level Level, pick Picker) string {
	msgs := messages[e]
	if len(msgs) == 0 {
		msgs = messages[Neutral]
	}
	i := 0
	if pick != nil {
		i = pick(len(msgs))
		if i < 0 || i >= len(msgs) {
			i = 0
		}
	}
	return levelPrefix(level) + msgs[i]
}

func levelPrefix(level Level) string {
	switch level {
	case LevelHigh:
		return "🚨 HIGH STRESS: "
	case LevelMedium:
		return "🔸 MODERATE STRESS: "
	default:
		return "✅ NORMAL: "
	}
}

// Assessment is the result of classifying one emotion reading.
type Assessment struct {
	Emotion    Emotion `json:"emotion"`
	Confidence float64 `json:"confidence"`
	Level      Level   `json:"level"`
	Message    string  `json:"message"`
}

// Assess classifies a reading and builds its status message.
func Assess(e Emotion, confidence float64, pick Picker) Assessment {
	level := StressLevel(e, confidence)
	return Assessment{
		Emotion:    e,
		Confidence: confidence,
		Level:      level,
		Message:    StatusMessage(e, level, pick),
	}
}
