package wellbeing

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestStressLevel(t *testing.T) {
	tests := []struct {
		name       string
		emotion    Emotion
		confidence float64
		want       Level
	}{
		{"angry high", Angry, 0.8, LevelHigh},
		{"fear medium", Fear, 0.6, LevelMedium},
		{"sad boundary 0.7 is medium", Sad, 0.7, LevelMedium},
		{"sad boundary 0.5 is low", Sad, 0.5, LevelLow},
		{"happy ignores confidence", Happy, 0.99, LevelLow},
		{"neutral", Neutral, 0.9, LevelLow},
		{"surprise", Surprise, 0.9, LevelLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StressLevel(tt.emotion, tt.confidence); got != tt.want {
				t.Errorf("StressLevel(%s, %v) = %s, want %s", tt.emotion, tt.confidence, got, tt.want)
			}
		})
	}
}

func TestStatusMessage(t *testing.T) {
	tests := []struct {
		emotion Emotion
		level   Level
		pick    Picker
		want    string
	}{
		{Happy, LevelLow, nil, "✅ NORMAL: 😊 Great energy!"},
		{Happy, LevelLow, func(int) int { return 1 }, "✅ NORMAL: 🚀 Excellent mood!"},
		{Angry, LevelHigh, nil, "🚨 HIGH STRESS: 😠 Breath exercise."},
		{Fear, LevelMedium, func(int) int { return 1 }, "🔸 MODERATE STRESS: 🔒 Ground monitors."},
		{Surprise, LevelLow, func(int) int { return 7 }, "✅ NORMAL: 😮 Stay focused."},
		{Emotion("bored"), LevelLow, nil, "✅ NORMAL: 😐 Perfect calm."},
	}

	for _, tt := range tests {
		if got := StatusMessage(tt.emotion, tt.level, tt.pick); got != tt.want {
			t.Errorf("StatusMessage(%s, %s) = %q, want %q", tt.emotion, tt.level, got, tt.want)
		}
	}
}

func TestParseEmotion(t *testing.T) {
	if e, err := ParseEmotion(" Fear "); err != nil || e != Fear {
		t.Errorf("ParseEmotion(Fear) = %q, %v", e, err)
	}
	if _, err := ParseEmotion("bored"); !errors.Is(err, ErrUnknownEmotion) {
		t.Errorf("ParseEmotion(bored) error = %v, want ErrUnknownEmotion", err)
	}
}

func TestAssess(t *testing.T) {
	a := Assess(Sad, 0.75, nil)
	if a.Level != LevelHigh {
		t.Errorf("Level = %s, want high", a.Level)
	}
	if !strings.HasPrefix(a.Message, "🚨 HIGH STRESS: ") {
		t.Errorf("Message = %q", a.Message)
	}
}

func TestAlertLevels(t *testing.T) {
	for _, s := range []string{"medium", "high", "critical"} {
		l, err := ParseAlertLevel(s)
		if err != nil {
			t.Fatalf("ParseAlertLevel(%q) error = %v", s, err)
		}
		if l.Acknowledgement() == "Emergency alert activated." {
			t.Errorf("%s has no specific acknowledgement", s)
		}
		if !strings.Contains(l.FollowUp(), "("+s+")") {
			t.Errorf("FollowUp() = %q, missing level", l.FollowUp())
		}
	}

	if _, err := ParseAlertLevel("low"); !errors.Is(err, ErrUnknownAlertLevel) {
		t.Errorf("ParseAlertLevel(low) error = %v, want ErrUnknownAlertLevel", err)
	}
	if AlertMedium.NotifiesGround() {
		t.Error("medium alerts should not notify ground control")
	}
	if !AlertCritical.NotifiesGround() {
		t.Error("critical alerts should notify ground control")
	}
}

func TestMissionDay(t *testing.T) {
	start := DefaultMissionStart
	tests := []struct {
		now  time.Time
		want int
	}{
		{start, 0},
		{start.Add(23 * time.Hour), 0},
		{start.Add(24 * time.Hour), 1},
		{start.AddDate(0, 0, 365), 365},
		{start.Add(-time.Hour), 0},
	}
	for _, tt := range tests {
		if got := MissionDay(start, tt.now); got != tt.want {
			t.Errorf("MissionDay(%v) = %d, want %d", tt.now, got, tt.want)
		}
	}
}

func TestDefaultCrew(t *testing.T) {
	crew := DefaultCrew()
	if len(crew) != 6 {
		t.Fatalf("DefaultCrew() has %d members, want 6", len(crew))
	}
	a, ok := FindAstronaut(crew, "Don Pettit")
	if !ok || a.Specialization != "Mission Specialist" {
		t.Errorf("FindAstronaut(Don Pettit) = %+v, %v", a, ok)
	}
	if _, ok := FindAstronaut(crew, "Nobody"); ok {
		t.Error("FindAstronaut(Nobody) found a member")
	}
}
