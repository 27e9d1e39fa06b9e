package wellbeing

import (
	"errors"
	"fmt"
)

// AlertLevel is the severity chosen in the emergency dialog.
type AlertLevel string

const (
	AlertMedium   AlertLevel = "medium"
	AlertHigh     AlertLevel = "high"
	AlertCritical AlertLevel = "critical"
)

// ErrUnknownAlertLevel is returned for levels outside medium, high, critical.
var ErrUnknownAlertLevel = errors.New("unknown alert level")

var acknowledgements = map[AlertLevel]string{
	AlertMedium:   "Medium alert activated. Initiating supportive counseling session and monitoring protocols.",
	AlertHigh:     "High alert activated. Emergency counseling protocols engaged. Crew notification being considered.",
	AlertCritical: "CRITICAL alert activated. Immediate intervention protocols initiated. Ground control has been notified.",
}

// ParseAlertLevel validates an alert level.
func ParseAlertLevel(s string) (AlertLevel, error) {
	l := AlertLevel(s)
	if _, ok := acknowledgements[l]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlertLevel, s)
	}
	return l, nil
}

// Acknowledgement is the text shown to the astronaut when the alert is raised.
func (l AlertLevel) Acknowledgement() string {
	if msg, ok := acknowledgements[l]; ok {
		return msg
	}
	return "Emergency alert activated."
}

// FollowUp is the counselor message posted to the chat after an alert.
func (l AlertLevel) FollowUp() string {
	return fmt.Sprintf("Emergency alert (%s) has been triggered. I'm here to provide immediate support. Please tell me what's happening.", l)
}

// NotifiesGround reports whether ground control must be emailed.
func (l AlertLevel) NotifiesGround() bool {
	return l == AlertHigh || l == AlertCritical
}
