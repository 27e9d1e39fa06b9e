package models

import (
	"time"

	"github.com/google/uuid"
)

// Alert is an emergency alert raised from the dashboard.
type Alert struct {
	ID         uuid.UUID  `json:"id"`
	Level      string     `json:"level"` // medium, high, critical
	Astronaut  string     `json:"astronaut,omitempty"`
	RaisedBy   string     `json:"raised_by,omitempty"` // operator subject, empty when login is disabled
	NotifiedAt *time.Time `json:"notified_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// IsNotified returns true if ground control was emailed about the alert.
func (a *Alert) IsNotified() bool {
	return a.NotifiedAt != nil
}
