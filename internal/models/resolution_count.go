package models

import "time"

// ResolutionCount is how many times one rule or topic produced a reply.
type ResolutionCount struct {
	Source     string    `json:"source"` // "keyword" or "topic"
	Name       string    `json:"name"`   // rule name or topic slug
	Count      int64     `json:"count"`
	LastSeenAt time.Time `json:"last_seen_at"`
}
