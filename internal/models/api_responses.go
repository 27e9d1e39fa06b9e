package models

import "maitri/internal/chat"

// ResolveRequest is the body of POST /api/v1/resolve.
type ResolveRequest struct {
	Message string `json:"message"`
}

// ResolveResponse contains the result of resolving one message.
type ResolveResponse struct {
	Message string `json:"message"`
	Reply   string `json:"reply"`
	Rule    string `json:"rule"`
}

// AssessRequest is the body of POST /api/v1/wellbeing/assess.
type AssessRequest struct {
	Emotion    string  `json:"emotion"`
	Confidence float64 `json:"confidence"`
}

// TranscriptResponse is a chat session snapshot for the JSON API.
type TranscriptResponse struct {
	Turns  []chat.Turn `json:"turns"`
	Status string      `json:"status"`
}

// StatsResponse is the body of GET /api/v1/stats.
type StatsResponse struct {
	Resolutions    []ResolutionCount `json:"resolutions"`
	RecentAlerts   []Alert           `json:"recent_alerts"`
	ActiveSessions int               `json:"active_sessions"`
}
