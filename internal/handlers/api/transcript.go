package api

import (
	"github.com/gofiber/fiber/v3"

	"maitri/internal/chat"
	"maitri/internal/middleware"
	"maitri/internal/models"
)

// TranscriptHandler exposes the caller's chat session as JSON.
type TranscriptHandler struct {
	sessions *chat.Registry
}

// NewTranscriptHandler creates a new API transcript handler.
func NewTranscriptHandler(sessions *chat.Registry) *TranscriptHandler {
	return &TranscriptHandler{sessions: sessions}
}

// Get returns the transcript and indicator text. A browser without a chat yet
// gets only the welcome message.
func (h *TranscriptHandler) Get(c fiber.Ctx) error {
	id := middleware.ChatID(c)
	if id == "" {
		return jsonError(c, fiber.StatusInternalServerError, "session not available")
	}

	view, err := h.sessions.Get(id).Snapshot(c.Context())
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to read transcript")
	}

	return jsonSuccess(c, models.TranscriptResponse{
		Turns:  view.Turns,
		Status: view.Status.Text(),
	})
}
