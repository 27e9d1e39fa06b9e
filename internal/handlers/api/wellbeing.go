package api

import (
	"errors"
	"math/rand/v2"

	"github.com/gofiber/fiber/v3"

	"maitri/internal/models"
	"maitri/internal/wellbeing"
)

// WellbeingHandler classifies emotion readings.
type WellbeingHandler struct {
	pick wellbeing.Picker
}

// NewWellbeingHandler creates a new API wellbeing handler that picks status
// messages at random.
func NewWellbeingHandler() *WellbeingHandler {
	return &WellbeingHandler{pick: rand.IntN}
}

// Assess returns the stress level and status message for an emotion reading.
func (h *WellbeingHandler) Assess(c fiber.Ctx) error {
	var req models.AssessRequest
	if err := c.Bind().Body(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	emotion, err := wellbeing.ParseEmotion(req.Emotion)
	if err != nil {
		if errors.Is(err, wellbeing.ErrUnknownEmotion) {
			return jsonError(c, fiber.StatusBadRequest, "unknown emotion")
		}
		return jsonError(c, fiber.StatusBadRequest, "invalid emotion")
	}
	if req.Confidence < 0 || req.Confidence > 1 {
		return jsonError(c, fiber.StatusBadRequest, "confidence must be between 0 and 1")
	}

	return jsonSuccess(c, wellbeing.Assess(emotion, req.Confidence, h.pick))
}
