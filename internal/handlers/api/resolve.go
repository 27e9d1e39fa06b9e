package api

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"maitri/internal/chat"
	"maitri/internal/counsel"
	"maitri/internal/metrics"
	"maitri/internal/models"
)

// ResolveHandler answers single messages without a chat session.
type ResolveHandler struct {
	resolver *counsel.Resolver
}

// NewResolveHandler creates a new API resolve handler.
func NewResolveHandler(resolver *counsel.Resolver) *ResolveHandler {
	return &ResolveHandler{resolver: resolver}
}

// Resolve returns the reply the chat bot would give to a message, and the
// rule that produced it.
func (h *ResolveHandler) Resolve(c fiber.Ctx) error {
	var req models.ResolveRequest
	if err := c.Bind().Body(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	text, ok, err := chat.PrepareInput(req.Message)
	if err != nil {
		if errors.Is(err, chat.ErrMessageTooLong) {
			return jsonError(c, fiber.StatusRequestEntityTooLarge, "message is too long")
		}
		return jsonError(c, fiber.StatusBadRequest, "invalid message")
	}
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "message is required")
	}

	res := h.resolver.Explain(text)
	metrics.RecordResolution(chat.SourceKeyword, res.Rule)

	return jsonSuccess(c, models.ResolveResponse{
		Message: text,
		Reply:   res.Reply,
		Rule:    res.Rule,
	})
}
