package api

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"maitri/internal/counsel"
	"maitri/internal/validation"
)

// TopicHandler exposes the topic catalog via JSON API.
type TopicHandler struct {
	catalog *counsel.Catalog
}

// NewTopicHandler creates a new API topic handler.
func NewTopicHandler(catalog *counsel.Catalog) *TopicHandler {
	return &TopicHandler{catalog: catalog}
}

// List returns every topic in display order.
func (h *TopicHandler) List(c fiber.Ctx) error {
	return jsonSuccess(c, h.catalog.List())
}

// Get returns one topic by slug.
func (h *TopicHandler) Get(c fiber.Ctx) error {
	slug := validation.NormalizeSlug(c.Params("slug"))
	if !validation.ValidateSlug(slug) {
		return jsonError(c, fiber.StatusBadRequest, "invalid topic slug")
	}

	topic, err := h.catalog.BySlug(slug)
	if err != nil {
		if errors.Is(err, counsel.ErrUnknownTopic) {
			return jsonError(c, fiber.StatusNotFound, "topic not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch topic")
	}

	return jsonSuccess(c, topic)
}
