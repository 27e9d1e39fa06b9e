package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"maitri/internal/chat"
	"maitri/internal/config"
	"maitri/internal/counsel"
	"maitri/internal/middleware"
	"maitri/internal/validation"
)

// ChatHandler serves the counseling chat page and its HTMX fragments.
type ChatHandler struct {
	sessions *chat.Registry
	catalog  *counsel.Catalog
	cfg      *config.Config
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(sessions *chat.Registry, catalog *counsel.Catalog, cfg *config.Config) *ChatHandler {
	return &ChatHandler{sessions: sessions, catalog: catalog, cfg: cfg}
}

func (h *ChatHandler) session(c fiber.Ctx) (*chat.Session, error) {
	id := middleware.ChatID(c)
	if id == "" {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}
	return h.sessions.Get(id), nil
}

// renderTranscript renders the transcript fragment for the caller's session.
func (h *ChatHandler) renderTranscript(c fiber.Ctx, s *chat.Session) error {
	view, err := s.Snapshot(c.Context())
	if err != nil {
		return err
	}
	return c.Render("partials/transcript", MergeBranding(fiber.Map{
		"Turns":      view.Turns,
		"StatusText": view.Status.Text(),
		"Composing":  view.Status.State == chat.Composing,
	}, h.cfg), "")
}

// Page renders the counseling chat window.
func (h *ChatHandler) Page(c fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	view, err := s.Snapshot(c.Context())
	if err != nil {
		return err
	}

	return c.Render("counseling", MergeBranding(fiber.Map{
		"Title":       "AI Counseling",
		"Nav":         Navigation,
		"Active":      "ai-counseling",
		"Operator":    middleware.Operator(c),
		"Topics":      h.catalog.List(),
		"Turns":       view.Turns,
		"StatusText":  view.Status.Text(),
		"Composing":   view.Status.State == chat.Composing,
		"Placeholder": chat.Placeholder,
		"MaxLength":   chat.MaxMessageLength,
	}, h.cfg))
}

// Send records the user's message and returns the updated transcript.
func (h *ChatHandler) Send(c fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}

	if _, err := s.Send(c.Context(), c.FormValue("message")); err != nil {
		if errors.Is(err, chat.ErrMessageTooLong) {
			return htmxError(c, "Message is too long. Please keep it under 1000 characters.")
		}
		return err
	}

	return h.renderTranscript(c, s)
}

// Topic handles a topic button press.
func (h *ChatHandler) Topic(c fiber.Ctx) error {
	slug := validation.NormalizeSlug(c.Params("slug"))
	if !validation.ValidateSlug(slug) {
		return fiber.NewError(fiber.StatusNotFound, "topic not found")
	}

	s, err := h.session(c)
	if err != nil {
		return err
	}
	if err := s.SelectTopic(c.Context(), slug); err != nil {
		if errors.Is(err, counsel.ErrUnknownTopic) {
			return fiber.NewError(fiber.StatusNotFound, "topic not found")
		}
		return err
	}

	return h.renderTranscript(c, s)
}

// Clear resets the conversation.
func (h *ChatHandler) Clear(c fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	if err := s.Clear(c.Context()); err != nil {
		return err
	}
	return h.renderTranscript(c, s)
}

// Transcript returns the current transcript. Polled while the bot is typing.
func (h *ChatHandler) Transcript(c fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	return h.renderTranscript(c, s)
}

// Avatar serves the configured bot avatar image.
func (h *ChatHandler) Avatar(c fiber.Ctx) error {
	if !avatarExists(h.cfg.BotAvatarPath) {
		return fiber.NewError(fiber.StatusNotFound, "avatar not found")
	}
	return c.SendFile(h.cfg.BotAvatarPath)
}
