package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"maitri/internal/chat"
	"maitri/internal/config"
	"maitri/internal/db"
	"maitri/internal/email"
	"maitri/internal/metrics"
	"maitri/internal/middleware"
	"maitri/internal/models"
	"maitri/internal/wellbeing"
)

// EmergencyHandler raises emergency alerts from the dashboard.
type EmergencyHandler struct {
	store    db.Store
	sessions *chat.Registry
	notifier *email.Notifier
	cfg      *config.Config
}

// NewEmergencyHandler creates a new emergency handler. notifier may be nil.
func NewEmergencyHandler(store db.Store, sessions *chat.Registry, notifier *email.Notifier, cfg *config.Config) *EmergencyHandler {
	return &EmergencyHandler{store: store, sessions: sessions, notifier: notifier, cfg: cfg}
}

// Raise records an alert at the requested level, posts the follow-up message
// to the caller's chat and notifies ground control for high and critical
// alerts.
func (h *EmergencyHandler) Raise(c fiber.Ctx) error {
	level, err := wellbeing.ParseAlertLevel(c.Params("level"))
	if err != nil {
		if errors.Is(err, wellbeing.ErrUnknownAlertLevel) {
			return fiber.NewError(fiber.StatusBadRequest, "unknown alert level")
		}
		return err
	}

	operator := middleware.Operator(c)
	alert := &models.Alert{
		Level:     string(level),
		Astronaut: c.FormValue("astronaut"),
	}
	if operator != nil {
		alert.RaisedBy = operator.Sub
	}

	if err := h.store.CreateAlert(c.Context(), alert); err != nil {
		return err
	}
	metrics.RecordAlert(alert.Level)
	slog.Warn("emergency alert raised", "alert_id", alert.ID, "level", alert.Level, "astronaut", alert.Astronaut)

	if id := middleware.ChatID(c); id != "" {
		if err := h.sessions.Get(id).Announce(c.Context(), level.FollowUp()); err != nil {
			slog.Error("failed to post alert follow-up", "alert_id", alert.ID, "error", err)
		}
	}

	notified := false
	if h.notifier != nil {
		notified = h.notifier.NotifyEmergency(alert, operator)
	}

	return c.Render("partials/alert", fiber.Map{
		"Level":           alert.Level,
		"Acknowledgement": level.Acknowledgement(),
		"Notified":        notified,
	}, "")
}
