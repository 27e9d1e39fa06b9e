package api

import (
	"github.com/gofiber/fiber/v3"

	"maitri/internal/db"
	"maitri/internal/models"
)

// SessionCounter reports how many chat sessions are live.
type SessionCounter interface {
	Len() int
}

// StatsHandler reports usage counters.
type StatsHandler struct {
	store    db.Store
	sessions SessionCounter
}

// NewStatsHandler creates a new API stats handler.
func NewStatsHandler(store db.Store, sessions SessionCounter) *StatsHandler {
	return &StatsHandler{store: store, sessions: sessions}
}

// recentAlertLimit caps the alerts returned by Stats.
const recentAlertLimit = 10

// Stats returns resolution counts, recent alerts and the live session count.
func (h *StatsHandler) Stats(c fiber.Ctx) error {
	counts, err := h.store.GetAllResolutionCounts(c.Context())
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch resolution counts")
	}

	alerts, err := h.store.ListRecentAlerts(c.Context(), recentAlertLimit)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch alerts")
	}

	return jsonSuccess(c, models.StatsResponse{
		Resolutions:    counts,
		RecentAlerts:   alerts,
		ActiveSessions: h.sessions.Len(),
	})
}
