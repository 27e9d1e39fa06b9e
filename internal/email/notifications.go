package email

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"maitri/internal/config"
	"maitri/internal/models"
	"maitri/internal/wellbeing"
)

// AlertMarker records that an alert notification went out.
type AlertMarker interface {
	MarkAlertNotified(ctx context.Context, id uuid.UUID) error
}

// Notifier sends email notifications for emergency alerts.
type Notifier struct {
	service   *Service
	templates *Templates
	cfg       *config.Config
	alerts    AlertMarker
}

// NewNotifier creates a new email notifier.
func NewNotifier(cfg *config.Config, alerts AlertMarker) *Notifier {
	return &Notifier{
		service:   NewService(cfg),
		templates: NewTemplates(cfg),
		cfg:       cfg,
		alerts:    alerts,
	}
}

// NotifyEmergency emails ground control about high and critical alerts and
// marks the alert notified once the mail is accepted. It reports whether a
// notification was dispatched.
func (n *Notifier) NotifyEmergency(alert *models.Alert, operator *models.Operator) bool {
	if !n.service.IsEnabled() {
		return false
	}
	if !wellbeing.AlertLevel(alert.Level).NotifiesGround() {
		return false
	}

	id := alert.ID
	subject, htmlBody, textBody := n.templates.EmergencyAlert(alert, operator)
	n.service.SendAsync([]string{n.cfg.GroundControlEmail}, subject, htmlBody, textBody, func(err error) {
		if err != nil || n.alerts == nil {
			return
		}
		if err := n.alerts.MarkAlertNotified(context.Background(), id); err != nil {
			slog.Error("failed to mark alert notified", "alert_id", id, "error", err)
		}
	})
	return true
}
