package email

import (
	"fmt"
	"html"
	"strings"
	"time"

	"maitri/internal/config"
	"maitri/internal/models"
	"maitri/internal/wellbeing"
)

// Templates provides email template generation.
type Templates struct {
	cfg *config.Config
}

// NewTemplates creates a new templates instance.
func NewTemplates(cfg *config.Config) *Templates {
	return &Templates{cfg: cfg}
}

// baseHTML wraps content in a consistent HTML email template.
func (t *Templates) baseHTML(title, content string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>%s</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #e6edf3; background: #0f1419; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #141a21; color: #00d4ff; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
        .content { background: #1a2332; padding: 20px; }
        .footer { background: #141a21; padding: 15px; text-align: center; font-size: 12px; color: #8b949e; border-radius: 0 0 8px 8px; }
        .label { font-weight: 600; }
        .critical { color: #ff4d4d; }
    </style>
</head>
<body>
    <div class="header"><h1>%s</h1></div>
    <div class="content">%s</div>
    <div class="footer"><p>Sent by %s</p><p><a href="%s">%s</a></p></div>
</body>
</html>`, html.EscapeString(title), html.EscapeString(title), content,
		html.EscapeString(t.cfg.SiteFooter), t.cfg.BaseURL, t.cfg.BaseURL)
}

// EmergencyAlert renders the ground control notification for an alert.
func (t *Templates) EmergencyAlert(alert *models.Alert, operator *models.Operator) (subject, htmlBody, textBody string) {
	level := wellbeing.AlertLevel(alert.Level)
	astronaut := alert.Astronaut
	if astronaut == "" {
		astronaut = "unspecified crew member"
	}

	subject = fmt.Sprintf("[MAITRI] %s emergency alert: %s", strings.ToUpper(alert.Level), astronaut)

	raisedBy := operator.DisplayName()
	if raisedBy == "" {
		raisedBy = "dashboard"
	}
	at := alert.CreatedAt.UTC().Format(time.RFC3339)

	content := fmt.Sprintf(`
        <p class="critical"><strong>%s</strong></p>
        <p><span class="label">Astronaut:</span> %s</p>
        <p><span class="label">Raised by:</span> %s</p>
        <p><span class="label">Time:</span> %s</p>
        <p><span class="label">Alert ID:</span> <code>%s</code></p>`,
		html.EscapeString(level.Acknowledgement()),
		html.EscapeString(astronaut),
		html.EscapeString(raisedBy),
		at,
		alert.ID)
	htmlBody = t.baseHTML("Emergency Alert", content)

	textBody = fmt.Sprintf("%s\n\nAstronaut: %s\nRaised by: %s\nTime: %s\nAlert ID: %s\n",
		level.Acknowledgement(), astronaut, raisedBy, at, alert.ID)

	return subject, htmlBody, textBody
}
