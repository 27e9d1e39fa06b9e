package handlers

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"maitri/internal/config"
	"maitri/internal/middleware"
	"maitri/internal/validation"
	"maitri/internal/wellbeing"
)

// NavItem is one entry in the dashboard navigation bar.
type NavItem struct {
	Slug  string
	Label string
	Path  string
}

// Navigation lists the dashboard sections in display order.
var Navigation = []NavItem{
	{Slug: "dashboard", Label: "Dashboard", Path: "/"},
	{Slug: "emotion-detection", Label: "Emotion Detection", Path: "/section/emotion-detection"},
	{Slug: "ai-counseling", Label: "AI Counseling", Path: "/counseling"},
	{Slug: "health-monitoring", Label: "Health Monitoring", Path: "/section/health-monitoring"},
	{Slug: "reports-analytics", Label: "Reports & Analytics", Path: "/section/reports-analytics"},
	{Slug: "settings", Label: "Settings", Path: "/section/settings"},
}

func findNavItem(slug string) (NavItem, bool) {
	for _, item := range Navigation {
		if item.Slug == slug {
			return item, true
		}
	}
	return NavItem{}, false
}

// DashboardHandler renders the mission dashboard and its sections.
type DashboardHandler struct {
	cfg     *config.Config
	mission *config.YAMLConfig
	now     func() time.Time
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(cfg *config.Config, mission *config.YAMLConfig) *DashboardHandler {
	return &DashboardHandler{cfg: cfg, mission: mission, now: time.Now}
}

func (h *DashboardHandler) baseData(active string) fiber.Map {
	return fiber.Map{
		"Nav":         Navigation,
		"Active":      active,
		"MissionName": h.mission.Mission.Name,
		"MissionDay":  wellbeing.MissionDay(h.mission.MissionStart(), h.now()),
	}
}

// Index renders the dashboard with the crew roster. ?astronaut=<name> selects
// a crew member's profile.
func (h *DashboardHandler) Index(c fiber.Ctx) error {
	data := h.baseData("dashboard")
	data["Title"] = "Dashboard"
	data["Crew"] = h.mission.Crew
	data["Operator"] = middleware.Operator(c)
	data["AlertLevels"] = []wellbeing.AlertLevel{wellbeing.AlertMedium, wellbeing.AlertHigh, wellbeing.AlertCritical}

	if name := c.Query("astronaut"); name != "" {
		if a := h.mission.GetAstronaut(name); a != nil {
			data["Selected"] = a
		}
	}

	return c.Render("index", MergeBranding(data, h.cfg))
}

// Section renders a placeholder page for a navigation entry that has no
// dedicated view yet.
func (h *DashboardHandler) Section(c fiber.Ctx) error {
	slug := validation.NormalizeSlug(c.Params("name"))
	if !validation.ValidateSlug(slug) {
		return fiber.NewError(fiber.StatusNotFound, "section not found")
	}

	item, ok := findNavItem(slug)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "section not found")
	}
	if item.Path != "/section/"+slug {
		return c.Redirect().To(item.Path)
	}

	data := h.baseData(slug)
	data["Title"] = item.Label
	data["Section"] = item
	data["Operator"] = middleware.Operator(c)
	return c.Render("section", MergeBranding(data, h.cfg))
}
