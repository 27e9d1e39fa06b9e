package handlers

import (
	"os"

	"github.com/gofiber/fiber/v3"

	"maitri/internal/config"
)

// BotAvatarFallback is shown when no avatar image is available.
const BotAvatarFallback = "🤖"

// BrandingData contains site branding information for templates.
type BrandingData struct {
	SiteTitle   string
	SiteTagline string
	SiteFooter  string
	HasAvatar   bool
	AuthEnabled bool
}

// GetBrandingData returns branding data from config for template rendering.
func GetBrandingData(cfg *config.Config) BrandingData {
	return BrandingData{
		SiteTitle:   cfg.SiteTitle,
		SiteTagline: cfg.SiteTagline,
		SiteFooter:  cfg.SiteFooter,
		HasAvatar:   avatarExists(cfg.BotAvatarPath),
		AuthEnabled: cfg.IsAuthEnabled(),
	}
}

// MergeBranding adds branding data to a fiber.Map for template rendering.
func MergeBranding(data fiber.Map, cfg *config.Config) fiber.Map {
	branding := GetBrandingData(cfg)
	data["SiteTitle"] = branding.SiteTitle
	data["SiteTagline"] = branding.SiteTagline
	data["SiteFooter"] = branding.SiteFooter
	data["HasAvatar"] = branding.HasAvatar
	data["AvatarFallback"] = BotAvatarFallback
	data["AuthEnabled"] = branding.AuthEnabled
	return data
}

func avatarExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
