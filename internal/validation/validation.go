package validation

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

// SlugPattern defines the valid slug format for topics and dashboard sections:
// lowercase alphanumerics separated by single hyphens.
var SlugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// NormalizeSlug trims and lowercases a slug so lookups are case-insensitive.
func NormalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}

// ValidateSlug checks if an already normalized slug matches the allowed pattern.
func ValidateSlug(slug string) bool {
	if slug == "" || len(slug) > 64 {
		return false
	}
	return SlugPattern.MatchString(slug)
}

// ValidateEmail checks that addr is a single bare email address.
func ValidateEmail(addr string) (bool, string) {
	if addr == "" {
		return false, "Email address is required"
	}
	parsed, err := mail.ParseAddress(addr)
	if err != nil {
		return false, "Invalid email address"
	}
	if parsed.Address != addr {
		return false, "Email address must not include a display name"
	}
	return true, ""
}

// ValidateURL checks if a URL is valid and uses an allowed scheme (http/https only).
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}

// SafeRedirect returns target when it is a same-site absolute path, and "/"
// otherwise. Used for the post-login redirect.
func SafeRedirect(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.Contains(target, "\\") {
		return "/"
	}
	return target
}
