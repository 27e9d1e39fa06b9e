package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr  string
	BaseURL     string
	TLSCertFile string
	TLSKeyFile  string

	// Storage. Empty DatabaseURL keeps counters in memory; empty RedisURL
	// keeps rate limiter state in memory.
	DatabaseURL string
	RedisURL    string

	// OIDC operator login. Disabled when OIDCIssuer is empty.
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string
	OperatorEmail    string // when set, only this identity may sign in

	// Session
	SessionSecret      string        // Used for signing cookies (min 32 chars)
	SessionIdleTimeout time.Duration // Chat sessions idle longer than this are dropped
	ReapInterval       time.Duration

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Chat pacing
	TypingFrames        int
	TypingFrameInterval time.Duration

	// Rate limiting
	RateLimitMax int // requests per minute per IP

	// SMTP, used for emergency notifications to ground control
	SMTPHost           string
	SMTPPort           int
	SMTPUsername       string
	SMTPPassword       string
	SMTPFrom           string
	SMTPFromName       string
	SMTPTLS            string // "none", "tls", "starttls"
	GroundControlEmail string

	// Site Branding
	SiteTitle     string // env: SITE_TITLE
	SiteTagline   string // env: SITE_TAGLINE
	SiteFooter    string // env: SITE_FOOTER
	BotAvatarPath string // env: BOT_AVATAR_PATH, image shown in the chat header
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first when present; variables
// already set in the environment win.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env: %v", err)
	}

	return &Config{
		Env:                 getEnv("ENV", "development"),
		ServerAddr:          getEnv("SERVER_ADDR", "127.0.0.1:3000"),
		BaseURL:             getEnv("BASE_URL", "http://localhost:3000"),
		TLSCertFile:         getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:          getEnv("TLS_KEY_FILE", ""),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		RedisURL:            getEnv("REDIS_URL", ""),
		OIDCIssuer:          getEnv("OIDC_ISSUER", ""),
		OIDCClientID:        getEnv("OIDC_CLIENT_ID", ""),
		OIDCClientSecret:    getEnv("OIDC_CLIENT_SECRET", ""),
		OIDCRedirectURL:     getEnv("OIDC_REDIRECT_URL", "http://localhost:3000/auth/callback"),
		OperatorEmail:       getEnv("OIDC_OPERATOR_EMAIL", ""),
		SessionSecret:       getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
		SessionIdleTimeout:  getEnvDuration("SESSION_IDLE_TIMEOUT", 2*time.Hour),
		ReapInterval:        getEnvDuration("SESSION_REAP_INTERVAL", 5*time.Minute),
		CORSOrigins:         getEnv("CORS_ORIGINS", ""),
		TypingFrames:        getEnvInt("TYPING_FRAMES", 3),
		TypingFrameInterval: getEnvDuration("TYPING_FRAME_INTERVAL", 500*time.Millisecond),
		RateLimitMax:        getEnvInt("RATE_LIMIT_MAX", 100),

		SMTPHost:           getEnv("SMTP_HOST", ""),
		SMTPPort:           getEnvInt("SMTP_PORT", 587),
		SMTPUsername:       getEnv("SMTP_USERNAME", ""),
		SMTPPassword:       getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:           getEnv("SMTP_FROM", ""),
		SMTPFromName:       getEnv("SMTP_FROM_NAME", "MAITRI"),
		SMTPTLS:            getEnv("SMTP_TLS", "starttls"),
		GroundControlEmail: getEnv("GROUND_CONTROL_EMAIL", ""),

		SiteTitle:     getEnv("SITE_TITLE", "🌌 MAITRI Dashboard"),
		SiteTagline:   getEnv("SITE_TAGLINE", "🌌 MAITRI – AI Assistant for Astronaut Well-Being"),
		SiteFooter:    getEnv("SITE_FOOTER", "MAITRI – AI Counseling Assistant"),
		BotAvatarPath: getEnv("BOT_AVATAR_PATH", "./static/img/bot.png"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %d", key, value, fallback)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %s", key, value, fallback)
		return fallback
	}
	return d
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsTLSEnabled returns true if both a certificate and key are configured.
func (c *Config) IsTLSEnabled() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}

// IsAuthEnabled returns true if operator login via OIDC is configured.
func (c *Config) IsAuthEnabled() bool {
	return c.OIDCIssuer != ""
}

// IsEmailEnabled returns true if ground control notifications can be sent.
func (c *Config) IsEmailEnabled() bool {
	return c.SMTPHost != "" && c.SMTPFrom != "" && c.GroundControlEmail != ""
}
