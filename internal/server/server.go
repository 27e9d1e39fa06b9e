package server

import (
	"crypto/sha256"
	"crypto/tls"
	"encoding/base64"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/encryptcookie"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/session"
	"github.com/gofiber/fiber/v3/middleware/static"
	"github.com/gofiber/storage/redis/v3"
	"github.com/gofiber/template/html/v3"

	"maitri/internal/config"
	"maitri/internal/handlers"
)

// Server wraps the Fiber app and configuration.
type Server struct {
	App *fiber.App
	Cfg *config.Config

	// storage backs sessions and the rate limiter when REDIS_URL is set.
	storage *redis.Storage
}

// New creates a new server with middleware configured. viewsDir is the
// template directory, normally "./views".
func New(cfg *config.Config, viewsDir string) *Server {
	engine := html.New(viewsDir, ".html")
	engine.Reload(cfg.IsDev())

	app := fiber.New(fiber.Config{
		Views:        engine,
		ViewsLayout:  "layouts/main",
		ErrorHandler: errorHandler(cfg),
	})

	s := &Server{App: app, Cfg: cfg}

	var storage fiber.Storage
	if cfg.RedisURL != "" {
		s.storage = redis.New(redis.Config{URL: cfg.RedisURL})
		storage = s.storage
		log.Println("Using Redis for sessions and rate limiting")
	}

	app.Use(recover.New())
	app.Use(logger.New())

	corsOrigins := cfg.BaseURL
	if cfg.CORSOrigins != "" {
		corsOrigins = cfg.CORSOrigins
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(corsOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "HX-Request", "HX-Current-URL", "HX-Target", "HX-Trigger"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	app.Use(encryptcookie.New(encryptcookie.Config{
		Key: deriveEncryptionKey(cfg.SessionSecret),
	}))

	sessionMiddleware, _ := session.NewWithStore(session.Config{
		Storage:        storage,
		IdleTimeout:    cfg.SessionIdleTimeout,
		CookieSecure:   cfg.IsTLSEnabled() || !cfg.IsDev(),
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	app.Use(sessionMiddleware)

	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: 1 * time.Minute,
		Storage:    storage,
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP()
		},
		// Probes and the transcript poll would otherwise eat the budget.
		Next: func(c fiber.Ctx) bool {
			switch c.Path() {
			case "/healthz", "/readyz", "/metrics", "/chat/transcript":
				return true
			}
			return false
		},
		LimitReached: func(c fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"status": "error",
				"error":  "Rate limit exceeded. Please try again later.",
			})
		},
	}))

	app.Get("/static/*", static.New("./static"))

	return s
}

// errorHandler renders the error page for page requests and a JSON envelope
// for API requests.
func errorHandler(cfg *config.Config) fiber.ErrorHandler {
	return func(c fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
			message = e.Message
		} else {
			log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
		}

		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(code).JSON(fiber.Map{
				"status": "error",
				"error":  message,
			})
		}

		return c.Status(code).Render("error", handlers.MergeBranding(fiber.Map{
			"Title":   "Error",
			"Active":  "",
			"Code":    code,
			"Message": message,
			"Nav":     handlers.Navigation,
		}, cfg))
	}
}

// Start starts the server with the configured address and TLS settings.
func (s *Server) Start() error {
	if s.Cfg.IsTLSEnabled() {
		log.Printf("Starting server with TLS on %s", s.Cfg.ServerAddr)
		return s.App.Listen(s.Cfg.ServerAddr, fiber.ListenConfig{
			CertFile:    s.Cfg.TLSCertFile,
			CertKeyFile: s.Cfg.TLSKeyFile,
			TLSConfigFunc: func(tc *tls.Config) {
				tc.MinVersion = tls.VersionTLS12
			},
		})
	}
	log.Printf("Starting server on %s", s.Cfg.ServerAddr)
	return s.App.Listen(s.Cfg.ServerAddr)
}

// Shutdown gracefully shuts down the server and releases shared storage.
func (s *Server) Shutdown() error {
	err := s.App.Shutdown()
	if s.storage != nil {
		if cerr := s.storage.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// deriveEncryptionKey derives a 32-byte encryption key from the session secret.
func deriveEncryptionKey(secret string) string {
	hash := sha256.Sum256([]byte(secret))
	return base64.StdEncoding.EncodeToString(hash[:])
}
