package server

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"maitri/internal/chat"
	"maitri/internal/config"
	"maitri/internal/counsel"
	"maitri/internal/db"
	"maitri/internal/email"
	"maitri/internal/handlers"
	"maitri/internal/handlers/api"
	"maitri/internal/middleware"
)

// Deps are the long-lived components the routes are built over.
type Deps struct {
	Store    db.Store
	Sessions *chat.Registry
	Resolver *counsel.Resolver
	Catalog  *counsel.Catalog
	Mission  *config.YAMLConfig
	Notifier *email.Notifier // nil disables ground control email
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context, deps Deps) error {
	authMiddleware := middleware.NewAuthMiddleware(s.Cfg)

	probeHandler := handlers.NewProbeHandler(deps.Store)
	dashboardHandler := handlers.NewDashboardHandler(s.Cfg, deps.Mission)
	chatHandler := handlers.NewChatHandler(deps.Sessions, deps.Catalog, s.Cfg)
	emergencyHandler := handlers.NewEmergencyHandler(deps.Store, deps.Sessions, deps.Notifier, s.Cfg)

	// Probes and metrics stay outside the operator gate.
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	if s.Cfg.IsAuthEnabled() {
		authHandler, err := handlers.NewAuthHandler(ctx, s.Cfg)
		if err != nil {
			return err
		}
		s.App.Get("/login", handlers.LoginPage(s.Cfg))
		s.App.Get("/auth/login", authHandler.Login)
		s.App.Get("/auth/callback", authHandler.Callback)
		s.App.Get("/auth/logout", authHandler.Logout)
	} else {
		log.Println("Operator login disabled. Set OIDC_ISSUER to enable.")
	}

	// Dashboard
	s.App.Get("/", authMiddleware.RequireAuth, dashboardHandler.Index)
	s.App.Get("/section/:name", authMiddleware.RequireAuth, dashboardHandler.Section)

	// Counseling chat
	s.App.Get("/counseling", authMiddleware.RequireAuth, chatHandler.Page)
	s.App.Get("/chat/avatar", chatHandler.Avatar)
	s.App.Post("/chat/send", authMiddleware.RequireAuth, chatHandler.Send)
	s.App.Post("/chat/topic/:slug", authMiddleware.RequireAuth, chatHandler.Topic)
	s.App.Post("/chat/clear", authMiddleware.RequireAuth, chatHandler.Clear)
	s.App.Get("/chat/transcript", authMiddleware.RequireAuth, chatHandler.Transcript)

	s.App.Post("/emergency/:level", authMiddleware.RequireAuth, emergencyHandler.Raise)

	registerAPIRoutes(s, authMiddleware, deps)

	return nil
}

func registerAPIRoutes(s *Server, authMiddleware *middleware.AuthMiddleware, deps Deps) {
	topicHandler := api.NewTopicHandler(deps.Catalog)
	resolveHandler := api.NewResolveHandler(deps.Resolver)
	wellbeingHandler := api.NewWellbeingHandler()
	statsHandler := api.NewStatsHandler(deps.Store, deps.Sessions)
	transcriptHandler := api.NewTranscriptHandler(deps.Sessions)

	v1 := s.App.Group("/api/v1", authMiddleware.RequireAuth)
	v1.Get("/topics", topicHandler.List)
	v1.Get("/topics/:slug", topicHandler.Get)
	v1.Post("/resolve", resolveHandler.Resolve)
	v1.Post("/wellbeing/assess", wellbeingHandler.Assess)
	v1.Get("/stats", statsHandler.Stats)
	v1.Get("/chat", transcriptHandler.Get)
}
