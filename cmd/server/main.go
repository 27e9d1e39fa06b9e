package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"maitri/internal/chat"
	"maitri/internal/config"
	"maitri/internal/counsel"
	"maitri/internal/db"
	"maitri/internal/email"
	"maitri/internal/jobs"
	"maitri/internal/metrics"
	"maitri/internal/server"
	"maitri/internal/validation"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	mission, err := config.LoadYAMLConfig()
	if err != nil {
		log.Fatalf("Failed to load config file: %v", err)
	}
	log.Printf("Loaded crew roster (%d astronauts)", len(mission.Crew))

	if cfg.GroundControlEmail != "" {
		if ok, msg := validation.ValidateEmail(cfg.GroundControlEmail); !ok {
			log.Fatalf("Invalid GROUND_CONTROL_EMAIL: %s", msg)
		}
	}
	if ok, msg := validation.ValidateURL(cfg.BaseURL); !ok {
		log.Fatalf("Invalid BASE_URL: %s", msg)
	}

	store := openStore(ctx, cfg)
	defer store.Close()

	resolver := counsel.DefaultResolver()
	catalog := counsel.DefaultCatalog()

	chatOpts := chat.DefaultOptions()
	chatOpts.TypingFrames = cfg.TypingFrames
	chatOpts.FrameInterval = cfg.TypingFrameInterval
	chatOpts.OnResolve = metrics.RecordResolution
	sessions := chat.NewRegistry(resolver, catalog, chatOpts)
	defer sessions.Close()

	metrics.Init(store, sessions.Len)

	var notifier *email.Notifier
	if cfg.IsEmailEnabled() {
		notifier = email.NewNotifier(cfg, store)
	} else {
		log.Println("Ground control email disabled. Set SMTP_HOST, SMTP_FROM and GROUND_CONTROL_EMAIL to enable.")
	}

	srv := server.New(cfg, "./views")
	if err := srv.RegisterRoutes(ctx, server.Deps{
		Store:    store,
		Sessions: sessions,
		Resolver: resolver,
		Catalog:  catalog,
		Mission:  mission,
		Notifier: notifier,
	}); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	reaper := jobs.NewSessionReaper(sessions, cfg.ReapInterval, cfg.SessionIdleTimeout)
	go reaper.Start(ctx)

	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}

// openStore connects to Postgres when DATABASE_URL is set and falls back to
// the in-memory store otherwise.
func openStore(ctx context.Context, cfg *config.Config) db.Store {
	if cfg.DatabaseURL == "" {
		log.Println("DATABASE_URL not set; keeping stats and alerts in memory")
		return db.NewMemoryStore()
	}

	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		database.Close()
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	return database
}
