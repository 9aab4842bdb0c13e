package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"stipendtriage/internal/config"
	"stipendtriage/internal/database"
	"stipendtriage/internal/handler"
	"stipendtriage/internal/mw"
	"stipendtriage/internal/service"
	"stipendtriage/internal/store"
	"stipendtriage/internal/worker"
)

func main() {
	cfg := config.New()

	var apps store.ApplicationStore
	var handoffs store.HandoffStore

	if cfg.DatabaseURI != "" {
		db, err := database.NewDB(cfg.DatabaseURI)
		if err != nil {
			slog.Error("failed to connect to DB", "error", err)
			os.Exit(1)
		}
		defer database.CloseDB(context.Background(), db)

		if err := database.InitSchema(db); err != nil {
			slog.Error("failed to init DB schema", "error", err)
			os.Exit(1)
		}

		apps = store.NewPostgresApplicationStore(db)
		handoffs = store.NewPostgresHandoffStore(db)
		slog.Info("using postgres storage")
	} else {
		apps = store.NewMemoryApplicationStore()
		handoffs = store.NewMemoryHandoffStore()
		slog.Info("using in-memory storage")
	}

	// Services
	appSvc := service.NewApplicationService(apps, handoffs)

	// Router
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-API-Key"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Submissions require the API key
	r.Group(func(r chi.Router) {
		r.Use(mw.APIKeyMiddleware(cfg.APIKey))
		r.Post("/api/applications", handler.SubmitApplicationHandler(appSvc))
	})

	r.Get("/api/admin/applications", handler.AdminApplicationsHandler(appSvc))
	r.Get("/api/internal/data", handler.InternalDataHandler(appSvc))

	srv := &http.Server{
		Addr:         cfg.RunAddress,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())

	if cfg.DownstreamAddress != "" {
		dispatcher := worker.NewHandoffDispatcher(handoffs, service.NewDownstreamClient(cfg.DownstreamAddress))
		go dispatcher.Start(ctx)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	slog.Info("starting server", "addr", cfg.RunAddress)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
		}
	}()

	<-quit
	slog.Info("shutting down...")

	cancel() // stop dispatcher
	ctxShut, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()

	if err := srv.Shutdown(ctxShut); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}

	slog.Info("server stopped")
}
