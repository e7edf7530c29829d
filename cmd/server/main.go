package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ctchen222/Movie-Catalog/internal/api/controller"
	"ctchen222/Movie-Catalog/internal/api/repository"
	"ctchen222/Movie-Catalog/internal/api/service"
	"ctchen222/Movie-Catalog/internal/auth"
	"ctchen222/Movie-Catalog/internal/config"
	"ctchen222/Movie-Catalog/internal/db"
	"ctchen222/Movie-Catalog/internal/logger"
	"ctchen222/Movie-Catalog/internal/server"
	"ctchen222/Movie-Catalog/internal/telemetry"
)

func main() {
	ctx := context.Background()

	// Load configuration; a missing secret key or database path is fatal here,
	// never a per-request error.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize telemetry
	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.InitOtel(ctx, cfg.OTLPEndpoint)
		if err != nil {
			log.Fatalf("failed to initialize telemetry: %v", err)
		}
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	logger.Init(cfg.TelemetryEnabled)

	// Initialize SQLite DB
	pool, err := db.Connect(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.Initialize(pool); err != nil {
		log.Fatalf("failed to initialize sqlite schema: %v", err)
	}

	// Create repositories
	userRepo := repository.NewUserRepository(pool)
	movieRepo := repository.NewMovieRepository(pool)
	ratingRepo := repository.NewRatingRepository(pool)
	commentRepo := repository.NewCommentRepository(pool)

	// Create services
	tokens := auth.NewTokenManager(cfg)
	authService := service.NewAuthService(userRepo, tokens)
	movieService := service.NewMovieService(movieRepo)
	ratingService := service.NewRatingService(ratingRepo, movieRepo)
	commentService := service.NewCommentService(commentRepo, movieRepo)

	// Create controllers
	authController := controller.NewAuthController(authService)
	movieController := controller.NewMovieController(movieService)
	ratingController := controller.NewRatingController(ratingService)
	commentController := controller.NewCommentController(commentService)

	// Create the Gin-based server
	srv := server.NewServer(tokens, authService, authController, movieController, ratingController, commentController)

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	httpServer := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: srv.Engine(),
	}

	go func() {
		slog.Info("http server started", "addr", cfg.ServerAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-stop

	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	slog.Info("server exiting")
}
