package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	skillboostroot "github.com/skillboost/skillboost"
	"github.com/skillboost/skillboost/internal/config"
	"github.com/skillboost/skillboost/internal/handler"
	"github.com/skillboost/skillboost/internal/middleware"
	"github.com/skillboost/skillboost/internal/repository"
	"github.com/skillboost/skillboost/internal/repository/sqlc"
	"github.com/skillboost/skillboost/internal/service"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Run migrations
	migrationsFS, err := fs.Sub(skillboostroot.MigrationsFS, "migrations")
	if err != nil {
		slog.Error("failed to load embedded migrations", "error", err)
		os.Exit(1)
	}
	if err := repository.RunMigrations(cfg.DatabaseURL, migrationsFS); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Initialize sqlc queries
	queries := sqlc.New(pool)

	// Initialize services
	userService := service.NewUserService(pool, queries)
	tokenService := service.NewTokenService(cfg.JWTSecret)
	sessionService := service.NewSessionService(pool, queries)
	openAI := service.NewOpenAIService(cfg.OpenAIKey, cfg.OpenAIURL)

	var source service.QuestionSource
	if cfg.QuestionSource == "static" {
		source = service.NewStaticSource()
	} else {
		source = service.NewModelSource(openAI, cfg.QuestionTarget)
	}
	interviewService := service.NewInterviewService(sessionService, source, service.NewSleeper())

	// Build router
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Recover())
	r.Use(middleware.Logging())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	h := handler.New(handler.Deps{
		Cfg:        cfg,
		Users:      userService,
		Tokens:     tokenService,
		Sessions:   sessionService,
		Interviews: interviewService,
		OpenAI:     openAI,
		Queries:    queries,
	})
	h.Register(r)

	// Start cleanup goroutine for stale rate-limit rows and abandoned
	// interviews
	go func() {
		ticker := time.NewTicker(config.StaleRateLimitCleanup)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := queries.CleanupStaleRateLimits(context.Background()); err != nil {
					slog.Error("cleanup stale rate limits", "error", err)
				}
				if n := interviewService.EvictIdle(config.InterviewIdleTTL); n > 0 {
					slog.Info("evicted idle interviews", "count", n)
				}
			}
		}
	}()

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	go func() {
		slog.Info("starting server", "port", cfg.Port, "question_source", cfg.QuestionSource)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown", "error", err)
	}
	slog.Info("server stopped gracefully")
}
