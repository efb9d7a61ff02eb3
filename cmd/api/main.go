package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"go-contact-backend/config"
	_ "go-contact-backend/docs" // Important for Swagger
	v1 "go-contact-backend/internal/delivery/http/v1"
	"go-contact-backend/internal/usecase"
	"go-contact-backend/pkg/email"
	"go-contact-backend/pkg/logger"
	"go-contact-backend/pkg/ratelimit"
	"go-contact-backend/pkg/redis"
)

// @title           Contact Backend API
// @version         1.0
// @description     Contact form submission service: validation, sanitization, and email dispatch.
// @host            localhost:8080
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting contact backend", "port", cfg.Port)

	// 3. Setup Rate Limiter (shared store when Redis is configured)
	limitCfg := ratelimit.Config{
		Limit:  cfg.RateLimitMaxRequests,
		Window: time.Duration(cfg.RateLimitWindowSeconds) * time.Second,
	}
	var limiter ratelimit.Limiter
	if cfg.RedisURL != "" {
		client, err := redis.Connect(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
		if err != nil {
			logger.Log.Warn("Redis unavailable, falling back to in-memory rate limiting", "error", err)
			limiter = ratelimit.NewMemory(limitCfg)
		} else {
			defer client.Close()
			limiter = ratelimit.NewRedis(client, limitCfg)
		}
	} else {
		limiter = ratelimit.NewMemory(limitCfg)
	}

	// 4. Setup Email Service
	emailService := email.NewService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - contact form will be unavailable")
	}

	// 5. Setup UseCase
	validate := validator.New()
	contactUC := usecase.NewContactUsecase(emailService, validate, cfg.SMTPFromEmail, cfg.OwnerEmail)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		Limiter:   limiter,
		Config:    cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
