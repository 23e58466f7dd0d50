package main

import (
	"context"
	"go-swipehire-backend/config"
	v1 "go-swipehire-backend/internal/delivery/http/v1"
	"go-swipehire-backend/internal/relay"
	"go-swipehire-backend/internal/repository/postgres"
	"go-swipehire-backend/internal/usecase"
	"go-swipehire-backend/pkg/auth"
	"go-swipehire-backend/pkg/database"
	"go-swipehire-backend/pkg/logger"
	"go-swipehire-backend/pkg/redis"
	"go-swipehire-backend/pkg/storage"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
)

// @title           SwipeHire Backend API
// @version         1.0
// @description     Swipe-to-match recruiting backend.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting swipehire backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; rate limiter falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	}
	defer redis.Close()

	// 5. Setup S3 uploader (optional; asset uploads report unavailable)
	var uploader *storage.Uploader
	uploader, err = storage.NewUploader(context.Background(), storage.Config{
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
		PublicBaseURL:   cfg.S3PublicBaseURL,
	})
	if err != nil {
		logger.Log.Warn("S3 storage not configured - profile asset uploads disabled", "error", err)
		uploader = nil
	} else {
		pingCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := uploader.Ping(pingCtx); err != nil {
			logger.Log.Warn("S3 bucket unreachable - profile asset uploads disabled", "error", err)
			uploader = nil
		}
		cancel()
	}

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)
	swipeRepo := postgres.NewSwipeRepository(dbPool)
	matchRepo := postgres.NewMatchRepository(dbPool)
	messageRepo := postgres.NewMessageRepository(dbPool)

	// 7. Live update relay
	hub := relay.NewHub()

	// 8. Setup UseCases
	validate := validator.New()
	authUC := usecase.NewAuthUsecase(userRepo)
	profileUC := usecase.NewProfileUsecase(profileRepo, userRepo, hub, validate)
	swipeUC := usecase.NewSwipeUsecase(swipeRepo, matchRepo, userRepo, hub)
	feedUC := usecase.NewFeedUsecase(userRepo, matchRepo, profileRepo)
	matchUC := usecase.NewMatchUsecase(matchRepo, profileRepo, messageRepo)
	messageUC := usecase.NewMessageUsecase(messageRepo, matchRepo, hub)

	// 9. Setup Auth Provider (JWKS)
	jwksProvider := auth.NewSupabaseProvider(cfg.SupabaseUrl)

	// 10. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:       authUC,
		ProfileUC:    profileUC,
		FeedUC:       feedUC,
		SwipeUC:      swipeUC,
		MatchUC:      matchUC,
		MessageUC:    messageUC,
		Hub:          hub,
		Uploader:     uploader,
		JWKSProvider: jwksProvider,
		Config:       cfg,
	})

	// 11. Start Server
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
