package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lokal/internal/api"
	"lokal/internal/api/handlers"
	"lokal/internal/cache"
	"lokal/internal/repository"
	"lokal/internal/service"
	"lokal/pkg/auth"
	"lokal/pkg/config"
	"lokal/pkg/logger"
	"lokal/pkg/postgres"

	"go.uber.org/zap"
)

// @title Lokal API
// @version 1.0
// @description Local business discovery backend with collaborative-filtering recommendations

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Lokal service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	businessRepo := repository.NewBusinessRepository(db, appLogger)
	postRepo := repository.NewPostRepository(db, appLogger)
	likeRepo := repository.NewLikeRepository(db, appLogger)
	interactionRepo := repository.NewInteractionRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Optional recommendation cache
	var recCache *cache.RecommendationCache
	if cfg.Redis.Addr != "" {
		recCache, err = cache.NewRecommendationCache(&cfg.Redis, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer recCache.Close()
	} else {
		appLogger.Info("Recommendation cache disabled (REDIS_ADDR not set)")
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	businessService := service.NewBusinessService(businessRepo, appLogger)
	postService := service.NewPostService(postRepo, likeRepo, businessRepo, appLogger)
	recService := service.NewRecommendationService(interactionRepo, appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	businessHandler := handlers.NewBusinessHandler(businessService, appLogger)
	postHandler := handlers.NewPostHandler(postService, recCache, appLogger)
	recHandler := handlers.NewRecommendationHandler(recService, recCache, appLogger)

	// Setup router
	app := api.SetupRouter(authHandler, businessHandler, postHandler, recHandler, jwtManager, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
