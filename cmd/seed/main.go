package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"lokal/internal/models"
	"lokal/internal/repository"
	"lokal/pkg/auth"
	"lokal/pkg/config"
	"lokal/pkg/logger"
	"lokal/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Demo dataset: four users with overlapping taste across five businesses.
// user_1 and user_2 share two likes, so user_2 is user_1's closest
// neighbor and businesses 1 and 2 surface first in recommendations.
var (
	businesses = []struct {
		key      string
		name     string
		category string
	}{
		{"business_1", "Brew & Bean", "cafe"},
		{"business_2", "Nonna's Kitchen", "restaurant"},
		{"business_3", "Page Turner Books", "bookstore"},
		{"business_4", "Iron Temple Gym", "fitness"},
		{"business_5", "Vinyl Haven", "music"},
	}

	posts = []struct {
		key      string
		business string
	}{
		{"post_1", "business_1"},
		{"post_2", "business_2"},
		{"post_3", "business_1"},
		{"post_4", "business_3"},
		{"post_5", "business_2"},
		{"post_6", "business_3"},
		{"post_7", "business_4"},
		{"post_8", "business_4"},
		{"post_9", "business_5"},
	}

	likes = map[string][]string{
		"user_1": {"post_1", "post_2", "post_3", "post_5"},
		"user_2": {"post_2", "post_3", "post_4", "post_6"},
		"user_3": {"post_1", "post_4", "post_7", "post_8"},
		"user_4": {"post_2", "post_5", "post_6", "post_9"},
	}
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db, appLogger)
	businessRepo := repository.NewBusinessRepository(db, appLogger)
	postRepo := repository.NewPostRepository(db, appLogger)
	likeRepo := repository.NewLikeRepository(db, appLogger)

	appLogger.Info("Starting database seeding...")

	now := time.Now()

	businessIDs := make(map[string]uuid.UUID, len(businesses))
	for _, b := range businesses {
		id := uuid.New()
		businessIDs[b.key] = id
		if err := businessRepo.Create(ctx, &models.Business{
			ID:        id,
			Name:      b.name,
			Category:  b.category,
			CreatedAt: now,
		}); err != nil {
			appLogger.Fatal("Failed to seed business", zap.String("business", b.key), zap.Error(err))
		}
	}

	userIDs := make(map[string]uuid.UUID, len(likes))
	for key := range likes {
		id := uuid.New()
		userIDs[key] = id

		password, err := auth.HashPassword("password123")
		if err != nil {
			appLogger.Fatal("Failed to hash password", zap.Error(err))
		}

		if err := userRepo.Create(ctx, &models.User{
			ID:        id,
			Username:  key,
			Email:     fmt.Sprintf("%s@example.com", key),
			Password:  password,
			CreatedAt: now,
			UpdatedAt: now,
		}); err != nil {
			appLogger.Fatal("Failed to seed user", zap.String("user", key), zap.Error(err))
		}
	}

	postIDs := make(map[string]uuid.UUID, len(posts))
	author := userIDs["user_1"]
	for _, p := range posts {
		id := uuid.New()
		postIDs[p.key] = id
		if err := postRepo.Create(ctx, &models.Post{
			ID:         id,
			BusinessID: businessIDs[p.business],
			AuthorID:   author,
			Content:    fmt.Sprintf("Check out %s!", p.key),
			CreatedAt:  now,
		}); err != nil {
			appLogger.Fatal("Failed to seed post", zap.String("post", p.key), zap.Error(err))
		}
	}

	for userKey, likedPosts := range likes {
		for _, postKey := range likedPosts {
			if err := likeRepo.Add(ctx, &models.Like{
				UserID:    userIDs[userKey],
				PostID:    postIDs[postKey],
				CreatedAt: now,
			}); err != nil {
				appLogger.Fatal("Failed to seed like",
					zap.String("user", userKey),
					zap.String("post", postKey),
					zap.Error(err),
				)
			}
		}
	}

	for key, id := range userIDs {
		appLogger.Info("Seeded user", zap.String("username", key), zap.String("id", id.String()))
	}

	appLogger.Info("Database seeding completed successfully!")
}
