package main

import (
	"context"
	"log/slog"
	"os"

	api "around-backend/cmd/api"
	authRepo "around-backend/internal/auth/repository"
	authUsecase "around-backend/internal/auth/usecase"
	usersUsecase "around-backend/internal/users/usecase"
	"around-backend/pkg/config"
	"around-backend/pkg/database"
	"around-backend/pkg/token"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize database
	ctx := context.Background()
	db, err := database.NewMongoConnection(ctx, cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	// Email uniqueness is enforced by the store
	if err := authRepo.EnsureIndexes(ctx, db); err != nil {
		slog.Error("failed to create indexes", "error", err)
		os.Exit(1)
	}

	// Token service; a missing signing key is fatal here, not at call time
	tokens, err := token.NewService(cfg.JWTSecret, cfg.TokenExpiry)
	if err != nil {
		slog.Error("failed to create token service", "error", err)
		os.Exit(1)
	}

	// Initialize repositories and use cases (dependency injection)
	userRepo := authRepo.NewUserRepository(db, cfg.MongoOpTimeout)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, tokens)
	userUsecaseInstance := usersUsecase.NewUserUsecase(userRepo)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, userUsecaseInstance, cfg)

	// Start server
	slog.Info("server starting", "port", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
