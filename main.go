package main

import (
	"log"

	api "github.com/foysalit/codementorx-idea-pool/cmd/api"
	authdomain "github.com/foysalit/codementorx-idea-pool/internal/auth/domain"
	authRepo "github.com/foysalit/codementorx-idea-pool/internal/auth/repository"
	authUsecase "github.com/foysalit/codementorx-idea-pool/internal/auth/usecase"
	ideadomain "github.com/foysalit/codementorx-idea-pool/internal/idea/domain"
	ideaRepo "github.com/foysalit/codementorx-idea-pool/internal/idea/repository"
	ideaUsecase "github.com/foysalit/codementorx-idea-pool/internal/idea/usecase"
	"github.com/foysalit/codementorx-idea-pool/pkg/config"
	"github.com/foysalit/codementorx-idea-pool/pkg/database"
	"github.com/foysalit/codementorx-idea-pool/pkg/oauth"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &authdomain.RefreshToken{}, &ideadomain.Idea{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	ideaRepository := ideaRepo.NewGormIdeaRepository(db)

	// Initialize oauth identity verifiers
	googleVerifier := oauth.NewGoogleVerifier(cfg.GoogleClientID)
	facebookVerifier := oauth.NewFacebookVerifier()

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, googleVerifier, facebookVerifier, cfg)
	ideaUsecaseInstance := ideaUsecase.NewIdeaUsecase(ideaRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, ideaUsecaseInstance)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
