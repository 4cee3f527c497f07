package usecase

import (
	"context"

	"github.com/foysalit/codementorx-idea-pool/internal/auth/domain"
	"github.com/foysalit/codementorx-idea-pool/internal/auth/dto"
	"github.com/foysalit/codementorx-idea-pool/pkg/oauth"
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	// Register creates a new user and issues a token pair
	Register(req *dto.RegisterRequest) (*dto.TokenResponse, error)

	// Login verifies credentials and issues a token pair
	Login(req *dto.LoginRequest) (*dto.TokenResponse, error)

	// Logout deletes the supplied refresh token, best effort
	Logout(refreshToken string) error

	// OAuth resolves a provider token, finds or creates the local user and
	// issues a token pair
	OAuth(ctx context.Context, provider, accessToken string) (*dto.TokenResponse, *domain.User, error)

	// Refresh consumes a refresh token and issues a new token pair
	Refresh(refreshToken string) (*dto.TokenResponse, error)

	// ValidateToken parses an access token and loads its user
	ValidateToken(tokenString string) (*domain.User, error)
}

// GoogleVerifier resolves a Google ID token into a profile
type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (*oauth.Identity, error)
}

// FacebookVerifier resolves a Facebook access token into a profile
type FacebookVerifier interface {
	Verify(ctx context.Context, accessToken string) (*oauth.Identity, error)
}
