package repository

import "github.com/foysalit/codementorx-idea-pool/internal/auth/domain"

// UserRepository defines the interface for user and refresh token data access
type UserRepository interface {
	// Create creates a new user with a generated ID
	Create(user *domain.User) error

	// FindByEmail finds a user by email, returning nil when absent
	FindByEmail(email string) (*domain.User, error)

	// FindByID finds a user by ID, returning nil when absent
	FindByID(id string) (*domain.User, error)

	// Update updates an existing user
	Update(user *domain.User) error

	// SaveRefreshToken persists a refresh token record
	SaveRefreshToken(token *domain.RefreshToken) error

	// ConsumeRefreshToken atomically finds and deletes a refresh token,
	// returning nil when no matching record exists
	ConsumeRefreshToken(token string) (*domain.RefreshToken, error)

	// DeleteRefreshToken removes a refresh token if present
	DeleteRefreshToken(token string) error
}
