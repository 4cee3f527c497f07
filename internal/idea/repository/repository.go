package repository

import "github.com/foysalit/codementorx-idea-pool/internal/idea/domain"

// IdeaRepository defines the interface for idea data access
type IdeaRepository interface {
	// Create persists a new idea with a generated ID
	Create(idea *domain.Idea) error

	// FindByID finds an idea by its ID, returning nil when absent
	FindByID(id string) (*domain.Idea, error)

	// Update persists all fields of an existing idea
	Update(idea *domain.Idea) error

	// List returns one page of ideas ordered by creation time descending
	List(page, pageSize int) ([]*domain.Idea, error)

	// Delete deletes an idea by ID
	Delete(id string) error
}
