package usecase

import (
	"github.com/foysalit/codementorx-idea-pool/internal/idea/domain"
	"github.com/foysalit/codementorx-idea-pool/internal/idea/dto"
)

// IdeaUsecase defines the interface for idea business logic
type IdeaUsecase interface {
	// Create validates and persists a new idea with its derived score
	Create(req *dto.CreateIdeaRequest) (*domain.Idea, error)

	// Get loads an idea; a malformed or unknown ID is a not-found
	Get(id string) (*domain.Idea, error)

	// Update merges the provided fields, recomputes the score and persists
	Update(id string, req *dto.UpdateIdeaRequest) (*domain.Idea, error)

	// List returns one page of ideas, newest first
	List(page int) ([]*domain.Idea, error)

	// Remove loads then deletes an idea
	Remove(id string) error
}
