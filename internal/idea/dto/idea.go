package dto

import (
	"time"

	"github.com/foysalit/codementorx-idea-pool/internal/idea/domain"
)

type CreateIdeaRequest struct {
	Content    string `json:"content" binding:"required,max=255"`
	Impact     *int   `json:"impact" binding:"required,min=1,max=10"`
	Ease       *int   `json:"ease" binding:"required,min=1,max=10"`
	Confidence *int   `json:"confidence" binding:"required,min=1,max=10"`
	// AverageScore is accepted for wire compatibility but recomputed on
	// save, so a supplied value never persists.
	AverageScore *float64 `json:"average_score" binding:"omitempty,min=1,max=10"`
}

// UpdateIdeaRequest carries a partial merge: nil fields stay unchanged.
type UpdateIdeaRequest struct {
	Content      *string  `json:"content" binding:"omitempty,max=255"`
	Impact       *int     `json:"impact" binding:"omitempty,min=1,max=10"`
	Ease         *int     `json:"ease" binding:"omitempty,min=1,max=10"`
	Confidence   *int     `json:"confidence" binding:"omitempty,min=1,max=10"`
	AverageScore *float64 `json:"average_score" binding:"omitempty,min=1,max=10"`
}

// ListIdeasQuery uses a pointer so an explicit page=0 is rejected rather
// than read as the default.
type ListIdeasQuery struct {
	Page *int `form:"page" binding:"omitempty,min=1"`
}

// IdeaResponse is the public projection of an idea record, decoupling
// storage field names from API field names.
type IdeaResponse struct {
	ID           string    `json:"id"`
	Content      string    `json:"content"`
	Impact       int       `json:"impact"`
	Ease         int       `json:"ease"`
	Confidence   int       `json:"confidence"`
	AverageScore float64   `json:"average_score"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewIdeaResponse projects a record to its public shape.
func NewIdeaResponse(idea *domain.Idea) IdeaResponse {
	return IdeaResponse{
		ID:           idea.ID,
		Content:      idea.Content,
		Impact:       idea.Impact,
		Ease:         idea.Ease,
		Confidence:   idea.Confidence,
		AverageScore: idea.AverageScore,
		CreatedAt:    idea.CreatedAt,
	}
}

// NewIdeaListResponse projects a page of records.
func NewIdeaListResponse(ideas []*domain.Idea) []IdeaResponse {
	out := make([]IdeaResponse, 0, len(ideas))
	for _, idea := range ideas {
		out = append(out, NewIdeaResponse(idea))
	}
	return out
}
