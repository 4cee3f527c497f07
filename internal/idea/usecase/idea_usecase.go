package usecase

import (
	"strings"

	"github.com/google/uuid"

	"github.com/foysalit/codementorx-idea-pool/internal/idea/domain"
	"github.com/foysalit/codementorx-idea-pool/internal/idea/dto"
	"github.com/foysalit/codementorx-idea-pool/internal/idea/repository"
	"github.com/foysalit/codementorx-idea-pool/pkg/apperror"
)

// perPage is the fixed page size for listing ideas.
const perPage = 10

// ideaUsecase implements IdeaUsecase interface
type ideaUsecase struct {
	ideaRepo repository.IdeaRepository
}

// NewIdeaUsecase creates a new instance of ideaUsecase
func NewIdeaUsecase(ideaRepo repository.IdeaRepository) IdeaUsecase {
	return &ideaUsecase{
		ideaRepo: ideaRepo,
	}
}

func (u *ideaUsecase) Create(req *dto.CreateIdeaRequest) (*domain.Idea, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperror.Validation("invalid request parameters", map[string]string{
			"content": "is required",
		})
	}

	idea := &domain.Idea{
		Content:    content,
		Impact:     *req.Impact,
		Ease:       *req.Ease,
		Confidence: *req.Confidence,
	}
	idea.ComputeAverageScore()

	if err := u.ideaRepo.Create(idea); err != nil {
		return nil, err
	}
	return idea, nil
}

func (u *ideaUsecase) Get(id string) (*domain.Idea, error) {
	return u.load(id)
}

func (u *ideaUsecase) Update(id string, req *dto.UpdateIdeaRequest) (*domain.Idea, error) {
	idea, err := u.load(id)
	if err != nil {
		return nil, err
	}

	if req.Content != nil {
		content := strings.TrimSpace(*req.Content)
		if content == "" {
			return nil, apperror.Validation("invalid request parameters", map[string]string{
				"content": "is required",
			})
		}
		idea.Content = content
	}
	if req.Impact != nil {
		idea.Impact = *req.Impact
	}
	if req.Ease != nil {
		idea.Ease = *req.Ease
	}
	if req.Confidence != nil {
		idea.Confidence = *req.Confidence
	}
	idea.ComputeAverageScore()

	if err := u.ideaRepo.Update(idea); err != nil {
		return nil, err
	}
	return idea, nil
}

func (u *ideaUsecase) List(page int) ([]*domain.Idea, error) {
	if page < 1 {
		page = 1
	}
	return u.ideaRepo.List(page, perPage)
}

func (u *ideaUsecase) Remove(id string) error {
	idea, err := u.load(id)
	if err != nil {
		return err
	}
	return u.ideaRepo.Delete(idea.ID)
}

// load resolves an identifier to a record. A malformed identifier is
// indistinguishable from an unknown one: both are a not-found.
func (u *ideaUsecase) load(id string) (*domain.Idea, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperror.NotFound("idea does not exist")
	}

	idea, err := u.ideaRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if idea == nil {
		return nil, apperror.NotFound("idea does not exist")
	}
	return idea, nil
}
