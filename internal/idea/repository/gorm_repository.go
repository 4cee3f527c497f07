package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/foysalit/codementorx-idea-pool/internal/idea/domain"
	"github.com/foysalit/codementorx-idea-pool/pkg/apperror"
)

// gormIdeaRepository implements IdeaRepository using GORM
type gormIdeaRepository struct {
	db *gorm.DB
}

// NewGormIdeaRepository creates a new GORM-based IdeaRepository
func NewGormIdeaRepository(db *gorm.DB) IdeaRepository {
	return &gormIdeaRepository{db: db}
}

func (r *gormIdeaRepository) Create(idea *domain.Idea) error {
	if idea.ID == "" {
		idea.ID = uuid.New().String()
	}
	idea.CreatedAt = time.Now()
	idea.UpdatedAt = time.Now()
	if err := r.db.Create(idea).Error; err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *gormIdeaRepository) FindByID(id string) (*domain.Idea, error) {
	var idea domain.Idea
	err := r.db.Where("id = ?", id).First(&idea).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperror.Internal(err)
	}
	return &idea, nil
}

func (r *gormIdeaRepository) Update(idea *domain.Idea) error {
	idea.UpdatedAt = time.Now()
	tx := r.db.Model(&domain.Idea{}).Where("id = ?", idea.ID).Updates(map[string]interface{}{
		"content":       idea.Content,
		"impact":        idea.Impact,
		"ease":          idea.Ease,
		"confidence":    idea.Confidence,
		"average_score": idea.AverageScore,
		"updated_at":    idea.UpdatedAt,
	})
	if tx.Error != nil {
		return apperror.Internal(tx.Error)
	}
	// The record vanished between load and save.
	if tx.RowsAffected == 0 {
		return apperror.NotFound("idea does not exist")
	}
	return nil
}

func (r *gormIdeaRepository) List(page, pageSize int) ([]*domain.Idea, error) {
	var ideas []*domain.Idea
	err := r.db.Order("created_at DESC").
		Offset(pageSize * (page - 1)).
		Limit(pageSize).
		Find(&ideas).Error
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return ideas, nil
}

func (r *gormIdeaRepository) Delete(id string) error {
	if err := r.db.Delete(&domain.Idea{}, "id = ?", id).Error; err != nil {
		return apperror.Internal(err)
	}
	return nil
}
