package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/foysalit/codementorx-idea-pool/internal/auth/domain"
	"github.com/foysalit/codementorx-idea-pool/pkg/apperror"
)

// userRepository implements UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of userRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) Create(user *domain.User) error {
	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperror.Conflict("email already registered")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *userRepository) FindByEmail(email string) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperror.Internal(err)
	}
	return &user, nil
}

func (r *userRepository) FindByID(id string) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperror.Internal(err)
	}
	return &user, nil
}

func (r *userRepository) Update(user *domain.User) error {
	user.UpdatedAt = time.Now()
	if err := r.db.Save(user).Error; err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *userRepository) SaveRefreshToken(token *domain.RefreshToken) error {
	if err := r.db.Create(token).Error; err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// ConsumeRefreshToken deletes the matching token and returns it. The
// DELETE ... RETURNING runs as one statement, so of two racing consumers
// only one sees an affected row; the other gets nil.
func (r *userRepository) ConsumeRefreshToken(token string) (*domain.RefreshToken, error) {
	var refreshToken domain.RefreshToken
	tx := r.db.Clauses(clause.Returning{}).Where("token = ?", token).Delete(&refreshToken)
	if tx.Error != nil {
		return nil, apperror.Internal(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return &refreshToken, nil
}

func (r *userRepository) DeleteRefreshToken(token string) error {
	if err := r.db.Where("token = ?", token).Delete(&domain.RefreshToken{}).Error; err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
