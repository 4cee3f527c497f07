package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/foysalit/codementorx-idea-pool/internal/auth/domain"
	"github.com/foysalit/codementorx-idea-pool/internal/auth/dto"
	"github.com/foysalit/codementorx-idea-pool/internal/auth/repository"
	"github.com/foysalit/codementorx-idea-pool/pkg/apperror"
	"github.com/foysalit/codementorx-idea-pool/pkg/config"
	"github.com/foysalit/codementorx-idea-pool/pkg/oauth"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	google   GoogleVerifier
	facebook FacebookVerifier
	config   *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, google GoogleVerifier, facebook FacebookVerifier, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		google:   google,
		facebook: facebook,
		config:   cfg,
	}
}

func (u *authUsecase) Register(req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return nil, apperror.Conflict("email already registered")
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		Email:    req.Email,
		Password: hashedPassword,
		Name:     req.Name,
		Provider: "email",
		Role:     domain.RoleUser,
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	return u.generateTokens(user)
}

func (u *authUsecase) Login(req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, apperror.Unauthorized("invalid email or password")
	}

	if user.Provider != "email" {
		return nil, apperror.Unauthorized("please log in through " + user.Provider)
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, apperror.Unauthorized("invalid email or password")
	}

	return u.generateTokens(user)
}

// Logout removes the refresh token if it exists. An unknown token is not an
// error: the client ends up logged out either way.
func (u *authUsecase) Logout(refreshToken string) error {
	return u.userRepo.DeleteRefreshToken(refreshToken)
}

func (u *authUsecase) OAuth(ctx context.Context, provider, accessToken string) (*dto.TokenResponse, *domain.User, error) {
	identity, err := u.resolveIdentity(ctx, provider, accessToken)
	if err != nil {
		return nil, nil, err
	}

	user, err := u.userRepo.FindByEmail(identity.Email)
	if err != nil {
		return nil, nil, err
	}

	if user == nil {
		user = &domain.User{
			Email:     identity.Email,
			Name:      identity.Name,
			AvatarURL: identity.AvatarURL,
			Provider:  identity.Provider,
			Role:      domain.RoleUser,
		}
		if err := u.userRepo.Create(user); err != nil {
			return nil, nil, err
		}
	} else {
		user.Name = identity.Name
		user.AvatarURL = identity.AvatarURL
		if err := u.userRepo.Update(user); err != nil {
			return nil, nil, err
		}
	}

	tokens, err := u.generateTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return tokens, user, nil
}

func (u *authUsecase) resolveIdentity(ctx context.Context, provider, accessToken string) (*oauth.Identity, error) {
	switch provider {
	case "google":
		return u.google.Verify(ctx, accessToken)
	case "facebook":
		return u.facebook.Verify(ctx, accessToken)
	default:
		return nil, apperror.NotFound("unknown oauth provider")
	}
}

// Refresh consumes the old token and issues a fresh pair. Consumption is an
// atomic find-and-delete, so the same token can never be refreshed twice.
func (u *authUsecase) Refresh(refreshToken string) (*dto.TokenResponse, error) {
	stored, err := u.userRepo.ConsumeRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	if stored == nil || stored.ExpiresAt.Before(time.Now()) {
		return nil, apperror.Unauthorized("invalid refresh token")
	}

	user, err := u.userRepo.FindByID(stored.UserID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, apperror.Unauthorized("invalid refresh token")
	}

	return u.generateTokens(user)
}

func (u *authUsecase) generateTokens(user *domain.User) (*dto.TokenResponse, error) {
	accessToken, err := u.generateAccessToken(user)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	refreshToken, err := generateRefreshTokenString()
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if err := u.userRepo.SaveRefreshToken(&domain.RefreshToken{
		Token:     refreshToken,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(u.config.RefreshExpiration),
	}); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		TokenType:    "Bearer",
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    time.Now().Add(u.config.JWTExpiration),
	}, nil
}

func (u *authUsecase) generateAccessToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(u.config.JWTExpiration).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

// generateRefreshTokenString produces the opaque token string. 40 random
// bytes hex-encoded, nothing derivable from it.
func generateRefreshTokenString() (string, error) {
	buf := make([]byte, 40)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func (u *authUsecase) ValidateToken(tokenString string) (*domain.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, apperror.Unauthorized("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperror.Unauthorized("invalid token claims")
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, apperror.Unauthorized("invalid token claims")
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, apperror.Unauthorized("user not found")
	}

	return user, nil
}
