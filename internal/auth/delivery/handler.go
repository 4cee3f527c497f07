package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foysalit/codementorx-idea-pool/internal/auth/dto"
	"github.com/foysalit/codementorx-idea-pool/internal/auth/usecase"
	"github.com/foysalit/codementorx-idea-pool/pkg/apperror"
	"github.com/foysalit/codementorx-idea-pool/pkg/response"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Register creates a new account
// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := response.BindJSON(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	tokens, err := h.authUsecase.Register(&req)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, http.StatusCreated, dto.AuthResponse{
		JWT:          tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}

// Login exchanges credentials for a token pair
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := response.BindJSON(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	tokens, err := h.authUsecase.Login(&req)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, http.StatusOK, dto.AuthResponse{
		JWT:          tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}

// Logout deletes the supplied refresh token. Responds 204 even when the
// token is unknown: the client is logged out either way.
// POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	if err := c.ShouldBindJSON(&req); err == nil && req.RefreshToken != "" {
		if err := h.authUsecase.Logout(req.RefreshToken); err != nil {
			response.APIError(c, err)
			return
		}
	}

	response.APISuccess(c, http.StatusNoContent, nil)
}

// OAuth logs in with a third-party identity, creating the local account on
// first sight
// POST /auth/oauth/:provider
func (h *AuthHandler) OAuth(c *gin.Context) {
	var req dto.OAuthRequest
	if err := response.BindJSON(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	tokens, user, err := h.authUsecase.OAuth(c.Request.Context(), c.Param("provider"), req.AccessToken)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, http.StatusOK, gin.H{
		"token": tokens,
		"user":  user.Transform(),
	})
}

// Refresh consumes a refresh token and issues a new pair.
// POST /auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := response.BindJSON(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	tokens, err := h.authUsecase.Refresh(req.RefreshToken)
	if err != nil {
		response.APIError(c, err)
		return
	}

	// The jwt field carries the newly issued refresh token; existing clients
	// depend on this shape.
	response.APISuccess(c, http.StatusOK, gin.H{"jwt": tokens.RefreshToken})
}

// Me returns the authenticated user's profile
// GET /me
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		response.APIError(c, apperror.Unauthorized("authentication required"))
		return
	}

	response.APISuccess(c, http.StatusOK, user.Transform())
}
