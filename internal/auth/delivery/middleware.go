package delivery

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/foysalit/codementorx-idea-pool/internal/auth/domain"
	"github.com/foysalit/codementorx-idea-pool/internal/auth/usecase"
	"github.com/foysalit/codementorx-idea-pool/pkg/apperror"
	"github.com/foysalit/codementorx-idea-pool/pkg/response"
)

const contextUserKey = "authUser"

// AuthMiddleware validates the bearer token and attaches the authenticated
// user to the request context.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.APIError(c, apperror.Unauthorized("authorization header required"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.APIError(c, apperror.Unauthorized("invalid authorization header format"))
			return
		}

		user, err := authUsecase.ValidateToken(parts[1])
		if err != nil {
			response.APIError(c, err)
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// RequireAdmin rejects authenticated users without the admin role. Must run
// after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.IsAdmin() {
			response.APIError(c, apperror.Forbidden("admin access required"))
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user attached by AuthMiddleware.
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	value, exists := c.Get(contextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*domain.User)
	return user, ok
}
