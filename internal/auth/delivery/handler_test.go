package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foysalit/codementorx-idea-pool/internal/auth/domain"
	"github.com/foysalit/codementorx-idea-pool/internal/auth/dto"
	"github.com/foysalit/codementorx-idea-pool/pkg/apperror"
)

// stubAuthUsecase scripts responses for handler-level tests.
type stubAuthUsecase struct {
	tokens      *dto.TokenResponse
	user        *domain.User
	err         error
	loggedOut   []string
	validateErr error
}

func (s *stubAuthUsecase) Register(*dto.RegisterRequest) (*dto.TokenResponse, error) {
	return s.tokens, s.err
}

func (s *stubAuthUsecase) Login(*dto.LoginRequest) (*dto.TokenResponse, error) {
	return s.tokens, s.err
}

func (s *stubAuthUsecase) Logout(refreshToken string) error {
	s.loggedOut = append(s.loggedOut, refreshToken)
	return s.err
}

func (s *stubAuthUsecase) OAuth(context.Context, string, string) (*dto.TokenResponse, *domain.User, error) {
	return s.tokens, s.user, s.err
}

func (s *stubAuthUsecase) Refresh(string) (*dto.TokenResponse, error) {
	return s.tokens, s.err
}

func (s *stubAuthUsecase) ValidateToken(string) (*domain.User, error) {
	if s.validateErr != nil {
		return nil, s.validateErr
	}
	return s.user, nil
}

func testTokens() *dto.TokenResponse {
	return &dto.TokenResponse{
		TokenType:    "Bearer",
		AccessToken:  "access-jwt",
		RefreshToken: "refresh-opaque",
		ExpiresIn:    time.Now().Add(15 * time.Minute),
	}
}

func newAuthRouter(stub *stubAuthUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(stub)

	r := gin.New()
	auth := r.Group("/auth")
	{
		auth.POST("/register", handler.Register)
		auth.POST("/login", handler.Login)
		auth.POST("/logout", handler.Logout)
		auth.POST("/refresh", handler.Refresh)
		auth.POST("/oauth/:provider", handler.OAuth)
	}
	r.GET("/me", AuthMiddleware(stub), handler.Me)
	return r
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterReturnsJWTAndRefreshToken(t *testing.T) {
	r := newAuthRouter(&stubAuthUsecase{tokens: testTokens()})

	w := postJSON(r, "/auth/register", gin.H{
		"email": "ada@example.com", "password": "hunter22", "name": "Ada",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "access-jwt", body["jwt"])
	assert.Equal(t, "refresh-opaque", body["refresh_token"])
}

func TestRegisterValidatesBody(t *testing.T) {
	r := newAuthRouter(&stubAuthUsecase{tokens: testTokens()})

	w := postJSON(r, "/auth/register", gin.H{
		"email": "not-an-email", "password": "short", "name": "",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "validation_error", body["code"])
	fields, ok := body["errors"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "name")
}

func TestLoginUnauthorizedBody(t *testing.T) {
	r := newAuthRouter(&stubAuthUsecase{err: apperror.Unauthorized("invalid email or password")})

	w := postJSON(r, "/auth/login", gin.H{"email": "ada@example.com", "password": "wrong"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "unauthorized", body["code"])
	assert.Equal(t, "invalid email or password", body["message"])
}

func TestLogoutUnknownTokenStillNoContent(t *testing.T) {
	stub := &stubAuthUsecase{}
	r := newAuthRouter(stub)

	w := postJSON(r, "/auth/logout", gin.H{"refresh_token": "never-issued"})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []string{"never-issued"}, stub.loggedOut)
}

func TestLogoutWithoutTokenStillNoContent(t *testing.T) {
	stub := &stubAuthUsecase{}
	r := newAuthRouter(stub)

	w := postJSON(r, "/auth/logout", gin.H{})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, stub.loggedOut)
}

// The jwt key of the refresh response carries the newly issued refresh
// token. Existing clients depend on this shape.
func TestRefreshReturnsNewRefreshTokenUnderJWTKey(t *testing.T) {
	r := newAuthRouter(&stubAuthUsecase{tokens: testTokens()})

	w := postJSON(r, "/auth/refresh", gin.H{"refresh_token": "old-token"})
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "refresh-opaque", body["jwt"])
	assert.NotContains(t, body, "refresh_token")
}

func TestRefreshRequiresToken(t *testing.T) {
	r := newAuthRouter(&stubAuthUsecase{tokens: testTokens()})

	w := postJSON(r, "/auth/refresh", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOAuthReturnsTokenObjectAndUser(t *testing.T) {
	user := &domain.User{ID: "u1", Email: "g@example.com", Name: "Grace", Role: domain.RoleUser}
	r := newAuthRouter(&stubAuthUsecase{tokens: testTokens(), user: user})

	w := postJSON(r, "/auth/oauth/google", gin.H{"access_token": "provider-token"})
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	token, ok := body["token"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Bearer", token["tokenType"])
	assert.Equal(t, "access-jwt", token["accessToken"])
	assert.Equal(t, "refresh-opaque", token["refreshToken"])
	assert.NotEmpty(t, token["expiresIn"])

	profile, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "g@example.com", profile["email"])
	assert.NotContains(t, profile, "password")
}

func TestMeRequiresBearerToken(t *testing.T) {
	r := newAuthRouter(&stubAuthUsecase{user: &domain.User{ID: "u1"}})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Basic abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeReturnsUserProjection(t *testing.T) {
	user := &domain.User{ID: "u1", Email: "ada@example.com", Name: "Ada", Role: domain.RoleAdmin}
	r := newAuthRouter(&stubAuthUsecase{user: user})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "u1", body["id"])
	assert.Equal(t, "admin", body["role"])
	assert.NotContains(t, body, "password")
}

func TestMeRejectsInvalidToken(t *testing.T) {
	r := newAuthRouter(&stubAuthUsecase{validateErr: apperror.Unauthorized("invalid or expired token")})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer expired")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
