package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookmanager-backend/pkg/jwt"
)

func setupAuthRouter(manager *jwt.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", AuthMiddleware(manager), func(c *gin.Context) {
		userID := c.GetInt64(ContextUserID)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	manager := jwt.NewManager("test-secret-key-at-least-32-chars", 15*time.Minute, 168*time.Hour)
	router := setupAuthRouter(manager)

	accessToken, err := manager.GenerateAccessToken(42)
	require.NoError(t, err)
	refreshToken, err := manager.GenerateRefreshToken(42)
	require.NoError(t, err)

	expired := jwt.NewManager("test-secret-key-at-least-32-chars", -time.Minute, -time.Minute)
	expiredToken, err := expired.GenerateAccessToken(42)
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"valid access token", "Bearer " + accessToken, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + accessToken, http.StatusUnauthorized},
		{"no scheme", accessToken, http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
		{"refresh token on protected route", "Bearer " + refreshToken, http.StatusUnauthorized},
		{"expired token", "Bearer " + expiredToken, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestAuthMiddleware_SetsUserID(t *testing.T) {
	manager := jwt.NewManager("test-secret-key-at-least-32-chars", 15*time.Minute, 168*time.Hour)
	router := setupAuthRouter(manager)

	token, err := manager.GenerateAccessToken(42)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id": 42}`, w.Body.String())
}
