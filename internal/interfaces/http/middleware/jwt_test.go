package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/artistai/backend/internal/infrastructure/auth"
	"github.com/artistai/backend/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                "segredo-de-teste-com-32-caracteres!",
		AccessTokenExpiration: time.Hour,
		Issuer:                "artistai-backend",
	})
}

func newJWTRouter(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTAuth(jwtService))
	r.GET("/api/v1/artists", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetJWTUserID(c)})
	})
	r.GET("/api/v1/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.POST("/api/v1/webhooks/messages", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestJWTAuth(t *testing.T) {
	jwtService := newJWTService()

	t.Run("valid token exposes the user id", func(t *testing.T) {
		r := newJWTRouter(jwtService)
		userID := uuid.New()
		token, err := jwtService.GenerateToken(userID, "agencia@example.com")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/artists", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), userID.String())
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		r := newJWTRouter(jwtService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/artists", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		r := newJWTRouter(jwtService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/artists", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+"nao-e-um-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
	})

	t.Run("health endpoint skips authentication", func(t *testing.T) {
		r := newJWTRouter(jwtService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("webhook prefix skips authentication", func(t *testing.T) {
		r := newJWTRouter(jwtService)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/messages", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
