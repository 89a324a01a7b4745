package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	rosterapp "github.com/artistai/backend/internal/application/roster"
	"github.com/artistai/backend/internal/domain/roster"
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/artistai/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockArtistRepository is a mock implementation of roster.ArtistRepository
type MockArtistRepository struct {
	mock.Mock
}

func (m *MockArtistRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*roster.Artist, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*roster.Artist), args.Error(1)
}

func (m *MockArtistRepository) FindAll(ctx context.Context, userID uuid.UUID, page shared.Page) ([]roster.Artist, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]roster.Artist), args.Error(1)
}

func (m *MockArtistRepository) CountActive(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockArtistRepository) Save(ctx context.Context, artist *roster.Artist) error {
	args := m.Called(ctx, artist)
	return args.Error(0)
}

func (m *MockArtistRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// fakeIdentity injects a user id the way the JWT middleware does
func fakeIdentity(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.JWTUserIDKey, userID.String())
		c.Next()
	}
}

func newArtistRouter(userID uuid.UUID, repo *MockArtistRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(fakeIdentity(userID))
	handler := NewArtistHandler(rosterapp.NewArtistService(repo))
	handler.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestArtistHandler_Create(t *testing.T) {
	userID := uuid.New()

	t.Run("creates an artist", func(t *testing.T) {
		repo := new(MockArtistRepository)
		repo.On("Save", mock.Anything, mock.MatchedBy(func(a *roster.Artist) bool {
			return a.Name == "Luan Santana" && a.UserID == userID
		})).Return(nil)
		r := newArtistRouter(userID, repo)

		body := `{"name": "Luan Santana", "base_city": "Goiânia"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/artists", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var resp struct {
			Success bool `json:"success"`
			Data    struct {
				Name     string `json:"name"`
				BaseCity string `json:"base_city"`
				Status   string `json:"status"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "Luan Santana", resp.Data.Name)
		assert.Equal(t, "Goiânia", resp.Data.BaseCity)
		assert.Equal(t, "active", resp.Data.Status)
	})

	t.Run("missing name fails validation", func(t *testing.T) {
		repo := new(MockArtistRepository)
		r := newArtistRouter(userID, repo)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/artists", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestArtistHandler_GetByID(t *testing.T) {
	userID := uuid.New()

	t.Run("unknown artist answers 404", func(t *testing.T) {
		repo := new(MockArtistRepository)
		artistID := uuid.New()
		repo.On("FindByID", mock.Anything, userID, artistID).Return(nil, shared.ErrNotFound)
		r := newArtistRouter(userID, repo)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/artists/"+artistID.String(), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_FOUND")
	})

	t.Run("malformed id answers 400", func(t *testing.T) {
		repo := new(MockArtistRepository)
		r := newArtistRouter(userID, repo)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/artists/nao-e-uuid", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestArtistHandler_Delete(t *testing.T) {
	userID := uuid.New()

	repo := new(MockArtistRepository)
	artistID := uuid.New()
	repo.On("Delete", mock.Anything, userID, artistID).Return(nil)
	r := newArtistRouter(userID, repo)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/artists/"+artistID.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	repo.AssertExpectations(t)
}
