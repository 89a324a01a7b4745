package handler

import (
	rosterapp "github.com/artistai/backend/internal/application/roster"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ArtistHandler handles roster API endpoints
type ArtistHandler struct {
	BaseHandler
	artistService *rosterapp.ArtistService
}

// NewArtistHandler creates a new ArtistHandler
func NewArtistHandler(artistService *rosterapp.ArtistService) *ArtistHandler {
	return &ArtistHandler{artistService: artistService}
}

// RegisterRoutes registers the roster routes
func (h *ArtistHandler) RegisterRoutes(rg *gin.RouterGroup) {
	artists := rg.Group("/artists")
	artists.POST("", h.Create)
	artists.GET("", h.List)
	artists.GET("/:id", h.GetByID)
	artists.PATCH("/:id", h.Update)
	artists.DELETE("/:id", h.Delete)
}

// Create adds an artist to the roster
func (h *ArtistHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	var req rosterapp.CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	artist, err := h.artistService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, artist)
}

// List returns the tenant's roster
func (h *ArtistHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	page, err := getPage(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	artists, err := h.artistService.List(c.Request.Context(), userID, page)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, artists)
}

// GetByID returns a single artist
func (h *ArtistHandler) GetByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	artistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid artist ID format")
		return
	}

	artist, err := h.artistService.GetByID(c.Request.Context(), userID, artistID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, artist)
}

// Update applies a partial update to an artist
func (h *ArtistHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	artistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid artist ID format")
		return
	}

	var req rosterapp.UpdateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	artist, err := h.artistService.Update(c.Request.Context(), userID, artistID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, artist)
}

// Delete removes an artist from the roster
func (h *ArtistHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	artistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid artist ID format")
		return
	}

	if err := h.artistService.Delete(c.Request.Context(), userID, artistID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
