package handler

import (
	crmapp "github.com/artistai/backend/internal/application/crm"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NoteHandler handles contractor note API endpoints
type NoteHandler struct {
	BaseHandler
	noteService *crmapp.NoteService
}

// NewNoteHandler creates a new NoteHandler
func NewNoteHandler(noteService *crmapp.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

// RegisterRoutes registers the note routes
func (h *NoteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	notes := rg.Group("/notes")
	notes.POST("", h.Create)
	notes.PATCH("/:id", h.Update)
	notes.DELETE("/:id", h.Delete)
}

// Create attaches a note to a contractor
func (h *NoteHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	var req crmapp.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	note, err := h.noteService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, note)
}

// Update replaces a note's content
func (h *NoteHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid note ID format")
		return
	}

	var req crmapp.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	note, err := h.noteService.Update(c.Request.Context(), userID, noteID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, note)
}

// Delete removes a note
func (h *NoteHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid note ID format")
		return
	}

	if err := h.noteService.Delete(c.Request.Context(), userID, noteID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
