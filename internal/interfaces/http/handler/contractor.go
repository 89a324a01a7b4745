package handler

import (
	crmapp "github.com/artistai/backend/internal/application/crm"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContractorHandler handles contractor API endpoints
type ContractorHandler struct {
	BaseHandler
	contractorService *crmapp.ContractorService
	noteService       *crmapp.NoteService
}

// NewContractorHandler creates a new ContractorHandler
func NewContractorHandler(contractorService *crmapp.ContractorService, noteService *crmapp.NoteService) *ContractorHandler {
	return &ContractorHandler{
		contractorService: contractorService,
		noteService:       noteService,
	}
}

// RegisterRoutes registers the contractor routes
func (h *ContractorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	contractors := rg.Group("/contractors")
	contractors.POST("", h.Create)
	contractors.GET("", h.List)
	contractors.GET("/:id", h.GetByID)
	contractors.PATCH("/:id", h.Update)
	contractors.PUT("/:id/stage", h.AssignStage)
	contractors.DELETE("/:id", h.Delete)
	contractors.GET("/:id/notes", h.ListNotes)
}

// Create registers a new contractor
func (h *ContractorHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	var req crmapp.CreateContractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	contractor, err := h.contractorService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, contractor)
}

// List returns the tenant's contractors
func (h *ContractorHandler) List(c *gin.Context) {
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

	contractors, err := h.contractorService.List(c.Request.Context(), userID, page)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, contractors)
}

// GetByID returns a single contractor
func (h *ContractorHandler) GetByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	contractorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contractor ID format")
		return
	}

	contractor, err := h.contractorService.GetByID(c.Request.Context(), userID, contractorID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, contractor)
}

// Update applies a partial update to a contractor
func (h *ContractorHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	contractorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contractor ID format")
		return
	}

	var req crmapp.UpdateContractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	contractor, err := h.contractorService.Update(c.Request.Context(), userID, contractorID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, contractor)
}

// AssignStage moves a contractor into a pipeline stage, or out of the
// pipeline when stage_id is null.
func (h *ContractorHandler) AssignStage(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	contractorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contractor ID format")
		return
	}

	var req crmapp.AssignStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	contractor, err := h.contractorService.AssignStage(c.Request.Context(), userID, contractorID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, contractor)
}

// Delete removes a contractor
func (h *ContractorHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	contractorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contractor ID format")
		return
	}

	if err := h.contractorService.Delete(c.Request.Context(), userID, contractorID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// ListNotes returns the notes attached to a contractor
func (h *ContractorHandler) ListNotes(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	contractorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contractor ID format")
		return
	}

	page, err := getPage(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	notes, err := h.noteService.ListByContractor(c.Request.Context(), userID, contractorID, page)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, notes)
}
