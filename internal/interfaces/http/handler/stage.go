package handler

import (
	crmapp "github.com/artistai/backend/internal/application/crm"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StageHandler handles pipeline stage API endpoints
type StageHandler struct {
	BaseHandler
	stageService *crmapp.StageService
}

// NewStageHandler creates a new StageHandler
func NewStageHandler(stageService *crmapp.StageService) *StageHandler {
	return &StageHandler{stageService: stageService}
}

// RegisterRoutes registers the pipeline stage routes
func (h *StageHandler) RegisterRoutes(rg *gin.RouterGroup) {
	stages := rg.Group("/stages")
	stages.POST("", h.Create)
	stages.GET("", h.List)
	stages.POST("/reorder", h.Reorder)
	stages.GET("/:id", h.GetByID)
	stages.PATCH("/:id", h.Update)
	stages.DELETE("/:id", h.Delete)
}

// Create adds a pipeline stage
func (h *StageHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	var req crmapp.CreateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	stage, err := h.stageService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, stage)
}

// List returns the funnel in display order
func (h *StageHandler) List(c *gin.Context) {
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

	stages, err := h.stageService.List(c.Request.Context(), userID, page)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, stages)
}

// GetByID returns a single stage with its contractor count
func (h *StageHandler) GetByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	stageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid stage ID format")
		return
	}

	stage, err := h.stageService.GetByID(c.Request.Context(), userID, stageID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, stage)
}

// Update renames or repositions a stage
func (h *StageHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	stageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid stage ID format")
		return
	}

	var req crmapp.UpdateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	stage, err := h.stageService.Update(c.Request.Context(), userID, stageID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, stage)
}

// Reorder applies a new ordering to several stages at once
func (h *StageHandler) Reorder(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	var req crmapp.ReorderStagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	stages, err := h.stageService.Reorder(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, stages)
}

// Delete removes a stage, detaching its contractors
func (h *StageHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	stageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid stage ID format")
		return
	}

	if err := h.stageService.Delete(c.Request.Context(), userID, stageID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
