package handler

import (
	agentapp "github.com/artistai/backend/internal/application/agent"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AgentHandler handles the agent configuration API endpoints
type AgentHandler struct {
	BaseHandler
	configService *agentapp.ConfigService
}

// NewAgentHandler creates a new AgentHandler
func NewAgentHandler(configService *agentapp.ConfigService) *AgentHandler {
	return &AgentHandler{configService: configService}
}

// RegisterRoutes registers the agent routes
func (h *AgentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	agent := rg.Group("/agent")
	agent.GET("/config", h.GetConfig)
	agent.PATCH("/config", h.UpdateConfig)
	agent.POST("/deploy", h.Deploy)
	agent.POST("/revert", h.Revert)
	agent.POST("/rollback/:id", h.Rollback)
	agent.GET("/versions", h.ListVersions)
	agent.POST("/test-lab", h.TestLab)
	agent.POST("/prompt-engineer", h.PromptEngineer)
}

// GetConfig returns the agent settings, creating defaults on first
// access.
func (h *AgentHandler) GetConfig(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	config, err := h.configService.Get(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, config)
}

// UpdateConfig applies a partial update to the agent settings
func (h *AgentHandler) UpdateConfig(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	var req agentapp.UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	config, err := h.configService.Update(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, config)
}

// Deploy promotes the laboratory prompt to production
func (h *AgentHandler) Deploy(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	config, err := h.configService.Deploy(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, config)
}

// Revert copies the production prompt back into the laboratory
func (h *AgentHandler) Revert(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	config, err := h.configService.Revert(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, config)
}

// Rollback loads a historical prompt version into the laboratory
func (h *AgentHandler) Rollback(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	versionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid version ID format")
		return
	}

	config, err := h.configService.Rollback(c.Request.Context(), userID, agentapp.RollbackRequest{VersionID: versionID})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, config)
}

// ListVersions lists the deployed prompt history, newest first
func (h *AgentHandler) ListVersions(c *gin.Context) {
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

	versions, err := h.configService.ListVersions(c.Request.Context(), userID, page)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, versions)
}

// TestLab relays a chat message through the test lab automation flow.
// Delivery failures come back in-band in the result payload.
func (h *AgentHandler) TestLab(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	var req agentapp.TestLabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.configService.TestLab(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// PromptEngineer relays a rewrite instruction through the prompt
// engineering automation flow.
func (h *AgentHandler) PromptEngineer(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	var req agentapp.PromptEngineerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.configService.PromptEngineer(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}
