package handler

import (
	messagingapp "github.com/artistai/backend/internal/application/messaging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ConversationHandler handles messaging API endpoints
type ConversationHandler struct {
	BaseHandler
	conversationService *messagingapp.ConversationService
}

// NewConversationHandler creates a new ConversationHandler
func NewConversationHandler(conversationService *messagingapp.ConversationService) *ConversationHandler {
	return &ConversationHandler{conversationService: conversationService}
}

// RegisterRoutes registers the messaging routes
func (h *ConversationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	conversations := rg.Group("/conversations")
	conversations.GET("", h.List)
	conversations.GET("/:id/messages", h.ListMessages)
	conversations.POST("/:id/messages", h.CreateMessage)
	conversations.PATCH("/:id", h.UpdateStatus)
}

// List returns the tenant's conversations, most recent activity first
func (h *ConversationHandler) List(c *gin.Context) {
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

	conversations, err := h.conversationService.List(c.Request.Context(), userID, page)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, conversations)
}

// ListMessages returns a conversation's message history
func (h *ConversationHandler) ListMessages(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid conversation ID format")
		return
	}

	page, err := getPage(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	messages, err := h.conversationService.ListMessages(c.Request.Context(), userID, conversationID, page)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, messages)
}

// CreateMessage appends a manual message to a conversation
func (h *ConversationHandler) CreateMessage(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid conversation ID format")
		return
	}

	var req messagingapp.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	message, err := h.conversationService.CreateMessage(c.Request.Context(), userID, conversationID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, message)
}

// UpdateStatus changes a conversation's triage status
func (h *ConversationHandler) UpdateStatus(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid conversation ID format")
		return
	}

	var req messagingapp.UpdateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	conversation, err := h.conversationService.UpdateStatus(c.Request.Context(), userID, conversationID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, conversation)
}
