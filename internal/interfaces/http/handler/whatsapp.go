package handler

import (
	channelapp "github.com/artistai/backend/internal/application/channel"
	"github.com/gin-gonic/gin"
)

// WhatsAppHandler handles the channel connection API endpoints
type WhatsAppHandler struct {
	BaseHandler
	instanceService *channelapp.InstanceService
}

// NewWhatsAppHandler creates a new WhatsAppHandler
func NewWhatsAppHandler(instanceService *channelapp.InstanceService) *WhatsAppHandler {
	return &WhatsAppHandler{instanceService: instanceService}
}

// RegisterRoutes registers the channel routes
func (h *WhatsAppHandler) RegisterRoutes(rg *gin.RouterGroup) {
	whatsapp := rg.Group("/whatsapp")
	whatsapp.POST("/connect", h.Connect)
	whatsapp.GET("/status", h.Status)
	whatsapp.POST("/reconnect", h.Reconnect)
	whatsapp.DELETE("/disconnect", h.Disconnect)
}

// Connect provisions a fresh instance and answers its pairing QR code
func (h *WhatsAppHandler) Connect(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	resp, err := h.instanceService.Connect(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// Status answers the connection state, refreshing it from the provider
// when reachable.
func (h *WhatsAppHandler) Status(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	resp, err := h.instanceService.Status(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Reconnect tears the current instance down and provisions a new one
func (h *WhatsAppHandler) Reconnect(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	resp, err := h.instanceService.Reconnect(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// Disconnect removes the instance on both sides
func (h *WhatsAppHandler) Disconnect(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	resp, err := h.instanceService.Disconnect(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}
