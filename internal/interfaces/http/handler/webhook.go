package handler

import (
	messagingapp "github.com/artistai/backend/internal/application/messaging"
	"github.com/gin-gonic/gin"
)

// WebhookHandler receives inbound payloads from automation flows.
// These routes authenticate with the shared ingress API key instead of
// a tenant JWT.
type WebhookHandler struct {
	BaseHandler
	ingressService *messagingapp.IngressService
	auth           gin.HandlerFunc
}

// NewWebhookHandler creates a new WebhookHandler. The auth middleware
// guards the webhook group in place of the JWT middleware.
func NewWebhookHandler(ingressService *messagingapp.IngressService, auth gin.HandlerFunc) *WebhookHandler {
	return &WebhookHandler{ingressService: ingressService, auth: auth}
}

// RegisterRoutes registers the webhook routes
func (h *WebhookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	webhooks := rg.Group("/webhooks")
	if h.auth != nil {
		webhooks.Use(h.auth)
	}
	webhooks.POST("/messages", h.IngestMessage)
}

// IngestMessage stores an inbound channel message, creating the
// contractor and conversation on first contact. Redeliveries of the
// same provider message id answer the stored message.
func (h *WebhookHandler) IngestMessage(c *gin.Context) {
	var req messagingapp.IngressMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	message, err := h.ingressService.Ingest(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, message)
}
