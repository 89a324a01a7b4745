package handler

import (
	bookingapp "github.com/artistai/backend/internal/application/booking"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EventHandler handles booking API endpoints
type EventHandler struct {
	BaseHandler
	eventService *bookingapp.EventService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventService *bookingapp.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// RegisterRoutes registers the booking routes
func (h *EventHandler) RegisterRoutes(rg *gin.RouterGroup) {
	events := rg.Group("/events")
	events.POST("", h.Create)
	events.GET("", h.List)
	events.GET("/:id", h.GetByID)
	events.PATCH("/:id", h.Update)
	events.DELETE("/:id", h.Delete)
}

// Create books an event
func (h *EventHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	var req bookingapp.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, event)
}

// List returns the agenda, filterable by artist, status and date window
func (h *EventHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	var filter bookingapp.EventListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := getPage(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	events, err := h.eventService.List(c.Request.Context(), userID, filter, page)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, events)
}

// GetByID returns a single event with its artist and contractor inlined
func (h *EventHandler) GetByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid event ID format")
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), userID, eventID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, event)
}

// Update applies a partial update to an event
func (h *EventHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid event ID format")
		return
	}

	var req bookingapp.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), userID, eventID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, event)
}

// Delete cancels and removes an event
func (h *EventHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid event ID format")
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), userID, eventID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
