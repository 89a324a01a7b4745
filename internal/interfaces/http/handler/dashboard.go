package handler

import (
	dashboardapp "github.com/artistai/backend/internal/application/dashboard"
	"github.com/gin-gonic/gin"
)

// DashboardHandler handles the dashboard aggregate endpoints
type DashboardHandler struct {
	BaseHandler
	dashboardService *dashboardapp.Service
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *dashboardapp.Service) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// RegisterRoutes registers the dashboard routes
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	dashboard := rg.Group("/dashboard")
	dashboard.GET("", h.Main)
	dashboard.GET("/kpis", h.KPIs)
	dashboard.GET("/pipeline-summary", h.PipelineSummary)
	dashboard.GET("/financial-summary", h.FinancialSummary)
	dashboard.GET("/recent-activities", h.RecentActivities)
	dashboard.GET("/upcoming-events", h.UpcomingEvents)
	dashboard.GET("/conversations-summary", h.ConversationsSummary)
}

// Main assembles all dashboard sections in one payload
func (h *DashboardHandler) Main(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	dashboard, err := h.dashboardService.Main(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, dashboard)
}

// KPIs returns the headline numbers
func (h *DashboardHandler) KPIs(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	kpis, err := h.dashboardService.KPIs(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, kpis)
}

// PipelineSummary returns the funnel with per-stage contractor counts
func (h *DashboardHandler) PipelineSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	summary, err := h.dashboardService.PipelineSummary(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, summary)
}

// FinancialSummary returns the current month's ledger digest
func (h *DashboardHandler) FinancialSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	summary, err := h.dashboardService.FinancialSummary(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, summary)
}

// RecentActivities returns the last week's activity feed
func (h *DashboardHandler) RecentActivities(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	activities, err := h.dashboardService.RecentActivities(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, activities)
}

// UpcomingEvents returns the next confirmed and pending bookings
func (h *DashboardHandler) UpcomingEvents(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	events, err := h.dashboardService.UpcomingEvents(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, events)
}

// ConversationsSummary returns the open-thread counters
func (h *DashboardHandler) ConversationsSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Invalid user identity")
		return
	}

	summary, err := h.dashboardService.ConversationsSummary(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, summary)
}
