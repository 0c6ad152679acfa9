package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/boilerplan/boilerplan-backend/internal/services"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
}

func NewDashboardHandler(dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (dh *DashboardHandler) Summary(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", err)
		return
	}
	summary, err := dh.dashboardService.Summary(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "dashboard_failed", err)
		return
	}
	RespondOK(c, summary)
}
