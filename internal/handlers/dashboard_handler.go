package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hearth/internal/services"
)

// DashboardHandler handles dashboard requests.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
	householdService services.HouseholdServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer, householdService services.HouseholdServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, householdService: householdService}
}

// GetDashboard returns every derived dashboard view for the active household.
// @Summary     Get dashboard
// @Description Get the monthly overview, category spending, trend, and quick stats for the active household
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       household_id query string false "Explicitly requested household"
// @Param       month        query string false "Month key (YYYY-MM, default current month)"
// @Success     200 {object} services.DashboardView "Dashboard views"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No household"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	resolved, err := resolveHousehold(c, h.householdService)
	if err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.dashboardService.GetDashboard(resolved.Member.UserID, resolved.Household.ID, monthOrCurrent(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
