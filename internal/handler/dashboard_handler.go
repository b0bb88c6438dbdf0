package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mealbridge/internal/errors"
	"mealbridge/internal/service"
)

// DashboardHandler handles the role-shaped dashboard endpoint.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Dashboard godoc
// @Summary Role-shaped dashboard for the authenticated account
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.DashboardView
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	view, err := h.dashboardService.Render(c.Request().Context(), claims.AccountID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, view)
}
