package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mealbridge/internal/errors"
	"mealbridge/internal/service"
)

// ReportHandler handles the donor insight report.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Insight godoc
// @Summary Ordered quantity per listing for the caller's catalog
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} repository.ListingTotal
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /insight [get]
func (h *ReportHandler) Insight(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	totals, err := h.reportService.OrderedTotals(c.Request().Context(), claims.AccountID, claims.Role)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, totals)
}
