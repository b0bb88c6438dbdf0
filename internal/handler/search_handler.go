package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mealbridge/internal/errors"
	"mealbridge/internal/service"
)

// SearchHandler handles directory search.
type SearchHandler struct {
	searchService service.SearchService
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(searchService service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// SearchRequest represents a directory search submission.
type SearchRequest struct {
	Tag string `json:"tag"`
}

// Search godoc
// @Summary Search donors by location or business name
// @Tags search
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SearchRequest true "Search keyword"
// @Success 200 {object} service.SearchResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /search [post]
func (h *SearchHandler) Search(c echo.Context) error {
	if _, err := currentClaims(c); err != nil {
		return err
	}

	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result, err := h.searchService.Search(c.Request().Context(), req.Tag)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, result)
}
