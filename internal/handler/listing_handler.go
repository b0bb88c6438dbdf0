package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"mealbridge/internal/errors"
	"mealbridge/internal/service"
)

// ListingHandler handles catalog endpoints.
type ListingHandler struct {
	catalogService service.CatalogService
}

// NewListingHandler creates a new listing handler.
func NewListingHandler(catalogService service.CatalogService) *ListingHandler {
	return &ListingHandler{catalogService: catalogService}
}

// ListingRequest represents a create or update submission. Description may
// be left out and is stored empty.
type ListingRequest struct {
	Name        string `json:"name" validate:"required,max=64"`
	Description string `json:"description" validate:"max=255"`
	Quantity    int    `json:"quantity" validate:"gte=0"`
}

// MessageResponse wraps a flash-style confirmation message.
type MessageResponse struct {
	Message string      `json:"message"`
	Listing interface{} `json:"listing,omitempty"`
}

// Create godoc
// @Summary Add a listing to the caller's catalog
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ListingRequest true "Listing data"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /listings [post]
func (h *ListingHandler) Create(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req ListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	listing, err := h.catalogService.AddListing(c.Request().Context(), claims.AccountID, claims.Role, req.Name, req.Description, req.Quantity)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, MessageResponse{
		Message: "item added",
		Listing: listing,
	})
}

// Update godoc
// @Summary Update one of the caller's listings
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Listing ID"
// @Param request body ListingRequest true "Listing data"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /listings/{id} [put]
func (h *ListingHandler) Update(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid listing ID",
			Code:  "INVALID_ID",
		})
	}

	var req ListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	listing, err := h.catalogService.UpdateListing(c.Request().Context(), claims.AccountID, id, req.Name, req.Description, req.Quantity)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Message: "item updated",
		Listing: listing,
	})
}

// Delete godoc
// @Summary Delete one of the caller's listings
// @Tags listings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Listing ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /listings/{id} [delete]
func (h *ListingHandler) Delete(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid listing ID",
			Code:  "INVALID_ID",
		})
	}

	if err := h.catalogService.DeleteListing(c.Request().Context(), claims.AccountID, id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "item deleted"})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
