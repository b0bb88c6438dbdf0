package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mealbridge/internal/errors"
	"mealbridge/internal/model"
	"mealbridge/internal/service"
)

// OrderHandler handles order endpoints.
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// OrderItemRequest is one listing-quantity pair in a placement request.
type OrderItemRequest struct {
	ListingID uint `json:"listing_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,gt=0"`
}

// PlaceOrderRequest represents an order placement.
type PlaceOrderRequest struct {
	Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// OrderResponse wraps a placed order.
type OrderResponse struct {
	Message string       `json:"message"`
	Order   *model.Order `json:"order"`
}

// Place godoc
// @Summary Place an order against donated inventory
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PlaceOrderRequest true "Line items"
// @Success 201 {object} OrderResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) Place(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	items := make([]service.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.OrderItemInput{
			ListingID: item.ListingID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.orderService.PlaceOrder(c.Request().Context(), claims.AccountID, claims.Role, items)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, OrderResponse{
		Message: "order placed",
		Order:   order,
	})
}

// List godoc
// @Summary List the caller's orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Order
// @Failure 401 {object} errors.ErrorResponse
// @Router /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	orders, err := h.orderService.ListForAccount(c.Request().Context(), claims.AccountID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, orders)
}
