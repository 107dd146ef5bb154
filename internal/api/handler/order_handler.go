package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storeops/backoffice-api/internal/api/metrics"
	"github.com/storeops/backoffice-api/internal/core/domain"
	"github.com/storeops/backoffice-api/internal/core/ports"
)

// OrderHandler serves the /api/orders routes.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Create handles POST /api/orders.
//
// @Summary      Create an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      orderRequest  true  "Order fields"
// @Success      201   {object}  domain.Order
// @Failure      500   {object}  errorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	order, err := h.service.Create(c.Request().Context(), ports.CreateOrderInput{
		CustomerName: req.CustomerName,
		ProductName:  req.ProductName,
		Quantity:     req.Quantity,
		Price:        req.Price,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to create order"})
	}

	metrics.OrdersCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, order)
}

// List handles GET /api/orders.
//
// @Summary      List all orders
// @Tags         orders
// @Produce      json
// @Success      200  {array}   domain.Order
// @Failure      500  {object}  errorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.service.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to fetch orders"})
	}
	return c.JSON(http.StatusOK, orders)
}

// Update handles PUT /api/orders/:id with falsy-coalescing partial-update
// semantics.
//
// @Summary      Update an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path      string        true  "Order id"
// @Param        body  body      orderRequest  true  "Any subset of order fields"
// @Success      200   {object}  domain.Order
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) Update(c echo.Context) error {
	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	order, err := h.service.Update(c.Request().Context(), c.Param("id"), domain.OrderPatch{
		CustomerName: req.CustomerName,
		ProductName:  req.ProductName,
		Quantity:     req.Quantity,
		Price:        req.Price,
	})
	if err != nil {
		return err // resolved by the central error handler (404/400/500)
	}

	return c.JSON(http.StatusOK, order)
}

// Delete handles DELETE /api/orders/:id.
//
// @Summary      Delete an order
// @Tags         orders
// @Produce      json
// @Param        id  path      string  true  "Order id"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err // resolved by the central error handler (404/400/500)
	}

	metrics.OrdersDeletedTotal.Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "Order deleted successfully"})
}
