package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storeops/backoffice-api/internal/core/domain"
	"github.com/storeops/backoffice-api/internal/core/ports"
)

// ResourceHandler serves the generic back-office route groups (suppliers,
// inventory, sales, employees). One handler instance is bound per resource at
// route registration.
type ResourceHandler struct {
	service ports.ResourceService
	res     domain.Resource
}

func NewResourceHandler(service ports.ResourceService, res domain.Resource) *ResourceHandler {
	return &ResourceHandler{service: service, res: res}
}

func (h *ResourceHandler) Create(c echo.Context) error {
	var doc domain.Document
	if err := c.Bind(&doc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(doc) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "empty document")
	}

	created, err := h.service.Create(c.Request().Context(), h.res, doc)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *ResourceHandler) List(c echo.Context) error {
	docs, err := h.service.List(c.Request().Context(), h.res)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, docs)
}

func (h *ResourceHandler) Update(c echo.Context) error {
	var doc domain.Document
	if err := c.Bind(&doc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(doc) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "empty document")
	}

	updated, err := h.service.Update(c.Request().Context(), h.res, c.Param("id"), doc)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *ResourceHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), h.res, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Document deleted successfully"})
}
