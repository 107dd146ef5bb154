package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storeops/backoffice-api/internal/core/ports"
)

// ReportHandler serves GET /api/reports/summary.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Summary returns the aggregated back-office figures. Responses may be up to
// 30 seconds stale when served from the cache; the payload says which.
func (h *ReportHandler) Summary(c echo.Context) error {
	summary, err := h.service.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}
