package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/laundrahub/admin-service/internal/domain"
	"github.com/laundrahub/admin-service/internal/service"
)

// ReportsHandler exposes the admin reports page data.
type ReportsHandler struct {
	reports *service.ReportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reports *service.ReportService) *ReportsHandler {
	return &ReportsHandler{reports: reports}
}

// Summary handles GET /api/reports/summary. The window defaults to the
// trailing month; from and to are YYYY-MM-DD, shop narrows the order
// figures.
func (h *ReportsHandler) Summary(c *fiber.Ctx) error {
	from, to, err := service.ParseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		return err
	}

	summary, err := h.reports.BuildSummary(c.Context(), from, to, domain.ParseShop(c.Query("shop")))
	if err != nil {
		return err
	}
	return c.JSON(summary)
}
