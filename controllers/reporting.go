package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"wings/services"
	"wings/store"
)

type ReportingHandler struct {
	store   *store.Store
	reports *services.ReportingService
}

func NewReportingHandler(st *store.Store, reports *services.ReportingService) *ReportingHandler {
	return &ReportingHandler{store: st, reports: reports}
}

// GetReporting returns all sales, the revenue total and the low-stock list.
func (h *ReportingHandler) GetReporting(c *fiber.Ctx) error {
	report, err := h.reports.Reporting()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build report"})
	}
	return c.JSON(report)
}

// GetOverview returns the dashboard aggregates plus the full product list.
func (h *ReportingHandler) GetOverview(c *fiber.Ctx) error {
	overview, err := h.reports.Overview()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build overview"})
	}
	return c.JSON(overview)
}

// GetBestSelling returns the product with the highest total quantity sold,
// or an empty object when no sales exist.
func (h *ReportingHandler) GetBestSelling(c *fiber.Ctx) error {
	sales, err := h.store.Sales()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load sales"})
	}

	best := services.BestSelling(sales)
	if best == nil {
		return c.JSON(fiber.Map{})
	}
	return c.JSON(best)
}

// Health is a liveness probe.
func (h *ReportingHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "wings-backend",
		"time":    time.Now().Format(time.RFC3339),
	})
}
