package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cast"

	"wings/services"
	"wings/store"
)

type SalesHandler struct {
	store *store.Store
	txn   *services.TransactionService
}

func NewSalesHandler(st *store.Store, txn *services.TransactionService) *SalesHandler {
	return &SalesHandler{store: st, txn: txn}
}

// GetSales returns the full sale log.
func (h *SalesHandler) GetSales(c *fiber.Ctx) error {
	sales, err := h.store.Sales()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load sales"})
	}
	return c.JSON(sales)
}

// CreateSale sells quantity units of the named product and returns the
// created sale record.
func (h *SalesHandler) CreateSale(c *fiber.Ctx) error {
	var req struct {
		ProductName string      `json:"productName"`
		Quantity    interface{} `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	sale, err := h.txn.Sell(req.ProductName, cast.ToInt(req.Quantity))
	switch {
	case errors.Is(err, services.ErrInsufficientStock), errors.Is(err, services.ErrProductNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Insufficient stock or product not found"})
	case errors.Is(err, services.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Quantity must be a positive integer"})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record sale"})
	}

	return c.JSON(sale)
}
