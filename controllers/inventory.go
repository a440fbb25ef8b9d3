package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cast"

	"wings/services"
	"wings/store"
)

type InventoryHandler struct {
	store *store.Store
	txn   *services.TransactionService
}

func NewInventoryHandler(st *store.Store, txn *services.TransactionService) *InventoryHandler {
	return &InventoryHandler{store: st, txn: txn}
}

// GetInventory returns the full audit log of stock changes.
func (h *InventoryHandler) GetInventory(c *fiber.Ctx) error {
	entries, err := h.store.InventoryEntries()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load inventory"})
	}
	return c.JSON(entries)
}

// AddStock restocks the named product and records an addition entry.
func (h *InventoryHandler) AddStock(c *fiber.Ctx) error {
	var req struct {
		ProductName string      `json:"productName"`
		Quantity    interface{} `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	err := h.txn.Restock(req.ProductName, cast.ToInt(req.Quantity))
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	case errors.Is(err, services.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Quantity must be a positive integer"})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record restock"})
	}

	return c.JSON(fiber.Map{"success": true})
}
