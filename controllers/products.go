package controllers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cast"

	"wings/models"
	"wings/services"
	"wings/store"
)

type ProductHandler struct {
	store *store.Store
}

func NewProductHandler(st *store.Store) *ProductHandler {
	return &ProductHandler{store: st}
}

// GetProducts returns every product with prices already coerced to numbers.
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.store.Products()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load products"})
	}
	return c.JSON(products)
}

// CreateProduct appends a new product. The id is the creation timestamp in
// milliseconds; a name already in use is rejected so name-based sell and
// restock lookups stay unambiguous.
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if strings.TrimSpace(product.Name) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Product name is required"})
	}
	product.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)

	err := h.store.UpdateProducts(func(products []models.Product) ([]models.Product, error) {
		for _, p := range products {
			if p.Name == product.Name {
				return nil, services.ErrDuplicateName
			}
		}
		return append(products, product), nil
	})
	if errors.Is(err, services.ErrDuplicateName) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Product name already exists"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save products"})
	}

	return c.JSON(product)
}

// UpdateProduct merges the supplied fields into an existing product. Price
// and quantity are coerced defensively; a non-numeric price becomes 0.
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	var fields map[string]interface{}
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	id := c.Params("id")
	var updated models.Product
	err := h.store.UpdateProducts(func(products []models.Product) ([]models.Product, error) {
		idx := -1
		for i := range products {
			if products[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return nil, services.ErrProductNotFound
		}

		p := &products[idx]
		if v, ok := fields["name"]; ok {
			name := cast.ToString(v)
			for i := range products {
				if i != idx && products[i].Name == name {
					return nil, services.ErrDuplicateName
				}
			}
			p.Name = name
		}
		if v, ok := fields["description"]; ok {
			p.Description = cast.ToString(v)
		}
		if v, ok := fields["category"]; ok {
			p.Category = cast.ToString(v)
		}
		if v, ok := fields["image"]; ok {
			p.Image = cast.ToString(v)
		}
		if v, ok := fields["price"]; ok {
			p.Price = cast.ToFloat64(v)
		}
		if v, ok := fields["quantity"]; ok {
			p.Quantity = cast.ToInt(v)
		}
		updated = *p
		return products, nil
	})

	if errors.Is(err, services.ErrProductNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}
	if errors.Is(err, services.ErrDuplicateName) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Product name already exists"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save products"})
	}

	return c.JSON(updated)
}

// DeleteProduct removes the product with the given id. Deleting an id that
// does not exist is still a 204.
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")

	err := h.store.UpdateProducts(func(products []models.Product) ([]models.Product, error) {
		kept := make([]models.Product, 0, len(products))
		for _, p := range products {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		return kept, nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save products"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
