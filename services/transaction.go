package services

import (
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"

	"wings/models"
	"wings/store"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidQuantity   = errors.New("quantity must be a positive integer")
	ErrDuplicateName     = errors.New("product name already exists")
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// TransactionService implements the two composite stock operations. Each one
// mutates the product collection and appends to a secondary log as separate
// persisted writes; the product write is serialized by the store, the
// follow-up appends are not rolled back if they fail.
type TransactionService struct {
	store *store.Store
}

func NewTransactionService(st *store.Store) *TransactionService {
	return &TransactionService{store: st}
}

// Sell decrements the named product's stock by quantity, then records the
// sale and a deduction audit entry. The first product whose name matches is
// used. Returns the created sale.
func (s *TransactionService) Sell(productName string, quantity int) (*models.Sale, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var sold models.Product
	err := s.store.UpdateProducts(func(products []models.Product) ([]models.Product, error) {
		for i := range products {
			if products[i].Name != productName {
				continue
			}
			if products[i].Quantity < quantity {
				return nil, ErrInsufficientStock
			}
			products[i].Quantity -= quantity
			sold = products[i]
			return products, nil
		}
		return nil, ErrProductNotFound
	})
	if err != nil {
		return nil, err
	}

	sale := models.Sale{
		Date:        time.Now().UTC(),
		ProductName: productName,
		Quantity:    quantity,
		Price:       sold.Price,
		Revenue:     sold.Price * float64(quantity),
	}
	if err := s.store.AppendSale(sale); err != nil {
		logger.Error().Err(err).Str("product", productName).
			Msg("stock decremented but sale record not persisted")
		return nil, err
	}

	entry := models.InventoryEntry{
		Date:        time.Now().UTC(),
		ProductName: productName,
		Type:        models.EntryDeduction,
		Quantity:    quantity,
		// reconstructed from the post-decrement stock level
		PreviousQuantity: sold.Quantity + quantity,
	}
	if err := s.store.AppendInventory(entry); err != nil {
		logger.Error().Err(err).Str("product", productName).
			Msg("sale persisted but inventory entry not persisted")
		return nil, err
	}

	logger.Info().Str("product", productName).Int("quantity", quantity).
		Float64("revenue", sale.Revenue).Msg("sale recorded")
	return &sale, nil
}

// Restock increments the named product's stock by quantity and records an
// addition audit entry carrying the stock level observed before the
// increment.
func (s *TransactionService) Restock(productName string, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	var previousQuantity int
	err := s.store.UpdateProducts(func(products []models.Product) ([]models.Product, error) {
		for i := range products {
			if products[i].Name != productName {
				continue
			}
			previousQuantity = products[i].Quantity
			products[i].Quantity += quantity
			return products, nil
		}
		return nil, ErrProductNotFound
	})
	if err != nil {
		return err
	}

	entry := models.InventoryEntry{
		Date:             time.Now().UTC(),
		ProductName:      productName,
		Type:             models.EntryAddition,
		Quantity:         quantity,
		PreviousQuantity: previousQuantity,
	}
	if err := s.store.AppendInventory(entry); err != nil {
		logger.Error().Err(err).Str("product", productName).
			Msg("stock incremented but inventory entry not persisted")
		return err
	}

	logger.Info().Str("product", productName).Int("quantity", quantity).
		Int("previousQuantity", previousQuantity).Msg("restock recorded")
	return nil
}
