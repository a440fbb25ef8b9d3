package models

import (
	"encoding/json"

	"github.com/spf13/cast"
)

// Product is one record in the products collection. Sales and restocks
// mutate Quantity in place; Name is the lookup key for both.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Image       string  `json:"image,omitempty"`
}

type rawProduct struct {
	ID          interface{} `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Price       interface{} `json:"price"`
	Quantity    interface{} `json:"quantity"`
	Image       string      `json:"image"`
}

// UnmarshalJSON coerces numeric fields defensively: collections written by
// older clients can hold prices and quantities serialized as strings.
// Anything non-numeric falls back to 0.
func (p *Product) UnmarshalJSON(b []byte) error {
	var raw rawProduct
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	p.ID = cast.ToString(raw.ID)
	p.Name = raw.Name
	p.Description = raw.Description
	p.Category = raw.Category
	p.Price = cast.ToFloat64(raw.Price)
	p.Quantity = cast.ToInt(raw.Quantity)
	p.Image = raw.Image
	return nil
}
