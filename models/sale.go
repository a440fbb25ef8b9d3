package models

import (
	"encoding/json"
	"time"

	"github.com/spf13/cast"
)

// Sale is an append-only record of a completed sale. ProductName and Price
// are denormalized snapshots taken at sale time, not foreign keys.
type Sale struct {
	Date        time.Time `json:"date"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	Revenue     float64   `json:"revenue"`
}

type rawSale struct {
	Date        interface{} `json:"date"`
	ProductName string      `json:"productName"`
	Quantity    interface{} `json:"quantity"`
	Price       interface{} `json:"price"`
	Revenue     interface{} `json:"revenue"`
}

func (s *Sale) UnmarshalJSON(b []byte) error {
	var raw rawSale
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	s.Date = cast.ToTime(raw.Date)
	s.ProductName = raw.ProductName
	s.Quantity = cast.ToInt(raw.Quantity)
	s.Price = cast.ToFloat64(raw.Price)
	s.Revenue = cast.ToFloat64(raw.Revenue)
	return nil
}
