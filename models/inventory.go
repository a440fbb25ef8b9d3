package models

import (
	"encoding/json"
	"time"

	"github.com/spf13/cast"
)

const (
	EntryAddition  = "addition"
	EntryDeduction = "deduction"
)

// InventoryEntry is an audit record of a stock quantity change. Entries are
// append-only through the API.
type InventoryEntry struct {
	Date             time.Time `json:"date"`
	ProductName      string    `json:"productName"`
	Type             string    `json:"type"`
	Quantity         int       `json:"quantity"`
	PreviousQuantity int       `json:"previousQuantity"`
}

type rawInventoryEntry struct {
	Date             interface{} `json:"date"`
	ProductName      string      `json:"productName"`
	Type             string      `json:"type"`
	Quantity         interface{} `json:"quantity"`
	PreviousQuantity interface{} `json:"previousQuantity"`
}

func (e *InventoryEntry) UnmarshalJSON(b []byte) error {
	var raw rawInventoryEntry
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	e.Date = cast.ToTime(raw.Date)
	e.ProductName = raw.ProductName
	e.Type = raw.Type
	e.Quantity = cast.ToInt(raw.Quantity)
	e.PreviousQuantity = cast.ToInt(raw.PreviousQuantity)
	return nil
}
