package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type InventoryItem struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	SKU          string    `json:"sku"`
	Category     string    `json:"category,omitempty"`
	Price        float64   `json:"price"`
	CostPrice    float64   `json:"costPrice,omitempty"`
	CurrentStock int       `json:"currentStock"`
	MinimumStock int       `json:"minimumStock"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (i InventoryItem) RecordID() string { return i.ID }

// LowStock is true once the stock reaches the configured minimum.
func (i InventoryItem) LowStock() bool {
	return i.CurrentStock <= i.MinimumStock
}

// StockValue is price x current stock.
func (i InventoryItem) StockValue() decimal.Decimal {
	return decimal.NewFromFloat(i.Price).Mul(decimal.NewFromInt(int64(i.CurrentStock)))
}
