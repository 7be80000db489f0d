package request

import "paulocell_pdv/internal/usecase"

type InventoryRequest struct {
	Name         string  `json:"name" binding:"required"`
	SKU          string  `json:"sku" binding:"required"`
	Category     string  `json:"category"`
	Price        float64 `json:"price" binding:"gte=0"`
	CostPrice    float64 `json:"costPrice" binding:"gte=0"`
	CurrentStock int     `json:"currentStock" binding:"gte=0"`
	MinimumStock int     `json:"minimumStock" binding:"gte=0"`
}

func (r InventoryRequest) ToInput() usecase.InventoryInput {
	return usecase.InventoryInput{
		Name:         r.Name,
		SKU:          r.SKU,
		Category:     r.Category,
		Price:        r.Price,
		CostPrice:    r.CostPrice,
		CurrentStock: r.CurrentStock,
		MinimumStock: r.MinimumStock,
	}
}

// StockAdjustmentRequest carries a signed delta; zero is rejected.
type StockAdjustmentRequest struct {
	Delta int `json:"delta" binding:"required,min=-1000000,max=1000000"`
}
