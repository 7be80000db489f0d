package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"paulocell_pdv/internal/domain/entities"
	"paulocell_pdv/internal/infrastructure/logger"
	"paulocell_pdv/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInventoryItemNotFound  = errors.New("inventory item not found")
	ErrInvalidInventoryItemID = errors.New("invalid inventory item id")
	ErrInvalidInventoryName   = errors.New("invalid inventory item name")
	ErrInvalidSKU             = errors.New("invalid sku")
	ErrDuplicateSKU           = errors.New("sku already in use")
	ErrInvalidPrice           = errors.New("invalid price")
	ErrInvalidStock           = errors.New("invalid stock")
	ErrInsufficientStock      = errors.New("insufficient stock")
)

// MaxStockDelta bounds a single adjustment.
const MaxStockDelta = 1_000_000

type InventoryInput struct {
	Name         string
	SKU          string
	Category     string
	Price        float64
	CostPrice    float64
	CurrentStock int
	MinimumStock int
}

type InventoryFilter struct {
	Category string
	LowStock bool
	Search   string
}

type IInventoryUseCase interface {
	Create(ctx context.Context, in InventoryInput) (entities.InventoryItem, error)
	List(ctx context.Context, f InventoryFilter) ([]entities.InventoryItem, error)
	GetByID(ctx context.Context, id string) (entities.InventoryItem, error)
	Update(ctx context.Context, id string, in InventoryInput) (entities.InventoryItem, error)
	Delete(ctx context.Context, id string) error
	AdjustStock(ctx context.Context, id string, delta int) (entities.InventoryItem, error)
	ListLowStock(ctx context.Context) ([]entities.InventoryItem, error)
}

type InventoryUseCase struct {
	repo interfaces.IInventoryRepository
}

var _ IInventoryUseCase = (*InventoryUseCase)(nil)

func NewInventoryUseCase(repo interfaces.IInventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

func (u *InventoryUseCase) Create(ctx context.Context, in InventoryInput) (entities.InventoryItem, error) {
	it, err := buildInventoryItem(in)
	if err != nil {
		return entities.InventoryItem{}, err
	}
	now := time.Now().UTC()
	it.ID = uuid.NewString()
	it.CreatedAt = now
	it.UpdatedAt = now

	err = u.repo.Mutate(ctx, func(items []entities.InventoryItem) ([]entities.InventoryItem, error) {
		if err := checkUniqueSKU(items, it.SKU, ""); err != nil {
			return nil, err
		}
		return append(items, it), nil
	})
	if err != nil {
		return entities.InventoryItem{}, err
	}
	return it, nil
}

func (u *InventoryUseCase) List(ctx context.Context, f InventoryFilter) ([]entities.InventoryItem, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	category := foldText(f.Category)
	out := make([]entities.InventoryItem, 0, len(all))
	for _, it := range all {
		if category != "" && foldText(it.Category) != category {
			continue
		}
		if f.LowStock && !it.LowStock() {
			continue
		}
		if !matchesSearch(f.Search, it.Name, it.SKU, it.Category) {
			continue
		}
		out = append(out, it)
	}
	sort.SliceStable(out, func(i, j int) bool { return foldText(out[i].Name) < foldText(out[j].Name) })
	return out, nil
}

func (u *InventoryUseCase) GetByID(ctx context.Context, id string) (entities.InventoryItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InventoryItem{}, ErrInvalidInventoryItemID
	}
	it, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.InventoryItem{}, err
	}
	if it.ID == "" {
		return entities.InventoryItem{}, ErrInventoryItemNotFound
	}
	return it, nil
}

func (u *InventoryUseCase) Update(ctx context.Context, id string, in InventoryInput) (entities.InventoryItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InventoryItem{}, ErrInvalidInventoryItemID
	}
	it, err := buildInventoryItem(in)
	if err != nil {
		return entities.InventoryItem{}, err
	}
	err = u.repo.Mutate(ctx, func(items []entities.InventoryItem) ([]entities.InventoryItem, error) {
		i := indexOfItem(items, id)
		if i < 0 {
			return nil, ErrInventoryItemNotFound
		}
		if err := checkUniqueSKU(items, it.SKU, id); err != nil {
			return nil, err
		}
		it.ID = id
		it.CreatedAt = items[i].CreatedAt
		it.UpdatedAt = time.Now().UTC()
		items[i] = it
		return items, nil
	})
	if err != nil {
		return entities.InventoryItem{}, err
	}
	return it, nil
}

func (u *InventoryUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInventoryItemID
	}
	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrInventoryItemNotFound
	}
	return nil
}

// AdjustStock adds a signed delta; the result can not go below zero. The
// check and the write happen under the same collection lock.
func (u *InventoryUseCase) AdjustStock(ctx context.Context, id string, delta int) (entities.InventoryItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InventoryItem{}, ErrInvalidInventoryItemID
	}
	if delta > MaxStockDelta || delta < -MaxStockDelta {
		return entities.InventoryItem{}, ErrInvalidStock
	}

	var updated entities.InventoryItem
	err := u.repo.Mutate(ctx, func(items []entities.InventoryItem) ([]entities.InventoryItem, error) {
		i := indexOfItem(items, id)
		if i < 0 {
			return nil, ErrInventoryItemNotFound
		}
		next := items[i].CurrentStock + delta
		if next < 0 {
			return nil, ErrInsufficientStock
		}
		items[i].CurrentStock = next
		items[i].UpdatedAt = time.Now().UTC()
		updated = items[i]
		return items, nil
	})
	if err != nil {
		return entities.InventoryItem{}, err
	}
	logger.For("inventory", "usecase").WithFields(map[string]interface{}{
		"item_id": updated.ID,
		"delta":   delta,
		"stock":   updated.CurrentStock,
	}).Info("[inventory][usecase] stock adjusted")
	return updated, nil
}

func (u *InventoryUseCase) ListLowStock(ctx context.Context) ([]entities.InventoryItem, error) {
	return u.List(ctx, InventoryFilter{LowStock: true})
}

func indexOfItem(items []entities.InventoryItem, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func checkUniqueSKU(items []entities.InventoryItem, sku, selfID string) error {
	for _, it := range items {
		if it.ID != selfID && strings.EqualFold(it.SKU, sku) {
			return ErrDuplicateSKU
		}
	}
	return nil
}

func buildInventoryItem(in InventoryInput) (entities.InventoryItem, error) {
	it := entities.InventoryItem{
		Name:         strings.TrimSpace(in.Name),
		SKU:          strings.TrimSpace(in.SKU),
		Category:     strings.TrimSpace(in.Category),
		Price:        in.Price,
		CostPrice:    in.CostPrice,
		CurrentStock: in.CurrentStock,
		MinimumStock: in.MinimumStock,
	}
	switch {
	case it.Name == "":
		return entities.InventoryItem{}, ErrInvalidInventoryName
	case it.SKU == "":
		return entities.InventoryItem{}, ErrInvalidSKU
	case it.Price < 0 || it.CostPrice < 0:
		return entities.InventoryItem{}, ErrInvalidPrice
	case it.CurrentStock < 0 || it.MinimumStock < 0:
		return entities.InventoryItem{}, ErrInvalidStock
	}
	return it, nil
}
