package interfaces

import (
	"context"

	"paulocell_pdv/internal/domain/entities"
)

type IInventoryRepository interface {
	List(ctx context.Context) ([]entities.InventoryItem, error)
	GetByID(ctx context.Context, id string) (entities.InventoryItem, error)
	Create(ctx context.Context, it entities.InventoryItem) (entities.InventoryItem, error)
	Update(ctx context.Context, it entities.InventoryItem) (entities.InventoryItem, error)
	Delete(ctx context.Context, id string) (bool, error)
	// Mutate runs fn over the whole inventory under the collection lock and
	// stores what it returns. An error from fn aborts the write.
	Mutate(ctx context.Context, fn InventoryMutation) error
}

// InventoryMutation rewrites the stored item list.
type InventoryMutation func(items []entities.InventoryItem) ([]entities.InventoryItem, error)
