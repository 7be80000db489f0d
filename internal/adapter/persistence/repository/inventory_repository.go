package repository

import (
	"context"

	"paulocell_pdv/internal/adapter/persistence/collection"
	"paulocell_pdv/internal/domain/entities"
	"paulocell_pdv/internal/usecase/interfaces"
)

type InventoryRepository struct {
	col *collection.Collection[entities.InventoryItem]
}

var _ interfaces.IInventoryRepository = (*InventoryRepository)(nil)

func NewInventoryRepository(store interfaces.ICollectionStore, keys Keys) *InventoryRepository {
	return &InventoryRepository{col: collection.New[entities.InventoryItem](store, keys.Inventory)}
}

func (r *InventoryRepository) List(ctx context.Context) ([]entities.InventoryItem, error) {
	return r.col.All(ctx)
}

func (r *InventoryRepository) GetByID(ctx context.Context, id string) (entities.InventoryItem, error) {
	it, _, err := r.col.Get(ctx, id)
	return it, err
}

func (r *InventoryRepository) Create(ctx context.Context, it entities.InventoryItem) (entities.InventoryItem, error) {
	if err := r.col.Insert(ctx, it); err != nil {
		return entities.InventoryItem{}, err
	}
	return it, nil
}

func (r *InventoryRepository) Update(ctx context.Context, it entities.InventoryItem) (entities.InventoryItem, error) {
	found, err := r.col.Replace(ctx, it)
	if err != nil || !found {
		return entities.InventoryItem{}, err
	}
	return it, nil
}

func (r *InventoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, found, err := r.col.Remove(ctx, id)
	return found, err
}

func (r *InventoryRepository) Mutate(ctx context.Context, fn interfaces.InventoryMutation) error {
	return r.col.Mutate(ctx, fn)
}
