package repository

import (
	"context"

	"paulocell_pdv/internal/adapter/persistence/collection"
	"paulocell_pdv/internal/domain/entities"
	"paulocell_pdv/internal/usecase/interfaces"
)

// ServiceRepository stores repair orders with their embedded parts.
type ServiceRepository struct {
	col *collection.Collection[entities.Service]
}

var _ interfaces.IServiceRepository = (*ServiceRepository)(nil)

func NewServiceRepository(store interfaces.ICollectionStore, keys Keys) *ServiceRepository {
	return &ServiceRepository{col: collection.New[entities.Service](store, keys.Services)}
}

func (r *ServiceRepository) List(ctx context.Context) ([]entities.Service, error) {
	return r.col.All(ctx)
}

func (r *ServiceRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	s, _, err := r.col.Get(ctx, id)
	return s, err
}

func (r *ServiceRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	if err := r.col.Insert(ctx, s); err != nil {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceRepository) Update(ctx context.Context, s entities.Service) (entities.Service, error) {
	found, err := r.col.Replace(ctx, s)
	if err != nil || !found {
		return entities.Service{}, err
	}
	return s, nil
}

// Delete is a hard delete.
func (r *ServiceRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, found, err := r.col.Remove(ctx, id)
	return found, err
}
