package repository

import (
	"context"
	"time"

	"paulocell_pdv/internal/adapter/persistence/collection"
	"paulocell_pdv/internal/domain/entities"
	"paulocell_pdv/internal/usecase/interfaces"
)

// CustomerRepository keeps customers in the active array and trashed ones in
// the deleted-customers array.
type CustomerRepository struct {
	trash *collection.Trash[entities.Customer]
}

var _ interfaces.ICustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(store interfaces.ICollectionStore, keys Keys) *CustomerRepository {
	return &CustomerRepository{
		trash: collection.NewTrash[entities.Customer](store, keys.Customers, keys.DeletedCustomers),
	}
}

func (r *CustomerRepository) List(ctx context.Context) ([]entities.Customer, error) {
	return r.trash.Active.All(ctx)
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	c, _, err := r.trash.Active.Get(ctx, id)
	return c, err
}

func (r *CustomerRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	if err := r.trash.Active.Insert(ctx, c); err != nil {
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerRepository) Update(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	found, err := r.trash.Active.Replace(ctx, c)
	if err != nil || !found {
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerRepository) MoveToTrash(ctx context.Context, id string, at time.Time) (entities.Customer, error) {
	c, _, err := r.trash.MoveToTrash(ctx, id, at)
	return c, err
}

func (r *CustomerRepository) ListTrash(ctx context.Context) ([]entities.Customer, error) {
	return r.trash.List(ctx)
}

func (r *CustomerRepository) Restore(ctx context.Context, id string) (entities.Customer, error) {
	c, _, err := r.trash.Restore(ctx, id)
	return c, err
}

func (r *CustomerRepository) Purge(ctx context.Context, id string) (bool, error) {
	return r.trash.Purge(ctx, id)
}

func (r *CustomerRepository) EmptyTrash(ctx context.Context) (int, error) {
	return r.trash.Empty(ctx)
}
