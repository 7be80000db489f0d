package repository

import (
	"context"
	"sort"

	"paulocell_pdv/internal/adapter/persistence/collection"
	"paulocell_pdv/internal/domain/entities"
	"paulocell_pdv/internal/usecase/interfaces"
)

// PaymentRepository persists Payment records in the payments collection.
type PaymentRepository struct {
	col *collection.Collection[entities.Payment]
}

var _ interfaces.IPaymentRepository = (*PaymentRepository)(nil)

func NewPaymentRepository(store interfaces.ICollectionStore, keys Keys) *PaymentRepository {
	return &PaymentRepository{col: collection.New[entities.Payment](store, keys.Payments)}
}

func (r *PaymentRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	if err := r.col.Insert(ctx, p); err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	p, _, err := r.col.Get(ctx, id)
	return p, err
}

// ListByServiceID returns the payments of one service, newest first.
func (r *PaymentRepository) ListByServiceID(ctx context.Context, serviceID string) ([]entities.Payment, error) {
	all, err := r.col.All(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]entities.Payment, 0, len(all))
	for _, p := range all {
		if p.ServiceID == serviceID {
			items = append(items, p)
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Date.After(items[j].Date) })
	return items, nil
}
