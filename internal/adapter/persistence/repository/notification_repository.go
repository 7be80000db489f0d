package repository

import (
	"context"

	"paulocell_pdv/internal/adapter/persistence/collection"
	"paulocell_pdv/internal/domain/entities"
	"paulocell_pdv/internal/usecase/interfaces"
)

type NotificationRepository struct {
	col *collection.Collection[entities.Notification]
}

var _ interfaces.INotificationRepository = (*NotificationRepository)(nil)

func NewNotificationRepository(store interfaces.ICollectionStore, keys Keys) *NotificationRepository {
	return &NotificationRepository{col: collection.New[entities.Notification](store, keys.Notifications)}
}

func (r *NotificationRepository) List(ctx context.Context) ([]entities.Notification, error) {
	return r.col.All(ctx)
}

func (r *NotificationRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	if err := r.col.Insert(ctx, n); err != nil {
		return entities.Notification{}, err
	}
	return n, nil
}

func (r *NotificationRepository) Update(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	found, err := r.col.Replace(ctx, n)
	if err != nil || !found {
		return entities.Notification{}, err
	}
	return n, nil
}

func (r *NotificationRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, found, err := r.col.Remove(ctx, id)
	return found, err
}

// MarkAllRead flips every unread notification in one write and returns how
// many changed.
func (r *NotificationRepository) MarkAllRead(ctx context.Context) (int, error) {
	changed := 0
	err := r.col.Mutate(ctx, func(all []entities.Notification) ([]entities.Notification, error) {
		for i := range all {
			if !all[i].Read {
				all[i].Read = true
				changed++
			}
		}
		return all, nil
	})
	return changed, err
}
