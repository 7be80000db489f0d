package interfaces

import (
	"context"

	"paulocell_pdv/internal/domain/entities"
)

type INotificationRepository interface {
	List(ctx context.Context) ([]entities.Notification, error)
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	Update(ctx context.Context, n entities.Notification) (entities.Notification, error)
	Delete(ctx context.Context, id string) (bool, error)
	MarkAllRead(ctx context.Context) (int, error)
}
