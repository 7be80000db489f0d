package interfaces

import (
	"context"
	"time"

	"paulocell_pdv/internal/domain/entities"
)

// ICustomerRepository persists customers in the active collection and its trash.
//
// Lookups return the zero Customer (empty ID) when the record does not exist.
type ICustomerRepository interface {
	List(ctx context.Context) ([]entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
	MoveToTrash(ctx context.Context, id string, at time.Time) (entities.Customer, error)
	ListTrash(ctx context.Context) ([]entities.Customer, error)
	Restore(ctx context.Context, id string) (entities.Customer, error)
	Purge(ctx context.Context, id string) (bool, error)
	EmptyTrash(ctx context.Context) (int, error)
}
