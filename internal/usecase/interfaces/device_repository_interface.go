package interfaces

import (
	"context"

	"paulocell_pdv/internal/domain/entities"
)

type IDeviceRepository interface {
	List(ctx context.Context) ([]entities.Device, error)
	GetByID(ctx context.Context, id string) (entities.Device, error)
	Create(ctx context.Context, d entities.Device) (entities.Device, error)
	Update(ctx context.Context, d entities.Device) (entities.Device, error)
	Delete(ctx context.Context, id string) (bool, error)
}
