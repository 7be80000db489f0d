package repository

import (
	"context"

	"paulocell_pdv/internal/adapter/persistence/collection"
	"paulocell_pdv/internal/domain/entities"
	"paulocell_pdv/internal/usecase/interfaces"
)

type DeviceRepository struct {
	col *collection.Collection[entities.Device]
}

var _ interfaces.IDeviceRepository = (*DeviceRepository)(nil)

func NewDeviceRepository(store interfaces.ICollectionStore, keys Keys) *DeviceRepository {
	return &DeviceRepository{col: collection.New[entities.Device](store, keys.Devices)}
}

func (r *DeviceRepository) List(ctx context.Context) ([]entities.Device, error) {
	return r.col.All(ctx)
}

func (r *DeviceRepository) GetByID(ctx context.Context, id string) (entities.Device, error) {
	d, _, err := r.col.Get(ctx, id)
	return d, err
}

func (r *DeviceRepository) Create(ctx context.Context, d entities.Device) (entities.Device, error) {
	if err := r.col.Insert(ctx, d); err != nil {
		return entities.Device{}, err
	}
	return d, nil
}

func (r *DeviceRepository) Update(ctx context.Context, d entities.Device) (entities.Device, error) {
	found, err := r.col.Replace(ctx, d)
	if err != nil || !found {
		return entities.Device{}, err
	}
	return d, nil
}

func (r *DeviceRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, found, err := r.col.Remove(ctx, id)
	return found, err
}
