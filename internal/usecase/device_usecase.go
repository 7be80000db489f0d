package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"paulocell_pdv/internal/domain/entities"
	"paulocell_pdv/internal/infrastructure/logger"
	"paulocell_pdv/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrDeviceNotFound      = errors.New("device not found")
	ErrInvalidDeviceID     = errors.New("invalid device id")
	ErrInvalidDeviceOwner  = errors.New("invalid device owner")
	ErrDeviceOwnerNotFound = errors.New("device owner not found")
	ErrInvalidDeviceModel  = errors.New("invalid device model")
	ErrInvalidDeviceType   = errors.New("invalid device type")
	ErrInvalidDeviceStatus = errors.New("invalid device status")
)

type DeviceInput struct {
	Owner        string
	Brand        string
	Model        string
	Type         entities.DeviceType
	Status       entities.DeviceStatus
	SerialNumber string
	Notes        string
}

type DeviceFilter struct {
	Owner  string
	Type   entities.DeviceType
	Status entities.DeviceStatus
	Search string
}

type IDeviceUseCase interface {
	Create(ctx context.Context, in DeviceInput) (entities.Device, error)
	List(ctx context.Context, f DeviceFilter) ([]entities.Device, error)
	GetByID(ctx context.Context, id string) (entities.Device, error)
	Update(ctx context.Context, id string, in DeviceInput) (entities.Device, error)
	Delete(ctx context.Context, id string) error
}

type DeviceUseCase struct {
	repo         interfaces.IDeviceRepository
	customerRepo interfaces.ICustomerRepository
}

var _ IDeviceUseCase = (*DeviceUseCase)(nil)

func NewDeviceUseCase(repo interfaces.IDeviceRepository, customerRepo interfaces.ICustomerRepository) *DeviceUseCase {
	return &DeviceUseCase{repo: repo, customerRepo: customerRepo}
}

func (u *DeviceUseCase) Create(ctx context.Context, in DeviceInput) (entities.Device, error) {
	d, err := buildDevice(in)
	if err != nil {
		return entities.Device{}, err
	}
	if err := u.ensureOwner(ctx, d.Owner); err != nil {
		return entities.Device{}, err
	}

	now := time.Now().UTC()
	d.ID = uuid.NewString()
	d.CreatedAt = now
	d.UpdatedAt = now
	created, err := u.repo.Create(ctx, d)
	if err != nil {
		return entities.Device{}, err
	}
	logger.For("device", "usecase").WithFields(map[string]interface{}{
		"device_id": created.ID,
		"owner":     created.Owner,
	}).Info("[device][usecase] created")
	return created, nil
}

func (u *DeviceUseCase) List(ctx context.Context, f DeviceFilter) ([]entities.Device, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	owner := strings.TrimSpace(f.Owner)
	out := make([]entities.Device, 0, len(all))
	for _, d := range all {
		if owner != "" && d.Owner != owner {
			continue
		}
		if f.Type != "" && d.Type != f.Type {
			continue
		}
		if f.Status != "" && d.Status != f.Status {
			continue
		}
		if !matchesSearch(f.Search, d.Brand, d.Model, d.SerialNumber) {
			continue
		}
		out = append(out, d)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (u *DeviceUseCase) GetByID(ctx context.Context, id string) (entities.Device, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Device{}, ErrInvalidDeviceID
	}
	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Device{}, err
	}
	if d.ID == "" {
		return entities.Device{}, ErrDeviceNotFound
	}
	return d, nil
}

func (u *DeviceUseCase) Update(ctx context.Context, id string, in DeviceInput) (entities.Device, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Device{}, err
	}
	d, err := buildDevice(in)
	if err != nil {
		return entities.Device{}, err
	}
	if d.Owner != current.Owner {
		if err := u.ensureOwner(ctx, d.Owner); err != nil {
			return entities.Device{}, err
		}
	}
	d.ID = current.ID
	d.CreatedAt = current.CreatedAt
	d.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, d)
	if err != nil {
		return entities.Device{}, err
	}
	if updated.ID == "" {
		return entities.Device{}, ErrDeviceNotFound
	}
	return updated, nil
}

func (u *DeviceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidDeviceID
	}
	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrDeviceNotFound
	}
	return nil
}

func (u *DeviceUseCase) ensureOwner(ctx context.Context, owner string) error {
	c, err := u.customerRepo.GetByID(ctx, owner)
	if err != nil {
		return err
	}
	if c.ID == "" {
		return ErrDeviceOwnerNotFound
	}
	return nil
}

func buildDevice(in DeviceInput) (entities.Device, error) {
	d := entities.Device{
		Owner:        strings.TrimSpace(in.Owner),
		Brand:        strings.TrimSpace(in.Brand),
		Model:        strings.TrimSpace(in.Model),
		Type:         in.Type,
		Status:       in.Status,
		SerialNumber: strings.TrimSpace(in.SerialNumber),
		Notes:        strings.TrimSpace(in.Notes),
	}
	if d.Owner == "" {
		return entities.Device{}, ErrInvalidDeviceOwner
	}
	if d.Model == "" {
		return entities.Device{}, ErrInvalidDeviceModel
	}
	if !d.Type.Valid() {
		return entities.Device{}, ErrInvalidDeviceType
	}
	if d.Status == "" {
		d.Status = entities.DeviceStatusGood
	}
	if !d.Status.Valid() {
		return entities.Device{}, ErrInvalidDeviceStatus
	}
	return d, nil
}
