package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"paulocell_pdv/internal/domain/entities"
	"paulocell_pdv/internal/infrastructure/logger"
	"paulocell_pdv/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound           = errors.New("service not found")
	ErrInvalidServiceID          = errors.New("invalid service id")
	ErrInvalidServiceDescription = errors.New("invalid service description")
	ErrInvalidServiceStatus      = errors.New("invalid service status")
	ErrInvalidPart               = errors.New("invalid part")
	ErrInvalidLaborCost          = errors.New("invalid labor cost")
	ErrServiceCustomerNotFound   = errors.New("service customer not found")
	ErrServiceDeviceNotFound     = errors.New("service device not found")
	ErrDeviceNotOwnedByCustomer  = errors.New("device does not belong to customer")
	ErrServiceDelivered          = errors.New("service already delivered")
)

type ServiceInput struct {
	CustomerID  string
	DeviceID    string
	Description string
	Status      entities.ServiceStatus
	Parts       []entities.Part
	LaborCost   float64
}

type ServiceFilter struct {
	Status     entities.ServiceStatus
	CustomerID string
	DeviceID   string
	Search     string
}

type IServiceUseCase interface {
	Create(ctx context.Context, in ServiceInput) (entities.Service, error)
	List(ctx context.Context, f ServiceFilter) ([]entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	Update(ctx context.Context, id string, in ServiceInput) (entities.Service, error)
	ChangeStatus(ctx context.Context, id string, status entities.ServiceStatus) (entities.Service, error)
	Delete(ctx context.Context, id string) error
}

// ServiceUseCase manages repair orders. sms may be nil.
type ServiceUseCase struct {
	repo             interfaces.IServiceRepository
	customerRepo     interfaces.ICustomerRepository
	deviceRepo       interfaces.IDeviceRepository
	notificationRepo interfaces.INotificationRepository
	sms              interfaces.ISMSNotifier
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(
	repo interfaces.IServiceRepository,
	customerRepo interfaces.ICustomerRepository,
	deviceRepo interfaces.IDeviceRepository,
	notificationRepo interfaces.INotificationRepository,
	sms interfaces.ISMSNotifier,
) *ServiceUseCase {
	return &ServiceUseCase{
		repo:             repo,
		customerRepo:     customerRepo,
		deviceRepo:       deviceRepo,
		notificationRepo: notificationRepo,
		sms:              sms,
	}
}

func (u *ServiceUseCase) Create(ctx context.Context, in ServiceInput) (entities.Service, error) {
	s, err := buildService(in)
	if err != nil {
		return entities.Service{}, err
	}
	if s.Status == "" {
		s.Status = entities.ServiceStatusWaiting
	}
	customer, device, err := u.loadParties(ctx, s.CustomerID, s.DeviceID)
	if err != nil {
		return entities.Service{}, err
	}

	now := time.Now().UTC()
	s.ID = uuid.NewString()
	s.CreatedAt = now
	s.UpdatedAt = now
	stampStatus(&s, now)

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		return entities.Service{}, err
	}
	logger.For("service", "usecase").WithFields(map[string]interface{}{
		"service_id": created.ID,
		"total_cost": created.TotalCost,
	}).Info("[service][usecase] created")

	if created.Status == entities.ServiceStatusCompleted {
		u.announceCompletion(ctx, created, customer, device)
	}
	return created, nil
}

func (u *ServiceUseCase) List(ctx context.Context, f ServiceFilter) ([]entities.Service, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Service, 0, len(all))
	for _, s := range all {
		if f.Status != "" && s.Status != f.Status {
			continue
		}
		if f.CustomerID != "" && s.CustomerID != f.CustomerID {
			continue
		}
		if f.DeviceID != "" && s.DeviceID != f.DeviceID {
			continue
		}
		fields := []string{s.Description}
		for _, p := range s.Parts {
			fields = append(fields, p.Name)
		}
		if !matchesSearch(f.Search, fields...) {
			continue
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (u *ServiceUseCase) GetByID(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

// Update replaces the editable fields and recomputes the total. The status
// is kept; it only moves through ChangeStatus.
func (u *ServiceUseCase) Update(ctx context.Context, id string, in ServiceInput) (entities.Service, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if current.Status == entities.ServiceStatusDelivered {
		return entities.Service{}, ErrServiceDelivered
	}
	in.Status = ""
	s, err := buildService(in)
	if err != nil {
		return entities.Service{}, err
	}
	if s.CustomerID != current.CustomerID || s.DeviceID != current.DeviceID {
		if _, _, err := u.loadParties(ctx, s.CustomerID, s.DeviceID); err != nil {
			return entities.Service{}, err
		}
	}
	s.ID = current.ID
	s.Status = current.Status
	s.CreatedAt = current.CreatedAt
	s.CompletedAt = current.CompletedAt
	s.DeliveredAt = current.DeliveredAt
	s.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, s)
	if err != nil {
		return entities.Service{}, err
	}
	if updated.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return updated, nil
}

func (u *ServiceUseCase) ChangeStatus(ctx context.Context, id string, status entities.ServiceStatus) (entities.Service, error) {
	if !status.Valid() {
		return entities.Service{}, ErrInvalidServiceStatus
	}
	s, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.Status == status {
		return s, nil
	}
	if s.Status == entities.ServiceStatusDelivered {
		return entities.Service{}, ErrServiceDelivered
	}

	now := time.Now().UTC()
	previous := s.Status
	s.Status = status
	s.UpdatedAt = now
	stampStatus(&s, now)

	updated, err := u.repo.Update(ctx, s)
	if err != nil {
		return entities.Service{}, err
	}
	if updated.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	log := logger.For("service", "usecase").WithFields(map[string]interface{}{
		"service_id": updated.ID,
		"from":       previous,
		"to":         status,
	})
	log.Info("[service][usecase] status changed")

	if status == entities.ServiceStatusCompleted {
		u.notifyCompleted(ctx, updated)
	}
	return updated, nil
}

func (u *ServiceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServiceID
	}
	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrServiceNotFound
	}
	return nil
}

// notifyCompleted records the in-app notification and texts the customer.
// Failures are logged only; the status change already happened.
func (u *ServiceUseCase) notifyCompleted(ctx context.Context, s entities.Service) {
	customer, device, err := u.loadParties(ctx, s.CustomerID, s.DeviceID)
	if err != nil {
		logger.For("service", "usecase").WithField("service_id", s.ID).WithError(err).
			Warn("[service][usecase] could not load customer/device for notification")
	}
	u.announceCompletion(ctx, s, customer, device)
}

func (u *ServiceUseCase) announceCompletion(ctx context.Context, s entities.Service, customer entities.Customer, device entities.Device) {
	log := logger.For("service", "usecase").WithField("service_id", s.ID)

	label := device.Label()
	if label == "" {
		label = "aparelho"
	}

	if u.notificationRepo != nil {
		n := entities.Notification{
			ID:        uuid.NewString(),
			Title:     "Serviço concluído",
			Message:   fmt.Sprintf("O serviço do %s de %s foi concluído.", label, customer.Name),
			Timestamp: time.Now().UTC(),
			Link:      "/services/" + s.ID,
		}
		if strings.TrimSpace(customer.Name) == "" {
			n.Message = fmt.Sprintf("O serviço do %s foi concluído.", label)
		}
		if _, err := u.notificationRepo.Create(ctx, n); err != nil {
			log.WithError(err).Error("[service][usecase] notification create failed")
		}
	}

	if u.sms == nil || customer.Phone == "" {
		return
	}
	body := fmt.Sprintf("Olá %s, seu %s está pronto para retirada.", firstName(customer.Name), label)
	if err := u.sms.Send(ctx, customer.Phone, body); err != nil {
		log.WithError(err).Warn("[service][usecase] sms failed")
	}
}

// loadParties checks that both records exist and that the device belongs to
// the customer.
func (u *ServiceUseCase) loadParties(ctx context.Context, customerID, deviceID string) (entities.Customer, entities.Device, error) {
	customer, err := u.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return entities.Customer{}, entities.Device{}, err
	}
	if customer.ID == "" {
		return entities.Customer{}, entities.Device{}, ErrServiceCustomerNotFound
	}
	device, err := u.deviceRepo.GetByID(ctx, deviceID)
	if err != nil {
		return customer, entities.Device{}, err
	}
	if device.ID == "" {
		return customer, entities.Device{}, ErrServiceDeviceNotFound
	}
	if device.Owner != customer.ID {
		return customer, device, ErrDeviceNotOwnedByCustomer
	}
	return customer, device, nil
}

func stampStatus(s *entities.Service, now time.Time) {
	switch s.Status {
	case entities.ServiceStatusCompleted:
		if s.CompletedAt == nil {
			s.CompletedAt = &now
		}
	case entities.ServiceStatusDelivered:
		if s.CompletedAt == nil {
			s.CompletedAt = &now
		}
		s.DeliveredAt = &now
	}
}

func buildService(in ServiceInput) (entities.Service, error) {
	s := entities.Service{
		CustomerID:  strings.TrimSpace(in.CustomerID),
		DeviceID:    strings.TrimSpace(in.DeviceID),
		Description: strings.TrimSpace(in.Description),
		Status:      in.Status,
		LaborCost:   in.LaborCost,
		Parts:       make([]entities.Part, 0, len(in.Parts)),
	}
	if s.CustomerID == "" {
		return entities.Service{}, ErrServiceCustomerNotFound
	}
	if s.DeviceID == "" {
		return entities.Service{}, ErrServiceDeviceNotFound
	}
	if s.Description == "" {
		return entities.Service{}, ErrInvalidServiceDescription
	}
	if s.Status != "" && !s.Status.Valid() {
		return entities.Service{}, ErrInvalidServiceStatus
	}
	if s.LaborCost < 0 {
		return entities.Service{}, ErrInvalidLaborCost
	}
	for _, p := range in.Parts {
		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" || p.Price < 0 || p.Quantity < 1 {
			return entities.Service{}, fmt.Errorf("%w: %q", ErrInvalidPart, p.Name)
		}
		if strings.TrimSpace(p.ID) == "" {
			p.ID = uuid.NewString()
		}
		s.Parts = append(s.Parts, p)
	}
	s.TotalCost = s.ComputeTotal()
	return s, nil
}

func firstName(name string) string {
	if fields := strings.Fields(name); len(fields) > 0 {
		return fields[0]
	}
	return "cliente"
}
