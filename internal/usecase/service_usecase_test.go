package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"paulocell_pdv/internal/domain/entities"
	mock_interfaces "paulocell_pdv/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	repo          *mock_interfaces.MockIServiceRepository
	customers     *mock_interfaces.MockICustomerRepository
	devices       *mock_interfaces.MockIDeviceRepository
	notifications *mock_interfaces.MockINotificationRepository
	sms           *mock_interfaces.MockISMSNotifier
}

func newServiceUseCase(t *testing.T) (*ServiceUseCase, serviceMocks) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		repo:          mock_interfaces.NewMockIServiceRepository(ctrl),
		customers:     mock_interfaces.NewMockICustomerRepository(ctrl),
		devices:       mock_interfaces.NewMockIDeviceRepository(ctrl),
		notifications: mock_interfaces.NewMockINotificationRepository(ctrl),
		sms:           mock_interfaces.NewMockISMSNotifier(ctrl),
	}
	return NewServiceUseCase(m.repo, m.customers, m.devices, m.notifications, m.sms), m
}

func (m serviceMocks) expectParties(customer entities.Customer, device entities.Device) {
	m.customers.EXPECT().GetByID(gomock.Any(), customer.ID).Return(customer, nil)
	m.devices.EXPECT().GetByID(gomock.Any(), device.ID).Return(device, nil)
}

func TestServiceUseCase_Create(t *testing.T) {
	t.Run("computes total and defaults status", func(t *testing.T) {
		uc, m := newServiceUseCase(t)
		m.expectParties(entities.Customer{ID: "c-1"}, entities.Device{ID: "d-1", Owner: "c-1"})
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.Status != entities.ServiceStatusWaiting || s.TotalCost != 280.2 {
					t.Fatalf("unexpected service %+v", s)
				}
				if s.Parts[0].ID == "" || s.Parts[1].ID != "keep" {
					t.Fatalf("part ids must be generated only when missing: %+v", s.Parts)
				}
				return s, nil
			},
		)

		_, err := uc.Create(context.Background(), ServiceInput{
			CustomerID:  "c-1",
			DeviceID:    "d-1",
			Description: "Troca de tela",
			Parts: []entities.Part{
				{Name: "Tela", Price: 199.9, Quantity: 1},
				{ID: "keep", Name: "Parafuso", Price: 0.1, Quantity: 3},
			},
			LaborCost: 80,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("device of another customer", func(t *testing.T) {
		uc, m := newServiceUseCase(t)
		m.expectParties(entities.Customer{ID: "c-1"}, entities.Device{ID: "d-1", Owner: "c-2"})

		_, err := uc.Create(context.Background(), ServiceInput{CustomerID: "c-1", DeviceID: "d-1", Description: "x"})
		if !errors.Is(err, ErrDeviceNotOwnedByCustomer) {
			t.Fatalf("expected ErrDeviceNotOwnedByCustomer, got %v", err)
		}
	})

	t.Run("created as delivered is stamped", func(t *testing.T) {
		uc, m := newServiceUseCase(t)
		m.expectParties(entities.Customer{ID: "c-1"}, entities.Device{ID: "d-1", Owner: "c-1"})
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.Service) (entities.Service, error) { return s, nil })

		s, err := uc.Create(context.Background(), ServiceInput{CustomerID: "c-1", DeviceID: "d-1", Description: "x", Status: entities.ServiceStatusDelivered})
		if err != nil || s.DeliveredAt == nil || s.CompletedAt == nil {
			t.Fatalf("expected delivery stamps, err=%v s=%+v", err, s)
		}
	})

	t.Run("created as completed notifies and texts the customer", func(t *testing.T) {
		uc, m := newServiceUseCase(t)
		m.expectParties(
			entities.Customer{ID: "c-1", Name: "João Lima", Phone: "+5511912345678"},
			entities.Device{ID: "d-1", Owner: "c-1", Brand: "Motorola", Model: "G8"},
		)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.Service) (entities.Service, error) { return s, nil })
		m.notifications.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.Notification) (entities.Notification, error) {
				if n.Title != "Serviço concluído" || !strings.HasPrefix(n.Link, "/services/") || !strings.Contains(n.Message, "Motorola G8") {
					t.Fatalf("unexpected notification %+v", n)
				}
				return n, nil
			},
		)
		m.sms.EXPECT().Send(gomock.Any(), "+5511912345678", "Olá João, seu Motorola G8 está pronto para retirada.").Return(nil)

		s, err := uc.Create(context.Background(), ServiceInput{CustomerID: "c-1", DeviceID: "d-1", Description: "x", Status: entities.ServiceStatusCompleted})
		if err != nil || s.CompletedAt == nil {
			t.Fatalf("unexpected result err=%v s=%+v", err, s)
		}
	})

	cases := []struct {
		name string
		in   ServiceInput
		want error
	}{
		{name: "no customer", in: ServiceInput{DeviceID: "d", Description: "x"}, want: ErrServiceCustomerNotFound},
		{name: "no device", in: ServiceInput{CustomerID: "c", Description: "x"}, want: ErrServiceDeviceNotFound},
		{name: "no description", in: ServiceInput{CustomerID: "c", DeviceID: "d"}, want: ErrInvalidServiceDescription},
		{name: "bad status", in: ServiceInput{CustomerID: "c", DeviceID: "d", Description: "x", Status: "done"}, want: ErrInvalidServiceStatus},
		{name: "negative labor", in: ServiceInput{CustomerID: "c", DeviceID: "d", Description: "x", LaborCost: -1}, want: ErrInvalidLaborCost},
		{name: "zero quantity part", in: ServiceInput{CustomerID: "c", DeviceID: "d", Description: "x", Parts: []entities.Part{{Name: "Tela", Price: 1}}}, want: ErrInvalidPart},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewServiceUseCase(nil, nil, nil, nil, nil).Create(context.Background(), tc.in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestServiceUseCase_Update(t *testing.T) {
	t.Run("keeps status", func(t *testing.T) {
		uc, m := newServiceUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Service{ID: "s-1", CustomerID: "c-1", DeviceID: "d-1", Status: entities.ServiceStatusInProgress}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.Service) (entities.Service, error) { return s, nil })

		s, err := uc.Update(context.Background(), "s-1", ServiceInput{CustomerID: "c-1", DeviceID: "d-1", Description: "novo", Status: entities.ServiceStatusCompleted, LaborCost: 10})
		if err != nil || s.Status != entities.ServiceStatusInProgress || s.TotalCost != 10 {
			t.Fatalf("unexpected result err=%v s=%+v", err, s)
		}
	})

	t.Run("delivered is frozen", func(t *testing.T) {
		uc, m := newServiceUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Service{ID: "s-1", Status: entities.ServiceStatusDelivered}, nil)

		_, err := uc.Update(context.Background(), "s-1", ServiceInput{CustomerID: "c-1", DeviceID: "d-1", Description: "x"})
		if !errors.Is(err, ErrServiceDelivered) {
			t.Fatalf("expected ErrServiceDelivered, got %v", err)
		}
	})
}

func TestServiceUseCase_ChangeStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		_, err := NewServiceUseCase(nil, nil, nil, nil, nil).ChangeStatus(context.Background(), "s-1", "done")
		if !errors.Is(err, ErrInvalidServiceStatus) {
			t.Fatalf("expected ErrInvalidServiceStatus, got %v", err)
		}
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		uc, m := newServiceUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Service{ID: "s-1", Status: entities.ServiceStatusWaiting}, nil)

		s, err := uc.ChangeStatus(context.Background(), "s-1", entities.ServiceStatusWaiting)
		if err != nil || s.Status != entities.ServiceStatusWaiting {
			t.Fatalf("unexpected result err=%v s=%+v", err, s)
		}
	})

	t.Run("completion notifies and texts the customer", func(t *testing.T) {
		uc, m := newServiceUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Service{ID: "s-1", CustomerID: "c-1", DeviceID: "d-1", Status: entities.ServiceStatusInProgress}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.Status != entities.ServiceStatusCompleted || s.CompletedAt == nil {
					t.Fatalf("completion not stamped: %+v", s)
				}
				return s, nil
			},
		)
		m.expectParties(
			entities.Customer{ID: "c-1", Name: "Maria Souza", Phone: "+5511987654321"},
			entities.Device{ID: "d-1", Owner: "c-1", Brand: "Samsung", Model: "A52"},
		)
		m.notifications.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.Notification) (entities.Notification, error) {
				if n.Title != "Serviço concluído" || n.Link != "/services/s-1" || n.Read {
					t.Fatalf("unexpected notification %+v", n)
				}
				if !strings.Contains(n.Message, "Samsung A52") || !strings.Contains(n.Message, "Maria Souza") {
					t.Fatalf("unexpected message %q", n.Message)
				}
				return n, nil
			},
		)
		m.sms.EXPECT().Send(gomock.Any(), "+5511987654321", "Olá Maria, seu Samsung A52 está pronto para retirada.").Return(errors.New("twilio down"))

		s, err := uc.ChangeStatus(context.Background(), "s-1", entities.ServiceStatusCompleted)
		if err != nil || s.Status != entities.ServiceStatusCompleted {
			t.Fatalf("sms failures must not fail the status change, err=%v", err)
		}
	})

	t.Run("delivered cannot move back", func(t *testing.T) {
		uc, m := newServiceUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Service{ID: "s-1", Status: entities.ServiceStatusDelivered}, nil)

		_, err := uc.ChangeStatus(context.Background(), "s-1", entities.ServiceStatusInProgress)
		if !errors.Is(err, ErrServiceDelivered) {
			t.Fatalf("expected ErrServiceDelivered, got %v", err)
		}
	})
}

func TestServiceUseCase_List(t *testing.T) {
	uc, m := newServiceUseCase(t)
	m.repo.EXPECT().List(gomock.Any()).Return([]entities.Service{
		{ID: "s1", CustomerID: "c-1", Description: "Troca de bateria", Status: entities.ServiceStatusWaiting},
		{ID: "s2", CustomerID: "c-2", Description: "Limpeza", Status: entities.ServiceStatusCompleted, Parts: []entities.Part{{Name: "Conector"}}},
	}, nil).AnyTimes()

	byStatus, _ := uc.List(context.Background(), ServiceFilter{Status: entities.ServiceStatusCompleted})
	if len(byStatus) != 1 || byStatus[0].ID != "s2" {
		t.Fatalf("unexpected status filter %+v", byStatus)
	}
	byPart, _ := uc.List(context.Background(), ServiceFilter{Search: "conector"})
	if len(byPart) != 1 || byPart[0].ID != "s2" {
		t.Fatalf("search must look into part names, got %+v", byPart)
	}
	byCustomer, _ := uc.List(context.Background(), ServiceFilter{CustomerID: "c-1"})
	if len(byCustomer) != 1 || byCustomer[0].ID != "s1" {
		t.Fatalf("unexpected customer filter %+v", byCustomer)
	}
}
