package usecase

import (
	"context"
	"testing"
	"time"

	"paulocell_pdv/internal/adapter/persistence/repository"
	"paulocell_pdv/internal/adapter/persistence/store"
	"paulocell_pdv/internal/domain/entities"
)

func TestDashboardUseCase_Summary(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	keys := repository.NewKeys("test_")
	customers := repository.NewCustomerRepository(st, keys)
	devices := repository.NewDeviceRepository(st, keys)
	services := repository.NewServiceRepository(st, keys)
	inventory := repository.NewInventoryRepository(st, keys)
	documents := repository.NewFiscalDocumentRepository(st, keys)
	notifications := repository.NewNotificationRepository(st, keys)

	now := time.Date(2026, 5, 20, 12, 0, 0, 0, time.UTC)
	lastMonth := now.AddDate(0, -1, 0)

	_, _ = customers.Create(ctx, entities.Customer{ID: "c1", Name: "A"})
	_, _ = customers.Create(ctx, entities.Customer{ID: "c2", Name: "B"})
	_, _ = devices.Create(ctx, entities.Device{ID: "d1", Owner: "c1"})
	_, _ = services.Create(ctx, entities.Service{ID: "s1", Status: entities.ServiceStatusWaiting, TotalCost: 10})
	_, _ = services.Create(ctx, entities.Service{ID: "s2", Status: entities.ServiceStatusInProgress, TotalCost: 20})
	_, _ = services.Create(ctx, entities.Service{ID: "s3", Status: entities.ServiceStatusDelivered, TotalCost: 100.1, DeliveredAt: &now})
	_, _ = services.Create(ctx, entities.Service{ID: "s4", Status: entities.ServiceStatusDelivered, TotalCost: 50.2, DeliveredAt: &lastMonth})
	_, _ = inventory.Create(ctx, entities.InventoryItem{ID: "i1", Price: 10.5, CurrentStock: 2, MinimumStock: 3})
	_, _ = inventory.Create(ctx, entities.InventoryItem{ID: "i2", Price: 1.25, CurrentStock: 4, MinimumStock: 1})
	_, _ = documents.Create(ctx, entities.FiscalDocument{ID: "f1", Status: entities.FiscalDocumentEmitida, Value: 99.9})
	_, _ = documents.Create(ctx, entities.FiscalDocument{ID: "f2", Status: entities.FiscalDocumentCancelada, Value: 10})
	_, _ = notifications.Create(ctx, entities.Notification{ID: "n1"})
	_, _ = notifications.Create(ctx, entities.Notification{ID: "n2", Read: true})

	uc := NewDashboardUseCase(customers, devices, services, inventory, documents, notifications)
	uc.now = func() time.Time { return now }

	s, err := uc.Summary(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Customers != 2 || s.Devices != 1 || s.OpenServices != 2 {
		t.Fatalf("unexpected counts %+v", s)
	}
	if s.ServicesByStatus[entities.ServiceStatusDelivered] != 2 {
		t.Fatalf("unexpected status counts %+v", s.ServicesByStatus)
	}
	if s.Revenue != 150.3 || s.RevenueThisMonth != 100.1 {
		t.Fatalf("unexpected revenue %v / %v", s.Revenue, s.RevenueThisMonth)
	}
	if s.LowStockItems != 1 || s.InventoryValue != 26 {
		t.Fatalf("unexpected inventory figures %d / %v", s.LowStockItems, s.InventoryValue)
	}
	if s.IssuedValue != 99.9 || s.DocumentsByStatus[entities.FiscalDocumentCancelada] != 1 {
		t.Fatalf("unexpected document figures %+v", s)
	}
	if s.UnreadNotifications != 1 || !s.GeneratedAt.Equal(now) {
		t.Fatalf("unexpected notification figures %+v", s)
	}
}

func TestDashboardUseCase_EmptyStore(t *testing.T) {
	st := store.NewMemoryStore()
	keys := repository.NewKeys("test_")
	uc := NewDashboardUseCase(
		repository.NewCustomerRepository(st, keys),
		repository.NewDeviceRepository(st, keys),
		repository.NewServiceRepository(st, keys),
		repository.NewInventoryRepository(st, keys),
		repository.NewFiscalDocumentRepository(st, keys),
		repository.NewNotificationRepository(st, keys),
	)
	s, err := uc.Summary(context.Background())
	if err != nil || s.Customers != 0 || s.Revenue != 0 || s.ServicesByStatus == nil {
		t.Fatalf("unexpected empty summary err=%v s=%+v", err, s)
	}
}
