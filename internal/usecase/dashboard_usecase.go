package usecase

import (
	"context"
	"time"

	"paulocell_pdv/internal/domain/entities"
	"paulocell_pdv/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// DashboardSummary is what the home screen shows.
type DashboardSummary struct {
	Customers           int
	Devices             int
	ServicesByStatus    map[entities.ServiceStatus]int
	OpenServices        int
	Revenue             float64
	RevenueThisMonth    float64
	LowStockItems       int
	InventoryValue      float64
	DocumentsByStatus   map[entities.FiscalDocumentStatus]int
	IssuedValue         float64
	UnreadNotifications int
	GeneratedAt         time.Time
}

type IDashboardUseCase interface {
	Summary(ctx context.Context) (DashboardSummary, error)
}

type DashboardUseCase struct {
	customers     interfaces.ICustomerRepository
	devices       interfaces.IDeviceRepository
	services      interfaces.IServiceRepository
	inventory     interfaces.IInventoryRepository
	documents     interfaces.IFiscalDocumentRepository
	notifications interfaces.INotificationRepository
	now           func() time.Time
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	customers interfaces.ICustomerRepository,
	devices interfaces.IDeviceRepository,
	services interfaces.IServiceRepository,
	inventory interfaces.IInventoryRepository,
	documents interfaces.IFiscalDocumentRepository,
	notifications interfaces.INotificationRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		customers:     customers,
		devices:       devices,
		services:      services,
		inventory:     inventory,
		documents:     documents,
		notifications: notifications,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (u *DashboardUseCase) Summary(ctx context.Context) (DashboardSummary, error) {
	now := u.now()
	out := DashboardSummary{
		ServicesByStatus:  map[entities.ServiceStatus]int{},
		DocumentsByStatus: map[entities.FiscalDocumentStatus]int{},
		GeneratedAt:       now,
	}

	customers, err := u.customers.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	out.Customers = len(customers)

	devices, err := u.devices.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	out.Devices = len(devices)

	services, err := u.services.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	revenue, monthRevenue := decimal.Zero, decimal.Zero
	for _, s := range services {
		out.ServicesByStatus[s.Status]++
		if s.Status.Open() {
			out.OpenServices++
		}
		if s.Status != entities.ServiceStatusDelivered {
			continue
		}
		total := decimal.NewFromFloat(s.TotalCost)
		revenue = revenue.Add(total)
		if s.DeliveredAt != nil && sameMonth(*s.DeliveredAt, now) {
			monthRevenue = monthRevenue.Add(total)
		}
	}
	out.Revenue = entities.RoundMoney(revenue)
	out.RevenueThisMonth = entities.RoundMoney(monthRevenue)

	items, err := u.inventory.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	stockValue := decimal.Zero
	for _, it := range items {
		if it.LowStock() {
			out.LowStockItems++
		}
		stockValue = stockValue.Add(it.StockValue())
	}
	out.InventoryValue = entities.RoundMoney(stockValue)

	docs, err := u.documents.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	issued := decimal.Zero
	for _, d := range docs {
		out.DocumentsByStatus[d.Status]++
		if d.Status == entities.FiscalDocumentEmitida {
			issued = issued.Add(decimal.NewFromFloat(d.Value))
		}
	}
	out.IssuedValue = entities.RoundMoney(issued)

	notifications, err := u.notifications.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	for _, n := range notifications {
		if !n.Read {
			out.UnreadNotifications++
		}
	}
	return out, nil
}

func sameMonth(a, b time.Time) bool {
	a, b = a.UTC(), b.UTC()
	return a.Year() == b.Year() && a.Month() == b.Month()
}
