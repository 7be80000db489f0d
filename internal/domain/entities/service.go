package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceStatus represents the lifecycle of a repair order.
type ServiceStatus string

const (
	ServiceStatusWaiting    ServiceStatus = "waiting"
	ServiceStatusInProgress ServiceStatus = "in_progress"
	ServiceStatusCompleted  ServiceStatus = "completed"
	ServiceStatusDelivered  ServiceStatus = "delivered"
)

func (s ServiceStatus) Valid() bool {
	switch s {
	case ServiceStatusWaiting, ServiceStatusInProgress, ServiceStatusCompleted, ServiceStatusDelivered:
		return true
	}
	return false
}

// Open reports whether the device is still in the shop's hands.
func (s ServiceStatus) Open() bool {
	return s == ServiceStatusWaiting || s == ServiceStatusInProgress
}

// Label is the Portuguese name shown on receipts and exports.
func (s ServiceStatus) Label() string {
	switch s {
	case ServiceStatusWaiting:
		return "Aguardando"
	case ServiceStatusInProgress:
		return "Em andamento"
	case ServiceStatusCompleted:
		return "Concluído"
	case ServiceStatusDelivered:
		return "Entregue"
	}
	return string(s)
}

// Part is a replacement part embedded in a service.
type Part struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Service is a repair order for one device of one customer.
//
// TotalCost is derived: sum of part price x quantity plus LaborCost.
// It is recomputed on every write and never trusted from input.
type Service struct {
	ID          string        `json:"id"`
	CustomerID  string        `json:"customerId"`
	DeviceID    string        `json:"deviceId"`
	Description string        `json:"description"`
	Status      ServiceStatus `json:"status"`
	Parts       []Part        `json:"parts"`
	LaborCost   float64       `json:"laborCost"`
	TotalCost   float64       `json:"totalCost"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	CompletedAt *time.Time    `json:"completedAt,omitempty"`
	DeliveredAt *time.Time    `json:"deliveredAt,omitempty"`
}

func (s Service) RecordID() string { return s.ID }

// PartsCost is the sum of price x quantity over all parts.
func (s Service) PartsCost() decimal.Decimal {
	total := decimal.Zero
	for _, p := range s.Parts {
		total = total.Add(decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(p.Quantity))))
	}
	return total
}

// ComputeTotal returns parts cost plus labor, rounded to cents.
func (s Service) ComputeTotal() float64 {
	return RoundMoney(s.PartsCost().Add(decimal.NewFromFloat(s.LaborCost)))
}
