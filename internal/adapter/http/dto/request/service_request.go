package request

import (
	"paulocell_pdv/internal/domain/entities"
	"paulocell_pdv/internal/usecase"
)

type PartRequest struct {
	ID       string  `json:"id"`
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"gte=0"`
	Quantity int     `json:"quantity" binding:"gte=1"`
}

// ServiceRequest is used for create and update. Status is optional on
// create (defaults to waiting) and ignored on update.
type ServiceRequest struct {
	CustomerID  string        `json:"customerId" binding:"required"`
	DeviceID    string        `json:"deviceId" binding:"required"`
	Description string        `json:"description" binding:"required"`
	Status      string        `json:"status" binding:"omitempty,oneof=waiting in_progress completed delivered"`
	Parts       []PartRequest `json:"parts" binding:"dive"`
	LaborCost   float64       `json:"laborCost" binding:"gte=0"`
}

func (r ServiceRequest) ToInput() usecase.ServiceInput {
	parts := make([]entities.Part, 0, len(r.Parts))
	for _, p := range r.Parts {
		parts = append(parts, entities.Part{ID: p.ID, Name: p.Name, Price: p.Price, Quantity: p.Quantity})
	}
	return usecase.ServiceInput{
		CustomerID:  r.CustomerID,
		DeviceID:    r.DeviceID,
		Description: r.Description,
		Status:      entities.ServiceStatus(r.Status),
		Parts:       parts,
		LaborCost:   r.LaborCost,
	}
}

type ServiceStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=waiting in_progress completed delivered"`
}
