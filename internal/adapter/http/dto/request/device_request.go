package request

import (
	"paulocell_pdv/internal/domain/entities"
	"paulocell_pdv/internal/usecase"
)

type DeviceRequest struct {
	Owner        string `json:"owner" binding:"required"`
	Brand        string `json:"brand"`
	Model        string `json:"model" binding:"required"`
	Type         string `json:"type" binding:"required,oneof=cellphone tablet notebook smartwatch other"`
	Status       string `json:"status" binding:"required,oneof=good damaged not_working"`
	SerialNumber string `json:"serialNumber"`
	Notes        string `json:"notes"`
}

func (r DeviceRequest) ToInput() usecase.DeviceInput {
	return usecase.DeviceInput{
		Owner:        r.Owner,
		Brand:        r.Brand,
		Model:        r.Model,
		Type:         entities.DeviceType(r.Type),
		Status:       entities.DeviceStatus(r.Status),
		SerialNumber: r.SerialNumber,
		Notes:        r.Notes,
	}
}
