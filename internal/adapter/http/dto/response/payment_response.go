package response

import (
	"time"

	"paulocell_pdv/internal/domain/entities"
)

type PaymentResponse struct {
	ID              string                 `json:"id"`
	ServiceID       string                 `json:"serviceId"`
	Date            time.Time              `json:"date"`
	Status          string                 `json:"status"`
	Amount          float64                `json:"amount"`
	Method          string                 `json:"method,omitempty"`
	ProviderPayload map[string]interface{} `json:"providerPayload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:              p.ID,
		ServiceID:       p.ServiceID,
		Date:            p.Date,
		Status:          string(p.Status),
		Amount:          p.Amount,
		Method:          p.Method,
		ProviderPayload: p.ProviderPayload,
	}
}

func FromPayments(ps []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPayment(p))
	}
	return out
}
