package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// Payment records a charge of a repair service through the payment provider.
//
// ProviderPayloadRaw keeps the provider response body as-is for audit;
// ProviderPayload is the parsed form, handy when browsing the collection.
type Payment struct {
	ID        string        `json:"id"`
	ServiceID string        `json:"serviceId"`
	Date      time.Time     `json:"date"`
	Status    PaymentStatus `json:"status"`
	Amount    float64       `json:"amount"`
	Method    string        `json:"method,omitempty"`

	ProviderPayloadRaw json.RawMessage        `json:"providerPayloadRaw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"providerPayload,omitempty"`
}

func (p Payment) RecordID() string { return p.ID }
