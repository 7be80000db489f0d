package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FiscalDocumentType is the Brazilian electronic invoice kind.
type FiscalDocumentType string

const (
	FiscalDocumentNFe  FiscalDocumentType = "nfe"
	FiscalDocumentNFCe FiscalDocumentType = "nfce"
	FiscalDocumentNFSe FiscalDocumentType = "nfse"
)

func (t FiscalDocumentType) Valid() bool {
	switch t {
	case FiscalDocumentNFe, FiscalDocumentNFCe, FiscalDocumentNFSe:
		return true
	}
	return false
}

// NumberPrefix is used for sequential document numbers (NFE-000001).
func (t FiscalDocumentType) NumberPrefix() string {
	return strings.ToUpper(string(t))
}

// FiscalDocumentStatus values are stored in Portuguese, as the shop's
// dashboards display them verbatim.
type FiscalDocumentStatus string

const (
	FiscalDocumentEmitida   FiscalDocumentStatus = "Emitida"
	FiscalDocumentCancelada FiscalDocumentStatus = "Cancelada"
	FiscalDocumentPendente  FiscalDocumentStatus = "Pendente"
)

func (s FiscalDocumentStatus) Valid() bool {
	switch s {
	case FiscalDocumentEmitida, FiscalDocumentCancelada, FiscalDocumentPendente:
		return true
	}
	return false
}

type FiscalDocumentItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// Total is quantity x unit price.
func (i FiscalDocumentItem) Total() decimal.Decimal {
	return decimal.NewFromFloat(i.Quantity).Mul(decimal.NewFromFloat(i.UnitPrice))
}

type FiscalDocument struct {
	ID           string               `json:"id"`
	Number       string               `json:"number"`
	Type         FiscalDocumentType   `json:"type"`
	CustomerID   string               `json:"customerId,omitempty"`
	CustomerName string               `json:"customerName,omitempty"`
	Items        []FiscalDocumentItem `json:"items"`
	Value        float64              `json:"value"`
	Status       FiscalDocumentStatus `json:"status"`
	AccessKey    string               `json:"accessKey,omitempty"`
	ProviderRef  string               `json:"providerRef,omitempty"`
	IssuedAt     time.Time            `json:"issuedAt"`
	CancelledAt  *time.Time           `json:"cancelledAt,omitempty"`
	CreatedAt    time.Time            `json:"createdAt"`
	DeletedAt    *time.Time           `json:"deletedAt,omitempty"`
}

func (d FiscalDocument) RecordID() string { return d.ID }

func (d FiscalDocument) WithDeletedAt(at *time.Time) FiscalDocument {
	d.DeletedAt = at
	return d
}

// ComputeValue sums all item totals, rounded to cents.
func (d FiscalDocument) ComputeValue() float64 {
	total := decimal.Zero
	for _, it := range d.Items {
		total = total.Add(it.Total())
	}
	return RoundMoney(total)
}
