package request

import (
	"strings"
	"time"

	"paulocell_pdv/internal/domain/entities"
	"paulocell_pdv/internal/usecase"
)

type FiscalDocumentItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"gt=0"`
	UnitPrice   float64 `json:"unitPrice" binding:"gte=0"`
}

type FiscalDocumentRequest struct {
	Type       string                      `json:"type" binding:"required,oneof=nfe nfce nfse"`
	CustomerID string                      `json:"customerId"`
	Items      []FiscalDocumentItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r FiscalDocumentRequest) ToInput() usecase.FiscalDocumentInput {
	items := make([]entities.FiscalDocumentItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.FiscalDocumentItem{Description: it.Description, Quantity: it.Quantity, UnitPrice: it.UnitPrice})
	}
	return usecase.FiscalDocumentInput{
		Type:       entities.FiscalDocumentType(r.Type),
		CustomerID: r.CustomerID,
		Items:      items,
	}
}

// CancelFiscalDocumentRequest is optional; an empty body cancels without reason.
type CancelFiscalDocumentRequest struct {
	Reason string `json:"reason" binding:"omitempty,max=255"`
}

// FiscalDocumentQuery binds the list filters. from/to are dates (yyyy-mm-dd);
// to is inclusive.
type FiscalDocumentQuery struct {
	Type   string `form:"type" binding:"omitempty,oneof=nfe nfce nfse"`
	Status string `form:"status" binding:"omitempty,oneof=Emitida Cancelada Pendente"`
	Search string `form:"search"`
	From   string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To     string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

func (q FiscalDocumentQuery) ToFilter() usecase.FiscalDocumentFilter {
	f := usecase.FiscalDocumentFilter{
		Type:   entities.FiscalDocumentType(q.Type),
		Status: entities.FiscalDocumentStatus(q.Status),
		Search: strings.TrimSpace(q.Search),
	}
	if t, err := time.Parse("2006-01-02", q.From); err == nil {
		f.From = &t
	}
	if t, err := time.Parse("2006-01-02", q.To); err == nil {
		end := t.Add(24*time.Hour - time.Nanosecond)
		f.To = &end
	}
	return f
}
