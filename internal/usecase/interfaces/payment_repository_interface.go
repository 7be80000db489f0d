package interfaces

import (
	"context"

	"paulocell_pdv/internal/domain/entities"
)

// IPaymentRepository abstracts persistence for Payment.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByServiceID(ctx context.Context, serviceID string) ([]entities.Payment, error)
}
