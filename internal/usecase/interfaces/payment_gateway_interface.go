package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway charges a finished repair. requestPayload is the provider's
// own JSON body; the raw response is stored on the Payment record.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
