package interfaces

import (
	"context"
	"errors"

	"paulocell_pdv/internal/domain/entities"
)

// ErrFiscalGatewayNotConfigured is returned when no issuance API is set up;
// documents are then kept as pending.
var ErrFiscalGatewayNotConfigured = errors.New("fiscal gateway not configured")

// FiscalIssueResult is what the issuance API reports for an accepted document.
type FiscalIssueResult struct {
	ProviderRef string
	AccessKey   string
	Status      string
}

// IFiscalGateway issues and cancels electronic invoices on the external API.
// The API key comes from the company settings at call time.
type IFiscalGateway interface {
	Issue(ctx context.Context, apiKey string, doc entities.FiscalDocument) (FiscalIssueResult, error)
	Cancel(ctx context.Context, apiKey string, providerRef string, reason string) error
}
