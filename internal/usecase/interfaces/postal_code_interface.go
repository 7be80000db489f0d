package interfaces

import (
	"context"
	"errors"

	"paulocell_pdv/internal/domain/entities"
)

// ErrPostalCodeUnknown is returned by lookup clients when the service answers
// that the CEP does not exist.
var ErrPostalCodeUnknown = errors.New("postal code unknown")

type IPostalCodeClient interface {
	Lookup(ctx context.Context, cep string) (entities.PostalAddress, error)
}

// IPostalCodeCache keeps resolved addresses; Get reports found=false on a miss.
type IPostalCodeCache interface {
	Get(ctx context.Context, cep string) (addr entities.PostalAddress, found bool, err error)
	Set(ctx context.Context, cep string, addr entities.PostalAddress) error
}
