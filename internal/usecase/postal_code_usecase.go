package usecase

import (
	"context"
	"errors"
	"fmt"

	"paulocell_pdv/internal/domain/entities"
	"paulocell_pdv/internal/infrastructure/logger"
	"paulocell_pdv/internal/usecase/interfaces"
)

var (
	ErrPostalCodeNotFound     = errors.New("postal code not found")
	ErrPostalCodeLookupFailed = errors.New("postal code lookup failed")
)

type IPostalCodeUseCase interface {
	Lookup(ctx context.Context, cep string) (entities.PostalAddress, error)
}

// PostalCodeUseCase resolves a CEP through the lookup client. cache may be nil.
type PostalCodeUseCase struct {
	client interfaces.IPostalCodeClient
	cache  interfaces.IPostalCodeCache
}

var _ IPostalCodeUseCase = (*PostalCodeUseCase)(nil)

func NewPostalCodeUseCase(client interfaces.IPostalCodeClient, cache interfaces.IPostalCodeCache) *PostalCodeUseCase {
	return &PostalCodeUseCase{client: client, cache: cache}
}

func (u *PostalCodeUseCase) Lookup(ctx context.Context, cep string) (entities.PostalAddress, error) {
	log := logger.For("postal_code", "usecase")
	digits, err := normalizePostalCode(cep)
	if err != nil {
		return entities.PostalAddress{}, err
	}

	if u.cache != nil {
		addr, found, err := u.cache.Get(ctx, digits)
		if err != nil {
			log.WithError(err).Warn("[cep][usecase] cache read failed")
		} else if found {
			return addr, nil
		}
	}

	addr, err := u.client.Lookup(ctx, digits)
	if errors.Is(err, interfaces.ErrPostalCodeUnknown) {
		return entities.PostalAddress{}, ErrPostalCodeNotFound
	}
	if err != nil {
		log.WithError(err).WithField("cep", digits).Error("[cep][usecase] lookup failed")
		return entities.PostalAddress{}, fmt.Errorf("%w: %v", ErrPostalCodeLookupFailed, err)
	}
	addr.PostalCode = digits

	if u.cache != nil {
		if err := u.cache.Set(ctx, digits, addr); err != nil {
			log.WithError(err).Warn("[cep][usecase] cache write failed")
		}
	}
	return addr, nil
}
