package usecase

import (
	"context"
	"errors"
	"testing"

	"paulocell_pdv/internal/domain/entities"
	"paulocell_pdv/internal/usecase/interfaces"
	mock_interfaces "paulocell_pdv/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPostalCodeUseCase_Lookup(t *testing.T) {
	addr := entities.PostalAddress{Street: "Avenida Paulista", City: "São Paulo", State: "SP"}

	t.Run("invalid cep", func(t *testing.T) {
		_, err := NewPostalCodeUseCase(nil, nil).Lookup(context.Background(), "123")
		if !errors.Is(err, ErrInvalidPostalCode) {
			t.Fatalf("expected ErrInvalidPostalCode, got %v", err)
		}
	})

	t.Run("cache hit skips the client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock_interfaces.NewMockIPostalCodeClient(ctrl)
		cache := mock_interfaces.NewMockIPostalCodeCache(ctrl)
		cache.EXPECT().Get(gomock.Any(), "01310100").Return(addr, true, nil)

		got, err := NewPostalCodeUseCase(client, cache).Lookup(context.Background(), "01310-100")
		if err != nil || got.Street != addr.Street {
			t.Fatalf("unexpected result err=%v addr=%+v", err, got)
		}
	})

	t.Run("miss stores the result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock_interfaces.NewMockIPostalCodeClient(ctrl)
		cache := mock_interfaces.NewMockIPostalCodeCache(ctrl)
		cache.EXPECT().Get(gomock.Any(), "01310100").Return(entities.PostalAddress{}, false, errors.New("redis down"))
		client.EXPECT().Lookup(gomock.Any(), "01310100").Return(addr, nil)
		cache.EXPECT().Set(gomock.Any(), "01310100", gomock.Any()).Return(nil)

		got, err := NewPostalCodeUseCase(client, cache).Lookup(context.Background(), "01310100")
		if err != nil || got.PostalCode != "01310100" {
			t.Fatalf("unexpected result err=%v addr=%+v", err, got)
		}
	})

	t.Run("unknown cep", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock_interfaces.NewMockIPostalCodeClient(ctrl)
		client.EXPECT().Lookup(gomock.Any(), "99999999").Return(entities.PostalAddress{}, interfaces.ErrPostalCodeUnknown)

		_, err := NewPostalCodeUseCase(client, nil).Lookup(context.Background(), "99999-999")
		if !errors.Is(err, ErrPostalCodeNotFound) {
			t.Fatalf("expected ErrPostalCodeNotFound, got %v", err)
		}
	})

	t.Run("upstream failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock_interfaces.NewMockIPostalCodeClient(ctrl)
		client.EXPECT().Lookup(gomock.Any(), "01310100").Return(entities.PostalAddress{}, errors.New("timeout"))

		_, err := NewPostalCodeUseCase(client, nil).Lookup(context.Background(), "01310100")
		if !errors.Is(err, ErrPostalCodeLookupFailed) {
			t.Fatalf("expected ErrPostalCodeLookupFailed, got %v", err)
		}
	})
}
