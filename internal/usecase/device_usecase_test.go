package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"paulocell_pdv/internal/domain/entities"
	mock_interfaces "paulocell_pdv/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDeviceUseCase_Create(t *testing.T) {
	t.Run("defaults status and checks owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewDeviceUseCase(repo, customers)

		customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.Device) (entities.Device, error) {
				if d.ID == "" || d.Status != entities.DeviceStatusGood || d.Model != "A52" {
					t.Fatalf("unexpected device %+v", d)
				}
				return d, nil
			},
		)

		_, err := uc.Create(context.Background(), DeviceInput{Owner: " c-1 ", Brand: "Samsung", Model: " A52 ", Type: entities.DeviceTypeCellphone})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("owner missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		customers.EXPECT().GetByID(gomock.Any(), "c-9").Return(entities.Customer{}, nil)

		_, err := NewDeviceUseCase(nil, customers).Create(context.Background(), DeviceInput{Owner: "c-9", Model: "X", Type: entities.DeviceTypeTablet})
		if !errors.Is(err, ErrDeviceOwnerNotFound) {
			t.Fatalf("expected ErrDeviceOwnerNotFound, got %v", err)
		}
	})

	cases := []struct {
		name string
		in   DeviceInput
		want error
	}{
		{name: "no owner", in: DeviceInput{Model: "X", Type: entities.DeviceTypeTablet}, want: ErrInvalidDeviceOwner},
		{name: "no model", in: DeviceInput{Owner: "c-1", Type: entities.DeviceTypeTablet}, want: ErrInvalidDeviceModel},
		{name: "bad type", in: DeviceInput{Owner: "c-1", Model: "X", Type: "phone"}, want: ErrInvalidDeviceType},
		{name: "bad status", in: DeviceInput{Owner: "c-1", Model: "X", Type: entities.DeviceTypeTablet, Status: "broken"}, want: ErrInvalidDeviceStatus},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDeviceUseCase(nil, nil).Create(context.Background(), tc.in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestDeviceUseCase_ListFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
	uc := NewDeviceUseCase(repo, nil)
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().List(gomock.Any()).Return([]entities.Device{
		{ID: "d1", Owner: "c-1", Brand: "Apple", Model: "iPhone 12", Type: entities.DeviceTypeCellphone, Status: entities.DeviceStatusGood, CreatedAt: base},
		{ID: "d2", Owner: "c-1", Brand: "Samsung", Model: "Tab S7", Type: entities.DeviceTypeTablet, Status: entities.DeviceStatusDamaged, CreatedAt: base.Add(time.Hour)},
		{ID: "d3", Owner: "c-2", Brand: "Motorola", Model: "G8", Type: entities.DeviceTypeCellphone, Status: entities.DeviceStatusGood, CreatedAt: base.Add(2 * time.Hour)},
	}, nil).AnyTimes()

	all, _ := uc.List(context.Background(), DeviceFilter{})
	if len(all) != 3 || all[0].ID != "d3" {
		t.Fatalf("expected newest first, got %+v", all)
	}
	byOwner, _ := uc.List(context.Background(), DeviceFilter{Owner: "c-1"})
	if len(byOwner) != 2 {
		t.Fatalf("expected 2 devices for c-1, got %d", len(byOwner))
	}
	phones, _ := uc.List(context.Background(), DeviceFilter{Type: entities.DeviceTypeCellphone, Status: entities.DeviceStatusGood})
	if len(phones) != 2 {
		t.Fatalf("expected 2 good cellphones, got %d", len(phones))
	}
	search, _ := uc.List(context.Background(), DeviceFilter{Search: "iphone"})
	if len(search) != 1 || search[0].ID != "d1" {
		t.Fatalf("unexpected search result %+v", search)
	}
}

func TestDeviceUseCase_UpdateAndDelete(t *testing.T) {
	t.Run("owner change is checked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "d1").Return(entities.Device{ID: "d1", Owner: "c-1"}, nil)
		customers.EXPECT().GetByID(gomock.Any(), "c-2").Return(entities.Customer{}, nil)

		_, err := NewDeviceUseCase(repo, customers).Update(context.Background(), "d1", DeviceInput{Owner: "c-2", Model: "X", Type: entities.DeviceTypeOther})
		if !errors.Is(err, ErrDeviceOwnerNotFound) {
			t.Fatalf("expected ErrDeviceOwnerNotFound, got %v", err)
		}
	})

	t.Run("same owner skips lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "d1").Return(entities.Device{ID: "d1", Owner: "c-1"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d entities.Device) (entities.Device, error) { return d, nil })

		d, err := NewDeviceUseCase(repo, nil).Update(context.Background(), "d1", DeviceInput{Owner: "c-1", Model: "Y", Type: entities.DeviceTypeOther, Status: entities.DeviceStatusNotWorking})
		if err != nil || d.Model != "Y" || d.Status != entities.DeviceStatusNotWorking {
			t.Fatalf("unexpected result err=%v d=%+v", err, d)
		}
	})

	t.Run("delete missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDeviceRepository(ctrl)
		repo.EXPECT().Delete(gomock.Any(), "d1").Return(false, nil)

		if err := NewDeviceUseCase(repo, nil).Delete(context.Background(), "d1"); !errors.Is(err, ErrDeviceNotFound) {
			t.Fatalf("expected ErrDeviceNotFound, got %v", err)
		}
	})
}
