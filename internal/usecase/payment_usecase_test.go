package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"paulocell_pdv/internal/domain/entities"
	mock_interfaces "paulocell_pdv/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type paymentMocks struct {
	repo      *mock_interfaces.MockIPaymentRepository
	services  *mock_interfaces.MockIServiceRepository
	customers *mock_interfaces.MockICustomerRepository
	gateway   *mock_interfaces.MockIPaymentGateway
}

func newPaymentUseCase(t *testing.T, mockMode bool) (*PaymentUseCase, paymentMocks) {
	ctrl := gomock.NewController(t)
	m := paymentMocks{
		repo:      mock_interfaces.NewMockIPaymentRepository(ctrl),
		services:  mock_interfaces.NewMockIServiceRepository(ctrl),
		customers: mock_interfaces.NewMockICustomerRepository(ctrl),
		gateway:   mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	return NewPaymentUseCase(m.repo, m.services, m.customers, m.gateway, mockMode), m
}

func completedService() entities.Service {
	return entities.Service{ID: "svc-1", CustomerID: "c-1", Status: entities.ServiceStatusCompleted, TotalCost: 77.2}
}

func TestPaymentUseCase_ChargeService_Validations(t *testing.T) {
	t.Run("empty service id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, false)
		_, err := uc.ChargeService(context.Background(), " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidPaymentServiceID) {
			t.Fatalf("expected ErrInvalidPaymentServiceID, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, false)
		_, err := uc.ChargeService(context.Background(), "svc-1", nil)
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, false)
		_, err := uc.ChargeService(context.Background(), "svc-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, false)
		_, err := uc.ChargeService(context.Background(), "svc-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})
}

func TestPaymentUseCase_ChargeService_ServiceChecks(t *testing.T) {
	t.Run("service repo error", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, false)
		m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{}, errors.New("db"))

		_, err := uc.ChargeService(context.Background(), "svc-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("service not found", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, false)
		m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{}, nil)

		_, err := uc.ChargeService(context.Background(), "svc-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("service still open", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, false)
		m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{ID: "svc-1", Status: entities.ServiceStatusInProgress}, nil)

		_, err := uc.ChargeService(context.Background(), "svc-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrServiceNotPayable) {
			t.Fatalf("expected ErrServiceNotPayable, got %v", err)
		}
	})
}

func TestPaymentUseCase_ChargeService_PayloadValidation(t *testing.T) {
	t.Run("missing payment_method_id", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, false)
		m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(completedService(), nil)
		m.customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1"}, nil)

		_, err := uc.ChargeService(context.Background(), "svc-1", json.RawMessage(`{"payer":{"email":"x@test.com"}}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("missing payer without customer email", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, false)
		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "")
		t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "")
		m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(completedService(), nil)
		m.customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1"}, nil)

		_, err := uc.ChargeService(context.Background(), "svc-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})
}

func TestPaymentUseCase_ChargeService_GatewayErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "customer not found", err: errors.New(`{"code":2002}`), want: ErrPaymentGatewayCustomerNotFound},
		{name: "invalid users", err: errors.New(`invalid users involved`), want: ErrPaymentGatewayInvalidUsers},
		{name: "unauthorized", err: errors.New(`{"error":"unauthorized"}`), want: ErrPaymentGatewayUnauthorized},
		{name: "bad request", err: errors.New(`{"status":400}`), want: ErrPaymentGatewayBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m := newPaymentUseCase(t, false)
			m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(completedService(), nil)
			m.customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1"}, nil)
			m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

			_, err := uc.ChargeService(context.Background(), "svc-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestPaymentUseCase_ChargeService_Success(t *testing.T) {
	cases := []struct {
		name           string
		providerStatus string
		want           entities.PaymentStatus
	}{
		{name: "approved", providerStatus: "approved", want: entities.PaymentStatusAprovado},
		{name: "rejected", providerStatus: "rejected", want: entities.PaymentStatusNegado},
		{name: "pending default", providerStatus: "in_process", want: entities.PaymentStatusPendente},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m := newPaymentUseCase(t, false)
			m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(completedService(), nil)
			m.customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1", Email: "maria@test.com"}, nil)

			m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
					var body map[string]any
					if err := json.Unmarshal(payload, &body); err != nil {
						t.Fatalf("payload should be valid json: %v", err)
					}
					if body["external_reference"] != "svc-1" {
						t.Fatalf("external_reference not set")
					}
					if body["transaction_amount"] != float64(77.2) {
						t.Fatalf("transaction_amount should come from the service total")
					}
					payer := body["payer"].(map[string]any)
					if payer["email"] != "maria@test.com" {
						t.Fatalf("expected customer email as payer, got %v", payer["email"])
					}
					return "pay-1", tc.providerStatus, json.RawMessage(`{"id":123}`), nil
				},
			)
			m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
				func(_ context.Context, p entities.Payment) (entities.Payment, error) {
					if p.ID != "pay-1" || p.ServiceID != "svc-1" || p.Status != tc.want || p.Amount != 77.2 {
						t.Fatalf("unexpected payment: %+v", p)
					}
					if p.Method != "pix" || p.Date.IsZero() {
						t.Fatalf("method and date must be set: %+v", p)
					}
					return p, nil
				},
			)

			res, err := uc.ChargeService(context.Background(), "svc-1", json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.want {
				t.Fatalf("expected status %s, got %s", tc.want, res.Status)
			}
		})
	}

	t.Run("mock mode accepts an empty payload", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, true)
		m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(completedService(), nil)
		m.customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1"}, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mock-1", "approved", json.RawMessage(`{}`), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil })

		res, err := uc.ChargeService(context.Background(), "svc-1", nil)
		if err != nil || res.Status != entities.PaymentStatusAprovado {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("repository create error", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, false)
		m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(completedService(), nil)
		m.customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1"}, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", json.RawMessage(`{"id":123}`), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Payment{}, errors.New("db-create"))

		_, err := uc.ChargeService(context.Background(), "svc-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		if err == nil || err.Error() != "db-create" {
			t.Fatalf("expected db-create error, got %v", err)
		}
	})
}

func TestPaymentUseCase_Getters(t *testing.T) {
	t.Run("GetByID invalid", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, false)
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("GetByID not found", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, false)
		m.repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Payment{}, nil)

		_, err := uc.GetByID(context.Background(), "id-1")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("GetByID success", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, false)
		m.repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Payment{ID: "id-1"}, nil)

		res, err := uc.GetByID(context.Background(), " id-1 ")
		if err != nil || res.ID != "id-1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("ListByServiceID success", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, false)
		m.repo.EXPECT().ListByServiceID(gomock.Any(), "svc-1").Return([]entities.Payment{{ID: "p1", Date: time.Now()}}, nil)

		res, err := uc.ListByServiceID(context.Background(), " svc-1 ")
		if err != nil || len(res) != 1 || res[0].ID != "p1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}

func TestPaymentUseCase_HelperFunctions(t *testing.T) {
	t.Run("hasPayer", func(t *testing.T) {
		if hasPayer(map[string]any{}) || hasPayer(map[string]any{"payer": "x"}) {
			t.Fatalf("expected false")
		}
		if !hasPayer(map[string]any{"payer": map[string]any{"id": 10}}) {
			t.Fatalf("expected true with id")
		}
	})

	t.Run("sandbox payer mapping", func(t *testing.T) {
		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-token")
		t.Setenv("MERCADOPAGO_TEST_PAYER_USER_ID", "123")
		t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "sandbox@test.com")
		m := map[string]any{"payer": map[string]any{"id": "123"}}
		normalizeSandboxPayerFromUserID(m)
		payer := m["payer"].(map[string]any)
		if payer["email"] != "sandbox@test.com" || payer["id"] != nil {
			t.Fatalf("unexpected payer %+v", payer)
		}
	})

	t.Run("payer defaults in sandbox", func(t *testing.T) {
		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-token")
		t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "")
		m := map[string]any{}
		ensurePayerDefaults(m, "")
		payer := m["payer"].(map[string]any)
		if payer["email"] != "test_user_br@testuser.com" || payer["type"] != "customer" {
			t.Fatalf("unexpected payer %+v", payer)
		}
	})
}
