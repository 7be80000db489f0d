package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"paulocell_pdv/internal/adapter/http/handlers/mocks"
	"paulocell_pdv/internal/domain/entities"
	"paulocell_pdv/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_ChargeService(t *testing.T) {
	cases := []struct {
		name        string
		body        string
		wantPayload string
		err         error
		wantCode    int
	}{
		{name: "wrapped payload", body: `{"mp_payload":{"payment_method_id":"pix"}}`, wantPayload: `{"payment_method_id":"pix"}`, wantCode: http.StatusOK},
		{name: "bare payload", body: `{"payment_method_id":"pix"}`, wantPayload: `{"payment_method_id":"pix"}`, wantCode: http.StatusOK},
		{name: "empty body", body: "", wantPayload: `{}`, wantCode: http.StatusOK},
		{name: "invalid json reaches use case as nil", body: `{`, wantPayload: "", err: usecase.ErrInvalidMPPayload, wantCode: http.StatusBadRequest},
		{name: "not payable", body: `{}`, wantPayload: `{}`, err: usecase.ErrServiceNotPayable, wantCode: http.StatusConflict},
		{name: "gateway missing", body: `{}`, wantPayload: `{}`, err: usecase.ErrPaymentGatewayNotConfigured, wantCode: http.StatusServiceUnavailable},
		{name: "provider unauthorized", body: `{}`, wantPayload: `{}`, err: usecase.ErrPaymentGatewayUnauthorized, wantCode: http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIPaymentUseCase(ctrl)
			r := newTestRouter()
			r.POST("/v1/services/:id/payments", NewPaymentHandler(uc).ChargeService)

			uc.EXPECT().ChargeService(gomock.Any(), "s-1", gomock.Any()).DoAndReturn(func(_ any, _ string, payload json.RawMessage) (entities.Payment, error) {
				if string(payload) != tc.wantPayload {
					t.Fatalf("expected payload %q, got %q", tc.wantPayload, payload)
				}
				return entities.Payment{ID: "p-1", ServiceID: "s-1", Status: entities.PaymentStatusAprovado, Amount: 77.2}, tc.err
			})
			w := perform(r, http.MethodPost, "/v1/services/s-1/payments", tc.body)
			if w.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d: %s", tc.wantCode, w.Code, w.Body.String())
			}
		})
	}
}

func TestPaymentHandler_Getters(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewPaymentHandler(uc)
	r := newTestRouter()
	r.GET("/v1/payments/:id", h.GetPayment)
	r.GET("/v1/services/:id/payments", h.ListServicePayments)

	uc.EXPECT().GetByID(gomock.Any(), "p-9").Return(entities.Payment{}, usecase.ErrPaymentNotFound)
	if w := perform(r, http.MethodGet, "/v1/payments/p-9", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	uc.EXPECT().ListByServiceID(gomock.Any(), "s-1").Return([]entities.Payment{{ID: "p-1"}, {ID: "p-2"}}, nil)
	w := perform(r, http.MethodGet, "/v1/services/s-1/payments", "")
	var body struct {
		Total int `json:"total"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if w.Code != http.StatusOK || body.Total != 2 {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}
