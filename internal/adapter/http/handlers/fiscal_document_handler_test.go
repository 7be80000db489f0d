package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"paulocell_pdv/internal/adapter/http/handlers/mocks"
	"paulocell_pdv/internal/domain/entities"
	"paulocell_pdv/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestFiscalDocumentHandler_IssueDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIFiscalDocumentUseCase(ctrl)
	r := newTestRouter()
	r.POST("/v1/documents", NewFiscalDocumentHandler(uc).IssueDocument)

	if w := perform(r, http.MethodPost, "/v1/documents", `{"type":"nfe","items":[]}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without items, got %d", w.Code)
	}
	if w := perform(r, http.MethodPost, "/v1/documents", `{"type":"cte","items":[{"description":"x","quantity":1}]}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown type, got %d", w.Code)
	}

	uc.EXPECT().Issue(gomock.Any(), gomock.Any()).Return(entities.FiscalDocument{}, fmt.Errorf("%w: timeout", usecase.ErrFiscalGatewayFailed))
	w := perform(r, http.MethodPost, "/v1/documents", `{"type":"nfe","items":[{"description":"Tela","quantity":1,"unitPrice":250}]}`)
	if w.Code != http.StatusBadGateway || errorCode(t, w) != "FISCAL_GATEWAY_ERROR" {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}

	uc.EXPECT().Issue(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.FiscalDocumentInput) (entities.FiscalDocument, error) {
		if in.Type != entities.FiscalDocumentNFCe || len(in.Items) != 1 || in.Items[0].UnitPrice != 250 {
			t.Fatalf("unexpected input %+v", in)
		}
		return entities.FiscalDocument{ID: "f-1", Number: "NFCE-000001", Status: entities.FiscalDocumentPendente}, nil
	})
	w = perform(r, http.MethodPost, "/v1/documents", `{"type":"nfce","items":[{"description":"Tela","quantity":1,"unitPrice":250}]}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
}

func TestFiscalDocumentHandler_ListDocuments(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIFiscalDocumentUseCase(ctrl)
	r := newTestRouter()
	r.GET("/v1/documents", NewFiscalDocumentHandler(uc).ListDocuments)

	if w := perform(r, http.MethodGet, "/v1/documents?from=01/03/2026", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad date, got %d", w.Code)
	}

	uc.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, f usecase.FiscalDocumentFilter) ([]entities.FiscalDocument, error) {
		if f.Type != entities.FiscalDocumentNFe || f.Status != entities.FiscalDocumentEmitida || f.From == nil || f.To != nil {
			t.Fatalf("unexpected filter %+v", f)
		}
		return []entities.FiscalDocument{{ID: "f-1"}}, nil
	})
	if w := perform(r, http.MethodGet, "/v1/documents?type=nfe&status=Emitida&from=2026-03-01", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestFiscalDocumentHandler_CancelAndRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIFiscalDocumentUseCase(ctrl)
	h := NewFiscalDocumentHandler(uc)
	r := newTestRouter()
	r.POST("/v1/documents/:id/cancel", h.CancelDocument)
	r.POST("/v1/documents/:id/issue", h.RetryIssue)

	uc.EXPECT().Cancel(gomock.Any(), "f-1", "").Return(entities.FiscalDocument{ID: "f-1", Status: entities.FiscalDocumentCancelada}, nil)
	if w := perform(r, http.MethodPost, "/v1/documents/f-1/cancel", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200 without body, got %d: %s", w.Code, w.Body.String())
	}

	uc.EXPECT().Cancel(gomock.Any(), "f-2", "cliente desistiu").Return(entities.FiscalDocument{}, usecase.ErrFiscalDocumentNotCancellable)
	if w := perform(r, http.MethodPost, "/v1/documents/f-2/cancel", `{"reason":"cliente desistiu"}`); w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}

	uc.EXPECT().RetryIssue(gomock.Any(), "f-3").Return(entities.FiscalDocument{}, usecase.ErrFiscalGatewayUnavailable)
	if w := perform(r, http.MethodPost, "/v1/documents/f-3/issue", ""); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}

func TestNotificationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockINotificationUseCase(ctrl)
	h := NewNotificationHandler(uc)
	r := newTestRouter()
	r.GET("/v1/notifications", h.ListNotifications)
	r.GET("/v1/notifications/unread-count", h.UnreadCount)
	r.PATCH("/v1/notifications/:id/read", h.MarkRead)
	r.POST("/v1/notifications", h.CreateNotification)

	uc.EXPECT().List(gomock.Any(), true).Return([]entities.Notification{{ID: "n-1"}}, nil)
	if w := perform(r, http.MethodGet, "/v1/notifications?unread=true", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.EXPECT().UnreadCount(gomock.Any()).Return(4, nil)
	w := perform(r, http.MethodGet, "/v1/notifications/unread-count", "")
	if w.Code != http.StatusOK || w.Body.String() != `{"count":4}` {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}

	uc.EXPECT().MarkRead(gomock.Any(), "n-9").Return(entities.Notification{}, usecase.ErrNotificationNotFound)
	if w := perform(r, http.MethodPatch, "/v1/notifications/n-9/read", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	uc.EXPECT().Create(gomock.Any(), "Lembrete", "Ligar para Maria", "").Return(entities.Notification{ID: "n-2"}, nil)
	if w := perform(r, http.MethodPost, "/v1/notifications", `{"title":"Lembrete","message":"Ligar para Maria"}`); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
}
