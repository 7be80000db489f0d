package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"paulocell_pdv/internal/adapter/http/handlers/mocks"
	"paulocell_pdv/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestExportHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIExportUseCase(ctrl)
	h := NewExportHandler(uc)
	r := newTestRouter()
	r.GET("/v1/exports/:dataset", h.ExportDataset)
	r.GET("/v1/services/:id/receipt", h.ServiceReceiptPDF)

	uc.EXPECT().Export(gomock.Any(), "customers", "csv").Return(usecase.ExportFile{Name: "customers_20260402_093000.csv", ContentType: "text/csv; charset=utf-8", Data: []byte("a;b\n")}, nil)
	w := perform(r, http.MethodGet, "/v1/exports/customers", "")
	if w.Code != http.StatusOK || w.Body.String() != "a;b\n" {
		t.Fatalf("unexpected response %d %q", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="customers_20260402_093000.csv"` {
		t.Fatalf("unexpected disposition %q", got)
	}
	if got := w.Header().Get("Content-Type"); got != "text/csv; charset=utf-8" {
		t.Fatalf("unexpected content type %q", got)
	}

	uc.EXPECT().Export(gomock.Any(), "customers", "odt").Return(usecase.ExportFile{}, usecase.ErrUnknownExportFormat)
	if w := perform(r, http.MethodGet, "/v1/exports/customers?format=odt", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	uc.EXPECT().ServiceReceiptPDF(gomock.Any(), "s-9").Return(usecase.ExportFile{}, usecase.ErrServiceNotFound)
	if w := perform(r, http.MethodGet, "/v1/services/s-9/receipt", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestBackupHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIBackupUseCase(ctrl)
	h := NewBackupHandler(uc)
	r := newTestRouter()
	r.GET("/v1/backup", h.ExportBackup)
	r.POST("/v1/backup/restore", h.RestoreBackup)

	uc.EXPECT().Export(gomock.Any()).Return(usecase.Snapshot{"pauloCell_customers": json.RawMessage(`[]`)}, nil)
	w := perform(r, http.MethodGet, "/v1/backup", "")
	if w.Code != http.StatusOK || w.Body.String() != `{"pauloCell_customers":[]}` {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}

	uc.EXPECT().Restore(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrUnknownBackupKey)
	w = perform(r, http.MethodPost, "/v1/backup/restore", `{"other":[]}`)
	if w.Code != http.StatusBadRequest || errorCode(t, w) != "UNKNOWN_BACKUP_KEY" {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}

	uc.EXPECT().Restore(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, snap usecase.Snapshot) ([]string, error) {
		if string(snap["pauloCell_devices"]) != `[{"id":"d-1"}]` {
			t.Fatalf("unexpected snapshot %v", snap)
		}
		return []string{"pauloCell_devices"}, nil
	})
	if w := perform(r, http.MethodPost, "/v1/backup/restore", `{"pauloCell_devices":[{"id":"d-1"}]}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
