package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"paulocell_pdv/internal/adapter/http/dto/request"
	"paulocell_pdv/internal/adapter/http/handlers/mocks"
	"paulocell_pdv/internal/domain/entities"
	"paulocell_pdv/internal/usecase"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/mock/gomock"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = request.RegisterValidators(v)
	}
}

func TestCustomerHandler_CreateCustomer(t *testing.T) {
	t.Run("binding errors carry field details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICustomerUseCase(ctrl)
		r := newTestRouter()
		r.POST("/v1/customers", NewCustomerHandler(uc).CreateCustomer)

		w := perform(r, http.MethodPost, "/v1/customers", `{"name":"M","taxId":"111.111.111-11","state":"XX"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body struct {
			Code    string           `json:"code"`
			Details []FieldViolation `json:"details"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Code != "VALIDATION_FAILED" || len(body.Details) != 3 {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("missing body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICustomerUseCase(ctrl)
		r := newTestRouter()
		r.POST("/v1/customers", NewCustomerHandler(uc).CreateCustomer)

		w := perform(r, http.MethodPost, "/v1/customers", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("company without cnpj", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICustomerUseCase(ctrl)
		r := newTestRouter()
		r.POST("/v1/customers", NewCustomerHandler(uc).CreateCustomer)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Customer{}, usecase.ErrCompanyTaxIDRequired)
		w := perform(r, http.MethodPost, "/v1/customers", `{"name":"Loja X","isCompany":true}`)
		if w.Code != http.StatusBadRequest || errorCode(t, w) != "COMPANY_TAX_ID_REQUIRED" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("phone rejected by use case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICustomerUseCase(ctrl)
		r := newTestRouter()
		r.POST("/v1/customers", NewCustomerHandler(uc).CreateCustomer)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Customer{}, usecase.ErrInvalidPhone)
		w := perform(r, http.MethodPost, "/v1/customers", `{"name":"Maria","phone":"123"}`)
		if w.Code != http.StatusBadRequest || errorCode(t, w) != "INVALID_PHONE" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICustomerUseCase(ctrl)
		r := newTestRouter()
		r.POST("/v1/customers", NewCustomerHandler(uc).CreateCustomer)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.CustomerInput) (entities.Customer, error) {
			if in.Name != "Maria" || in.TaxID != "529.982.247-25" {
				t.Fatalf("unexpected input %+v", in)
			}
			return entities.Customer{ID: "c-1", Name: "Maria", TaxID: "52998224725"}, nil
		})
		w := perform(r, http.MethodPost, "/v1/customers", `{"name":"Maria","taxId":"529.982.247-25","postalCode":"01310-100","state":"SP"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestCustomerHandler_ListCustomers(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICustomerUseCase(ctrl)
	r := newTestRouter()
	r.GET("/v1/customers", NewCustomerHandler(uc).ListCustomers)

	uc.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, f usecase.CustomerFilter) ([]entities.Customer, error) {
		if f.Search != "joao" || f.IsCompany == nil || *f.IsCompany {
			t.Fatalf("unexpected filter %+v", f)
		}
		return []entities.Customer{{ID: "c-1", Name: "João"}}, nil
	})
	w := perform(r, http.MethodGet, "/v1/customers?search=joao&isCompany=false", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Total int `json:"total"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body.Total != 1 {
		t.Fatalf("unexpected body %s", w.Body.String())
	}

	w = perform(r, http.MethodGet, "/v1/customers?isCompany=maybe", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCustomerHandler_Trash(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICustomerUseCase(ctrl)
	h := NewCustomerHandler(uc)
	r := newTestRouter()
	r.DELETE("/v1/customers/:id", h.TrashCustomer)
	r.POST("/v1/customers/:id/restore", h.RestoreCustomer)
	r.DELETE("/v1/customers/:id/purge", h.PurgeCustomer)
	r.DELETE("/v1/customers/trash", h.EmptyTrash)

	uc.EXPECT().MoveToTrash(gomock.Any(), "missing").Return(entities.Customer{}, usecase.ErrCustomerNotFound)
	if w := perform(r, http.MethodDelete, "/v1/customers/missing", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	uc.EXPECT().Restore(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1"}, nil)
	if w := perform(r, http.MethodPost, "/v1/customers/c-1/restore", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.EXPECT().Purge(gomock.Any(), "c-1").Return(nil)
	if w := perform(r, http.MethodDelete, "/v1/customers/c-1/purge", ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	uc.EXPECT().EmptyTrash(gomock.Any()).Return(0, errors.New("store down"))
	w := perform(r, http.MethodDelete, "/v1/customers/trash", "")
	if w.Code != http.StatusInternalServerError || errorCode(t, w) != "INTERNAL_ERROR" {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}
