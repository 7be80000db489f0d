package request

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
)

type taggedForm struct {
	CEP   string `validate:"omitempty,cep"`
	TaxID string `validate:"omitempty,taxid"`
	UF    string `validate:"omitempty,uf"`
}

func TestRegisterValidators(t *testing.T) {
	v := validator.New()
	if err := RegisterValidators(v); err != nil {
		t.Fatalf("register: %v", err)
	}

	cases := []struct {
		name string
		in   taggedForm
		ok   bool
	}{
		{name: "empty", in: taggedForm{}, ok: true},
		{name: "valid", in: taggedForm{CEP: "01310-100", TaxID: "529.982.247-25", UF: "sp"}, ok: true},
		{name: "cnpj", in: taggedForm{TaxID: "11.222.333/0001-81"}, ok: true},
		{name: "short cep", in: taggedForm{CEP: "0131"}},
		{name: "bad cpf", in: taggedForm{TaxID: "111.111.111-11"}},
		{name: "unknown uf", in: taggedForm{UF: "XX"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.in)
			if (err == nil) != tc.ok {
				t.Fatalf("expected ok=%v, got %v", tc.ok, err)
			}
		})
	}
}

func TestServiceRequest_ToInput(t *testing.T) {
	r := ServiceRequest{
		CustomerID:  "c-1",
		DeviceID:    "d-1",
		Description: "Troca de tela",
		Parts:       []PartRequest{{Name: "Tela", Price: 199.9, Quantity: 1}},
		LaborCost:   80,
	}
	in := r.ToInput()
	if len(in.Parts) != 1 || in.Parts[0].Name != "Tela" || in.Status != "" || in.LaborCost != 80 {
		t.Fatalf("unexpected input %+v", in)
	}
}

func TestFiscalDocumentQuery_ToFilter(t *testing.T) {
	q := FiscalDocumentQuery{Type: "nfe", Status: "Emitida", Search: " maria ", From: "2026-03-01", To: "2026-03-31"}
	f := q.ToFilter()
	if f.Type != "nfe" || f.Status != "Emitida" || f.Search != "maria" {
		t.Fatalf("unexpected filter %+v", f)
	}
	if f.From == nil || !f.From.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected from %v", f.From)
	}
	if f.To == nil || f.To.Day() != 31 || f.To.Hour() != 23 {
		t.Fatalf("to must cover the whole day, got %v", f.To)
	}

	empty := FiscalDocumentQuery{}.ToFilter()
	if empty.From != nil || empty.To != nil {
		t.Fatalf("expected open range")
	}
}

func TestStockAdjustmentRequest_Bounds(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")

	cases := []struct {
		name  string
		delta int
		ok    bool
	}{
		{name: "decrement", delta: -3, ok: true},
		{name: "upper bound", delta: 1000000, ok: true},
		{name: "lower bound", delta: -1000000, ok: true},
		{name: "zero", delta: 0},
		{name: "too large", delta: 1000001},
		{name: "too small", delta: -1000001},
		{name: "max int", delta: int(^uint(0) >> 1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(StockAdjustmentRequest{Delta: tc.delta})
			if (err == nil) != tc.ok {
				t.Fatalf("expected ok=%v, got %v", tc.ok, err)
			}
		})
	}
}
