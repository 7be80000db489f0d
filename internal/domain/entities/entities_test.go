package entities

import (
	"encoding/json"
	"testing"
	"time"
)

func TestService_ComputeTotal(t *testing.T) {
	s := Service{
		Parts: []Part{
			{Name: "Tela", Price: 199.9, Quantity: 1},
			{Name: "Parafuso", Price: 0.1, Quantity: 3},
		},
		LaborCost: 80,
	}
	if got := s.ComputeTotal(); got != 280.2 {
		t.Fatalf("expected 280.2, got %v", got)
	}

	empty := Service{LaborCost: 50}
	if got := empty.ComputeTotal(); got != 50 {
		t.Fatalf("expected 50, got %v", got)
	}
}

func TestServiceStatus(t *testing.T) {
	if !ServiceStatusWaiting.Valid() || ServiceStatus("done").Valid() {
		t.Fatalf("unexpected validity")
	}
	if !ServiceStatusInProgress.Open() || ServiceStatusCompleted.Open() {
		t.Fatalf("unexpected open state")
	}
}

func TestFiscalDocument_ComputeValue(t *testing.T) {
	d := FiscalDocument{Items: []FiscalDocumentItem{
		{Description: "Troca de tela", Quantity: 1, UnitPrice: 250},
		{Description: "Película", Quantity: 2, UnitPrice: 19.99},
	}}
	if got := d.ComputeValue(); got != 289.98 {
		t.Fatalf("expected 289.98, got %v", got)
	}
	if FiscalDocumentNFCe.NumberPrefix() != "NFCE" {
		t.Fatalf("unexpected prefix")
	}
}

func TestTaxIDValidation(t *testing.T) {
	cases := []struct {
		in   string
		cpf  bool
		cnpj bool
	}{
		{in: "52998224725", cpf: true},
		{in: "52998224726"},
		{in: "11111111111"},
		{in: "1234"},
		{in: "11222333000181", cnpj: true},
		{in: "11222333000182"},
		{in: "00000000000000"},
	}
	for _, tc := range cases {
		if got := IsValidCPF(tc.in); got != tc.cpf {
			t.Fatalf("IsValidCPF(%s)=%v", tc.in, got)
		}
		if got := IsValidCNPJ(tc.in); got != tc.cnpj {
			t.Fatalf("IsValidCNPJ(%s)=%v", tc.in, got)
		}
	}
	if OnlyDigits("529.982.247-25") != "52998224725" {
		t.Fatalf("OnlyDigits failed")
	}
}

func TestCustomer_JSONShape(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	c := Customer{ID: "c-1", Name: "Maria", IsCompany: false, CreatedAt: now, UpdatedAt: now}

	b, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	if _, ok := m["deletedAt"]; ok {
		t.Fatalf("deletedAt must be omitted for active customers: %s", b)
	}
	if m["isCompany"] != false || m["name"] != "Maria" {
		t.Fatalf("unexpected json: %s", b)
	}

	trashed := c.WithDeletedAt(&now)
	if trashed.DeletedAt == nil || c.DeletedAt != nil {
		t.Fatalf("WithDeletedAt must copy")
	}
}

func TestCompanySettings_MaskedAPIKey(t *testing.T) {
	s := CompanySettings{FiscalAPIKey: "abcdef123456"}
	if s.MaskedAPIKey() != "****3456" {
		t.Fatalf("unexpected mask %q", s.MaskedAPIKey())
	}
	if (CompanySettings{FiscalAPIKey: "abc"}).MaskedAPIKey() != "****" {
		t.Fatalf("short keys must be fully masked")
	}
	if (CompanySettings{}).MaskedAPIKey() != "" {
		t.Fatalf("empty key must stay empty")
	}
}

func TestInventoryItem_LowStock(t *testing.T) {
	it := InventoryItem{Price: 10.5, CurrentStock: 2, MinimumStock: 2}
	if !it.LowStock() {
		t.Fatalf("expected low stock at the minimum")
	}
	if RoundMoney(it.StockValue()) != 21 {
		t.Fatalf("unexpected stock value")
	}
}

func TestDevice_Label(t *testing.T) {
	if (Device{Brand: "Samsung", Model: "A52"}).Label() != "Samsung A52" {
		t.Fatalf("unexpected label")
	}
	if (Device{Model: "A52"}).Label() != "A52" {
		t.Fatalf("unexpected label")
	}
}
