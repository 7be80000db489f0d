package request

import (
	"encoding/json"

	"paulocell_pdv/internal/usecase"
)

type NotificationRequest struct {
	Title   string `json:"title" binding:"required"`
	Message string `json:"message"`
	Link    string `json:"link"`
}

type SettingsRequest struct {
	Name              string `json:"name" binding:"required"`
	TaxID             string `json:"taxId" binding:"omitempty,taxid"`
	Phone             string `json:"phone"`
	Email             string `json:"email" binding:"omitempty,email"`
	PostalCode        string `json:"postalCode" binding:"omitempty,cep"`
	Street            string `json:"street"`
	Number            string `json:"number"`
	Neighborhood      string `json:"neighborhood"`
	City              string `json:"city"`
	State             string `json:"state" binding:"omitempty,uf"`
	FiscalAPIKey      string `json:"fiscalApiKey"`
	FiscalEnvironment string `json:"fiscalEnvironment" binding:"omitempty,oneof=homologacao producao"`
}

func (r SettingsRequest) ToInput() usecase.SettingsInput {
	return usecase.SettingsInput{
		Name:              r.Name,
		TaxID:             r.TaxID,
		Phone:             r.Phone,
		Email:             r.Email,
		PostalCode:        r.PostalCode,
		Street:            r.Street,
		Number:            r.Number,
		Neighborhood:      r.Neighborhood,
		City:              r.City,
		State:             r.State,
		FiscalAPIKey:      r.FiscalAPIKey,
		FiscalEnvironment: r.FiscalEnvironment,
	}
}

// PaymentRequest wraps the Mercado Pago payment body, stored as-is.
type PaymentRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}
