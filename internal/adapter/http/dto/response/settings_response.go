package response

import (
	"time"

	"paulocell_pdv/internal/domain/entities"
)

// SettingsResponse never carries the fiscal API key in clear.
type SettingsResponse struct {
	Name              string    `json:"name"`
	TaxID             string    `json:"taxId,omitempty"`
	Phone             string    `json:"phone,omitempty"`
	Email             string    `json:"email,omitempty"`
	PostalCode        string    `json:"postalCode,omitempty"`
	Street            string    `json:"street,omitempty"`
	Number            string    `json:"number,omitempty"`
	Neighborhood      string    `json:"neighborhood,omitempty"`
	City              string    `json:"city,omitempty"`
	State             string    `json:"state,omitempty"`
	FiscalAPIKey      string    `json:"fiscalApiKey,omitempty"`
	FiscalEnvironment string    `json:"fiscalEnvironment,omitempty"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func FromSettings(s entities.CompanySettings) SettingsResponse {
	return SettingsResponse{
		Name:              s.Name,
		TaxID:             s.TaxID,
		Phone:             s.Phone,
		Email:             s.Email,
		PostalCode:        s.PostalCode,
		Street:            s.Street,
		Number:            s.Number,
		Neighborhood:      s.Neighborhood,
		City:              s.City,
		State:             s.State,
		FiscalAPIKey:      s.MaskedAPIKey(),
		FiscalEnvironment: s.FiscalEnvironment,
		UpdatedAt:         s.UpdatedAt,
	}
}
