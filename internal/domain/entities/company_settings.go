package entities

import "time"

// CompanySettings is stored as a single JSON object (not an array) under its key.
type CompanySettings struct {
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

const (
	FiscalEnvironmentHomologation = "homologacao"
	FiscalEnvironmentProduction   = "producao"
)

// DefaultCompanySettings is returned before anything was saved.
func DefaultCompanySettings() CompanySettings {
	return CompanySettings{
		Name:              "Paulo Cell",
		FiscalEnvironment: FiscalEnvironmentHomologation,
	}
}

// MaskedAPIKey keeps only the last four characters visible.
func (s CompanySettings) MaskedAPIKey() string {
	if s.FiscalAPIKey == "" {
		return ""
	}
	if len(s.FiscalAPIKey) <= 4 {
		return "****"
	}
	return "****" + s.FiscalAPIKey[len(s.FiscalAPIKey)-4:]
}
