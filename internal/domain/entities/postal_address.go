package entities

// PostalAddress is the address resolved from a CEP.
type PostalAddress struct {
	PostalCode   string `json:"postalCode"`
	Street       string `json:"street"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	IBGECode     string `json:"ibgeCode,omitempty"`
}
