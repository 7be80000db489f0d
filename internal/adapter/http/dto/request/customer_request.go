package request

import "paulocell_pdv/internal/usecase"

// CustomerRequest is the customer form. Conditional rules (CNPJ for
// companies) are checked by the use case.
type CustomerRequest struct {
	Name         string `json:"name" binding:"required,min=2"`
	Email        string `json:"email" binding:"omitempty,email"`
	Phone        string `json:"phone"`
	TaxID        string `json:"taxId" binding:"omitempty,taxid"`
	IsCompany    bool   `json:"isCompany"`
	PostalCode   string `json:"postalCode" binding:"omitempty,cep"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state" binding:"omitempty,uf"`
	Notes        string `json:"notes"`
}

func (r CustomerRequest) ToInput() usecase.CustomerInput {
	return usecase.CustomerInput{
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		TaxID:        r.TaxID,
		IsCompany:    r.IsCompany,
		PostalCode:   r.PostalCode,
		Street:       r.Street,
		Number:       r.Number,
		Complement:   r.Complement,
		Neighborhood: r.Neighborhood,
		City:         r.City,
		State:        r.State,
		Notes:        r.Notes,
	}
}
