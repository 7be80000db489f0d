package entities

import "time"

// Customer is a person or company bringing devices in for repair.
//
// TaxID holds CPF digits for people and CNPJ digits for companies.
// DeletedAt is only set while the record sits in the trash collection.
type Customer struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	TaxID        string     `json:"taxId,omitempty"`
	IsCompany    bool       `json:"isCompany"`
	PostalCode   string     `json:"postalCode,omitempty"`
	Street       string     `json:"street,omitempty"`
	Number       string     `json:"number,omitempty"`
	Complement   string     `json:"complement,omitempty"`
	Neighborhood string     `json:"neighborhood,omitempty"`
	City         string     `json:"city,omitempty"`
	State        string     `json:"state,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	DeletedAt    *time.Time `json:"deletedAt,omitempty"`
}

func (c Customer) RecordID() string { return c.ID }

func (c Customer) WithDeletedAt(at *time.Time) Customer {
	c.DeletedAt = at
	return c
}
