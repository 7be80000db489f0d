package request

import (
	"strings"

	"paulocell_pdv/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

var brazilianStates = map[string]bool{
	"AC": true, "AL": true, "AP": true, "AM": true, "BA": true, "CE": true, "DF": true,
	"ES": true, "GO": true, "MA": true, "MT": true, "MS": true, "MG": true, "PA": true,
	"PB": true, "PR": true, "PE": true, "PI": true, "RJ": true, "RN": true, "RS": true,
	"RO": true, "RR": true, "SC": true, "SP": true, "SE": true, "TO": true,
}

// RegisterValidators adds the cep, taxid and uf binding tags.
func RegisterValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("cep", validCEP); err != nil {
		return err
	}
	if err := v.RegisterValidation("taxid", validTaxID); err != nil {
		return err
	}
	return v.RegisterValidation("uf", validUF)
}

func validCEP(fl validator.FieldLevel) bool {
	return len(entities.OnlyDigits(fl.Field().String())) == 8
}

func validTaxID(fl validator.FieldLevel) bool {
	d := entities.OnlyDigits(fl.Field().String())
	return entities.IsValidCPF(d) || entities.IsValidCNPJ(d)
}

func validUF(fl validator.FieldLevel) bool {
	return brazilianStates[strings.ToUpper(strings.TrimSpace(fl.Field().String()))]
}
