package usecase

import (
	"errors"
	"strings"

	"paulocell_pdv/internal/domain/entities"

	"github.com/go-playground/validator/v10"
	"github.com/ttacon/libphonenumber"
)

var (
	ErrInvalidEmail      = errors.New("invalid email")
	ErrInvalidPhone      = errors.New("invalid phone")
	ErrInvalidTaxID      = errors.New("invalid tax id")
	ErrInvalidPostalCode = errors.New("invalid postal code")
	ErrInvalidState      = errors.New("invalid state")
)

var validate = validator.New()

func validEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// normalizePhone parses a Brazilian number and returns it in E.164 form.
func normalizePhone(phone string) (string, error) {
	num, err := libphonenumber.Parse(phone, "BR")
	if err != nil || !libphonenumber.IsValidNumber(num) {
		return "", ErrInvalidPhone
	}
	return libphonenumber.Format(num, libphonenumber.E164), nil
}

// normalizePostalCode keeps the digits of a CEP; it must have exactly eight.
func normalizePostalCode(cep string) (string, error) {
	digits := entities.OnlyDigits(cep)
	if len(digits) != 8 {
		return "", ErrInvalidPostalCode
	}
	return digits, nil
}

// normalizeState upper-cases a two-letter UF.
func normalizeState(uf string) (string, error) {
	uf = strings.ToUpper(strings.TrimSpace(uf))
	if uf == "" {
		return "", nil
	}
	if len(uf) != 2 || validate.Var(uf, "alpha") != nil {
		return "", ErrInvalidState
	}
	return uf, nil
}
