package handlers

import (
	"errors"
	"io"
	"net/http"

	"paulocell_pdv/internal/infrastructure/logger"
	"paulocell_pdv/internal/usecase"
	"paulocell_pdv/pkg"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInternal       = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
)

// FieldViolation is one failed binding rule.
type FieldViolation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// bindError turns binding failures into a 400 listing the failed fields.
func bindError(err error) *pkg.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]FieldViolation, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, FieldViolation{Field: fe.Field(), Rule: fe.Tag()})
		}
		return pkg.NewDomainError("VALIDATION_FAILED", "Invalid fields", err, http.StatusBadRequest).WithDetails(details)
	}
	if errors.Is(err, io.EOF) {
		return pkg.NewDomainError("INVALID_REQUEST", "Request body is required", err, http.StatusBadRequest)
	}
	return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
}

// mapFieldError covers the validation sentinels shared by several use cases.
func mapFieldError(err error) (*pkg.AppError, bool) {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmail):
		return pkg.NewDomainErrorSimple("INVALID_EMAIL", "Invalid e-mail", http.StatusBadRequest), true
	case errors.Is(err, usecase.ErrInvalidPhone):
		return pkg.NewDomainErrorSimple("INVALID_PHONE", "Invalid phone number", http.StatusBadRequest), true
	case errors.Is(err, usecase.ErrInvalidTaxID):
		return pkg.NewDomainErrorSimple("INVALID_TAX_ID", "Invalid CPF/CNPJ", http.StatusBadRequest), true
	case errors.Is(err, usecase.ErrInvalidPostalCode):
		return pkg.NewDomainErrorSimple("INVALID_POSTAL_CODE", "Invalid CEP", http.StatusBadRequest), true
	case errors.Is(err, usecase.ErrInvalidState):
		return pkg.NewDomainErrorSimple("INVALID_STATE", "Invalid state", http.StatusBadRequest), true
	}
	return nil, false
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError(errInternal.Code, errInternal.Message, err, errInternal.HTTPStatus)
}

// writeError answers with the error body; 5xx errors are logged with the cause.
func writeError(c *gin.Context, module string, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.For(module, "handler").
			WithError(appErr).
			WithField("path", c.Request.URL.Path).
			Errorf("[%s][handler] request failed", module)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
