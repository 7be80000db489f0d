package handlers

import (
	"errors"
	"net/http"

	"paulocell_pdv/internal/usecase"
	"paulocell_pdv/pkg"

	"github.com/gin-gonic/gin"
)

type PostalCodeHandler struct {
	usecase usecase.IPostalCodeUseCase
}

func NewPostalCodeHandler(uc usecase.IPostalCodeUseCase) *PostalCodeHandler {
	return &PostalCodeHandler{usecase: uc}
}

// LookupPostalCode godoc
// @Summary  Resolve a CEP into an address
// @Tags     cep
// @Produce  json
// @Param    cep  path      string  true  "CEP, with or without hyphen"
// @Success  200  {object}  entities.PostalAddress
// @Failure  400,404,502  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /cep/{cep} [get]
func (h *PostalCodeHandler) LookupPostalCode(c *gin.Context) {
	addr, err := h.usecase.Lookup(c.Request.Context(), c.Param("cep"))
	if err != nil {
		writeError(c, "cep", mapPostalCodeError(err))
		return
	}
	c.JSON(http.StatusOK, addr)
}

func mapPostalCodeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPostalCode):
		return pkg.NewDomainErrorSimple("INVALID_POSTAL_CODE", "CEP must have 8 digits", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPostalCodeNotFound):
		return pkg.NewDomainErrorSimple("POSTAL_CODE_NOT_FOUND", "CEP not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPostalCodeLookupFailed):
		return pkg.NewDomainError("POSTAL_CODE_LOOKUP_FAILED", "CEP service unavailable", err, http.StatusBadGateway)
	default:
		return internalError(err)
	}
}
