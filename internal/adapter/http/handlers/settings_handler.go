package handlers

import (
	"errors"
	"net/http"

	request "paulocell_pdv/internal/adapter/http/dto/request"
	response "paulocell_pdv/internal/adapter/http/dto/response"
	"paulocell_pdv/internal/usecase"
	"paulocell_pdv/pkg"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
}

func NewSettingsHandler(uc usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

// @Summary  Get the company settings
// @Tags     settings
// @Produce  json
// @Success  200  {object}  response.SettingsResponse
// @Security Bearer
// @Router   /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	s, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		writeError(c, "settings", mapSettingsError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSettings(s))
}

// SaveSettings godoc
// @Summary      Save the company settings
// @Description  An empty fiscalApiKey keeps the stored key.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        settings  body      request.SettingsRequest  true  "Settings"
// @Success      200       {object}  response.SettingsResponse
// @Failure      400       {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /settings [put]
func (h *SettingsHandler) SaveSettings(c *gin.Context) {
	var payload request.SettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, "settings", bindError(err))
		return
	}
	s, err := h.usecase.Save(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, "settings", mapSettingsError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSettings(s))
}

func mapSettingsError(err error) *pkg.AppError {
	if appErr, ok := mapFieldError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidCompanyName), errors.Is(err, usecase.ErrInvalidFiscalEnvironment):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
