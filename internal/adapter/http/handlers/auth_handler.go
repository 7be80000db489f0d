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

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// @Summary  Log in with the admin credentials
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    credentials  body      request.LoginRequest  true  "Credentials"
// @Success  200          {object}  response.TokenResponse
// @Failure  400,401      {object}  pkg.HTTPError
// @Router   /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, "auth", bindError(err))
		return
	}
	token, err := h.usecase.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		writeError(c, "auth", mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAuthToken(token))
}

// @Summary  Log in with a Google ID token
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    token  body      request.GoogleLoginRequest  true  "ID token"
// @Success  200    {object}  response.TokenResponse
// @Failure  400,401,403,503  {object}  pkg.HTTPError
// @Router   /auth/google [post]
func (h *AuthHandler) LoginWithGoogle(c *gin.Context) {
	var payload request.GoogleLoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, "auth", bindError(err))
		return
	}
	token, err := h.usecase.LoginWithGoogle(c.Request.Context(), payload.IDToken)
	if err != nil {
		writeError(c, "auth", mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAuthToken(token))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid username or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidToken):
		return pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid or expired token", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrIdentityNotAllowed):
		return pkg.NewDomainErrorSimple("IDENTITY_NOT_ALLOWED", "This account is not allowed", http.StatusForbidden)
	case errors.Is(err, usecase.ErrIdentityProviderDisabled):
		return pkg.NewDomainErrorSimple("IDENTITY_PROVIDER_DISABLED", "Google login is not configured", http.StatusServiceUnavailable)
	default:
		return internalError(err)
	}
}
