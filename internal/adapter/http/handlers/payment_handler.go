package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "paulocell_pdv/internal/adapter/http/dto/response"
	"paulocell_pdv/internal/infrastructure/logger"
	"paulocell_pdv/internal/usecase"
	"paulocell_pdv/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler charges repair orders through Mercado Pago.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// ChargeService godoc
// @Summary      Charge a completed repair order
// @Description  The body is the Mercado Pago payment payload, bare or wrapped in mp_payload.
// @Description  The amount is always the stored service total.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Service ID"
// @Param        payload  body      request.PaymentRequest  false "Mercado Pago payload"
// @Success      200      {object}  response.PaymentResponse
// @Failure      400,401,404,409,503  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /services/{id}/payments [post]
func (h *PaymentHandler) ChargeService(c *gin.Context) {
	serviceID := c.Param("id")
	log := logger.For("payment", "handler").WithField("service_id", serviceID)
	mpPayload, err := readMPPayload(c)
	if err != nil {
		// the use case decides whether an unusable payload is acceptable (mock mode)
		log.WithError(err).Info("[payment][handler] unreadable payload")
		mpPayload = nil
	}

	created, err := h.usecase.ChargeService(c.Request.Context(), serviceID, mpPayload)
	if err != nil {
		log.WithError(err).Info("[payment][handler] charge failed")
		writeError(c, "payment", mapPaymentError(err))
		return
	}
	log.WithField("payment_id", created.ID).WithField("status", created.Status).Info("[payment][handler] charge done")
	c.JSON(http.StatusOK, response.FromPayment(created))
}

// @Summary  List payments of a repair order
// @Tags     payments
// @Produce  json
// @Param    id   path      string  true  "Service ID"
// @Success  200  {object}  response.ListResponse[response.PaymentResponse]
// @Security Bearer
// @Router   /services/{id}/payments [get]
func (h *PaymentHandler) ListServicePayments(c *gin.Context) {
	payments, err := h.usecase.ListByServiceID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "payment", mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(response.FromPayments(payments)))
}

// @Summary  Get a payment
// @Tags     payments
// @Produce  json
// @Param    id   path      string  true  "Payment ID"
// @Success  200  {object}  response.PaymentResponse
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "payment", mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// readMPPayload accepts the bare payment body or {"mp_payload": {...}}.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if v := strings.TrimSpace(string(wrapped)); v == "" || v == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentServiceID), errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotPayable):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_PAYABLE", "Only completed or delivered services can be charged", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
