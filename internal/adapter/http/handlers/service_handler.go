package handlers

import (
	"errors"
	"net/http"

	request "paulocell_pdv/internal/adapter/http/dto/request"
	response "paulocell_pdv/internal/adapter/http/dto/response"
	"paulocell_pdv/internal/domain/entities"
	"paulocell_pdv/internal/usecase"
	"paulocell_pdv/pkg"

	"github.com/gin-gonic/gin"
)

// ServiceHandler serves repair orders.
type ServiceHandler struct {
	usecase usecase.IServiceUseCase
}

func NewServiceHandler(uc usecase.IServiceUseCase) *ServiceHandler {
	return &ServiceHandler{usecase: uc}
}

// @Summary  Open a repair order
// @Tags     services
// @Accept   json
// @Produce  json
// @Param    service  body      request.ServiceRequest  true  "Service"
// @Success  201      {object}  entities.Service
// @Failure  400,404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /services [post]
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, "service", bindError(err))
		return
	}
	svc, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, "service", mapServiceError(err))
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// @Summary  List repair orders
// @Tags     services
// @Produce  json
// @Param    status      query  string  false  "Status"
// @Param    customerId  query  string  false  "Customer ID"
// @Param    deviceId    query  string  false  "Device ID"
// @Param    search      query  string  false  "Search over description and part names"
// @Success  200  {object}  response.ListResponse[entities.Service]
// @Security Bearer
// @Router   /services [get]
func (h *ServiceHandler) ListServices(c *gin.Context) {
	services, err := h.usecase.List(c.Request.Context(), usecase.ServiceFilter{
		Status:     entities.ServiceStatus(c.Query("status")),
		CustomerID: c.Query("customerId"),
		DeviceID:   c.Query("deviceId"),
		Search:     c.Query("search"),
	})
	if err != nil {
		writeError(c, "service", mapServiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(services))
}

// @Summary  Get a repair order
// @Tags     services
// @Produce  json
// @Param    id   path      string  true  "Service ID"
// @Success  200  {object}  entities.Service
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /services/{id} [get]
func (h *ServiceHandler) GetService(c *gin.Context) {
	svc, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "service", mapServiceError(err))
		return
	}
	c.JSON(http.StatusOK, svc)
}

// @Summary  Update a repair order
// @Tags     services
// @Accept   json
// @Produce  json
// @Param    id       path      string                  true  "Service ID"
// @Param    service  body      request.ServiceRequest  true  "Service"
// @Success  200      {object}  entities.Service
// @Failure  400,404,409  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /services/{id} [put]
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, "service", bindError(err))
		return
	}
	svc, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, "service", mapServiceError(err))
		return
	}
	c.JSON(http.StatusOK, svc)
}

// ChangeStatus moves a repair order through its lifecycle.
// @Summary  Change the status of a repair order
// @Tags     services
// @Accept   json
// @Produce  json
// @Param    id      path      string                        true  "Service ID"
// @Param    status  body      request.ServiceStatusRequest  true  "New status"
// @Success  200     {object}  entities.Service
// @Failure  400,404,409  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /services/{id}/status [patch]
func (h *ServiceHandler) ChangeStatus(c *gin.Context) {
	var payload request.ServiceStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, "service", bindError(err))
		return
	}
	svc, err := h.usecase.ChangeStatus(c.Request.Context(), c.Param("id"), entities.ServiceStatus(payload.Status))
	if err != nil {
		writeError(c, "service", mapServiceError(err))
		return
	}
	c.JSON(http.StatusOK, svc)
}

// @Summary  Delete a repair order
// @Tags     services
// @Param    id   path  string  true  "Service ID"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /services/{id} [delete]
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, "service", mapServiceError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapServiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceID), errors.Is(err, usecase.ErrInvalidServiceDescription),
		errors.Is(err, usecase.ErrInvalidServiceStatus), errors.Is(err, usecase.ErrInvalidLaborCost):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPart):
		return pkg.NewDomainErrorSimple("INVALID_PART", "Parts need a name, price >= 0 and quantity >= 1", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDeviceNotOwnedByCustomer):
		return pkg.NewDomainErrorSimple("DEVICE_NOT_OWNED_BY_CUSTOMER", "Device does not belong to customer", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceDeviceNotFound):
		return pkg.NewDomainErrorSimple("DEVICE_NOT_FOUND", "Device not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceDelivered):
		return pkg.NewDomainErrorSimple("SERVICE_DELIVERED", "Delivered services can no longer change", http.StatusConflict)
	default:
		return internalError(err)
	}
}
