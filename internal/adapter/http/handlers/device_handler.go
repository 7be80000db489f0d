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

type DeviceHandler struct {
	usecase usecase.IDeviceUseCase
}

func NewDeviceHandler(uc usecase.IDeviceUseCase) *DeviceHandler {
	return &DeviceHandler{usecase: uc}
}

// @Summary  Register a device
// @Tags     devices
// @Accept   json
// @Produce  json
// @Param    device  body      request.DeviceRequest  true  "Device"
// @Success  201     {object}  entities.Device
// @Failure  400,404 {object}  pkg.HTTPError
// @Security Bearer
// @Router   /devices [post]
func (h *DeviceHandler) CreateDevice(c *gin.Context) {
	var payload request.DeviceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, "device", bindError(err))
		return
	}
	device, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, "device", mapDeviceError(err))
		return
	}
	c.JSON(http.StatusCreated, device)
}

// @Summary  List devices
// @Tags     devices
// @Produce  json
// @Param    owner   query  string  false  "Owner customer ID"
// @Param    type    query  string  false  "Device type"
// @Param    status  query  string  false  "Device condition"
// @Param    search  query  string  false  "Search over brand, model and serial number"
// @Success  200  {object}  response.ListResponse[entities.Device]
// @Security Bearer
// @Router   /devices [get]
func (h *DeviceHandler) ListDevices(c *gin.Context) {
	devices, err := h.usecase.List(c.Request.Context(), usecase.DeviceFilter{
		Owner:  c.Query("owner"),
		Type:   entities.DeviceType(c.Query("type")),
		Status: entities.DeviceStatus(c.Query("status")),
		Search: c.Query("search"),
	})
	if err != nil {
		writeError(c, "device", mapDeviceError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(devices))
}

// @Summary  Get a device
// @Tags     devices
// @Produce  json
// @Param    id   path      string  true  "Device ID"
// @Success  200  {object}  entities.Device
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /devices/{id} [get]
func (h *DeviceHandler) GetDevice(c *gin.Context) {
	device, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "device", mapDeviceError(err))
		return
	}
	c.JSON(http.StatusOK, device)
}

// @Summary  Update a device
// @Tags     devices
// @Accept   json
// @Produce  json
// @Param    id      path      string                 true  "Device ID"
// @Param    device  body      request.DeviceRequest  true  "Device"
// @Success  200     {object}  entities.Device
// @Failure  400,404 {object}  pkg.HTTPError
// @Security Bearer
// @Router   /devices/{id} [put]
func (h *DeviceHandler) UpdateDevice(c *gin.Context) {
	var payload request.DeviceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, "device", bindError(err))
		return
	}
	device, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, "device", mapDeviceError(err))
		return
	}
	c.JSON(http.StatusOK, device)
}

// @Summary  Delete a device
// @Tags     devices
// @Param    id   path  string  true  "Device ID"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /devices/{id} [delete]
func (h *DeviceHandler) DeleteDevice(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, "device", mapDeviceError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapDeviceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDeviceID), errors.Is(err, usecase.ErrInvalidDeviceOwner),
		errors.Is(err, usecase.ErrInvalidDeviceModel), errors.Is(err, usecase.ErrInvalidDeviceType),
		errors.Is(err, usecase.ErrInvalidDeviceStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDeviceOwnerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Device owner not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDeviceNotFound):
		return pkg.NewDomainErrorSimple("DEVICE_NOT_FOUND", "Device not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
