package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "paulocell_pdv/internal/adapter/http/dto/request"
	response "paulocell_pdv/internal/adapter/http/dto/response"
	"paulocell_pdv/internal/usecase"
	"paulocell_pdv/pkg"

	"github.com/gin-gonic/gin"
)

// CustomerHandler serves customer CRUD and the customer trash.
type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

// CreateCustomer godoc
// @Summary  Create a customer
// @Tags     customers
// @Accept   json
// @Produce  json
// @Param    customer  body      request.CustomerRequest  true  "Customer"
// @Success  201       {object}  entities.Customer
// @Failure  400       {object}  pkg.HTTPError
// @Security Bearer
// @Router   /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, "customer", bindError(err))
		return
	}
	customer, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, "customer", mapCustomerError(err))
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// ListCustomers godoc
// @Summary  List customers
// @Tags     customers
// @Produce  json
// @Param    search     query  string  false  "Search over name, e-mail, phone, tax id and city"
// @Param    isCompany  query  bool    false  "Only companies (true) or people (false)"
// @Success  200  {object}  response.ListResponse[entities.Customer]
// @Security Bearer
// @Router   /customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	f := usecase.CustomerFilter{Search: c.Query("search")}
	if v := c.Query("isCompany"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(c, "customer", errInvalidRequest)
			return
		}
		f.IsCompany = &b
	}
	customers, err := h.usecase.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, "customer", mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(customers))
}

// GetCustomer godoc
// @Summary  Get a customer
// @Tags     customers
// @Produce  json
// @Param    id   path      string  true  "Customer ID"
// @Success  200  {object}  entities.Customer
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "customer", mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer godoc
// @Summary  Update a customer
// @Tags     customers
// @Accept   json
// @Produce  json
// @Param    id        path      string                   true  "Customer ID"
// @Param    customer  body      request.CustomerRequest  true  "Customer"
// @Success  200       {object}  entities.Customer
// @Failure  400,404   {object}  pkg.HTTPError
// @Security Bearer
// @Router   /customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, "customer", bindError(err))
		return
	}
	customer, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, "customer", mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, customer)
}

// TrashCustomer moves a customer to the trash.
// @Summary  Move a customer to the trash
// @Tags     customers
// @Produce  json
// @Param    id   path      string  true  "Customer ID"
// @Success  200  {object}  entities.Customer
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /customers/{id} [delete]
func (h *CustomerHandler) TrashCustomer(c *gin.Context) {
	customer, err := h.usecase.MoveToTrash(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "customer", mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, customer)
}

// @Summary  List trashed customers
// @Tags     customers
// @Produce  json
// @Success  200  {object}  response.ListResponse[entities.Customer]
// @Security Bearer
// @Router   /customers/trash [get]
func (h *CustomerHandler) ListTrash(c *gin.Context) {
	customers, err := h.usecase.ListTrash(c.Request.Context())
	if err != nil {
		writeError(c, "customer", mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(customers))
}

// @Summary  Restore a trashed customer
// @Tags     customers
// @Produce  json
// @Param    id   path      string  true  "Customer ID"
// @Success  200  {object}  entities.Customer
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /customers/{id}/restore [post]
func (h *CustomerHandler) RestoreCustomer(c *gin.Context) {
	customer, err := h.usecase.Restore(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "customer", mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, customer)
}

// @Summary  Permanently delete a trashed customer
// @Tags     customers
// @Param    id   path  string  true  "Customer ID"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /customers/{id}/purge [delete]
func (h *CustomerHandler) PurgeCustomer(c *gin.Context) {
	if err := h.usecase.Purge(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, "customer", mapCustomerError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary  Empty the customer trash
// @Tags     customers
// @Produce  json
// @Success  200  {object}  response.TrashEmptiedResponse
// @Security Bearer
// @Router   /customers/trash [delete]
func (h *CustomerHandler) EmptyTrash(c *gin.Context) {
	n, err := h.usecase.EmptyTrash(c.Request.Context())
	if err != nil {
		writeError(c, "customer", mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, response.TrashEmptiedResponse{Purged: n})
}

func mapCustomerError(err error) *pkg.AppError {
	if appErr, ok := mapFieldError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID), errors.Is(err, usecase.ErrInvalidCustomerName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCompanyTaxIDRequired):
		return pkg.NewDomainErrorSimple("COMPANY_TAX_ID_REQUIRED", "Companies require a valid CNPJ", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
