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

type InventoryHandler struct {
	usecase usecase.IInventoryUseCase
}

func NewInventoryHandler(uc usecase.IInventoryUseCase) *InventoryHandler {
	return &InventoryHandler{usecase: uc}
}

// @Summary  Add an inventory item
// @Tags     inventory
// @Accept   json
// @Produce  json
// @Param    item  body      request.InventoryRequest  true  "Item"
// @Success  201   {object}  entities.InventoryItem
// @Failure  400,409  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /inventory [post]
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var payload request.InventoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, "inventory", bindError(err))
		return
	}
	item, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, "inventory", mapInventoryError(err))
		return
	}
	c.JSON(http.StatusCreated, item)
}

// @Summary  List inventory items
// @Tags     inventory
// @Produce  json
// @Param    category  query  string  false  "Category"
// @Param    lowStock  query  bool    false  "Only items at or below the minimum stock"
// @Param    search    query  string  false  "Search over name, SKU and category"
// @Success  200  {object}  response.ListResponse[entities.InventoryItem]
// @Security Bearer
// @Router   /inventory [get]
func (h *InventoryHandler) ListItems(c *gin.Context) {
	f := usecase.InventoryFilter{Category: c.Query("category"), Search: c.Query("search")}
	if v := c.Query("lowStock"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(c, "inventory", errInvalidRequest)
			return
		}
		f.LowStock = b
	}
	items, err := h.usecase.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, "inventory", mapInventoryError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(items))
}

// @Summary  List items at or below the minimum stock
// @Tags     inventory
// @Produce  json
// @Success  200  {object}  response.ListResponse[entities.InventoryItem]
// @Security Bearer
// @Router   /inventory/low-stock [get]
func (h *InventoryHandler) ListLowStock(c *gin.Context) {
	items, err := h.usecase.ListLowStock(c.Request.Context())
	if err != nil {
		writeError(c, "inventory", mapInventoryError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(items))
}

// @Summary  Get an inventory item
// @Tags     inventory
// @Produce  json
// @Param    id   path      string  true  "Item ID"
// @Success  200  {object}  entities.InventoryItem
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /inventory/{id} [get]
func (h *InventoryHandler) GetItem(c *gin.Context) {
	item, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "inventory", mapInventoryError(err))
		return
	}
	c.JSON(http.StatusOK, item)
}

// @Summary  Update an inventory item
// @Tags     inventory
// @Accept   json
// @Produce  json
// @Param    id    path      string                    true  "Item ID"
// @Param    item  body      request.InventoryRequest  true  "Item"
// @Success  200   {object}  entities.InventoryItem
// @Failure  400,404,409  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /inventory/{id} [put]
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	var payload request.InventoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, "inventory", bindError(err))
		return
	}
	item, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, "inventory", mapInventoryError(err))
		return
	}
	c.JSON(http.StatusOK, item)
}

// @Summary  Adjust stock by a signed delta
// @Tags     inventory
// @Accept   json
// @Produce  json
// @Param    id          path      string                          true  "Item ID"
// @Param    adjustment  body      request.StockAdjustmentRequest  true  "Delta"
// @Success  200         {object}  entities.InventoryItem
// @Failure  400,404,409 {object}  pkg.HTTPError
// @Security Bearer
// @Router   /inventory/{id}/adjust [post]
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	var payload request.StockAdjustmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, "inventory", bindError(err))
		return
	}
	item, err := h.usecase.AdjustStock(c.Request.Context(), c.Param("id"), payload.Delta)
	if err != nil {
		writeError(c, "inventory", mapInventoryError(err))
		return
	}
	c.JSON(http.StatusOK, item)
}

// @Summary  Delete an inventory item
// @Tags     inventory
// @Param    id   path  string  true  "Item ID"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /inventory/{id} [delete]
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, "inventory", mapInventoryError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapInventoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInventoryItemID), errors.Is(err, usecase.ErrInvalidInventoryName),
		errors.Is(err, usecase.ErrInvalidSKU), errors.Is(err, usecase.ErrInvalidPrice),
		errors.Is(err, usecase.ErrInvalidStock):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDuplicateSKU):
		return pkg.NewDomainErrorSimple("DUPLICATE_SKU", "SKU already in use", http.StatusConflict)
	case errors.Is(err, usecase.ErrInsufficientStock):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", "Not enough stock", http.StatusConflict)
	case errors.Is(err, usecase.ErrInventoryItemNotFound):
		return pkg.NewDomainErrorSimple("INVENTORY_ITEM_NOT_FOUND", "Inventory item not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
