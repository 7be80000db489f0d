package handlers

import (
	"errors"
	"io"
	"net/http"

	request "paulocell_pdv/internal/adapter/http/dto/request"
	response "paulocell_pdv/internal/adapter/http/dto/response"
	"paulocell_pdv/internal/usecase"
	"paulocell_pdv/pkg"

	"github.com/gin-gonic/gin"
)

// FiscalDocumentHandler serves NF-e, NFC-e and NFS-e documents.
type FiscalDocumentHandler struct {
	usecase usecase.IFiscalDocumentUseCase
}

func NewFiscalDocumentHandler(uc usecase.IFiscalDocumentUseCase) *FiscalDocumentHandler {
	return &FiscalDocumentHandler{usecase: uc}
}

// IssueDocument godoc
// @Summary      Issue a fiscal document
// @Description  Documents stay Pendente when the fiscal gateway is not configured.
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        document  body      request.FiscalDocumentRequest  true  "Document"
// @Success      201       {object}  entities.FiscalDocument
// @Failure      400,404,502  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /documents [post]
func (h *FiscalDocumentHandler) IssueDocument(c *gin.Context) {
	var payload request.FiscalDocumentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, "fiscal", bindError(err))
		return
	}
	doc, err := h.usecase.Issue(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, "fiscal", mapFiscalDocumentError(err))
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// @Summary  List fiscal documents
// @Tags     documents
// @Produce  json
// @Param    type    query  string  false  "nfe, nfce or nfse"
// @Param    status  query  string  false  "Emitida, Cancelada or Pendente"
// @Param    search  query  string  false  "Search over number and customer name"
// @Param    from    query  string  false  "Issued on or after (yyyy-mm-dd)"
// @Param    to      query  string  false  "Issued on or before (yyyy-mm-dd)"
// @Success  200  {object}  response.ListResponse[entities.FiscalDocument]
// @Failure  400  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /documents [get]
func (h *FiscalDocumentHandler) ListDocuments(c *gin.Context) {
	var q request.FiscalDocumentQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, "fiscal", bindError(err))
		return
	}
	docs, err := h.usecase.List(c.Request.Context(), q.ToFilter())
	if err != nil {
		writeError(c, "fiscal", mapFiscalDocumentError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(docs))
}

// @Summary  Get a fiscal document
// @Tags     documents
// @Produce  json
// @Param    id   path      string  true  "Document ID"
// @Success  200  {object}  entities.FiscalDocument
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /documents/{id} [get]
func (h *FiscalDocumentHandler) GetDocument(c *gin.Context) {
	doc, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "fiscal", mapFiscalDocumentError(err))
		return
	}
	c.JSON(http.StatusOK, doc)
}

// @Summary  Retry issuing a pending document
// @Tags     documents
// @Produce  json
// @Param    id   path      string  true  "Document ID"
// @Success  200  {object}  entities.FiscalDocument
// @Failure  404,409,502,503  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /documents/{id}/issue [post]
func (h *FiscalDocumentHandler) RetryIssue(c *gin.Context) {
	doc, err := h.usecase.RetryIssue(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "fiscal", mapFiscalDocumentError(err))
		return
	}
	c.JSON(http.StatusOK, doc)
}

// @Summary  Cancel an issued document
// @Tags     documents
// @Accept   json
// @Produce  json
// @Param    id      path      string                               true   "Document ID"
// @Param    reason  body      request.CancelFiscalDocumentRequest  false  "Reason"
// @Success  200     {object}  entities.FiscalDocument
// @Failure  400,404,409,502  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /documents/{id}/cancel [post]
func (h *FiscalDocumentHandler) CancelDocument(c *gin.Context) {
	var payload request.CancelFiscalDocumentRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		writeError(c, "fiscal", bindError(err))
		return
	}
	doc, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"), payload.Reason)
	if err != nil {
		writeError(c, "fiscal", mapFiscalDocumentError(err))
		return
	}
	c.JSON(http.StatusOK, doc)
}

// @Summary  Move a document to the trash
// @Tags     documents
// @Produce  json
// @Param    id   path      string  true  "Document ID"
// @Success  200  {object}  entities.FiscalDocument
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /documents/{id} [delete]
func (h *FiscalDocumentHandler) TrashDocument(c *gin.Context) {
	doc, err := h.usecase.MoveToTrash(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "fiscal", mapFiscalDocumentError(err))
		return
	}
	c.JSON(http.StatusOK, doc)
}

// @Summary  List trashed documents
// @Tags     documents
// @Produce  json
// @Success  200  {object}  response.ListResponse[entities.FiscalDocument]
// @Security Bearer
// @Router   /documents/trash [get]
func (h *FiscalDocumentHandler) ListTrash(c *gin.Context) {
	docs, err := h.usecase.ListTrash(c.Request.Context())
	if err != nil {
		writeError(c, "fiscal", mapFiscalDocumentError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(docs))
}

// @Summary  Restore a trashed document
// @Tags     documents
// @Produce  json
// @Param    id   path      string  true  "Document ID"
// @Success  200  {object}  entities.FiscalDocument
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /documents/{id}/restore [post]
func (h *FiscalDocumentHandler) RestoreDocument(c *gin.Context) {
	doc, err := h.usecase.Restore(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "fiscal", mapFiscalDocumentError(err))
		return
	}
	c.JSON(http.StatusOK, doc)
}

// @Summary  Permanently delete a trashed document
// @Tags     documents
// @Param    id   path  string  true  "Document ID"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /documents/{id}/purge [delete]
func (h *FiscalDocumentHandler) PurgeDocument(c *gin.Context) {
	if err := h.usecase.Purge(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, "fiscal", mapFiscalDocumentError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary  Empty the document trash
// @Tags     documents
// @Produce  json
// @Success  200  {object}  response.TrashEmptiedResponse
// @Security Bearer
// @Router   /documents/trash [delete]
func (h *FiscalDocumentHandler) EmptyTrash(c *gin.Context) {
	n, err := h.usecase.EmptyTrash(c.Request.Context())
	if err != nil {
		writeError(c, "fiscal", mapFiscalDocumentError(err))
		return
	}
	c.JSON(http.StatusOK, response.TrashEmptiedResponse{Purged: n})
}

func mapFiscalDocumentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidFiscalDocumentID), errors.Is(err, usecase.ErrInvalidFiscalDocumentType),
		errors.Is(err, usecase.ErrInvalidFiscalDocumentStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidFiscalDocumentItems):
		return pkg.NewDomainErrorSimple("INVALID_ITEMS", "At least one item with quantity > 0 and unit price >= 0 is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFiscalCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFiscalDocumentNotFound):
		return pkg.NewDomainErrorSimple("FISCAL_DOCUMENT_NOT_FOUND", "Fiscal document not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFiscalDocumentNotCancellable):
		return pkg.NewDomainErrorSimple("FISCAL_DOCUMENT_NOT_CANCELLABLE", "Only issued documents can be cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrFiscalDocumentNotPending):
		return pkg.NewDomainErrorSimple("FISCAL_DOCUMENT_NOT_PENDING", "Only pending documents can be issued again", http.StatusConflict)
	case errors.Is(err, usecase.ErrFiscalGatewayUnavailable):
		return pkg.NewDomainErrorSimple("FISCAL_GATEWAY_NOT_CONFIGURED", "Fiscal gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrFiscalGatewayFailed):
		return pkg.NewDomainError("FISCAL_GATEWAY_ERROR", "Fiscal provider rejected the request", err, http.StatusBadGateway)
	default:
		return internalError(err)
	}
}
