package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"paulocell_pdv/internal/usecase"
	"paulocell_pdv/pkg"

	"github.com/gin-gonic/gin"
)

// ExportHandler streams generated spreadsheets and PDFs.
type ExportHandler struct {
	usecase usecase.IExportUseCase
}

func NewExportHandler(uc usecase.IExportUseCase) *ExportHandler {
	return &ExportHandler{usecase: uc}
}

// ExportDataset godoc
// @Summary  Download a dataset
// @Tags     exports
// @Produce  octet-stream
// @Param    dataset  path   string  true   "customers, services, inventory or documents"
// @Param    format   query  string  false  "csv (default), xlsx or pdf"
// @Success  200  {file}  file
// @Failure  400  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /exports/{dataset} [get]
func (h *ExportHandler) ExportDataset(c *gin.Context) {
	file, err := h.usecase.Export(c.Request.Context(), c.Param("dataset"), c.DefaultQuery("format", "csv"))
	if err != nil {
		writeError(c, "export", mapExportError(err))
		return
	}
	sendFile(c, file)
}

// @Summary  Printable fiscal document
// @Tags     exports
// @Produce  application/pdf
// @Param    id   path  string  true  "Document ID"
// @Success  200  {file}  file
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /documents/{id}/pdf [get]
func (h *ExportHandler) FiscalDocumentPDF(c *gin.Context) {
	file, err := h.usecase.FiscalDocumentPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "export", mapExportError(err))
		return
	}
	sendFile(c, file)
}

// @Summary  Printable service order receipt
// @Tags     exports
// @Produce  application/pdf
// @Param    id   path  string  true  "Service ID"
// @Success  200  {file}  file
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /services/{id}/receipt [get]
func (h *ExportHandler) ServiceReceiptPDF(c *gin.Context) {
	file, err := h.usecase.ServiceReceiptPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, "export", mapExportError(err))
		return
	}
	sendFile(c, file)
}

func sendFile(c *gin.Context, file usecase.ExportFile) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

func mapExportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnknownExportDataset):
		return pkg.NewDomainErrorSimple("UNKNOWN_DATASET", "Unknown dataset", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownExportFormat):
		return pkg.NewDomainErrorSimple("UNKNOWN_FORMAT", "Unknown export format", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidFiscalDocumentID), errors.Is(err, usecase.ErrInvalidServiceID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrFiscalDocumentNotFound):
		return pkg.NewDomainErrorSimple("FISCAL_DOCUMENT_NOT_FOUND", "Fiscal document not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDocumentRenderer):
		return pkg.NewDomainErrorSimple("RENDERER_NOT_CONFIGURED", "PDF rendering not available", http.StatusServiceUnavailable)
	default:
		return internalError(err)
	}
}
