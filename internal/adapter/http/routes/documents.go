package routes

import (
	"paulocell_pdv/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addDocumentRoutes(rg *gin.RouterGroup, documentHandler *handlers.FiscalDocumentHandler, exportHandler *handlers.ExportHandler) {
	documents := rg.Group(PathDocuments)
	{
		documents.POST("", documentHandler.IssueDocument)
		documents.GET("", documentHandler.ListDocuments)
		documents.GET("/trash", documentHandler.ListTrash)
		documents.DELETE("/trash", documentHandler.EmptyTrash)
		documents.GET("/:id", documentHandler.GetDocument)
		documents.GET("/:id/pdf", exportHandler.FiscalDocumentPDF)
		documents.POST("/:id/issue", documentHandler.RetryIssue)
		documents.POST("/:id/cancel", documentHandler.CancelDocument)
		documents.DELETE("/:id", documentHandler.TrashDocument)
		documents.POST("/:id/restore", documentHandler.RestoreDocument)
		documents.DELETE("/:id/purge", documentHandler.PurgeDocument)
	}
}
