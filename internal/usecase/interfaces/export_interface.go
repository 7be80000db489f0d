package interfaces

import (
	"context"

	"paulocell_pdv/internal/domain/entities"
)

// ExportTable is a format-agnostic tabular export.
type ExportTable struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// ITableExporter renders a table into one file format.
type ITableExporter interface {
	Format() string
	ContentType() string
	Render(table ExportTable) ([]byte, error)
}

// IDocumentRenderer produces printable single-record documents.
type IDocumentRenderer interface {
	RenderFiscalDocument(company entities.CompanySettings, doc entities.FiscalDocument) ([]byte, error)
	RenderServiceReceipt(company entities.CompanySettings, svc entities.Service, customer entities.Customer, device entities.Device) ([]byte, error)
}

// IArtifactArchive keeps a copy of every generated file.
type IArtifactArchive interface {
	Put(ctx context.Context, name string, contentType string, data []byte) error
}
