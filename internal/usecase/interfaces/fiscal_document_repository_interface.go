package interfaces

import (
	"context"
	"time"

	"paulocell_pdv/internal/domain/entities"
)

// IFiscalDocumentRepository persists fiscal documents and their trash.
type IFiscalDocumentRepository interface {
	List(ctx context.Context) ([]entities.FiscalDocument, error)
	GetByID(ctx context.Context, id string) (entities.FiscalDocument, error)
	Create(ctx context.Context, d entities.FiscalDocument) (entities.FiscalDocument, error)
	Update(ctx context.Context, d entities.FiscalDocument) (entities.FiscalDocument, error)
	MoveToTrash(ctx context.Context, id string, at time.Time) (entities.FiscalDocument, error)
	ListTrash(ctx context.Context) ([]entities.FiscalDocument, error)
	Restore(ctx context.Context, id string) (entities.FiscalDocument, error)
	Purge(ctx context.Context, id string) (bool, error)
	EmptyTrash(ctx context.Context) (int, error)
}
