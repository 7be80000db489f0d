package repository

import (
	"context"
	"time"

	"paulocell_pdv/internal/adapter/persistence/collection"
	"paulocell_pdv/internal/domain/entities"
	"paulocell_pdv/internal/usecase/interfaces"
)

// FiscalDocumentRepository mirrors CustomerRepository for issued documents.
type FiscalDocumentRepository struct {
	trash *collection.Trash[entities.FiscalDocument]
}

var _ interfaces.IFiscalDocumentRepository = (*FiscalDocumentRepository)(nil)

func NewFiscalDocumentRepository(store interfaces.ICollectionStore, keys Keys) *FiscalDocumentRepository {
	return &FiscalDocumentRepository{
		trash: collection.NewTrash[entities.FiscalDocument](store, keys.Documents, keys.DeletedDocuments),
	}
}

func (r *FiscalDocumentRepository) List(ctx context.Context) ([]entities.FiscalDocument, error) {
	return r.trash.Active.All(ctx)
}

func (r *FiscalDocumentRepository) GetByID(ctx context.Context, id string) (entities.FiscalDocument, error) {
	d, _, err := r.trash.Active.Get(ctx, id)
	return d, err
}

func (r *FiscalDocumentRepository) Create(ctx context.Context, d entities.FiscalDocument) (entities.FiscalDocument, error) {
	if err := r.trash.Active.Insert(ctx, d); err != nil {
		return entities.FiscalDocument{}, err
	}
	return d, nil
}

func (r *FiscalDocumentRepository) Update(ctx context.Context, d entities.FiscalDocument) (entities.FiscalDocument, error) {
	found, err := r.trash.Active.Replace(ctx, d)
	if err != nil || !found {
		return entities.FiscalDocument{}, err
	}
	return d, nil
}

func (r *FiscalDocumentRepository) MoveToTrash(ctx context.Context, id string, at time.Time) (entities.FiscalDocument, error) {
	d, _, err := r.trash.MoveToTrash(ctx, id, at)
	return d, err
}

func (r *FiscalDocumentRepository) ListTrash(ctx context.Context) ([]entities.FiscalDocument, error) {
	return r.trash.List(ctx)
}

func (r *FiscalDocumentRepository) Restore(ctx context.Context, id string) (entities.FiscalDocument, error) {
	d, _, err := r.trash.Restore(ctx, id)
	return d, err
}

func (r *FiscalDocumentRepository) Purge(ctx context.Context, id string) (bool, error) {
	return r.trash.Purge(ctx, id)
}

func (r *FiscalDocumentRepository) EmptyTrash(ctx context.Context) (int, error) {
	return r.trash.Empty(ctx)
}
