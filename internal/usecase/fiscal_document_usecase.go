package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"paulocell_pdv/internal/domain/entities"
	"paulocell_pdv/internal/infrastructure/logger"
	"paulocell_pdv/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrFiscalDocumentNotFound       = errors.New("fiscal document not found")
	ErrInvalidFiscalDocumentID      = errors.New("invalid fiscal document id")
	ErrInvalidFiscalDocumentType    = errors.New("invalid fiscal document type")
	ErrInvalidFiscalDocumentStatus  = errors.New("invalid fiscal document status")
	ErrInvalidFiscalDocumentItems   = errors.New("invalid fiscal document items")
	ErrFiscalCustomerNotFound       = errors.New("fiscal document customer not found")
	ErrFiscalDocumentNotCancellable = errors.New("only issued documents can be cancelled")
	ErrFiscalDocumentNotPending     = errors.New("only pending documents can be issued again")
	ErrFiscalGatewayFailed          = errors.New("fiscal gateway failed")
	ErrFiscalGatewayUnavailable     = errors.New("fiscal gateway not configured")
)

type FiscalDocumentInput struct {
	Type       entities.FiscalDocumentType
	CustomerID string
	Items      []entities.FiscalDocumentItem
}

// FiscalDocumentFilter narrows the list; zero values match everything.
// From and To bound IssuedAt inclusively.
type FiscalDocumentFilter struct {
	Type   entities.FiscalDocumentType
	Status entities.FiscalDocumentStatus
	Search string
	From   *time.Time
	To     *time.Time
}

type IFiscalDocumentUseCase interface {
	Issue(ctx context.Context, in FiscalDocumentInput) (entities.FiscalDocument, error)
	RetryIssue(ctx context.Context, id string) (entities.FiscalDocument, error)
	Cancel(ctx context.Context, id string, reason string) (entities.FiscalDocument, error)
	List(ctx context.Context, f FiscalDocumentFilter) ([]entities.FiscalDocument, error)
	GetByID(ctx context.Context, id string) (entities.FiscalDocument, error)
	MoveToTrash(ctx context.Context, id string) (entities.FiscalDocument, error)
	ListTrash(ctx context.Context) ([]entities.FiscalDocument, error)
	Restore(ctx context.Context, id string) (entities.FiscalDocument, error)
	Purge(ctx context.Context, id string) error
	EmptyTrash(ctx context.Context) (int, error)
}

// FiscalDocumentUseCase issues documents through the gateway. A nil gateway
// keeps every new document pending.
type FiscalDocumentUseCase struct {
	repo           interfaces.IFiscalDocumentRepository
	customerRepo   interfaces.ICustomerRepository
	settingsRepo   interfaces.ISettingsRepository
	gateway        interfaces.IFiscalGateway
	fallbackAPIKey string

	// numbering holds one mutex per document type so a number is read and
	// stored before the next Issue of that type looks at the sequence.
	numbering sync.Map
}

var _ IFiscalDocumentUseCase = (*FiscalDocumentUseCase)(nil)

func NewFiscalDocumentUseCase(
	repo interfaces.IFiscalDocumentRepository,
	customerRepo interfaces.ICustomerRepository,
	settingsRepo interfaces.ISettingsRepository,
	gateway interfaces.IFiscalGateway,
	fallbackAPIKey string,
) *FiscalDocumentUseCase {
	return &FiscalDocumentUseCase{
		repo:           repo,
		customerRepo:   customerRepo,
		settingsRepo:   settingsRepo,
		gateway:        gateway,
		fallbackAPIKey: fallbackAPIKey,
	}
}

func (u *FiscalDocumentUseCase) Issue(ctx context.Context, in FiscalDocumentInput) (entities.FiscalDocument, error) {
	log := logger.For("fiscal", "usecase")
	if !in.Type.Valid() {
		return entities.FiscalDocument{}, ErrInvalidFiscalDocumentType
	}
	items, err := validateFiscalItems(in.Items)
	if err != nil {
		return entities.FiscalDocument{}, err
	}

	now := time.Now().UTC()
	doc := entities.FiscalDocument{
		ID:        uuid.NewString(),
		Type:      in.Type,
		Items:     items,
		IssuedAt:  now,
		CreatedAt: now,
	}
	doc.Value = doc.ComputeValue()

	if customerID := strings.TrimSpace(in.CustomerID); customerID != "" {
		c, err := u.customerRepo.GetByID(ctx, customerID)
		if err != nil {
			return entities.FiscalDocument{}, err
		}
		if c.ID == "" {
			return entities.FiscalDocument{}, ErrFiscalCustomerNotFound
		}
		doc.CustomerID = c.ID
		doc.CustomerName = c.Name
	}

	lock := u.numberLock(doc.Type)
	lock.Lock()
	defer lock.Unlock()

	number, err := u.nextNumber(ctx, doc.Type)
	if err != nil {
		return entities.FiscalDocument{}, err
	}
	doc.Number = number

	doc, err = u.submit(ctx, doc)
	if err != nil {
		log.WithError(err).WithField("number", doc.Number).Error("[fiscal][usecase] issue failed")
		return entities.FiscalDocument{}, err
	}

	created, err := u.repo.Create(ctx, doc)
	if err != nil {
		return entities.FiscalDocument{}, err
	}
	log.WithFields(map[string]interface{}{
		"document_id": created.ID,
		"number":      created.Number,
		"status":      created.Status,
	}).Info("[fiscal][usecase] document stored")
	return created, nil
}

func (u *FiscalDocumentUseCase) numberLock(t entities.FiscalDocumentType) *sync.Mutex {
	m, _ := u.numbering.LoadOrStore(t, &sync.Mutex{})
	return m.(*sync.Mutex)
}

// RetryIssue sends a pending document to the gateway again.
func (u *FiscalDocumentUseCase) RetryIssue(ctx context.Context, id string) (entities.FiscalDocument, error) {
	doc, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.FiscalDocument{}, err
	}
	if doc.Status != entities.FiscalDocumentPendente {
		return entities.FiscalDocument{}, ErrFiscalDocumentNotPending
	}
	doc.IssuedAt = time.Now().UTC()
	doc, err = u.submit(ctx, doc)
	if err != nil {
		return entities.FiscalDocument{}, err
	}
	if doc.Status == entities.FiscalDocumentPendente {
		return entities.FiscalDocument{}, ErrFiscalGatewayUnavailable
	}
	return u.save(ctx, doc)
}

func (u *FiscalDocumentUseCase) Cancel(ctx context.Context, id string, reason string) (entities.FiscalDocument, error) {
	doc, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.FiscalDocument{}, err
	}
	if doc.Status != entities.FiscalDocumentEmitida {
		return entities.FiscalDocument{}, ErrFiscalDocumentNotCancellable
	}
	if doc.ProviderRef != "" && u.gateway != nil {
		if err := u.gateway.Cancel(ctx, u.apiKey(ctx), doc.ProviderRef, strings.TrimSpace(reason)); err != nil {
			if errors.Is(err, interfaces.ErrFiscalGatewayNotConfigured) {
				return entities.FiscalDocument{}, ErrFiscalGatewayUnavailable
			}
			return entities.FiscalDocument{}, fmt.Errorf("%w: %v", ErrFiscalGatewayFailed, err)
		}
	}
	now := time.Now().UTC()
	doc.Status = entities.FiscalDocumentCancelada
	doc.CancelledAt = &now
	return u.save(ctx, doc)
}

func (u *FiscalDocumentUseCase) List(ctx context.Context, f FiscalDocumentFilter) ([]entities.FiscalDocument, error) {
	if f.Type != "" && !f.Type.Valid() {
		return nil, ErrInvalidFiscalDocumentType
	}
	if f.Status != "" && !f.Status.Valid() {
		return nil, ErrInvalidFiscalDocumentStatus
	}
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.FiscalDocument, 0, len(all))
	for _, d := range all {
		if f.Type != "" && d.Type != f.Type {
			continue
		}
		if f.Status != "" && d.Status != f.Status {
			continue
		}
		if f.From != nil && d.IssuedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && d.IssuedAt.After(*f.To) {
			continue
		}
		if !matchesSearch(f.Search, d.Number, d.CustomerName) {
			continue
		}
		out = append(out, d)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].IssuedAt.After(out[j].IssuedAt) })
	return out, nil
}

func (u *FiscalDocumentUseCase) GetByID(ctx context.Context, id string) (entities.FiscalDocument, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.FiscalDocument{}, ErrInvalidFiscalDocumentID
	}
	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.FiscalDocument{}, err
	}
	if d.ID == "" {
		return entities.FiscalDocument{}, ErrFiscalDocumentNotFound
	}
	return d, nil
}

func (u *FiscalDocumentUseCase) MoveToTrash(ctx context.Context, id string) (entities.FiscalDocument, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.FiscalDocument{}, ErrInvalidFiscalDocumentID
	}
	d, err := u.repo.MoveToTrash(ctx, id, time.Now().UTC())
	if err != nil {
		return entities.FiscalDocument{}, err
	}
	if d.ID == "" {
		return entities.FiscalDocument{}, ErrFiscalDocumentNotFound
	}
	return d, nil
}

func (u *FiscalDocumentUseCase) ListTrash(ctx context.Context) ([]entities.FiscalDocument, error) {
	items, err := u.repo.ListTrash(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return deletedAfter(items[i].DeletedAt, items[j].DeletedAt) })
	return items, nil
}

func (u *FiscalDocumentUseCase) Restore(ctx context.Context, id string) (entities.FiscalDocument, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.FiscalDocument{}, ErrInvalidFiscalDocumentID
	}
	d, err := u.repo.Restore(ctx, id)
	if err != nil {
		return entities.FiscalDocument{}, err
	}
	if d.ID == "" {
		return entities.FiscalDocument{}, ErrFiscalDocumentNotFound
	}
	return d, nil
}

func (u *FiscalDocumentUseCase) Purge(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidFiscalDocumentID
	}
	found, err := u.repo.Purge(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrFiscalDocumentNotFound
	}
	return nil
}

func (u *FiscalDocumentUseCase) EmptyTrash(ctx context.Context) (int, error) {
	return u.repo.EmptyTrash(ctx)
}

// submit calls the gateway and fills the outcome. A missing gateway or key
// leaves the document pending; any other gateway error aborts.
func (u *FiscalDocumentUseCase) submit(ctx context.Context, doc entities.FiscalDocument) (entities.FiscalDocument, error) {
	if u.gateway == nil {
		doc.Status = entities.FiscalDocumentPendente
		return doc, nil
	}
	res, err := u.gateway.Issue(ctx, u.apiKey(ctx), doc)
	if errors.Is(err, interfaces.ErrFiscalGatewayNotConfigured) {
		doc.Status = entities.FiscalDocumentPendente
		return doc, nil
	}
	if err != nil {
		return doc, fmt.Errorf("%w: %v", ErrFiscalGatewayFailed, err)
	}
	doc.Status = entities.FiscalDocumentEmitida
	doc.ProviderRef = res.ProviderRef
	doc.AccessKey = res.AccessKey
	return doc, nil
}

func (u *FiscalDocumentUseCase) apiKey(ctx context.Context) string {
	if u.settingsRepo != nil {
		s, found, err := u.settingsRepo.Get(ctx)
		if err != nil {
			logger.For("fiscal", "usecase").WithError(err).Warn("[fiscal][usecase] settings unavailable; using fallback api key")
		}
		if found && strings.TrimSpace(s.FiscalAPIKey) != "" {
			return strings.TrimSpace(s.FiscalAPIKey)
		}
	}
	return u.fallbackAPIKey
}

// nextNumber continues the per-type sequence, counting trashed documents too
// so a number is never handed out twice.
func (u *FiscalDocumentUseCase) nextNumber(ctx context.Context, t entities.FiscalDocumentType) (string, error) {
	active, err := u.repo.List(ctx)
	if err != nil {
		return "", err
	}
	trashed, err := u.repo.ListTrash(ctx)
	if err != nil {
		return "", err
	}
	prefix := t.NumberPrefix() + "-"
	highest := 0
	for _, d := range append(active, trashed...) {
		if d.Type != t || !strings.HasPrefix(d.Number, prefix) {
			continue
		}
		if n, err := strconv.Atoi(strings.TrimPrefix(d.Number, prefix)); err == nil && n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("%s%06d", prefix, highest+1), nil
}

func (u *FiscalDocumentUseCase) save(ctx context.Context, doc entities.FiscalDocument) (entities.FiscalDocument, error) {
	updated, err := u.repo.Update(ctx, doc)
	if err != nil {
		return entities.FiscalDocument{}, err
	}
	if updated.ID == "" {
		return entities.FiscalDocument{}, ErrFiscalDocumentNotFound
	}
	return updated, nil
}

func validateFiscalItems(in []entities.FiscalDocumentItem) ([]entities.FiscalDocumentItem, error) {
	if len(in) == 0 {
		return nil, ErrInvalidFiscalDocumentItems
	}
	out := make([]entities.FiscalDocumentItem, 0, len(in))
	for _, it := range in {
		it.Description = strings.TrimSpace(it.Description)
		if it.Description == "" || it.Quantity <= 0 || it.UnitPrice < 0 {
			return nil, ErrInvalidFiscalDocumentItems
		}
		out = append(out, it)
	}
	return out, nil
}
