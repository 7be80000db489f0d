package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"paulocell_pdv/internal/domain/entities"
	"paulocell_pdv/internal/infrastructure/logger"
	"paulocell_pdv/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrInvalidCustomerID    = errors.New("invalid customer id")
	ErrInvalidCustomerName  = errors.New("invalid customer name")
	ErrCompanyTaxIDRequired = errors.New("company customers require a cnpj")
)

// CustomerInput carries the editable customer fields.
type CustomerInput struct {
	Name         string
	Email        string
	Phone        string
	TaxID        string
	IsCompany    bool
	PostalCode   string
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	State        string
	Notes        string
}

type CustomerFilter struct {
	Search    string
	IsCompany *bool
}

type ICustomerUseCase interface {
	Create(ctx context.Context, in CustomerInput) (entities.Customer, error)
	List(ctx context.Context, f CustomerFilter) ([]entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	Update(ctx context.Context, id string, in CustomerInput) (entities.Customer, error)
	MoveToTrash(ctx context.Context, id string) (entities.Customer, error)
	ListTrash(ctx context.Context) ([]entities.Customer, error)
	Restore(ctx context.Context, id string) (entities.Customer, error)
	Purge(ctx context.Context, id string) error
	EmptyTrash(ctx context.Context) (int, error)
}

type CustomerUseCase struct {
	repo interfaces.ICustomerRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

func (u *CustomerUseCase) Create(ctx context.Context, in CustomerInput) (entities.Customer, error) {
	c, err := buildCustomer(in)
	if err != nil {
		return entities.Customer{}, err
	}
	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Customer{}, err
	}
	logger.For("customer", "usecase").WithField("customer_id", created.ID).Info("[customer][usecase] created")
	return created, nil
}

func (u *CustomerUseCase) List(ctx context.Context, f CustomerFilter) ([]entities.Customer, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Customer, 0, len(all))
	for _, c := range all {
		if f.IsCompany != nil && c.IsCompany != *f.IsCompany {
			continue
		}
		if !matchesSearch(f.Search, c.Name, c.Email, c.Phone, c.TaxID, c.City) && !matchesDigits(f.Search, c.Phone, c.TaxID) {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool { return foldText(out[i].Name) < foldText(out[j].Name) })
	return out, nil
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) Update(ctx context.Context, id string, in CustomerInput) (entities.Customer, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	c, err := buildCustomer(in)
	if err != nil {
		return entities.Customer{}, err
	}
	c.ID = current.ID
	c.CreatedAt = current.CreatedAt
	c.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		return entities.Customer{}, err
	}
	if updated.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return updated, nil
}

func (u *CustomerUseCase) MoveToTrash(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	c, err := u.repo.MoveToTrash(ctx, id, time.Now().UTC())
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	logger.For("customer", "usecase").WithField("customer_id", id).Info("[customer][usecase] moved to trash")
	return c, nil
}

func (u *CustomerUseCase) ListTrash(ctx context.Context) ([]entities.Customer, error) {
	items, err := u.repo.ListTrash(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return deletedAfter(items[i].DeletedAt, items[j].DeletedAt) })
	return items, nil
}

func (u *CustomerUseCase) Restore(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	c, err := u.repo.Restore(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) Purge(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCustomerID
	}
	found, err := u.repo.Purge(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrCustomerNotFound
	}
	return nil
}

func (u *CustomerUseCase) EmptyTrash(ctx context.Context) (int, error) {
	n, err := u.repo.EmptyTrash(ctx)
	if err != nil {
		return 0, err
	}
	logger.For("customer", "usecase").WithField("purged", n).Info("[customer][usecase] trash emptied")
	return n, nil
}

// buildCustomer validates the form fields and normalizes masked values to digits.
func buildCustomer(in CustomerInput) (entities.Customer, error) {
	c := entities.Customer{
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.TrimSpace(in.Email),
		IsCompany:    in.IsCompany,
		Street:       strings.TrimSpace(in.Street),
		Number:       strings.TrimSpace(in.Number),
		Complement:   strings.TrimSpace(in.Complement),
		Neighborhood: strings.TrimSpace(in.Neighborhood),
		City:         strings.TrimSpace(in.City),
		Notes:        strings.TrimSpace(in.Notes),
	}
	if len([]rune(c.Name)) < 2 {
		return entities.Customer{}, ErrInvalidCustomerName
	}
	if c.Email != "" && !validEmail(c.Email) {
		return entities.Customer{}, ErrInvalidEmail
	}
	if p := strings.TrimSpace(in.Phone); p != "" {
		phone, err := normalizePhone(p)
		if err != nil {
			return entities.Customer{}, err
		}
		c.Phone = phone
	}

	taxID := entities.OnlyDigits(in.TaxID)
	switch {
	case c.IsCompany && taxID == "":
		return entities.Customer{}, ErrCompanyTaxIDRequired
	case c.IsCompany && !entities.IsValidCNPJ(taxID):
		return entities.Customer{}, ErrInvalidTaxID
	case !c.IsCompany && taxID != "" && !entities.IsValidCPF(taxID):
		return entities.Customer{}, ErrInvalidTaxID
	}
	c.TaxID = taxID

	if strings.TrimSpace(in.PostalCode) != "" {
		cep, err := normalizePostalCode(in.PostalCode)
		if err != nil {
			return entities.Customer{}, err
		}
		c.PostalCode = cep
	}
	state, err := normalizeState(in.State)
	if err != nil {
		return entities.Customer{}, err
	}
	c.State = state
	return c, nil
}

func deletedAfter(a, b *time.Time) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	}
	return a.After(*b)
}
