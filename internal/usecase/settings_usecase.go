package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"paulocell_pdv/internal/domain/entities"
	"paulocell_pdv/internal/usecase/interfaces"
)

var (
	ErrInvalidCompanyName       = errors.New("invalid company name")
	ErrInvalidFiscalEnvironment = errors.New("invalid fiscal environment")
)

// SettingsInput mirrors CompanySettings. An empty FiscalAPIKey keeps the
// stored key, since clients only ever see it masked.
type SettingsInput struct {
	Name              string
	TaxID             string
	Phone             string
	Email             string
	PostalCode        string
	Street            string
	Number            string
	Neighborhood      string
	City              string
	State             string
	FiscalAPIKey      string
	FiscalEnvironment string
}

type ISettingsUseCase interface {
	Get(ctx context.Context) (entities.CompanySettings, error)
	Save(ctx context.Context, in SettingsInput) (entities.CompanySettings, error)
}

type SettingsUseCase struct {
	repo interfaces.ISettingsRepository
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.ISettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get returns the stored settings or the defaults when nothing was saved.
func (u *SettingsUseCase) Get(ctx context.Context) (entities.CompanySettings, error) {
	s, found, err := u.repo.Get(ctx)
	if err != nil {
		return entities.CompanySettings{}, err
	}
	if !found {
		return entities.DefaultCompanySettings(), nil
	}
	return s, nil
}

func (u *SettingsUseCase) Save(ctx context.Context, in SettingsInput) (entities.CompanySettings, error) {
	current, err := u.Get(ctx)
	if err != nil {
		return entities.CompanySettings{}, err
	}
	s := entities.CompanySettings{
		Name:              strings.TrimSpace(in.Name),
		Street:            strings.TrimSpace(in.Street),
		Number:            strings.TrimSpace(in.Number),
		Neighborhood:      strings.TrimSpace(in.Neighborhood),
		City:              strings.TrimSpace(in.City),
		Email:             strings.TrimSpace(in.Email),
		FiscalAPIKey:      strings.TrimSpace(in.FiscalAPIKey),
		FiscalEnvironment: strings.TrimSpace(in.FiscalEnvironment),
		UpdatedAt:         time.Now().UTC(),
	}
	if s.Name == "" {
		return entities.CompanySettings{}, ErrInvalidCompanyName
	}
	if s.Email != "" && !validEmail(s.Email) {
		return entities.CompanySettings{}, ErrInvalidEmail
	}
	if p := strings.TrimSpace(in.Phone); p != "" {
		if s.Phone, err = normalizePhone(p); err != nil {
			return entities.CompanySettings{}, err
		}
	}
	if taxID := entities.OnlyDigits(in.TaxID); taxID != "" {
		if !entities.IsValidCNPJ(taxID) && !entities.IsValidCPF(taxID) {
			return entities.CompanySettings{}, ErrInvalidTaxID
		}
		s.TaxID = taxID
	}
	if strings.TrimSpace(in.PostalCode) != "" {
		if s.PostalCode, err = normalizePostalCode(in.PostalCode); err != nil {
			return entities.CompanySettings{}, err
		}
	}
	if s.State, err = normalizeState(in.State); err != nil {
		return entities.CompanySettings{}, err
	}
	switch s.FiscalEnvironment {
	case "":
		s.FiscalEnvironment = entities.FiscalEnvironmentHomologation
	case entities.FiscalEnvironmentHomologation, entities.FiscalEnvironmentProduction:
	default:
		return entities.CompanySettings{}, ErrInvalidFiscalEnvironment
	}
	if s.FiscalAPIKey == "" {
		s.FiscalAPIKey = current.FiscalAPIKey
	}

	if err := u.repo.Save(ctx, s); err != nil {
		return entities.CompanySettings{}, err
	}
	return s, nil
}
