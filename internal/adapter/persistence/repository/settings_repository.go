package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"paulocell_pdv/internal/domain/entities"
	"paulocell_pdv/internal/usecase/interfaces"
)

// SettingsRepository stores the company settings as one JSON object under
// its key, not as an array.
type SettingsRepository struct {
	store interfaces.ICollectionStore
	key   string
}

var _ interfaces.ISettingsRepository = (*SettingsRepository)(nil)

func NewSettingsRepository(store interfaces.ICollectionStore, keys Keys) *SettingsRepository {
	return &SettingsRepository{store: store, key: keys.CompanySettings}
}

func (r *SettingsRepository) Get(ctx context.Context) (entities.CompanySettings, bool, error) {
	raw, err := r.store.Get(ctx, r.key)
	if err != nil {
		return entities.CompanySettings{}, false, err
	}
	if len(raw) == 0 || string(raw) == "null" {
		return entities.CompanySettings{}, false, nil
	}
	var s entities.CompanySettings
	if err := json.Unmarshal(raw, &s); err != nil {
		return entities.CompanySettings{}, false, fmt.Errorf("decode %s: %w", r.key, err)
	}
	return s, true, nil
}

func (r *SettingsRepository) Save(ctx context.Context, s entities.CompanySettings) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, r.key, raw)
}
