package interfaces

import (
	"context"

	"paulocell_pdv/internal/domain/entities"
)

// ISettingsRepository stores the single company settings object.
// Get reports found=false when nothing was saved yet.
type ISettingsRepository interface {
	Get(ctx context.Context) (settings entities.CompanySettings, found bool, err error)
	Save(ctx context.Context, s entities.CompanySettings) error
}
