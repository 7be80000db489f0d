package usecase

import (
	"context"
	"fmt"
	"time"

	"paulocell_pdv/internal/domain/entities"
	"paulocell_pdv/internal/infrastructure/logger"
	"paulocell_pdv/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const stockAlertTitle = "Estoque baixo"

type IStockAlertUseCase interface {
	Sweep(ctx context.Context) (int, error)
}

// StockAlertUseCase turns low-stock items into notifications, at most one
// unread alert per item.
type StockAlertUseCase struct {
	inventory     interfaces.IInventoryRepository
	notifications interfaces.INotificationRepository
}

var _ IStockAlertUseCase = (*StockAlertUseCase)(nil)

func NewStockAlertUseCase(inventory interfaces.IInventoryRepository, notifications interfaces.INotificationRepository) *StockAlertUseCase {
	return &StockAlertUseCase{inventory: inventory, notifications: notifications}
}

func (u *StockAlertUseCase) Sweep(ctx context.Context) (int, error) {
	items, err := u.inventory.List(ctx)
	if err != nil {
		return 0, err
	}
	existing, err := u.notifications.List(ctx)
	if err != nil {
		return 0, err
	}
	pending := make(map[string]bool, len(existing))
	for _, n := range existing {
		if !n.Read && n.Link != "" {
			pending[n.Link] = true
		}
	}

	created := 0
	for _, it := range items {
		if !it.LowStock() {
			continue
		}
		link := stockAlertLink(it.ID)
		if pending[link] {
			continue
		}
		n := entities.Notification{
			ID:        uuid.NewString(),
			Title:     stockAlertTitle,
			Message:   fmt.Sprintf("%s (%s) está com %d unidade(s); mínimo %d.", it.Name, it.SKU, it.CurrentStock, it.MinimumStock),
			Timestamp: time.Now().UTC(),
			Link:      link,
		}
		if _, err := u.notifications.Create(ctx, n); err != nil {
			return created, err
		}
		pending[link] = true
		created++
	}
	if created > 0 {
		logger.For("inventory", "usecase").WithField("alerts", created).Info("[inventory][usecase] low-stock alerts created")
	}
	return created, nil
}

func stockAlertLink(itemID string) string {
	return "/inventory/" + itemID
}
