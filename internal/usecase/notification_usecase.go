package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"paulocell_pdv/internal/domain/entities"
	"paulocell_pdv/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrNotificationNotFound     = errors.New("notification not found")
	ErrInvalidNotificationID    = errors.New("invalid notification id")
	ErrInvalidNotificationTitle = errors.New("invalid notification title")
)

type INotificationUseCase interface {
	List(ctx context.Context, unreadOnly bool) ([]entities.Notification, error)
	Create(ctx context.Context, title string, message string, link string) (entities.Notification, error)
	MarkRead(ctx context.Context, id string) (entities.Notification, error)
	MarkAllRead(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) error
	UnreadCount(ctx context.Context) (int, error)
}

type NotificationUseCase struct {
	repo interfaces.INotificationRepository
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(repo interfaces.INotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

// List returns notifications newest first.
func (u *NotificationUseCase) List(ctx context.Context, unreadOnly bool) ([]entities.Notification, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Notification, 0, len(all))
	for _, n := range all {
		if unreadOnly && n.Read {
			continue
		}
		out = append(out, n)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (u *NotificationUseCase) Create(ctx context.Context, title, message, link string) (entities.Notification, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return entities.Notification{}, ErrInvalidNotificationTitle
	}
	return u.repo.Create(ctx, entities.Notification{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   strings.TrimSpace(message),
		Timestamp: time.Now().UTC(),
		Link:      strings.TrimSpace(link),
	})
}

func (u *NotificationUseCase) MarkRead(ctx context.Context, id string) (entities.Notification, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Notification{}, ErrInvalidNotificationID
	}
	all, err := u.repo.List(ctx)
	if err != nil {
		return entities.Notification{}, err
	}
	for _, n := range all {
		if n.ID != id {
			continue
		}
		if n.Read {
			return n, nil
		}
		n.Read = true
		updated, err := u.repo.Update(ctx, n)
		if err != nil {
			return entities.Notification{}, err
		}
		if updated.ID == "" {
			return entities.Notification{}, ErrNotificationNotFound
		}
		return updated, nil
	}
	return entities.Notification{}, ErrNotificationNotFound
}

func (u *NotificationUseCase) MarkAllRead(ctx context.Context) (int, error) {
	return u.repo.MarkAllRead(ctx)
}

func (u *NotificationUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidNotificationID
	}
	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotificationNotFound
	}
	return nil
}

func (u *NotificationUseCase) UnreadCount(ctx context.Context) (int, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, it := range all {
		if !it.Read {
			n++
		}
	}
	return n, nil
}
