package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"paulocell_pdv/internal/adapter/persistence/repository"
	"paulocell_pdv/internal/adapter/persistence/store"
)

func TestNotificationUseCase(t *testing.T) {
	ctx := context.Background()
	uc := NewNotificationUseCase(repository.NewNotificationRepository(store.NewMemoryStore(), repository.NewKeys("test_")))

	if _, err := uc.Create(ctx, "  ", "x", ""); !errors.Is(err, ErrInvalidNotificationTitle) {
		t.Fatalf("expected ErrInvalidNotificationTitle, got %v", err)
	}
	first, _ := uc.Create(ctx, "Primeira", "a", "/services/1")
	time.Sleep(time.Millisecond)
	second, _ := uc.Create(ctx, "Segunda", "b", "")

	all, err := uc.List(ctx, false)
	if err != nil || len(all) != 2 || all[0].ID != second.ID {
		t.Fatalf("expected newest first, err=%v list=%+v", err, all)
	}

	read, err := uc.MarkRead(ctx, first.ID)
	if err != nil || !read.Read {
		t.Fatalf("unexpected mark read err=%v n=%+v", err, read)
	}
	if _, err := uc.MarkRead(ctx, "missing"); !errors.Is(err, ErrNotificationNotFound) {
		t.Fatalf("expected ErrNotificationNotFound, got %v", err)
	}

	unread, _ := uc.List(ctx, true)
	if len(unread) != 1 || unread[0].ID != second.ID {
		t.Fatalf("unexpected unread list %+v", unread)
	}
	if n, _ := uc.UnreadCount(ctx); n != 1 {
		t.Fatalf("expected 1 unread, got %d", n)
	}
	if n, err := uc.MarkAllRead(ctx); err != nil || n != 1 {
		t.Fatalf("unexpected mark all err=%v n=%d", err, n)
	}
	if n, _ := uc.UnreadCount(ctx); n != 0 {
		t.Fatalf("expected 0 unread, got %d", n)
	}

	if err := uc.Delete(ctx, first.ID); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}
	if err := uc.Delete(ctx, first.ID); !errors.Is(err, ErrNotificationNotFound) {
		t.Fatalf("expected ErrNotificationNotFound, got %v", err)
	}
}
