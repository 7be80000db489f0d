package collection

import (
	"context"
	"errors"
	"time"

	"paulocell_pdv/internal/usecase/interfaces"
)

// Trashable records can be stamped with a deletion time.
type Trashable[T any] interface {
	RecordID() string
	WithDeletedAt(at *time.Time) T
}

// Trash pairs an active collection with its "deleted" collection.
//
// Moving between the two is two separate writes. The record is appended to
// the target array first and removed from the source afterwards, so a failed
// write can leave it in both arrays for a moment but never in neither.
type Trash[T Trashable[T]] struct {
	Active  *Collection[T]
	Deleted *Collection[T]
}

func NewTrash[T Trashable[T]](store interfaces.ICollectionStore, activeKey, deletedKey string) *Trash[T] {
	return &Trash[T]{
		Active:  New[T](store, activeKey),
		Deleted: New[T](store, deletedKey),
	}
}

// MoveToTrash copies id, stamped with deletedAt=at, into the trash array and
// then removes it from the active array.
func (t *Trash[T]) MoveToTrash(ctx context.Context, id string, at time.Time) (T, bool, error) {
	rec, found, err := t.Active.Get(ctx, id)
	if err != nil || !found {
		var zero T
		return zero, found, err
	}
	return move(ctx, t.Active, t.Deleted, id, rec.WithDeletedAt(&at))
}

// Restore clears deletedAt and puts the record back in the active array.
func (t *Trash[T]) Restore(ctx context.Context, id string) (T, bool, error) {
	rec, found, err := t.Deleted.Get(ctx, id)
	if err != nil || !found {
		var zero T
		return zero, found, err
	}
	return move(ctx, t.Deleted, t.Active, id, rec.WithDeletedAt(nil))
}

// move appends rec to dst, then drops id from src. If the removal fails the
// copy in dst is taken back out.
func move[T Trashable[T]](ctx context.Context, src, dst *Collection[T], id string, rec T) (T, bool, error) {
	var zero T
	if err := dst.Mutate(ctx, func(all []T) ([]T, error) {
		return append(removeID(all, id), rec), nil
	}); err != nil {
		return zero, true, err
	}
	if _, _, err := src.Remove(ctx, id); err != nil {
		if _, _, rbErr := dst.Remove(ctx, id); rbErr != nil {
			return zero, true, errors.Join(err, rbErr)
		}
		return zero, true, err
	}
	return rec, true, nil
}

// Purge deletes id from the trash permanently.
func (t *Trash[T]) Purge(ctx context.Context, id string) (bool, error) {
	_, found, err := t.Deleted.Remove(ctx, id)
	return found, err
}

func (t *Trash[T]) List(ctx context.Context) ([]T, error) {
	return t.Deleted.All(ctx)
}

// Empty purges every trashed record and returns how many there were.
func (t *Trash[T]) Empty(ctx context.Context) (int, error) {
	n := 0
	err := t.Deleted.Mutate(ctx, func(all []T) ([]T, error) {
		n = len(all)
		if n == 0 {
			return nil, errUnchanged
		}
		return []T{}, nil
	})
	return n, err
}

func removeID[T interface{ RecordID() string }](all []T, id string) []T {
	out := all[:0]
	for _, rec := range all {
		if rec.RecordID() != id {
			out = append(out, rec)
		}
	}
	return out
}
