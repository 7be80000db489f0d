package collection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"paulocell_pdv/internal/domain/entities"
	"paulocell_pdv/internal/usecase/interfaces"
)

var (
	ErrCorruptCollection = errors.New("collection value is not a valid json array")
	ErrEmptyID           = errors.New("record id is empty")
	ErrDuplicateID       = errors.New("record id already exists")
)

// locks serializes read-modify-write cycles per key inside the process.
// Collections over the same key share the same mutex, whatever their element type.
var locks sync.Map

func lockFor(key string) *sync.Mutex {
	m, _ := locks.LoadOrStore(key, &sync.Mutex{})
	return m.(*sync.Mutex)
}

// Collection is a named key holding the whole JSON array of T.
//
// Every write decodes the full array, changes it in memory and encodes the
// full array back. There are no partial updates.
type Collection[T entities.Record] struct {
	store interfaces.ICollectionStore
	key   string
}

func New[T entities.Record](store interfaces.ICollectionStore, key string) *Collection[T] {
	return &Collection[T]{store: store, key: key}
}

func (c *Collection[T]) Key() string {
	return c.key
}

// All decodes the array. A key that was never written reads as empty.
func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	raw, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.key, err)
	}
	return decode[T](c.key, raw)
}

// Get returns the record with id and whether it was found.
func (c *Collection[T]) Get(ctx context.Context, id string) (T, bool, error) {
	var zero T
	all, err := c.All(ctx)
	if err != nil {
		return zero, false, err
	}
	for _, rec := range all {
		if rec.RecordID() == id {
			return rec, true, nil
		}
	}
	return zero, false, nil
}

func (c *Collection[T]) Insert(ctx context.Context, rec T) error {
	if rec.RecordID() == "" {
		return ErrEmptyID
	}
	return c.Mutate(ctx, func(all []T) ([]T, error) {
		for _, existing := range all {
			if existing.RecordID() == rec.RecordID() {
				return nil, ErrDuplicateID
			}
		}
		return append(all, rec), nil
	})
}

// Replace swaps the element with the same id. It reports false, and writes
// nothing, when the id is not in the array.
func (c *Collection[T]) Replace(ctx context.Context, rec T) (bool, error) {
	found := false
	err := c.Mutate(ctx, func(all []T) ([]T, error) {
		for i := range all {
			if all[i].RecordID() == rec.RecordID() {
				all[i] = rec
				found = true
				return all, nil
			}
		}
		return nil, errUnchanged
	})
	return found, err
}

// Remove filters id out of the array and returns the removed record.
func (c *Collection[T]) Remove(ctx context.Context, id string) (T, bool, error) {
	var removed T
	found := false
	err := c.Mutate(ctx, func(all []T) ([]T, error) {
		out := all[:0]
		for _, rec := range all {
			if !found && rec.RecordID() == id {
				removed = rec
				found = true
				continue
			}
			out = append(out, rec)
		}
		if !found {
			return nil, errUnchanged
		}
		return out, nil
	})
	return removed, found, err
}

// ReplaceAll overwrites the array.
func (c *Collection[T]) ReplaceAll(ctx context.Context, recs []T) error {
	mu := lockFor(c.key)
	mu.Lock()
	defer mu.Unlock()
	return c.write(ctx, recs)
}

// errUnchanged lets a mutation abort without writing and without failing.
var errUnchanged = errors.New("collection unchanged")

// Mutate runs fn over the current array under the key lock and writes the
// result back. Returning an error from fn aborts the write.
func (c *Collection[T]) Mutate(ctx context.Context, fn func(all []T) ([]T, error)) error {
	mu := lockFor(c.key)
	mu.Lock()
	defer mu.Unlock()

	all, err := c.All(ctx)
	if err != nil {
		return err
	}
	next, err := fn(all)
	if errors.Is(err, errUnchanged) {
		return nil
	}
	if err != nil {
		return err
	}
	return c.write(ctx, next)
}

func (c *Collection[T]) write(ctx context.Context, recs []T) error {
	if recs == nil {
		recs = []T{}
	}
	raw, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.store.Put(ctx, c.key, raw); err != nil {
		return fmt.Errorf("write %s: %w", c.key, err)
	}
	return nil
}

func decode[T any](key string, raw json.RawMessage) ([]T, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", key, ErrCorruptCollection, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
