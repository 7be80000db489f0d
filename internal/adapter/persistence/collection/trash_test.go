package collection

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"paulocell_pdv/internal/adapter/persistence/store"
	"paulocell_pdv/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrash_MoveAndRestore(t *testing.T) {
	ctx := context.Background()
	tr := NewTrash[entities.Customer](store.NewMemoryStore(), "pauloCell_customers", "pauloCell_deleted_customers")

	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	original := entities.Customer{ID: "c-1", Name: "Maria", CreatedAt: created, UpdatedAt: created}
	require.NoError(t, tr.Active.Insert(ctx, original))

	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	trashed, found, err := tr.MoveToTrash(ctx, "c-1", now)
	require.NoError(t, err)
	require.True(t, found)
	require.NotNil(t, trashed.DeletedAt)
	assert.True(t, trashed.DeletedAt.Equal(now))

	active, err := tr.Active.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	deleted, err := tr.List(ctx)
	require.NoError(t, err)
	require.Len(t, deleted, 1)
	assert.Equal(t, "c-1", deleted[0].ID)

	restored, found, err := tr.Restore(ctx, "c-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, original, restored)

	deleted, err = tr.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, deleted)
}

func TestTrash_MissingIDs(t *testing.T) {
	ctx := context.Background()
	tr := NewTrash[entities.Customer](store.NewMemoryStore(), "a", "b")

	_, found, err := tr.MoveToTrash(ctx, "nope", time.Now())
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = tr.Restore(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, found)

	found, err = tr.Purge(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestTrash_PurgeAndEmpty(t *testing.T) {
	ctx := context.Background()
	tr := NewTrash[entities.FiscalDocument](store.NewMemoryStore(), "a", "b")
	for _, id := range []string{"d-1", "d-2", "d-3"} {
		require.NoError(t, tr.Active.Insert(ctx, entities.FiscalDocument{ID: id}))
		_, _, err := tr.MoveToTrash(ctx, id, time.Now())
		require.NoError(t, err)
	}

	found, err := tr.Purge(ctx, "d-2")
	require.NoError(t, err)
	assert.True(t, found)

	n, err := tr.Empty(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = tr.Empty(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

var errDiskFull = errors.New("disk full")

// failingPutStore fails every write to one key.
type failingPutStore struct {
	*store.MemoryStore
	key string
}

func (s failingPutStore) Put(ctx context.Context, key string, value json.RawMessage) error {
	if key == s.key {
		return errDiskFull
	}
	return s.MemoryStore.Put(ctx, key, value)
}

func TestTrash_FailedWriteKeepsRecord(t *testing.T) {
	ctx := context.Background()
	seed := func(t *testing.T, failKey string) (*Trash[entities.Customer], *store.MemoryStore) {
		mem := store.NewMemoryStore()
		require.NoError(t, New[entities.Customer](mem, "active").Insert(ctx, entities.Customer{ID: "c-1", Name: "Maria"}))
		return NewTrash[entities.Customer](failingPutStore{MemoryStore: mem, key: failKey}, "active", "deleted"), mem
	}
	ids := func(t *testing.T, mem *store.MemoryStore, key string) []string {
		all, err := New[entities.Customer](mem, key).All(ctx)
		require.NoError(t, err)
		out := []string{}
		for _, c := range all {
			out = append(out, c.ID)
		}
		return out
	}

	t.Run("trash write fails", func(t *testing.T) {
		tr, mem := seed(t, "deleted")
		_, _, err := tr.MoveToTrash(ctx, "c-1", time.Now())
		require.ErrorIs(t, err, errDiskFull)
		assert.Equal(t, []string{"c-1"}, ids(t, mem, "active"))
		assert.Empty(t, ids(t, mem, "deleted"))
	})

	t.Run("active removal fails", func(t *testing.T) {
		tr, mem := seed(t, "active")
		_, _, err := tr.MoveToTrash(ctx, "c-1", time.Now())
		require.ErrorIs(t, err, errDiskFull)
		assert.Equal(t, []string{"c-1"}, ids(t, mem, "active"))
		assert.Empty(t, ids(t, mem, "deleted"))
	})

	t.Run("restore write fails", func(t *testing.T) {
		mem := store.NewMemoryStore()
		ok := NewTrash[entities.Customer](mem, "active", "deleted")
		require.NoError(t, ok.Active.Insert(ctx, entities.Customer{ID: "c-1", Name: "Maria"}))
		_, _, err := ok.MoveToTrash(ctx, "c-1", time.Now())
		require.NoError(t, err)

		tr := NewTrash[entities.Customer](failingPutStore{MemoryStore: mem, key: "active"}, "active", "deleted")
		_, _, err = tr.Restore(ctx, "c-1")
		require.ErrorIs(t, err, errDiskFull)
		assert.Empty(t, ids(t, mem, "active"))
		assert.Equal(t, []string{"c-1"}, ids(t, mem, "deleted"))
	})
}
