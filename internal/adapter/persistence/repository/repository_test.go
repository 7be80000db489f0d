package repository

import (
	"context"
	"testing"
	"time"

	"paulocell_pdv/internal/adapter/persistence/store"
	"paulocell_pdv/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	k := NewKeys("pauloCell_")
	assert.Equal(t, "pauloCell_customers", k.Customers)
	assert.Equal(t, "pauloCell_deleted_documents", k.DeletedDocuments)
	assert.Equal(t, "pauloCell_company_settings", k.CompanySettings)
	assert.Len(t, k.All(), 10)
}

func TestCustomerRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomerRepository(store.NewMemoryStore(), NewKeys("pauloCell_"))

	_, err := repo.Create(ctx, entities.Customer{ID: "c-1", Name: "Maria"})
	require.NoError(t, err)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	updated, err := repo.Update(ctx, entities.Customer{ID: "nope"})
	require.NoError(t, err)
	assert.Empty(t, updated.ID)

	trashed, err := repo.MoveToTrash(ctx, "c-1", time.Now().UTC())
	require.NoError(t, err)
	assert.NotNil(t, trashed.DeletedAt)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	restored, err := repo.Restore(ctx, "c-1")
	require.NoError(t, err)
	assert.Nil(t, restored.DeletedAt)

	_, err = repo.MoveToTrash(ctx, "c-1", time.Now().UTC())
	require.NoError(t, err)
	n, err := repo.EmptyTrash(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNotificationRepository_MarkAllRead(t *testing.T) {
	ctx := context.Background()
	repo := NewNotificationRepository(store.NewMemoryStore(), NewKeys("p_"))
	for _, n := range []entities.Notification{{ID: "1"}, {ID: "2", Read: true}, {ID: "3"}} {
		_, err := repo.Create(ctx, n)
		require.NoError(t, err)
	}

	changed, err := repo.MarkAllRead(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, changed)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	for _, n := range all {
		assert.True(t, n.Read)
	}
}

func TestSettingsRepository(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	repo := NewSettingsRepository(s, NewKeys("pauloCell_"))

	_, found, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.Save(ctx, entities.CompanySettings{Name: "Paulo Cell", City: "Recife"}))
	got, found, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Recife", got.City)

	raw, err := s.Get(ctx, "pauloCell_company_settings")
	require.NoError(t, err)
	assert.Equal(t, byte('{'), raw[0])
}

func TestPaymentRepository_ListByServiceID(t *testing.T) {
	ctx := context.Background()
	repo := NewPaymentRepository(store.NewMemoryStore(), NewKeys("p_"))
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	for i, p := range []entities.Payment{
		{ID: "p1", ServiceID: "s1", Date: base},
		{ID: "p2", ServiceID: "s2", Date: base},
		{ID: "p3", ServiceID: "s1", Date: base.Add(time.Hour)},
	} {
		_, err := repo.Create(ctx, p)
		require.NoError(t, err, "payment %d", i)
	}

	items, err := repo.ListByServiceID(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "p3", items[0].ID)
}
