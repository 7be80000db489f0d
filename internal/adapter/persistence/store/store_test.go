package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"paulocell_pdv/internal/infrastructure/database"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	v, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, v)

	in := json.RawMessage(`[{"id":"1"}]`)
	require.NoError(t, s.Put(ctx, "k", in))
	in[2] = 'X'

	v, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1"}]`, string(v))
}

type fakeDynamo struct {
	items map[string]map[string]types.AttributeValue
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	k := in.Key["key"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[k]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	k := in.Item["key"].(*types.AttributeValueMemberS).Value
	f.items[k] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func TestDynamoDBStore(t *testing.T) {
	ctx := context.Background()
	fake := &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
	s := NewDynamoDBStore(fake, "")

	v, err := s.Get(ctx, "pauloCell_devices")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, s.Put(ctx, "pauloCell_devices", json.RawMessage(`[{"id":"d-1"}]`)))
	v, err = s.Get(ctx, "pauloCell_devices")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"d-1"}]`, string(v))

	item := fake.items["pauloCell_devices"]
	assert.Contains(t, item, "updated_at")
}

func TestGormStore_SQLite(t *testing.T) {
	ctx := context.Background()
	db, err := database.ConnectSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	s, err := NewGormStore(db)
	require.NoError(t, err)

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, s.Put(ctx, "k", json.RawMessage(`[1]`)))
	require.NoError(t, s.Put(ctx, "k", json.RawMessage(`[1,2]`)))

	v, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.JSONEq(t, `[1,2]`, string(v))

	var count int64
	require.NoError(t, db.Model(&CollectionEntry{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
