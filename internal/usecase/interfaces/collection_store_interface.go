package interfaces

import (
	"context"
	"encoding/json"
)

// ICollectionStore is the key/value backend behind every collection.
//
// A key holds one JSON document (an array for collections, an object for
// settings). Get returns a nil value and no error when the key was never written.
type ICollectionStore interface {
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Put(ctx context.Context, key string, value json.RawMessage) error
}
