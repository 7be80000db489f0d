package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"paulocell_pdv/internal/infrastructure/logger"
	"paulocell_pdv/internal/usecase/interfaces"
)

var (
	ErrEmptyBackup        = errors.New("backup has no keys")
	ErrUnknownBackupKey   = errors.New("unknown backup key")
	ErrInvalidBackupValue = errors.New("invalid backup value")
)

// Snapshot maps each storage key to its raw JSON value, exactly as stored.
type Snapshot map[string]json.RawMessage

type IBackupUseCase interface {
	Export(ctx context.Context) (Snapshot, error)
	Restore(ctx context.Context, snap Snapshot) ([]string, error)
}

// BackupUseCase copies raw collection values in and out of the store.
// objectKeys hold a JSON object; every other known key holds an array.
type BackupUseCase struct {
	store      interfaces.ICollectionStore
	keys       []string
	objectKeys map[string]bool
}

var _ IBackupUseCase = (*BackupUseCase)(nil)

func NewBackupUseCase(store interfaces.ICollectionStore, keys []string, objectKeys ...string) *BackupUseCase {
	obj := make(map[string]bool, len(objectKeys))
	for _, k := range objectKeys {
		obj[k] = true
	}
	return &BackupUseCase{store: store, keys: keys, objectKeys: obj}
}

// Export returns every known key that has a value.
func (u *BackupUseCase) Export(ctx context.Context) (Snapshot, error) {
	snap := Snapshot{}
	for _, k := range u.keys {
		raw, err := u.store.Get(ctx, k)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", k, err)
		}
		if len(raw) == 0 {
			continue
		}
		snap[k] = raw
	}
	return snap, nil
}

// Restore validates the whole snapshot first, then writes each key present.
// Keys missing from the snapshot are left untouched.
func (u *BackupUseCase) Restore(ctx context.Context, snap Snapshot) ([]string, error) {
	if len(snap) == 0 {
		return nil, ErrEmptyBackup
	}
	known := make(map[string]bool, len(u.keys))
	for _, k := range u.keys {
		known[k] = true
	}
	for k, v := range snap {
		if !known[k] {
			return nil, fmt.Errorf("%w: %s", ErrUnknownBackupKey, k)
		}
		if err := u.checkValue(k, v); err != nil {
			return nil, err
		}
	}

	restored := make([]string, 0, len(snap))
	for _, k := range u.keys {
		v, ok := snap[k]
		if !ok {
			continue
		}
		if err := u.store.Put(ctx, k, v); err != nil {
			return restored, fmt.Errorf("write %s: %w", k, err)
		}
		restored = append(restored, k)
	}
	logger.For("backup", "usecase").WithField("keys", restored).Info("[backup][usecase] snapshot restored")
	return restored, nil
}

// checkValue accepts an object for settings keys and, for collections, an
// array of objects that each carry a non-empty string "id".
func (u *BackupUseCase) checkValue(key string, v json.RawMessage) error {
	trimmed := bytes.TrimSpace(v)
	if !json.Valid(trimmed) {
		return fmt.Errorf("%w: %s is not json", ErrInvalidBackupValue, key)
	}
	want := byte('[')
	if u.objectKeys[key] {
		want = '{'
	}
	if len(trimmed) == 0 || trimmed[0] != want {
		return fmt.Errorf("%w: unexpected shape for %s", ErrInvalidBackupValue, key)
	}
	if u.objectKeys[key] {
		return nil
	}

	var records []map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return fmt.Errorf("%w: %s must hold objects", ErrInvalidBackupValue, key)
	}
	for i, rec := range records {
		var id string
		if rec == nil || json.Unmarshal(rec["id"], &id) != nil || id == "" {
			return fmt.Errorf("%w: %s[%d] has no id", ErrInvalidBackupValue, key, i)
		}
	}
	return nil
}
