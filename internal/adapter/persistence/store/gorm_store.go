package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"paulocell_pdv/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CollectionEntry is the SQL row behind one collection key.
type CollectionEntry struct {
	Key       string `gorm:"primaryKey;size:128"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (CollectionEntry) TableName() string { return "collections" }

// GormStore persists keys in a single SQL table (postgres or sqlite).
type GormStore struct {
	db *gorm.DB
}

var _ interfaces.ICollectionStore = (*GormStore)(nil)

// NewGormStore migrates the collections table.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&CollectionEntry{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	var entry CollectionEntry
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(entry.Value), nil
}

func (s *GormStore) Put(ctx context.Context, key string, value json.RawMessage) error {
	entry := CollectionEntry{Key: key, Value: string(value), UpdatedAt: time.Now().UTC()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}
