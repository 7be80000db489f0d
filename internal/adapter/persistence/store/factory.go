package store

import (
	"context"
	"errors"
	"fmt"

	"paulocell_pdv/internal/infrastructure/config"
	"paulocell_pdv/internal/infrastructure/database"
	"paulocell_pdv/internal/infrastructure/logger"
	"paulocell_pdv/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

var ErrUnknownDriver = errors.New("unknown storage driver")

// Open builds the backend selected by STORAGE_DRIVER. rdb is only used by
// the redis driver and may be nil otherwise.
func Open(ctx context.Context, cfg config.Config, rdb *redis.Client) (interfaces.ICollectionStore, error) {
	log := logger.For("storage", "store")
	switch cfg.StorageDriver {
	case config.StorageMemory, "":
		log.Warn("using in-memory storage; data is lost on restart")
		return NewMemoryStore(), nil
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBOptions{
			Region:          cfg.AWSRegion,
			Endpoint:        cfg.DynamoDBEndpoint,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretKey,
		})
		if err != nil {
			return nil, fmt.Errorf("dynamodb: %w", err)
		}
		log.WithField("table", cfg.CollectionsTable).Info("using dynamodb storage")
		return NewDynamoDBStore(ddb, cfg.CollectionsTable), nil
	case config.StoragePostgres:
		db, err := database.ConnectPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		log.Info("using postgres storage")
		return NewGormStore(db)
	case config.StorageSQLite:
		db, err := database.ConnectSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("sqlite: %w", err)
		}
		log.WithField("path", cfg.SQLitePath).Info("using sqlite storage")
		return NewGormStore(db)
	case config.StorageRedis:
		if rdb == nil {
			return nil, errors.New("redis storage requires REDIS_ADDRESS")
		}
		log.Info("using redis storage")
		return NewRedisStore(rdb), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.StorageDriver)
}
