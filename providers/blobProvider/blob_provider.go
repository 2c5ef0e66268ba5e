package blobprovider

import (
	"assetledger/providers"
	"fmt"
)

const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)

// NewBlobStore builds the backend named by the BLOB_DRIVER setting.
func NewBlobStore(cfg providers.ConfigProvider) (providers.BlobStoreProvider, error) {
	switch cfg.GetBlobDriver() {
	case DriverMemory:
		return NewMemoryBlobStore(), nil
	case DriverFile:
		return NewFileBlobStore(cfg.GetBlobDir())
	case DriverRedis:
		return NewRedisBlobStore(cfg.GetRedisAddr(), cfg.GetRedisDB()), nil
	case DriverPostgres:
		return NewPostgresBlobStore(cfg.GetDatabaseString(), cfg.GetMigrationsDir())
	case DriverSqlite:
		return NewSqliteBlobStore(cfg.GetSqlitePath())
	default:
		return nil, fmt.Errorf("unsupported blob driver %q", cfg.GetBlobDriver())
	}
}
