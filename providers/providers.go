package providers

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

//go:generate mockgen -source=providers.go -destination=mock_providers.go -package=providers

// ErrBlobNotFound is returned by a BlobStoreProvider when the named slot was never written.
var ErrBlobNotFound = errors.New("blob slot not found")

type ConfigProvider interface {
	LoadEnv() error
	GetServerPort() string
	GetAppEnv() string
	GetBlobDriver() string
	GetBlobKey() string
	GetBlobDir() string
	GetRedisAddr() string
	GetRedisDB() int
	GetDatabaseString() string
	GetSqlitePath() string
	GetMigrationsDir() string
	GetDefaultDepreciationRate() int
}

type ZapLoggerProvider interface {
	InitLogger()
	SyncLogger()
	GetLogger() *zap.Logger
}

// BlobStoreProvider persists opaque payloads under named slots. Save overwrites the
// slot wholesale.
type BlobStoreProvider interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Close() error
}
