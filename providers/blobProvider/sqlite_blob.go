package blobprovider

import (
	"assetledger/providers"
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type BlobSlot struct {
	Name      string `gorm:"primaryKey;size:200"`
	Payload   []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (BlobSlot) TableName() string { return "blob_slots" }

// SqliteBlobStore is a single-file local store, the closest match to a browser's local storage.
type SqliteBlobStore struct {
	db *gorm.DB
}

func NewSqliteBlobStore(path string) (*SqliteBlobStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrapf(err, "failed to create sqlite dir %s", dir)
		}
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite")
	}
	if err := db.AutoMigrate(&BlobSlot{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate blob_slots")
	}
	return &SqliteBlobStore{db: db}, nil
}

func (s *SqliteBlobStore) Load(ctx context.Context, key string) ([]byte, error) {
	var slot BlobSlot
	err := s.db.WithContext(ctx).Where("name = ?", key).First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, providers.ErrBlobNotFound
		}
		return nil, errors.Wrapf(err, "failed to load blob %s", key)
	}
	return slot.Payload, nil
}

func (s *SqliteBlobStore) Save(ctx context.Context, key string, data []byte) error {
	slot := BlobSlot{Name: key, Payload: data, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&slot).Error
	if err != nil {
		return errors.Wrapf(err, "failed to save blob %s", key)
	}
	return nil
}

func (s *SqliteBlobStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
