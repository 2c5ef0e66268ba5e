package blobprovider

import (
	"assetledger/providers"
	"context"
	"database/sql"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
)

// PostgresBlobStore keeps slots in the blob_slots table, one row per key.
type PostgresBlobStore struct {
	DB *sqlx.DB
}

func NewPostgresBlobStore(connectionStr, migrationsDir string) (*PostgresBlobStore, error) {
	db, err := sqlx.Connect("postgres", connectionStr)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to postgres")
	}
	if err := MigrateUp(db, migrationsDir); err != nil {
		db.Close()
		return nil, err
	}
	return &PostgresBlobStore{DB: db}, nil
}

func (p *PostgresBlobStore) Load(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := p.DB.GetContext(ctx, &payload, `SELECT payload FROM blob_slots WHERE name = $1`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, providers.ErrBlobNotFound
		}
		return nil, errors.Wrapf(err, "failed to load blob %s", key)
	}
	return payload, nil
}

func (p *PostgresBlobStore) Save(ctx context.Context, key string, data []byte) error {
	_, err := p.DB.ExecContext(ctx, `
		INSERT INTO blob_slots (name, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()
	`, key, data)
	if err != nil {
		return errors.Wrapf(err, "failed to save blob %s", key)
	}
	return nil
}

func (p *PostgresBlobStore) Close() error {
	return p.DB.Close()
}

// MigrateUp applies every pending migration found in dir. An up-to-date schema is not an error.
func MigrateUp(db *sqlx.DB, dir string) error {
	driver, err := postgres.WithInstance(db.DB, &postgres.Config{})
	if err != nil {
		return errors.Wrap(err, "failed to create migration driver")
	}

	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", dir), "postgres", driver)
	if err != nil {
		return errors.Wrap(err, "failed to load migrations")
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "migration failed")
	}
	return nil
}
