package blobprovider

import (
	"assetledger/providers"
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// FileBlobStore writes each slot to <dir>/<key>.json.
type FileBlobStore struct {
	dir string
}

func NewFileBlobStore(dir string) (*FileBlobStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create blob dir %s", dir)
	}
	return &FileBlobStore{dir: dir}, nil
}

func (f *FileBlobStore) path(key string) string {
	return filepath.Join(f.dir, filepath.Base(key)+".json")
}

func (f *FileBlobStore) Load(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, providers.ErrBlobNotFound
		}
		return nil, errors.Wrapf(err, "failed to read blob %s", key)
	}
	return data, nil
}

// Save writes to a temp file in the same directory and renames it over the slot, so a
// crash mid-write leaves the previous payload in place.
func (f *FileBlobStore) Save(_ context.Context, key string, data []byte) error {
	tmp, err := os.CreateTemp(f.dir, filepath.Base(key)+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "failed to create temp file for blob %s", key)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "failed to write blob %s", key)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "failed to close blob %s", key)
	}
	if err := os.Rename(tmp.Name(), f.path(key)); err != nil {
		return errors.Wrapf(err, "failed to replace blob %s", key)
	}
	return nil
}

func (f *FileBlobStore) Close() error {
	return nil
}
