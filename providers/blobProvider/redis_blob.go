package blobprovider

import (
	"assetledger/providers"
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

type RedisBlobStore struct {
	client *redis.Client
}

func NewRedisBlobStore(addr string, db int) *RedisBlobStore {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	return &RedisBlobStore{client: rdb}
}

func (r *RedisBlobStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, providers.ErrBlobNotFound
		}
		return nil, errors.Wrapf(err, "failed to get blob %s", key)
	}
	return data, nil
}

func (r *RedisBlobStore) Save(ctx context.Context, key string, data []byte) error {
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to set blob %s", key)
	}
	return nil
}

func (r *RedisBlobStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisBlobStore) Close() error {
	return r.client.Close()
}
