package kvstore

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"
)

var ErrNilClient = errors.New("kvstore: nil redis client")

// RedisMap adapts a redis client to the Map store. Values are written with
// no expiry: on this backend staleness is never swept, only overwritten.
type RedisMap struct {
	rdb         goredis.UniversalClient
	closeClient bool
}

var _ Map = (*RedisMap)(nil)

type RedisConfig struct {
	Client      goredis.UniversalClient
	CloseClient bool // set true only if this store exclusively owns the client
}

func NewRedisMap(cfg RedisConfig) (*RedisMap, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	return &RedisMap{rdb: cfg.Client, closeClient: cfg.CloseClient}, nil
}

func (m *RedisMap) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := m.rdb.Get(ctx, key).Result()
	if err == goredis.Nil {
		return "", false, nil // miss
	}
	if err != nil {
		return "", false, err // transport/server error
	}
	return v, true, nil
}

func (m *RedisMap) Set(ctx context.Context, key, value string) error {
	return m.rdb.Set(ctx, key, value, 0).Err()
}

func (m *RedisMap) Del(ctx context.Context, key string) error {
	return m.rdb.Del(ctx, key).Err()
}

// Close releases the underlying redis client only when this store owns it.
// Safe to call multiple times; repeated calls become no-ops.
func (m *RedisMap) Close(context.Context) error {
	if m.closeClient {
		if err := m.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}
