// Package memstore implements an in-process rescache backend on top of
// bigcache, for short-lived processes and tests. Like kvstore it keys by the
// raw identifier and does not sweep per entry: bigcache expires everything
// through its global LifeWindow instead.
package memstore

import (
	"context"
	"time"

	bc "github.com/allegro/bigcache/v3"

	be "github.com/unkn0wn-root/rescache/backend"
)

type Store struct {
	c *bc.BigCache
}

var _ be.Backend = (*Store)(nil)

type Config struct {
	// LifeWindow is bigcache's global entry lifetime and stands in for the
	// per-entry TTL this backend cannot express. 0 => 7 days.
	LifeWindow         time.Duration
	CleanWindow        time.Duration
	MaxEntrySize       int
	HardMaxCacheSizeMB int // ~ memory limit; 0 = unlimited
}

func New(cfg Config) (*Store, error) {
	lw := cfg.LifeWindow
	if lw <= 0 {
		lw = 7 * 24 * time.Hour
	}
	conf := bc.DefaultConfig(lw)
	if cfg.CleanWindow > 0 {
		conf.CleanWindow = cfg.CleanWindow
	}
	if cfg.MaxEntrySize > 0 {
		conf.MaxEntrySize = cfg.MaxEntrySize
	}
	if cfg.HardMaxCacheSizeMB > 0 {
		conf.HardMaxCacheSize = cfg.HardMaxCacheSizeMB
	}
	c, err := bc.New(context.Background(), conf)
	if err != nil {
		return nil, err
	}
	return &Store{c: c}, nil
}

func (s *Store) Get(_ context.Context, identifier string) ([]byte, bool, error) {
	b, err := s.c.Get(identifier)
	if err == bc.ErrEntryNotFound {
		return nil, false, nil
	}
	return b, err == nil, err
}

func (s *Store) Put(_ context.Context, identifier string, payload []byte) error {
	return s.c.Set(identifier, payload)
}

func (s *Store) PreWarm(ctx context.Context, identifier string, payload []byte) error {
	return s.Put(ctx, identifier, payload)
}

// Sweep is a no-op; bigcache evicts on its own LifeWindow.
func (s *Store) Sweep(context.Context, time.Duration) error { return nil }

func (s *Store) Close(context.Context) error { return s.c.Close() }
