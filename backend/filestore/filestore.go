// Package filestore implements the durable rescache backend: one file per
// cache key in a flat scratch directory. Files are opaque byte blobs with no
// header or metadata; staleness is inferred purely from filesystem
// modification time.
package filestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	be "github.com/unkn0wn-root/rescache/backend"
	"github.com/unkn0wn-root/rescache/internal/keyutil"
)

// Store is a filesystem-backed Backend. Keys are the identifier's basename
// (see keyutil.Basename), so distinct identifiers sharing a basename share a
// file; the later write wins.
type Store struct {
	fs  afero.Fs
	dir string
	now func() time.Time
}

var _ be.Backend = (*Store)(nil)

type Config struct {
	// Dir is the scratch directory holding one file per key. Required.
	// Created lazily on first write.
	Dir string

	// FS defaults to the OS filesystem. Swap for afero.NewMemMapFs in tests.
	FS afero.Fs

	// Now defaults to time.Now. Sweep ages entries against this clock.
	Now func() time.Time
}

func New(cfg Config) (*Store, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("filestore: dir is required")
	}
	s := &Store{fs: cfg.FS, dir: cfg.Dir, now: cfg.Now}
	if s.fs == nil {
		s.fs = afero.NewOsFs()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s, nil
}

func (s *Store) Get(_ context.Context, identifier string) ([]byte, bool, error) {
	p, err := s.path(identifier)
	if err != nil {
		return nil, false, err
	}
	b, err := afero.ReadFile(s.fs, p)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (s *Store) Put(_ context.Context, identifier string, payload []byte) error {
	p, err := s.path(identifier)
	if err != nil {
		return err
	}
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	return afero.WriteFile(s.fs, p, payload, 0o644)
}

// PreWarm writes the bundled payload verbatim, overwriting any existing
// entry. Same write path as Put; the distinction is contractual.
func (s *Store) PreWarm(ctx context.Context, identifier string, payload []byte) error {
	return s.Put(ctx, identifier, payload)
}

// Sweep removes every entry whose modification time is older than
// now-olderThan. Per-entry stat and remove failures are swallowed: an entry
// already removed by a concurrent sweep, or one we lack permission for, is
// not this caller's problem. Re-running Sweep is always safe; it only ever
// deletes what is still stale.
func (s *Store) Sweep(ctx context.Context, olderThan time.Duration) error {
	entries, err := afero.ReadDir(s.fs, s.dir)
	if os.IsNotExist(err) {
		return nil // never written to; nothing to sweep
	}
	if err != nil {
		return err
	}
	cutoff := s.now().Add(-olderThan)
	for _, fi := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if fi.IsDir() {
			continue
		}
		if fi.ModTime().Before(cutoff) {
			_ = s.fs.Remove(filepath.Join(s.dir, fi.Name()))
		}
	}
	return nil
}

func (s *Store) Close(context.Context) error { return nil }

func (s *Store) path(identifier string) (string, error) {
	key, err := keyutil.Basename(identifier)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.dir, key), nil
}
