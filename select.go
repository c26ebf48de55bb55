package rescache

import (
	"fmt"

	be "github.com/unkn0wn-root/rescache/backend"
	"github.com/unkn0wn-root/rescache/backend/filestore"
	"github.com/unkn0wn-root/rescache/backend/kvstore"
	"github.com/unkn0wn-root/rescache/backend/memstore"
)

// BackendConfig describes the environment's storage capabilities. The choice
// is made once, here, by the composition root - there is no hidden
// process-wide selection.
type BackendConfig struct {
	// Durable selects the file-backed backend. Requires CacheDir.
	Durable  bool
	CacheDir string

	// KV selects the key-value backend when Durable is false and a store
	// is available (e.g. kvstore.NewRedisMap).
	KV kvstore.Map

	// Memory configures the in-process fallback used when neither a
	// writable filesystem nor a KV store exists.
	Memory memstore.Config
}

// NewBackend picks a backend for the given capabilities: durable filesystem
// first, key-value store second, in-process memory last. The returned backend
// is fixed for the life of the manager it is handed to.
func NewBackend(cfg BackendConfig) (be.Backend, error) {
	switch {
	case cfg.Durable:
		if cfg.CacheDir == "" {
			return nil, fmt.Errorf("rescache: durable backend needs a cache dir")
		}
		return filestore.New(filestore.Config{Dir: cfg.CacheDir})
	case cfg.KV != nil:
		return kvstore.New(cfg.KV)
	default:
		return memstore.New(cfg.Memory)
	}
}
