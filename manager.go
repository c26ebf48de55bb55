package rescache

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	be "github.com/unkn0wn-root/rescache/backend"
	"github.com/unkn0wn-root/rescache/origin"
)

type manager struct {
	backend be.Backend
	orig    origin.Fetcher
	bundle  origin.Fetcher
	log     Logger
	hooks   Hooks
	ttl     time.Duration
	enabled bool

	// one origin fetch per identifier; concurrent misses share the flight
	flight singleflight.Group
}

func newManager(opts Options) (*manager, error) {
	if opts.Backend == nil {
		return nil, fmt.Errorf("rescache: backend is required")
	}

	m := &manager{
		backend: opts.Backend,
		orig:    opts.Origin,
		bundle:  opts.Bundle,
		enabled: !opts.Disabled,
	}

	// defaults
	m.log = coalesce[Logger](opts.Logger, NopLogger{})
	m.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	m.ttl = coalesce[time.Duration](opts.TTL, DefaultTTL)

	return m, nil
}

func (m *manager) Close(ctx context.Context) error {
	if m.backend != nil {
		return m.backend.Close(ctx)
	}
	return nil
}

// Fetch implements check cache -> fetch on miss -> persist -> serve.
//
// The lookup never decides staleness; a stale-but-unswept entry still hits.
// Backend read errors are degraded to a miss so a flaky local store cannot
// take the origin path down with it.
func (m *manager) Fetch(ctx context.Context, identifier string) ([]byte, error) {
	if !m.enabled {
		return m.fetchOrigin(ctx, identifier)
	}

	if b, ok, err := m.backend.Get(ctx, identifier); err == nil && ok {
		m.hooks.Hit(identifier)
		return b, nil
	} else if err != nil {
		m.log.Warn("backend read failed; treating as miss", Fields{"id": identifier, "err": err})
	}
	m.hooks.Miss(identifier)

	v, err, _ := m.flight.Do(identifier, func() (any, error) {
		// Another flight may have persisted while we queued.
		if b, ok, gerr := m.backend.Get(ctx, identifier); gerr == nil && ok {
			return b, nil
		}

		m.sweep(ctx)

		b, ferr := m.fetchOrigin(ctx, identifier)
		if ferr != nil {
			return nil, ferr // nothing written; a failed fetch never pollutes the cache
		}
		if perr := m.backend.Put(ctx, identifier, b); perr != nil {
			m.hooks.PersistFailed(identifier, perr)
			m.log.Error("persist failed after fetch", Fields{"id": identifier, "err": perr})
			// Graceful degradation: hand back the bytes with the typed error.
			return b, &PersistError{Identifier: identifier, Err: perr}
		}
		return b, nil
	})

	b, _ := v.([]byte)
	return b, err
}

// PreWarm force-refreshes the cache with the shipped asset: no freshness
// check, always overwrites. Errors propagate; unlike sweeping, pre-warming
// has a caller who can act on them.
func (m *manager) PreWarm(ctx context.Context, identifier string) error {
	if !m.enabled {
		return nil
	}
	if m.bundle == nil {
		return fmt.Errorf("rescache: no bundle fetcher configured")
	}
	b, err := m.bundle.Fetch(ctx, identifier)
	if err != nil {
		return err
	}
	if err := m.backend.PreWarm(ctx, identifier, b); err != nil {
		return &PersistError{Identifier: identifier, Err: err}
	}
	m.hooks.PreWarmed(identifier, len(b))
	m.log.Debug("pre-warmed bundled asset", Fields{"id": identifier, "bytes": len(b)})
	return nil
}

func (m *manager) fetchOrigin(ctx context.Context, identifier string) ([]byte, error) {
	if m.orig == nil {
		return nil, fmt.Errorf("rescache: no origin fetcher configured")
	}
	b, err := m.orig.Fetch(ctx, identifier)
	if err != nil {
		m.hooks.OriginFailed(identifier, err)
		return nil, err
	}
	m.hooks.OriginFetched(identifier, len(b))
	return b, nil
}

// sweep runs opportunistically on the miss path, so its cost lands on the
// caller that is about to pay for an origin round-trip anyway. Best-effort:
// failures are logged and hooked, never surfaced.
func (m *manager) sweep(ctx context.Context) {
	if err := m.backend.Sweep(ctx, m.ttl); err != nil {
		m.hooks.SweepFailed(err)
		m.log.Warn("sweep failed", Fields{"err": err})
	}
}
