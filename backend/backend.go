// Package backend defines the storage abstraction used by rescache.
//
// Implementations MUST be byte-for-byte transparent: Get must return exactly
// the same payload that was previously passed to Put or PreWarm for the same
// identifier (no prepended/appended metadata, no re-encoding). If a store
// performs internal transforms (e.g. base64 in a string-only medium), they
// MUST be fully reversed on read.
//
// A miss is a normal outcome, not an error: Get reports it as (nil, false,
// nil). Staleness is never decided on the read path; it is only ever enforced
// by Sweep, so a stale-but-present entry still hits.
package backend

import (
	"context"
	"time"
)

// Backend is a byte store keyed by origin identifier. An identifier maps to
// at most one live entry; writing always replaces both the payload and the
// entry's stored-at time. Implementations must be safe for concurrent use,
// but concurrent writes to the same identifier are last-write-wins.
type Backend interface {
	// Get returns (payload, true, nil) on hit; (nil, false, nil) on miss.
	// Local storage read only; never consults the origin.
	Get(ctx context.Context, identifier string) ([]byte, bool, error)

	// Put writes or overwrites the entry for identifier, creating any
	// needed storage container (directory, bucket) lazily on first use.
	Put(ctx context.Context, identifier string, payload []byte) error

	// PreWarm is Put for bundled-asset payloads: unconditional, always
	// overwrites, never checks for an existing fresh copy. It exists as a
	// distinct operation so backends may record provenance differently.
	PreWarm(ctx context.Context, identifier string, payload []byte) error

	// Sweep removes entries whose age exceeds olderThan. Best-effort:
	// per-entry removal failures are swallowed, and backends without
	// timestamp metadata implement it as a no-op. Never called on a
	// timer; the manager runs it opportunistically on the miss path.
	Sweep(ctx context.Context, olderThan time.Duration) error

	// Close releases resources.
	Close(ctx context.Context) error
}
