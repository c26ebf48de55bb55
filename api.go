package rescache

import (
	"context"
	"time"

	be "github.com/unkn0wn-root/rescache/backend"
	"github.com/unkn0wn-root/rescache/origin"
)

// DefaultTTL is the staleness threshold applied when Options.TTL is zero.
// It only affects backends that implement sweeping.
const DefaultTTL = 7 * 24 * time.Hour

// Cache is the high-level get-or-fetch API over a pluggable Backend.
// Payloads are raw resource bytes; the cache never interprets them.
type Cache interface {
	// Fetch returns the cached payload for identifier, or fetches it from
	// the origin on a miss, persists it, and returns it.
	//
	// A failed origin fetch surfaces as *origin.Error and writes nothing.
	// A failed persist after a successful fetch surfaces as *PersistError
	// WITH the fetched payload still returned: callers that can live
	// without durability may use the bytes and treat the error as a
	// warning. This is the one case where both return values are non-nil.
	Fetch(ctx context.Context, identifier string) ([]byte, error)

	// PreWarm reads identifier from the bundle origin and writes it to the
	// backend unconditionally, overwriting any existing entry. Errors from
	// the bundle read or the write propagate; pre-warming is
	// caller-initiated and failures are actionable at call time.
	PreWarm(ctx context.Context, identifier string) error

	Close(ctx context.Context) error
}

// Options tune the cache. Only Backend is required; Fetch additionally needs
// Origin and PreWarm needs Bundle.
type Options struct {
	// Required.
	Backend be.Backend

	// Origin serves cache misses in Fetch. Usually an origin.Router over
	// an HTTP fetcher and a bundle fetcher.
	Origin origin.Fetcher

	// Bundle serves PreWarm reads. Usually origin.NewBundle over an embed.FS.
	Bundle origin.Fetcher

	Logger Logger        // if nil, NopLogger
	Hooks  Hooks         // if nil, NopHooks
	TTL    time.Duration // staleness threshold for sweeping; 0 => DefaultTTL

	// Disabled bypasses the cache entirely: Fetch goes straight to the
	// origin and PreWarm is a no-op. Useful when the cache itself is the
	// suspect.
	Disabled bool
}

func New(opts Options) (Cache, error) {
	return newManager(opts)
}
