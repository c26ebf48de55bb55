package rescache

// Hooks are lightweight callbacks for high-signal cache events.
// Implementations MUST be cheap and non-blocking; the manager calls them on
// hot paths. Wrap with hooks/async if the sink can stall.
type Hooks interface {
	// A lookup was served from the backend.
	Hit(identifier string)

	// No local copy; the origin will be consulted.
	Miss(identifier string)

	// Origin returned the payload (size in bytes).
	OriginFetched(identifier string, size int)

	// Origin fetch failed; nothing was written.
	OriginFailed(identifier string, err error)

	// Backend write failed after a successful fetch; the payload was still
	// returned to the caller.
	PersistFailed(identifier string, err error)

	// An opportunistic sweep failed as a whole (per-entry failures are
	// swallowed inside the backend and never reach here).
	SweepFailed(err error)

	// A bundled asset was written through PreWarm (size in bytes).
	PreWarmed(identifier string, size int)
}

// NopHooks is the default no-op.
type NopHooks struct{}

func (NopHooks) Hit(string)                  {}
func (NopHooks) Miss(string)                 {}
func (NopHooks) OriginFetched(string, int)   {}
func (NopHooks) OriginFailed(string, error)  {}
func (NopHooks) PersistFailed(string, error) {}
func (NopHooks) SweepFailed(error)           {}
func (NopHooks) PreWarmed(string, int)       {}
