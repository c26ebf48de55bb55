// Package kvstore implements the ephemeral rescache backend for environments
// without a writable filesystem: resource payloads live as encoded strings in
// a small persistent key-value store, keyed by the raw identifier (no
// basename collapsing, so distinct identifiers never collide).
//
// The store has no timestamp metadata and no TTL primitive, so Sweep is a
// no-op on this backend: the configured TTL has no effect here, and entries
// are only ever replaced by a later write. This is a platform limitation, not
// an oversight.
package kvstore

import (
	"context"
	"fmt"
	"time"

	be "github.com/unkn0wn-root/rescache/backend"
)

// Map is the minimal string store the backend persists into. Implementations
// must be safe for concurrent use.
type Map interface {
	// Get returns (value, true, nil) on hit; ("", false, nil) on miss.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value with no expiry.
	Set(ctx context.Context, key, value string) error

	// Del removes a key (best-effort).
	Del(ctx context.Context, key string) error

	// Close releases resources.
	Close(ctx context.Context) error
}

// KV is a Map-backed Backend. Entries come in two shapes (see Entry): byte
// payloads written by Put/PreWarm, and remote-URL passthrough refs written by
// PutRef. Backend.Get only surfaces byte-shaped entries; callers that
// understand refs use Entry instead.
type KV struct {
	m Map
}

var _ be.Backend = (*KV)(nil)

func New(m Map) (*KV, error) {
	if m == nil {
		return nil, fmt.Errorf("kvstore: map store is required")
	}
	return &KV{m: m}, nil
}

func (k *KV) Get(ctx context.Context, identifier string) ([]byte, bool, error) {
	e, ok, err := k.Entry(ctx, identifier)
	if err != nil || !ok {
		return nil, false, err
	}
	if e.Shape != ShapeBytes {
		return nil, false, nil
	}
	return e.Payload, true, nil
}

func (k *KV) Put(ctx context.Context, identifier string, payload []byte) error {
	return k.m.Set(ctx, identifier, encodeBytes(payload))
}

// PreWarm base64-encodes the bundled payload and overwrites unconditionally.
func (k *KV) PreWarm(ctx context.Context, identifier string, payload []byte) error {
	return k.Put(ctx, identifier, payload)
}

// PutRef stores the identifier of an already-remote resource as a
// passthrough entry: no bytes are cached, only the pointer. Consumers that
// can load directly from a URL read it back via Entry.
func (k *KV) PutRef(ctx context.Context, identifier, target string) error {
	return k.m.Set(ctx, identifier, encodeRef(target))
}

// Entry returns the stored entry with its shape. Undecodable values are
// deleted best-effort and reported as a miss (self-heal).
func (k *KV) Entry(ctx context.Context, identifier string) (Entry, bool, error) {
	raw, ok, err := k.m.Get(ctx, identifier)
	if err != nil || !ok {
		return Entry{}, false, err
	}
	e, err := decodeEntry(raw)
	if err != nil {
		_ = k.m.Del(ctx, identifier) // self-heal corrupt
		return Entry{}, false, nil
	}
	return e, true, nil
}

// Sweep is a no-op: the store keeps no stored-at times to age against.
func (k *KV) Sweep(context.Context, time.Duration) error { return nil }

func (k *KV) Close(ctx context.Context) error { return k.m.Close(ctx) }
