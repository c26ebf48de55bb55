// Package origin reads resources from their authoritative source: a network
// server or a bundled-asset store. Origins are consulted only on a cache miss
// (or unconditionally, for pre-warming).
package origin

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"
	"time"
)

// Fetcher retrieves the raw bytes of a resource from its origin.
type Fetcher interface {
	Fetch(ctx context.Context, identifier string) ([]byte, error)
}

// Error reports a failed origin read. StatusCode is non-zero only for HTTP
// responses with a non-200 status.
type Error struct {
	Identifier string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("origin: fetch %q: unexpected status %d", e.Identifier, e.StatusCode)
	}
	return fmt.Sprintf("origin: fetch %q: %v", e.Identifier, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// HTTP fetches resources with a single GET per call. Success is strictly
// status 200; anything else is an *Error, not retried, with redirects left
// to the client's default policy.
type HTTP struct {
	client *http.Client
}

var _ Fetcher = (*HTTP)(nil)

// NewHTTP wraps client; nil gets a client with a 30s timeout.
func NewHTTP(client *http.Client) *HTTP {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &HTTP{client: client}
}

func (h *HTTP) Fetch(ctx context.Context, identifier string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, identifier, nil)
	if err != nil {
		return nil, &Error{Identifier: identifier, Err: err}
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, &Error{Identifier: identifier, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &Error{Identifier: identifier, StatusCode: resp.StatusCode}
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Identifier: identifier, Err: err}
	}
	return b, nil
}

// Bundle reads embedded assets from an fs.FS (typically an embed.FS).
// A missing asset surfaces as an *Error wrapping fs.ErrNotExist.
type Bundle struct {
	fsys fs.FS
}

var _ Fetcher = (*Bundle)(nil)

func NewBundle(fsys fs.FS) *Bundle { return &Bundle{fsys: fsys} }

func (b *Bundle) Fetch(_ context.Context, identifier string) ([]byte, error) {
	data, err := fs.ReadFile(b.fsys, identifier)
	if err != nil {
		return nil, &Error{Identifier: identifier, Err: err}
	}
	return data, nil
}

// Router picks a fetcher by identifier shape: http/https URLs go to Remote,
// everything else is treated as a bundle asset path. Deliberately a lookup,
// not a strategy registry.
type Router struct {
	Remote Fetcher
	Assets Fetcher
}

var _ Fetcher = (*Router)(nil)

func (r *Router) Fetch(ctx context.Context, identifier string) ([]byte, error) {
	if isRemote(identifier) {
		return r.Remote.Fetch(ctx, identifier)
	}
	return r.Assets.Fetch(ctx, identifier)
}

func isRemote(identifier string) bool {
	return strings.HasPrefix(identifier, "http://") || strings.HasPrefix(identifier, "https://")
}
