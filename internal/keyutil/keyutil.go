package keyutil

import (
	"errors"
	"net/url"
	"path"
)

// ErrDegenerate reports an identifier whose last path segment cannot name a
// storage entry ("", "." or "/").
var ErrDegenerate = errors.New("keyutil: identifier has no usable basename")

// Basename derives the storage key for file-backed stores: the last path
// segment of the identifier. For URLs the query and fragment are excluded.
// Deterministic, no I/O.
//
// Two identifiers that share a basename (".../a/logo.png" and
// ".../b/logo.png") resolve to the same key and overwrite one another's
// entry. That collision is inherited behavior and callers that need
// collision-free keys should use a backend that keys by the raw identifier.
func Basename(identifier string) (string, error) {
	p := identifier
	if u, err := url.Parse(identifier); err == nil && u.Scheme != "" && u.Host != "" {
		p = u.Path
	}
	b := path.Base(p)
	if b == "" || b == "." || b == "/" {
		return "", ErrDegenerate
	}
	return b, nil
}
