package rescache

import "fmt"

// PersistError reports a backend write that failed after a successful origin
// fetch (disk full, permission denied, store outage). When Fetch returns one,
// the fetched payload is still returned alongside it; see Cache.Fetch.
type PersistError struct {
	Identifier string
	Err        error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("rescache: persist %q: %v", e.Identifier, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }
