// Package asynchook decouples hook sinks from the cache's hot path: events
// are queued and delivered by worker goroutines, and dropped when the queue
// is full rather than ever blocking a lookup.
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/rescache"
)

type Hooks struct {
	inner rescache.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ rescache.Hooks = (*Hooks)(nil)

func New(inner rescache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) Hit(id string)  { h.try(func() { h.inner.Hit(id) }) }
func (h *Hooks) Miss(id string) { h.try(func() { h.inner.Miss(id) }) }
func (h *Hooks) OriginFetched(id string, n int) {
	h.try(func() { h.inner.OriginFetched(id, n) })
}
func (h *Hooks) OriginFailed(id string, err error) {
	h.try(func() { h.inner.OriginFailed(id, err) })
}
func (h *Hooks) PersistFailed(id string, err error) {
	h.try(func() { h.inner.PersistFailed(id, err) })
}
func (h *Hooks) SweepFailed(err error)      { h.try(func() { h.inner.SweepFailed(err) }) }
func (h *Hooks) PreWarmed(id string, n int) { h.try(func() { h.inner.PreWarmed(id, n) }) }
