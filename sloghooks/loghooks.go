// Package sloghooks logs rescache events through slog, with sampling on the
// hot hit/miss callbacks and key redaction for logs that leave the host.
package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/rescache"
)

type Options struct {
	// Sampling to avoid floods on the hot path; 0/1 = log all.
	HitEvery  uint64
	MissEvery uint64
	// Optional identifier redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	hitCtr  atomic.Uint64
	missCtr atomic.Uint64
}

var _ rescache.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(id string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(id)
	}
	sum := sha256.Sum256([]byte(id))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) Hit(identifier string) {
	if h.l == nil || !sample(h.opts.HitEvery, &h.hitCtr) {
		return
	}
	h.l.Debug("rescache.hit", "id", h.redact(identifier))
}

func (h *Hooks) Miss(identifier string) {
	if h.l == nil || !sample(h.opts.MissEvery, &h.missCtr) {
		return
	}
	h.l.Debug("rescache.miss", "id", h.redact(identifier))
}

func (h *Hooks) OriginFetched(identifier string, size int) {
	if h.l == nil {
		return
	}
	h.l.Debug("rescache.origin_fetched",
		"id", h.redact(identifier),
		"bytes", size)
}

func (h *Hooks) OriginFailed(identifier string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("rescache.origin_failed",
		"id", h.redact(identifier),
		"err", err)
}

func (h *Hooks) PersistFailed(identifier string, err error) {
	if h.l == nil {
		return
	}
	h.l.Error("rescache.persist_failed",
		"id", h.redact(identifier),
		"err", err)
}

func (h *Hooks) SweepFailed(err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("rescache.sweep_failed", "err", err)
}

func (h *Hooks) PreWarmed(identifier string, size int) {
	if h.l == nil {
		return
	}
	h.l.Info("rescache.prewarmed",
		"id", h.redact(identifier),
		"bytes", size)
}
