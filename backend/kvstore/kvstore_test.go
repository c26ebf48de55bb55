package kvstore

import (
	"bytes"
	"context"
	"testing"
)

type memMap struct {
	m map[string]string
}

var _ Map = (*memMap)(nil)

func newMemMap() *memMap { return &memMap{m: make(map[string]string)} }

func (p *memMap) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := p.m[key]
	return v, ok, nil
}
func (p *memMap) Set(_ context.Context, key, value string) error { p.m[key] = value; return nil }
func (p *memMap) Del(_ context.Context, key string) error        { delete(p.m, key); return nil }
func (p *memMap) Close(_ context.Context) error                  { return nil }

func newTestKV(t *testing.T) (*KV, *memMap) {
	t.Helper()
	mm := newMemMap()
	kv, err := New(mm)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return kv, mm
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv, _ := newTestKV(t)

	const id = "https://host/img/pic.png"
	payload := []byte{0x00, 0xFF, 0x10}

	if _, ok, err := kv.Get(ctx, id); err != nil || ok {
		t.Fatalf("expected miss, ok=%v err=%v", ok, err)
	}
	if err := kv.Put(ctx, id, payload); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok, err := kv.Get(ctx, id)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("payload mismatch: got %v want %v", got, payload)
	}
}

// Keys are raw identifiers here, so basename twins never collide.
func TestNoBasenameCollision(t *testing.T) {
	ctx := context.Background()
	kv, _ := newTestKV(t)

	if err := kv.Put(ctx, "https://host/a/logo.png", []byte("a")); err != nil {
		t.Fatalf("Put a: %v", err)
	}
	if err := kv.Put(ctx, "https://host/b/logo.png", []byte("b")); err != nil {
		t.Fatalf("Put b: %v", err)
	}

	got, ok, _ := kv.Get(ctx, "https://host/a/logo.png")
	if !ok || string(got) != "a" {
		t.Fatalf("entry a clobbered: ok=%v got=%q", ok, got)
	}
}

// Sweep never removes anything: the store has no stored-at times. Stale
// entries live until overwritten.
func TestSweepIsNoOp(t *testing.T) {
	ctx := context.Background()
	kv, mm := newTestKV(t)

	if err := kv.Put(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := kv.Sweep(ctx, 0); err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(mm.m) != 1 {
		t.Fatalf("sweep touched the store: %v", mm.m)
	}
	if _, ok, _ := kv.Get(ctx, "k"); !ok {
		t.Fatalf("entry gone after no-op sweep")
	}
}

func TestRefShape(t *testing.T) {
	ctx := context.Background()
	kv, _ := newTestKV(t)

	const id = "https://host/remote.png"
	if err := kv.PutRef(ctx, id, id); err != nil {
		t.Fatalf("PutRef: %v", err)
	}

	// Byte-shaped reads must not surface a ref entry.
	if _, ok, err := kv.Get(ctx, id); err != nil || ok {
		t.Fatalf("Get on ref should miss, ok=%v err=%v", ok, err)
	}

	e, ok, err := kv.Entry(ctx, id)
	if err != nil || !ok {
		t.Fatalf("Entry: ok=%v err=%v", ok, err)
	}
	if e.Shape != ShapeRef || e.Ref != id {
		t.Fatalf("unexpected entry: %+v", e)
	}

	// Overwriting with bytes flips the shape.
	if err := kv.Put(ctx, id, []byte{7}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	e, ok, _ = kv.Entry(ctx, id)
	if !ok || e.Shape != ShapeBytes || !bytes.Equal(e.Payload, []byte{7}) {
		t.Fatalf("unexpected entry after overwrite: %+v", e)
	}
}

// Values with an unknown prefix or broken base64 are deleted and missed.
func TestSelfHealOnCorrupt(t *testing.T) {
	ctx := context.Background()
	kv, mm := newTestKV(t)

	for _, raw := range []string{"garbage", "b64:!!!not-base64!!!"} {
		mm.m["bad"] = raw
		if _, ok, err := kv.Get(ctx, "bad"); err != nil || ok {
			t.Fatalf("Get on corrupt %q should miss, ok=%v err=%v", raw, ok, err)
		}
		if _, still := mm.m["bad"]; still {
			t.Fatalf("corrupt value %q was not deleted by self-heal", raw)
		}
	}
}

func TestEncodeDecodeEntry(t *testing.T) {
	e, err := decodeEntry(encodeBytes([]byte("abc")))
	if err != nil || e.Shape != ShapeBytes || string(e.Payload) != "abc" {
		t.Fatalf("bytes round trip: %+v err=%v", e, err)
	}
	e, err = decodeEntry(encodeRef("https://host/x"))
	if err != nil || e.Shape != ShapeRef || e.Ref != "https://host/x" {
		t.Fatalf("ref round trip: %+v err=%v", e, err)
	}
	if _, err := decodeEntry("v2:whatever"); err == nil {
		t.Fatalf("unknown prefix should be corruption")
	}
}
