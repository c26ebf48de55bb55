// Package rescache is a get-or-fetch cache for named binary resources
// (images addressed by URL, asset path, or file path). A lookup returns
// cached bytes when a local copy exists; otherwise the origin is consulted,
// the result persisted, and the bytes returned. Durable entries are swept on
// a time-to-live policy; sweeping runs opportunistically on the miss path,
// never on a timer.
//
// Components:
//   - Backend: byte store keyed by origin identifier (filestore on a scratch
//     directory, kvstore over a string KV such as Redis, memstore on
//     bigcache for in-process use).
//   - origin.Fetcher: reads the authoritative source (HTTP GET, or a bundled
//     asset from an fs.FS), consulted only on a miss or for pre-warming.
//   - Cache: ties them together with per-identifier fetch coalescing and a
//     configurable TTL (default 7 days).
//
// Key resolution is backend-specific: the file backend keys by the
// identifier's basename (two URLs ending in /logo.png share one file; last
// write wins), while the KV and memory backends key by the raw identifier
// and cannot collide. The KV backend has no timestamp metadata, so the TTL
// has no effect there - entries are only ever overwritten.
//
// Typical use:
//
//	backend, _ := rescache.NewBackend(rescache.BackendConfig{
//	    Durable:  true,
//	    CacheDir: filepath.Join(os.TempDir(), "resources"),
//	})
//	cache, _ := rescache.New(rescache.Options{
//	    Backend: backend,
//	    Origin:  &origin.Router{Remote: origin.NewHTTP(nil), Assets: origin.NewBundle(assets)},
//	    Bundle:  origin.NewBundle(assets),
//	})
//	b, err := cache.Fetch(ctx, "https://cdn.example.com/img/logo.png")
package rescache
