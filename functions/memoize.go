package functions

import (
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/go-json-experiment/json"
	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/sync/singleflight"
)

// cacheKey is the BLAKE2b-256 digest of an argument's encoding.
type cacheKey [blake2b.Size256]byte

// Memoized caches the results of its wrapped function per argument. Build
// one with [Memoize].
//
// # Thread safety
//
// Memoized is safe for concurrent use. Concurrent calls that miss on the
// same argument run the wrapped function once and share its result.
type Memoized[A, R any] struct {
	fn     func(A) R
	logger *zap.Logger
	group  singleflight.Group

	mu    sync.Mutex
	cache map[cacheKey]R
}

// Memoize wraps fn so that each distinct argument is computed once.
//
// Arguments are identified by their dynamic type together with their
// deterministic JSON encoding: two arguments of the same type with the same
// encoding share a cache entry. Map keys are sorted, so map arguments with
// equal contents hit the same entry. Entries are never evicted.
//
// Only exported struct fields are encoded. A struct with no exported
// fields, such as struct{ x, y int }, cannot be encoded and every call with
// it fails with [ErrUnserializableArgument]; use exported fields or a
// primitive key instead. Values that differ only in unexported fields
// share an entry.
//
//	fib := functions.Memoize(slowFib)
//	n, err := fib.Call(40)
func Memoize[A, R any](fn func(A) R) *Memoized[A, R] {
	return MemoizeWithOptions(DefaultOptions(), fn)
}

// MemoizeWithOptions is [Memoize] with explicit [Options].
func MemoizeWithOptions[A, R any](opts Options, fn func(A) R) *Memoized[A, R] {
	opts = opts.withDefaults()
	return &Memoized[A, R]{
		fn:     fn,
		logger: opts.Logger,
		cache:  make(map[cacheKey]R),
	}
}

// Call returns the cached result for arg, computing and storing it on a
// miss. Returns [ErrUnserializableArgument] when arg cannot be encoded; the
// wrapped function is not called in that case.
func (m *Memoized[A, R]) Call(arg A) (R, error) {
	var zero R

	key, err := keyOf(arg)
	if err != nil {
		return zero, err
	}

	if r, ok := m.lookup(key); ok {
		m.logger.Debug("memoize: hit", zap.String("key", key.String()))
		return r, nil
	}

	v, _, _ := m.group.Do(string(key[:]), func() (any, error) {
		if r, ok := m.lookup(key); ok {
			return r, nil
		}
		m.logger.Debug("memoize: miss", zap.String("key", key.String()))
		r := m.fn(arg)

		m.mu.Lock()
		m.cache[key] = r
		m.mu.Unlock()
		return r, nil
	})
	r, _ := v.(R)
	return r, nil
}

// Len returns the number of cached results.
func (m *Memoized[A, R]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.cache)
}

func (m *Memoized[A, R]) lookup(key cacheKey) (R, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.cache[key]
	return r, ok
}

// keyOf digests the argument's dynamic type followed by its encoding, so
// that values with the same JSON text but different types (1 and 1.0,
// []byte("a") and "YQ==") get different keys.
func keyOf(arg any) (cacheKey, error) {
	b, err := json.Marshal(arg, json.Deterministic(true))
	if err != nil {
		return cacheKey{}, fmt.Errorf("%w: %T: %w", ErrUnserializableArgument, arg, err)
	}

	h, err := blake2b.New256(nil)
	if err != nil {
		return cacheKey{}, err
	}
	fmt.Fprintf(h, "%T\x00", arg)
	h.Write(b)

	var key cacheKey
	h.Sum(key[:0])
	return key, nil
}

// String returns the first eight bytes of the key in hex, for logging.
func (k cacheKey) String() string {
	return hex.EncodeToString(k[:8])
}
