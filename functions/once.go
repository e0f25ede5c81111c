package functions

import (
	"sync"

	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// OnceFunc runs its wrapped function at most once. Build one with [Once].
type OnceFunc[A, R any] struct {
	fn     func(A) R
	logger *zap.Logger

	mu     sync.Mutex
	done   atomic.Bool
	result R
}

// Once wraps fn so that only the first [OnceFunc.Call] runs it. Every later
// call returns the first result, whatever argument it is given.
//
//	initDB := functions.Once(func(dsn string) *sql.DB { return mustOpen(dsn) })
//	db := initDB.Call(dsn)
func Once[A, R any](fn func(A) R) *OnceFunc[A, R] {
	return OnceWithOptions(DefaultOptions(), fn)
}

// OnceWithOptions is [Once] with explicit [Options].
func OnceWithOptions[A, R any](opts Options, fn func(A) R) *OnceFunc[A, R] {
	opts = opts.withDefaults()
	return &OnceFunc[A, R]{fn: fn, logger: opts.Logger}
}

// Call runs the wrapped function on the first call and returns its result;
// later calls return that same result without running it.
//
// If the wrapped function panics the call does not count: the panic
// propagates and the next Call tries again. Calling Call from inside the
// wrapped function deadlocks.
func (o *OnceFunc[A, R]) Call(arg A) R {
	if o.done.Load() {
		return o.result
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.done.Load() {
		o.result = o.fn(arg)
		o.done.Store(true)
		o.logger.Debug("once: invoked")
	}
	return o.result
}

// Called reports whether the wrapped function has completed once.
func (o *OnceFunc[A, R]) Called() bool {
	return o.done.Load()
}
