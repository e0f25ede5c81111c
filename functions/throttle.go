package functions

import (
	"sync"
	"time"

	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// Throttled drops calls that arrive too soon after the last accepted one.
// Build one with [Throttle].
type Throttled[A any] struct {
	fn     func(A)
	wait   time.Duration
	clock  func() time.Time
	logger *zap.Logger

	// invariant: last is meaningful only once called is true
	mu     sync.Mutex
	called bool
	last   time.Time

	invoked    atomic.Int64
	suppressed atomic.Int64
}

// Throttle wraps fn so that it runs at most once per wait window. The first
// call always runs. A later call runs only when more than wait has passed
// since the last call that ran; otherwise it is dropped. Dropped calls are
// not replayed at the end of the window.
//
//	save := functions.Throttle(persist, time.Second)
//	save.Call(doc) // runs
//	save.Call(doc) // dropped
func Throttle[A any](fn func(A), wait time.Duration) *Throttled[A] {
	return ThrottleWithOptions(DefaultOptions(), fn, wait)
}

// ThrottleWithOptions is [Throttle] with explicit [Options]. The window is
// measured with opts.Clock.
func ThrottleWithOptions[A any](opts Options, fn func(A), wait time.Duration) *Throttled[A] {
	opts = opts.withDefaults()
	return &Throttled[A]{
		fn:     fn,
		wait:   wait,
		clock:  opts.Clock,
		logger: opts.Logger,
	}
}

// Call runs the wrapped function with arg unless the call falls inside the
// current window, and reports whether it ran. The window restarts at the
// moment a call is accepted, before the wrapped function runs.
func (t *Throttled[A]) Call(arg A) bool {
	t.mu.Lock()
	now := t.clock()
	if t.called {
		if since := now.Sub(t.last); since <= t.wait {
			t.mu.Unlock()
			t.suppressed.Inc()
			t.logger.Debug("throttle: call suppressed",
				zap.Duration("since_last", since),
				zap.Duration("wait", t.wait))
			return false
		}
	}
	t.called, t.last = true, now
	t.mu.Unlock()

	t.invoked.Inc()
	t.logger.Debug("throttle: call accepted")
	t.fn(arg)
	return true
}

// Stats returns how many calls ran and how many were suppressed.
func (t *Throttled[A]) Stats() (invoked, suppressed int64) {
	return t.invoked.Load(), t.suppressed.Load()
}
