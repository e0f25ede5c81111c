// Package functions provides decorators that wrap a function value and
// control how often, how late, or how many times it runs.
//
// # Decorators
//
//   - [Once]: runs the wrapped function on the first call only and returns
//     the cached result afterwards.
//   - [Memoize]: caches results per argument, keyed by a digest of the
//     argument's deterministic JSON encoding.
//   - [Delay]: schedules a single invocation after a wait.
//   - [Throttle]: drops calls that arrive within a window of the last
//     accepted one.
//
// Each decorator that keeps state returns a small struct with a Call
// method. The state is private to that struct and guarded by a mutex, so a
// decorated value is safe for concurrent use.
//
// # Options
//
// The *WithOptions constructors take an [Options] value carrying a
// [go.uber.org/zap] logger and a clock. Decorators log at Debug level only;
// the default logger discards everything.
//
//	logger, _ := zap.NewDevelopment()
//	opts := functions.DefaultOptions()
//	opts.Logger = logger
//	save := functions.ThrottleWithOptions(opts, persist, time.Second)
//
// Portability note: in JavaScript these are higher-order functions that
// return closures; Go returns a struct so that state such as [Memoized.Len]
// or [Throttled.Stats] stays observable without exposing the cache itself.
package functions
