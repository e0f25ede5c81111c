package functions

import "errors"

// ErrUnserializableArgument is returned by [Memoized.Call] when the argument
// has no deterministic JSON encoding (functions, channels, cyclic values,
// NaN or infinite floats). Such calls are never cached and never reach the
// wrapped function.
var ErrUnserializableArgument = errors.New("functions: argument cannot be serialized as a cache key")
