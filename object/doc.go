// Package object provides helpers for Go maps used as plain objects:
// property merging in the spirit of underscore's _.extend / _.defaults, and
// dot-notation lookup across nested maps and structs.
//
// # Merging
//
// [Extend] and [Defaults] mutate the target map in place and return it:
//
//	cfg := map[string]any{"host": "localhost"}
//	object.Extend(cfg, map[string]any{"port": 8080}, map[string]any{"host": "db"})
//	// cfg → {"host": "db", "port": 8080}
//
//	opts := map[string]any{"retries": 5}
//	object.Defaults(opts, map[string]any{"retries": 3, "timeout": "1s"})
//	// opts → {"retries": 5, "timeout": "1s"}
//
// A nil target is replaced by a freshly allocated map, so always use the
// returned value, exactly as with the built-in append.
//
// # Dot-notation lookup
//
// [Lookup] walks a dot-separated path through map[string]V values, structs
// (exported fields or their json names) and pointers:
//
//	v, ok := object.Lookup(user, "address.city")
//
// [Get] and [Has] are the map[string]any shorthands.
package object
