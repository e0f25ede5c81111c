package object

// Extend copies every key of every source into target, in order. Later
// sources overwrite earlier ones and the target's own values.
//
// Extend mutates target and returns it. When target is nil a new map is
// allocated and returned.
//
//	Extend(map[string]int{"a": 1}, map[string]int{"b": 2}, map[string]int{"a": 3})
//	// → map[a:3 b:2]
func Extend[K comparable, V any](target map[K]V, sources ...map[K]V) map[K]V {
	if target == nil {
		target = make(map[K]V, sizeHint(sources))
	}
	for _, src := range sources {
		for k, v := range src {
			target[k] = v
		}
	}
	return target
}

// Defaults fills in keys of target that are missing, taking values from the
// sources in order. A key already present in target, whether it came from
// the caller or from an earlier source, is never overwritten.
//
// Defaults mutates target and returns it. When target is nil a new map is
// allocated and returned.
//
//	Defaults(map[string]int{"a": 1}, map[string]int{"a": 9, "b": 2}, map[string]int{"b": 7})
//	// → map[a:1 b:2]
func Defaults[K comparable, V any](target map[K]V, sources ...map[K]V) map[K]V {
	if target == nil {
		target = make(map[K]V, sizeHint(sources))
	}
	for _, src := range sources {
		for k, v := range src {
			if _, exists := target[k]; !exists {
				target[k] = v
			}
		}
	}
	return target
}

func sizeHint[K comparable, V any](sources []map[K]V) int {
	n := 0
	for _, src := range sources {
		n += len(src)
	}
	return n
}
