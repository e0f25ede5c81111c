package collections

import "runtime"

// sameValue reports whether a == b. Interface values whose dynamic type is
// not comparable (slices, maps, funcs) are never equal to anything,
// themselves included.
func sameValue[V comparable](a, b V) (eq bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); !ok {
				panic(r)
			}
			eq = false
		}
	}()
	return a == b
}

// seenSet records values already emitted by [Uniq]. Values that cannot be
// hashed are always reported as unseen, consistent with [sameValue].
type seenSet[V comparable] map[V]struct{}

func (s seenSet[V]) add(v V) (fresh bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); !ok {
				panic(r)
			}
			fresh = true
		}
	}()
	if _, dup := s[v]; dup {
		return false
	}
	s[v] = struct{}{}
	return true
}
