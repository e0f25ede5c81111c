package collections

import (
	"reflect"

	"github.com/hasbyte1/go-underbar/object"
)

// This file contains the derived operations. None of them touches its input
// directly: they are expressed through [Each] and [Reduce] only.

// ─────────────────────────────────────────────────────────────────────────────
// Searching & slicing
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element of s.
// Returns the zero value and false when s is empty.
func First[V any](s Sequence[V]) (V, bool) {
	var first V
	found := false
	Each(s, func(v V, i int, _ Collection[int, V]) {
		if i == 0 {
			first, found = v, true
		}
	})
	return first, found
}

// FirstN returns the first min(n, len(s)) elements of s in order.
// A non-positive n yields an empty sequence.
func FirstN[V any](s Sequence[V], n int) Sequence[V] {
	return Filter(s, func(_ V, i int, _ Collection[int, V]) bool { return i < n })
}

// Last returns the last element of s.
// Returns the zero value and false when s is empty.
func Last[V any](s Sequence[V]) (V, bool) {
	var last V
	found := false
	Each(s, func(v V, _ int, _ Collection[int, V]) {
		last, found = v, true
	})
	return last, found
}

// LastN returns the last min(n, len(s)) elements of s in order.
// A non-positive n yields an empty sequence.
func LastN[V any](s Sequence[V], n int) Sequence[V] {
	start := len(s) - n
	return Filter(s, func(_ V, i int, _ Collection[int, V]) bool { return n > 0 && i >= start })
}

// IndexOf returns the index of the first element equal to target, or -1.
//
// Equality is Go's ==, except that an interface value holding an
// uncomparable dynamic type (a slice, map or func) matches nothing.
func IndexOf[V comparable](s Sequence[V], target V) int {
	result := -1
	Each(s, func(v V, i int, _ Collection[int, V]) {
		if result == -1 && sameValue(v, target) {
			result = i
		}
	})
	return result
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns the elements of c, in traversal order, for which
// pred(value, key, c) returns true.
func Filter[K comparable, V any](c Collection[K, V], pred Predicate[K, V]) Sequence[V] {
	out := make(Sequence[V], 0, lenOf(c))
	Each(c, func(v V, k K, coll Collection[K, V]) {
		if pred(v, k, coll) {
			out = append(out, v)
		}
	})
	return out
}

// Reject returns the elements of c for which pred returns false. It is the
// complement of [Filter]; note that pred receives the value only.
func Reject[K comparable, V any](c Collection[K, V], pred func(V) bool) Sequence[V] {
	return Filter(c, func(v V, _ K, _ Collection[K, V]) bool { return !pred(v) })
}

// Uniq returns the distinct elements of c, keeping the first occurrence of
// each and preserving traversal order. Equality is Go's ==, so 1 and "1" in
// a Sequence[any] stay distinct. Elements of an uncomparable dynamic type
// are never considered duplicates and are all kept.
func Uniq[K comparable, V comparable](c Collection[K, V]) Sequence[V] {
	seen := make(seenSet[V], lenOf(c))
	return Filter(c, func(v V, _ K, _ Collection[K, V]) bool {
		return seen.add(v)
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map returns fn(value) for every element of c, in traversal order.
func Map[K comparable, V, R any](c Collection[K, V], fn func(V) R) Sequence[R] {
	out := make(Sequence[R], 0, lenOf(c))
	Each(c, func(v V, _ K, _ Collection[K, V]) {
		out = append(out, fn(v))
	})
	return out
}

// Pluck projects obj[key] out of every map in s. A map without key
// contributes the zero value.
//
//	ages := collections.Pluck(people, "age")
func Pluck[PK comparable, PV any](s Sequence[map[PK]PV], key PK) Sequence[PV] {
	return Map(s, func(obj map[PK]PV) PV { return obj[key] })
}

// PluckPath projects the value at a dot-notation path out of every element
// of c, walking maps and struct fields as [object.Lookup] does. An element
// without the path contributes nil.
func PluckPath[K comparable, V any](c Collection[K, V], path string) Sequence[any] {
	return Map(c, func(v V) any {
		val, _ := object.Lookup(v, path)
		return val
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Folding
// ─────────────────────────────────────────────────────────────────────────────

// Reduce folds c from the left: acc = fn(acc, value) for each element,
// starting from initial. An empty collection yields initial.
//
//	sum := collections.Reduce(collections.Sequence[int]{1, 2, 3},
//	    func(acc, n int) int { return acc + n }, 0) // 6
func Reduce[K comparable, V, A any](c Collection[K, V], fn func(acc A, value V) A, initial A) A {
	acc := initial
	Each(c, func(v V, _ K, _ Collection[K, V]) {
		acc = fn(acc, v)
	})
	return acc
}

// ReduceFirst folds c from the left using the first element as the initial
// accumulator; fn is first called with the first and second elements.
// Returns the zero value and false for an empty collection.
func ReduceFirst[K comparable, V any](c Collection[K, V], fn func(acc, value V) V) (V, bool) {
	var acc V
	seeded := false
	Each(c, func(v V, _ K, _ Collection[K, V]) {
		if !seeded {
			acc, seeded = v, true
			return
		}
		acc = fn(acc, v)
	})
	return acc, seeded
}

// Contains reports whether any element of c equals target, using the same
// equality as [IndexOf].
func Contains[K comparable, V comparable](c Collection[K, V], target V) bool {
	return Reduce(c, func(found bool, v V) bool {
		return found || sameValue(v, target)
	}, false)
}

// Every reports whether pred holds for every element of c. A nil pred tests
// the elements themselves for truthiness. Evaluation of pred stops at the
// first failure. An empty collection yields true.
//
// Truthiness is Go's zero value: nil, false, 0, "" and zero-valued structs
// and arrays are false. Unlike a JavaScript object, a struct whose fields
// are all zero is therefore falsy. Non-nil slices, maps and pointers are
// true even when empty.
func Every[K comparable, V any](c Collection[K, V], pred func(V) bool) bool {
	test := truthTest(pred)
	return Reduce(c, func(all bool, v V) bool {
		return all && test(v)
	}, true)
}

// Some reports whether pred holds for at least one element of c. A nil pred
// tests the elements themselves for truthiness, as defined on [Every].
// Evaluation of pred stops at the first success. An empty collection yields
// false.
func Some[K comparable, V any](c Collection[K, V], pred func(V) bool) bool {
	test := truthTest(pred)
	return Reduce(c, func(found bool, v V) bool {
		return found || test(v)
	}, false)
}

func truthTest[V any](pred func(V) bool) func(V) bool {
	if pred != nil {
		return pred
	}
	return func(v V) bool { return truthy(v) }
}

// truthy treats nil and zero values, zero structs included, as false.
func truthy(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.IsValid() && !rv.IsZero()
}

func lenOf[K comparable, V any](c Collection[K, V]) int {
	if c == nil {
		return 0
	}
	return c.Len()
}
