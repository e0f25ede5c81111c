package collections

import (
	"fmt"
	"math/rand/v2"
	"reflect"
	"slices"

	"github.com/hasbyte1/go-underbar/object"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sorting & Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Shuffle returns a new sequence holding every element of s exactly once in
// uniformly random order. s is not modified.
func Shuffle[V any](s Sequence[V]) Sequence[V] {
	return ShuffleWith(s, nil)
}

// ShuffleWith is [Shuffle] drawing from r. A nil r uses the global source.
func ShuffleWith[V any](s Sequence[V], r *rand.Rand) Sequence[V] {
	intN := rand.IntN
	if r != nil {
		intN = r.IntN
	}
	// Inside-out Fisher-Yates: element i lands at a random slot in [0, i]
	// and the previous occupant of that slot moves to the end.
	out := make(Sequence[V], 0, len(s))
	Each(s, func(v V, i int, _ Collection[int, V]) {
		j := intN(i + 1)
		out = append(out, v)
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// SortBy returns the elements of c in a new sequence, sorted in ascending
// order of the key chosen by by. The sort is stable: elements with equal
// keys keep their traversal order. c is never modified; for a [Mapping] the
// values are sorted.
//
// A [ByField] criterion fails with [ErrFieldNotFound] when an element lacks
// the field and with [ErrNotOrdered] when two keys cannot be compared.
//
//	sorted, err := collections.SortBy(people, collections.ByField[Person]("age"))
func SortBy[K comparable, V any](c Collection[K, V], by Criterion[V]) (Sequence[V], error) {
	if by.compare != nil {
		out := Map(c, Identity[V])
		slices.SortStableFunc(out, by.compare)
		return out, nil
	}
	if by.field == "" {
		return nil, fmt.Errorf("%w: empty sort criterion", ErrFieldNotFound)
	}

	var lookupErr error
	decorated := Map(c, func(v V) keyed[V] {
		key, ok := object.Lookup(v, by.field)
		if !ok && lookupErr == nil {
			lookupErr = fmt.Errorf("%w: %q on %T", ErrFieldNotFound, by.field, v)
		}
		return keyed[V]{key: key, item: v}
	})
	if lookupErr != nil {
		return nil, lookupErr
	}

	var orderErr error
	slices.SortStableFunc(decorated, func(a, b keyed[V]) int {
		n, err := compareNatural(a.key, b.key)
		if err != nil && orderErr == nil {
			orderErr = fmt.Errorf("%w (field %q)", err, by.field)
		}
		return n
	})
	if orderErr != nil {
		return nil, orderErr
	}

	return Map(decorated, func(k keyed[V]) V { return k.item }), nil
}

// keyed pairs an element with its resolved sort key.
type keyed[V any] struct {
	key  any
	item V
}

// ─────────────────────────────────────────────────────────────────────────────
// Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Zip groups the elements of seqs by index. Row i holds seqs[j][i] for every
// input j; the result is as long as the longest input and shorter inputs
// contribute [Missing] slots.
//
//	collections.Zip(collections.Sequence[any]{"a", "b", "c"}, collections.Sequence[any]{1, 2})
//	// → [[a 1] [b 2] [c <missing>]]
func Zip[V any](seqs ...Sequence[V]) Sequence[Tuple[V]] {
	all := Sequence[Sequence[V]](seqs)
	longest := Reduce(all, func(n int, s Sequence[V]) int { return max(n, len(s)) }, 0)

	// The zero Optional is missing, so only present slots need writing.
	out := make(Sequence[Tuple[V]], longest)
	for i := range out {
		out[i] = make(Tuple[V], len(seqs))
	}
	Each(all, func(s Sequence[V], j int, _ Collection[int, Sequence[V]]) {
		Each(s, func(v V, i int, _ Collection[int, V]) {
			out[i][j] = Value(v)
		})
	})
	return out
}

// Flatten inlines every level of nesting into one flat sequence, in
// traversal order. Nested Sequence[any], []any and any other slice or array
// are expanded; []byte and every other value are kept as elements.
//
//	collections.Flatten(collections.Sequence[any]{1, []any{2, []int{3, 4}}, 5})
//	// → [1 2 3 4 5]
func Flatten(nested Sequence[any]) Sequence[any] {
	out := Sequence[any]{}
	flattenInto(&out, nested)
	return out
}

func flattenInto(out *Sequence[any], s Sequence[any]) {
	Each(s, func(v any, _ int, _ Collection[int, any]) {
		if inner, ok := asSequence(v); ok {
			flattenInto(out, inner)
			return
		}
		*out = append(*out, v)
	})
}

func asSequence(v any) (Sequence[any], bool) {
	switch t := v.(type) {
	case Sequence[any]:
		return t, true
	case []any:
		return t, true
	case []byte:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	s := make(Sequence[any], rv.Len())
	for i := range s {
		s[i] = rv.Index(i).Interface()
	}
	return s, true
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// Intersection returns the distinct values present in every input, in the
// order they first appear in seqs[0]. No inputs yield an empty sequence.
func Intersection[V comparable](seqs ...Sequence[V]) Sequence[V] {
	if len(seqs) == 0 {
		return Sequence[V]{}
	}
	all := Sequence[Sequence[V]](seqs)
	return Filter(Uniq(seqs[0]), func(v V, _ int, _ Collection[int, V]) bool {
		return Every(all, func(s Sequence[V]) bool { return Contains(s, v) })
	})
}

// Difference returns the elements of base, in order and with repetitions,
// that appear in none of others.
func Difference[V comparable](base Sequence[V], others ...Sequence[V]) Sequence[V] {
	all := Sequence[Sequence[V]](others)
	return Reject(base, func(v V) bool {
		return Some(all, func(s Sequence[V]) bool { return Contains(s, v) })
	})
}
