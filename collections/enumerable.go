package collections

// Collection is the interface every operation in this package accepts.
//
// It has exactly two implementations here, [Sequence] and [Mapping], but
// callers may supply their own: all derived operations reach their input
// only through [Each], so a wrapper that counts or logs traversals sees
// every element exactly once per traversal.
//
// Portability note: this maps to an Iterable in TypeScript/Java or an object
// implementing __iter__ in Python, with the key passed alongside the value.
type Collection[K comparable, V any] interface {
	// Each calls fn(value, key, collection) for every element in traversal
	// order.
	Each(fn Iterator[K, V])

	// Len returns the number of elements.
	Len() int
}

// Iterator is the per-element callback passed to [Each].
type Iterator[K comparable, V any] func(value V, key K, coll Collection[K, V])

// Predicate is a truth test over one element, used by [Filter].
type Predicate[K comparable, V any] func(value V, key K, coll Collection[K, V]) bool

// Sequence is an ordered collection keyed by index.
type Sequence[V any] []V

// Each calls fn for every element in ascending index order.
func (s Sequence[V]) Each(fn Iterator[int, V]) {
	for i, v := range s {
		fn(v, i, s)
	}
}

// Len returns the number of elements.
func (s Sequence[V]) Len() int { return len(s) }

// Mapping is a keyed collection. Traversal follows Go's map iteration order,
// which is unspecified and differs between traversals.
type Mapping[K comparable, V any] map[K]V

// Each calls fn for every entry.
func (m Mapping[K, V]) Each(fn Iterator[K, V]) {
	for k, v := range m {
		fn(v, k, m)
	}
}

// Len returns the number of entries.
func (m Mapping[K, V]) Len() int { return len(m) }

// Identity returns v unchanged. It is the default transformation wherever
// one is optional.
func Identity[T any](v T) T { return v }

// Each calls fn(value, key, c) once per element of c, in traversal order.
// It is the sole iteration primitive: every other operation in the package
// is written in terms of Each or of [Reduce], which is itself built on Each.
// A nil collection has no elements.
func Each[K comparable, V any](c Collection[K, V], fn Iterator[K, V]) {
	if c == nil {
		return
	}
	c.Each(fn)
}
