package collections

import "fmt"

// Optional holds a value that may be missing. It is the element type of a
// [Tuple] produced by [Zip], where a shorter input contributes a missing
// slot rather than a zero value that could be mistaken for data.
type Optional[V any] struct {
	value   V
	present bool
}

// Value returns a present Optional holding v.
func Value[V any](v V) Optional[V] { return Optional[V]{value: v, present: true} }

// Missing returns an empty Optional.
func Missing[V any]() Optional[V] { return Optional[V]{} }

// Get returns the value and whether it is present.
func (o Optional[V]) Get() (V, bool) { return o.value, o.present }

// Present reports whether the Optional holds a value.
func (o Optional[V]) Present() bool { return o.present }

// OrElse returns the value when present, def otherwise.
func (o Optional[V]) OrElse(def V) V {
	if o.present {
		return o.value
	}
	return def
}

// String returns the formatted value, or "<missing>".
func (o Optional[V]) String() string {
	if !o.present {
		return "<missing>"
	}
	return fmt.Sprintf("%v", o.value)
}

// Tuple is one row of a [Zip] result: slot j holds the element of the j-th
// input at the row's index.
type Tuple[V any] []Optional[V]

// Values returns the tuple's values with missing slots replaced by the zero
// value.
func (t Tuple[V]) Values() []V {
	return Map(Sequence[Optional[V]](t), func(o Optional[V]) V {
		v, _ := o.Get()
		return v
	})
}
