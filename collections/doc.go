// Package collections provides generic iteration, filtering, reduction and
// set-like operations over ordered sequences and key-value mappings, in the
// spirit of underscore.js.
//
// # Collections
//
// Every operation accepts a [Collection], implemented by two types:
//
//	s := collections.Sequence[int]{3, 1, 2}                 // keyed by index
//	m := collections.Mapping[string, int]{"a": 1, "b": 2}   // keyed by map key
//
// [Each] is the single iteration primitive. Every other operation is written
// in terms of Each, directly or through [Reduce], so a custom Collection
// only has to implement Each and Len to work with the whole package.
//
// # Layering
//
//   - Primitives: [Identity], [Each].
//   - Derived: [First], [FirstN], [Last], [LastN], [IndexOf], [Filter],
//     [Reject], [Uniq], [Map], [Pluck], [PluckPath], [Invoke], [Reduce],
//     [ReduceFirst], [Contains], [Every], [Some].
//   - Structural: [Shuffle], [SortBy], [Zip], [Flatten], [Intersection],
//     [Difference].
//
// # Immutability
//
// No operation modifies its input. Operations that return a sequence always
// return a new one, so the result never aliases the argument.
//
// # Dynamic dispatch
//
// Operations that accept either a function or a name take an explicit
// tagged value rather than inspecting an argument's type:
//
//	collections.Invoke(items, collections.ByName[*Item, string]("Label"))
//	collections.Invoke(items, collections.ByFunction(func(it *Item, _ ...any) string { ... }))
//
//	collections.SortBy(people, collections.ByField[Person]("age"))
//	collections.SortBy(people, collections.ByKey(func(p Person) string { return p.Name }))
//
// # Equality
//
// Membership tests ([IndexOf], [Contains], [Uniq], [Intersection],
// [Difference]) use Go's == with no coercion.
package collections
