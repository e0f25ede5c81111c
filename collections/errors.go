package collections

import "errors"

// Sentinel errors returned by collection operations.
//
// Use [errors.Is] for comparisons; returned errors carry the offending
// method or field name as context.
var (
	// ErrMethodNotFound is returned by [Invoke] when an item has no exported
	// method with the requested name.
	ErrMethodNotFound = errors.New("collections: method not found")

	// ErrInvalidArguments is returned by [Invoke] when the supplied arguments
	// do not match the named method's parameters.
	ErrInvalidArguments = errors.New("collections: arguments do not match method signature")

	// ErrMethodFailed wraps a non-nil error returned by a method called
	// through [Invoke].
	ErrMethodFailed = errors.New("collections: invoked method returned an error")

	// ErrResultType is returned by [Invoke] when a method's result cannot be
	// converted to the requested result type.
	ErrResultType = errors.New("collections: unexpected method result type")

	// ErrFieldNotFound is returned by [SortBy] when an element does not have
	// the field named by a [ByField] criterion.
	ErrFieldNotFound = errors.New("collections: field not found")

	// ErrNotOrdered is returned by [SortBy] when two sort keys have no
	// natural order relative to each other.
	ErrNotOrdered = errors.New("collections: values are not ordered")
)
