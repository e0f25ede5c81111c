package collections

import (
	"fmt"
	"reflect"
)

var errorType = reflect.TypeFor[error]()

// Method selects what [Invoke] calls on every item. Build one with
// [ByFunction] or [ByName]; the zero Method calls nothing and makes Invoke
// fail with [ErrMethodNotFound].
type Method[T, R any] struct {
	fn   func(recv T, args ...any) R
	name string
}

// ByFunction calls fn with each item as the receiver followed by the
// arguments given to [Invoke].
//
//	collections.ByFunction(func(s string, _ ...any) string { return strings.ToUpper(s) })
func ByFunction[T, R any](fn func(recv T, args ...any) R) Method[T, R] {
	return Method[T, R]{fn: fn}
}

// ByName calls the exported method called name on each item, resolved at
// call time through reflection. The method's first result is converted to
// R; when its last result is an error and non-nil, Invoke stops and returns
// it wrapped in [ErrMethodFailed].
//
//	collections.ByName[*Account, string]("Owner")
func ByName[T, R any](name string) Method[T, R] {
	return Method[T, R]{name: name}
}

// String returns the method name, or "func" for a [ByFunction] method.
func (m Method[T, R]) String() string {
	if m.fn != nil {
		return "func"
	}
	return m.name
}

func (m Method[T, R]) call(item T, args []any) (R, error) {
	if m.fn != nil {
		return m.fn(item, args...), nil
	}
	return callByName[R](item, m.name, args)
}

// Invoke calls m on every element of c with args and collects the results
// in traversal order. The first error aborts the remaining calls.
//
//	names, err := collections.Invoke(accounts, collections.ByName[*Account, string]("Owner"))
func Invoke[K comparable, V, R any](c Collection[K, V], m Method[V, R], args ...any) (Sequence[R], error) {
	out := make(Sequence[R], 0, lenOf(c))
	var firstErr error
	Each(c, func(v V, _ K, _ Collection[K, V]) {
		if firstErr != nil {
			return
		}
		r, err := m.call(v, args)
		if err != nil {
			firstErr = err
			return
		}
		out = append(out, r)
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

func callByName[R any](item any, name string, args []any) (R, error) {
	var zero R

	var method reflect.Value
	if rv := reflect.ValueOf(item); rv.IsValid() && name != "" {
		method = rv.MethodByName(name)
	}
	if !method.IsValid() {
		return zero, fmt.Errorf("%w: %q on %T", ErrMethodNotFound, name, item)
	}

	in, err := methodArgs(method.Type(), args)
	if err != nil {
		return zero, fmt.Errorf("%w: %s", err, name)
	}

	outs := method.Call(in)
	mt := method.Type()
	if n := len(outs); n > 0 && mt.Out(n-1) == errorType {
		if e, _ := outs[n-1].Interface().(error); e != nil {
			return zero, fmt.Errorf("%w: %s: %w", ErrMethodFailed, name, e)
		}
		outs = outs[:n-1]
	}
	if len(outs) == 0 {
		return zero, nil
	}

	res := outs[0].Interface()
	if res == nil {
		return zero, nil
	}
	r, ok := res.(R)
	if !ok {
		return zero, fmt.Errorf("%w: %s returned %T, want %T", ErrResultType, name, res, zero)
	}
	return r, nil
}

// methodArgs converts args to the parameter types of mt, expanding a
// trailing variadic parameter. Nil arguments become zero values.
func methodArgs(mt reflect.Type, args []any) ([]reflect.Value, error) {
	fixed := mt.NumIn()
	if mt.IsVariadic() {
		fixed--
		if len(args) < fixed {
			return nil, fmt.Errorf("%w: got %d, want at least %d", ErrInvalidArguments, len(args), fixed)
		}
	} else if len(args) != fixed {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidArguments, len(args), fixed)
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var pt reflect.Type
		if i < fixed {
			pt = mt.In(i)
		} else {
			pt = mt.In(fixed).Elem()
		}
		if arg == nil {
			in[i] = reflect.Zero(pt)
			continue
		}
		av := reflect.ValueOf(arg)
		if !av.Type().AssignableTo(pt) {
			return nil, fmt.Errorf("%w: argument %d is %T, want %s", ErrInvalidArguments, i, arg, pt)
		}
		in[i] = av
	}
	return in, nil
}
