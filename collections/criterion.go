package collections

import (
	"cmp"
	"fmt"
	"reflect"
	"time"
)

// Criterion selects the sort key used by [SortBy]. Build one with [ByKey]
// or [ByField].
type Criterion[T any] struct {
	compare func(a, b T) int
	field   string
}

// ByKey sorts by the ordered value fn returns for each element.
//
//	collections.ByKey(func(u User) int { return u.Age })
func ByKey[T any, O cmp.Ordered](fn func(T) O) Criterion[T] {
	return Criterion[T]{compare: func(a, b T) int { return cmp.Compare(fn(a), fn(b)) }}
}

// ByField sorts by the value found at a dot-notation path inside each
// element (map keys, struct fields or json tag names). Keys are compared in
// their natural order: numbers of any kind by value, strings
// lexicographically, time.Time chronologically.
//
//	collections.ByField[map[string]any]("age")
func ByField[T any](path string) Criterion[T] {
	return Criterion[T]{field: path}
}

// String returns the field path, or "key" for a [ByKey] criterion.
func (c Criterion[T]) String() string {
	if c.compare != nil {
		return "key"
	}
	return c.field
}

// compareNatural orders two dynamically typed sort keys.
func compareNatural(a, b any) (int, error) {
	if x, ok := a.(time.Time); ok {
		if y, ok := b.(time.Time); ok {
			return x.Compare(y), nil
		}
	}

	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	switch {
	case isNumber(av) && isNumber(bv):
		return compareNumbers(av, bv), nil
	case av.Kind() == reflect.String && bv.Kind() == reflect.String:
		return cmp.Compare(av.String(), bv.String()), nil
	default:
		return 0, fmt.Errorf("%w: %T and %T", ErrNotOrdered, a, b)
	}
}

func compareNumbers(a, b reflect.Value) int {
	switch {
	case isInt(a) && isInt(b):
		return cmp.Compare(a.Int(), b.Int())
	case isUint(a) && isUint(b):
		return cmp.Compare(a.Uint(), b.Uint())
	case isInt(a) && isUint(b):
		if a.Int() < 0 {
			return -1
		}
		return cmp.Compare(uint64(a.Int()), b.Uint())
	case isUint(a) && isInt(b):
		if b.Int() < 0 {
			return 1
		}
		return cmp.Compare(a.Uint(), uint64(b.Int()))
	default:
		return cmp.Compare(toFloat(a), toFloat(b))
	}
}

func isNumber(v reflect.Value) bool {
	return isInt(v) || isUint(v) || v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64
}

func isInt(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func toFloat(v reflect.Value) float64 {
	switch {
	case isInt(v):
		return float64(v.Int())
	case isUint(v):
		return float64(v.Uint())
	default:
		return v.Float()
	}
}
