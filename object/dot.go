package object

import (
	"reflect"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation lookup
//
// A path is a dot-separated list of segments. Each segment selects a key of
// a string-keyed map or a field of a struct:
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "address": Address{City: "London"},
//	    },
//	}
//
//	Lookup(m, "user.address.City")  → "London", true
//	Get(m, "user.name")             → "Alice"
//	Has(m, "user.age")              → false
// ─────────────────────────────────────────────────────────────────────────────

// Lookup resolves the dot-notation path against v.
//
// Segments are matched against string-keyed maps of any value type and
// against struct fields, either by Go field name or by the name in the
// field's json tag. Pointers and interfaces are dereferenced along the way.
// Unexported fields are never visible. The second return value is false when
// any segment cannot be resolved.
func Lookup(v any, path string) (any, bool) {
	current := v
	for _, seg := range strings.Split(path, ".") {
		next, ok := step(current, seg)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// Get retrieves a value from m using a dot-notation key.
// Returns def[0] (or nil) when the key does not exist.
//
//	Get(m, "user.address.city")        // "London"
//	Get(m, "user.missing", "default")  // "default"
func Get(m map[string]any, key string, def ...any) any {
	if v, ok := Lookup(m, key); ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// Has reports whether the dot-notation key exists in m.
func Has(m map[string]any, key string) bool {
	_, ok := Lookup(m, key)
	return ok
}

func step(v any, seg string) (any, bool) {
	// Fast path for the common untyped case.
	if m, ok := v.(map[string]any); ok {
		val, found := m[seg]
		return val, found
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		kt := rv.Type().Key()
		if kt.Kind() != reflect.String {
			return nil, false
		}
		val := rv.MapIndex(reflect.ValueOf(seg).Convert(kt))
		if !val.IsValid() {
			return nil, false
		}
		return val.Interface(), true
	case reflect.Struct:
		idx, ok := fieldIndex(rv.Type(), seg)
		if !ok {
			return nil, false
		}
		fv, err := rv.FieldByIndexErr(idx)
		if err != nil {
			return nil, false
		}
		return fv.Interface(), true
	default:
		return nil, false
	}
}

// fieldIndex finds an exported field named seg, falling back to the json
// tag name.
func fieldIndex(t reflect.Type, seg string) ([]int, bool) {
	if f, ok := t.FieldByName(seg); ok && f.IsExported() {
		return f.Index, true
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == seg {
			return f.Index, true
		}
	}
	return nil, false
}
