package config

import (
	"reflect"

	"github.com/dmitrymomot/envkit/pkg/primitive"
)

// Resolved maps each schema key to its coerced value: string, float64 or bool.
type Resolved map[string]any

// Text returns the string value for key, or "" when absent or not a string.
func (r Resolved) Text(key string) string {
	v, _ := Value[string](r, key)
	return v
}

// Number returns the numeric value for key, or 0 when absent or not a number.
func (r Resolved) Number(key string) float64 {
	v, _ := Value[float64](r, key)
	return v
}

// Bool returns the boolean value for key, or false when absent or not a boolean.
func (r Resolved) Bool(key string) bool {
	v, _ := Value[bool](r, key)
	return v
}

// Value returns the value for key as T. The second result is false when the
// key is absent or was resolved to a different primitive.
func Value[T primitive.Native](r Resolved, key string) (T, bool) {
	var zero T
	raw, ok := r[key]
	if !ok {
		return zero, false
	}
	if v, ok := raw.(T); ok {
		return v, true
	}

	// Named types (type Port float64) share the kind of the resolved value.
	rv := reflect.ValueOf(raw)
	target := reflect.TypeOf((*T)(nil)).Elem()
	if !rv.IsValid() || rv.Kind() != target.Kind() {
		return zero, false
	}
	return rv.Convert(target).Interface().(T), true
}
