package primitive

import (
	"math"
	"reflect"
	"regexp"
	"strconv"
)

// decimalRe matches plain decimal notation with an optional exponent.
// Go-only forms such as "1_000", "0x10" or "0x1p4" are rejected.
var decimalRe = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// Coerce converts raw into the native value declared by p.
// key is used only for error diagnostics.
//
// The returned value is a string, float64 or bool.
func Coerce(key, raw string, p Primitive) (any, error) {
	switch p {
	case Boolean:
		return raw == "true", nil
	case Number:
		n, err := parseNumber(key, raw)
		if err != nil {
			return nil, err
		}
		return n, nil
	case String:
		return raw, nil
	default:
		return nil, &UnsupportedPrimitiveError{Key: key, Primitive: p}
	}
}

// As coerces raw into T using the tag returned by For[T].
func As[T Native](key, raw string) (T, error) {
	var zero T

	v, err := Coerce(key, raw, For[T]())
	if err != nil {
		return zero, err
	}

	if t, ok := v.(T); ok {
		return t, nil
	}
	return reflect.ValueOf(v).Convert(reflect.TypeOf((*T)(nil)).Elem()).Interface().(T), nil
}

func parseNumber(key, raw string) (float64, error) {
	if !decimalRe.MatchString(raw) {
		return 0, &InvalidNumberError{Key: key, Value: raw}
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, &InvalidNumberError{Key: key, Value: raw}
	}
	return n, nil
}
