package primitive

import "reflect"

// Primitive tags the native type a raw configuration string is coerced into.
// The zero value is not a valid tag.
type Primitive string

const (
	String  Primitive = "string"
	Number  Primitive = "number"
	Boolean Primitive = "boolean"
)

// Valid reports whether p is one of the supported tags.
func (p Primitive) Valid() bool {
	switch p {
	case String, Number, Boolean:
		return true
	default:
		return false
	}
}

func (p Primitive) String() string { return string(p) }

// Native is the set of Go types a Primitive resolves to.
// Named types such as `type Port float64` are accepted.
type Native interface {
	~string | ~float64 | ~bool
}

// For returns the tag that resolves to T.
func For[T Native]() Primitive {
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Bool:
		return Boolean
	case reflect.Float64:
		return Number
	default:
		return String
	}
}
