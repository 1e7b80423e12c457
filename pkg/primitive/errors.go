package primitive

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidNumber        = errors.New("invalid number configuration value")
	ErrUnsupportedPrimitive = errors.New("unsupported primitive type")
)

// InvalidNumberError reports a value declared as Number that does not parse
// to a finite float.
type InvalidNumberError struct {
	Key   string
	Value string
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid number value '%s' for configuration key '%s'", e.Value, e.Key)
}

func (e *InvalidNumberError) Unwrap() error { return ErrInvalidNumber }

// UnsupportedPrimitiveError reports a schema tag outside {string, number, boolean}.
type UnsupportedPrimitiveError struct {
	Key       string
	Primitive Primitive
}

func (e *UnsupportedPrimitiveError) Error() string {
	return fmt.Sprintf("unsupported primitive type '%s' for configuration key '%s'", e.Primitive, e.Key)
}

func (e *UnsupportedPrimitiveError) Unwrap() error { return ErrUnsupportedPrimitive }

func IsInvalidNumberError(err error) bool {
	var e *InvalidNumberError
	return errors.As(err, &e)
}

func IsUnsupportedPrimitiveError(err error) bool {
	var e *UnsupportedPrimitiveError
	return errors.As(err, &e)
}
