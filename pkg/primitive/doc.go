// Package primitive converts raw configuration strings into native Go values
// according to a declared primitive tag.
//
// Three tags are supported: String, Number and Boolean. Coerce is a pure
// function; it never looks at the environment and keeps no state.
//
// # Rules
//
//   - Boolean: the result is true only when the raw value is exactly "true".
//     Any other input, including "TRUE", "1", "yes" and the empty string, is
//     false. Boolean coercion never fails.
//   - Number: the raw value is parsed as a 64-bit float. Empty strings,
//     unparsable text and non-finite results (NaN, Inf) fail with
//     ErrInvalidNumber.
//   - String: the raw value is returned unchanged. The empty string is a valid
//     value.
//
// Any other tag fails with ErrUnsupportedPrimitive.
//
// # Usage
//
//	v, err := primitive.Coerce("PORT", "8080", primitive.Number)
//	if err != nil {
//	    return err
//	}
//	port := v.(float64)
//
// The generic helper As returns a statically typed value:
//
//	debug, err := primitive.As[bool]("DEBUG", os.Getenv("DEBUG"))
//
// # Error Handling
//
// Typed errors carry the offending key and value. Both unwrap to a package
// sentinel so callers can branch with errors.Is:
//
//	if errors.Is(err, primitive.ErrInvalidNumber) {
//	    var ne *primitive.InvalidNumberError
//	    errors.As(err, &ne)
//	    log.Printf("bad number in %s: %q", ne.Key, ne.Value)
//	}
package primitive
