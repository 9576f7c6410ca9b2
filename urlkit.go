/*
Package urlkit models the components of a URL as immutable values and
serializes them back to text under configurable encoding rules.

Build a query from raw input:

	q := urlkit.ParseQuery("?kingkong=toto&foo=bar+baz")

Normalize a path:

	p := urlkit.ParsePath("/a/b/../c/./d").Normalize() // "/a/c/d"

Render with legacy query encoding and ASCII hosts:

	f := urlkit.NewFormatter()
	f.SetHostEncoding(urlkit.HostASCII)
	f.SetQueryEncoding(urlkit.QueryRFC1738)
	s, err := f.Format(u)
*/
package urlkit

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash"
)

// Component is a piece of a URL.
type Component interface {
	// String returns the rendered value of the component.
	String() string

	// URIComponent returns the rendered value including the delimiter
	// that introduces the component in a URL. It returns "" when the
	// component is empty.
	URIComponent() string

	// SameValueAs reports whether the component renders exactly like the
	// c.
	SameValueAs(c Component) bool
}

// Hash returns the xxhash of the rendered value of the c. Components that
// have the same value always have the same hash.
func Hash(c Component) uint64 {
	if c == nil {
		return xxhash.Sum64String("")
	}

	return xxhash.Sum64String(c.String())
}

// sameValue reports whether the a and b render the same.
func sameValue(a, b Component) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.String() == b.String()
}

// ErrorKind is the kind of an `Error`.
type ErrorKind uint8

// The error kinds.
const (
	// KindInvalidInput means that data handed to a constructor has a shape
	// that cannot be turned into a component.
	KindInvalidInput ErrorKind = iota

	// KindInvalidArgument means that a `Formatter` received a value it
	// does not recognize.
	KindInvalidArgument

	// KindLogic means that an operation is impossible in the current
	// state of a component.
	KindLogic
)

// String returns the string value of the k.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid input"
	case KindInvalidArgument:
		return "invalid argument"
	case KindLogic:
		return "logic error"
	}

	return "unknown error"
}

// Error is an error returned by the urlkit.
type Error struct {
	Kind    ErrorKind
	Message string
}

// The sentinel errors. Any `Error` matches the sentinel of its kind when
// compared by using the `errors.Is`.
var (
	ErrInvalidInput    = &Error{Kind: KindInvalidInput, Message: "invalid input"}
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument, Message: "invalid argument"}
	ErrLogic           = &Error{Kind: KindLogic, Message: "logic error"}
)

// Error implements the `error`.
func (e *Error) Error() string {
	return "urlkit: " + e.Message
}

// Is reports whether the target is an `Error` of the same kind as the e.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// newError returns a new instance of the `Error`.
func newError(kind ErrorKind, format string, v ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, v...),
	}
}

// stringify returns the string form of the v. It reports false when the v
// has no sensible string form.
func stringify(v interface{}) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	case fmt.Stringer:
		return v.String(), true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", v), true
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	}

	return "", false
}
